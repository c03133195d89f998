package service

import (
	"time"

	"github.com/boostpanel/boostpanel/internal/config"
	accountshandlers "github.com/boostpanel/boostpanel/internal/handlers/accounts"
	adminhandlers "github.com/boostpanel/boostpanel/internal/handlers/admin"
	ordershandlers "github.com/boostpanel/boostpanel/internal/handlers/orders"
	rewardshandlers "github.com/boostpanel/boostpanel/internal/handlers/rewards"
	"github.com/boostpanel/boostpanel/internal/notify"
	"github.com/boostpanel/boostpanel/internal/oracle"
	"github.com/boostpanel/boostpanel/internal/pg"
	"github.com/boostpanel/boostpanel/internal/repo"
	accountservice "github.com/boostpanel/boostpanel/internal/service/accountservice"
	adminservice "github.com/boostpanel/boostpanel/internal/service/adminservice"
	adminsession "github.com/boostpanel/boostpanel/internal/service/adminsession"
	ledgerservice "github.com/boostpanel/boostpanel/internal/service/ledgerservice"
	orderservice "github.com/boostpanel/boostpanel/internal/service/orderservice"
	rewardservice "github.com/boostpanel/boostpanel/internal/service/rewardservice"
)

// sessionTTL bounds how long an admin prompt stays armed.
const sessionTTL = 5 * time.Minute

type Services struct {
	AccountService accountshandlers.Service
	RewardService  rewardshandlers.Service
	OrderService   ordershandlers.Service
	AdminService   adminhandlers.Service
	Sessions       adminhandlers.Sessions
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, oracleClient *oracle.Client, notifier *notify.Sender) *Services {
	ledgerService := ledgerservice.New(repo.Ledger, txManager)
	rewardService := rewardservice.New(repo.Grant, repo.Channel, ledgerService, oracleClient, txManager, cfg.ReferralReward)
	orderService := orderservice.New(repo.Order, repo.Account, ledgerService, txManager, cfg.RateTable(), cfg.DailyOrderLimit, cfg.MinQuantity, cfg.MaxQuantity)
	accountService := accountservice.New(repo.Account, rewardService, ledgerService)
	adminService := adminservice.New(orderService, ledgerService, repo.Account, repo.Channel, repo.Audit, notifier, cfg.AdminIDs, cfg.BroadcastWorkers)

	return &Services{
		AccountService: accountService,
		RewardService:  rewardService,
		OrderService:   orderService,
		AdminService:   adminService,
		Sessions:       adminsession.New(sessionTTL),
	}
}
