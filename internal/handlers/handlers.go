package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/boostpanel/boostpanel/docs"
	"github.com/boostpanel/boostpanel/internal/config"
	accountshandlers "github.com/boostpanel/boostpanel/internal/handlers/accounts"
	adminhandlers "github.com/boostpanel/boostpanel/internal/handlers/admin"
	ordershandlers "github.com/boostpanel/boostpanel/internal/handlers/orders"
	rewardshandlers "github.com/boostpanel/boostpanel/internal/handlers/rewards"
	"github.com/boostpanel/boostpanel/internal/metrics"
	"github.com/boostpanel/boostpanel/internal/service"
	"github.com/boostpanel/boostpanel/pkg/auth"
)

type AccountHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetStatement(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	GetChannels(w http.ResponseWriter, r *http.Request)
	ClaimChannel(w http.ResponseWriter, r *http.Request)
	ClaimAll(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Quote(w http.ResponseWriter, r *http.Request)
	AddOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	CompleteOrder(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
	Adjust(w http.ResponseWriter, r *http.Request)
	AddChannel(w http.ResponseWriter, r *http.Request)
	RemoveChannel(w http.ResponseWriter, r *http.Request)
	GetChannels(w http.ResponseWriter, r *http.Request)
	Ban(w http.ResponseWriter, r *http.Request)
	GetAccounts(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetAudit(w http.ResponseWriter, r *http.Request)
	Broadcast(w http.ResponseWriter, r *http.Request)
	GetSession(w http.ResponseWriter, r *http.Request)
	SessionEvent(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler AccountHandler
	RewardHandler  RewardHandler
	OrderHandler   OrderHandler
	AdminHandler   AdminHandler

	jwtService auth.JWTServiceInterface
}

func New(cfg *config.Config, s *service.Services) *Handlers {
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	return &Handlers{
		AccountHandler: accountshandlers.New(s.AccountService),
		RewardHandler:  rewardshandlers.New(s.RewardService),
		OrderHandler:   ordershandlers.New(s.OrderService),
		AdminHandler:   adminhandlers.New(s.AdminService, s.Sessions, jwtService, &auth.HashService{}, cfg.AdminKeyHash),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/channels", h.RewardHandler.GetChannels)
		r.Post("/orders/quote", h.OrderHandler.Quote)

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/register", h.AccountHandler.Register)
			r.Route("/{accountID}", func(r chi.Router) {
				r.Get("/", h.AccountHandler.GetBalance)
				r.Get("/statement", h.AccountHandler.GetStatement)
				r.Post("/rewards", h.RewardHandler.ClaimAll)
				r.Post("/rewards/{channelID}", h.RewardHandler.ClaimChannel)
				r.Post("/orders", h.OrderHandler.AddOrder)
				r.Get("/orders", h.OrderHandler.GetOrders)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.AdminHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware(h.jwtService))
				r.Get("/orders", h.AdminHandler.GetOrders)
				r.Post("/orders/{orderID}/complete", h.AdminHandler.CompleteOrder)
				r.Post("/orders/{orderID}/cancel", h.AdminHandler.CancelOrder)
				r.Post("/adjust", h.AdminHandler.Adjust)
				r.Get("/channels", h.AdminHandler.GetChannels)
				r.Post("/channels", h.AdminHandler.AddChannel)
				r.Delete("/channels/{channelID}", h.AdminHandler.RemoveChannel)
				r.Post("/ban", h.AdminHandler.Ban)
				r.Get("/accounts", h.AdminHandler.GetAccounts)
				r.Get("/stats", h.AdminHandler.GetStats)
				r.Get("/audit", h.AdminHandler.GetAudit)
				r.Post("/broadcast", h.AdminHandler.Broadcast)
				r.Get("/session", h.AdminHandler.GetSession)
				r.Post("/session", h.AdminHandler.SessionEvent)
			})
		})
	})

	return r
}
