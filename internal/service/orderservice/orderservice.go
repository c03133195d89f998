package orderservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/metrics"
	"github.com/boostpanel/boostpanel/internal/pg"
	"github.com/boostpanel/boostpanel/pkg/validate"
)

type Repo interface {
	Save(ctx context.Context, order *domain.Order) error
	GetForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	MarkTerminal(ctx context.Context, id int64, status string, completedAt time.Time) error
	FindByAccountID(ctx context.Context, accountID int64, limit int) ([]domain.Order, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Order, error)
	FindAll(ctx context.Context, limit int) ([]domain.Order, error)
	CountCreatedSince(ctx context.Context, accountID int64, since time.Time) (int, error)
}

type AccountRepo interface {
	IncrementOrderStats(ctx context.Context, id int64, spent int64) error
}

type Ledger interface {
	Credit(ctx context.Context, accountID int64, amount int64, reason, note string) (*domain.LedgerEntry, error)
	Debit(ctx context.Context, accountID int64, amount int64, reason, note string) (*domain.LedgerEntry, error)
}

// Service drives orders through pending -> completed|cancelled. The debit at
// creation and the refund at cancellation share a transaction with the order
// row change, so points and orders can never diverge.
type Service struct {
	repo       Repo
	accounts   AccountRepo
	ledger     Ledger
	txManager  pg.TXManager
	rates      map[string]int64
	dailyLimit int
	minQty     int
	maxQty     int
}

func New(repo Repo, accounts AccountRepo, ledger Ledger, txManager pg.TXManager, rates map[string]int64, dailyLimit, minQty, maxQty int) *Service {
	return &Service{
		repo:       repo,
		accounts:   accounts,
		ledger:     ledger,
		txManager:  txManager,
		rates:      rates,
		dailyLimit: dailyLimit,
		minQty:     minQty,
		maxQty:     maxQty,
	}
}

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("order is not pending")
	ErrUnknownServiceKind = errors.New("unknown service kind")
	ErrInvalidQuantity    = errors.New("quantity out of range")
	ErrInvalidTarget      = errors.New("target url is not supported")
	ErrDailyLimitReached  = errors.New("daily order limit reached")
)

// Quote prices an order without reserving anything. The same formula runs
// again inside CreateOrder; a price shown earlier is display-only.
func (s *Service) Quote(serviceKind string, quantity int) (int64, error) {
	rate, ok := s.rates[serviceKind]
	if !ok {
		return 0, ErrUnknownServiceKind
	}
	if !validate.IsQuantity(quantity, s.minQty, s.maxQty) {
		return 0, ErrInvalidQuantity
	}

	cost := int64(quantity) * rate / 1000
	if cost < 1 {
		cost = 1
	}
	return cost, nil
}

func (s *Service) CreateOrder(ctx context.Context, accountID int64, serviceKind, target string, quantity int) (*domain.Order, error) {
	totalCost, err := s.Quote(serviceKind, quantity)
	if err != nil {
		return nil, err
	}
	if !validate.IsTarget(target) {
		return nil, ErrInvalidTarget
	}

	since := time.Now().UTC().Truncate(24 * time.Hour)
	count, err := s.repo.CountCreatedSince(ctx, accountID, since)
	if err != nil {
		return nil, err
	}
	if count >= s.dailyLimit {
		return nil, ErrDailyLimitReached
	}

	order := &domain.Order{
		AccountID:   accountID,
		ServiceKind: serviceKind,
		Target:      target,
		Quantity:    quantity,
		UnitCost:    s.rates[serviceKind],
		TotalCost:   totalCost,
		Status:      domain.OrderStatusPending,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		note := fmt.Sprintf("%s x%d", serviceKind, quantity)
		if _, err := s.ledger.Debit(ctx, accountID, totalCost, domain.ReasonOrderDebit, note); err != nil {
			return err
		}
		if err := s.repo.Save(ctx, order); err != nil {
			return err
		}
		return s.accounts.IncrementOrderStats(ctx, accountID, totalCost)
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	zap.L().Info("order created",
		zap.Int64("order_id", order.ID), zap.Int64("account_id", accountID),
		zap.String("service_kind", serviceKind), zap.Int64("total_cost", totalCost))
	return order, nil
}

func (s *Service) CompleteOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.lockPending(ctx, orderID)
		if err != nil {
			return err
		}

		now := time.Now()
		if err := s.repo.MarkTerminal(ctx, orderID, domain.OrderStatusCompleted, now); err != nil {
			return err
		}
		order.Status = domain.OrderStatusCompleted
		order.CompletedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCompleted.Inc()
	zap.L().Info("order completed", zap.Int64("order_id", orderID))
	return order, nil
}

// CancelOrder flips a pending order to cancelled and refunds exactly the
// stored total cost. A terminal order fails the transition check before any
// mutation, which is what makes a double refund impossible.
func (s *Service) CancelOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.lockPending(ctx, orderID)
		if err != nil {
			return err
		}

		now := time.Now()
		if err := s.repo.MarkTerminal(ctx, orderID, domain.OrderStatusCancelled, now); err != nil {
			return err
		}

		note := fmt.Sprintf("order:%d", orderID)
		if _, err := s.ledger.Credit(ctx, order.AccountID, order.TotalCost, domain.ReasonOrderRefund, note); err != nil {
			return err
		}
		order.Status = domain.OrderStatusCancelled
		order.CompletedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCancelled.Inc()
	zap.L().Info("order cancelled", zap.Int64("order_id", orderID), zap.Int64("refund", order.TotalCost))
	return order, nil
}

func (s *Service) lockPending(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.repo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != domain.OrderStatusPending {
		return nil, ErrInvalidTransition
	}
	return order, nil
}

func (s *Service) Orders(ctx context.Context, accountID int64, limit int) ([]domain.Order, error) {
	orders, err := s.repo.FindByAccountID(ctx, accountID, limit)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindByStatus(ctx, domain.OrderStatusPending)
}

func (s *Service) ListAll(ctx context.Context, limit int) ([]domain.Order, error) {
	return s.repo.FindAll(ctx, limit)
}
