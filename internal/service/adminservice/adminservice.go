package adminservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/metrics"
)

type Orders interface {
	CompleteOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	ListPending(ctx context.Context) ([]domain.Order, error)
	ListAll(ctx context.Context, limit int) ([]domain.Order, error)
}

type Ledger interface {
	Credit(ctx context.Context, accountID int64, amount int64, reason, note string) (*domain.LedgerEntry, error)
	Debit(ctx context.Context, accountID int64, amount int64, reason, note string) (*domain.LedgerEntry, error)
}

type AccountRepo interface {
	SetBanned(ctx context.Context, id int64, banned bool) (bool, error)
	ListActive(ctx context.Context) ([]domain.Account, error)
	List(ctx context.Context, limit int) ([]domain.Account, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}

type ChannelRepo interface {
	Save(ctx context.Context, ch *domain.Channel) (*domain.Channel, error)
	FindAll(ctx context.Context) ([]domain.Channel, error)
	Deactivate(ctx context.Context, id string) (bool, error)
}

type AuditRepo interface {
	Save(ctx context.Context, rec *domain.AuditRecord) error
	List(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}

type Notifier interface {
	Send(ctx context.Context, accountID int64, body string) error
}

// Service is the privileged entry point. Every invocation checks the actor
// against the configured set and leaves an audit record, success or failure.
type Service struct {
	orders     Orders
	ledger     Ledger
	accounts   AccountRepo
	channels   ChannelRepo
	audit      AuditRepo
	notifier   Notifier
	privileged map[int64]struct{}
	workers    int
}

func New(orders Orders, ledger Ledger, accounts AccountRepo, channels ChannelRepo, audit AuditRepo, notifier Notifier, adminIDs []int64, workers int) *Service {
	privileged := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		privileged[id] = struct{}{}
	}
	return &Service{
		orders:     orders,
		ledger:     ledger,
		accounts:   accounts,
		channels:   channels,
		audit:      audit,
		notifier:   notifier,
		privileged: privileged,
		workers:    workers,
	}
}

var (
	ErrUnauthorized    = errors.New("actor is not privileged")
	ErrInvalidDelta    = errors.New("delta must be non-zero")
	ErrChannelNotFound = errors.New("channel not found")
	ErrAccountNotFound = errors.New("account not found")
)

// Actions recorded in the audit log.
const (
	ActionManualAdjust  = "manual_adjust"
	ActionForceComplete = "force_complete"
	ActionForceCancel   = "force_cancel"
	ActionListOrders    = "list_orders"
	ActionAddChannel    = "add_channel"
	ActionRemoveChannel = "remove_channel"
	ActionListChannels  = "list_channels"
	ActionSetBanned     = "set_banned"
	ActionListAccounts  = "list_accounts"
	ActionStats         = "stats"
	ActionBroadcast     = "broadcast"
	ActionListAudit     = "list_audit"
)

// Authorized reports whether the actor belongs to the privileged set. The
// login handler uses it before issuing a token.
func (s *Service) Authorized(actorID int64) bool {
	_, ok := s.privileged[actorID]
	return ok
}

// record writes the audit row. It never fails the operation it describes.
func (s *Service) record(ctx context.Context, actorID int64, action, target, detail string, opErr error) {
	rec := &domain.AuditRecord{
		ID:      uuid.NewString(),
		ActorID: actorID,
		Action:  action,
		Target:  target,
		Detail:  detail,
		Success: opErr == nil,
	}
	if opErr != nil {
		rec.Detail = opErr.Error()
	}
	if err := s.audit.Save(ctx, rec); err != nil {
		zap.L().Error("failed to write audit record", zap.String("action", action), zap.Error(err))
	}
}

func (s *Service) authorize(ctx context.Context, actorID int64, action, target string) error {
	if !s.Authorized(actorID) {
		s.record(ctx, actorID, action, target, "", ErrUnauthorized)
		return ErrUnauthorized
	}
	return nil
}

func (s *Service) ManualAdjust(ctx context.Context, actorID, accountID, delta int64, note string) (entry *domain.LedgerEntry, err error) {
	target := strconv.FormatInt(accountID, 10)
	if err := s.authorize(ctx, actorID, ActionManualAdjust, target); err != nil {
		return nil, err
	}
	defer func() { s.record(ctx, actorID, ActionManualAdjust, target, fmt.Sprintf("delta=%d note=%s", delta, note), err) }()

	switch {
	case delta > 0:
		return s.ledger.Credit(ctx, accountID, delta, domain.ReasonAdminCredit, note)
	case delta < 0:
		return s.ledger.Debit(ctx, accountID, -delta, domain.ReasonAdminDebit, note)
	default:
		return nil, ErrInvalidDelta
	}
}

func (s *Service) ForceComplete(ctx context.Context, actorID, orderID int64) (order *domain.Order, err error) {
	target := strconv.FormatInt(orderID, 10)
	if err := s.authorize(ctx, actorID, ActionForceComplete, target); err != nil {
		return nil, err
	}
	defer func() { s.record(ctx, actorID, ActionForceComplete, target, "", err) }()

	return s.orders.CompleteOrder(ctx, orderID)
}

func (s *Service) ForceCancel(ctx context.Context, actorID, orderID int64) (order *domain.Order, err error) {
	target := strconv.FormatInt(orderID, 10)
	if err := s.authorize(ctx, actorID, ActionForceCancel, target); err != nil {
		return nil, err
	}
	defer func() { s.record(ctx, actorID, ActionForceCancel, target, "", err) }()

	return s.orders.CancelOrder(ctx, orderID)
}

func (s *Service) ListPending(ctx context.Context, actorID int64) (orders []domain.Order, err error) {
	if err := s.authorize(ctx, actorID, ActionListOrders, "pending"); err != nil {
		return nil, err
	}
	defer func() { s.record(ctx, actorID, ActionListOrders, "pending", "", err) }()

	return s.orders.ListPending(ctx)
}

func (s *Service) ListAll(ctx context.Context, actorID int64, limit int) (orders []domain.Order, err error) {
	if err := s.authorize(ctx, actorID, ActionListOrders, "all"); err != nil {
		return nil, err
	}
	defer func() { s.record(ctx, actorID, ActionListOrders, "all", fmt.Sprintf("limit=%d", limit), err) }()

	return s.orders.ListAll(ctx, limit)
}

func (s *Service) AddChannel(ctx context.Context, actorID int64, ch *domain.Channel) (saved *domain.Channel, err error) {
	if err := s.authorize(ctx, actorID, ActionAddChannel, ch.ID); err != nil {
		return nil, err
	}
	defer func() { s.record(ctx, actorID, ActionAddChannel, ch.ID, fmt.Sprintf("reward=%d", ch.RewardPoints), err) }()

	return s.channels.Save(ctx, ch)
}

// RemoveChannel deactivates the channel. The row survives so past grants
// keep their reference.
func (s *Service) RemoveChannel(ctx context.Context, actorID int64, channelID string) (err error) {
	if err := s.authorize(ctx, actorID, ActionRemoveChannel, channelID); err != nil {
		return err
	}
	defer func() { s.record(ctx, actorID, ActionRemoveChannel, channelID, "", err) }()

	removed, err := s.channels.Deactivate(ctx, channelID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrChannelNotFound
	}
	return nil
}

func (s *Service) ListChannels(ctx context.Context, actorID int64) (channels []domain.Channel, err error) {
	if err := s.authorize(ctx, actorID, ActionListChannels, ""); err != nil {
		return nil, err
	}
	defer func() { s.record(ctx, actorID, ActionListChannels, "", "", err) }()

	return s.channels.FindAll(ctx)
}

func (s *Service) SetBanned(ctx context.Context, actorID, accountID int64, banned bool) (err error) {
	target := strconv.FormatInt(accountID, 10)
	if err := s.authorize(ctx, actorID, ActionSetBanned, target); err != nil {
		return err
	}
	defer func() { s.record(ctx, actorID, ActionSetBanned, target, fmt.Sprintf("banned=%t", banned), err) }()

	updated, err := s.accounts.SetBanned(ctx, accountID, banned)
	if err != nil {
		return err
	}
	if !updated {
		return ErrAccountNotFound
	}
	return nil
}

func (s *Service) Accounts(ctx context.Context, actorID int64, limit int) (accounts []domain.Account, err error) {
	if err := s.authorize(ctx, actorID, ActionListAccounts, ""); err != nil {
		return nil, err
	}
	defer func() { s.record(ctx, actorID, ActionListAccounts, "", fmt.Sprintf("limit=%d", limit), err) }()

	return s.accounts.List(ctx, limit)
}

func (s *Service) Stats(ctx context.Context, actorID int64) (stats *domain.Stats, err error) {
	if err := s.authorize(ctx, actorID, ActionStats, ""); err != nil {
		return nil, err
	}
	defer func() { s.record(ctx, actorID, ActionStats, "", "", err) }()

	return s.accounts.Stats(ctx)
}

func (s *Service) Audit(ctx context.Context, actorID int64, limit int) (records []domain.AuditRecord, err error) {
	if err := s.authorize(ctx, actorID, ActionListAudit, ""); err != nil {
		return nil, err
	}
	return s.audit.List(ctx, limit)
}

type BroadcastReport struct {
	Total  int `json:"total"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// Broadcast delivers body to every active account. Deliveries run
// concurrently and independently; a failed attempt is counted, not retried,
// and the ledger is never touched.
func (s *Service) Broadcast(ctx context.Context, actorID int64, body string) (report *BroadcastReport, err error) {
	if err := s.authorize(ctx, actorID, ActionBroadcast, ""); err != nil {
		return nil, err
	}
	defer func() {
		detail := ""
		if report != nil {
			detail = fmt.Sprintf("sent=%d failed=%d", report.Sent, report.Failed)
		}
		s.record(ctx, actorID, ActionBroadcast, "", detail, err)
	}()

	accounts, err := s.accounts.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var sent, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.workers)
	for _, acc := range accounts {
		acc := acc
		g.Go(func() error {
			if sendErr := s.notifier.Send(ctx, acc.ID, body); sendErr != nil {
				failed.Add(1)
				metrics.BroadcastFailures.Inc()
				zap.L().Debug("broadcast delivery failed", zap.Int64("account_id", acc.ID), zap.Error(sendErr))
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	g.Wait()

	report = &BroadcastReport{
		Total:  len(accounts),
		Sent:   int(sent.Load()),
		Failed: int(failed.Load()),
	}
	zap.L().Info("broadcast finished",
		zap.Int("total", report.Total), zap.Int("sent", report.Sent), zap.Int("failed", report.Failed))
	return report, nil
}
