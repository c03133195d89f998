package ledgerservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/pg"
)

type Repo interface {
	GetAccountForUpdate(ctx context.Context, id int64) (*domain.Account, error)
	UpdateBalance(ctx context.Context, id int64, balance int64) error
	InsertEntry(ctx context.Context, entry *domain.LedgerEntry) error
	ListByAccountID(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error)
}

// Service is the only component allowed to change an account's balance.
// Every change appends exactly one ledger entry in the same transaction.
type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountBanned       = errors.New("account is banned")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

func (s *Service) Credit(ctx context.Context, accountID int64, amount int64, reason, note string) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return s.apply(ctx, accountID, amount, reason, note)
}

func (s *Service) Debit(ctx context.Context, accountID int64, amount int64, reason, note string) (*domain.LedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return s.apply(ctx, accountID, -amount, reason, note)
}

// apply locks the account row, checks the preconditions and writes the new
// balance together with its ledger entry. The row lock serializes the check
// against concurrent debits on the same account.
func (s *Service) apply(ctx context.Context, accountID int64, delta int64, reason, note string) (*domain.LedgerEntry, error) {
	entry := &domain.LedgerEntry{
		AccountID: accountID,
		Delta:     delta,
		Reason:    reason,
		Note:      note,
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		acc, err := s.repo.GetAccountForUpdate(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return ErrAccountNotFound
		}
		if acc.Banned {
			return ErrAccountBanned
		}

		balance := acc.Balance + delta
		if balance < 0 {
			return ErrInsufficientBalance
		}

		if err := s.repo.UpdateBalance(ctx, accountID, balance); err != nil {
			return err
		}
		return s.repo.InsertEntry(ctx, entry)
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("ledger operation failed",
				zap.Int64("account_id", accountID), zap.String("reason", reason), zap.Error(err))
		}
		return nil, err
	}

	return entry, nil
}

func (s *Service) Entries(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error) {
	entries, err := s.repo.ListByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
