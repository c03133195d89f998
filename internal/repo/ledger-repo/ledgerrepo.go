package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetAccountForUpdate locks the account row for the rest of the enclosing
// transaction. Concurrent balance changes on the same account serialize here.
func (r *Repository) GetAccountForUpdate(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
        SELECT id, balance, banned
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	var acc domain.Account
	err := r.db.QueryRow(ctx, query, id).Scan(&acc.ID, &acc.Balance, &acc.Banned)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock account", zap.Error(err))
		return nil, err
	}
	return &acc, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, id int64, balance int64) error {
	query := `
        UPDATE accounts
        SET balance = $1, last_activity = now()
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, balance, id); err != nil {
		zap.L().Error("failed to update balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) InsertEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
        INSERT INTO ledger_entries (account_id, delta, reason, note)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, entry.AccountID, entry.Delta, entry.Reason, entry.Note).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByAccountID(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error) {
	query := `
        SELECT id, account_id, delta, reason, note, created_at
        FROM ledger_entries
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		err := rows.Scan(&e.ID, &e.AccountID, &e.Delta, &e.Reason, &e.Note, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan ledger row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
