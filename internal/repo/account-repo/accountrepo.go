package accountrepo

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

const accountColumns = `id, username, first_name, last_name, balance, referral_code, referred_by, joined_at, last_activity, banned, total_orders, total_spent`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(&acc.ID, &acc.Username, &acc.FirstName, &acc.LastName, &acc.Balance,
		&acc.ReferralCode, &acc.ReferredBy, &acc.JoinedAt, &acc.LastActivity,
		&acc.Banned, &acc.TotalOrders, &acc.TotalSpent)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// Upsert registers the account or refreshes its display fields. Referral
// linkage and the referral code are written once and never overwritten.
func (r *Repository) Upsert(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (id, username, first_name, last_name, referral_code, referred_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO UPDATE SET
            username = EXCLUDED.username,
            first_name = EXCLUDED.first_name,
            last_name = EXCLUDED.last_name,
            last_activity = now()
        RETURNING ` + accountColumns
	row := r.db.QueryRow(ctx, query, acc.ID, acc.Username, acc.FirstName, acc.LastName, acc.ReferralCode, acc.ReferredBy)
	saved, err := scanAccount(row)
	if err != nil {
		zap.L().Error("failed to upsert account", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE referral_code = $1`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get account by referral code", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) SetBanned(ctx context.Context, id int64, banned bool) (bool, error) {
	query := `UPDATE accounts SET banned = $1, last_activity = now() WHERE id = $2`
	tag, err := r.db.Exec(ctx, query, banned, id)
	if err != nil {
		zap.L().Error("failed to set ban flag", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) IncrementOrderStats(ctx context.Context, id int64, spent int64) error {
	query := `
        UPDATE accounts
        SET total_orders = total_orders + 1, total_spent = total_spent + $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, spent, id); err != nil {
		zap.L().Error("failed to update order stats", zap.Error(err))
		return err
	}
	return nil
}

// ListActive returns accounts eligible for broadcast delivery.
func (r *Repository) ListActive(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE NOT banned ORDER BY joined_at`
	return r.list(ctx, query)
}

func (r *Repository) List(ctx context.Context, limit int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY joined_at DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("failed to scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *acc)
	}
	return accounts, nil
}

func (r *Repository) Stats(ctx context.Context) (*domain.Stats, error) {
	query := `
        SELECT
            (SELECT COUNT(*) FROM accounts),
            (SELECT COUNT(*) FROM orders),
            (SELECT COUNT(*) FROM channels WHERE active),
            (SELECT COALESCE(SUM(balance), 0) FROM accounts)
    `
	var stats domain.Stats
	err := r.db.QueryRow(ctx, query).Scan(&stats.TotalAccounts, &stats.TotalOrders, &stats.ActiveChannels, &stats.PointsInCirculation)
	if err != nil {
		zap.L().Error("failed to fetch stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
