package orderrepo

import (
	"context"
	"errors"
	"time"

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

const orderColumns = `id, account_id, service_kind, target, quantity, unit_cost, total_cost, status, created_at, completed_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.AccountID, &o.ServiceKind, &o.Target, &o.Quantity,
		&o.UnitCost, &o.TotalCost, &o.Status, &o.CreatedAt, &o.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (account_id, service_kind, target, quantity, unit_cost, total_cost, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, order.AccountID, order.ServiceKind, order.Target,
		order.Quantity, order.UnitCost, order.TotalCost, order.Status).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

// GetForUpdate locks the order row so a status transition cannot race
// another transition or the refund that accompanies a cancellation.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	order, err := scanOrder(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) MarkTerminal(ctx context.Context, id int64, status string, completedAt time.Time) error {
	query := `
        UPDATE orders
        SET status = $1, completed_at = $2
        WHERE id = $3
    `
	if _, err := r.db.Exec(ctx, query, status, completedAt, id); err != nil {
		zap.L().Error("failed to update order status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByAccountID(ctx context.Context, accountID int64, limit int) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2`
	return r.list(ctx, query, accountID, limit)
}

func (r *Repository) FindByStatus(ctx context.Context, status string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY created_at ASC`
	return r.list(ctx, query, status)
}

func (r *Repository) FindAll(ctx context.Context, limit int) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1`
	return r.list(ctx, query, limit)
}

// CountCreatedSince backs the daily order cap. Cancelled orders still count;
// cancellation refunds points, not quota.
func (r *Repository) CountCreatedSince(ctx context.Context, accountID int64, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM orders WHERE account_id = $1 AND created_at >= $2`
	var count int
	if err := r.db.QueryRow(ctx, query, accountID, since).Scan(&count); err != nil {
		zap.L().Error("failed to count orders", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}
