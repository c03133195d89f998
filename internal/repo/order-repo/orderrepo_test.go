package orderrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/boostpanel/boostpanel/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func orderRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "account_id", "service_kind", "target", "quantity",
		"unit_cost", "total_cost", "status", "created_at", "completed_at"}).
		AddRow(int64(7), int64(1), "followers", "https://instagram.com/p/abc", 1000,
			int64(50), int64(50), domain.OrderStatusPending, now, (*time.Time)(nil))
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	order := &domain.Order{
		AccountID:   1,
		ServiceKind: "followers",
		Target:      "https://instagram.com/p/abc",
		Quantity:    1000,
		UnitCost:    50,
		TotalCost:   50,
		Status:      domain.OrderStatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO orders`)).
		WithArgs(int64(1), "followers", "https://instagram.com/p/abc", 1000, int64(50), int64(50), domain.OrderStatusPending).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	err := repo.Save(context.Background(), order)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), order.ID)
	assert.Equal(t, now, order.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int64
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Pending order is locked and returned",
			id:   7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE id = $1 FOR UPDATE`)).
					WithArgs(int64(7)).
					WillReturnRows(orderRows(time.Now()))
			},
			found: true,
		},
		{
			name: "Missing order returns nil without error",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE id = $1 FOR UPDATE`)).
					WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   7,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE id = $1 FOR UPDATE`)).
					WithArgs(int64(7)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			order, err := repo.GetForUpdate(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else if tt.found {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), order.ID)
				assert.Equal(t, domain.OrderStatusPending, order.Status)
			} else {
				assert.NoError(t, err)
				assert.Nil(t, order)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_MarkTerminal(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders`)).
		WithArgs(domain.OrderStatusCancelled, now, int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.MarkTerminal(context.Background(), 7, domain.OrderStatusCancelled, now)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByAccountID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM orders WHERE account_id = $1`)).
		WithArgs(int64(1), 50).
		WillReturnRows(orderRows(time.Now()))

	orders, err := repo.FindByAccountID(context.Background(), 1, 50)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, int64(7), orders[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountCreatedSince(t *testing.T) {
	repo, mock := NewMock(t)

	since := time.Now().UTC().Truncate(24 * time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM orders`)).
		WithArgs(int64(1), since).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountCreatedSince(context.Background(), 1, since)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
