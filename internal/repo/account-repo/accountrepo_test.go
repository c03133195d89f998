package accountrepo

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

func accountRows(now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "username", "first_name", "last_name", "balance",
		"referral_code", "referred_by", "joined_at", "last_activity", "banned", "total_orders", "total_spent"}).
		AddRow(int64(1), "satoshi", "Sam", "Nakamoto", int64(100),
			"79927398713", (*int64)(nil), now, now, false, 2, int64(75))
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	acc := &domain.Account{ID: 1, Username: "satoshi", FirstName: "Sam", LastName: "Nakamoto", ReferralCode: "79927398713"}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO accounts`)).
		WithArgs(int64(1), "satoshi", "Sam", "Nakamoto", "79927398713", (*int64)(nil)).
		WillReturnRows(accountRows(now))

	saved, err := repo.Upsert(context.Background(), acc)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, int64(100), saved.Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int64
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing account",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE id = $1`)).
					WithArgs(int64(1)).
					WillReturnRows(accountRows(time.Now()))
			},
			found: true,
		},
		{
			name: "Missing account returns nil without error",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE id = $1`)).
					WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE id = $1`)).
					WithArgs(int64(1)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			acc, err := repo.FindByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else if tt.found {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, acc.ID)
			} else {
				assert.NoError(t, err)
				assert.Nil(t, acc)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByReferralCode(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE referral_code = $1`)).
		WithArgs("79927398713").
		WillReturnRows(accountRows(time.Now()))

	acc, err := repo.FindByReferralCode(context.Background(), "79927398713")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), acc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetBanned(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts SET banned = $1`)).
		WithArgs(true, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	updated, err := repo.SetBanned(context.Background(), 1, true)
	assert.NoError(t, err)
	assert.True(t, updated)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts SET banned = $1`)).
		WithArgs(true, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	updated, err = repo.SetBanned(context.Background(), 99, true)
	assert.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementOrderStats(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`SET total_orders = total_orders + 1`)).
		WithArgs(int64(50), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.IncrementOrderStats(context.Background(), 1, 50)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActive(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE NOT banned`)).
		WillReturnRows(accountRows(time.Now()))

	accounts, err := repo.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Stats(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"total_accounts", "total_orders", "active_channels", "points_in_circulation"}).
		AddRow(int64(10), int64(3), int64(2), int64(145))
	mock.ExpectQuery(`SELECT`).WillReturnRows(rows)

	stats, err := repo.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalAccounts)
	assert.Equal(t, int64(145), stats.PointsInCirculation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
