package ledgerrepo

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

func TestRepository_GetAccountForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int64
		mockSetup func()
		expectErr bool
		result    *domain.Account
	}{
		{
			name: "Existing account is locked and returned",
			id:   1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "balance", "banned"}).
					AddRow(int64(1), int64(100), false)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, balance, banned`)).
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			result: &domain.Account{ID: 1, Balance: 100},
		},
		{
			name: "Missing account returns nil without error",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, balance, banned`)).
					WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, balance, banned`)).
					WithArgs(int64(1)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetAccountForUpdate(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts`)).
		WithArgs(int64(150), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateBalance(context.Background(), 1, 150)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertEntry(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	entry := &domain.LedgerEntry{AccountID: 1, Delta: -50, Reason: domain.ReasonOrderDebit, Note: "followers x1000"}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO ledger_entries`)).
		WithArgs(int64(1), int64(-50), domain.ReasonOrderDebit, "followers x1000").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), now))

	err := repo.InsertEntry(context.Background(), entry)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), entry.ID)
	assert.Equal(t, now, entry.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByAccountID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "account_id", "delta", "reason", "note", "created_at"}).
		AddRow(int64(2), int64(1), int64(-50), domain.ReasonOrderDebit, "likes x500", now).
		AddRow(int64(1), int64(1), int64(20), domain.ReasonReferralReward, "referred:2", now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM ledger_entries`)).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	entries, err := repo.ListByAccountID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, int64(-50), entries[0].Delta)
	assert.NoError(t, mock.ExpectationsWereMet())
}
