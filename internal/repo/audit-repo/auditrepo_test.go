package auditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)

	rec := &domain.AuditRecord{
		ID:      "f3b2c9a0-0000-0000-0000-000000000001",
		ActorID: 100,
		Action:  "force_cancel",
		Target:  "order:7",
		Detail:  "refund 50",
		Success: true,
	}
	at := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO audit_records`)).
		WithArgs(rec.ID, int64(100), "force_cancel", "order:7", "refund 50", true).
		WillReturnRows(pgxmock.NewRows([]string{"at"}).AddRow(at))

	err := repo.Save(context.Background(), rec)
	assert.NoError(t, err)
	assert.Equal(t, at, rec.At)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Save_Error(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO audit_records`)).
		WithArgs("id", int64(100), "ban", "account:1", "", false).
		WillReturnError(errors.New("db error"))

	err := repo.Save(context.Background(), &domain.AuditRecord{
		ID: "id", ActorID: 100, Action: "ban", Target: "account:1",
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "actor_id", "action", "target", "detail", "success", "at"}).
		AddRow("a", int64(100), "adjust_points", "account:1", "+25", true, now).
		AddRow("b", int64(100), "adjust_points", "account:2", "+25", false, now.Add(-time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM audit_records ORDER BY at DESC LIMIT $1`)).
		WithArgs(100).
		WillReturnRows(rows)

	records, err := repo.List(context.Background(), 100)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "adjust_points", records[0].Action)
	assert.False(t, records[1].Success)
	assert.NoError(t, mock.ExpectationsWereMet())
}
