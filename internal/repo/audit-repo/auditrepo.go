package auditrepo

import (
	"context"

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

func (r *Repository) Save(ctx context.Context, rec *domain.AuditRecord) error {
	query := `
        INSERT INTO audit_records (id, actor_id, action, target, detail, success)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING at
    `
	err := r.db.QueryRow(ctx, query, rec.ID, rec.ActorID, rec.Action, rec.Target, rec.Detail, rec.Success).Scan(&rec.At)
	if err != nil {
		zap.L().Error("can't save audit record", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	query := `
        SELECT id, actor_id, action, target, detail, success, at
        FROM audit_records
        ORDER BY at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to fetch audit records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		var rec domain.AuditRecord
		err := rows.Scan(&rec.ID, &rec.ActorID, &rec.Action, &rec.Target, &rec.Detail, &rec.Success, &rec.At)
		if err != nil {
			zap.L().Error("failed to scan audit row", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
