package grantrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/pg"
)

// Repository persists the one-shot grant rows. The primary keys are the
// idempotency guard: a second insert for the same key fails with a unique
// violation, which callers translate into an already-granted outcome.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) CreateSubscriptionGrant(ctx context.Context, grant *domain.SubscriptionGrant) error {
	query := `
        INSERT INTO subscription_grants (account_id, channel_id, points)
        VALUES ($1, $2, $3)
        RETURNING granted_at
    `
	err := r.db.QueryRow(ctx, query, grant.AccountID, grant.ChannelID, grant.Points).Scan(&grant.GrantedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save subscription grant", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) SubscriptionGrantExists(ctx context.Context, accountID int64, channelID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM subscription_grants WHERE account_id = $1 AND channel_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, accountID, channelID).Scan(&exists); err != nil {
		zap.L().Error("failed to check subscription grant", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) CreateReferralGrant(ctx context.Context, grant *domain.ReferralGrant) error {
	query := `
        INSERT INTO referral_grants (referred_account_id, referrer_account_id, points)
        VALUES ($1, $2, $3)
        RETURNING granted_at
    `
	err := r.db.QueryRow(ctx, query, grant.ReferredID, grant.ReferrerID, grant.Points).Scan(&grant.GrantedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save referral grant", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) ReferralGrantExists(ctx context.Context, referredID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM referral_grants WHERE referred_account_id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, referredID).Scan(&exists); err != nil {
		zap.L().Error("failed to check referral grant", zap.Error(err))
		return false, err
	}
	return exists, nil
}
