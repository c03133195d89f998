package accountservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/pkg/validate"
)

type Repo interface {
	Upsert(ctx context.Context, acc *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Account, error)
}

type Rewards interface {
	GrantReferralReward(ctx context.Context, referrerID, referredID int64) (*domain.ReferralGrant, error)
}

type Ledger interface {
	Entries(ctx context.Context, accountID int64) ([]domain.LedgerEntry, error)
}

type Service struct {
	repo    Repo
	rewards Rewards
	ledger  Ledger
}

func New(repo Repo, rewards Rewards, ledger Ledger) *Service {
	return &Service{
		repo:    repo,
		rewards: rewards,
		ledger:  ledger,
	}
}

var ErrAccountNotFound = errors.New("account not found")

// Register creates the account on first contact and refreshes display fields
// on every later one. Referral linkage is resolved only on first contact; the
// reward itself is guarded by the referral grant row, so a replayed code can
// never pay twice.
func (s *Service) Register(ctx context.Context, id int64, username, firstName, lastName, referralCode string) (*domain.Account, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var referredBy *int64
	if existing == nil && referralCode != "" && validate.IsReferralCode(referralCode) {
		referrer, err := s.repo.FindByReferralCode(ctx, referralCode)
		if err != nil {
			return nil, err
		}
		if referrer != nil && referrer.ID != id && !referrer.Banned {
			referredBy = &referrer.ID
		}
	}

	acc := &domain.Account{
		ID:           id,
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		ReferralCode: validate.NewReferralCode(),
		ReferredBy:   referredBy,
	}
	saved, err := s.repo.Upsert(ctx, acc)
	if err != nil {
		zap.L().Error("failed to register account", zap.Error(err))
		return nil, err
	}

	if existing == nil && referredBy != nil {
		if _, err := s.rewards.GrantReferralReward(ctx, *referredBy, id); err != nil {
			// Registration stands either way; the grant row keeps this safe
			// to retry.
			zap.L().Warn("referral reward not granted",
				zap.Int64("referrer_id", *referredBy), zap.Int64("referred_id", id), zap.Error(err))
		}
	}

	return saved, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Account, error) {
	acc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

func (s *Service) Statement(ctx context.Context, id int64) ([]domain.LedgerEntry, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.ledger.Entries(ctx, id)
}
