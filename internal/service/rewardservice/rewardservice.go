package rewardservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/metrics"
	"github.com/boostpanel/boostpanel/internal/oracle"
	"github.com/boostpanel/boostpanel/internal/pg"
)

type GrantRepo interface {
	CreateSubscriptionGrant(ctx context.Context, grant *domain.SubscriptionGrant) error
	SubscriptionGrantExists(ctx context.Context, accountID int64, channelID string) (bool, error)
	CreateReferralGrant(ctx context.Context, grant *domain.ReferralGrant) error
	ReferralGrantExists(ctx context.Context, referredID int64) (bool, error)
}

type ChannelRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Channel, error)
	FindActive(ctx context.Context) ([]domain.Channel, error)
}

type Ledger interface {
	Credit(ctx context.Context, accountID int64, amount int64, reason, note string) (*domain.LedgerEntry, error)
}

type Oracle interface {
	CheckMembership(ctx context.Context, accountID int64, channelID string) (oracle.Membership, error)
}

// Service decides whether a one-time reward is due and pays it exactly once.
// The grant row and the credit are written in the same transaction; a lost
// insert race surfaces as ErrAlreadyGranted, not as a failure.
type Service struct {
	grants         GrantRepo
	channels       ChannelRepo
	ledger         Ledger
	oracle         Oracle
	txManager      pg.TXManager
	referralReward int64
}

func New(grants GrantRepo, channels ChannelRepo, ledger Ledger, o Oracle, txManager pg.TXManager, referralReward int64) *Service {
	return &Service{
		grants:         grants,
		channels:       channels,
		ledger:         ledger,
		oracle:         o,
		txManager:      txManager,
		referralReward: referralReward,
	}
}

var (
	ErrAlreadyGranted  = errors.New("reward already granted")
	ErrNotEligible     = errors.New("account is not eligible for the reward")
	ErrChannelNotFound = errors.New("channel not found")
	ErrSelfReferral    = errors.New("account can't refer itself")
)

func (s *Service) GrantChannelReward(ctx context.Context, accountID int64, channelID string) (*domain.SubscriptionGrant, error) {
	exists, err := s.grants.SubscriptionGrantExists(ctx, accountID, channelID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyGranted
	}

	channel, err := s.channels.FindByID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if channel == nil || !channel.Active {
		return nil, ErrChannelNotFound
	}

	membership, err := s.oracle.CheckMembership(ctx, accountID, channelID)
	if err != nil || membership != oracle.Member {
		// An unreachable oracle withholds the reward; the account can retry.
		if err != nil {
			zap.L().Warn("membership check failed", zap.String("channel_id", channelID), zap.Error(err))
		}
		return nil, ErrNotEligible
	}

	grant := &domain.SubscriptionGrant{
		AccountID: accountID,
		ChannelID: channelID,
		Points:    channel.RewardPoints,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.grants.CreateSubscriptionGrant(ctx, grant); err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrAlreadyGranted
			}
			return err
		}
		_, err := s.ledger.Credit(ctx, accountID, channel.RewardPoints, domain.ReasonChannelReward, "channel:"+channelID)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RewardsGranted.WithLabelValues(domain.ReasonChannelReward).Inc()
	zap.L().Info("channel reward granted",
		zap.Int64("account_id", accountID), zap.String("channel_id", channelID), zap.Int64("points", channel.RewardPoints))
	return grant, nil
}

// GrantAllChannelRewards sweeps every active channel for the account and
// grants whatever is due. Channels already granted or not joined are skipped.
func (s *Service) GrantAllChannelRewards(ctx context.Context, accountID int64) (int64, []string, error) {
	channels, err := s.channels.FindActive(ctx)
	if err != nil {
		return 0, nil, err
	}

	var earned int64
	var granted []string
	for _, ch := range channels {
		grant, err := s.GrantChannelReward(ctx, accountID, ch.ID)
		if err != nil {
			if errors.Is(err, ErrAlreadyGranted) || errors.Is(err, ErrNotEligible) || errors.Is(err, ErrChannelNotFound) {
				continue
			}
			return earned, granted, err
		}
		earned += grant.Points
		granted = append(granted, ch.Name)
	}
	return earned, granted, nil
}

func (s *Service) GrantReferralReward(ctx context.Context, referrerID, referredID int64) (*domain.ReferralGrant, error) {
	if referrerID == referredID {
		return nil, ErrSelfReferral
	}

	exists, err := s.grants.ReferralGrantExists(ctx, referredID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyGranted
	}

	grant := &domain.ReferralGrant{
		ReferredID: referredID,
		ReferrerID: referrerID,
		Points:     s.referralReward,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.grants.CreateReferralGrant(ctx, grant); err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrAlreadyGranted
			}
			return err
		}
		note := fmt.Sprintf("referred:%d", referredID)
		_, err := s.ledger.Credit(ctx, referrerID, s.referralReward, domain.ReasonReferralReward, note)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RewardsGranted.WithLabelValues(domain.ReasonReferralReward).Inc()
	zap.L().Info("referral reward granted",
		zap.Int64("referrer_id", referrerID), zap.Int64("referred_id", referredID))
	return grant, nil
}

func (s *Service) Channels(ctx context.Context) ([]domain.Channel, error) {
	channels, err := s.channels.FindActive(ctx)
	if err != nil {
		zap.L().Error("failed to fetch channels", zap.Error(err))
		return nil, err
	}
	return channels, nil
}
