package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/vitrine-app/vitrine/internal/domain/ranking"
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	"github.com/vitrine-app/vitrine/internal/domain/user"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// ExpireSubscriptionsUseCase is the periodic sweep that moves active
// subscriptions past their grace window to expired and refreshes the
// owners' denormalized plan. Ranking already ignores such rows through the
// grace check, so the sweep only settles stored state; running it late
// never extends anyone's access.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	userRepo         user.Repository
	grace            time.Duration
	logger           logger.Interface
}

func NewExpireSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	userRepo user.Repository,
	grace time.Duration,
	log logger.Interface,
) *ExpireSubscriptionsUseCase {
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		grace:            grace,
		logger:           log,
	}
}

// ExpireSubscriptionsResult reports the sweep outcome.
type ExpireSubscriptionsResult struct {
	Expired int
	Failed  int
}

func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (*ExpireSubscriptionsResult, error) {
	now := time.Now().UTC()
	cutoff := now.Add(-uc.grace)

	subs, err := uc.subscriptionRepo.ListActiveEndedBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list expirable subscriptions: %w", err)
	}

	result := &ExpireSubscriptionsResult{}
	for _, sub := range subs {
		if !sub.IsPastGrace(now, uc.grace) {
			continue
		}
		if err := sub.MarkExpired(); err != nil {
			uc.logger.Warnw("cannot expire subscription", "subscription_sid", sub.SID(), "error", err)
			result.Failed++
			continue
		}
		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			uc.logger.Errorw("failed to persist expiry", "subscription_sid", sub.SID(), "error", err)
			result.Failed++
			continue
		}
		if err := uc.refreshUserPlan(ctx, sub.UserID(), now); err != nil {
			uc.logger.Warnw("failed to refresh user plan after expiry", "user_id", sub.UserID(), "error", err)
		}
		result.Expired++
	}

	if result.Expired > 0 || result.Failed > 0 {
		uc.logger.Infow("subscription expiry sweep finished", "expired", result.Expired, "failed", result.Failed)
	}
	return result, nil
}

// refreshUserPlan recomputes the denormalized plan from the remaining
// subscriptions; no authoritative row means back to the free tier.
func (uc *ExpireSubscriptionsUseCase) refreshUserPlan(ctx context.Context, userID uint, now time.Time) error {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}

	subs, err := uc.subscriptionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}
	records := make([]ranking.SubscriptionRecord, 0, len(subs))
	for _, s := range subs {
		records = append(records, s.Snapshot())
	}

	current := ""
	if rec, ok := ranking.AuthoritativeSubscription(records, now, uc.grace); ok {
		current = rec.PlanID
	}
	if u.CurrentPlan() == current {
		return nil
	}
	u.SetCurrentPlan(current)
	return uc.userRepo.Update(ctx, u)
}
