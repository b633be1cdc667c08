package services

import (
	"context"
	"time"

	"github.com/vitrine-app/vitrine/internal/domain/ranking"
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// ViewerResolver maps a request's optional account onto the ranking core's
// Viewer value using the same authoritative-subscription resolution the
// subjects get. Lookup failures resolve to no access: gating fails closed.
type ViewerResolver struct {
	subscriptionRepo subscription.Repository
	grace            time.Duration
	logger           logger.Interface
}

func NewViewerResolver(subscriptionRepo subscription.Repository, grace time.Duration, log logger.Interface) *ViewerResolver {
	return &ViewerResolver{
		subscriptionRepo: subscriptionRepo,
		grace:            grace,
		logger:           log,
	}
}

// Resolve builds the viewer for an optional authenticated account.
// userID 0 means anonymous.
func (r *ViewerResolver) Resolve(ctx context.Context, userID uint, now time.Time) ranking.Viewer {
	if userID == 0 {
		return ranking.AnonymousViewer()
	}

	subs, err := r.subscriptionRepo.ListByUserID(ctx, userID)
	if err != nil {
		r.logger.Warnw("viewer subscription lookup failed, denying access", "user_id", userID, "error", err)
		return ranking.Viewer{AccountID: userID, Authenticated: true}
	}

	records := make([]ranking.SubscriptionRecord, 0, len(subs))
	for _, s := range subs {
		records = append(records, s.Snapshot())
	}

	_, active := ranking.AuthoritativeSubscription(records, now, r.grace)
	return ranking.Viewer{
		AccountID:             userID,
		Authenticated:         true,
		HasActiveSubscription: active,
	}
}
