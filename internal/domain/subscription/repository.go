package subscription

import (
	"context"
	"time"
)

// Repository is the persistence port for subscription aggregates.
type Repository interface {
	Create(ctx context.Context, s *Subscription) error
	Update(ctx context.Context, s *Subscription) error
	GetByID(ctx context.Context, subscriptionID uint) (*Subscription, error)
	GetBySID(ctx context.Context, sid string) (*Subscription, error)

	// ListByUserID returns all subscriptions of an account, newest first.
	ListByUserID(ctx context.Context, userID uint) ([]*Subscription, error)

	// ListByUserIDs returns subscriptions for many accounts in one query,
	// keyed by user ID. Used by the list assembler to avoid per-row reads.
	ListByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*Subscription, error)

	// ListActiveEndedBefore returns active subscriptions whose end date lies
	// before the cutoff; feeds the expiry sweep.
	ListActiveEndedBefore(ctx context.Context, cutoff time.Time) ([]*Subscription, error)

	// ListPendingReview returns pending subscriptions, oldest first.
	ListPendingReview(ctx context.Context) ([]*Subscription, error)
}
