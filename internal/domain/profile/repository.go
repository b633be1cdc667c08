package profile

import (
	"context"
	"time"
)

// ListFilter narrows the candidate set before ranking. Filtering is a
// precondition on candidates; it never influences the ranking itself.
type ListFilter struct {
	City         string
	MinAge       int
	MaxAge       int
	Search       string
	AvailableNow bool
}

// Repository is the persistence port for profile aggregates.
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, profileID uint) (*Profile, error)
	GetBySID(ctx context.Context, sid string) (*Profile, error)
	GetByUserID(ctx context.Context, userID uint) (*Profile, error)

	// ListListed returns every listed profile matching the filter. The
	// result feeds the ranking core as one snapshot.
	ListListed(ctx context.Context, filter ListFilter) ([]*Profile, error)

	// TouchLastActive stamps last activity without a full aggregate
	// round-trip; used by the high-frequency activity ping.
	TouchLastActive(ctx context.Context, profileID uint, at time.Time) error
}
