// Package subscription holds the subscription aggregate: a time-bounded
// grant of a plan tier to an account.
package subscription

import (
	"fmt"
	"time"

	"github.com/vitrine-app/vitrine/internal/domain/ranking"
	vo "github.com/vitrine-app/vitrine/internal/domain/subscription/valueobjects"
	"github.com/vitrine-app/vitrine/internal/shared/id"
)

// Subscription represents the subscription aggregate root.
type Subscription struct {
	id        uint
	sid       string
	userID    uint
	planSlug  string
	status    vo.SubscriptionStatus
	startDate time.Time
	endDate   *time.Time // nil means unbounded
	paymentID *uint
	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewSubscription creates a pending subscription awaiting payment review.
func NewSubscription(userID uint, planSlug string, paymentID *uint) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planSlug == "" {
		return nil, fmt.Errorf("plan slug is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixSubscription, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate subscription sid: %w", err)
	}

	now := time.Now().UTC()
	return &Subscription{
		sid:       sid,
		userID:    userID,
		planSlug:  planSlug,
		status:    vo.StatusPending,
		paymentID: paymentID,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID        uint
	SID       string
	UserID    uint
	PlanSlug  string
	Status    vo.SubscriptionStatus
	StartDate time.Time
	EndDate   *time.Time
	PaymentID *uint
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReconstructSubscription rebuilds a subscription from persistence.
func ReconstructSubscription(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if p.PlanSlug == "" {
		return nil, fmt.Errorf("plan slug is required")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}

	return &Subscription{
		id:        p.ID,
		sid:       p.SID,
		userID:    p.UserID,
		planSlug:  p.PlanSlug,
		status:    p.Status,
		startDate: p.StartDate,
		endDate:   p.EndDate,
		paymentID: p.PaymentID,
		version:   p.Version,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                      { return s.id }
func (s *Subscription) SID() string                   { return s.sid }
func (s *Subscription) UserID() uint                  { return s.userID }
func (s *Subscription) PlanSlug() string              { return s.planSlug }
func (s *Subscription) Status() vo.SubscriptionStatus { return s.status }
func (s *Subscription) StartDate() time.Time          { return s.startDate }
func (s *Subscription) EndDate() *time.Time           { return s.endDate }
func (s *Subscription) PaymentID() *uint              { return s.paymentID }
func (s *Subscription) Version() int                  { return s.version }
func (s *Subscription) CreatedAt() time.Time          { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time          { return s.updatedAt }

// SetID sets the database ID (only for persistence layer use)
func (s *Subscription) SetID(dbID uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = dbID
	return nil
}

func (s *Subscription) touch() {
	s.updatedAt = time.Now().UTC()
	s.version++
}

// Activate moves a pending subscription to active, stamping its period.
// A nil end keeps the subscription unbounded.
func (s *Subscription) Activate(start time.Time, end *time.Time) error {
	if s.status == vo.StatusActive {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusActive) {
		return fmt.Errorf("cannot activate subscription with status %s", s.status)
	}
	if end != nil && end.Before(start) {
		return fmt.Errorf("end date must be after start date")
	}

	s.status = vo.StatusActive
	s.startDate = start.UTC()
	if end != nil {
		e := end.UTC()
		s.endDate = &e
	} else {
		s.endDate = nil
	}
	s.touch()
	return nil
}

// Reject declines a pending subscription after payment review.
func (s *Subscription) Reject() error {
	if s.status == vo.StatusRejected {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("cannot reject subscription with status %s", s.status)
	}
	s.status = vo.StatusRejected
	s.touch()
	return nil
}

// MarkExpired retires an active subscription whose end date (plus grace)
// has passed. The caller decides when; the aggregate only enforces the
// transition.
func (s *Subscription) MarkExpired() error {
	if s.status == vo.StatusExpired {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusExpired) {
		return fmt.Errorf("cannot expire subscription with status %s", s.status)
	}
	s.status = vo.StatusExpired
	s.touch()
	return nil
}

// IsPastGrace reports whether the subscription's end date lies more than
// the grace window before now. Unbounded subscriptions never pass.
func (s *Subscription) IsPastGrace(now time.Time, grace time.Duration) bool {
	if s.endDate == nil {
		return false
	}
	return s.endDate.Before(now.Add(-grace))
}

// Snapshot exports the ranking-core input record for this subscription.
func (s *Subscription) Snapshot() ranking.SubscriptionRecord {
	return ranking.SubscriptionRecord{
		PlanID:    s.planSlug,
		Status:    s.status.String(),
		StartDate: s.startDate,
		EndDate:   s.endDate,
		CreatedAt: s.createdAt,
	}
}
