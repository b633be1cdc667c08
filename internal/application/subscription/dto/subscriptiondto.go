// Package dto defines the transport-facing views of subscriptions, plans,
// and payment proofs.
package dto

import (
	"time"

	"github.com/vitrine-app/vitrine/internal/domain/payment"
	"github.com/vitrine-app/vitrine/internal/domain/plan"
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
)

// SubscriptionDTO is the API view of one subscription.
type SubscriptionDTO struct {
	SID       string     `json:"sid"`
	PlanSlug  string     `json:"plan_slug"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// FromSubscription maps the aggregate into its API view. A zero start date
// (subscription not yet activated) is omitted.
func FromSubscription(s *subscription.Subscription) SubscriptionDTO {
	d := SubscriptionDTO{
		SID:       s.SID(),
		PlanSlug:  s.PlanSlug(),
		Status:    s.Status().String(),
		EndDate:   s.EndDate(),
		CreatedAt: s.CreatedAt(),
	}
	if start := s.StartDate(); !start.IsZero() {
		d.StartDate = &start
	}
	return d
}

// FromSubscriptions maps a list of aggregates.
func FromSubscriptions(subs []*subscription.Subscription) []SubscriptionDTO {
	out := make([]SubscriptionDTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubscription(s))
	}
	return out
}

// PlanDTO is the API view of one purchasable plan.
type PlanDTO struct {
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	PriceCents   int64  `json:"price_cents"`
	Currency     string `json:"currency"`
	DurationDays int    `json:"duration_days"`
	ShowsContact bool   `json:"shows_contact"`
}

// FromPlan maps a catalog entry into its API view. Base priority is an
// internal ranking input and deliberately not exposed.
func FromPlan(p *plan.Plan) PlanDTO {
	return PlanDTO{
		Slug:         p.Slug(),
		Name:         p.Name(),
		PriceCents:   p.PriceCents(),
		Currency:     p.Currency(),
		DurationDays: p.DurationDays(),
		ShowsContact: p.ShowContact(),
	}
}

// FromPlans maps a list of catalog entries.
func FromPlans(plans []*plan.Plan) []PlanDTO {
	out := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, FromPlan(p))
	}
	return out
}

// PaymentDTO is the API view of one payment proof.
type PaymentDTO struct {
	SID          string     `json:"sid"`
	PlanSlug     string     `json:"plan_slug"`
	AmountCents  int64      `json:"amount_cents"`
	Currency     string     `json:"currency"`
	ProofURL     string     `json:"proof_url"`
	Status       string     `json:"status"`
	ReviewerNote string     `json:"reviewer_note,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// FromPayment maps a payment proof into its API view.
func FromPayment(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		SID:          p.SID(),
		PlanSlug:     p.PlanSlug(),
		AmountCents:  p.AmountCents(),
		Currency:     p.Currency(),
		ProofURL:     p.ProofURL(),
		Status:       p.Status().String(),
		ReviewerNote: p.ReviewerNote(),
		ReviewedAt:   p.ReviewedAt(),
		CreatedAt:    p.CreatedAt(),
	}
}
