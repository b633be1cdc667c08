// Package payment holds payment-by-proof records: a member uploads a
// transfer receipt, an administrator reviews it, and approval activates the
// linked subscription.
package payment

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/vitrine-app/vitrine/internal/domain/payment/valueobjects"
	"github.com/vitrine-app/vitrine/internal/shared/id"
)

// Payment represents one submitted payment proof.
type Payment struct {
	id           uint
	sid          string
	userID       uint
	planSlug     string
	amountCents  int64
	currency     string
	proofURL     string
	status       vo.PaymentStatus
	reviewerID   *uint
	reviewerNote string
	reviewedAt   *time.Time
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewPayment records a freshly submitted proof.
func NewPayment(userID uint, planSlug string, amountCents int64, currency, proofURL string) (*Payment, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if planSlug == "" {
		return nil, fmt.Errorf("plan slug is required")
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if strings.TrimSpace(proofURL) == "" {
		return nil, fmt.Errorf("proof URL is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixPayment, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment sid: %w", err)
	}

	now := time.Now().UTC()
	return &Payment{
		sid:         sid,
		userID:      userID,
		planSlug:    planSlug,
		amountCents: amountCents,
		currency:    strings.ToUpper(currency),
		proofURL:    proofURL,
		status:      vo.StatusSubmitted,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID           uint
	SID          string
	UserID       uint
	PlanSlug     string
	AmountCents  int64
	Currency     string
	ProofURL     string
	Status       vo.PaymentStatus
	ReviewerID   *uint
	ReviewerNote string
	ReviewedAt   *time.Time
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructPayment rebuilds a payment from persistence.
func ReconstructPayment(p ReconstructParams) (*Payment, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid payment status: %s", p.Status)
	}

	return &Payment{
		id:           p.ID,
		sid:          p.SID,
		userID:       p.UserID,
		planSlug:     p.PlanSlug,
		amountCents:  p.AmountCents,
		currency:     p.Currency,
		proofURL:     p.ProofURL,
		status:       p.Status,
		reviewerID:   p.ReviewerID,
		reviewerNote: p.ReviewerNote,
		reviewedAt:   p.ReviewedAt,
		version:      p.Version,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

func (p *Payment) ID() uint                   { return p.id }
func (p *Payment) SID() string                { return p.sid }
func (p *Payment) UserID() uint               { return p.userID }
func (p *Payment) PlanSlug() string           { return p.planSlug }
func (p *Payment) AmountCents() int64         { return p.amountCents }
func (p *Payment) Currency() string           { return p.currency }
func (p *Payment) ProofURL() string           { return p.proofURL }
func (p *Payment) Status() vo.PaymentStatus   { return p.status }
func (p *Payment) ReviewerID() *uint          { return p.reviewerID }
func (p *Payment) ReviewerNote() string       { return p.reviewerNote }
func (p *Payment) ReviewedAt() *time.Time     { return p.reviewedAt }
func (p *Payment) Version() int               { return p.version }
func (p *Payment) CreatedAt() time.Time       { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time       { return p.updatedAt }

// SetID sets the database ID (only for persistence layer use)
func (p *Payment) SetID(dbID uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	p.id = dbID
	return nil
}

func (p *Payment) review(status vo.PaymentStatus, reviewerID uint, note string) error {
	if p.status.IsFinal() {
		return fmt.Errorf("payment already reviewed as %s", p.status)
	}
	if reviewerID == 0 {
		return fmt.Errorf("reviewer ID is required")
	}

	now := time.Now().UTC()
	p.status = status
	p.reviewerID = &reviewerID
	p.reviewerNote = note
	p.reviewedAt = &now
	p.updatedAt = now
	p.version++
	return nil
}

// Approve accepts the proof.
func (p *Payment) Approve(reviewerID uint, note string) error {
	return p.review(vo.StatusApproved, reviewerID, note)
}

// Reject declines the proof with a note for the member.
func (p *Payment) Reject(reviewerID uint, note string) error {
	if strings.TrimSpace(note) == "" {
		return fmt.Errorf("rejection note is required")
	}
	return p.review(vo.StatusRejected, reviewerID, note)
}
