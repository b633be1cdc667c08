// Package plan holds the administrator-managed plan catalog entries. The
// table overrides the hardcoded ranking catalog when populated.
package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/vitrine-app/vitrine/internal/domain/ranking"
)

// Plan represents one purchasable tier as configured by administrators.
type Plan struct {
	id           uint
	slug         string
	name         string
	basePriority int
	showContact  bool
	priceCents   int64
	currency     string
	durationDays int
	sortOrder    int
	active       bool
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewPlan creates a catalog entry. A zero durationDays means subscriptions
// to this plan are unbounded.
func NewPlan(slug, name string, basePriority int, showContact bool, priceCents int64, currency string, durationDays int) (*Plan, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, fmt.Errorf("plan slug is required")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if basePriority <= 0 {
		return nil, fmt.Errorf("base priority must be positive")
	}
	if priceCents < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if durationDays < 0 {
		return nil, fmt.Errorf("duration cannot be negative")
	}

	now := time.Now().UTC()
	return &Plan{
		slug:         slug,
		name:         name,
		basePriority: basePriority,
		showContact:  showContact,
		priceCents:   priceCents,
		currency:     strings.ToUpper(currency),
		durationDays: durationDays,
		active:       true,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID           uint
	Slug         string
	Name         string
	BasePriority int
	ShowContact  bool
	PriceCents   int64
	Currency     string
	DurationDays int
	SortOrder    int
	Active       bool
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(p ReconstructParams) (*Plan, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if p.Slug == "" {
		return nil, fmt.Errorf("plan slug is required")
	}
	if p.BasePriority <= 0 {
		return nil, fmt.Errorf("base priority must be positive")
	}

	return &Plan{
		id:           p.ID,
		slug:         p.Slug,
		name:         p.Name,
		basePriority: p.BasePriority,
		showContact:  p.ShowContact,
		priceCents:   p.PriceCents,
		currency:     p.Currency,
		durationDays: p.DurationDays,
		sortOrder:    p.SortOrder,
		active:       p.Active,
		version:      p.Version,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

func (p *Plan) ID() uint           { return p.id }
func (p *Plan) Slug() string       { return p.slug }
func (p *Plan) Name() string       { return p.name }
func (p *Plan) BasePriority() int  { return p.basePriority }
func (p *Plan) ShowContact() bool  { return p.showContact }
func (p *Plan) PriceCents() int64  { return p.priceCents }
func (p *Plan) Currency() string   { return p.currency }
func (p *Plan) DurationDays() int  { return p.durationDays }
func (p *Plan) SortOrder() int     { return p.sortOrder }
func (p *Plan) IsActive() bool     { return p.active }
func (p *Plan) Version() int       { return p.version }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the database ID (only for persistence layer use)
func (p *Plan) SetID(dbID uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = dbID
	return nil
}

// Deactivate hides the plan from purchase without affecting resolution of
// subscriptions already on it.
func (p *Plan) Deactivate() {
	if !p.active {
		return
	}
	p.active = false
	p.updatedAt = time.Now().UTC()
	p.version++
}

// SetSortOrder positions the plan on the public pricing list.
func (p *Plan) SetSortOrder(order int) {
	if p.sortOrder == order {
		return
	}
	p.sortOrder = order
	p.updatedAt = time.Now().UTC()
	p.version++
}

// CatalogTier exports the entry as a ranking catalog tier.
func (p *Plan) CatalogTier() ranking.Tier {
	return ranking.Tier{
		Plan:         ranking.PlanID(p.slug),
		BasePriority: p.basePriority,
		ShowContact:  p.showContact,
	}
}

// SubscriptionPeriod computes the activation period starting at now;
// the end pointer is nil for unbounded plans.
func (p *Plan) SubscriptionPeriod(now time.Time) (time.Time, *time.Time) {
	start := now.UTC()
	if p.durationDays == 0 {
		return start, nil
	}
	end := start.AddDate(0, 0, p.durationDays)
	return start, &end
}
