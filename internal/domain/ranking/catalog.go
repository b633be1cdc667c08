// Package ranking implements plan resolution, listing priority, and content
// gating for profile directories. Every function is pure: inputs arrive as
// snapshots, the current time is an explicit argument, and identical inputs
// always produce identical results.
package ranking

import (
	"fmt"
	"sort"
	"strings"
)

// PlanID identifies a plan tier from the closed catalog set.
type PlanID string

// Built-in tier identifiers. The admin-managed plan table may override the
// catalog contents, but normalization always lands on one of the configured
// tiers or falls through as absent.
const (
	PlanFree    PlanID = "free"
	PlanPremium PlanID = "premium"
	PlanElite   PlanID = "elite"
)

// Tier describes one plan tier as the ranking core sees it.
type Tier struct {
	Plan         PlanID
	BasePriority int
	ShowContact  bool
}

// Catalog is the closed set of known plan tiers with their base priorities.
// The default tier is the one with the lowest base priority.
type Catalog struct {
	tiers       map[PlanID]Tier
	defaultPlan PlanID
	minBase     int
	maxBase     int
}

// NewCatalog builds a catalog from a tier list. At least one tier is
// required and base priorities must be positive and distinct.
func NewCatalog(tiers []Tier) (*Catalog, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("catalog requires at least one tier")
	}

	byPlan := make(map[PlanID]Tier, len(tiers))
	seen := make(map[int]PlanID, len(tiers))
	for _, tier := range tiers {
		if tier.Plan == "" {
			return nil, fmt.Errorf("tier plan id cannot be empty")
		}
		if tier.BasePriority <= 0 {
			return nil, fmt.Errorf("tier %s has non-positive base priority %d", tier.Plan, tier.BasePriority)
		}
		if other, dup := seen[tier.BasePriority]; dup {
			return nil, fmt.Errorf("tiers %s and %s share base priority %d", other, tier.Plan, tier.BasePriority)
		}
		if _, dup := byPlan[tier.Plan]; dup {
			return nil, fmt.Errorf("duplicate tier %s", tier.Plan)
		}
		byPlan[tier.Plan] = tier
		seen[tier.BasePriority] = tier.Plan
	}

	ordered := make([]Tier, 0, len(tiers))
	for _, tier := range byPlan {
		ordered = append(ordered, tier)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].BasePriority < ordered[j].BasePriority
	})

	return &Catalog{
		tiers:       byPlan,
		defaultPlan: ordered[0].Plan,
		minBase:     ordered[0].BasePriority,
		maxBase:     ordered[len(ordered)-1].BasePriority,
	}, nil
}

// DefaultCatalog returns the hardcoded fallback catalog used when the plan
// table is empty.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]Tier{
		{Plan: PlanFree, BasePriority: 1, ShowContact: false},
		{Plan: PlanPremium, BasePriority: 2, ShowContact: true},
		{Plan: PlanElite, BasePriority: 3, ShowContact: true},
	})
	if err != nil {
		panic(fmt.Sprintf("ranking: default catalog invalid: %v", err))
	}
	return c
}

// Normalize maps a raw plan string onto a known tier. Unknown or malformed
// values report ok=false and are treated as absent by the resolver, never as
// errors.
func (c *Catalog) Normalize(raw string) (PlanID, bool) {
	plan := PlanID(strings.ToLower(strings.TrimSpace(raw)))
	if plan == "" {
		return "", false
	}
	if _, known := c.tiers[plan]; !known {
		return "", false
	}
	return plan, true
}

// DefaultPlan returns the lowest tier, the fallback of the precedence chain.
func (c *Catalog) DefaultPlan() PlanID {
	return c.defaultPlan
}

// Contains reports whether the plan is part of the closed set.
func (c *Catalog) Contains(plan PlanID) bool {
	_, known := c.tiers[plan]
	return known
}

// BasePriority returns the tier's base priority. Unknown tiers get the
// default tier's value.
func (c *Catalog) BasePriority(plan PlanID) int {
	if tier, known := c.tiers[plan]; known {
		return tier.BasePriority
	}
	return c.minBase
}

// MinPriority is the lowest priority on the scale; administrative
// suspension forces a profile here.
func (c *Catalog) MinPriority() int {
	return c.minBase
}

// BoostedPriority sits strictly above the top tier's base value so that
// temporary promotions outrank organic top-tier members.
func (c *Catalog) BoostedPriority() int {
	return c.maxBase + 1
}

// CanShowContact reports whether the subject tier exposes contact details.
// Unknown tiers behave like the default tier.
func (c *Catalog) CanShowContact(plan PlanID) bool {
	if tier, known := c.tiers[plan]; known {
		return tier.ShowContact
	}
	return c.tiers[c.defaultPlan].ShowContact
}

// Tiers returns the catalog's tiers ordered by ascending base priority.
func (c *Catalog) Tiers() []Tier {
	ordered := make([]Tier, 0, len(c.tiers))
	for _, tier := range c.tiers {
		ordered = append(ordered, tier)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].BasePriority < ordered[j].BasePriority
	})
	return ordered
}
