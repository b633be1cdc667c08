package ranking

import (
	"time"
)

// SubscriptionStatusActive is the only status that counts toward the
// authoritative subscription. Snapshots carry the raw status string so the
// core stays decoupled from the persistence layer's enum.
const SubscriptionStatusActive = "active"

// SubscriptionRecord is the snapshot of one subscription row as the ranking
// core needs it.
type SubscriptionRecord struct {
	PlanID    string
	Status    string
	StartDate time.Time
	EndDate   *time.Time // nil means unbounded
	CreatedAt time.Time
}

// withinGrace reports whether the record still counts as active at now,
// honoring the grace window past its end date.
func (r SubscriptionRecord) withinGrace(now time.Time, grace time.Duration) bool {
	if r.Status != SubscriptionStatusActive {
		return false
	}
	if r.EndDate == nil {
		return true
	}
	return !r.EndDate.Before(now.Add(-grace))
}

// AuthoritativeSubscription selects the subscription that governs ranking
// and gating: among records active at now (including the grace window past
// the end date), the one with the latest start date wins, tie-broken by
// latest creation time. Reports ok=false when no record qualifies.
func AuthoritativeSubscription(records []SubscriptionRecord, now time.Time, grace time.Duration) (SubscriptionRecord, bool) {
	var best SubscriptionRecord
	found := false

	for _, rec := range records {
		if !rec.withinGrace(now, grace) {
			continue
		}
		if !found || rec.StartDate.After(best.StartDate) ||
			(rec.StartDate.Equal(best.StartDate) && rec.CreatedAt.After(best.CreatedAt)) {
			best = rec
			found = true
		}
	}

	return best, found
}

// ResolveEffectivePlan computes the plan tier actually used for ranking and
// gating. Precedence, evaluated top to bottom:
//
//  1. manualOverride: administrator plan override on the profile
//  2. subscriptionPlan: plan of the authoritative active subscription
//  3. accountPlan: denormalized plan cached on the account
//  4. the catalog's default (lowest) tier
//
// Inputs that do not normalize to a known tier are treated as absent and
// fall through; the result is always a member of the closed set.
func (c *Catalog) ResolveEffectivePlan(manualOverride, subscriptionPlan, accountPlan string) PlanID {
	for _, raw := range []string{manualOverride, subscriptionPlan, accountPlan} {
		if plan, ok := c.Normalize(raw); ok {
			return plan
		}
	}
	return c.defaultPlan
}
