package ranking

import (
	"time"
)

// Candidate is the snapshot of one listable profile plus the subscription
// rows of its owning account. The caller (the list assembler) is responsible
// for fetching a consistent-enough snapshot; each candidate is ranked
// independently.
type Candidate struct {
	SID          string
	DisplayName  string
	City         string
	Bio          string
	Contact      string
	Images       []string
	Age          int
	AvailableNow bool

	ManualPlanID      string // empty means no administrator override
	AccountPlanID     string // denormalized fallback cached on the account
	RankingSuspended  bool
	RankingBoostUntil *time.Time
	LastActiveAt      *time.Time
	CreatedAt         time.Time

	Subscriptions []SubscriptionRecord
}

// Options carries the explicit clock and the configured ranking parameters.
type Options struct {
	Now         time.Time
	GraceWindow time.Duration
	Weights     CompletenessWeights
}

// RankedProfile is a candidate with its derived ranking and gating fields.
type RankedProfile struct {
	Candidate

	EffectivePlan  PlanID
	Priority       int
	Completeness   int
	CanShowContact bool
}

// Rank derives the effective plan, priority, completeness score, and
// subject-side gating for one candidate.
func (c *Catalog) Rank(cand Candidate, opts Options) RankedProfile {
	subscriptionPlan := ""
	if rec, ok := AuthoritativeSubscription(cand.Subscriptions, opts.Now, opts.GraceWindow); ok {
		subscriptionPlan = rec.PlanID
	}

	plan := c.ResolveEffectivePlan(cand.ManualPlanID, subscriptionPlan, cand.AccountPlanID)

	return RankedProfile{
		Candidate:      cand,
		EffectivePlan:  plan,
		Priority:       c.RankingPriority(plan, cand.RankingSuspended, cand.RankingBoostUntil, opts.Now),
		Completeness:   CompletenessScore(cand.Bio, cand.City, len(cand.Images), opts.Weights),
		CanShowContact: c.CanShowContact(plan),
	}
}

// RankAll ranks every candidate and returns them in listing order.
func (c *Catalog) RankAll(cands []Candidate, opts Options) []RankedProfile {
	ranked := make([]RankedProfile, 0, len(cands))
	for _, cand := range cands {
		ranked = append(ranked, c.Rank(cand, opts))
	}
	SortRanked(ranked)
	return ranked
}
