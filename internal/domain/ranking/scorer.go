package ranking

import (
	"strings"
	"time"
)

// CompletenessWeights tunes the secondary, tie-breaking completeness score.
// The weights are configuration values; the defaults are deliberately small
// so completeness never competes with tier priorities.
type CompletenessWeights struct {
	Bio             int
	City            int
	PerImage        int
	MaxScoredImages int
}

// DefaultCompletenessWeights returns the built-in weighting.
func DefaultCompletenessWeights() CompletenessWeights {
	return CompletenessWeights{
		Bio:             2,
		City:            1,
		PerImage:        1,
		MaxScoredImages: 5,
	}
}

// RankingPriority computes the primary sort key for a profile.
//
// Suspension is an administrative demotion and overrides everything,
// including an unexpired boost. An unexpired boost outranks every organic
// tier. Otherwise the priority is the tier's base value.
func (c *Catalog) RankingPriority(plan PlanID, suspended bool, boostUntil *time.Time, now time.Time) int {
	if suspended {
		return c.MinPriority()
	}
	if boostUntil != nil && boostUntil.After(now) {
		return c.BoostedPriority()
	}
	return c.BasePriority(plan)
}

// CompletenessScore computes the tie-breaking profile completeness signal.
// Missing fields contribute zero; the image contribution is capped so long
// galleries stop accumulating advantage. Never errors, never blocks ranking.
func CompletenessScore(bio, city string, imageCount int, w CompletenessWeights) int {
	score := 0
	if strings.TrimSpace(bio) != "" {
		score += w.Bio
	}
	if strings.TrimSpace(city) != "" {
		score += w.City
	}
	if imageCount > 0 {
		scored := imageCount
		if w.MaxScoredImages > 0 && scored > w.MaxScoredImages {
			scored = w.MaxScoredImages
		}
		score += scored * w.PerImage
	}
	return score
}
