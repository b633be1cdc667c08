package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRankingPriority_PlanBase(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, 1, c.RankingPriority(PlanFree, false, nil, testNow))
	assert.Equal(t, 2, c.RankingPriority(PlanPremium, false, nil, testNow))
	assert.Equal(t, 3, c.RankingPriority(PlanElite, false, nil, testNow))
}

func TestRankingPriority_SuspensionOverridesEverything(t *testing.T) {
	c := DefaultCatalog()
	boost := testNow.Add(24 * time.Hour)

	got := c.RankingPriority(PlanElite, true, &boost, testNow)
	assert.Equal(t, c.MinPriority(), got, "suspension must beat both tier and unexpired boost")
}

func TestRankingPriority_BoostOutranksTopTier(t *testing.T) {
	c := DefaultCatalog()
	boost := testNow.Add(time.Hour)

	got := c.RankingPriority(PlanFree, false, &boost, testNow)
	assert.Greater(t, got, c.BasePriority(PlanElite))
}

func TestRankingPriority_ExpiredBoostIgnored(t *testing.T) {
	c := DefaultCatalog()

	expired := testNow.Add(-time.Minute)
	assert.Equal(t, 2, c.RankingPriority(PlanPremium, false, &expired, testNow))

	// Boundary: a boost expiring exactly at now is no longer in effect.
	exact := testNow
	assert.Equal(t, 2, c.RankingPriority(PlanPremium, false, &exact, testNow))
}

func TestCompletenessScore(t *testing.T) {
	w := DefaultCompletenessWeights()

	tests := []struct {
		name      string
		bio, city string
		images    int
		want      int
	}{
		{"empty profile", "", "", 0, 0},
		{"bio only", "hello", "", 0, w.Bio},
		{"city only", "", "Lisbon", 0, w.City},
		{"whitespace does not count", "   ", "\t", 0, 0},
		{"images accumulate", "", "", 3, 3 * w.PerImage},
		{"image contribution capped", "", "", 50, w.MaxScoredImages * w.PerImage},
		{"negative image count contributes zero", "", "", -4, 0},
		{"full profile", "hello", "Lisbon", 2, w.Bio + w.City + 2*w.PerImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletenessScore(tt.bio, tt.city, tt.images, w))
		})
	}
}

func TestCompletenessScore_UncappedWhenMaxZero(t *testing.T) {
	w := CompletenessWeights{PerImage: 1}
	assert.Equal(t, 40, CompletenessScore("", "", 40, w))
}
