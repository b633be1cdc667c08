package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		Now:         testNow,
		GraceWindow: testGrace,
		Weights:     DefaultCompletenessWeights(),
	}
}

func candidate(sid string, mutate ...func(*Candidate)) Candidate {
	cand := Candidate{
		SID:         sid,
		DisplayName: "Profile " + sid,
		CreatedAt:   testNow.AddDate(0, -6, 0),
	}
	for _, fn := range mutate {
		fn(&cand)
	}
	return cand
}

func withActivePlan(plan string) func(*Candidate) {
	return func(c *Candidate) {
		c.Subscriptions = append(c.Subscriptions,
			activeSub(plan, testNow.AddDate(0, -1, 0), nil))
	}
}

func sids(items []RankedProfile) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.SID)
	}
	return out
}

func TestRank_DerivesAllFields(t *testing.T) {
	c := DefaultCatalog()

	cand := candidate("prf_1", withActivePlan("elite"), func(cd *Candidate) {
		cd.Bio = "hello"
		cd.City = "Porto"
		cd.Images = []string{"a.jpg", "b.jpg"}
	})

	got := c.Rank(cand, testOptions())

	assert.Equal(t, PlanElite, got.EffectivePlan)
	assert.Equal(t, 3, got.Priority)
	assert.Equal(t, 2+1+2, got.Completeness)
	assert.True(t, got.CanShowContact)
}

func TestRank_ManualOverrideBeatsSubscription(t *testing.T) {
	c := DefaultCatalog()

	cand := candidate("prf_1", withActivePlan("free"), func(cd *Candidate) {
		cd.ManualPlanID = "elite"
	})

	got := c.Rank(cand, testOptions())
	assert.Equal(t, PlanElite, got.EffectivePlan)
}

// Spec scenario: A (top tier, suspended), B (mid tier, boost expires in one
// hour), C (mid tier). Expected order B, C, A.
func TestRankAll_BoostAndSuspensionScenario(t *testing.T) {
	c := DefaultCatalog()
	boostEnd := testNow.Add(time.Hour)

	a := candidate("prf_a", withActivePlan("elite"), func(cd *Candidate) {
		cd.RankingSuspended = true
		future := testNow.Add(48 * time.Hour)
		cd.RankingBoostUntil = &future
	})
	b := candidate("prf_b", withActivePlan("premium"), func(cd *Candidate) {
		cd.RankingBoostUntil = &boostEnd
	})
	cc := candidate("prf_c", withActivePlan("premium"))

	ranked := c.RankAll([]Candidate{a, b, cc}, testOptions())
	assert.Equal(t, []string{"prf_b", "prf_c", "prf_a"}, sids(ranked))
}

func TestRankAll_TieBreakChain(t *testing.T) {
	c := DefaultCatalog()
	opts := testOptions()

	// All premium, equal priority. x wins on completeness, y beats z on
	// last activity, z's missing lastActiveAt sorts last despite being the
	// most recently created.
	x := candidate("prf_x", withActivePlan("premium"), func(cd *Candidate) {
		cd.Bio = "complete"
		cd.CreatedAt = testNow.AddDate(-1, 0, 0)
	})
	y := candidate("prf_y", withActivePlan("premium"), func(cd *Candidate) {
		active := testNow.Add(-2 * time.Hour)
		cd.LastActiveAt = &active
		cd.CreatedAt = testNow.AddDate(0, -8, 0)
	})
	z := candidate("prf_z", withActivePlan("premium"), func(cd *Candidate) {
		cd.CreatedAt = testNow.AddDate(0, -1, 0)
	})

	ranked := c.RankAll([]Candidate{z, y, x}, opts)
	assert.Equal(t, []string{"prf_x", "prf_y", "prf_z"}, sids(ranked))
}

func TestRankAll_CreatedAtBreaksFinalTies(t *testing.T) {
	c := DefaultCatalog()

	older := candidate("prf_old", func(cd *Candidate) {
		cd.CreatedAt = testNow.AddDate(0, -2, 0)
	})
	newer := candidate("prf_new", func(cd *Candidate) {
		cd.CreatedAt = testNow.AddDate(0, -1, 0)
	})

	ranked := c.RankAll([]Candidate{older, newer}, testOptions())
	assert.Equal(t, []string{"prf_new", "prf_old"}, sids(ranked))
}

func TestRankAll_Deterministic(t *testing.T) {
	c := DefaultCatalog()
	opts := testOptions()

	cands := []Candidate{
		candidate("prf_1", withActivePlan("elite")),
		candidate("prf_2", withActivePlan("premium")),
		candidate("prf_3"),
		candidate("prf_4", withActivePlan("premium"), func(cd *Candidate) { cd.Bio = "x" }),
	}

	first := sids(c.RankAll(cands, opts))

	// Shuffled input and repeated calls must agree.
	shuffled := []Candidate{cands[2], cands[0], cands[3], cands[1]}
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, sids(c.RankAll(shuffled, opts)))
	}
}

func TestSliceAfterCursor_MatchesOffsetSlicing(t *testing.T) {
	c := DefaultCatalog()

	cands := make([]Candidate, 0, 5)
	for _, sid := range []string{"prf_1", "prf_2", "prf_3", "prf_4", "prf_5"} {
		i := int64(len(cands))
		cands = append(cands, candidate(sid, func(cd *Candidate) {
			cd.CreatedAt = testNow.Add(-time.Duration(i) * time.Hour)
		}))
	}

	all := c.RankAll(cands, testOptions())

	page1, cursor1 := SliceAfterCursor(all, "", 2)
	require.Len(t, page1, 2)
	require.NotEmpty(t, cursor1)

	page2, cursor2 := SliceAfterCursor(all, cursor1, 2)
	require.Len(t, page2, 2)

	page3, cursor3 := SliceAfterCursor(all, cursor2, 2)
	require.Len(t, page3, 1)
	assert.Empty(t, cursor3, "exhausted sequence yields no cursor")

	walked := append(append(append([]RankedProfile{}, page1...), page2...), page3...)
	assert.Equal(t, sids(all), sids(walked), "cursor walk must equal one-shot slicing")
}

func TestSliceAfterCursor_UnknownCursorRestarts(t *testing.T) {
	c := DefaultCatalog()
	all := c.RankAll([]Candidate{candidate("prf_1"), candidate("prf_2")}, testOptions())

	page, _ := SliceAfterCursor(all, "prf_gone", 2)
	assert.Equal(t, sids(all), sids(page))
}

func TestSliceAfterCursor_ZeroTake(t *testing.T) {
	page, next := SliceAfterCursor(nil, "", 0)
	assert.Empty(t, page)
	assert.Empty(t, next)
}
