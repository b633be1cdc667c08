package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

const testGrace = 3 * 24 * time.Hour

func timePtr(t time.Time) *time.Time { return &t }

func activeSub(plan string, start time.Time, end *time.Time) SubscriptionRecord {
	return SubscriptionRecord{
		PlanID:    plan,
		Status:    SubscriptionStatusActive,
		StartDate: start,
		EndDate:   end,
		CreatedAt: start,
	}
}

func TestResolveEffectivePlan_Precedence(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name                      string
		manual, subPlan, account  string
		want                      PlanID
	}{
		{"manual wins over everything", "elite", "free", "premium", PlanElite},
		{"subscription wins over account", "", "premium", "elite", PlanPremium},
		{"account fallback", "", "", "premium", PlanPremium},
		{"all absent defaults to free", "", "", "", PlanFree},
		{"malformed manual falls through", "Top Tier!!", "premium", "", PlanPremium},
		{"malformed everything defaults", "???", "not-a-plan", "42", PlanFree},
		{"case insensitive normalization", "ELITE", "", "", PlanElite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ResolveEffectivePlan(tt.manual, tt.subPlan, tt.account)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEffectivePlan_Deterministic(t *testing.T) {
	c := DefaultCatalog()
	first := c.ResolveEffectivePlan("", "premium", "free")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, c.ResolveEffectivePlan("", "premium", "free"))
	}
}

func TestAuthoritativeSubscription_PicksLatestStart(t *testing.T) {
	older := activeSub("premium", testNow.AddDate(0, -2, 0), nil)
	newer := activeSub("elite", testNow.AddDate(0, -1, 0), nil)

	got, ok := AuthoritativeSubscription([]SubscriptionRecord{older, newer}, testNow, testGrace)
	require.True(t, ok)
	assert.Equal(t, "elite", got.PlanID)

	// Input order must not matter.
	got, ok = AuthoritativeSubscription([]SubscriptionRecord{newer, older}, testNow, testGrace)
	require.True(t, ok)
	assert.Equal(t, "elite", got.PlanID)
}

func TestAuthoritativeSubscription_TieBreaksOnCreatedAt(t *testing.T) {
	start := testNow.AddDate(0, -1, 0)
	first := activeSub("premium", start, nil)
	second := activeSub("elite", start, nil)
	second.CreatedAt = first.CreatedAt.Add(time.Hour)

	got, ok := AuthoritativeSubscription([]SubscriptionRecord{first, second}, testNow, testGrace)
	require.True(t, ok)
	assert.Equal(t, "elite", got.PlanID)
}

func TestAuthoritativeSubscription_GraceWindow(t *testing.T) {
	start := testNow.AddDate(0, -1, 0)

	t.Run("ended yesterday still counts with 3 day grace", func(t *testing.T) {
		rec := activeSub("premium", start, timePtr(testNow.AddDate(0, 0, -1)))
		_, ok := AuthoritativeSubscription([]SubscriptionRecord{rec}, testNow, testGrace)
		assert.True(t, ok)
	})

	t.Run("ended ten days ago does not", func(t *testing.T) {
		rec := activeSub("premium", start, timePtr(testNow.AddDate(0, 0, -10)))
		_, ok := AuthoritativeSubscription([]SubscriptionRecord{rec}, testNow, testGrace)
		assert.False(t, ok)
	})

	t.Run("nil end date is unbounded", func(t *testing.T) {
		rec := activeSub("premium", start, nil)
		_, ok := AuthoritativeSubscription([]SubscriptionRecord{rec}, testNow, 0)
		assert.True(t, ok)
	})
}

func TestAuthoritativeSubscription_IgnoresNonActive(t *testing.T) {
	start := testNow.AddDate(0, -1, 0)
	records := []SubscriptionRecord{
		{PlanID: "elite", Status: "pending", StartDate: start, CreatedAt: start},
		{PlanID: "elite", Status: "rejected", StartDate: start, CreatedAt: start},
		{PlanID: "elite", Status: "expired", StartDate: start, CreatedAt: start},
	}

	_, ok := AuthoritativeSubscription(records, testNow, testGrace)
	assert.False(t, ok)
}

func TestAuthoritativeSubscription_EmptyInput(t *testing.T) {
	_, ok := AuthoritativeSubscription(nil, testNow, testGrace)
	assert.False(t, ok)
}
