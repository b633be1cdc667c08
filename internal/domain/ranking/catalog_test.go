package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_RejectsEmpty(t *testing.T) {
	_, err := NewCatalog(nil)
	assert.Error(t, err)
}

func TestNewCatalog_RejectsDuplicatePriorities(t *testing.T) {
	_, err := NewCatalog([]Tier{
		{Plan: "a", BasePriority: 1},
		{Plan: "b", BasePriority: 1},
	})
	assert.Error(t, err)
}

func TestNewCatalog_RejectsNonPositivePriority(t *testing.T) {
	_, err := NewCatalog([]Tier{{Plan: "a", BasePriority: 0}})
	assert.Error(t, err)
}

func TestDefaultCatalog_Shape(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, PlanFree, c.DefaultPlan())
	assert.Equal(t, 1, c.MinPriority())
	assert.Equal(t, 4, c.BoostedPriority(), "boost must sit above the top tier")

	assert.Equal(t, 1, c.BasePriority(PlanFree))
	assert.Equal(t, 2, c.BasePriority(PlanPremium))
	assert.Equal(t, 3, c.BasePriority(PlanElite))

	assert.False(t, c.CanShowContact(PlanFree))
	assert.True(t, c.CanShowContact(PlanPremium))
	assert.True(t, c.CanShowContact(PlanElite))
}

func TestCatalog_Normalize(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		raw    string
		want   PlanID
		wantOK bool
	}{
		{"elite", PlanElite, true},
		{"Elite", PlanElite, true},
		{"  PREMIUM  ", PlanPremium, true},
		{"free", PlanFree, true},
		{"", "", false},
		{"gold", "", false},
		{"premium!", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := c.Normalize(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_UnknownTierDefaults(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, c.MinPriority(), c.BasePriority(PlanID("mystery")))
	assert.False(t, c.CanShowContact(PlanID("mystery")), "unknown tiers behave like the free tier")
}

func TestCatalog_TiersOrdered(t *testing.T) {
	c, err := NewCatalog([]Tier{
		{Plan: "top", BasePriority: 9, ShowContact: true},
		{Plan: "base", BasePriority: 2},
		{Plan: "mid", BasePriority: 5, ShowContact: true},
	})
	require.NoError(t, err)

	tiers := c.Tiers()
	require.Len(t, tiers, 3)
	assert.Equal(t, PlanID("base"), tiers[0].Plan)
	assert.Equal(t, PlanID("mid"), tiers[1].Plan)
	assert.Equal(t, PlanID("top"), tiers[2].Plan)
	assert.Equal(t, PlanID("base"), c.DefaultPlan())
	assert.Equal(t, 10, c.BoostedPriority())
}
