package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-app/vitrine/internal/domain/ranking"
)

func TestNewPlan(t *testing.T) {
	p, err := NewPlan(" Elite ", "Elite", 3, true, 4900, "eur", 30)
	require.NoError(t, err)

	assert.Equal(t, "elite", p.Slug())
	assert.Equal(t, "EUR", p.Currency())
	assert.Equal(t, 3, p.BasePriority())
	assert.True(t, p.ShowContact())
	assert.True(t, p.IsActive())
}

func TestNewPlan_Invalid(t *testing.T) {
	_, err := NewPlan("", "x", 1, false, 0, "EUR", 0)
	assert.Error(t, err)

	_, err = NewPlan("x", "x", 0, false, 0, "EUR", 0)
	assert.Error(t, err)

	_, err = NewPlan("x", "x", 1, false, -1, "EUR", 0)
	assert.Error(t, err)
}

func TestPlan_CatalogTier(t *testing.T) {
	p, err := NewPlan("premium", "Premium", 2, true, 1900, "EUR", 30)
	require.NoError(t, err)

	tier := p.CatalogTier()
	assert.Equal(t, ranking.PlanID("premium"), tier.Plan)
	assert.Equal(t, 2, tier.BasePriority)
	assert.True(t, tier.ShowContact)
}

func TestPlan_SubscriptionPeriod(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	bounded, err := NewPlan("premium", "Premium", 2, true, 1900, "EUR", 30)
	require.NoError(t, err)
	start, end := bounded.SubscriptionPeriod(now)
	assert.True(t, start.Equal(now))
	require.NotNil(t, end)
	assert.True(t, end.Equal(now.AddDate(0, 0, 30)))

	unbounded, err := NewPlan("free", "Free", 1, false, 0, "EUR", 0)
	require.NoError(t, err)
	_, end = unbounded.SubscriptionPeriod(now)
	assert.Nil(t, end)
}

func TestPlan_Deactivate(t *testing.T) {
	p, err := NewPlan("premium", "Premium", 2, true, 1900, "EUR", 30)
	require.NoError(t, err)

	v := p.Version()
	p.Deactivate()
	assert.False(t, p.IsActive())
	assert.Equal(t, v+1, p.Version())

	p.Deactivate()
	assert.Equal(t, v+1, p.Version(), "deactivating twice is a no-op")
}
