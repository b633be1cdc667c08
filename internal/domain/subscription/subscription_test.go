package subscription

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-app/vitrine/internal/domain/ranking"
	vo "github.com/vitrine-app/vitrine/internal/domain/subscription/valueobjects"
)

func newPendingSubscription(t *testing.T) *Subscription {
	t.Helper()
	sub, err := NewSubscription(3, "premium", nil)
	require.NoError(t, err)
	require.NotNil(t, sub)
	return sub
}

func TestNewSubscription(t *testing.T) {
	paymentID := uint(9)
	sub, err := NewSubscription(3, "elite", &paymentID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sub.SID(), "sub_"))
	assert.Equal(t, uint(3), sub.UserID())
	assert.Equal(t, "elite", sub.PlanSlug())
	assert.Equal(t, vo.StatusPending, sub.Status())
	require.NotNil(t, sub.PaymentID())
	assert.Equal(t, uint(9), *sub.PaymentID())
	assert.Nil(t, sub.EndDate())
	assert.Equal(t, 1, sub.Version())
}

func TestNewSubscription_Invalid(t *testing.T) {
	_, err := NewSubscription(0, "premium", nil)
	assert.Error(t, err)

	_, err = NewSubscription(1, "", nil)
	assert.Error(t, err)
}

func TestSubscription_Activate(t *testing.T) {
	sub := newPendingSubscription(t)
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	require.NoError(t, sub.Activate(start, &end))
	assert.Equal(t, vo.StatusActive, sub.Status())
	assert.True(t, sub.StartDate().Equal(start))
	require.NotNil(t, sub.EndDate())
	assert.True(t, sub.EndDate().Equal(end))

	// Idempotent.
	v := sub.Version()
	require.NoError(t, sub.Activate(start, &end))
	assert.Equal(t, v, sub.Version())
}

func TestSubscription_ActivateUnbounded(t *testing.T) {
	sub := newPendingSubscription(t)
	require.NoError(t, sub.Activate(time.Now().UTC(), nil))
	assert.Nil(t, sub.EndDate())
}

func TestSubscription_ActivateRejectsInvertedPeriod(t *testing.T) {
	sub := newPendingSubscription(t)
	start := time.Now().UTC()
	end := start.Add(-time.Hour)
	assert.Error(t, sub.Activate(start, &end))
}

func TestSubscription_RejectOnlyPending(t *testing.T) {
	sub := newPendingSubscription(t)
	require.NoError(t, sub.Reject())
	assert.Equal(t, vo.StatusRejected, sub.Status())

	active := newPendingSubscription(t)
	require.NoError(t, active.Activate(time.Now().UTC(), nil))
	assert.Error(t, active.Reject())
}

func TestSubscription_MarkExpired(t *testing.T) {
	sub := newPendingSubscription(t)
	assert.Error(t, sub.MarkExpired(), "pending cannot expire")

	require.NoError(t, sub.Activate(time.Now().UTC(), nil))
	require.NoError(t, sub.MarkExpired())
	assert.Equal(t, vo.StatusExpired, sub.Status())
}

func TestSubscription_IsPastGrace(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	grace := 3 * 24 * time.Hour

	sub := newPendingSubscription(t)
	start := now.AddDate(0, -1, 0)

	yesterday := now.AddDate(0, 0, -1)
	require.NoError(t, sub.Activate(start, &yesterday))
	assert.False(t, sub.IsPastGrace(now, grace))

	other := newPendingSubscription(t)
	tenDaysAgo := now.AddDate(0, 0, -10)
	require.NoError(t, other.Activate(start, &tenDaysAgo))
	assert.True(t, other.IsPastGrace(now, grace))

	unbounded := newPendingSubscription(t)
	require.NoError(t, unbounded.Activate(start, nil))
	assert.False(t, unbounded.IsPastGrace(now, grace))
}

func TestSubscription_Snapshot(t *testing.T) {
	sub := newPendingSubscription(t)
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	require.NoError(t, sub.Activate(start, &end))

	snap := sub.Snapshot()
	assert.Equal(t, "premium", snap.PlanID)
	assert.Equal(t, ranking.SubscriptionStatusActive, snap.Status)
	assert.True(t, snap.StartDate.Equal(start))
	require.NotNil(t, snap.EndDate)
	assert.True(t, snap.EndDate.Equal(end))
}

func TestReconstructSubscription_Validation(t *testing.T) {
	now := time.Now().UTC()
	params := ReconstructParams{
		ID:        1,
		SID:       "sub_x",
		UserID:    2,
		PlanSlug:  "premium",
		Status:    vo.StatusActive,
		StartDate: now,
		Version:   2,
		CreatedAt: now,
		UpdatedAt: now,
	}

	sub, err := ReconstructSubscription(params)
	require.NoError(t, err)
	assert.Equal(t, uint(1), sub.ID())

	bad := params
	bad.Status = "limbo"
	_, err = ReconstructSubscription(bad)
	assert.Error(t, err)
}
