package profile

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/vitrine-app/vitrine/internal/domain/profile/valueobjects"
)

func newPendingProfile(t *testing.T) *Profile {
	t.Helper()
	p, err := NewProfile(7, "Ana Maria", "Lisbon", 29)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func newListedProfile(t *testing.T) *Profile {
	t.Helper()
	p := newPendingProfile(t)
	require.NoError(t, p.Approve())
	return p
}

func TestNewProfile_ValidInput(t *testing.T) {
	p := newPendingProfile(t)

	assert.True(t, strings.HasPrefix(p.SID(), "prf_"))
	assert.Equal(t, uint(7), p.UserID())
	assert.Equal(t, "Ana Maria", p.DisplayName())
	assert.Equal(t, "ana-maria", p.Slug())
	assert.Equal(t, "Lisbon", p.City())
	assert.Equal(t, 29, p.Age())
	assert.Equal(t, vo.StatusPending, p.Status())
	assert.Equal(t, 1, p.Version())
	assert.Nil(t, p.ManualPlanID())
	assert.False(t, p.RankingSuspended())
	assert.Nil(t, p.RankingBoostUntil())
	assert.Nil(t, p.LastActiveAt())
}

func TestNewProfile_Invalid(t *testing.T) {
	_, err := NewProfile(0, "Ana", "", 20)
	assert.Error(t, err)

	_, err = NewProfile(1, "   ", "", 20)
	assert.Error(t, err)

	_, err = NewProfile(1, "Ana", "", -1)
	assert.Error(t, err)
}

func TestProfile_Lifecycle(t *testing.T) {
	p := newPendingProfile(t)

	require.NoError(t, p.Approve())
	assert.Equal(t, vo.StatusListed, p.Status())
	assert.True(t, p.Status().IsListable())

	require.NoError(t, p.Suspend())
	assert.Equal(t, vo.StatusSuspended, p.Status())

	require.NoError(t, p.Relist())
	assert.Equal(t, vo.StatusListed, p.Status())
}

func TestProfile_RejectOnlyFromPending(t *testing.T) {
	p := newListedProfile(t)
	assert.Error(t, p.Reject())

	pending := newPendingProfile(t)
	require.NoError(t, pending.Reject())
	assert.Equal(t, vo.StatusRejected, pending.Status())
}

func TestProfile_ApproveIdempotent(t *testing.T) {
	p := newListedProfile(t)
	v := p.Version()
	require.NoError(t, p.Approve())
	assert.Equal(t, v, p.Version(), "re-approving a listed profile is a no-op")
}

func TestProfile_UpdateDetails(t *testing.T) {
	p := newListedProfile(t)

	err := p.UpdateDetails("Bea", "*hi*", "<p><em>hi</em></p>", "Porto", "+351 000", 31, true)
	require.NoError(t, err)

	assert.Equal(t, "Bea", p.DisplayName())
	assert.Equal(t, "bea", p.Slug())
	assert.Equal(t, "*hi*", p.Bio())
	assert.Equal(t, "<p><em>hi</em></p>", p.BioHTML())
	assert.Equal(t, "Porto", p.City())
	assert.Equal(t, "+351 000", p.Contact())
	assert.Equal(t, 31, p.Age())
	assert.True(t, p.AvailableNow())

	assert.Error(t, p.UpdateDetails("", "", "", "", "", 20, false))
}

func TestProfile_ReplaceImages(t *testing.T) {
	p := newListedProfile(t)

	require.NoError(t, p.ReplaceImages([]string{"a.jpg", "b.jpg"}))
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images())

	tooMany := make([]string, MaxImages+1)
	for i := range tooMany {
		tooMany[i] = "x.jpg"
	}
	assert.Error(t, p.ReplaceImages(tooMany))

	assert.Error(t, p.ReplaceImages([]string{" "}))
}

func TestProfile_RankingControls(t *testing.T) {
	p := newListedProfile(t)

	p.SuspendRanking()
	assert.True(t, p.RankingSuspended())

	p.RestoreRanking()
	assert.False(t, p.RankingSuspended())

	until := time.Now().UTC().Add(48 * time.Hour)
	require.NoError(t, p.Boost(until))
	require.NotNil(t, p.RankingBoostUntil())
	assert.True(t, p.RankingBoostUntil().Equal(until))

	p.ClearBoost()
	assert.Nil(t, p.RankingBoostUntil())

	assert.Error(t, p.Boost(time.Now().UTC().Add(-time.Hour)))
}

func TestProfile_SetManualPlan(t *testing.T) {
	p := newListedProfile(t)

	elite := "elite"
	p.SetManualPlan(&elite)
	require.NotNil(t, p.ManualPlanID())
	assert.Equal(t, "elite", *p.ManualPlanID())

	p.SetManualPlan(nil)
	assert.Nil(t, p.ManualPlanID())
}

func TestProfile_RecordActivity(t *testing.T) {
	p := newListedProfile(t)
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	p.RecordActivity(at)
	require.NotNil(t, p.LastActiveAt())
	assert.True(t, p.LastActiveAt().Equal(at))
}

func TestReconstructProfile_Validation(t *testing.T) {
	now := time.Now().UTC()
	params := ReconstructParams{
		ID:          1,
		SID:         "prf_abc",
		UserID:      2,
		DisplayName: "Ana",
		Status:      vo.StatusListed,
		Version:     3,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	p, err := ReconstructProfile(params)
	require.NoError(t, err)
	assert.Equal(t, uint(1), p.ID())
	assert.Equal(t, 3, p.Version())

	bad := params
	bad.Status = "unknown"
	_, err = ReconstructProfile(bad)
	assert.Error(t, err)

	bad = params
	bad.ID = 0
	_, err = ReconstructProfile(bad)
	assert.Error(t, err)
}
