package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAccess(t *testing.T) {
	c := DefaultCatalog()

	free := c.ResolveAccess(PlanFree)
	assert.False(t, free.CanShowContact)
	assert.Equal(t, 1, free.Priority)

	elite := c.ResolveAccess(PlanElite)
	assert.True(t, elite.CanShowContact)
	assert.Equal(t, 3, elite.Priority)
}

func TestShouldRevealContent(t *testing.T) {
	tests := []struct {
		name            string
		viewerActive    bool
		subjectEligible bool
		want            bool
	}{
		{"paying viewer, eligible subject", true, true, true},
		{"paying viewer, free subject", true, false, false},
		{"anonymous viewer, eligible subject", false, true, false},
		{"anonymous viewer, free subject", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldRevealContent(tt.viewerActive, tt.subjectEligible))
		})
	}
}

func TestAnonymousViewer_FailsClosed(t *testing.T) {
	v := AnonymousViewer()
	assert.False(t, v.Authenticated)
	assert.False(t, v.HasActiveSubscription)
	assert.False(t, ShouldRevealContent(v.HasActiveSubscription, true))
}
