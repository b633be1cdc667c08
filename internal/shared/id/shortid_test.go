package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	sid, err := Generate(16)
	require.NoError(t, err)
	assert.Len(t, sid, 16)
}

func TestGenerate_DefaultLength(t *testing.T) {
	sid, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, sid, DefaultLength)
}

func TestGenerate_Alphabet(t *testing.T) {
	sid, err := Generate(64)
	require.NoError(t, err)
	for _, r := range sid {
		assert.Contains(t, alphabet, string(r))
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	sid, err := GenerateWithPrefix(PrefixProfile, DefaultLength)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sid, "prf_"))
	assert.Len(t, sid, len(PrefixProfile)+1+DefaultLength)
	assert.True(t, HasPrefix(sid, PrefixProfile))
	assert.False(t, HasPrefix(sid, PrefixPayment))
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		sid := MustGenerate(DefaultLength)
		require.False(t, seen[sid], "duplicate id generated: %s", sid)
		seen[sid] = true
	}
}

func FuzzHasPrefix(f *testing.F) {
	f.Add("prf_abc123", "prf")
	f.Add("sub_", "sub")
	f.Add("", "prf")
	f.Fuzz(func(t *testing.T, sid, prefix string) {
		got := HasPrefix(sid, prefix)
		want := strings.HasPrefix(sid, prefix+"_")
		if got != want {
			t.Fatalf("HasPrefix(%q, %q) = %v, want %v", sid, prefix, got, want)
		}
	})
}
