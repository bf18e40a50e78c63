package gen

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func TestVary_Bounds(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		rng := testRNG(seed)
		base := "Check my email"
		variants := vary(rng, base, maxVariants)
		assert.LessOrEqual(t, len(variants), maxVariants)
		seen := map[string]struct{}{}
		for _, v := range variants {
			assert.NotEqual(t, base, v, "base string must never be returned")
			_, dup := seen[v]
			assert.False(t, dup, "variant %q repeated", v)
			seen[v] = struct{}{}
			assert.Contains(t, v, strings.ToLower(base))
		}
	}
}

func TestVary_ZeroMax(t *testing.T) {
	assert.Empty(t, vary(testRNG(1), "Play jazz", 0))
}

func TestVary_Deterministic(t *testing.T) {
	a := vary(testRNG(7), "Show my schedule", maxVariants)
	b := vary(testRNG(7), "Show my schedule", maxVariants)
	assert.Equal(t, a, b)
}

func TestFill(t *testing.T) {
	got, err := fill("Research {t} for me", "t", "dark matter")
	require.NoError(t, err)
	assert.Equal(t, "Research dark matter for me", got)

	_, err = fill("Research for me", "t", "dark matter")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadTemplate)
}

func TestFingerprint(t *testing.T) {
	a := fingerprint("play jazz", map[string]any{"query": "jazz", "type": "playlist"})
	b := fingerprint("play jazz", map[string]any{"type": "playlist", "query": "jazz"})
	assert.Equal(t, a, b, "argument key order must not matter")

	c := fingerprint("play jazz", map[string]any{"query": "rock", "type": "playlist"})
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, fingerprint("play jazz", nil), fingerprint("play rock", nil))
}
