package coderack_test

import (
	"testing"

	"github.com/katalvlaran/copycat/coderack"
	"github.com/katalvlaran/copycat/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseAndRunEmptyReturnsErrEmpty(t *testing.T) {
	r := coderack.New()
	rng := randutil.NewRand(1)
	err := r.ChooseAndRun(rng, 50)
	assert.ErrorIs(t, err, coderack.ErrEmpty)
}

func TestPostAndRunDecrementsLen(t *testing.T) {
	r := coderack.New()
	ran := false
	r.Post(&coderack.Codelet{Kind: "k", Category: "bond", Urgency: 50, Run: func() error {
		ran = true
		return nil
	}})
	require.Equal(t, 1, r.Len())
	rng := randutil.NewRand(2)
	require.NoError(t, r.ChooseAndRun(rng, 50))
	assert.True(t, ran)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 1, r.StepsRun())
}

func TestClearCategoryRemovesOnlyMatching(t *testing.T) {
	r := coderack.New()
	r.Post(&coderack.Codelet{Kind: "a", Category: "bond", Urgency: 10, Run: func() error { return nil }})
	r.Post(&coderack.Codelet{Kind: "b", Category: "group", Urgency: 20, Run: func() error { return nil }})
	r.ClearCategory("bond")
	assert.Equal(t, 1, r.Len())
}

func TestAgeTickRaisesUrgencyAndEventuallyRuns(t *testing.T) {
	r := coderack.New()
	lowRan := false
	r.Post(&coderack.Codelet{Kind: "low", Category: "bond", Urgency: 1, Run: func() error {
		lowRan = true
		return nil
	}})
	r.AgeTick(99)
	rng := randutil.NewRand(3)
	require.NoError(t, r.ChooseAndRun(rng, 50))
	assert.True(t, lowRan)
}

// TestHighUrgencyDrawnMoreOften is a weak statistical check that the
// weighted bucket draw actually favors the higher-urgency codelet over
// many trials (spec.md §8's "probabilistic but favors high-urgency").
func TestHighUrgencyDrawnMoreOften(t *testing.T) {
	rng := randutil.NewRand(4)
	highCount, lowCount := 0, 0
	for i := 0; i < 200; i++ {
		r := coderack.New()
		r.Post(&coderack.Codelet{Kind: "high", Category: "bond", Urgency: 90, Run: func() error { highCount++; return nil }})
		r.Post(&coderack.Codelet{Kind: "low", Category: "bond", Urgency: 5, Run: func() error { lowCount++; return nil }})
		require.NoError(t, r.ChooseAndRun(rng, 50))
	}
	assert.Greater(t, highCount, lowCount)
}
