package codelets

import (
	"math/rand"

	"github.com/katalvlaran/copycat/coderack"
	"github.com/katalvlaran/copycat/randutil"
	"github.com/katalvlaran/copycat/workspace"
)

// NewBreaker picks a built bond or group uniformly at random from
// across both searchable strings and breaks it with probability
// TemperatureAdjustedProbability(0.1), so the colder the run, the less
// likely anything gets torn down. The chosen structure's strength does
// not affect the chance of breaking it, and correspondences are never
// candidates. This is the mechanism by which a run that converged on a
// bad local structure can still recover.
//
// Grounded on spec.md §4.2's note that breaker codelets exist
// alongside the scout/tester/builder families; no breaker.py was
// retrieved in original_source, so the fixed, temperature-adjusted
// trigger is this repo's own concretization.
func NewBreaker(rack *coderack.Coderack, w *workspace.Workspace, rng *rand.Rand) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "breaker", Category: "breaker", Urgency: 5,
		Run: func() error {
			var candidates []func()
			for _, side := range w.Strings() {
				for _, b := range side.BuiltBonds() {
					b := b
					candidates = append(candidates, func() { w.BreakBond(b) })
				}
				for _, g := range side.Groups() {
					g := g
					candidates = append(candidates, func() { w.BreakGroup(g) })
				}
			}
			if len(candidates) == 0 {
				return nil
			}
			idx := rng.Intn(len(candidates))
			probability := w.TemperatureAdjustedProbability(0.1)
			if !randutil.FlipCoin(rng, probability) {
				return nil
			}
			candidates[idx]()
			return nil
		},
	}
}
