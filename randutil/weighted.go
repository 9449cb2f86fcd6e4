package randutil

import "math/rand"

// FlipCoin returns true with probability p (clamped to [0,1]), drawn
// from rng. A nil rng is treated as an invariant violation by callers;
// FlipCoin itself just forwards to rng.Float64() for testability.
//
// Grounded on original_source copycat.toolbox.flip_coin, consulted by
// every strength-tester codelet (e.g. BondStrengthTester) to decide,
// after a temperature-adjusted probability, whether a proposal survives.
func FlipCoin(rng *rand.Rand, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	default:
		return rng.Float64() < p
	}
}

// WeightedSelect draws one index in [0,len(weights)) with probability
// proportional to weights[i]. Negative weights are treated as zero. If
// every weight is zero, WeightedSelect falls back to a uniform draw so
// callers never get a silent always-first-element bias.
//
// Grounded on original_source copycat.toolbox.weighted_select, used
// throughout bond.py to choose a string/object/facet by relevance.
//
// Complexity: O(n).
func WeightedSelect(rng *rand.Rand, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	target := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		if w > 0 {
			cumulative += w
		}
		if target < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// WeightedSelectInts is the integer-weight convenience wrapper used by
// codelets that work with activation-derived integer weights (0-100
// scale) rather than floats.
func WeightedSelectInts(rng *rand.Rand, weights []int) int {
	fw := make([]float64, len(weights))
	for i, w := range weights {
		fw[i] = float64(w)
	}
	return WeightedSelect(rng, fw)
}

// ShuffleStrings performs an in-place Fisher-Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func ShuffleStrings(rng *rand.Rand, a []string) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
