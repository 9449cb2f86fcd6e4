package workspace

import (
	"math/rand"

	"github.com/katalvlaran/copycat/temperature"
)

// Structure is the minimal interface shared by Bond, the Group Object,
// and Correspondence for competitive acceptance: something fight-it-out
// can weigh against challengers by strength.
//
// Grounded on spec.md §9's note that Bond/Group/Correspondence need no
// open interface beyond this shared competitive-acceptance surface.
type Structure interface {
	Strength() int
}

// Strength implementations so Bond/Object(group)/Correspondence satisfy
// Structure without extra wrapper types.
func (b *Bond) Strength() int           { return b.TotalStrength }
func (c *Correspondence) Strength() int { return c.TotalStrength }

// Strength reports a group Object's cached TotalStrength (set by
// UpdateStrengths in group.go); Letter-kind objects never participate
// in fight-it-out so this is only ever called on groups.
func (o *Object) Strength() int { return o.TotalStrength }

// FightItOut runs spec.md §4.3's competitive-acceptance rule: candidate
// (raising the field candidateWeight times) is weighed against each
// competitor in incompatibles (each counted competitorWeight times),
// via a single weighted coin flip over the temperature-adjusted
// strength values. Returns true if candidate wins (or there were no
// competitors at all).
//
// Grounded on original_source's Workspace.fight_it_out:
//
//	"weights = [candidate_strength]*candidate_weight +
//	 [competitor_strength]*competitor_weight for competitor in
//	 incompatibles; winner = weighted_select(weights); return winner is
//	 one of the candidate slots."
func FightItOut(rng *rand.Rand, temp *temperature.Temperature, candidate Structure, candidateWeight int, incompatibles []Structure, competitorWeight int) bool {
	if len(incompatibles) == 0 {
		return true
	}
	weights := make([]float64, 0, candidateWeight+len(incompatibles)*competitorWeight)
	candidateStrength := temp.AdjustValue(float64(candidate.Strength()) / 100.0)
	for i := 0; i < candidateWeight; i++ {
		weights = append(weights, candidateStrength)
	}
	for _, other := range incompatibles {
		otherStrength := temp.AdjustValue(float64(other.Strength()) / 100.0)
		for i := 0; i < competitorWeight; i++ {
			weights = append(weights, otherStrength)
		}
	}
	winner := weightedSelectFloat(rng, weights)
	return winner < candidateWeight
}

func weightedSelectFloat(rng *rand.Rand, weights []float64) int {
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
	cum := 0.0
	for i, w := range weights {
		if w > 0 {
			cum += w
		}
		if target < cum {
			return i
		}
	}
	return len(weights) - 1
}
