package temperature

import "math"

// Formula bends a probability p away from (or toward) its extremes as
// a function of the current temperature t, both on a 0-100 scale for
// t and a 0-1 scale for p. Every registered Formula must satisfy the
// identity laws in spec.md §8: f(0, p) == p and f(t, 0.5) == 0.5.
type Formula func(t, p float64) float64

// weightedAverage mixes s and u by temperature t, the same _weighted
// helper every alternate formula in the original composes with.
func weightedAverage(t, s, u float64) float64 {
	return (t/100.0)*s + ((100.0-t)/100.0)*u
}

// original is the formula shipped with the canonical Copycat
// implementation (Mitchell/Hofstadter): curves high probabilities
// upward as temperature falls, symmetric around 0.5 via recursion on
// the low side.
func original(t, p float64) float64 {
	if p == 0 || p == 0.5 || t == 0 {
		return p
	}
	if p < 0.5 {
		return 1.0 - original(t, 1.0-p)
	}
	coldness := 100.0 - t
	a := math.Sqrt(coldness)
	c := (10 - a) / 100
	f := (c + 1) * p
	return math.Max(f, 0.5)
}

// entropy mirrors original_source's _entropy: it reuses the high-side
// curve from `original` (the source calls _original, not itself,
// inside _entropy — kept verbatim rather than "fixed" since spec.md §9
// instructs following ambiguous source behavior rather than guessing)
// and returns its negative self-information instead of the curved
// probability itself.
func entropy(t, p float64) float64 {
	if p == 0 || p == 0.5 || t == 0 {
		return p
	}
	if p < 0.5 {
		return 1.0 - original(t, 1.0-p)
	}
	coldness := 100.0 - t
	a := math.Sqrt(coldness)
	c := (10 - a) / 100
	f := (c + 1) * p
	return -f * math.Log2(f)
}

// weightedInverse is the default ("inverse") formula: a straight blend
// of p and its complement, weighted by temperature.
func weightedInverse(t, p float64) float64 {
	return weightedAverage(t, 1-p, p)
}

// fiftyConverge blends p toward 0.5 (instead of 1-p) as temperature rises.
func fiftyConverge(t, p float64) float64 {
	return weightedAverage(t, 0.5, p)
}

// softCurve blends toward the average of (1-p) and 0.5, capped at 1.
func softCurve(t, p float64) float64 {
	return math.Min(1, weightedAverage(t, (1.5-p)/2, p))
}

// weightedSoftCurve is a 4-parameter soft curve toward a weighted blend
// of 0.5 and (1-p).
func weightedSoftCurve(t, p float64) float64 {
	const (
		weight = 100.0
		gamma  = 0.5
		alpha  = 1.0
		beta   = 3.0
	)
	return math.Min(1, (t/weight)*((alpha*gamma+beta*(1-p))/(alpha+beta))+((weight-t)/weight)*p)
}

// altFifty blends 0.5 against a power-curved u that pulls low
// probabilities down quadratically and high ones toward their square
// root.
func altFifty(t, p float64) float64 {
	s := 0.5
	u := p * p
	if p >= 0.5 {
		u = math.Sqrt(p)
	}
	return weightedAverage(t, s, u)
}

// averageAlt is altFifty with s replaced by the (1.5-p)/2 average used
// in softCurve.
func averageAlt(t, p float64) float64 {
	s := (1.5 - p) / 2
	u := p * p
	if p >= 0.5 {
		u = math.Sqrt(p)
	}
	return weightedAverage(t, s, u)
}

// powerCurved applies exponent r on the side of p relative to 0.5,
// shared by `best`/`sbest`.
func powerCurved(p, r float64) float64 {
	if p < 0.5 {
		return math.Pow(p, r)
	}
	return math.Pow(p, 1/r)
}

func best(t, p float64) float64 {
	return weightedAverage(t, 0.5, powerCurved(p, 1.05))
}

// softBest is identical to best in the original (a second experimental
// alias kept for parity with the original's registered formula set).
func softBest(t, p float64) float64 {
	return weightedAverage(t, 0.5, powerCurved(p, 1.05))
}

func parameterizedBest(t, p float64) float64 {
	const alpha, beta = 5.0, 1.0
	s := (alpha*p + beta*0.5) / (alpha + beta)
	return weightedAverage(t, s, powerCurved(p, 1.05))
}

func meta(t, p float64) float64 {
	r := weightedAverage(t, 1, 2)
	return weightedAverage(t, 0.5, powerCurved(p, r))
}

func metaParameterized(t, p float64) float64 {
	r := weightedAverage(t, 1, 2)
	const alpha, beta = 5.0, 1.0
	s := (alpha*p + beta*0.5) / (alpha + beta)
	return weightedAverage(t, s, powerCurved(p, r))
}

func none(_, p float64) float64 {
	return p
}

// Formulas is the pluggable registry of named adjustment formulas,
// grounded on original_source's full alternate-formula roster. The
// default is "inverse". Swapping the active formula is only legal
// between runs (spec.md §9: "swapping is allowed between runs but not
// within a run") — Temperature exposes SetFormula for exactly that.
var Formulas = map[string]Formula{
	"original":       original,
	"entropy":        entropy,
	"inverse":        weightedInverse,
	"fifty_converge": fiftyConverge,
	"soft":           softCurve,
	"weighted_soft":  weightedSoftCurve,
	"alt_fifty":      altFifty,
	"average_alt":    averageAlt,
	"best":           best,
	"sbest":          softBest,
	"pbest":          parameterizedBest,
	"meta":           meta,
	"pmeta":          metaParameterized,
	"none":           none,
}

// DefaultFormula is the name used when Config doesn't specify one.
const DefaultFormula = "inverse"
