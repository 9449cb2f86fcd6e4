package temperature

import (
	"fmt"
	"math"
)

// Temperature is the global scalar in [0,100] summarizing Workspace
// coherence. It starts clamped at 100 for clampUntil steps (spec.md
// §4.4's grace period), then tracks whatever value Update is fed.
//
// Concurrency: Temperature is owned by exactly one Workspace/run and
// is never touched concurrently, matching spec.md §5's single-threaded
// cooperative model; no internal locking.
type Temperature struct {
	actual           float64
	lastUnclamped    float64
	clamped          bool
	clampTime        int
	formulaName      string
	formula          Formula
	adjustmentDiffSum float64
	adjustmentCount   int
}

// New returns a Temperature clamped at 100 until step clampTime, using
// the named formula (DefaultFormula if name is empty).
func New(clampTime int, formulaName string) (*Temperature, error) {
	if formulaName == "" {
		formulaName = DefaultFormula
	}
	f, ok := Formulas[formulaName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormula, formulaName)
	}
	return &Temperature{
		actual:        100,
		lastUnclamped: 100,
		clamped:       true,
		clampTime:     clampTime,
		formulaName:   formulaName,
		formula:       f,
	}, nil
}

// SetFormula swaps the active adjustment formula. Per spec.md §9 this
// is only meaningful between runs; callers must not call it mid-run.
func (t *Temperature) SetFormula(name string) error {
	f, ok := Formulas[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormula, name)
	}
	t.formulaName = name
	t.formula = f
	return nil
}

// FormulaName reports the active formula's registry name.
func (t *Temperature) FormulaName() string { return t.formulaName }

// Update feeds a freshly computed workspace-coherence value in. While
// clamped, the externally visible value stays 100 regardless of value,
// but lastUnclamped still tracks it so TryUnclamp/Value have history to
// resume from once the clamp lifts.
func (t *Temperature) Update(value float64) {
	t.lastUnclamped = value
	if t.clamped {
		t.actual = 100
		return
	}
	t.actual = value
}

// TryUnclamp lifts the clamp once currentStep reaches clampTime.
func (t *Temperature) TryUnclamp(currentStep int) {
	if t.clamped && currentStep >= t.clampTime {
		t.clamped = false
		t.actual = t.lastUnclamped
	}
}

// Clamped reports whether the clamp is still in effect.
func (t *Temperature) Clamped() bool { return t.clamped }

// Value returns the current temperature: 100 while clamped, else the
// last value passed to Update.
func (t *Temperature) Value() float64 {
	if t.clamped {
		return 100
	}
	return t.actual
}

// AdjustValue bends a strength value v in [0,1] toward 1 as
// temperature rises, per spec.md §4.4:
//
//	adjust_value(v) = v ^ ((100-T)/30 + 0.5)
//
// v is expected on a [0,1] scale (callers pass strength/100).
func (t *Temperature) AdjustValue(v float64) float64 {
	if v <= 0 {
		return 0
	}
	exponent := (100-t.Value())/30.0 + 0.5
	return math.Pow(v, exponent)
}

// AdjustProbability bends p away from its extremes via the active
// formula, and accumulates |adjusted-p| for GetAverageDifference
// (a diagnostic the original exposes, useful for tests asserting a
// formula actually moved probabilities at high temperature).
func (t *Temperature) AdjustProbability(p float64) float64 {
	adjusted := t.formula(t.Value(), p)
	t.adjustmentDiffSum += math.Abs(adjusted - p)
	t.adjustmentCount++
	return adjusted
}

// AverageAdjustmentDifference returns the mean absolute change
// AdjustProbability has made so far this run, or 0 if it has never
// been called.
func (t *Temperature) AverageAdjustmentDifference() float64 {
	if t.adjustmentCount == 0 {
		return 0
	}
	return t.adjustmentDiffSum / float64(t.adjustmentCount)
}
