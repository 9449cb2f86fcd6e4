package temperature_test

import (
	"testing"

	"github.com/katalvlaran/copycat/temperature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnknownFormula(t *testing.T) {
	_, err := temperature.New(30, "does-not-exist")
	require.ErrorIs(t, err, temperature.ErrUnknownFormula)
}

func TestClampThenUnclamp(t *testing.T) {
	temp, err := temperature.New(30, "")
	require.NoError(t, err)

	temp.Update(40)
	assert.Equal(t, 100.0, temp.Value(), "value must read 100 while clamped regardless of fed value")

	temp.TryUnclamp(10)
	assert.True(t, temp.Clamped(), "must not unclamp before clampTime")

	temp.TryUnclamp(30)
	assert.False(t, temp.Clamped())
	temp.Update(55)
	assert.Equal(t, 55.0, temp.Value())
}

// TestFormulaIdentityLaws checks spec.md §8's "Temperature formula
// identity" law for every registered formula: f(0,p)==p, f(t,0.5)==0.5.
func TestFormulaIdentityLaws(t *testing.T) {
	for name, f := range temperature.Formulas {
		t.Run(name, func(t *testing.T) {
			for _, p := range []float64{0.1, 0.3, 0.7, 0.9} {
				assert.InDelta(t, p, f(0, p), 1e-9, "f(0,p) must equal p")
			}
			for _, tempVal := range []float64{0, 10, 50, 99, 100} {
				assert.InDelta(t, 0.5, f(tempVal, 0.5), 1e-9, "f(t,0.5) must equal 0.5")
			}
		})
	}
}

func TestAdjustValueFixesEndpointsAtZeroTemperature(t *testing.T) {
	temp, err := temperature.New(0, "")
	require.NoError(t, err)
	temp.TryUnclamp(0)
	temp.Update(0)
	// exponent = (100-0)/30 + 0.5, not 1, so AdjustValue(0.25) moves, but
	// 0 and 1 are fixed points of any positive exponent.
	assert.Equal(t, 1.0, temp.AdjustValue(1))
	assert.Equal(t, 0.0, temp.AdjustValue(0))
}

func TestAverageAdjustmentDifferenceTracksCalls(t *testing.T) {
	temp, err := temperature.New(0, "inverse")
	require.NoError(t, err)
	temp.TryUnclamp(0)
	temp.Update(80)

	assert.Equal(t, 0.0, temp.AverageAdjustmentDifference())
	temp.AdjustProbability(0.9)
	temp.AdjustProbability(0.1)
	assert.Greater(t, temp.AverageAdjustmentDifference(), 0.0)
}

func TestSetFormulaRejectsUnknown(t *testing.T) {
	temp, err := temperature.New(30, "")
	require.NoError(t, err)
	require.ErrorIs(t, temp.SetFormula("nope"), temperature.ErrUnknownFormula)
	require.NoError(t, temp.SetFormula("original"))
	assert.Equal(t, "original", temp.FormulaName())
}
