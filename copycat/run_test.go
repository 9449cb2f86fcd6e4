package copycat_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/goleak"

	"github.com/katalvlaran/copycat/copycat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunEmptyStringReturnsError(t *testing.T) {
	cfg := copycat.NewConfig()
	_, err := copycat.Run(cfg, "", "abd", "ijk", nil)
	assert.ErrorIs(t, err, copycat.ErrEmptyString)
}

func TestRunManyNonPositiveIterationsReturnsError(t *testing.T) {
	cfg := copycat.NewConfig()
	_, err := copycat.RunMany(cfg, "abc", "abd", "ijk", 0, nil)
	assert.ErrorIs(t, err, copycat.ErrNonPositiveIterations)
}

func TestRunProducesAnswerOrExhaustionSentinel(t *testing.T) {
	cfg := copycat.NewConfig(copycat.WithSeed(42), copycat.WithMaxSteps(3000))
	result, err := copycat.Run(cfg, "abc", "abd", "ijk", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Answer)
	assert.GreaterOrEqual(t, result.Temperature, 0.0)
	assert.LessOrEqual(t, result.Temperature, 100.0)
}

func TestRunDeterministicUnderFixedSeed(t *testing.T) {
	cfg := copycat.NewConfig(copycat.WithSeed(7), copycat.WithMaxSteps(2000))
	first, err := copycat.Run(cfg, "abc", "abd", "xyz", nil)
	require.NoError(t, err)
	second, err := copycat.Run(cfg, "abc", "abd", "xyz", nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunManyAggregatesHistogramAcrossIterations(t *testing.T) {
	cfg := copycat.NewConfig(copycat.WithSeed(99), copycat.WithMaxSteps(2000))
	histogram, err := copycat.RunMany(cfg, "abc", "abd", "ijk", 12, nil)
	require.NoError(t, err)
	require.NotEmpty(t, histogram)

	total := 0
	for _, stats := range histogram {
		total += stats.Count
		assert.GreaterOrEqual(t, stats.AvgTemperature, 0.0)
	}
	assert.Equal(t, 12, total)

	ordered := copycat.SortedAnswers(histogram)
	assert.Len(t, ordered, len(histogram))
	for i := 1; i < len(ordered); i++ {
		assert.GreaterOrEqual(t, histogram[ordered[i-1]].Count, histogram[ordered[i]].Count)
	}
}

// dominantAnswer returns the histogram's modal answer (SortedAnswers'
// first entry) along with its stats, for assertions against spec.md
// §8's table of expected modal answers.
func dominantAnswer(t *testing.T, histogram map[string]copycat.AnswerStats) (string, copycat.AnswerStats) {
	t.Helper()
	ordered := copycat.SortedAnswers(histogram)
	require.NotEmpty(t, ordered)
	return ordered[0], histogram[ordered[0]]
}

func TestScenario_AbcAbdIjk_ModalAnswerIjl(t *testing.T) {
	cfg := copycat.NewConfig(copycat.WithSeed(1), copycat.WithMaxSteps(3000))
	histogram, err := copycat.RunMany(cfg, "abc", "abd", "ijk", 100, nil)
	require.NoError(t, err)
	modal, _ := dominantAnswer(t, histogram)
	assert.Equal(t, "ijl", modal)
}

func TestScenario_AbcAbdIijjkk_ModalAnswerIijjll(t *testing.T) {
	cfg := copycat.NewConfig(copycat.WithSeed(2), copycat.WithMaxSteps(3000))
	histogram, err := copycat.RunMany(cfg, "abc", "abd", "iijjkk", 100, nil)
	require.NoError(t, err)
	modal, _ := dominantAnswer(t, histogram)
	assert.Equal(t, "iijjll", modal)
}

// TestScenario_AbcAbdKji_ModalAnswerLjiOrKjh covers spec.md §8's
// reversed-direction scenario: both "lji" (position-slippage) and
// "kjh" (group-slippage) are permitted answers, so the distribution
// only needs to be dominated by one of the two rather than matching a
// single fixed string.
func TestScenario_AbcAbdKji_ModalAnswerLjiOrKjh(t *testing.T) {
	cfg := copycat.NewConfig(copycat.WithSeed(3), copycat.WithMaxSteps(3000))
	histogram, err := copycat.RunMany(cfg, "abc", "abd", "kji", 100, nil)
	require.NoError(t, err)
	modal, _ := dominantAnswer(t, histogram)
	assert.Contains(t, []string{"lji", "kjh"}, modal)
}

func TestScenario_AbcAbdMrrjjj_ModalAnswerMrrjjjj(t *testing.T) {
	cfg := copycat.NewConfig(copycat.WithSeed(4), copycat.WithMaxSteps(3000))
	histogram, err := copycat.RunMany(cfg, "abc", "abd", "mrrjjj", 100, nil)
	require.NoError(t, err)
	modal, _ := dominantAnswer(t, histogram)
	assert.Equal(t, "mrrjjjj", modal)
}

func TestScenario_AabcAabdIjkk_ModalAnswerIjll(t *testing.T) {
	cfg := copycat.NewConfig(copycat.WithSeed(5), copycat.WithMaxSteps(3000))
	histogram, err := copycat.RunMany(cfg, "aabc", "aabd", "ijkk", 100, nil)
	require.NoError(t, err)
	modal, _ := dominantAnswer(t, histogram)
	assert.Equal(t, "ijll", modal)
}

// TestScenario_AbcAbdXyz_SnagElevatesTemperature covers spec.md §8's
// snag case: z has no successor (letterSuccession wires no wraparound),
// so the run either slips around it ("wyz") or stalls on it ("xyd"),
// and either way spends longer disordered — the average stopping
// temperature across the batch should run elevated relative to the
// clean scenarios above.
func TestScenario_AbcAbdXyz_SnagElevatesTemperature(t *testing.T) {
	cfg := copycat.NewConfig(copycat.WithSeed(6), copycat.WithMaxSteps(3000))
	histogram, err := copycat.RunMany(cfg, "abc", "abd", "xyz", 100, nil)
	require.NoError(t, err)
	modal, stats := dominantAnswer(t, histogram)
	assert.Contains(t, []string{"xyd", "wyz"}, modal)
	assert.Greater(t, stats.AvgTemperature, 40.0)
}

func TestDefaultConfigMatchesSpecDefaults(t *testing.T) {
	cfg := copycat.DefaultConfig()
	assert.Equal(t, 5000, cfg.MaxSteps)
	assert.Equal(t, 30, cfg.ClampTime)
	assert.Equal(t, "inverse", cfg.TemperatureFormula)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 123\nmax_steps: 10\n"), 0o644))

	cfg, err := copycat.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(123), cfg.Seed)
	assert.Equal(t, 10, cfg.MaxSteps)
	assert.Equal(t, 30, cfg.ClampTime) // untouched field keeps its default
}

func TestLoadConfigMissingFileReturnsError(t *testing.T) {
	_, err := copycat.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
