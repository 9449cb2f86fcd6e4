package copycat

import "errors"

// NoAnswer is the sentinel answer string spec.md §7 category 2
// specifies for run exhaustion: max_steps reached without a built and
// translatable rule. It participates in the RunMany histogram like any
// other answer.
const NoAnswer = "no-answer"

var (
	// ErrEmptyString is returned by Run/RunMany when any of
	// initial/modified/target is the empty string — a configuration
	// error per spec.md §7 category 3, not a fizzle.
	ErrEmptyString = errors.New("copycat: initial, modified, and target strings must be non-empty")

	// ErrNonPositiveIterations is returned by RunMany when iterations <= 0.
	ErrNonPositiveIterations = errors.New("copycat: iterations must be positive")
)
