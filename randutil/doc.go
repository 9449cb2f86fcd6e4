// Package randutil centralizes the single pseudorandom stream Copycat
// threads through every weighted choice, coin flip, and per-iteration
// RNG derivation.
//
// What
//
//   - FlipCoin: a single weighted coin flip.
//   - WeightedSelect: pick one of N items with probability proportional
//     to an associated non-negative weight.
//   - DeriveRNG: split one seed into many independent, deterministic
//     streams (used to give each of RunMany's iterations its own stream
//     without sharing mutable state).
//
// Why
//
//   - spec.md §5 requires all non-determinism to funnel through one
//     pseudorandom generator per run, explicitly seeded and threaded,
//     never read from hidden ambient state.
//   - Determinism under a fixed seed (spec.md §8) depends on every
//     sampling call in slipnet/workspace/coderack consuming the same
//     *rand.Rand passed down from copycat.Run, in the same call order.
//
// Grounded on katalvlaran/lvlath's tsp/rng.go: the same rngFromSeed /
// deriveSeed (SplitMix64 avalanche mix) / deriveRNG shape, generalized
// from TSP multi-restart streams to Copycat per-iteration streams.
package randutil
