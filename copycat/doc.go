// Package copycat wires Slipnet, Workspace, Coderack, and the
// codelets package together into the single-run and batch-run entry
// points spec.md §6 names: Run executes one analogy-solving attempt to
// completion or exhaustion; RunMany executes many independent attempts
// and aggregates the resulting answers into a histogram.
//
// What
//
//   - Run implements spec.md §4.5's main loop: bootstrap, then a fixed
//     step budget alternating Slipnet updates, Temperature updates,
//     top-down codelet posting, and one Coderack.ChooseAndRun per step.
//     It stops once a built Rule translates and the Workspace is
//     ReadyToAnswer; on exhaustion it answers on the Rule on hand, or
//     returns NoAnswer if there is none.
//   - Config holds every knob spec.md §6 lists, all with the defaults
//     §6 specifies, built via functional ConfigOptions and loadable from
//     YAML.
//   - RunMany fans iterations out concurrently via golang.org/x/sync/errgroup,
//     each iteration holding its own Slipnet/Workspace/Coderack and an
//     independently-derived RNG stream (randutil.DeriveRNG), then merges
//     results into a per-answer {count, avg_temperature} histogram.
//
// Grounded on spec.md §4.5 and §6, and original_source's
// copycat-fargonauts/copycat/problem.py for the iterations-to-histogram
// aggregation shape.
//
// Logging uses go.uber.org/zap's SugaredLogger at Debug level, each
// call site passed explicitly rather than held in a package global —
// matching the teacher's avoidance of hidden global state elsewhere in
// this module.
package copycat
