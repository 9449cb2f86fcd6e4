// Package coderack implements Copycat's codelet queue: an urgency-
// bucketed sampling structure, rather than a flat list or a heap, that
// a run repeatedly draws one codelet from and executes (spec.md §4.2).
//
// No coderack.py equivalent was retrieved in original_source, so the
// bucket mechanism itself is this repository's resolution of an open
// implementation question (see SPEC_FULL.md §4.2/§9 and DESIGN.md):
// codelets are kept in 11 buckets of urgency width 10 (0-9, 10-19, ...,
// 100), a bucket is drawn weighted by its summed effective urgency,
// then a codelet is drawn within that bucket by the same weight —
// mathematically equivalent to one flat proportional draw over
// effective(u) = u^((110-T)/15). Each draw still computes the effective
// urgency of every queued codelet to form the bucket weights, so a draw
// costs O(n) in the queue size.
//
// The two-stage resolve-then-draw shape is adapted from the teacher's
// builder package, which resolves a builderConfig once and then
// applies constructors in order (builder/options.go's BuildGraph):
// here, buckets are resolved once per ChooseAndRun call, then a
// within-bucket draw is applied.
package coderack
