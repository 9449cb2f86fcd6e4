package workspace

import "errors"

// Sentinel errors for workspace invariant violations, per spec.md §7
// category 3. ErrCorrespondenceSameString and ErrNoRuleBuilt are
// returned as described below; ErrBondEndpointsNotNeighbors,
// ErrGroupSpanInconsistent and ErrObjectNotFound are declared for
// callers to compare against, but no function in this package checks
// those invariants or returns them.
var (
	// ErrBondEndpointsNotNeighbors names the invariant violation of a
	// bond whose From/To are not adjacent in its own string.
	ErrBondEndpointsNotNeighbors = errors.New("workspace: bond endpoints are not neighbors")

	// ErrGroupSpanInconsistent names the invariant violation of a Group
	// whose object span is not contiguous or whose left/right positions
	// disagree with its member objects.
	ErrGroupSpanInconsistent = errors.New("workspace: group span inconsistent")

	// ErrCorrespondenceSameString is returned when a Correspondence is
	// built between two objects of the same string.
	ErrCorrespondenceSameString = errors.New("workspace: correspondence objects share a string")

	// ErrObjectNotFound names a reference to an object no longer present
	// in the workspace (e.g. absorbed into a group since a codelet was
	// posted) — a caller that meets it treats it as a fizzle, not
	// something to propagate.
	ErrObjectNotFound = errors.New("workspace: object not found")

	// ErrNoRuleBuilt is returned by ApplyRuleToTarget and
	// Workspace.BuildAnswer when no Rule has been built yet.
	ErrNoRuleBuilt = errors.New("workspace: no rule built")
)
