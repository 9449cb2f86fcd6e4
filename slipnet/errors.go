package slipnet

import "errors"

// Sentinel errors for Slipnet construction and queries, matching
// spec.md §7 category 3 (configuration/invariant violations surface
// as errors, never panics) and the teacher's core/bfs convention of
// one var block of named sentinels per package.
var (
	// ErrNodeNotFound is returned when a lookup references an unknown node name.
	ErrNodeNotFound = errors.New("slipnet: node not found")

	// ErrDuplicateNode is returned when topology construction tries to
	// register the same node name twice.
	ErrDuplicateNode = errors.New("slipnet: duplicate node name")

	// ErrActivationOutOfRange is an invariant violation: a node's
	// activation left [0,100]. Surfaced as fatal per spec.md §7.
	ErrActivationOutOfRange = errors.New("slipnet: activation out of range")

	// ErrNilNode is returned when a link references a nil endpoint.
	ErrNilNode = errors.New("slipnet: nil node in link")
)
