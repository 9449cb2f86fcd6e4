package slipnet

import (
	"fmt"
	"sync"
)

// Slipnet is the fixed-topology concept graph. Storage follows the
// teacher's (katalvlaran/lvlath core.Graph) adjacency-map-under-RWMutex
// shape: a name-keyed node map, and links stored as typed adjacency
// lists off each node rather than a global edge table, since every
// query (GetBondCategory, GetRelatedNode, ...) starts from a node and
// walks its own outgoing links.
//
// Concurrency: a single run exercises one Slipnet from one goroutine
// (spec.md §5), but the mutex is real: queries take the read lock and
// mutators take the write lock, so a shared, already-built Slipnet can
// be queried from several goroutines.
type Slipnet struct {
	mu    sync.RWMutex
	nodes map[string]*Slipnode
	order []string // insertion order, for deterministic iteration
}

// New returns an empty Slipnet. Use Build to get the canonical,
// fully-wired Copycat topology (the common case); New is exposed for
// tests that want a minimal custom topology.
func New() *Slipnet {
	return &Slipnet{nodes: make(map[string]*Slipnode)}
}

// AddNode registers a new node. Returns ErrDuplicateNode if the name
// is already present.
//
// Complexity: O(1).
func (s *Slipnet) AddNode(n *Slipnode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.nodes[n.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.Name)
	}
	s.nodes[n.Name] = n
	s.order = append(s.order, n.Name)
	return nil
}

// Node looks up a node by name.
func (s *Slipnet) Node(name string) (*Slipnode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}
	return n, nil
}

// MustNode looks up a node by name and panics if absent. Reserved for
// topology construction (Build), where a missing name is a programmer
// error, never a runtime condition; never called from request-serving
// code paths.
func (s *Slipnet) MustNode(name string) *Slipnode {
	n, err := s.Node(name)
	if err != nil {
		panic(err)
	}
	return n
}

// Nodes returns every node in stable insertion order.
func (s *Slipnet) Nodes() []*Slipnode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Slipnode, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.nodes[name])
	}
	return out
}

// AddLink creates a directed link of the given kind from `from` to
// `to`, labeled by `label` (nil for category/instance links), with
// intrinsic length `length`. It also appends the link to `to`'s
// incoming-link list, per spec.md §3's "sixth list records incoming
// links."
func (s *Slipnet) AddLink(kind LinkKind, from, to, label *Slipnode, length int) error {
	if from == nil || to == nil {
		return ErrNilNode
	}
	link := &Link{Kind: kind, From: from, To: to, Label: label, Length: length}
	switch kind {
	case CategoryLink:
		from.categoryLinks = append(from.categoryLinks, link)
	case InstanceLink:
		from.instanceLinks = append(from.instanceLinks, link)
	case PropertyLink:
		from.hasPropertyLinks = append(from.hasPropertyLinks, link)
	case SlipLink:
		from.lateralSlipLinks = append(from.lateralSlipLinks, link)
	case NonSlipLink:
		from.lateralNonslipLinks = append(from.lateralNonslipLinks, link)
	}
	to.incomingLinks = append(to.incomingLinks, link)
	return nil
}

// AddSlipPair wires a symmetric pair of lateral-slip links (e.g.
// predecessor<->successor), both labeled by `label` and both carrying
// `length`, matching how the original topology always wires slip
// links two-directionally.
func (s *Slipnet) AddSlipPair(a, b, label *Slipnode, length int) error {
	if err := s.AddLink(SlipLink, a, b, label, length); err != nil {
		return err
	}
	return s.AddLink(SlipLink, b, a, label, length)
}

// ValidateActivations checks the invariant from spec.md §8: every
// node's activation is in [0,100], and clamped nodes read exactly 100.
// Intended for use in tests and as an optional runtime assertion.
func (s *Slipnet) ValidateActivations() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, name := range s.order {
		n := s.nodes[name]
		if n.Activation < 0 || n.Activation > 100 {
			return fmt.Errorf("%w: node %q activation=%d", ErrActivationOutOfRange, name, n.Activation)
		}
		if n.Clamp && n.Activation != 100 {
			return fmt.Errorf("%w: node %q is clamped but activation=%d", ErrActivationOutOfRange, name, n.Activation)
		}
	}
	return nil
}
