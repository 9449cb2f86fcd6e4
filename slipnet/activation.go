package slipnet

import (
	"math"
	"math/rand"
)

// firingThreshold is the activation a link's label node must reach
// before the link is considered "active enough to fire" in step 1 of
// Update, per spec.md §4.1.
const firingThreshold = 100

// jumpThreshold is the activation level a node must cross for the
// probabilistic full-activation jump in step 5 to be considered.
const jumpThreshold = 55

// Update runs one spreading-activation tick, per spec.md §4.1:
//
//  1. Every active node pushes activation into each neighbor it has an
//     active-labeled outgoing link to, proportional to source
//     activation and inversely proportional to link length.
//  2. Every node decays: it loses (100-depth)% of its current
//     activation into its buffer as a negative contribution.
//  3. Buffers commit to activation, clamped to [0,100].
//  4. Nodes with Clamp set, or with InitialClamp set while
//     duringClampPeriod is true, snap back to 100.
//  5. Any node crossing jumpThreshold may jump to full activation,
//     with probability increasing in both its new activation and its
//     conceptual depth.
//
// rng must be the run's single pseudorandom stream (spec.md §5).
func (s *Slipnet) Update(rng *rand.Rand, duringClampPeriod bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Step 1: spread.
	for _, name := range s.order {
		node := s.nodes[name]
		if !node.IsActive() {
			continue
		}
		for _, link := range node.OutgoingLinks() {
			if link.Label != nil && !link.Label.IsActive() {
				continue
			}
			length := link.Length
			if length <= 0 {
				length = 1
			}
			amount := int(math.Round(float64(node.Activation) / float64(length)))
			link.To.ActivationBuffer += amount
		}
	}

	// Step 2: decay.
	for _, name := range s.order {
		node := s.nodes[name]
		amount := int(math.Round(float64(100-node.ConceptualDepth) / 100.0 * float64(node.Activation)))
		node.ActivationBuffer -= amount
	}

	// Step 3: commit, clamp to [0,100].
	for _, name := range s.order {
		node := s.nodes[name]
		node.Activation += node.ActivationBuffer
		node.ActivationBuffer = 0
		if node.Activation < 0 {
			node.Activation = 0
		}
		if node.Activation > 100 {
			node.Activation = 100
		}
	}

	// Step 4: clamps.
	for _, name := range s.order {
		node := s.nodes[name]
		if node.Clamp || (node.InitialClamp && duringClampPeriod) {
			node.Activation = 100
		}
	}

	// Step 5: probabilistic full-activation jump.
	for _, name := range s.order {
		node := s.nodes[name]
		if node.Activation < jumpThreshold || node.Activation >= 100 {
			continue
		}
		p := jumpProbability(node.Activation, node.ConceptualDepth)
		if rng.Float64() < p {
			node.Activation = 100
		}
	}
}

// jumpProbability grows with both the node's current activation and
// its conceptual depth, so deeply conceptual, already-excited nodes
// are the ones likely to snap fully active — spec.md §4.1's "jumps to
// 100 ('full activation')" with "probability a function of activation
// and conceptual depth."
func jumpProbability(activation, depth int) float64 {
	a := float64(activation) / 100.0
	d := float64(depth) / 100.0
	p := math.Pow(a, 2) * (0.3 + 0.7*d)
	if p > 1 {
		return 1
	}
	return p
}
