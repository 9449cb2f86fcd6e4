package slipnet_test

import (
	"testing"

	"github.com/katalvlaran/copycat/randutil"
	"github.com/katalvlaran/copycat/slipnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildT(t *testing.T) *slipnet.Slipnet {
	t.Helper()
	s, err := slipnet.Build()
	require.NoError(t, err)
	return s
}

func TestBuildIsActivationValid(t *testing.T) {
	s := buildT(t)
	assert.NoError(t, s.ValidateActivations())
}

func TestBondAndDirectionCategoriesCarryTopDownCodeletTemplates(t *testing.T) {
	s := buildT(t)
	for _, name := range []string{slipnet.NodePredecessor, slipnet.NodeSuccessor, slipnet.NodeSameness} {
		n := s.MustNode(name)
		require.Len(t, n.Codelets, 1)
		assert.Equal(t, "bond-top-down-category-scout", n.Codelets[0].Kind)
	}
	for _, name := range []string{slipnet.NodeLeft, slipnet.NodeRight} {
		n := s.MustNode(name)
		require.Len(t, n.Codelets, 1)
		assert.Equal(t, "bond-top-down-direction-scout", n.Codelets[0].Kind)
	}
}

func TestGetBondCategorySuccessorAndSameness(t *testing.T) {
	s := buildT(t)
	a, err := s.Node("A")
	require.NoError(t, err)
	b, err := s.Node("B")
	require.NoError(t, err)

	successor, err := s.Node(slipnet.NodeSuccessor)
	require.NoError(t, err)
	assert.Equal(t, successor, s.GetBondCategory(a, b))

	predecessor, err := s.Node(slipnet.NodePredecessor)
	require.NoError(t, err)
	assert.Equal(t, predecessor, s.GetBondCategory(b, a))

	sameness, err := s.Node(slipnet.NodeSameness)
	require.NoError(t, err)
	assert.Equal(t, sameness, s.GetBondCategory(a, a))
}

func TestGetBondCategoryNoWraparound(t *testing.T) {
	s := buildT(t)
	z, err := s.Node("Z")
	require.NoError(t, err)
	a, err := s.Node("A")
	require.NoError(t, err)
	assert.Nil(t, s.GetBondCategory(z, a), "Z must not wrap to A as a successor bond")
}

func TestGetRelatedNodeGroupBondBridge(t *testing.T) {
	s := buildT(t)
	predGroup, err := s.Node(slipnet.NodePredecessorGroup)
	require.NoError(t, err)
	bondCategory, err := s.Node(slipnet.NodeBondCategory)
	require.NoError(t, err)
	predecessor, err := s.Node(slipnet.NodePredecessor)
	require.NoError(t, err)

	assert.Equal(t, predecessor, s.GetRelatedNode(predGroup, bondCategory))
}

func TestBondDegreeOfAssociationCapsAt100(t *testing.T) {
	n := &slipnet.Slipnode{Name: "x", IntrinsicLinkLength: 0}
	assert.Equal(t, 100, n.BondDegreeOfAssociation())
}

// TestDecayOnlyConservation asserts spec.md §8's "Slipnet conservation
// under pure decay": with no active nodes (nothing fires), the sum of
// activations is non-increasing across Update calls.
func TestDecayOnlyConservation(t *testing.T) {
	s := buildT(t)
	rng := randutil.NewRand(1)

	total := func() int {
		sum := 0
		for _, n := range s.Nodes() {
			sum += n.Activation
		}
		return sum
	}

	before := total()
	for i := 0; i < 5; i++ {
		s.Update(rng, false)
		after := total()
		assert.LessOrEqual(t, after, before)
		before = after
	}
}

func TestValidateActivationsCatchesOutOfRange(t *testing.T) {
	s := slipnet.New()
	require.NoError(t, s.AddNode(&slipnet.Slipnode{Name: "bad", Activation: 150}))
	assert.Error(t, s.ValidateActivations())
}

func TestClampedNodeAlwaysReads100(t *testing.T) {
	s := slipnet.New()
	require.NoError(t, s.AddNode(&slipnet.Slipnode{Name: "clamped", Activation: 100, Clamp: true}))
	rng := randutil.NewRand(2)
	s.Update(rng, false)
	n, err := s.Node("clamped")
	require.NoError(t, err)
	assert.Equal(t, 100, n.Activation)
}
