package workspace_test

import (
	"testing"

	"github.com/katalvlaran/copycat/randutil"
	"github.com/katalvlaran/copycat/slipnet"
	"github.com/katalvlaran/copycat/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWS(t *testing.T, initial, modified, target string) *workspace.Workspace {
	t.Helper()
	sn, err := slipnet.Build()
	require.NoError(t, err)
	w, err := workspace.New(sn, initial, modified, target, 30, "")
	require.NoError(t, err)
	return w
}

func TestNewWorkspaceStringLength(t *testing.T) {
	w := buildWS(t, "abc", "abd", "ijk")
	assert.Equal(t, 3, w.Initial.Length())
	assert.Equal(t, 3, w.Target.Length())
}

func TestProposeAndBuildBond(t *testing.T) {
	w := buildWS(t, "abc", "abd", "ijk")
	a := w.Initial.Letter(0)
	b := w.Initial.Letter(1)
	successor := w.Slipnet.MustNode(slipnet.NodeSuccessor)
	facet := w.Slipnet.MustNode(slipnet.NodeLetterCategoryFacet)
	fromDesc := a.GetDescriptor(facet)
	toDesc := b.GetDescriptor(facet)

	bond := w.ProposeBond(a, b, successor, facet, fromDesc, toDesc)
	assert.Equal(t, workspace.LevelNew, bond.ProposalLevel)

	w.BuildBond(bond)
	assert.Equal(t, workspace.LevelBuilt, bond.ProposalLevel)
	assert.Equal(t, bond, w.Initial.BuiltBond(a, b))
	assert.Equal(t, bond, a.RightBond)
	assert.Equal(t, bond, b.LeftBond)

	w.BreakBond(bond)
	assert.Nil(t, w.Initial.BuiltBond(a, b))
}

func TestBondEqualAndFlippedVersion(t *testing.T) {
	w := buildWS(t, "abc", "abd", "ijk")
	a := w.Initial.Letter(0)
	b := w.Initial.Letter(1)
	successor := w.Slipnet.MustNode(slipnet.NodeSuccessor)
	facet := w.Slipnet.MustNode(slipnet.NodeLetterCategoryFacet)
	bond := w.ProposeBond(a, b, successor, facet, a.GetDescriptor(facet), b.GetDescriptor(facet))

	flipped := bond.FlippedVersion(w.Slipnet)
	predecessor := w.Slipnet.MustNode(slipnet.NodePredecessor)
	assert.Equal(t, predecessor, flipped.BondCategory)
	assert.Equal(t, b, flipped.FromObject)
	assert.Equal(t, a, flipped.ToObject)
	assert.True(t, flipped.Equal(flipped))
	assert.False(t, bond.Equal(flipped))
}

func TestGroupConstructionSamenessLetterCategory(t *testing.T) {
	w := buildWS(t, "aaa", "aab", "iii")
	a0, a1 := w.Initial.Letter(0), w.Initial.Letter(1)
	sameness := w.Slipnet.MustNode(slipnet.NodeSameness)
	samenessGroup := w.Slipnet.MustNode(slipnet.NodeSamenessGroup)
	facet := w.Slipnet.MustNode(slipnet.NodeLetterCategoryFacet)
	bond := w.ProposeBond(a0, a1, sameness, facet, a0.GetDescriptor(facet), a1.GetDescriptor(facet))

	g, err := workspace.NewGroup(w.Slipnet, w.Initial, samenessGroup, nil, a0, a1, []*workspace.Object{a0, a1}, []*workspace.Bond{bond})
	require.NoError(t, err)
	assert.True(t, g.IsGroup())
	assert.Equal(t, 2, g.LetterSpan())
	assert.NotNil(t, g.GetDescriptor(facet), "sameness group of letters should inherit a letter-category description")

	w.BuildGroup(g)
	assert.Equal(t, g, a0.Parent)
	assert.Equal(t, g, a1.Parent)
	w.BreakGroup(g)
	assert.Nil(t, a0.Parent)
}

func TestFightItOutNoCompetitorsAlwaysWins(t *testing.T) {
	w := buildWS(t, "abc", "abd", "ijk")
	rng := randutil.NewRand(1)
	a, b := w.Initial.Letter(0), w.Initial.Letter(1)
	facet := w.Slipnet.MustNode(slipnet.NodeLetterCategoryFacet)
	bond := w.ProposeBond(a, b, w.Slipnet.MustNode(slipnet.NodeSuccessor), facet, a.GetDescriptor(facet), b.GetDescriptor(facet))
	bond.TotalStrength = 50

	won := workspace.FightItOut(rng, w.Temperature, bond, 1, nil, 1)
	assert.True(t, won)
}

func TestFightItOutStrongCandidateUsuallyWins(t *testing.T) {
	w := buildWS(t, "abc", "abd", "ijk")
	rng := randutil.NewRand(7)
	a, b := w.Initial.Letter(0), w.Initial.Letter(1)
	facet := w.Slipnet.MustNode(slipnet.NodeLetterCategoryFacet)
	strong := w.ProposeBond(a, b, w.Slipnet.MustNode(slipnet.NodeSuccessor), facet, a.GetDescriptor(facet), b.GetDescriptor(facet))
	strong.TotalStrength = 100
	weak := w.ProposeBond(a, b, w.Slipnet.MustNode(slipnet.NodeSuccessor), facet, a.GetDescriptor(facet), b.GetDescriptor(facet))
	weak.TotalStrength = 1

	wins := 0
	for i := 0; i < 50; i++ {
		if workspace.FightItOut(rng, w.Temperature, strong, 1, []workspace.Structure{weak}, 1) {
			wins++
		}
	}
	assert.Greater(t, wins, 40)
}

func TestBuildRuleSingleLetterReplacement(t *testing.T) {
	w := buildWS(t, "abc", "abd", "ijk")
	require.NoError(t, w.BuildRule())
	require.NotNil(t, w.Rule)
	assert.False(t, w.Rule.IsEmpty())
	successor := w.Slipnet.MustNode(slipnet.NodeSuccessor)
	assert.Equal(t, successor, w.Rule.Relation)
}

func TestBuildRuleIdenticalStringsIsEmpty(t *testing.T) {
	w := buildWS(t, "abc", "abc", "ijk")
	require.NoError(t, w.BuildRule())
	assert.True(t, w.Rule.IsEmpty())
}

func TestBuildAnswerAppliesTranslatedRule(t *testing.T) {
	w := buildWS(t, "abc", "abd", "ijk")
	require.NoError(t, w.BuildRule())
	answer, err := w.BuildAnswer()
	require.NoError(t, err)
	assert.Equal(t, "ijl", answer)
}

func TestCommonGroupsFindsSharedAncestor(t *testing.T) {
	w := buildWS(t, "aaa", "aab", "iii")
	a0, a1, a2 := w.Initial.Letter(0), w.Initial.Letter(1), w.Initial.Letter(2)
	samenessGroup := w.Slipnet.MustNode(slipnet.NodeSamenessGroup)
	g, err := workspace.NewGroup(w.Slipnet, w.Initial, samenessGroup, nil, a0, a2, []*workspace.Object{a0, a1, a2}, nil)
	require.NoError(t, err)
	w.BuildGroup(g)

	common := w.CommonGroups(a0, a1)
	require.Len(t, common, 1)
	assert.Equal(t, g, common[0])
}

func TestUpdateUnhappinessIsZeroForSingleLetterStrings(t *testing.T) {
	w := buildWS(t, "a", "a", "i")
	w.Initial.UpdateUnhappiness()
	assert.Equal(t, 0.0, w.Initial.IntraStringUnhappiness)
}

func TestUpdateUnhappinessFallsWithBuiltStructure(t *testing.T) {
	w := buildWS(t, "abc", "abd", "ijk")
	w.Initial.UpdateUnhappiness()
	before := w.Initial.IntraStringUnhappiness
	assert.Equal(t, 100.0, before) // no structure built yet: every object is maximally unhappy

	a, b := w.Initial.Letter(0), w.Initial.Letter(1)
	successor := w.Slipnet.MustNode(slipnet.NodeSuccessor)
	facet := w.Slipnet.MustNode(slipnet.NodeLetterCategoryFacet)
	bond := w.ProposeBond(a, b, successor, facet, a.GetDescriptor(facet), b.GetDescriptor(facet))
	bond.UpdateStrengths()
	w.BuildBond(bond)

	w.Initial.UpdateUnhappiness()
	assert.Less(t, w.Initial.IntraStringUnhappiness, before)
}
