package codelets_test

import (
	"testing"

	"github.com/katalvlaran/copycat/coderack"
	"github.com/katalvlaran/copycat/codelets"
	"github.com/katalvlaran/copycat/randutil"
	"github.com/katalvlaran/copycat/slipnet"
	"github.com/katalvlaran/copycat/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildWS(t *testing.T, initial, modified, target string) (*workspace.Workspace, *slipnet.Slipnet) {
	t.Helper()
	sn, err := slipnet.Build()
	require.NoError(t, err)
	w, err := workspace.New(sn, initial, modified, target, 0, "")
	require.NoError(t, err)
	return w, sn
}

func TestBondBottomUpScoutCanProposeAndBuildABond(t *testing.T) {
	w, sn := buildWS(t, "abc", "abd", "ijk")
	rack := coderack.New()
	rng := randutil.NewRand(7)

	for i := 0; i < 200; i++ {
		rack.Post(codelets.NewBondBottomUpScout(rack, sn, w, rng))
	}
	for rack.Len() > 0 {
		require.NoError(t, rack.ChooseAndRun(rng, w.Temperature.Value()))
	}

	assert.NotEmpty(t, w.Initial.BuiltBonds())
}

func TestGroupScoutBuildsOnTopOfBuiltBonds(t *testing.T) {
	w, sn := buildWS(t, "aabc", "aabd", "ijkk")
	rack := coderack.New()
	rng := randutil.NewRand(11)

	for i := 0; i < 300; i++ {
		rack.Post(codelets.NewBondBottomUpScout(rack, sn, w, rng))
	}
	for rack.Len() > 0 {
		require.NoError(t, rack.ChooseAndRun(rng, w.Temperature.Value()))
	}
	require.NotEmpty(t, w.Initial.BuiltBonds())

	for i := 0; i < 100; i++ {
		rack.Post(codelets.NewGroupScout(rack, sn, w, rng))
	}
	for rack.Len() > 0 {
		require.NoError(t, rack.ChooseAndRun(rng, w.Temperature.Value()))
	}
}

func TestCorrespondenceScoutCanProposeAndBuild(t *testing.T) {
	w, sn := buildWS(t, "abc", "abd", "ijk")
	rack := coderack.New()
	rng := randutil.NewRand(3)

	for i := 0; i < 200; i++ {
		rack.Post(codelets.NewCorrespondenceScout(rack, sn, w, rng))
	}
	for rack.Len() > 0 {
		require.NoError(t, rack.ChooseAndRun(rng, w.Temperature.Value()))
	}
}

func TestRuleScoutBuildsRuleOnce(t *testing.T) {
	w, sn := buildWS(t, "abc", "abd", "ijk")
	rack := coderack.New()
	rng := randutil.NewRand(5)

	rack.Post(codelets.NewRuleScout(sn, w, rng))
	require.NoError(t, rack.ChooseAndRun(rng, w.Temperature.Value()))
	require.NotNil(t, w.Rule)

	rack.Post(codelets.NewRuleScout(sn, w, rng))
	require.NoError(t, rack.ChooseAndRun(rng, w.Temperature.Value()))
}

func TestDescriptionBottomUpScoutFizzlesOnEmptyWorkspace(t *testing.T) {
	w, sn := buildWS(t, "a", "a", "i")
	rng := randutil.NewRand(9)
	c := codelets.NewDescriptionBottomUpScout(sn, w, rng)
	require.NoError(t, c.Run())
}

func TestBreakerTearsDownAtMostOneStructure(t *testing.T) {
	w, sn := buildWS(t, "abc", "abd", "ijk")
	rack := coderack.New()
	rng := randutil.NewRand(13)

	for i := 0; i < 200; i++ {
		rack.Post(codelets.NewBondBottomUpScout(rack, sn, w, rng))
	}
	for rack.Len() > 0 {
		require.NoError(t, rack.ChooseAndRun(rng, w.Temperature.Value()))
	}
	before := len(w.Initial.BuiltBonds())

	breaker := codelets.NewBreaker(rack, w, rng)
	require.NoError(t, breaker.Run())
	after := len(w.Initial.BuiltBonds())
	assert.True(t, after == before || after == before-1)
}

func TestPostBootstrapPopulatesCoderack(t *testing.T) {
	w, sn := buildWS(t, "abc", "abd", "ijk")
	rack := coderack.New()
	rng := randutil.NewRand(21)

	codelets.PostBootstrap(rack, sn, w, rng)
	assert.Greater(t, rack.Len(), 0)
}

func TestPostTopDownOnlyPostsForActiveTemplatedNodes(t *testing.T) {
	w, sn := buildWS(t, "abc", "abd", "ijk")
	rack := coderack.New()
	rng := randutil.NewRand(23)

	codelets.PostTopDown(rack, sn, w, rng)
	assert.Equal(t, 0, rack.Len())

	successor := sn.MustNode(slipnet.NodeSuccessor)
	successor.Clamp = true
	successor.Activation = 100

	codelets.PostTopDown(rack, sn, w, rng)
	assert.Greater(t, rack.Len(), 0)
}
