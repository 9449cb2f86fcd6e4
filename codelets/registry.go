package codelets

import (
	"math/rand"

	"github.com/katalvlaran/copycat/coderack"
	"github.com/katalvlaran/copycat/slipnet"
	"github.com/katalvlaran/copycat/workspace"
)

// bootstrapCounts fixes how many of each scout family the run starts
// with, per spec.md §4.5's "post bootstrap codelets" naming "bond
// scouts, description scouts, group scouts, correspondence scouts,
// rule scouts, and a handful of breakers."
const (
	bootstrapBondScouts          = 8
	bootstrapDescriptionScouts   = 4
	bootstrapGroupScouts         = 4
	bootstrapCorrespondenceScouts = 4
	bootstrapRuleScouts          = 1
	bootstrapBreakers            = 2
)

// PostBootstrap seeds the Coderack with the initial codelet cohort a
// fresh run needs before any top-down activation exists to bias it.
//
// Grounded on spec.md §4.5's bootstrap line; the per-family counts are
// this repo's concretization since no coderack.py bootstrap table was
// retrieved in original_source.
func PostBootstrap(rack *coderack.Coderack, sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand) {
	for i := 0; i < bootstrapBondScouts; i++ {
		rack.Post(NewBondBottomUpScout(rack, sn, w, rng))
	}
	for i := 0; i < bootstrapDescriptionScouts; i++ {
		rack.Post(NewDescriptionBottomUpScout(sn, w, rng))
	}
	for i := 0; i < bootstrapGroupScouts; i++ {
		rack.Post(NewGroupScout(rack, sn, w, rng))
	}
	for i := 0; i < bootstrapCorrespondenceScouts; i++ {
		rack.Post(NewCorrespondenceScout(rack, sn, w, rng))
	}
	for i := 0; i < bootstrapRuleScouts; i++ {
		rack.Post(NewRuleScout(sn, w, rng))
	}
	for i := 0; i < bootstrapBreakers; i++ {
		rack.Post(NewBreaker(rack, w, rng))
	}
}

// PostTopDown walks every active Slipnet node carrying codelet
// templates and posts one codelet per template, urgency scaled by the
// node's current activation — the mechanism spec.md §4.2 describes as
// "each active node that has attached codelet templates contributes
// top-down posts proportional to its activation."
//
// Grounded on the Slipnode.Codelets field (slipnet/types.go) and the
// bond-category/direction-category templates topology.go attaches to
// predecessor/successor/sameness/left/right.
func PostTopDown(rack *coderack.Coderack, sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand) {
	for _, n := range sn.Nodes() {
		if !n.IsActive() || len(n.Codelets) == 0 {
			continue
		}
		for _, tmpl := range n.Codelets {
			urgency := postedUrgency(tmpl.BaseUrgency, n.Activation)
			c := newTopDownCodelet(rack, sn, w, rng, tmpl.Kind, n)
			if c == nil {
				continue
			}
			c.Urgency = urgency
			rack.Post(c)
		}
	}
}

// newTopDownCodelet dispatches a codelet-template kind to the
// concrete constructor it names.
func newTopDownCodelet(rack *coderack.Coderack, sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand, kind string, node *slipnet.Slipnode) *coderack.Codelet {
	switch kind {
	case "bond-top-down-category-scout":
		return NewBondTopDownCategoryScout(rack, sn, w, rng, node)
	case "bond-top-down-direction-scout":
		return NewBondTopDownDirectionScout(rack, sn, w, rng, node)
	default:
		return nil
	}
}
