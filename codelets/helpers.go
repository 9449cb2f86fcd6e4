package codelets

import (
	"math/rand"

	"github.com/katalvlaran/copycat/randutil"
	"github.com/katalvlaran/copycat/slipnet"
	"github.com/katalvlaran/copycat/workspace"
)

// chooseBondFacet picks, among the description types from and to both
// carry, one at random — the facet a bond between them could be based
// on. Returns nil if they share no description type at all.
//
// Grounded on original_source's Workspace.choose_bond_facet.
func chooseBondFacet(rng *rand.Rand, from, to *workspace.Object) *slipnet.Slipnode {
	var shared []*slipnet.Slipnode
	for _, d := range from.Descriptions {
		if to.GetDescriptor(d.DescriptionType) != nil {
			shared = append(shared, d.DescriptionType)
		}
	}
	if len(shared) == 0 {
		return nil
	}
	return shared[rng.Intn(len(shared))]
}

// chooseNeighbor picks one of o's built left/right neighbors at
// random, or nil if o has none.
//
// Grounded on original_source's Object.choose_neighbor.
func chooseNeighbor(rng *rand.Rand, o *workspace.Object) *workspace.Object {
	left, right := o.LeftNeighbor(), o.RightNeighbor()
	switch {
	case left != nil && right != nil:
		if rng.Intn(2) == 0 {
			return left
		}
		return right
	case left != nil:
		return left
	case right != nil:
		return right
	default:
		return nil
	}
}

// chooseString picks Initial or Target weighted by each string's
// relevance+unhappiness average, per bond.py's BondTopDownCategoryScout
// string-choice rule (generalized: the relevance function is supplied
// by the caller since it differs for bond-category vs direction-category
// top-down scouts).
func chooseString(rng *rand.Rand, w *workspace.Workspace, relevance func(*workspace.WorkspaceString) float64) *workspace.WorkspaceString {
	i, t := w.Initial, w.Target
	iv := average(relevance(i), i.IntraStringUnhappiness)
	tv := average(relevance(t), t.IntraStringUnhappiness)
	idx := randutil.WeightedSelect(rng, []float64{iv, tv})
	if idx == 1 {
		return t
	}
	return i
}

func average(a, b float64) float64 { return (a + b) / 2 }

// postedUrgency scales a base urgency by a concept's degree-of-
// association, the common "urgency proportional to degree of
// association" shape used throughout bond.py's scouts/testers.
func postedUrgency(base int, degreeOfAssociation int) int {
	u := base * degreeOfAssociation / 100
	if u < 1 {
		u = 1
	}
	if u > 100 {
		u = 100
	}
	return u
}
