package codelets

import (
	"math/rand"

	"github.com/katalvlaran/copycat/coderack"
	"github.com/katalvlaran/copycat/randutil"
	"github.com/katalvlaran/copycat/slipnet"
	"github.com/katalvlaran/copycat/workspace"
)

// NewBondBottomUpScout chooses an object and a neighbor probabilistically
// by intra-string salience, picks a bond facet they share, and — if the
// Slipnet recognizes a bond category between their descriptors — posts
// a BondStrengthTester.
//
// Grounded on original_source's bond.py BondBottomUpScout.
func NewBondBottomUpScout(rack *coderack.Coderack, sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "bond-bottom-up-scout", Category: "bond", Urgency: 30,
		Run: func() error {
			from := w.ChooseObject(rng, workspace.IntraStringSalience)
			if from == nil {
				return nil
			}
			to := chooseNeighbor(rng, from)
			if to == nil {
				return nil
			}
			facet := chooseBondFacet(rng, from, to)
			if facet == nil {
				return nil
			}
			fromDesc, toDesc := from.GetDescriptor(facet), to.GetDescriptor(facet)
			if fromDesc == nil || toDesc == nil {
				return nil
			}
			category := sn.GetBondCategory(fromDesc, toDesc)
			if category == nil {
				return nil
			}
			bond := w.ProposeBond(from, to, category, facet, fromDesc, toDesc)
			rack.Post(NewBondStrengthTester(rack, sn, w, rng, bond))
			return nil
		},
	}
}

// NewBondTopDownCategoryScout is the top-down analog of the bottom-up
// scout, biased toward a specific already-active bond category.
//
// Grounded on original_source's bond.py BondTopDownCategoryScout.
func NewBondTopDownCategoryScout(rack *coderack.Coderack, sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand, category *slipnet.Slipnode) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "bond-top-down-category-scout", Category: "bond", Urgency: postedUrgency(40, category.DegreeOfAssociation()),
		Run: func() error {
			relevance := func(s *workspace.WorkspaceString) float64 { return localBondCategoryRelevance(s, category) }
			side := chooseString(rng, w, relevance)
			obj := w.ChooseObject(rng, workspace.IntraStringSalience)
			if obj == nil || obj.String != side {
				obj = side.ObjectAt(rng.Intn(side.Length()))
			}
			if obj == nil {
				return nil
			}
			neighbor := chooseNeighbor(rng, obj)
			if neighbor == nil {
				return nil
			}
			facet := chooseBondFacet(rng, obj, neighbor)
			if facet == nil {
				return nil
			}
			objDesc, neighborDesc := obj.GetDescriptor(facet), neighbor.GetDescriptor(facet)
			if objDesc == nil || neighborDesc == nil {
				return nil
			}

			var from, to *workspace.Object
			var fromDesc, toDesc *slipnet.Slipnode
			switch {
			case sn.GetBondCategory(objDesc, neighborDesc) == category:
				from, to, fromDesc, toDesc = obj, neighbor, objDesc, neighborDesc
			case sn.GetBondCategory(neighborDesc, objDesc) == category:
				from, to, fromDesc, toDesc = neighbor, obj, neighborDesc, objDesc
			default:
				return nil
			}
			bond := w.ProposeBond(from, to, category, facet, fromDesc, toDesc)
			rack.Post(NewBondStrengthTester(rack, sn, w, rng, bond))
			return nil
		},
	}
}

// NewBondTopDownDirectionScout biases bond search toward a specific
// already-active direction category (left/right).
//
// Grounded on original_source's bond.py BondTopDownDirectionScout.
func NewBondTopDownDirectionScout(rack *coderack.Coderack, sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand, direction *slipnet.Slipnode) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "bond-top-down-direction-scout", Category: "bond", Urgency: postedUrgency(40, direction.DegreeOfAssociation()),
		Run: func() error {
			relevance := func(s *workspace.WorkspaceString) float64 { return localDirectionCategoryRelevance(s, direction) }
			side := chooseString(rng, w, relevance)
			obj := side.ObjectAt(rng.Intn(side.Length()))
			if obj == nil {
				return nil
			}
			left, err := sn.Node(slipnet.NodeLeft)
			if err != nil {
				return err
			}
			var neighbor *workspace.Object
			if direction == left {
				neighbor = obj.LeftNeighbor()
			} else {
				neighbor = obj.RightNeighbor()
			}
			if neighbor == nil {
				return nil
			}
			facet := chooseBondFacet(rng, obj, neighbor)
			if facet == nil {
				return nil
			}
			objDesc, neighborDesc := obj.GetDescriptor(facet), neighbor.GetDescriptor(facet)
			if objDesc == nil || neighborDesc == nil {
				return nil
			}
			category := sn.GetBondCategory(objDesc, neighborDesc)
			if category == nil || !category.Directed {
				return nil
			}
			bond := w.ProposeBond(obj, neighbor, category, facet, objDesc, neighborDesc)
			rack.Post(NewBondStrengthTester(rack, sn, w, rng, bond))
			return nil
		},
	}
}

// NewBondStrengthTester computes the proposed bond's strength, flips a
// temperature-adjusted coin, and on success posts a builder with
// urgency equal to the strength.
//
// Grounded on original_source's bond.py BondStrengthTester.
func NewBondStrengthTester(rack *coderack.Coderack, sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand, bond *workspace.Bond) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "bond-strength-tester", Category: "bond", Urgency: 50,
		Run: func() error {
			bond.UpdateStrengths()
			probability := w.TemperatureAdjustedProbability(float64(bond.TotalStrength) / 100.0)
			if !randutil.FlipCoin(rng, probability) {
				bond.String.RemoveProposedBond(bond)
				return nil
			}
			bond.ProposalLevel = workspace.LevelEvaluated
			bond.FromDescriptor.ActivationBuffer += workspace.Activation
			bond.ToDescriptor.ActivationBuffer += workspace.Activation
			bond.BondFacet.ActivationBuffer += workspace.Activation
			builder := NewBondBuilder(rack, sn, w, rng, bond)
			builder.Urgency = bond.TotalStrength
			rack.Post(builder)
			return nil
		},
	}
}

// NewBondBuilder re-validates the bond's endpoints are still present,
// fights bonds/groups/correspondences it would conflict with, and on
// success breaks the losers and builds it.
//
// Grounded on original_source's bond.py BondBuilder.
func NewBondBuilder(rack *coderack.Coderack, sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand, bond *workspace.Bond) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "bond-builder", Category: "bond", Urgency: 50,
		Run: func() error {
			objs := w.Objects()
			if !contains(objs, bond.FromObject) || !contains(objs, bond.ToObject) {
				return nil
			}

			if existing := bond.String.GetExistingBond(bond); existing != nil {
				existing.BondCategory.ActivationBuffer += workspace.Activation
				if existing.DirectionCategory != nil {
					existing.DirectionCategory.ActivationBuffer += workspace.Activation
				}
				bond.String.RemoveProposedBond(bond)
				return nil
			}
			bond.String.RemoveProposedBond(bond)

			incompatibleBonds := bond.IncompatibleBonds()
			competitors := make([]workspace.Structure, len(incompatibleBonds))
			for i, b := range incompatibleBonds {
				competitors[i] = b
			}
			if !workspace.FightItOut(rng, w.Temperature, bond, 1, competitors, 1) {
				return nil
			}

			incompatibleGroups := w.CommonGroups(bond.FromObject, bond.ToObject)
			strength := 0
			for _, g := range incompatibleGroups {
				if g.LetterSpan() > strength {
					strength = g.LetterSpan()
				}
			}
			groupCompetitors := make([]workspace.Structure, len(incompatibleGroups))
			for i, g := range incompatibleGroups {
				groupCompetitors[i] = g
			}
			if !workspace.FightItOut(rng, w.Temperature, bond, 1, groupCompetitors, strength) {
				return nil
			}

			var incompatibleCorrs []*workspace.Correspondence
			if bond.DirectionCategory != nil && (bond.IsLeftmostInString() || bond.IsRightmostInString()) {
				incompatibleCorrs = bond.IncompatibleCorrespondences()
				corrCompetitors := make([]workspace.Structure, len(incompatibleCorrs))
				for i, c := range incompatibleCorrs {
					corrCompetitors[i] = c
				}
				if !workspace.FightItOut(rng, w.Temperature, bond, 2, corrCompetitors, 3) {
					return nil
				}
			}

			for _, b := range incompatibleBonds {
				w.BreakBond(b)
			}
			for _, g := range incompatibleGroups {
				w.BreakGroup(g)
			}
			for _, c := range incompatibleCorrs {
				w.BreakCorrespondence(c)
			}
			w.BuildBond(bond)
			return nil
		},
	}
}

func contains(objs []*workspace.Object, o *workspace.Object) bool {
	for _, x := range objs {
		if x == o {
			return true
		}
	}
	return false
}

// localBondCategoryRelevance is the fraction of a string's built bonds
// belonging to the given category, scaled to 0-100.
//
// Grounded on original_source's WorkspaceString.local_bond_category_relevance.
func localBondCategoryRelevance(s *workspace.WorkspaceString, category *slipnet.Slipnode) float64 {
	bonds := s.BuiltBonds()
	if len(bonds) == 0 {
		return 0
	}
	matches := 0
	for _, b := range bonds {
		if b.BondCategory == category {
			matches++
		}
	}
	return 100 * float64(matches) / float64(len(bonds))
}

// localDirectionCategoryRelevance mirrors localBondCategoryRelevance
// for direction categories.
func localDirectionCategoryRelevance(s *workspace.WorkspaceString, direction *slipnet.Slipnode) float64 {
	bonds := s.BuiltBonds()
	if len(bonds) == 0 {
		return 0
	}
	matches := 0
	for _, b := range bonds {
		if b.DirectionCategory == direction {
			matches++
		}
	}
	return 100 * float64(matches) / float64(len(bonds))
}
