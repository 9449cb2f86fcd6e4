package codelets

import (
	"math/rand"

	"github.com/katalvlaran/copycat/coderack"
	"github.com/katalvlaran/copycat/randutil"
	"github.com/katalvlaran/copycat/slipnet"
	"github.com/katalvlaran/copycat/workspace"
)

// NewGroupScout chooses a built bond at random and tries to extend it
// into a maximal run of same-category same-direction bonds, proposing
// a Group spanning that run.
//
// Grounded on original_source's group-building codelets, generalizing
// bond.py's scout shape to groups (no group.py codelet file was
// retrieved; the group-extension rule itself follows group.py's
// Group construction semantics for what makes a valid contiguous run).
func NewGroupScout(rack *coderack.Coderack, sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "group-scout", Category: "group", Urgency: 30,
		Run: func() error {
			side := w.Strings()[rng.Intn(2)]
			bonds := side.BuiltBonds()
			if len(bonds) == 0 {
				return nil
			}
			seed := bonds[rng.Intn(len(bonds))]
			run := extendBondRun(side, seed)
			if len(run) == 0 {
				return nil
			}
			left := run[0].FromObject
			right := run[len(run)-1].ToObject
			if left.RightPos > right.LeftPos {
				left, right = right, left
			}
			groupCategoryNode, err := groupCategoryFor(sn, seed.BondCategory)
			if err != nil || groupCategoryNode == nil {
				return nil
			}
			members := membersOf(side, left, right)
			g, err := workspace.NewGroup(sn, side, groupCategoryNode, seed.DirectionCategory, left, right, members, run)
			if err != nil {
				return err
			}
			if existing := side.EqualGroupExists(g); existing != nil {
				existing.GroupCategory.ActivationBuffer += workspace.Activation
				return nil
			}
			g.ProposalLevel = workspace.LevelNew
			side.AddProposedGroup(g)
			rack.Post(NewGroupStrengthTester(rack, sn, w, rng, g))
			return nil
		},
	}
}

// extendBondRun walks left and right from seed collecting every
// contiguously-built bond sharing its category and direction.
func extendBondRun(side *workspace.WorkspaceString, seed *workspace.Bond) []*workspace.Bond {
	run := []*workspace.Bond{seed}
	cursor := seed.ToObject
	for {
		next := side.BuiltBond(cursor, cursor.RightNeighbor())
		if next == nil || next.BondCategory != seed.BondCategory || next.DirectionCategory != seed.DirectionCategory {
			break
		}
		run = append(run, next)
		cursor = next.ToObject
	}
	cursor = seed.FromObject
	for {
		prevNeighbor := cursor.LeftNeighbor()
		if prevNeighbor == nil {
			break
		}
		prev := side.BuiltBond(prevNeighbor, cursor)
		if prev == nil || prev.BondCategory != seed.BondCategory || prev.DirectionCategory != seed.DirectionCategory {
			break
		}
		run = append([]*workspace.Bond{prev}, run...)
		cursor = prev.FromObject
	}
	return run
}

func membersOf(side *workspace.WorkspaceString, left, right *workspace.Object) []*workspace.Object {
	var out []*workspace.Object
	pos := left.LeftPos
	for pos <= right.RightPos {
		obj := side.ObjectAt(pos)
		if obj == nil {
			break
		}
		out = append(out, obj)
		pos = obj.RightPos + 1
	}
	return out
}

func groupCategoryFor(sn *slipnet.Slipnet, bondCategory *slipnet.Slipnode) (*slipnet.Slipnode, error) {
	bondCategoryNode, err := sn.Node(slipnet.NodeBondCategory)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{slipnet.NodePredecessorGroup, slipnet.NodeSuccessorGroup, slipnet.NodeSamenessGroup} {
		n, err := sn.Node(name)
		if err != nil {
			return nil, err
		}
		if sn.GetRelatedNode(n, bondCategoryNode) == bondCategory {
			return n, nil
		}
	}
	return nil, nil
}

// NewGroupStrengthTester computes the candidate group's strength,
// flips a temperature-adjusted coin, and on success posts a builder.
func NewGroupStrengthTester(rack *coderack.Coderack, sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand, g *workspace.Object) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "group-strength-tester", Category: "group", Urgency: 50,
		Run: func() error {
			g.UpdateStrengths(sn)
			probability := w.TemperatureAdjustedProbability(float64(g.TotalStrength) / 100.0)
			if !randutil.FlipCoin(rng, probability) {
				g.String.RemoveProposedGroup(g)
				return nil
			}
			g.ProposalLevel = workspace.LevelEvaluated
			g.GroupCategory.ActivationBuffer += workspace.Activation
			if g.DirectionCategory != nil {
				g.DirectionCategory.ActivationBuffer += workspace.Activation
			}
			builder := NewGroupBuilder(rack, sn, w, rng, g)
			builder.Urgency = g.TotalStrength
			rack.Post(builder)
			return nil
		},
	}
}

// NewGroupBuilder re-validates the group's members are still present
// and ungrouped elsewhere, fights incompatible groups/correspondences,
// flips member bonds that need flipping, and on success builds it.
//
// Grounded on group.py's incompatible-group/correspondence detection
// and flipped-bond mechanics, applied in the bond.py BondBuilder
// three-stage shape.
func NewGroupBuilder(rack *coderack.Coderack, sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand, g *workspace.Object) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "group-builder", Category: "group", Urgency: 50,
		Run: func() error {
			for _, m := range g.Objects {
				if m.Parent != nil && m.Parent != g {
					g.String.RemoveProposedGroup(g)
					return nil
				}
			}

			if existing := g.String.EqualGroupExists(g); existing != nil {
				g.String.RemoveProposedGroup(g)
				return nil
			}
			g.String.RemoveProposedGroup(g)

			incompatibleGroups := g.IncompatibleGroups()
			competitors := make([]workspace.Structure, len(incompatibleGroups))
			for i, og := range incompatibleGroups {
				competitors[i] = og
			}
			if !workspace.FightItOut(rng, w.Temperature, g, 1, competitors, 1) {
				return nil
			}

			incompatibleCorrs := g.IncompatibleCorrespondences(sn)
			corrCompetitors := make([]workspace.Structure, len(incompatibleCorrs))
			for i, c := range incompatibleCorrs {
				corrCompetitors[i] = c
			}
			if !workspace.FightItOut(rng, w.Temperature, g, 2, corrCompetitors, 3) {
				return nil
			}

			for _, og := range incompatibleGroups {
				w.BreakGroup(og)
			}
			for _, c := range incompatibleCorrs {
				w.BreakCorrespondence(c)
			}
			for _, flip := range g.BondsToBeFlipped(sn) {
				w.BreakBond(flip)
				w.BuildBond(flip.FlippedVersion(sn))
			}
			w.BuildGroup(g)
			return nil
		},
	}
}
