package codelets

import (
	"math/rand"

	"github.com/katalvlaran/copycat/coderack"
	"github.com/katalvlaran/copycat/randutil"
	"github.com/katalvlaran/copycat/slipnet"
	"github.com/katalvlaran/copycat/workspace"
)

// NewCorrespondenceScout picks an object from Initial and an object
// from Target by inter-string salience, builds the concept mappings
// between every description type they share (identity where the
// descriptors match, the Slipnet's related-node otherwise), and — if
// at least one mapping resulted — proposes a Correspondence.
//
// Grounded on original_source's workspace.propose_correspondence,
// generalizing bond.py's scout shape to the cross-string case.
func NewCorrespondenceScout(rack *coderack.Coderack, sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "correspondence-scout", Category: "correspondence", Urgency: 30,
		Run: func() error {
			pick := func(s *workspace.WorkspaceString) *workspace.Object {
				objs := s.Objects()
				weights := make([]float64, len(objs))
				for i, o := range objs {
					weights[i] = workspace.InterStringSalience(o)
				}
				idx := randutil.WeightedSelect(rng, weights)
				if idx < 0 {
					return nil
				}
				return objs[idx]
			}
			initObj := pick(w.Initial)
			targetObj := pick(w.Target)
			if initObj == nil || targetObj == nil {
				return nil
			}
			mappings, err := conceptMappings(sn, initObj, targetObj)
			if err != nil {
				return err
			}
			if len(mappings) == 0 {
				return nil
			}
			c, err := workspace.NewCorrespondence(initObj, targetObj, mappings, false)
			if err != nil {
				return nil // e.g. ErrCorrespondenceSameString: not a programming bug here, just a fizzle
			}
			c.ProposalLevel = workspace.LevelNew
			rack.Post(NewCorrespondenceStrengthTester(rack, w, rng, c))
			return nil
		},
	}
}

// conceptMappings builds one Mapping per description type shared by a
// and b: identity when the descriptors match, the Slipnet's
// GetRelatedNode bridge (e.g. leftmost<->rightmost via "opposite")
// otherwise, skipped when no such bridge exists.
func conceptMappings(sn *slipnet.Slipnet, a, b *workspace.Object) ([]*workspace.Mapping, error) {
	identity, err := sn.Node(slipnet.NodeIdentity)
	if err != nil {
		return nil, err
	}
	opposite, err := sn.Node(slipnet.NodeOpposite)
	if err != nil {
		return nil, err
	}
	var out []*workspace.Mapping
	for _, d := range a.Descriptions {
		bDesc := b.GetDescriptor(d.DescriptionType)
		if bDesc == nil {
			continue
		}
		if bDesc == d.Descriptor {
			out = append(out, &workspace.Mapping{
				DescriptionType1: d.DescriptionType, DescriptionType2: d.DescriptionType,
				Descriptor1: d.Descriptor, Descriptor2: bDesc,
				Relation: identity, Label: identity,
			})
			continue
		}
		if related := sn.GetRelatedNode(d.Descriptor, opposite); related == bDesc {
			out = append(out, &workspace.Mapping{
				DescriptionType1: d.DescriptionType, DescriptionType2: d.DescriptionType,
				Descriptor1: d.Descriptor, Descriptor2: bDesc,
				Relation: opposite, Label: opposite,
			})
		}
	}
	return out, nil
}

// NewCorrespondenceStrengthTester computes the candidate's strength
// and, on a successful temperature-adjusted coin flip, posts a
// builder.
func NewCorrespondenceStrengthTester(rack *coderack.Coderack, w *workspace.Workspace, rng *rand.Rand, c *workspace.Correspondence) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "correspondence-strength-tester", Category: "correspondence", Urgency: 50,
		Run: func() error {
			c.UpdateStrengths()
			probability := w.TemperatureAdjustedProbability(float64(c.TotalStrength) / 100.0)
			if !randutil.FlipCoin(rng, probability) {
				return nil
			}
			c.ProposalLevel = workspace.LevelEvaluated
			builder := NewCorrespondenceBuilder(rack, w, rng, c)
			builder.Urgency = c.TotalStrength
			rack.Post(builder)
			return nil
		},
	}
}

// NewCorrespondenceBuilder fights whatever correspondence is already
// built at either endpoint, whether or not its mappings conflict, and
// on success builds it,
// folding its non-identity mappings into the run's slippage list.
//
// Grounded on original_source's Workspace.build_correspondence.
func NewCorrespondenceBuilder(rack *coderack.Coderack, w *workspace.Workspace, rng *rand.Rand, c *workspace.Correspondence) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "correspondence-builder", Category: "correspondence", Urgency: 50,
		Run: func() error {
			var competitors []workspace.Structure
			if existing := c.ObjectFromInitial.Correspondence; existing != nil {
				competitors = append(competitors, existing)
			}
			if existing := c.ObjectFromTarget.Correspondence; existing != nil && existing != c.ObjectFromInitial.Correspondence {
				competitors = append(competitors, existing)
			}
			if !workspace.FightItOut(rng, w.Temperature, c, 1, competitors, 1) {
				return nil
			}
			for _, s := range competitors {
				w.BreakCorrespondence(s.(*workspace.Correspondence))
			}
			w.BuildCorrespondence(c)
			return nil
		},
	}
}
