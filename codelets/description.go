package codelets

import (
	"math/rand"

	"github.com/katalvlaran/copycat/coderack"
	"github.com/katalvlaran/copycat/randutil"
	"github.com/katalvlaran/copycat/slipnet"
	"github.com/katalvlaran/copycat/workspace"
)

// NewDescriptionBottomUpScout picks an object by intra-string
// salience, picks one of its existing descriptions, and — if the
// Slipnet offers an opposite of that descriptor that the object does
// not already carry (e.g. "rightmost" for a "leftmost" object) — adds
// it under the same description type as a fresh description, nudging the concepts
// involved. This is the only codelet family that mutates an object in
// place rather than proposing a new Bond/Group/Correspondence.
//
// Grounded on the general description-codelet shape spec.md §4.2
// mentions alongside the bond/group/correspondence families; no
// description-codelet source file was retrieved in original_source, so
// the "related node under the same facet" trigger is this repo's
// concretization, matching group.py's own length-description coin flip
// at construction time for the one facet (length) the original does
// emit probabilistically.
func NewDescriptionBottomUpScout(sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "description-bottom-up-scout", Category: "description", Urgency: 10,
		Run: func() error {
			obj := w.ChooseObject(rng, workspace.IntraStringSalience)
			if obj == nil || len(obj.Descriptions) == 0 {
				return nil
			}
			d := obj.Descriptions[rng.Intn(len(obj.Descriptions))]
			opposite, err := sn.Node(slipnet.NodeOpposite)
			if err != nil {
				return err
			}
			related := sn.GetRelatedNode(d.Descriptor, opposite)
			if related == nil || obj.IsDescriptorPresent(related) {
				return nil
			}
			probability := w.TemperatureAdjustedProbability(float64(related.DegreeOfAssociation()) / 100.0)
			if !randutil.FlipCoin(rng, probability) {
				return nil
			}
			obj.AddDescription(d.DescriptionType, related)
			related.ActivationBuffer += workspace.Activation
			return nil
		},
	}
}
