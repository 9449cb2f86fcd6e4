package workspace

import (
	"math"

	"github.com/katalvlaran/copycat/slipnet"
)

// NewBond constructs an unproposed Bond between adjacent objects
// fromObj/toObj, described by the given category/facet/descriptor
// quadruple. direction is derived from the bond category: a directed
// category (successor/predecessor) yields NodeRight if fromObj precedes
// toObj in the string, NodeLeft otherwise; an undirected category
// (sameness) yields a nil direction.
//
// Grounded on original_source's workspace.propose_bond / bond.py's
// Bond.__init__.
func NewBond(sn *slipnet.Slipnet, string *WorkspaceString, fromObj, toObj *Object, category, facet, fromDescriptor, toDescriptor *slipnet.Slipnode) *Bond {
	b := &Bond{
		String:         string,
		FromObject:     fromObj,
		ToObject:       toObj,
		BondCategory:   category,
		BondFacet:      facet,
		FromDescriptor: fromDescriptor,
		ToDescriptor:   toDescriptor,
	}
	if category.Directed {
		if fromObj.LeftPos < toObj.LeftPos {
			if n, err := sn.Node(slipnet.NodeRight); err == nil {
				b.DirectionCategory = n
			}
		} else {
			if n, err := sn.Node(slipnet.NodeLeft); err == nil {
				b.DirectionCategory = n
			}
		}
	}
	return b
}

// IsLeftmostInString reports whether the bond's lower-positioned
// endpoint starts the string.
func (b *Bond) IsLeftmostInString() bool {
	return b.leftObject().LeftPos == 0
}

// IsRightmostInString reports whether the bond's higher-positioned
// endpoint ends the string.
func (b *Bond) IsRightmostInString() bool {
	return b.rightObject().RightPos == b.String.Length()-1
}

func (b *Bond) leftObject() *Object {
	if b.FromObject.LeftPos <= b.ToObject.LeftPos {
		return b.FromObject
	}
	return b.ToObject
}

func (b *Bond) rightObject() *Object {
	if b.FromObject.RightPos >= b.ToObject.RightPos {
		return b.FromObject
	}
	return b.ToObject
}

// InternalStrength is the degree of association of the bond's
// category, per spec.md §4.3 (grounded on bond.py's Bond calling
// BondCategory.degree_of_association through its slipnet node).
func (b *Bond) InternalStrength() int {
	return b.BondCategory.BondDegreeOfAssociation()
}

// ExternalStrength folds in how many other bonds of this category/
// direction exist in the string (the original's local-support
// analogue for bonds): the more supporting neighbors, the stronger.
//
// Grounded on original_source's Bond.calculate_external_strength,
// which for bonds degenerates to a flat 100 when the bond spans the
// whole string and otherwise counts same-category same-direction
// neighbors.
func (b *Bond) ExternalStrength() int {
	if b.SpansWholeString() {
		return 100
	}
	supporting := 0
	for _, other := range b.String.BuiltBonds() {
		if other == b {
			continue
		}
		if other.BondCategory == b.BondCategory && other.DirectionCategory == b.DirectionCategory {
			supporting++
		}
	}
	if supporting == 0 {
		return 0
	}
	return int(math.Round(100 * (1 - math.Pow(0.6, float64(supporting)))))
}

// SpansWholeString reports whether the bond's two endpoints are the
// string's first and last positions.
func (b *Bond) SpansWholeString() bool {
	return b.leftObject().LeftPos == 0 && b.rightObject().RightPos == b.String.Length()-1
}

// UpdateStrengths recomputes TotalStrength as the weighted average of
// internal and external strength, per spec.md §4.3's weighted-average
// strength rule (grounded on bond.py's Bond.update_strengths /
// toolbox.weighted_average). Temperature adjustment is applied
// separately, at the probability stage (TemperatureAdjustedProbability),
// not here.
func (b *Bond) UpdateStrengths() {
	internal := b.InternalStrength()
	external := b.ExternalStrength()
	internalWeight := math.Pow(float64(internal), 0.98)
	externalWeight := 100 - internalWeight
	weighted := weightedAverage([2]float64{internalWeight, externalWeight}, [2]float64{float64(internal), float64(external)})
	b.TotalStrength = int(math.Round(weighted))
}

func weightedAverage(weights, values [2]float64) float64 {
	sumW := weights[0] + weights[1]
	if sumW <= 0 {
		return (values[0] + values[1]) / 2
	}
	return (weights[0]*values[0] + weights[1]*values[1]) / sumW
}

// IncompatibleBonds returns the built bonds this bond's endpoints
// currently hold that would conflict with building this bond: every
// left or right bond of either endpoint, deduplicated and excluding
// anything already equal to this bond.
//
// Grounded on original_source's Bond.incompatible_bonds.
func (b *Bond) IncompatibleBonds() []*Bond {
	var out []*Bond
	seen := make(map[*Bond]bool)
	add := func(other *Bond) {
		if other == nil || other.Equal(b) || seen[other] {
			return
		}
		seen[other] = true
		out = append(out, other)
	}
	add(b.FromObject.RightBond)
	add(b.FromObject.LeftBond)
	add(b.ToObject.RightBond)
	add(b.ToObject.LeftBond)
	return out
}

// IncompatibleCorrespondences returns the built correspondences at the
// bond's endpoints whose direction mapping would conflict with this
// bond's direction, consulted only when the bond touches a string edge
// (spec.md §4.3's bond/correspondence cross-check).
//
// Grounded on original_source's Bond.incompatible_correspondences,
// itself delegating to Group.is_incompatible_correspondence's concept-
// mapping conflict test.
func (b *Bond) IncompatibleCorrespondences() []*Correspondence {
	var out []*Correspondence
	for _, obj := range []*Object{b.FromObject, b.ToObject} {
		c := obj.Correspondence
		if c == nil {
			continue
		}
		other := c.OtherObject(obj)
		var otherBond *Bond
		if other.IsLeftmostInString() {
			otherBond = other.RightBond
		} else if other.IsRightmostInString() {
			otherBond = other.LeftBond
		}
		if otherBond == nil || otherBond.DirectionCategory == nil || b.DirectionCategory == nil {
			continue
		}
		for _, m := range c.ConceptMappings {
			if m.DescriptionType1 != nil && m.Descriptor1 == b.DirectionCategory && m.Descriptor2 != otherBond.DirectionCategory {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
