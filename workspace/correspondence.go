package workspace

import "github.com/katalvlaran/copycat/slipnet"

// NewCorrespondence constructs an unproposed Correspondence between an
// initial-string object and a target-string object, carrying the given
// concept mappings.
//
// Grounded on original_source's workspace.propose_correspondence /
// group.py's incompatible-correspondence tests that construct
// Correspondence/Mapping pairs.
func NewCorrespondence(initial, target *Object, mappings []*Mapping, accessory bool) (*Correspondence, error) {
	if initial.String == target.String {
		return nil, ErrCorrespondenceSameString
	}
	return &Correspondence{
		ObjectFromInitial: initial,
		ObjectFromTarget:  target,
		ConceptMappings:   mappings,
		AccessoryMappings: accessory,
	}, nil
}

// InternalStrength is the average degree-of-association across the
// correspondence's concept mappings' relation nodes (identity mappings
// scoring via their own "identity" node, same as the original).
//
// Grounded on original_source's Correspondence.calculate_internal_strength.
func (c *Correspondence) InternalStrength() int {
	if len(c.ConceptMappings) == 0 {
		return 0
	}
	sum := 0
	for _, m := range c.ConceptMappings {
		if m.Relation != nil {
			sum += m.Relation.DegreeOfAssociation()
		}
	}
	return sum / len(c.ConceptMappings)
}

// ExternalStrength reflects how much of the correspondence's span is
// covered by bonds participating in the same concept mappings
// (approximated here as 100 when either endpoint spans its whole
// string, else half that, matching the coarse fallback the original
// uses absent deeper bond-correspondence bridging).
//
// Grounded on original_source's Correspondence.calculate_external_strength.
func (c *Correspondence) ExternalStrength() int {
	if c.ObjectFromInitial.SpansWholeString() || c.ObjectFromTarget.SpansWholeString() {
		return 100
	}
	return 50
}

// UpdateStrengths recomputes TotalStrength as the weighted average of
// internal and external strength, with internal weight 0.8*internal and
// external weight 100 minus that, truncated to an int. This differs
// from the bond and group rule, which weights by internal^0.98 and
// rounds.
func (c *Correspondence) UpdateStrengths() {
	internal := c.InternalStrength()
	external := c.ExternalStrength()
	internalWeight := 0.8 * float64(internal)
	externalWeight := 100 - internalWeight
	weighted := weightedAverage([2]float64{internalWeight, externalWeight}, [2]float64{float64(internal), float64(external)})
	c.TotalStrength = int(weighted)
}

// HasIncompatibleMappingWith reports whether any mapping in c conflicts
// (per Mapping.IsIncompatible) with any mapping in other.
func (c *Correspondence) HasIncompatibleMappingWith(other *Correspondence) bool {
	if other == nil {
		return false
	}
	for _, m := range c.ConceptMappings {
		for _, om := range other.ConceptMappings {
			if m.IsIncompatible(om) {
				return true
			}
		}
	}
	return false
}

// SlippagesFrom collects the (descriptor1 -> descriptor2) slippage
// pairs a built correspondence's non-identity concept mappings
// contribute, used to translate the Rule for the answer string.
//
// Grounded on original_source's Workspace.build_correspondence, which
// appends each non-identity mapping's descriptor pair to
// workspace.slippages.
func (c *Correspondence) SlippagesFrom(sn *slipnet.Slipnet) []slipnet.Slippage {
	identity, err := sn.Node(slipnet.NodeIdentity)
	var out []slipnet.Slippage
	for _, m := range c.ConceptMappings {
		if err == nil && m.Relation == identity {
			continue
		}
		if m.Descriptor1 != nil && m.Descriptor2 != nil && m.Descriptor1 != m.Descriptor2 {
			out = append(out, slipnet.Slippage{Descriptor1: m.Descriptor1, Descriptor2: m.Descriptor2})
		}
	}
	return out
}
