package slipnet

import "math"

// GetRelatedNode returns the node y such that node -[relation]-> y,
// searching every outgoing link whose label equals relation. Returns
// nil if no such link exists.
//
// Grounded on original_source's Slipnet.get_related_node (used
// pervasively, e.g. group.go's calculate_internal_strength: "related =
// get_related_node(group_category, plato_bond_category)").
func (s *Slipnet) GetRelatedNode(node, relation *Slipnode) *Slipnode {
	if node == nil || relation == nil {
		return nil
	}
	for _, l := range node.OutgoingLinks() {
		if l.Label == relation {
			return l.To
		}
	}
	return nil
}

// GetBondCategory returns the directed bond-category node relating
// descriptor `from` to descriptor `to` (e.g. "successor" relates 'a'
// to 'b'): the letter/number instance nodes carry lateral-slip links
// directly to their neighbors, labeled by the bond category they
// instantiate. from==to always yields Sameness. Returns nil if no such
// link exists in that order.
//
// Grounded on original_source's Slipnet.get_bond_category, consulted
// by every bond-scout codelet (bond.py: BondBottomUpScout,
// BondTopDownCategoryScout).
func (s *Slipnet) GetBondCategory(from, to *Slipnode) *Slipnode {
	if from == nil || to == nil {
		return nil
	}
	if from == to {
		n, err := s.Node(NodeSameness)
		if err == nil {
			return n
		}
		return nil
	}
	for _, l := range from.OutgoingLinks() {
		if l.To == to && l.Label != nil && l.Label.Category() != nil {
			if cat, err := s.Node(NodeBondCategory); err == nil && l.Label.Category() == cat {
				return l.Label
			}
		}
	}
	return nil
}

// DegreeOfAssociation returns 100 minus the node's shrunk link length
// if the node is active, else 100 minus its intrinsic link length —
// spec.md §4.1's invariant verbatim.
func (n *Slipnode) DegreeOfAssociation() int {
	if n.IsActive() {
		return 100 - n.ShrunkLinkLength
	}
	return 100 - n.IntrinsicLinkLength
}

// BondDegreeOfAssociation applies the concave 11*sqrt(degree) scaling
// spec.md §4.1 specifies, damping low-association bonds; capped at 100.
func (n *Slipnode) BondDegreeOfAssociation() int {
	degree := n.DegreeOfAssociation()
	if degree < 0 {
		degree = 0
	}
	v := int(math.Round(11 * math.Sqrt(float64(degree))))
	if v > 100 {
		return 100
	}
	return v
}

// ApplySlippage returns the node that is the translation of n
// according to a single (descriptor1 -> descriptor2) slippage list,
// returning n unchanged if no slippage mentions it.
//
// Grounded on original_source's Slipnode.apply_slippages.
func ApplySlippage(n *Slipnode, slippages []Slippage) *Slipnode {
	for _, sl := range slippages {
		if sl.Descriptor1 == n {
			return sl.Descriptor2
		}
	}
	return n
}

// Slippage is a single concept-to-concept substitution accumulated
// from a built Correspondence's concept mappings, used by
// ApplySlippage and by workspace.TranslateRule.
type Slippage struct {
	Descriptor1 *Slipnode
	Descriptor2 *Slipnode
}
