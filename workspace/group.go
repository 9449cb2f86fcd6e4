package workspace

import (
	"math"

	"github.com/katalvlaran/copycat/slipnet"
)

// NewGroup builds a Group object spanning left..right, emitting the
// same description set original_source's Group.__init__ emits: object-
// category (whole/group), string-position-category (leftmost/middle/
// rightmost, unless the group spans the whole string), group-category,
// direction-category, and — for sameness groups of letters — a shared
// letter-category description. bond_facet/bond_category mirror the
// member bonds' facet when any bond is present. No length description
// is emitted, neither here nor when the group is built.
//
// Grounded on original_source's group.py Group.__init__.
func NewGroup(sn *slipnet.Slipnet, string *WorkspaceString, groupCategory, directionCategory *slipnet.Slipnode, left, right *Object, members []*Object, bonds []*Bond) (*Object, error) {
	g := &Object{
		Kind:              KindGroup,
		String:            string,
		LeftPos:           left.LeftPos,
		RightPos:          right.RightPos,
		GroupCategory:     groupCategory,
		DirectionCategory: directionCategory,
		Objects:           members,
		Bonds:             bonds,
	}

	bondCategoryNode, err := sn.Node(slipnet.NodeBondCategory)
	if err != nil {
		return nil, err
	}
	g.BondCategory = sn.GetRelatedNode(groupCategory, bondCategoryNode)

	objectCategory, err := sn.Node(slipnet.NodeObjectCategory)
	if err != nil {
		return nil, err
	}
	if g.SpansWholeString() {
		whole, err := sn.Node(slipnet.NodeWholeObject)
		if err != nil {
			return nil, err
		}
		g.AddDescription(objectCategory, whole)
	}
	groupObj, err := sn.Node(slipnet.NodeGroupObject)
	if err != nil {
		return nil, err
	}
	g.AddDescription(objectCategory, groupObj)

	posCategory, err := sn.Node(slipnet.NodeStringPositionCategory)
	if err != nil {
		return nil, err
	}
	switch {
	case g.IsLeftmostInString() && !g.SpansWholeString():
		if n, err := sn.Node(slipnet.NodeLeftmost); err == nil {
			g.AddDescription(posCategory, n)
		}
	case isMiddleInString(g):
		if n, err := sn.Node(slipnet.NodeMiddle); err == nil {
			g.AddDescription(posCategory, n)
		}
	case g.IsRightmostInString() && !g.SpansWholeString():
		if n, err := sn.Node(slipnet.NodeRightmost); err == nil {
			g.AddDescription(posCategory, n)
		}
	}

	samenessGroup, err := sn.Node(slipnet.NodeSamenessGroup)
	if err == nil && groupCategory == samenessGroup {
		letterCategoryFacet, err := sn.Node(slipnet.NodeLetterCategoryFacet)
		if err == nil && (len(bonds) == 0 || bonds[0].BondFacet == letterCategoryFacet) {
			if letterCat := left.GetDescriptor(letterCategoryFacet); letterCat != nil {
				g.AddDescription(letterCategoryFacet, letterCat)
			}
		}
	}

	groupCategoryFacet, err := sn.Node(slipnet.NodeGroupCategory)
	if err != nil {
		return nil, err
	}
	g.AddDescription(groupCategoryFacet, groupCategory)

	if directionCategory != nil {
		directionFacet, err := sn.Node(slipnet.NodeDirectionCategory)
		if err == nil {
			g.AddDescription(directionFacet, directionCategory)
		}
	}

	if len(bonds) > 0 {
		g.BondFacet = bonds[0].BondFacet
		bondFacetNode, err := sn.Node(slipnet.NodeBondFacet)
		if err == nil {
			g.AddDescription(bondFacetNode, g.BondFacet)
		}
	}

	return g, nil
}

func isMiddleInString(g *Object) bool {
	for _, m := range g.Objects {
		if posFacet := middlePositionOf(m); posFacet {
			return true
		}
	}
	return false
}

func middlePositionOf(o *Object) bool {
	for _, d := range o.Descriptions {
		if d.DescriptionType.Name == slipnet.NodeStringPositionCategory && d.Descriptor.Name == slipnet.NodeMiddle {
			return true
		}
	}
	return false
}

// InternalStrength weights the group's bond-category association
// against its length, letter-category bonds counting double, per
// spec.md §4.3 (grounded on group.py's calculate_internal_strength).
func (o *Object) InternalStrength(sn *slipnet.Slipnet) int {
	bondFacetFactor := 0.5
	if letterCategoryFacet, err := sn.Node(slipnet.NodeLetterCategoryFacet); err == nil && o.BondFacet == letterCategoryFacet {
		bondFacetFactor = 1.0
	}
	var bondComponent float64
	if o.BondCategory != nil {
		bondComponent = float64(o.BondCategory.DegreeOfAssociation()) * bondFacetFactor
	}
	lengthComponent := lengthStrengthTable(o.LetterSpan())

	bondWeight := math.Pow(bondComponent, 0.98)
	lengthWeight := 100 - bondWeight
	return int(math.Round(weightedAverage([2]float64{bondWeight, lengthWeight}, [2]float64{bondComponent, lengthComponent})))
}

func lengthStrengthTable(length int) float64 {
	switch length {
	case 1:
		return 5
	case 2:
		return 20
	case 3:
		return 60
	default:
		return 90
	}
}

// UpdateStrengths recomputes TotalStrength from internal/external
// strength via the same weighted-average rule Bond.UpdateStrengths
// uses, so groups and bonds compete on a common scale in FightItOut.
func (o *Object) UpdateStrengths(sn *slipnet.Slipnet) {
	internal := o.InternalStrength(sn)
	external := o.ExternalStrength()
	internalWeight := math.Pow(float64(internal), 0.98)
	externalWeight := 100 - internalWeight
	o.TotalStrength = int(math.Round(weightedAverage([2]float64{internalWeight, externalWeight}, [2]float64{float64(internal), float64(external)})))
}

// ExternalStrength is 100 for a whole-string-spanning group, else the
// group's LocalSupport.
func (o *Object) ExternalStrength() int {
	if o.SpansWholeString() {
		return 100
	}
	return o.LocalSupport()
}

// NumberOfLocalSupportingGroups counts other built groups in the same
// string sharing this group's category and direction, excluding
// subgroup/overlap relationships.
//
// Grounded on original_source's Group.number_of_local_supporting_groups.
func (o *Object) NumberOfLocalSupportingGroups() int {
	count := 0
	for _, other := range o.String.Groups() {
		if other == o {
			continue
		}
		if o.isSubgroupOf(other) || other.isSubgroupOf(o) || o.overlaps(other) {
			continue
		}
		if other.GroupCategory == o.GroupCategory && other.DirectionCategory == o.DirectionCategory {
			count++
		}
	}
	return count
}

func (o *Object) isSubgroupOf(other *Object) bool {
	return other.LeftPos <= o.LeftPos && other.RightPos >= o.RightPos
}

func (o *Object) overlaps(other *Object) bool {
	for _, m := range o.Objects {
		found := false
		for _, om := range other.Objects {
			if om == m {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(o.Objects) > 0
}

// LocalDensity approximates the density of same-category same-
// direction groups immediately flanking this group, walking outward
// left and right one slot at a time (letters collapse into their
// parent group).
//
// Grounded on original_source's Group.local_density.
func (o *Object) LocalDensity() int {
	if o.SpansWholeString() {
		return 100
	}
	slots, support := 0, 0
	walk := func(start int, step int) {
		pos := start
		for pos >= 0 && pos < o.String.Length() {
			cur := o.String.Letter(pos)
			if cur == nil {
				break
			}
			var group *Object
			if cur.Parent != nil {
				group = cur.Parent
			}
			slots++
			if group != nil && group != o && !o.overlaps(group) && group.GroupCategory == o.GroupCategory && group.DirectionCategory == o.DirectionCategory {
				support++
			}
			if group != nil {
				pos = group.LeftPos + step
				if step > 0 {
					pos = group.RightPos + step
				}
			} else {
				pos += step
			}
		}
	}
	walk(o.LeftPos-1, -1)
	walk(o.RightPos+1, 1)
	if slots == 0 {
		return 100
	}
	return int(math.Round(100 * float64(support) / float64(slots)))
}

// LocalSupport combines NumberOfLocalSupportingGroups and LocalDensity
// into the group's external-strength contribution.
//
// Grounded on original_source's Group.local_support.
func (o *Object) LocalSupport() int {
	n := o.NumberOfLocalSupportingGroups()
	if n == 0 {
		return 0
	}
	density := o.LocalDensity()
	adjustedDensity := 100 * math.Sqrt(float64(density)/100.0)
	numberFactor := math.Min(1, math.Pow(0.6, 1/math.Pow(float64(n), 3)))
	return int(math.Round(adjustedDensity * numberFactor))
}

// IsSubgroupOf reports whether o is entirely contained within other's
// span (exported convenience over isSubgroupOf for cross-package use).
func (o *Object) IsSubgroupOf(other *Object) bool { return o.isSubgroupOf(other) }

// IncompatibleGroups returns the distinct built groups currently
// holding any of o's member objects (the groups o's construction would
// have to break to be built).
//
// Grounded on original_source's Group.get_incompatible_groups.
func (o *Object) IncompatibleGroups() []*Object {
	seen := make(map[*Object]bool)
	var out []*Object
	for _, member := range o.Objects {
		if member.Parent != nil && member.Parent != o && !seen[member.Parent] {
			seen[member.Parent] = true
			out = append(out, member.Parent)
		}
	}
	return out
}

// IncompatibleCorrespondences returns the built correspondences on o's
// member objects whose direction mapping conflicts with o's own
// direction category, per group.py's is_incompatible_correspondence.
func (o *Object) IncompatibleCorrespondences(sn *slipnet.Slipnet) []*Correspondence {
	posCategory, err := sn.Node(slipnet.NodeStringPositionCategory)
	if err != nil {
		return nil
	}
	var out []*Correspondence
	for _, member := range o.Objects {
		c := member.Correspondence
		if c == nil {
			continue
		}
		var mapping *Mapping
		for _, m := range c.ConceptMappings {
			if m.DescriptionType1 == posCategory {
				mapping = m
				break
			}
		}
		if mapping == nil {
			continue
		}
		other := c.OtherObject(member)
		var otherBond *Bond
		if other.IsLeftmostInString() {
			otherBond = other.RightBond
		} else if other.IsRightmostInString() {
			otherBond = other.LeftBond
		}
		if otherBond == nil || otherBond.DirectionCategory == nil || o.DirectionCategory == nil {
			continue
		}
		if mapping.Descriptor1 == o.DirectionCategory && mapping.Descriptor2 != otherBond.DirectionCategory {
			out = append(out, c)
		}
	}
	return out
}

// FlippedVersion returns the predecessor<->successor-flipped version
// of a group (its bonds reversed, category/direction swapped to their
// opposite), or o unchanged if its category isn't predecessor/successor.
//
// Grounded on original_source's Group.flipped_version.
func (o *Object) FlippedVersion(sn *slipnet.Slipnet) (*Object, error) {
	predGroup, err := sn.Node(slipnet.NodePredecessorGroup)
	if err != nil {
		return o, nil
	}
	succGroup, err := sn.Node(slipnet.NodeSuccessorGroup)
	if err != nil {
		return o, nil
	}
	if o.GroupCategory != predGroup && o.GroupCategory != succGroup {
		return o, nil
	}
	flippedBonds := make([]*Bond, len(o.Bonds))
	for i, b := range o.Bonds {
		flippedBonds[i] = b.FlippedVersion(sn)
	}
	opp, err := sn.Node(slipnet.NodeOpposite)
	if err != nil {
		return o, nil
	}
	newCategory := sn.GetRelatedNode(o.GroupCategory, opp)
	newDirection := sn.GetRelatedNode(o.DirectionCategory, opp)
	return NewGroup(sn, o.String, newCategory, newDirection, o.Objects[0], o.Objects[len(o.Objects)-1], o.Objects, flippedBonds)
}

// BondsToBeFlipped returns the built bonds in the string, opposite in
// direction to this group's own member bonds, that must be flipped for
// the group to be built.
//
// Grounded on original_source's Group.get_bonds_to_be_flipped.
func (o *Object) BondsToBeFlipped(sn *slipnet.Slipnet) []*Bond {
	var out []*Bond
	for _, b := range o.Bonds {
		if existing := o.String.BuiltBond(b.ToObject, b.FromObject); existing != nil {
			if flipped := existing.FlippedVersion(sn); flipped.Equal(b) {
				out = append(out, existing)
			}
		}
	}
	return out
}
