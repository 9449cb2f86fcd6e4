package workspace

import "github.com/katalvlaran/copycat/slipnet"

// ProposalLevel is a structure's position in the propose-build
// lifecycle, per spec.md §3: "new=0, proposed=1, evaluated=2, built."
// Only Built structures are considered real; New/Proposed/Evaluated
// ones are candidates awaiting builder codelets.
type ProposalLevel int

const (
	LevelNew ProposalLevel = iota
	LevelProposed
	LevelEvaluated
	LevelBuilt
)

// ObjectKind tags an Object as a Letter or a Group — spec.md §9's
// "tagged sum {Letter, Group} for Object."
type ObjectKind int

const (
	KindLetter ObjectKind = iota
	KindGroup
)

// Description is (object, description_type_node, descriptor_node),
// always attached to exactly one object, per spec.md §3.
type Description struct {
	Object         *Object
	DescriptionType *slipnet.Slipnode
	Descriptor     *slipnet.Slipnode
}

// Object is a letter or a group in one WorkspaceString, modeled as a
// tagged union (spec.md §9). Fields not relevant to a Letter (group_
// category, objects, bonds, ...) are simply left zero-valued.
type Object struct {
	Kind   ObjectKind
	String *WorkspaceString

	// LeftPos/RightPos: the object's span in its string. For a Letter,
	// LeftPos == RightPos == its single position.
	LeftPos, RightPos int

	Descriptions []*Description
	Parent       *Object // the group this object belongs to, if any

	LeftBond, RightBond *Bond
	Correspondence       *Correspondence

	RawSalience, IntraSalience, InterSalience, TotalSalience float64

	// Letter-only.
	LetterCategory *slipnet.Slipnode

	// Group-only.
	GroupCategory     *slipnet.Slipnode
	DirectionCategory *slipnet.Slipnode
	BondFacet         *slipnet.Slipnode
	BondCategory      *slipnet.Slipnode
	Objects           []*Object
	Bonds             []*Bond
	ProposalLevel     ProposalLevel
	TotalStrength     int
}

// IsLetter/IsGroup are the thin discriminators spec.md §9 asks for in
// place of type assertions scattered through the codebase.
func (o *Object) IsLetter() bool { return o.Kind == KindLetter }
func (o *Object) IsGroup() bool  { return o.Kind == KindGroup }

// LetterSpan returns the number of letters the object covers: 1 for a
// Letter, RightPos-LeftPos+1 for a Group.
func (o *Object) LetterSpan() int { return o.RightPos - o.LeftPos + 1 }

// IsLeftmostInString reports whether the object starts at position 0.
func (o *Object) IsLeftmostInString() bool { return o.LeftPos == 0 }

// IsRightmostInString reports whether the object ends at the string's
// last position.
func (o *Object) IsRightmostInString() bool {
	return o.RightPos == o.String.Length()-1
}

// SpansWholeString reports whether the object's span equals the
// entire string's length.
func (o *Object) SpansWholeString() bool {
	return o.LetterSpan() == o.String.Length()
}

// LeftNeighbor returns the top-level object immediately to the left of
// o in its string, or nil at the string's left edge.
func (o *Object) LeftNeighbor() *Object {
	if o.LeftPos == 0 {
		return nil
	}
	return o.String.ObjectAt(o.LeftPos - 1)
}

// RightNeighbor returns the top-level object immediately to the right
// of o in its string, or nil at the string's right edge.
func (o *Object) RightNeighbor() *Object {
	if o.RightPos >= o.String.Length()-1 {
		return nil
	}
	return o.String.ObjectAt(o.RightPos + 1)
}

// AddDescription attaches a new Description to the object.
func (o *Object) AddDescription(descType, descriptor *slipnet.Slipnode) *Description {
	d := &Description{Object: o, DescriptionType: descType, Descriptor: descriptor}
	o.Descriptions = append(o.Descriptions, d)
	return d
}

// GetDescriptor returns the descriptor node of the given description
// type attached to this object, or nil.
func (o *Object) GetDescriptor(descType *slipnet.Slipnode) *slipnet.Slipnode {
	for _, d := range o.Descriptions {
		if d.DescriptionType == descType {
			return d.Descriptor
		}
	}
	return nil
}

// IsDescriptorPresent reports whether any description on this object
// uses the given descriptor node, regardless of description type.
func (o *Object) IsDescriptorPresent(descriptor *slipnet.Slipnode) bool {
	for _, d := range o.Descriptions {
		if d.Descriptor == descriptor {
			return true
		}
	}
	return false
}

// Bond is (from_object, to_object, bond_category, bond_facet,
// from_descriptor, to_descriptor, direction_category), living in
// exactly one string between adjacent objects of that string, per
// spec.md §3. Equality is by the 6-tuple (DirectionCategory excluded
// from the required-match set below only because it is functionally
// determined by BondCategory+Directed, not an independent field —
// see Equal).
type Bond struct {
	String *WorkspaceString

	FromObject, ToObject             *Object
	BondCategory, BondFacet          *slipnet.Slipnode
	FromDescriptor, ToDescriptor     *slipnet.Slipnode
	DirectionCategory                *slipnet.Slipnode // nil if undirected

	ProposalLevel  ProposalLevel
	TotalStrength  int
}

// Equal reports whether two bonds share the 6-tuple identity spec.md
// §3 defines bond equality by.
func (b *Bond) Equal(other *Bond) bool {
	if other == nil {
		return false
	}
	return b.FromObject == other.FromObject &&
		b.ToObject == other.ToObject &&
		b.BondCategory == other.BondCategory &&
		b.BondFacet == other.BondFacet &&
		b.FromDescriptor == other.FromDescriptor &&
		b.ToDescriptor == other.ToDescriptor
}

// FlippedVersion returns the bond with endpoints (and descriptors)
// swapped, its direction category inverted via opposite. Used when a
// group's member bonds need re-orienting to build, per group.py's
// get_bonds_to_be_flipped/flipped_version.
func (b *Bond) FlippedVersion(sn *slipnet.Slipnet) *Bond {
	var flippedDir *slipnet.Slipnode
	if b.DirectionCategory != nil {
		if opp, err := sn.Node(slipnet.NodeOpposite); err == nil {
			flippedDir = sn.GetRelatedNode(b.DirectionCategory, opp)
		}
	}
	return &Bond{
		String:            b.String,
		FromObject:        b.ToObject,
		ToObject:          b.FromObject,
		BondCategory:      flipCategory(sn, b.BondCategory),
		BondFacet:         b.BondFacet,
		FromDescriptor:    b.ToDescriptor,
		ToDescriptor:      b.FromDescriptor,
		DirectionCategory: flippedDir,
	}
}

func flipCategory(sn *slipnet.Slipnet, category *slipnet.Slipnode) *slipnet.Slipnode {
	opp, err := sn.Node(slipnet.NodeOpposite)
	if err != nil {
		return category
	}
	if flipped := sn.GetRelatedNode(category, opp); flipped != nil {
		return flipped
	}
	return category
}

// Mapping is a single concept mapping within a Correspondence: which
// description types and descriptors correspond between the initial-
// side and target-side object, plus the relation (identity/opposite/
// etc.) and label that connects them — spec.md §3.
type Mapping struct {
	DescriptionType1, DescriptionType2 *slipnet.Slipnode
	Descriptor1, Descriptor2           *slipnet.Slipnode
	Relation                           *slipnet.Slipnode
	Label                              *slipnet.Slipnode
}

// IsIncompatible reports whether two mappings describe the same
// description type with differing descriptors (a genuine conflict),
// e.g. one mapping says "leftmost -> rightmost" and another says
// "leftmost -> leftmost" for the same position facet.
func (m *Mapping) IsIncompatible(other *Mapping) bool {
	if other == nil {
		return false
	}
	return m.DescriptionType1 == other.DescriptionType1 &&
		(m.Descriptor1 != other.Descriptor1 || m.Descriptor2 != other.Descriptor2)
}

// Correspondence connects one object in the initial string to one
// object in the target string, per spec.md §3.
type Correspondence struct {
	ObjectFromInitial, ObjectFromTarget *Object
	ConceptMappings                    []*Mapping
	AccessoryMappings                  bool
	ProposalLevel                      ProposalLevel
	TotalStrength                      int
}

// OtherObject returns whichever endpoint isn't obj.
func (c *Correspondence) OtherObject(obj *Object) *Object {
	if c.ObjectFromInitial == obj {
		return c.ObjectFromTarget
	}
	return c.ObjectFromInitial
}

// Rule is the single symbolic description of the initial->modified
// transformation, per spec.md §3: a 5-slot structure, some slots
// possibly empty.
type Rule struct {
	ObjectCategory1        *slipnet.Slipnode
	Descriptor1Facet        *slipnet.Slipnode
	Descriptor1             *slipnet.Slipnode
	ObjectCategory2         *slipnet.Slipnode
	ReplacedDescriptionFacet *slipnet.Slipnode
	Relation                *slipnet.Slipnode
}

// IsEmpty reports whether the rule carries no information at all — an
// empty rule cannot be translated into an answer (spec.md §3: "a
// non-empty rule is required to emit an answer").
func (r *Rule) IsEmpty() bool {
	return r == nil || (r.ObjectCategory1 == nil && r.Descriptor1 == nil && r.Relation == nil)
}
