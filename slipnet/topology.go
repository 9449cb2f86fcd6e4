package slipnet

// Build constructs the canonical, fixed Copycat Slipnet: platonic
// nodes for letters A-Z, numbers 1-5, facet/bond/group/direction/object
// categories, relations, and the bond<->group bridge, with their fixed
// intrinsic link lengths and codelet-template attachments — a one-time
// build per spec.md §4.1 ("Construction is a one-time fixed build").
//
// Depth and link-length values below are a single, internally
// consistent assignment (more abstract concepts get higher depth and
// shorter intrinsic links to their instances) rather than a
// transcription of a specific numeric table, since no coderack/slipnet
// topology source file was retrieved in original_source — see
// DESIGN.md's Open Question resolution for the Coderack bucket
// mechanism for the same caveat applied here to raw numbers; the
// *shape* of the topology (five link kinds, the listed node roster)
// is spec.md §4.1 verbatim.
func Build() (*Slipnet, error) {
	b := &builder{s: New()}

	b.facetCategories()
	b.relations()
	b.letters()
	b.numbers()
	b.bondCategories()
	b.groupCategories()
	b.directionCategories()
	b.objectCategories()
	b.letterSuccession()

	if b.err != nil {
		return nil, b.err
	}
	return b.s, nil
}

// builder accumulates the first error encountered so topology.go's
// many small construction steps can be written without per-line error
// checks; mirrors the teacher's "resolve config once, then apply
// constructors in order, wrap first error" shape from builder/api.go's
// BuildGraph, adapted from graph-construction to node/link construction.
type builder struct {
	s   *Slipnet
	err error
}

func (b *builder) node(n *Slipnode) *Slipnode {
	if b.err != nil {
		return n
	}
	// 0.4 * IntrinsicLinkLength, rounded half up.
	n.ShrunkLinkLength = (4*n.IntrinsicLinkLength + 5) / 10
	b.err = b.s.AddNode(n)
	return n
}

func (b *builder) link(kind LinkKind, from, to, label *Slipnode, length int) {
	if b.err != nil {
		return
	}
	b.err = b.s.AddLink(kind, from, to, label, length)
}

func (b *builder) category(instance, category *Slipnode, length int) {
	b.link(CategoryLink, instance, category, nil, length)
	b.link(InstanceLink, category, instance, nil, length)
}

func (b *builder) facetCategories() {
	b.node(&Slipnode{Name: NodeLetterCategoryFacet, ConceptualDepth: 30, IntrinsicLinkLength: 97})
	b.node(&Slipnode{Name: NodeLength, ConceptualDepth: 60, IntrinsicLinkLength: 60})
	b.node(&Slipnode{Name: NodeStringPositionCategory, ConceptualDepth: 70, IntrinsicLinkLength: 60})
	b.node(&Slipnode{Name: NodeAlphabeticPositionCategory, ConceptualDepth: 80, IntrinsicLinkLength: 75})
}

// letters builds nodes A..Z as instances of NodeLetterCategoryFacet.
func (b *builder) letters() {
	letterCategory := b.s.MustNode(NodeLetterCategoryFacet)
	for c := byte('A'); c <= 'Z'; c++ {
		n := b.node(&Slipnode{
			Name:                LetterNodeName(c),
			ConceptualDepth:     10,
			IntrinsicLinkLength: 97,
		})
		b.category(n, letterCategory, 97)
	}
}

// numbers builds nodes "1".."5" as instances of NodeLength, used as
// length descriptors for groups (spec.md §3: Group carries an optional
// length descriptor via get_plato_number-equivalent lookup).
func (b *builder) numbers() {
	lengthCategory := b.s.MustNode(NodeLength)
	for i := 1; i <= 5; i++ {
		n := b.node(&Slipnode{
			Name:                NumberNodeName(i),
			ConceptualDepth:     30,
			IntrinsicLinkLength: 60,
		})
		b.category(n, lengthCategory, 60)
	}
}

func (b *builder) bondCategories() {
	bc := b.node(&Slipnode{Name: NodeBondCategory, ConceptualDepth: 50, IntrinsicLinkLength: -1})

	predecessor := b.node(&Slipnode{Name: NodePredecessor, ConceptualDepth: 50, Directed: true, IntrinsicLinkLength: 50})
	successor := b.node(&Slipnode{Name: NodeSuccessor, ConceptualDepth: 50, Directed: true, IntrinsicLinkLength: 50})
	sameness := b.node(&Slipnode{Name: NodeSameness, ConceptualDepth: 80, IntrinsicLinkLength: 8})

	b.category(predecessor, bc, 40)
	b.category(successor, bc, 40)
	b.category(sameness, bc, 40)

	opposite := b.s.MustNode(NodeOpposite)
	b.link(SlipLink, predecessor, successor, opposite, 90)
	b.link(SlipLink, successor, predecessor, opposite, 90)

	// Codelet-template attachments: an active bond category contributes
	// top-down bond-category scouts, per spec.md §4.2's "each active
	// node that has attached codelet templates contributes top-down
	// posts proportional to its activation."
	predecessor.Codelets = []CodeletTemplate{{Kind: "bond-top-down-category-scout", BaseUrgency: 40}}
	successor.Codelets = []CodeletTemplate{{Kind: "bond-top-down-category-scout", BaseUrgency: 40}}
	sameness.Codelets = []CodeletTemplate{{Kind: "bond-top-down-category-scout", BaseUrgency: 40}}
}

func (b *builder) groupCategories() {
	gc := b.node(&Slipnode{Name: NodeGroupCategory, ConceptualDepth: 50, IntrinsicLinkLength: -1})

	predGroup := b.node(&Slipnode{Name: NodePredecessorGroup, ConceptualDepth: 50, IntrinsicLinkLength: 50})
	succGroup := b.node(&Slipnode{Name: NodeSuccessorGroup, ConceptualDepth: 50, IntrinsicLinkLength: 50})
	sameGroup := b.node(&Slipnode{Name: NodeSamenessGroup, ConceptualDepth: 80, IntrinsicLinkLength: 8})

	b.category(predGroup, gc, 40)
	b.category(succGroup, gc, 40)
	b.category(sameGroup, gc, 40)

	// Bond<->group bridge: GetRelatedNode(groupCategory, bondCategoryNode)
	// returns the matching bond category, per group.go's
	// `self.slipnet.get_related_node(group_category, plato_bond_category)`.
	bcLabel := b.s.MustNode(NodeBondCategory)
	predecessor := b.s.MustNode(NodePredecessor)
	successor := b.s.MustNode(NodeSuccessor)
	sameness := b.s.MustNode(NodeSameness)
	b.link(NonSlipLink, predGroup, predecessor, bcLabel, 30)
	b.link(NonSlipLink, succGroup, successor, bcLabel, 30)
	b.link(NonSlipLink, sameGroup, sameness, bcLabel, 30)

	opposite := b.s.MustNode(NodeOpposite)
	b.link(SlipLink, predGroup, succGroup, opposite, 90)
	b.link(SlipLink, succGroup, predGroup, opposite, 90)
}

func (b *builder) directionCategories() {
	dc := b.node(&Slipnode{Name: NodeDirectionCategory, ConceptualDepth: 70, IntrinsicLinkLength: -1})
	left := b.node(&Slipnode{Name: NodeLeft, ConceptualDepth: 40, IntrinsicLinkLength: 70})
	right := b.node(&Slipnode{Name: NodeRight, ConceptualDepth: 40, IntrinsicLinkLength: 70})
	b.category(left, dc, 40)
	b.category(right, dc, 40)

	opposite := b.s.MustNode(NodeOpposite)
	b.link(SlipLink, left, right, opposite, 90)
	b.link(SlipLink, right, left, opposite, 90)

	left.Codelets = []CodeletTemplate{{Kind: "bond-top-down-direction-scout", BaseUrgency: 40}}
	right.Codelets = []CodeletTemplate{{Kind: "bond-top-down-direction-scout", BaseUrgency: 40}}
}

func (b *builder) objectCategories() {
	oc := b.node(&Slipnode{Name: NodeObjectCategory, ConceptualDepth: 90, IntrinsicLinkLength: -1})
	letter := b.node(&Slipnode{Name: NodeLetterObject, ConceptualDepth: 30, IntrinsicLinkLength: 97})
	group := b.node(&Slipnode{Name: NodeGroupObject, ConceptualDepth: 80, IntrinsicLinkLength: 60})
	whole := b.node(&Slipnode{Name: NodeWholeObject, ConceptualDepth: 70, IntrinsicLinkLength: 90})
	b.category(letter, oc, 40)
	b.category(group, oc, 40)
	b.category(whole, oc, 40)

	b.node(&Slipnode{Name: NodeBondFacet, ConceptualDepth: 90, IntrinsicLinkLength: -1})
}

func (b *builder) relations() {
	b.node(&Slipnode{Name: NodeIdentity, ConceptualDepth: 90, IntrinsicLinkLength: 0})
	b.node(&Slipnode{Name: NodeOpposite, ConceptualDepth: 90, IntrinsicLinkLength: 90})
	b.node(&Slipnode{Name: NodeFirst, ConceptualDepth: 60, IntrinsicLinkLength: 75})
	b.node(&Slipnode{Name: NodeLast, ConceptualDepth: 60, IntrinsicLinkLength: 75})

	spc := b.s.MustNode(NodeStringPositionCategory)
	leftmost := b.node(&Slipnode{Name: NodeLeftmost, ConceptualDepth: 40, IntrinsicLinkLength: 60})
	middle := b.node(&Slipnode{Name: NodeMiddle, ConceptualDepth: 40, IntrinsicLinkLength: 60})
	rightmost := b.node(&Slipnode{Name: NodeRightmost, ConceptualDepth: 40, IntrinsicLinkLength: 60})
	b.category(leftmost, spc, 40)
	b.category(middle, spc, 40)
	b.category(rightmost, spc, 40)

	b.node(&Slipnode{Name: NodeSame, ConceptualDepth: 60, IntrinsicLinkLength: 50})
	b.node(&Slipnode{Name: NodeDifferent, ConceptualDepth: 60, IntrinsicLinkLength: 50})

	opposite := b.s.MustNode(NodeOpposite)
	b.link(SlipLink, leftmost, rightmost, opposite, 90)
	b.link(SlipLink, rightmost, leftmost, opposite, 90)
}

// letterSuccession wires A-Z with successor/predecessor lateral links
// so GetBondCategory(from,to) resolves directly (sameness needs no link:
// GetBondCategory answers it for from == to): each
// letter links to its alphabetic neighbor, labeled by the matching
// bond category node. Per spec.md §8's boundary case ("end-of-alphabet
// wrap attempts"), Z has no successor link and A has no predecessor
// link — there is deliberately no wraparound.
func (b *builder) letterSuccession() {
	if b.err != nil {
		return
	}
	predecessor := b.s.MustNode(NodePredecessor)
	successor := b.s.MustNode(NodeSuccessor)
	for c := byte('A'); c < 'Z'; c++ {
		from := b.s.MustNode(LetterNodeName(c))
		to := b.s.MustNode(LetterNodeName(c + 1))
		b.link(SlipLink, from, to, successor, successor.IntrinsicLinkLength)
		b.link(SlipLink, to, from, predecessor, predecessor.IntrinsicLinkLength)
	}
	for i := 1; i < 5; i++ {
		from := b.s.MustNode(NumberNodeName(i))
		to := b.s.MustNode(NumberNodeName(i + 1))
		b.link(SlipLink, from, to, successor, successor.IntrinsicLinkLength)
		b.link(SlipLink, to, from, predecessor, predecessor.IntrinsicLinkLength)
	}
}
