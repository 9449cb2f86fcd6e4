package workspace

import (
	"strings"

	"github.com/katalvlaran/copycat/slipnet"
)

// bondKey identifies a bond by its ordered endpoint positions, per
// spec.md §3: "Holds ... proposed and built Bonds (keyed by the
// ordered pair of object positions)."
type bondKey struct{ from, to int }

// WorkspaceString is one ordered sequence of letter positions — the
// Initial, Modified, or Target string of a run — holding its Letters
// plus the proposed/built Bonds and Groups that live in it (spec.md
// §3).
type WorkspaceString struct {
	Raw     string
	Letters []*Object

	proposedBonds map[bondKey]*Bond
	builtBonds    map[bondKey]*Bond

	proposedGroups []*Object
	builtGroups    []*Object

	IntraStringUnhappiness float64
}

// NewWorkspaceString builds the Letter objects for raw (one per byte;
// letters of either case, looked up case-insensitively), each described
// by its own Slipnet letter-category node, plus — since a letter's
// position in its own string is a fixed fact, not something a codelet
// needs to discover — a string-position-category description
// (leftmost/middle/rightmost) wherever one applies. Grounded on
// original_source's Letter.__init__, which emits the same description
// unconditionally at construction time rather than waiting for a
// description codelet.
func NewWorkspaceString(raw string, sn *slipnet.Slipnet) (*WorkspaceString, error) {
	ws := &WorkspaceString{
		Raw:           raw,
		proposedBonds: make(map[bondKey]*Bond),
		builtBonds:    make(map[bondKey]*Bond),
	}
	letterCategoryFacet, err := sn.Node(slipnet.NodeLetterCategoryFacet)
	if err != nil {
		return nil, err
	}
	posCategory, err := sn.Node(slipnet.NodeStringPositionCategory)
	if err != nil {
		return nil, err
	}
	leftmost, err := sn.Node(slipnet.NodeLeftmost)
	if err != nil {
		return nil, err
	}
	middle, err := sn.Node(slipnet.NodeMiddle)
	if err != nil {
		return nil, err
	}
	rightmost, err := sn.Node(slipnet.NodeRightmost)
	if err != nil {
		return nil, err
	}

	n := len(raw)
	for i := 0; i < n; i++ {
		// Letter nodes are canonically named by their uppercase character
		// (slipnet/constants.go); problem strings are conventionally
		// lowercase, so the lookup normalizes case while Raw keeps the
		// string exactly as given.
		node, err := sn.Node(strings.ToUpper(string(raw[i])))
		if err != nil {
			return nil, err
		}
		letter := &Object{
			Kind:           KindLetter,
			String:         ws,
			LeftPos:        i,
			RightPos:       i,
			LetterCategory: node,
		}
		letter.AddDescription(letterCategoryFacet, node)
		if n > 1 {
			switch {
			case i == 0:
				letter.AddDescription(posCategory, leftmost)
			case i == n-1:
				letter.AddDescription(posCategory, rightmost)
			case n%2 == 1 && i == n/2:
				letter.AddDescription(posCategory, middle)
			}
		}
		ws.Letters = append(ws.Letters, letter)
	}
	return ws, nil
}

// Length returns the number of letter positions in the string.
func (ws *WorkspaceString) Length() int { return len(ws.Letters) }

// Letter returns the letter object at position i, or nil if i is out
// of range.
func (ws *WorkspaceString) Letter(i int) *Object {
	if i < 0 || i >= len(ws.Letters) {
		return nil
	}
	return ws.Letters[i]
}

// Objects returns every currently-reachable top-level object: each
// letter not absorbed into a built group, plus every built group.
func (ws *WorkspaceString) Objects() []*Object {
	out := make([]*Object, 0, len(ws.Letters)+len(ws.builtGroups))
	for _, l := range ws.Letters {
		if l.Parent == nil {
			out = append(out, l)
		}
	}
	out = append(out, ws.builtGroups...)
	return out
}

// ObjectAt returns the top-level object (a group if pos's letter has
// been absorbed into one, else the bare letter) occupying position
// pos, or nil if pos is out of range.
func (ws *WorkspaceString) ObjectAt(pos int) *Object {
	letter := ws.Letter(pos)
	if letter == nil {
		return nil
	}
	if letter.Parent != nil {
		top := letter.Parent
		for top.Parent != nil {
			top = top.Parent
		}
		return top
	}
	return letter
}

// UpdateUnhappiness recomputes IntraStringUnhappiness from the current
// top-level objects: an object's local happiness is the strength of
// the strongest built structure touching it (its enclosing group, or
// the stronger of its left/right bond), 100 for a single-object string
// (nothing left to build), and 0 for an object with no structure at
// all. Unhappiness is 100 minus the average happiness across objects.
//
// Grounded on spec.md §4.4's "updated periodically from workspace
// weighted unhappiness"; original_source's per-object
// intra_string_happiness is not retrieved as a standalone file, so the
// "strongest touching structure" rule is this repo's concretization of
// the same idea: objects absorbed into strong structures are content,
// bare unbonded letters are not.
func (ws *WorkspaceString) UpdateUnhappiness() {
	objs := ws.Objects()
	if len(objs) == 0 {
		ws.IntraStringUnhappiness = 0
		return
	}
	if len(objs) == 1 {
		ws.IntraStringUnhappiness = 0
		return
	}
	total := 0.0
	for _, o := range objs {
		best := 0
		if o.Kind == KindGroup {
			if o.TotalStrength > best {
				best = o.TotalStrength
			}
		}
		if o.LeftBond != nil && o.LeftBond.TotalStrength > best {
			best = o.LeftBond.TotalStrength
		}
		if o.RightBond != nil && o.RightBond.TotalStrength > best {
			best = o.RightBond.TotalStrength
		}
		total += float64(best)
	}
	avgHappiness := total / float64(len(objs))
	ws.IntraStringUnhappiness = 100 - avgHappiness
}

// Groups returns every built group in this string.
func (ws *WorkspaceString) Groups() []*Object {
	out := make([]*Object, len(ws.builtGroups))
	copy(out, ws.builtGroups)
	return out
}

func key(from, to *Object) bondKey { return bondKey{from.LeftPos, to.LeftPos} }

// AddProposedBond records a newly proposed bond; it leaves the bond's
// ProposalLevel as the caller set it (LevelNew, from ProposeBond).
func (ws *WorkspaceString) AddProposedBond(b *Bond) {
	ws.proposedBonds[key(b.FromObject, b.ToObject)] = b
}

// RemoveProposedBond discards a proposed bond (strength test failed,
// or it has just been promoted/built).
func (ws *WorkspaceString) RemoveProposedBond(b *Bond) {
	delete(ws.proposedBonds, key(b.FromObject, b.ToObject))
}

// GetExistingBond returns the already-built bond equal to candidate,
// if any, per spec.md §4.3's bond duplicate-detection rule.
func (ws *WorkspaceString) GetExistingBond(candidate *Bond) *Bond {
	for _, k := range []bondKey{key(candidate.FromObject, candidate.ToObject), key(candidate.ToObject, candidate.FromObject)} {
		if existing, ok := ws.builtBonds[k]; ok && existing.Equal(candidate) {
			return existing
		}
	}
	return nil
}

// BuiltBond returns the built bond between from and to, or nil.
func (ws *WorkspaceString) BuiltBond(from, to *Object) *Bond {
	b, ok := ws.builtBonds[key(from, to)]
	if !ok {
		return nil
	}
	return b
}

// AddBuiltBond installs b as built, wiring the endpoint objects'
// LeftBond/RightBond back-references.
func (ws *WorkspaceString) AddBuiltBond(b *Bond) {
	ws.builtBonds[key(b.FromObject, b.ToObject)] = b
	b.FromObject.RightBond = b
	b.ToObject.LeftBond = b
}

// RemoveBuiltBond undoes AddBuiltBond.
func (ws *WorkspaceString) RemoveBuiltBond(b *Bond) {
	delete(ws.builtBonds, key(b.FromObject, b.ToObject))
	if b.FromObject.RightBond == b {
		b.FromObject.RightBond = nil
	}
	if b.ToObject.LeftBond == b {
		b.ToObject.LeftBond = nil
	}
}

// BuiltBonds returns every built bond in the string.
func (ws *WorkspaceString) BuiltBonds() []*Bond {
	out := make([]*Bond, 0, len(ws.builtBonds))
	for _, b := range ws.builtBonds {
		out = append(out, b)
	}
	return out
}

// AddProposedGroup / RemoveProposedGroup mirror the bond equivalents.
func (ws *WorkspaceString) AddProposedGroup(g *Object) {
	ws.proposedGroups = append(ws.proposedGroups, g)
}

func (ws *WorkspaceString) RemoveProposedGroup(g *Object) {
	for i, existing := range ws.proposedGroups {
		if existing == g {
			ws.proposedGroups = append(ws.proposedGroups[:i], ws.proposedGroups[i+1:]...)
			return
		}
	}
}

// AddBuiltGroup installs g as built, parenting its member objects.
func (ws *WorkspaceString) AddBuiltGroup(g *Object) {
	ws.builtGroups = append(ws.builtGroups, g)
	for _, member := range g.Objects {
		member.Parent = g
	}
}

// RemoveBuiltGroup undoes AddBuiltGroup, un-parenting members.
func (ws *WorkspaceString) RemoveBuiltGroup(g *Object) {
	for i, existing := range ws.builtGroups {
		if existing == g {
			ws.builtGroups = append(ws.builtGroups[:i], ws.builtGroups[i+1:]...)
			break
		}
	}
	for _, member := range g.Objects {
		if member.Parent == g {
			member.Parent = nil
		}
	}
}

// EqualGroupExists reports whether a built group equal (by spec.md
// §3's (left,right,group_category,direction_category) identity) to
// candidate already exists.
func (ws *WorkspaceString) EqualGroupExists(candidate *Object) *Object {
	for _, g := range ws.builtGroups {
		if g.LeftPos == candidate.LeftPos && g.RightPos == candidate.RightPos &&
			g.GroupCategory == candidate.GroupCategory && g.DirectionCategory == candidate.DirectionCategory {
			return g
		}
	}
	return nil
}
