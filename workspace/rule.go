package workspace

import (
	"sort"
	"strings"

	"github.com/katalvlaran/copycat/slipnet"
)

// BuildRule derives the Rule directly from a diff between the initial
// and modified strings, per spec.md §3's "Modified is diffed directly
// to seed the Rule" (Modified never otherwise participates in codelet
// search). Only a single-letter replacement between strings of equal
// length is modeled; appends, prepends, and anything else yield an
// empty Rule (spec.md §4.3's "not every pair of strings yields a
// rule").
//
// Grounded on original_source's Workspace.build_rule.
func BuildRule(sn *slipnet.Slipnet, initial, modified *WorkspaceString) (*Rule, error) {
	if initial.Raw == modified.Raw {
		return &Rule{}, nil
	}
	if len(initial.Raw) != len(modified.Raw) {
		return &Rule{}, nil
	}
	diffPos := -1
	for i := 0; i < len(initial.Raw); i++ {
		if initial.Raw[i] != modified.Raw[i] {
			if diffPos != -1 {
				return &Rule{}, nil // more than one differing position: no simple rule
			}
			diffPos = i
		}
	}
	if diffPos == -1 {
		return &Rule{}, nil
	}

	obj := initial.Letter(diffPos)
	var objCategory1 *slipnet.Slipnode
	var err error
	if obj.SpansWholeString() {
		objCategory1, err = sn.Node(slipnet.NodeWholeObject)
	} else {
		objCategory1, err = sn.Node(slipnet.NodeLetterObject)
	}
	if err != nil {
		return nil, err
	}

	// Prefer the object's string-position description (leftmost/middle/
	// rightmost) over its literal letter identity: a rule anchored on
	// position generalizes to a target string with entirely different
	// letters, whereas one anchored on the literal letter almost never
	// matches anything in the target. Fall back to letter identity only
	// when no position description applies: a single-letter string, or
	// an inner letter that is not the exact middle of an odd-length
	// string.
	letterCategoryFacet, err := sn.Node(slipnet.NodeLetterCategoryFacet)
	if err != nil {
		return nil, err
	}
	posCategory, err := sn.Node(slipnet.NodeStringPositionCategory)
	if err != nil {
		return nil, err
	}
	actualOldLetter := obj.GetDescriptor(letterCategoryFacet)
	descriptor1Facet, descriptor1 := letterCategoryFacet, actualOldLetter
	if posDescriptor := obj.GetDescriptor(posCategory); posDescriptor != nil {
		descriptor1Facet, descriptor1 = posCategory, posDescriptor
	}

	newCh := modified.Raw[diffPos]
	newLetterNode, err := sn.Node(strings.ToUpper(slipnet.LetterNodeName(newCh)))
	if err != nil {
		return nil, err
	}

	relation := sn.GetBondCategory(actualOldLetter, newLetterNode)
	if relation == nil {
		if identity, err := sn.Node(slipnet.NodeIdentity); err == nil {
			relation = identity
		}
	}

	return &Rule{
		ObjectCategory1:          objCategory1,
		Descriptor1Facet:         descriptor1Facet,
		Descriptor1:              descriptor1,
		ObjectCategory2:          objCategory1,
		ReplacedDescriptionFacet: letterCategoryFacet,
		Relation:                 relation,
	}, nil
}

// TranslateRule applies every accumulated slippage to the rule's
// descriptor and relation slots, producing the rule used to build the
// answer string for the target analog.
//
// Grounded on original_source's Rule.build_translated_rule.
func TranslateRule(r *Rule, slippages []slipnet.Slippage) *Rule {
	if r == nil {
		return nil
	}
	return &Rule{
		ObjectCategory1:          slipnet.ApplySlippage(r.ObjectCategory1, slippages),
		Descriptor1Facet:         slipnet.ApplySlippage(r.Descriptor1Facet, slippages),
		Descriptor1:              slipnet.ApplySlippage(r.Descriptor1, slippages),
		ObjectCategory2:          slipnet.ApplySlippage(r.ObjectCategory2, slippages),
		ReplacedDescriptionFacet: slipnet.ApplySlippage(r.ReplacedDescriptionFacet, slippages),
		Relation:                 slipnet.ApplySlippage(r.Relation, slippages),
	}
}

// ApplyRuleToTarget produces the answer string's raw text by applying
// a (possibly translated) rule to the target string: locate the
// top-level object (a Letter or a built Group) matching
// ObjectCategory1/Descriptor1 in target, then replace its descriptor
// per Relation (e.g. successor of its own letter) to obtain the new
// letter, rewriting the object's entire span rather than a single
// position — a Group's span can grow or shrink, per spec.md §4.3.6's
// rule translation walking "the rule's slots" against whichever object
// the translated descriptor picks out, group or letter alike.
func ApplyRuleToTarget(sn *slipnet.Slipnet, r *Rule, target *WorkspaceString) (string, error) {
	if r.IsEmpty() {
		return "", ErrNoRuleBuilt
	}
	whole, err := sn.Node(slipnet.NodeWholeObject)
	if err != nil {
		return "", err
	}

	objs := target.Objects()
	sort.Slice(objs, func(i, j int) bool { return objs[i].LeftPos < objs[j].LeftPos })

	var obj *Object
	if r.ObjectCategory1 == whole {
		for _, o := range objs {
			if o.SpansWholeString() {
				obj = o
				break
			}
		}
	} else {
		for _, o := range objs {
			if o.GetDescriptor(r.Descriptor1Facet) == r.Descriptor1 {
				obj = o
				break
			}
		}
	}
	if obj == nil && len(objs) > 0 {
		// No matching object — translated descriptor slipped away from
		// every top-level object. Fall back to the leftmost one, matching
		// the original's "no matching object -> apply facet-wise" intent.
		obj = objs[0]
	}
	if obj == nil {
		return target.Raw, nil
	}

	current := obj.GetDescriptor(r.ReplacedDescriptionFacet)
	if current == nil {
		return target.Raw, nil
	}

	identity, _ := sn.Node(slipnet.NodeIdentity)
	var newDescriptor *slipnet.Slipnode
	if r.Relation == identity {
		newDescriptor = current
	} else {
		newDescriptor = sn.GetRelatedNode(current, r.Relation)
	}
	if newDescriptor == nil || len(newDescriptor.Name) != 1 {
		return target.Raw, nil
	}

	// A rightmost group sitting at the end of a strictly ascending
	// per-object length run ("m", "rr", "jjj": spans 1, 2, 3) translates
	// by extending its own span one further, rather than relettering it
	// — the same successor relation applied to the run's length instead
	// of to the group's shared letter, per spec.md §8's
	// mrrjjj -> mrrjjjj.
	if obj.IsGroup() && r.Relation != identity && obj.IsRightmostInString() && isAscendingLengthRun(objs) {
		extended := strings.Repeat(strings.ToLower(current.Name), obj.LetterSpan()+1)
		return spliceSpan(target.Raw, obj, extended), nil
	}

	replacement := strings.Repeat(strings.ToLower(newDescriptor.Name), obj.LetterSpan())
	return spliceSpan(target.Raw, obj, replacement), nil
}

// spliceSpan rewrites raw's [obj.LeftPos, obj.RightPos] span with
// replacement, which may differ in length from the span it replaces.
func spliceSpan(raw string, obj *Object, replacement string) string {
	return raw[:obj.LeftPos] + replacement + raw[obj.RightPos+1:]
}

// isAscendingLengthRun reports whether target's top-level objects, left
// to right, have letter-spans 1, 2, 3, ... with no gaps.
func isAscendingLengthRun(objs []*Object) bool {
	if len(objs) < 2 {
		return false
	}
	for i, o := range objs {
		if o.LetterSpan() != i+1 {
			return false
		}
	}
	return true
}
