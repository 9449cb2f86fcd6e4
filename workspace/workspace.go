package workspace

import (
	"math/rand"

	"github.com/katalvlaran/copycat/randutil"
	"github.com/katalvlaran/copycat/slipnet"
	"github.com/katalvlaran/copycat/temperature"
)

// Activation is the fixed activation-buffer increment every successful
// codelet contributes to the Slipnet nodes it touched, per spec.md
// §4.2 ("each codelet that runs, succeeding or fizzling past its
// structural checks, nudges the concepts it used").
const Activation = 100

// AnswerTemperatureThreshold caps how hot the workspace may still be
// when a just-built Rule is accepted as the run's answer. A Rule built
// while still clamped (or while the workspace is this disordered) is
// cheap position-only structure thrown together before any
// correspondence has had a chance to build and hand the rule a
// slippage to translate through — see ReadyToAnswer.
const AnswerTemperatureThreshold = 60.0

// Workspace is the top-level percept graph for one Copycat run: the
// Initial/Modified/Target strings, the Slipnet they describe objects
// against, the running Temperature, the accumulated concept slippages,
// and the Rule once built — everything a codelet needs besides the
// Coderack itself (spec.md §3).
type Workspace struct {
	Slipnet *slipnet.Slipnet

	Initial  *WorkspaceString
	Modified *WorkspaceString
	Target   *WorkspaceString

	Answer *WorkspaceString

	Temperature *temperature.Temperature
	Rule        *Rule
	Slippages   []slipnet.Slippage
}

// New builds a Workspace from the three raw analogy strings, running
// NewWorkspaceString over each and a Temperature clamped for
// clampTime steps using the named formula.
func New(sn *slipnet.Slipnet, initial, modified, target string, clampTime int, formula string) (*Workspace, error) {
	i, err := NewWorkspaceString(initial, sn)
	if err != nil {
		return nil, err
	}
	m, err := NewWorkspaceString(modified, sn)
	if err != nil {
		return nil, err
	}
	t, err := NewWorkspaceString(target, sn)
	if err != nil {
		return nil, err
	}
	temp, err := temperature.New(clampTime, formula)
	if err != nil {
		return nil, err
	}
	return &Workspace{Slipnet: sn, Initial: i, Modified: m, Target: t, Temperature: temp}, nil
}

// Strings returns the initial and target strings in that order — the
// only two strings codelets search over (spec.md §3).
func (w *Workspace) Strings() [2]*WorkspaceString {
	return [2]*WorkspaceString{w.Initial, w.Target}
}

// Objects returns every top-level object (ungrouped letter or built
// group) across both searchable strings.
func (w *Workspace) Objects() []*Object {
	return append(w.Initial.Objects(), w.Target.Objects()...)
}

// TemperatureAdjustedProbability bends p via the Workspace's active
// Temperature — the single entry point every strength-tester codelet
// goes through before flipping a coin (spec.md §4.3/§4.4).
func (w *Workspace) TemperatureAdjustedProbability(p float64) float64 {
	return w.Temperature.AdjustProbability(p)
}

// ChooseObject picks a top-level object from Initial or Target
// (string chosen uniformly first, matching the original's per-string
// salience draws) weighted by the named salience field.
//
// Grounded on original_source's Workspace.choose_object /
// WorkspaceString.get_random_object.
func (w *Workspace) ChooseObject(rng *rand.Rand, salience func(*Object) float64) *Object {
	strings := w.Strings()
	side := strings[rng.Intn(2)]
	objs := side.Objects()
	if len(objs) == 0 {
		return nil
	}
	weights := make([]float64, len(objs))
	for i, o := range objs {
		weights[i] = salience(o)
	}
	idx := randutil.WeightedSelect(rng, weights)
	if idx < 0 {
		return nil
	}
	return objs[idx]
}

// IntraStringSalience is the default salience selector codelots use
// for bond-scout object choice: RawSalience + IntraSalience.
func IntraStringSalience(o *Object) float64 {
	return o.RawSalience + o.IntraSalience
}

// InterStringSalience is the selector correspondence-scout codelets
// use to favor objects more relevant across strings.
func InterStringSalience(o *Object) float64 {
	return o.RawSalience + o.InterSalience
}

// CommonGroups returns the built groups containing both a and b —
// the groups a bond between them would have to break, per spec.md
// §4.3's "max(spans)" fight weight rule (Open Question resolution:
// DESIGN.md).
func (w *Workspace) CommonGroups(a, b *Object) []*Object {
	ancestorsOf := func(o *Object) []*Object {
		var chain []*Object
		for p := o.Parent; p != nil; p = p.Parent {
			chain = append(chain, p)
		}
		return chain
	}
	bAncestors := ancestorsOf(b)
	var out []*Object
	for _, pa := range ancestorsOf(a) {
		for _, pb := range bAncestors {
			if pa == pb {
				out = append(out, pa)
				break
			}
		}
	}
	return out
}

// ProposeBond proposes a new Bond at LevelNew between from/to and
// records it on the owning string, returning the proposal.
func (w *Workspace) ProposeBond(from, to *Object, category, facet, fromDesc, toDesc *slipnet.Slipnode) *Bond {
	b := NewBond(w.Slipnet, from.String, from, to, category, facet, fromDesc, toDesc)
	b.ProposalLevel = LevelNew
	from.String.AddProposedBond(b)
	return b
}

// BuildBond promotes a proposed bond to built, wiring endpoint
// back-references and clearing it from the proposed set.
func (w *Workspace) BuildBond(b *Bond) {
	b.ProposalLevel = LevelBuilt
	b.String.RemoveProposedBond(b)
	b.String.AddBuiltBond(b)
}

// BreakBond demotes a built bond back out of the string entirely.
func (w *Workspace) BreakBond(b *Bond) {
	b.String.RemoveBuiltBond(b)
}

// BuildGroup promotes a proposed group to built, parenting its members.
func (w *Workspace) BuildGroup(g *Object) {
	g.ProposalLevel = LevelBuilt
	g.String.RemoveProposedGroup(g)
	g.String.AddBuiltGroup(g)
}

// BreakGroup removes a built group, un-parenting its members.
func (w *Workspace) BreakGroup(g *Object) {
	g.String.RemoveBuiltGroup(g)
}

// BuildCorrespondence promotes a proposed correspondence to built,
// wiring both endpoint objects' Correspondence back-reference and
// absorbing its non-identity mappings into the run's slippage list.
func (w *Workspace) BuildCorrespondence(c *Correspondence) {
	c.ProposalLevel = LevelBuilt
	c.ObjectFromInitial.Correspondence = c
	c.ObjectFromTarget.Correspondence = c
	w.Slippages = append(w.Slippages, c.SlippagesFrom(w.Slipnet)...)
}

// BreakCorrespondence removes a built correspondence's back-references.
func (w *Workspace) BreakCorrespondence(c *Correspondence) {
	if c.ObjectFromInitial.Correspondence == c {
		c.ObjectFromInitial.Correspondence = nil
	}
	if c.ObjectFromTarget.Correspondence == c {
		c.ObjectFromTarget.Correspondence = nil
	}
}

// BuildRule computes and stores the Workspace's Rule from Initial vs.
// Modified, per spec.md §3.
func (w *Workspace) BuildRule() error {
	r, err := BuildRule(w.Slipnet, w.Initial, w.Modified)
	if err != nil {
		return err
	}
	w.Rule = r
	return nil
}

// BuildAnswer translates the built Rule through the run's accumulated
// slippages and applies it to the Target string, storing the result
// string as Answer and returning its raw text.
func (w *Workspace) BuildAnswer() (string, error) {
	if w.Rule == nil || w.Rule.IsEmpty() {
		return "", ErrNoRuleBuilt
	}
	translated := TranslateRule(w.Rule, w.Slippages)
	raw, err := ApplyRuleToTarget(w.Slipnet, translated, w.Target)
	if err != nil {
		return "", err
	}
	ans, err := NewWorkspaceString(raw, w.Slipnet)
	if err != nil {
		return "", err
	}
	w.Answer = ans
	return raw, nil
}

// TotalUnhappiness averages the two searchable strings' intra-string
// unhappiness — spec.md §4.4's feed into the next Temperature.Update
// call. Cross-string (correspondence) unhappiness does not enter it.
func (w *Workspace) TotalUnhappiness() float64 {
	return (w.Initial.IntraStringUnhappiness + w.Target.IntraStringUnhappiness) / 2
}

// ReadyToAnswer reports whether the run may stop on its current Rule:
// the clamp period must have ended and the temperature must have
// cooled to AnswerTemperatureThreshold or below. Early on, a rule
// built from the bare initial/modified diff is answered against the
// target before any correspondence has built and contributed its
// slippages, so the run halts on position-only answers and the
// correspondence/slippage transfer mechanism never gets to run —
// gating on temperature gives bond/group/correspondence codelets
// repeated chances to fire and cool the workspace first.
func (w *Workspace) ReadyToAnswer() bool {
	return !w.Temperature.Clamped() && w.Temperature.Value() <= AnswerTemperatureThreshold
}
