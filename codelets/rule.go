package codelets

import (
	"math/rand"

	"github.com/katalvlaran/copycat/coderack"
	"github.com/katalvlaran/copycat/slipnet"
	"github.com/katalvlaran/copycat/workspace"
)

// NewRuleScout triggers the direct Initial/Modified diff that seeds
// the Workspace's Rule, if one hasn't been built yet. Unlike the
// bond/group/correspondence families, rule extraction has no
// meaningful competing candidates to scout among — spec.md §3 and
// §4.3.6 specify it as a direct diff — so this codelet's only job is
// to decide *when* that diff runs relative to the rest of the
// codelet-driven search, not *how*.
//
// Building the Rule early is fine and intended: it only records the
// transformation, it doesn't answer anything yet. Whether the run is
// allowed to translate that rule into an answer this step is a
// separate decision the main loop makes via Workspace.ReadyToAnswer,
// so that bond/group/correspondence codelets get repeated chances to
// run and contribute slippages before a translated rule is accepted.
//
// Grounded on original_source's Workspace.build_rule, invoked once a
// run's coherence has risen enough that a rule is worth extracting
// (mirrored here by a modest fixed urgency rather than the bond/group
// family's temperature-adjusted probability, since there is no
// candidate strength to test).
func NewRuleScout(sn *slipnet.Slipnet, w *workspace.Workspace, rng *rand.Rand) *coderack.Codelet {
	return &coderack.Codelet{
		Kind: "rule-scout", Category: "rule", Urgency: 20,
		Run: func() error {
			if w.Rule != nil {
				return nil
			}
			return w.BuildRule()
		},
	}
}
