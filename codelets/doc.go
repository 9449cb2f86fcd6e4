// Package codelets implements 14 Copycat codelet kinds: small,
// probabilistic units of work that scout for, test, and build Bonds,
// Groups, and Correspondences, plus a description scout, a rule scout,
// a breaker, and two top-down bond scouts that bias search toward an
// active Slipnet concept (spec.md §4.2/§4.3). There are no top-down
// group, correspondence, or description scouts, and no separate
// description tester or builder.
//
// Every codelet follows the same three-stage shape original_source's
// bond.py establishes: a Scout proposes a candidate structure by
// salience-weighted sampling and fizzles (returns nil, no error) if
// any step finds nothing usable; a StrengthTester computes the
// candidate's strength, temperature-adjusts the probability of
// pursuing it, and on success posts a Builder with urgency
// proportional to strength; a Builder re-validates the candidate is
// still consistent with the current Workspace, fights competing
// structures via workspace.FightItOut, and on success breaks the
// losers and builds the candidate.
//
// Each constructor here returns a *coderack.Codelet closing over the
// Workspace/Slipnet/Coderack/RNG it needs. PostBootstrap and
// PostTopDown (registry.go) are the two entry points the copycat
// package's main loop calls to seed and replenish the Coderack.
package codelets
