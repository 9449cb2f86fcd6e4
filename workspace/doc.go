// Package workspace holds Copycat's mutable percept graph — letters,
// descriptions, bonds, groups, correspondences, and the rule — and the
// competitive construction protocol ("fight-it-out") by which
// candidate structures displace one another (spec.md §3, §4.3).
//
// Object is modeled as a tagged sum (Kind == KindLetter | KindGroup)
// rather than an open interface hierarchy, per spec.md §9's explicit
// design note: "Model as a tagged sum ... do not attempt open
// inheritance." Bond, group Objects, and Correspondence all satisfy a
// one-method Structure interface (Strength) for the pieces of
// fight-it-out that are structure-kind agnostic.
//
// Grounded on original_source's bond.py (propose/build/test, fight-it-
// out weights) and group.py (strength, local support/density,
// description emission, incompatible-group/correspondence detection).
package workspace
