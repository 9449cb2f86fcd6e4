// Package slipnet implements Copycat's fixed-topology,
// spreading-activation concept graph (spec.md §4.1).
//
// A Slipnet is built once per run via Build(), which wires the
// platonic nodes (letters A-Z, numbers 1-5, facet/bond/group/direction/
// object categories, and relations) with their five kinds of labeled
// links: category, instance, has-property, lateral-slip, and
// lateral-nonslip. Update() runs one spreading-activation tick;
// GetBondCategory/GetRelatedNode/DegreeOfAssociation/
// BondDegreeOfAssociation answer the queries codelets need.
//
// Grounded on original_source's slipnode.py for node fields and query
// methods, and on the teacher's (katalvlaran/lvlath) core package for
// the mutex-guarded, name-keyed storage shape.
package slipnet
