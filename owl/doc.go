// Package owl implements the OWL-subset reasoning engine: an axiom
// list plus three bit-matrices (class hierarchy, property flags,
// transitive closure) and the materialization routine that turns
// asserted axioms and stored triples into those matrices via
// Floyd-Warshall row-union (see package bitmatrix).
//
// Axiom assertion is O(1) and updates the bit-matrices directly where
// the axiom kind permits (SubClassOf, EquivalentClass, DisjointWith,
// and the four property characteristics); Domain/Range/InverseOf/
// SameAs/DifferentFrom axioms are recorded in the axiom list only;
// they have no defined matrix encoding.
// Materialize is a batch operation, explicitly outside the cycle
// budget; ask-side queries (IsSubclassOf, IsEquivalent, IsDisjointWith,
// HasPropertyCharacteristic, and TransitiveAsk once Materialize has
// run) are O(1) bit-matrix tests. Before materialization TransitiveAsk
// scans the subject's adjacency instead.
package owl
