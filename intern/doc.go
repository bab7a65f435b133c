// Package intern assigns stable 32-bit NodeIDs to byte-strings.
//
// An Interner deduplicates byte-strings through an open-addressed hash
// table: the 64-bit content hash of the input (cespare/xxhash) is
// reduced to a bucket index via Fibonacci (golden-ratio) hashing with
// the constant 0x9E3779B97F4A7C15, then linearly probed. The canonical
// bytes of a first-time intern are copied into the backing Arena;
// repeat interns of byte-equal input return the existing id without a
// copy.
//
// Every NodeID also carries a Kind (IRI, Literal, or BlankNode),
// recorded once at intern time and read by the SHACL validator's
// NodeKind constraint. This field has no counterpart in an RDF triple
// store's wire format — it exists purely so the in-memory engine can
// answer a validator query without re-parsing anything.
package intern
