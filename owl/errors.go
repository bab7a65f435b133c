package owl

import "errors"

// ErrUnknownAxiomKind is returned by AssertAxiom for a kind value
// outside the AxiomKind enumeration.
var ErrUnknownAxiomKind = errors.New("owl: unknown axiom kind")

// ErrEntityOutOfRange is returned when an axiom names a subject or
// object id at or beyond the engine's MaxEntities bound.
var ErrEntityOutOfRange = errors.New("owl: entity id exceeds max entities")
