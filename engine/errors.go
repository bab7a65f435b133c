package engine

import (
	"errors"
	"fmt"
)

// ErrCycleBudget is the sentinel CycleBudgetError wraps; match it with
// errors.Is rather than a type assertion.
var ErrCycleBudget = errors.New("engine: cycle budget exceeded")

// ErrInvalidArgument wraps every error AssertAxiom receives from the
// OWL engine: an id at or beyond MaxEntities, or an unknown axiom
// kind. The class/property queries return bool and report such an id
// as false rather than as an error.
var ErrInvalidArgument = errors.New("engine: invalid argument")

// CycleBudgetError reports that an operation completed but overran
// its cycle budget. Under cycle.SoftReport it accompanies a valid
// result; under cycle.HardFail the result is discarded and only this
// error is returned.
type CycleBudgetError struct {
	Operation string
	Elapsed   uint64
	Budget    uint64
}

func (e *CycleBudgetError) Error() string {
	return fmt.Sprintf("engine: %s exceeded cycle budget: elapsed=%d budget=%d", e.Operation, e.Elapsed, e.Budget)
}

// Is matches CycleBudgetError against ErrCycleBudget for errors.Is.
func (e *CycleBudgetError) Is(target error) bool {
	return target == ErrCycleBudget
}
