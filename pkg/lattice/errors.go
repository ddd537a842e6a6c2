package lattice

import "errors"

// ErrPrecondition is the sentinel wrapped by every arity/range violation
// raised by the lattice and sublist operations.
var ErrPrecondition = errors.New("precondition violation")
