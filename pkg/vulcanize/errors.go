package vulcanize

import "errors"

// ErrPrecondition is returned when the vulcanizer is asked to violate a
// hard constraint: K outside [1,8]. Errors from the input lattice itself
// are returned as the lattice reports them.
var ErrPrecondition = errors.New("vulcanize: precondition violation")
