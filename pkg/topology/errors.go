package topology

import "errors"

// ErrInvalidPopulation wraps the accumulated validation failures for a
// population document; unwrap to inspect the underlying
// *multierror.Error for individual messages.
var ErrInvalidPopulation = errors.New("topology: invalid population document")
