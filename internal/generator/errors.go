package generator

import "errors"

// Errors surfaced at construction or lookup time. Iteration itself never
// fails under valid construction.
var (
	// ErrInvalidParameter indicates out-of-range bounds, insufficient
	// step counts, or a non-positive sample budget.
	ErrInvalidParameter = errors.New("trajgen: invalid generator parameter")

	// ErrInvalidConfiguration indicates a malformed legacy configuration
	// (wrong triplet length, missing average angle).
	ErrInvalidConfiguration = errors.New("trajgen: invalid search configuration")

	// ErrUnknownGenerator indicates a missing or unregistered generator
	// name in a configuration.
	ErrUnknownGenerator = errors.New("trajgen: unknown generator")
)
