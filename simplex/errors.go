package simplex

import "errors"

// Error taxonomy per spec §7. Infeasible is returned as a plain error
// value (not a distinguished "none" type) from LoadMatrix, matching how
// every repo in the example pack signals absence in Go: an (value, error)
// pair, never a hand-rolled Option[T].
var (
	// ErrUnbounded is returned by Solve/SimpleSolve when a profitable
	// entering column has no positive entry in any constraint row.
	ErrUnbounded = errors.New("simplex: linear program is unbounded")

	// ErrInfeasible is returned by LoadMatrix when the Phase I
	// auxiliary optimum is non-zero.
	ErrInfeasible = errors.New("simplex: linear program is infeasible")

	// ErrInternalInvariant marks a violation of one of the canonical-
	// tableau invariants of spec §3/§8. It indicates a bug in the
	// caller-supplied tableau or in the engine itself and is never
	// expected on valid input.
	ErrInternalInvariant = errors.New("simplex: internal invariant violated")

	// ErrIterationLimit is returned when Options.MaxIter is exceeded.
	// Bland's rule guarantees termination on a valid canonical tableau;
	// this exists only as a safety net against a caller-supplied
	// tableau that isn't actually canonical.
	ErrIterationLimit = errors.New("simplex: iteration limit exceeded")
)
