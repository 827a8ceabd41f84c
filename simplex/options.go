package simplex

// Options controls the teacher-style trace output and the iteration
// safety net of SimpleSolve. The zero value is silent and unbounded
// (MaxIter == 0 means no limit).
type Options struct {
	// Verbose reproduces the reference implementation's per-pivot
	// fmt.Printf trace (basis change, iteration counter, objective
	// value) when set.
	Verbose bool

	// MaxIter bounds the number of pivots SimpleSolve performs before
	// giving up with ErrIterationLimit. Zero means unlimited.
	MaxIter int
}
