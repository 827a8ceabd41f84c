// Package simplex implements the two-phase Simplex engine: the pivot
// kernel, the Phase II optimization loop, and the Phase I feasibility
// initializer, per spec §4.
package simplex

import (
	"github.com/qsolve/simplex/elt"
	"github.com/qsolve/simplex/matrix"
	"github.com/qsolve/simplex/tableau"
)

// Solve runs Phase II on sys and returns the optimum objective value,
// per spec §6. It is the thin public entry point over SimpleSolve.
func Solve[E elt.Element[E], M matrix.Matrix[E]](sys *tableau.System[E, M], opts Options, zero, one E) (E, error) {
	obj, _, err := SimpleSolve(sys, opts, zero, one)
	return obj, err
}
