package simplex

import (
	"github.com/qsolve/simplex/elt"
	"github.com/qsolve/simplex/matrix"
	"github.com/qsolve/simplex/tableau"
)

// LoadMatrixFloat64 is LoadMatrix specialized to the default gonum-backed
// float64 Matrix, the concrete instantiation every caller outside the
// test suite actually wants.
func LoadMatrixFloat64(raw *matrix.Dense, opts Options) (*tableau.System[elt.Float64, *matrix.Dense], error) {
	return LoadMatrix[elt.Float64, *matrix.Dense](raw, func(rows, cols int) *matrix.Dense {
		return matrix.EmptyDense(rows, cols)
	}, elt.Zero, elt.One, opts)
}

// SolveFloat64 is Solve specialized to the default float64 backend.
func SolveFloat64(sys *tableau.System[elt.Float64, *matrix.Dense], opts Options) (elt.Float64, error) {
	return Solve[elt.Float64, *matrix.Dense](sys, opts, elt.Zero, elt.One)
}
