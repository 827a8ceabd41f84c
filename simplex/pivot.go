package simplex

import (
	"fmt"

	"github.com/qsolve/simplex/elt"
	"github.com/qsolve/simplex/matrix"
	"github.com/qsolve/simplex/tableau"
)

// Pivot performs one Simplex step with entering column e (currently
// nonbasic) and leaving column l (currently basic), per spec §4.3. sys
// is mutated in place; its Nonbasic/Basic slices are replaced wholesale.
func Pivot[E elt.Element[E], M matrix.Matrix[E]](sys *tableau.System[E, M], e, l int, zero, one E) error {
	n, _ := sys.Matrix.Dimensions()

	r := -1
	for row := 2; row <= n; row++ {
		if sys.Matrix.Get(row, l).Compare(one) == elt.Equal {
			r = row
			break
		}
	}
	if r == -1 {
		return fmt.Errorf("%w: no unit column found for leaving variable %d", ErrInternalInvariant, l)
	}

	piv := sys.Matrix.Get(r, e)
	if piv.Compare(zero) == elt.Equal {
		return fmt.Errorf("%w: zero pivot element at row %d, column %d", ErrInternalInvariant, r, e)
	}

	sys.Matrix.ScaleRow(r, one.Div(piv))

	for i := 1; i <= n; i++ {
		if i == r {
			continue
		}
		factor := sys.Matrix.Get(i, e)
		if factor.Compare(zero) == elt.Equal {
			continue
		}
		sys.Matrix.SubMult(i, r, factor)
	}

	newBasic := make([]int, 0, len(sys.Basic))
	newBasic = append(newBasic, e)
	for _, j := range sys.Basic {
		if j != l {
			newBasic = append(newBasic, j)
		}
	}

	newNonbasic := make([]int, 0, len(sys.Nonbasic))
	newNonbasic = append(newNonbasic, l)
	for _, j := range sys.Nonbasic {
		if j != e {
			newNonbasic = append(newNonbasic, j)
		}
	}

	sys.Basic = newBasic
	sys.Nonbasic = newNonbasic
	return nil
}
