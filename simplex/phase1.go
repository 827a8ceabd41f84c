package simplex

import (
	"fmt"

	"github.com/qsolve/simplex/elt"
	"github.com/qsolve/simplex/matrix"
	"github.com/qsolve/simplex/tableau"
)

// LoadMatrix runs Phase I on a caller-supplied tableau-shaped matrix
// per spec §4.5: raw is an m×n matrix whose first row is the objective
// coefficients followed by the RHS, and whose remaining rows are
// constraint coefficients with the RHS in the last column. newMatrix
// allocates a fresh all-zero matrix of the given shape in the same
// concrete backend as raw — the core has no way to construct an M on
// its own since M is only known through the Matrix[E] interface.
//
// Returns ErrInfeasible if the auxiliary LP's optimum is non-zero.
func LoadMatrix[E elt.Element[E], M matrix.Matrix[E]](
	raw M,
	newMatrix func(rows, cols int) M,
	zero, one E,
	opts Options,
) (*tableau.System[E, M], error) {
	m, n := raw.Dimensions()

	bMinRow, bMin := 2, raw.Get(2, n)
	for r := 3; r <= m; r++ {
		v := raw.Get(r, n)
		if v.Compare(bMin) == elt.Less {
			bMin, bMinRow = v, r
		}
	}

	if bMin.Compare(zero) != elt.Less {
		return loadFeasibleOrigin(raw, newMatrix, zero, one, m, n)
	}
	return loadViaAuxiliary(raw, newMatrix, zero, one, opts, m, n, bMinRow)
}

// loadFeasibleOrigin handles spec §4.5 step 2: the trivial all-nonbasic-
// zero solution is already feasible, so a plain slack basis suffices.
//
// Row 1 (the objective) is stored internally as the negated cost
// vector: "z - c^T x = 0" rather than "z = c^T x". That sign keeps the
// Gauss-Jordan elimination Pivot already does for every other row
// valid for row 1 too — the objective's RHS cell then tracks the
// current z value directly as pivots proceed, with no special-casing
// of that one column. SimpleSolve's entering rule is the mirror of
// this: it looks for negative, not positive, entries.
func loadFeasibleOrigin[E elt.Element[E], M matrix.Matrix[E]](
	raw M, newMatrix func(rows, cols int) M, zero, one E, m, n int,
) (*tableau.System[E, M], error) {
	p := m + n - 1
	out := newMatrix(m, p)

	for r := 1; r <= m; r++ {
		for c := 1; c <= n-1; c++ {
			v := raw.Get(r, c)
			if r == 1 {
				v = zero.Sub(v)
			}
			out.Set(r, c, v)
		}
	}
	for r := 2; r <= m; r++ {
		out.Set(r, n+r-2, one)
	}
	for r := 1; r <= m; r++ {
		out.Set(r, p, raw.Get(r, n))
	}

	return tableau.MakeSystem[E, M](out, seqRange(1, n-1), seqRange(n, n+m-2)), nil
}

// loadViaAuxiliary handles spec §4.5 step 3: the origin is infeasible,
// so an auxiliary LP minimizing x0 is built and solved to find a
// feasible basis, or to prove infeasibility.
func loadViaAuxiliary[E elt.Element[E], M matrix.Matrix[E]](
	raw M, newMatrix func(rows, cols int) M, zero, one E, opts Options, m, n, bMinRow int,
) (*tableau.System[E, M], error) {
	p := m + n
	x0col := n + m - 1
	negOne := zero.Sub(one)

	aux := newMatrix(m, p)
	for r := 1; r <= m; r++ {
		for c := 1; c <= n-1; c++ {
			aux.Set(r, c, raw.Get(r, c))
		}
	}
	for r := 2; r <= m; r++ {
		aux.Set(r, n+r-2, one)
	}
	for r := 1; r <= m; r++ {
		aux.Set(r, x0col, negOne)
	}
	for c := 1; c < p; c++ {
		aux.Set(1, c, zero)
	}
	// The auxiliary objective is "minimize x0", i.e. "maximize -x0":
	// c_x0 = -1, so the negated-cost row stores -(-1) = 1.
	aux.Set(1, x0col, one)
	// Row 1's RHS stays zero: the original objective's constant term
	// plays no part in the auxiliary optimum, which must be exactly zero
	// for a feasible problem.
	for r := 2; r <= m; r++ {
		aux.Set(r, p, raw.Get(r, n))
	}

	nonbasic := append(seqRange(1, n-1), x0col)
	basic := seqRange(n, n+m-2)
	sys := tableau.MakeSystem[E, M](aux, nonbasic, basic)

	// Forced pivot: bring x0 into the basis, displacing the slack that
	// owns the most-negative-RHS row. That slack's column is n+r-2 for
	// the constraint row r found above (mirrors the identity-block
	// construction above, not the "min_index+n-2" formula of spec §4.5,
	// which uses a different row-numbering convention for the same
	// column).
	leavingCol := n + bMinRow - 2
	if err := Pivot(sys, x0col, leavingCol, zero, one); err != nil {
		return nil, fmt.Errorf("phase I forced pivot: %w", err)
	}

	obj, _, err := SimpleSolve(sys, opts, zero, one)
	if err != nil {
		return nil, fmt.Errorf("phase I auxiliary solve: %w", err)
	}
	if obj.Compare(zero) != elt.Equal {
		return nil, ErrInfeasible
	}

	if contains(sys.Basic, x0col) {
		if err := driveOutAuxiliary(sys, x0col, zero, one); err != nil {
			return nil, err
		}
	}

	return restoreObjective(sys, raw, newMatrix, zero, one, m, n, x0col)
}

// driveOutAuxiliary implements spec §4.5's "driving out the auxiliary"
// step: x0 is optimal at zero but still basic, so any nonbasic column
// with a nonzero entry in its row is pivoted in to displace it.
func driveOutAuxiliary[E elt.Element[E], M matrix.Matrix[E]](sys *tableau.System[E, M], x0col int, zero, one E) error {
	n, _ := sys.Matrix.Dimensions()
	row := -1
	for r := 2; r <= n; r++ {
		if sys.Matrix.Get(r, x0col).Compare(one) == elt.Equal {
			row = r
			break
		}
	}
	if row == -1 {
		return fmt.Errorf("%w: auxiliary variable marked basic but has no unit column", ErrInternalInvariant)
	}

	entering := -1
	for _, j := range sys.Nonbasic {
		if sys.Matrix.Get(row, j).Compare(zero) != elt.Equal {
			entering = j
			break
		}
	}
	if entering == -1 {
		return fmt.Errorf("%w: cannot drive out auxiliary variable, degenerate row %d", ErrInternalInvariant, row)
	}

	return Pivot(sys, entering, x0col, zero, one)
}

// restoreObjective implements spec §4.5's column-deletion and
// objective-restoration steps: drop the auxiliary column, splice in the
// original objective row, then eliminate its basic-column coefficients
// to restore canonical form.
func restoreObjective[E elt.Element[E], M matrix.Matrix[E]](
	sys *tableau.System[E, M], raw M, newMatrix func(rows, cols int) M, zero, one E, m, n, x0col int,
) (*tableau.System[E, M], error) {
	pFinal := n + m - 1
	_, pAux := sys.Matrix.Dimensions()

	final := newMatrix(m, pFinal)
	for r := 1; r <= m; r++ {
		dest := 1
		for c := 1; c <= pAux; c++ {
			if c == x0col {
				continue
			}
			final.Set(r, dest, sys.Matrix.Get(r, c))
			dest++
		}
	}

	finalSys := tableau.MakeSystem[E, M](final, without(sys.Nonbasic, x0col), without(sys.Basic, x0col))

	for c := 1; c <= n-1; c++ {
		finalSys.Matrix.Set(1, c, zero.Sub(raw.Get(1, c)))
	}
	for c := n; c <= pFinal-1; c++ {
		finalSys.Matrix.Set(1, c, zero)
	}
	finalSys.Matrix.Set(1, pFinal, raw.Get(1, n))

	nRows, _ := finalSys.Matrix.Dimensions()
	for _, j := range finalSys.Basic {
		coef := finalSys.Matrix.Get(1, j)
		if coef.Compare(zero) == elt.Equal {
			continue
		}
		row := -1
		for r := 2; r <= nRows; r++ {
			if finalSys.Matrix.Get(r, j).Compare(one) == elt.Equal {
				row = r
				break
			}
		}
		if row == -1 {
			return nil, fmt.Errorf("%w: basic column %d has no unit row during objective restoration", ErrInternalInvariant, j)
		}
		finalSys.Matrix.SubMult(1, row, coef)
	}

	return finalSys, nil
}

func seqRange(from, to int) []int {
	if to < from {
		return []int{}
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func without(xs []int, v int) []int {
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
