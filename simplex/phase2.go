package simplex

import (
	"fmt"
	"sort"

	"github.com/qsolve/simplex/elt"
	"github.com/qsolve/simplex/matrix"
	"github.com/qsolve/simplex/tableau"
)

// SimpleSolve is the Phase II optimization loop of spec §4.4: Bland's
// rule (smallest-index entering, earliest-row leaving on ties) applied
// until optimality or unboundedness. sys is mutated in place; the
// returned System is sys itself, exposed for tests per spec §6.
func SimpleSolve[E elt.Element[E], M matrix.Matrix[E]](sys *tableau.System[E, M], opts Options, zero, one E) (E, *tableau.System[E, M], error) {
	n, p := sys.Matrix.Dimensions()

	for iter := 1; ; iter++ {
		if opts.MaxIter > 0 && iter > opts.MaxIter {
			return zero, sys, fmt.Errorf("%w: after %d iterations", ErrIterationLimit, opts.MaxIter)
		}

		// Bland's rule scans the entering candidate in ascending column
		// index, independent of the order Pivot happens to leave the
		// Nonbasic slice in (it prepends the newly-freed column). Row 1
		// stores negated costs (see LoadMatrix), so an improving column
		// is one with a strictly negative entry there.
		ascending := append([]int(nil), sys.Nonbasic...)
		sort.Ints(ascending)

		entering := -1
		unboundedCandidate := false
		for _, j := range ascending {
			cost := sys.Matrix.Get(1, j)
			if cost.Compare(zero) != elt.Less {
				continue
			}
			hasPositive := false
			for r := 2; r <= n; r++ {
				if sys.Matrix.Get(r, j).Compare(zero) == elt.Greater {
					hasPositive = true
					break
				}
			}
			if hasPositive {
				entering = j
				break
			}
			unboundedCandidate = true
		}

		if entering == -1 {
			if unboundedCandidate {
				return zero, sys, fmt.Errorf("%w", ErrUnbounded)
			}
			return sys.Matrix.Get(1, p), sys, nil
		}

		leavingRow := -1
		var bestRatio E
		for r := 2; r <= n; r++ {
			ae := sys.Matrix.Get(r, entering)
			if ae.Compare(zero) != elt.Greater {
				continue
			}
			ratio := sys.Matrix.Get(r, p).Div(ae)
			if leavingRow == -1 || ratio.Compare(bestRatio) == elt.Less {
				bestRatio = ratio
				leavingRow = r
			}
		}
		if leavingRow == -1 {
			return zero, sys, fmt.Errorf("%w", ErrUnbounded)
		}

		leaving := -1
		for _, j := range sys.Basic {
			if sys.Matrix.Get(leavingRow, j).Compare(one) == elt.Equal {
				leaving = j
				break
			}
		}
		if leaving == -1 {
			return zero, sys, fmt.Errorf("%w: no basic column owns row %d", ErrInternalInvariant, leavingRow)
		}

		if opts.Verbose {
			fmt.Printf("-------------------- BASE CHANGE %v -> %v ----------------------\n", leaving, entering)
		}

		if err := Pivot(sys, entering, leaving, zero, one); err != nil {
			return zero, sys, err
		}

		if opts.Verbose {
			fmt.Printf("-------------------- ITERATION %v: Z = %v ----------------------\n", iter, sys.Matrix.Get(1, p))
		}
	}
}
