package lpfile

import (
	"github.com/qsolve/simplex/elt"
	"github.com/qsolve/simplex/matrix"
	"github.com/qsolve/simplex/simplex"
	"github.com/qsolve/simplex/tableau"
)

// Normalize applies the sign-normalization rules of spec §6 and returns
// the raw augmented matrix Phase I expects: row 1 is the (always
// maximizing) objective plus constant, the remaining rows are
// constraints with RHS in the last column. "=" constraints are emitted
// twice, once as-is and once fully negated. For Minimize, both the
// coefficients and the constant term are negated, so the engine solves
// max(-c·x - constant); Loaded.Solve negates the whole result back,
// giving min(c·x) + constant instead of leaving the constant's sign
// stuck to whichever direction happened to run.
func (p *Problem) Normalize() *matrix.Dense {
	rows := make([][]float64, 0, 1+2*len(p.Constraints))

	obj := make([]float64, len(p.Objective)+1)
	for i, c := range p.Objective {
		v := c
		if p.Direction == Minimize {
			v = -v
		}
		obj[i] = float64(v)
	}
	constant := p.Constant
	if p.Direction == Minimize {
		constant = -constant
	}
	obj[len(obj)-1] = float64(constant)
	rows = append(rows, obj)

	for _, c := range p.Constraints {
		switch c.Relation {
		case relLE:
			rows = append(rows, constraintRow(c, 1))
		case relGE:
			rows = append(rows, constraintRow(c, -1))
		case relEQ:
			rows = append(rows, constraintRow(c, 1))
			rows = append(rows, constraintRow(c, -1))
		}
	}

	return matrix.NewDenseFromRows(rows)
}

func constraintRow(c Constraint, sign float64) []float64 {
	row := make([]float64, len(c.Coefficients)+1)
	for i, v := range c.Coefficients {
		row[i] = sign * float64(v)
	}
	row[len(row)-1] = sign * float64(c.RHS)
	return row
}

// Loaded pairs the parsed problem with the feasible System Phase I
// produced from it. The direction is kept alongside the system because
// the engine always maximizes internally (§6's normalization negates a
// min problem's objective); reporting the answer in the user's original
// units requires negating it back for Minimize.
type Loaded struct {
	Problem *Problem
	System  *tableau.System[elt.Float64, *matrix.Dense]
}

// Load parses path and runs Phase I on its normalized matrix, per spec
// §6's load_file. A nil System with a nil error never happens; nil,
// ErrInfeasible signals infeasibility exactly as LoadMatrix does.
func Load(path string, opts simplex.Options) (*Loaded, error) {
	problem, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return loadProblem(problem, opts)
}

func loadProblem(problem *Problem, opts simplex.Options) (*Loaded, error) {
	raw := problem.Normalize()
	sys, err := simplex.LoadMatrixFloat64(raw, opts)
	if err != nil {
		return nil, err
	}
	return &Loaded{Problem: problem, System: sys}, nil
}

// Solve runs Phase II and reports the optimum in the objective's
// original units: for a Minimize problem the internally-maximized value
// is negated back, per spec §6's normalization contract.
func (l *Loaded) Solve(opts simplex.Options) (elt.Float64, error) {
	z, err := simplex.SolveFloat64(l.System, opts)
	if err != nil {
		return 0, err
	}
	if l.Problem.Direction == Minimize {
		return -z, nil
	}
	return z, nil
}
