package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/qsolve/simplex/elt"
)

// Dense is the default matrix backend: a Matrix[elt.Float64] adapter
// over gonum's *mat.Dense, with row operations expressed via
// gonum/floats instead of hand-rolled loops.
type Dense struct {
	m *mat.Dense
}

// EmptyDense returns a fresh all-zero m×p matrix.
func EmptyDense(m, p int) *Dense {
	return &Dense{m: mat.NewDense(m, p, nil)}
}

// NewDenseFromRows builds a Dense from row-major float64 data, one row
// per slice; every row must have the same length.
func NewDenseFromRows(rows [][]float64) *Dense {
	if len(rows) == 0 {
		return &Dense{m: mat.NewDense(0, 0, nil)}
	}
	p := len(rows[0])
	flat := make([]float64, 0, len(rows)*p)
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return &Dense{m: mat.NewDense(len(rows), p, flat)}
}

// Raw exposes the underlying gonum matrix for callers that want direct
// numeric-library interop (e.g. feeding a solution vector to a plot).
func (d *Dense) Raw() *mat.Dense { return d.m }

func (d *Dense) Dimensions() (int, int) {
	r, c := d.m.Dims()
	return r, c
}

func (d *Dense) Get(r, c int) elt.Float64 {
	return elt.Float64(d.m.At(r-1, c-1))
}

func (d *Dense) Set(r, c int, v elt.Float64) {
	d.m.Set(r-1, c-1, float64(v))
}

func (d *Dense) GetRow(r int) []elt.Float64 {
	raw := d.m.RawRowView(r - 1)
	out := make([]elt.Float64, len(raw))
	for i, v := range raw {
		out[i] = elt.Float64(v)
	}
	return out
}

func (d *Dense) GetColumn(c int) []elt.Float64 {
	n, _ := d.m.Dims()
	out := make([]elt.Float64, n)
	for r := 0; r < n; r++ {
		out[r] = elt.Float64(d.m.At(r, c-1))
	}
	return out
}

func (d *Dense) SetRow(r int, row []elt.Float64) {
	raw := d.m.RawRowView(r - 1)
	for i, v := range row {
		raw[i] = float64(v)
	}
}

func (d *Dense) SetColumn(c int, col []elt.Float64) {
	for r, v := range col {
		d.m.Set(r, c-1, float64(v))
	}
}

// ScaleRow sets row r to k·row r, in place, via gonum/floats.
func (d *Dense) ScaleRow(r int, k elt.Float64) {
	raw := d.m.RawRowView(r - 1)
	floats.Scale(float64(k), raw)
}

// SubMult sets row i to row i − k·row j, in place, via gonum/floats.
// row j is copied and scaled into a scratch slice before floats.SubTo,
// so the result stays correct even when i == j (never true in practice,
// since the pivot excludes the pivot row itself, but kept safe
// regardless).
func (d *Dense) SubMult(i, j int, k elt.Float64) {
	ri := d.m.RawRowView(i - 1)
	rj := d.m.RawRowView(j - 1)
	scaled := make([]float64, len(rj))
	copy(scaled, rj)
	floats.Scale(float64(k), scaled)
	floats.SubTo(ri, ri, scaled)
}
