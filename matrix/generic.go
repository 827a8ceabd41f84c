package matrix

import "github.com/qsolve/simplex/elt"

// Generic is a pure-Go dense matrix over any Element, backing the
// engine when the concrete field isn't float64 (e.g. a caller-supplied
// rational or interval type). It cannot lean on gonum, which is native
// float64 only.
type Generic[E elt.Element[E]] struct {
	rows, cols int
	data       []E
}

// EmptyGeneric returns a fresh all-zero m×p matrix.
func EmptyGeneric[E elt.Element[E]](m, p int, zero E) *Generic[E] {
	data := make([]E, m*p)
	for i := range data {
		data[i] = zero
	}
	return &Generic[E]{rows: m, cols: p, data: data}
}

func (g *Generic[E]) Dimensions() (int, int) { return g.rows, g.cols }

func (g *Generic[E]) idx(r, c int) int { return (r-1)*g.cols + (c - 1) }

func (g *Generic[E]) Get(r, c int) E { return g.data[g.idx(r, c)] }

func (g *Generic[E]) Set(r, c int, v E) { g.data[g.idx(r, c)] = v }

func (g *Generic[E]) GetRow(r int) []E {
	out := make([]E, g.cols)
	copy(out, g.data[g.idx(r, 1):g.idx(r, 1)+g.cols])
	return out
}

func (g *Generic[E]) GetColumn(c int) []E {
	out := make([]E, g.rows)
	for r := 1; r <= g.rows; r++ {
		out[r-1] = g.Get(r, c)
	}
	return out
}

func (g *Generic[E]) SetRow(r int, row []E) {
	copy(g.data[g.idx(r, 1):g.idx(r, 1)+g.cols], row)
}

func (g *Generic[E]) SetColumn(c int, col []E) {
	for r := 1; r <= g.rows; r++ {
		g.Set(r, c, col[r-1])
	}
}

func (g *Generic[E]) ScaleRow(r int, k E) {
	for c := 1; c <= g.cols; c++ {
		g.Set(r, c, g.Get(r, c).Mul(k))
	}
}

func (g *Generic[E]) SubMult(i, j int, k E) {
	for c := 1; c <= g.cols; c++ {
		g.Set(i, c, g.Get(i, c).Sub(g.Get(j, c).Mul(k)))
	}
}
