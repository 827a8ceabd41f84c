package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qsolve/simplex/elt"
	"github.com/qsolve/simplex/matrix"
)

func TestDenseGetSet(t *testing.T) {
	m := matrix.EmptyDense(2, 3)
	m.Set(1, 1, 5)
	m.Set(2, 3, -2.5)

	assert.Equal(t, elt.Float64(5), m.Get(1, 1))
	assert.Equal(t, elt.Float64(-2.5), m.Get(2, 3))
	assert.Equal(t, elt.Float64(0), m.Get(1, 3))

	rows, cols := m.Dimensions()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
}

func TestDenseRowColumn(t *testing.T) {
	m := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	row := m.GetRow(2)
	require.Len(t, row, 3)
	assert.Equal(t, []elt.Float64{4, 5, 6}, row)

	col := m.GetColumn(2)
	require.Len(t, col, 2)
	assert.Equal(t, []elt.Float64{2, 5}, col)

	m.SetRow(1, []elt.Float64{9, 9, 9})
	assert.Equal(t, elt.Float64(9), m.Get(1, 2))

	m.SetColumn(3, []elt.Float64{-1, -2})
	assert.Equal(t, elt.Float64(-1), m.Get(1, 3))
	assert.Equal(t, elt.Float64(-2), m.Get(2, 3))
}

func TestDenseScaleRowAndSubMult(t *testing.T) {
	m := matrix.NewDenseFromRows([][]float64{
		{2, 4, 6},
		{1, 1, 1},
	})

	m.ScaleRow(1, 0.5)
	assert.Equal(t, []elt.Float64{1, 2, 3}, m.GetRow(1))

	m.SubMult(2, 1, 1)
	assert.Equal(t, []elt.Float64{0, -1, -2}, m.GetRow(2))
}

func TestGenericMatchesDenseSemantics(t *testing.T) {
	g := matrix.EmptyGeneric[elt.Float64](2, 2, elt.Zero)
	g.Set(1, 1, 2)
	g.Set(1, 2, 4)
	g.Set(2, 1, 1)
	g.Set(2, 2, 1)

	g.ScaleRow(1, 0.5)
	assert.Equal(t, []elt.Float64{1, 2}, g.GetRow(1))

	g.SubMult(2, 1, 1)
	assert.Equal(t, []elt.Float64{0, -1}, g.GetRow(2))
}
