package elt_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qsolve/simplex/elt"
)

func TestFloat64Arithmetic(t *testing.T) {
	a, b := elt.Float64(3), elt.Float64(2)

	assert.Equal(t, elt.Float64(5), a.Add(b))
	assert.Equal(t, elt.Float64(1), a.Sub(b))
	assert.Equal(t, elt.Float64(6), a.Mul(b))
	assert.Equal(t, elt.Float64(1.5), a.Div(b))
}

func TestFloat64Compare(t *testing.T) {
	assert.Equal(t, elt.Less, elt.Float64(1).Compare(elt.Float64(2)))
	assert.Equal(t, elt.Equal, elt.Float64(2).Compare(elt.Float64(2)))
	assert.Equal(t, elt.Greater, elt.Float64(3).Compare(elt.Float64(2)))
}

func TestParseFloat64(t *testing.T) {
	v, err := elt.ParseFloat64("3.5")
	require.NoError(t, err)
	assert.Equal(t, elt.Float64(3.5), v)

	_, err = elt.ParseFloat64("not-a-number")
	require.Error(t, err)
	assert.True(t, errors.Is(err, elt.ErrParse))
}

func TestFloat64Predicates(t *testing.T) {
	assert.True(t, elt.Zero.IsZero())
	assert.True(t, elt.Float64(1).IsPositive())
	assert.True(t, elt.Float64(-1).IsNegative())
	assert.Equal(t, elt.Float64(-4), elt.Float64(4).Neg())
}
