package lpfile_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qsolve/simplex/lpfile"
	"github.com/qsolve/simplex/simplex"
)

func TestParseTrivialFeasibility(t *testing.T) {
	src := "max\n1,1,0\nsubject to\n1,0,<=,1\n0,1,<=,1\n"
	p, err := lpfile.Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, lpfile.Maximize, p.Direction)
	assert.Len(t, p.Constraints, 2)
}

func TestParseRejectsMissingSubjectTo(t *testing.T) {
	src := "max\n1,1,0\nwhatever\n1,0,<=,1\n"
	_, err := lpfile.Parse(strings.NewReader(src))
	require.Error(t, err)
	assert.ErrorIs(t, err, lpfile.ErrImproperInput)
}

func TestParseRejectsBadDirection(t *testing.T) {
	_, err := lpfile.Parse(strings.NewReader("sideways\n1,0\nsubject to\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, lpfile.ErrImproperInput)
}

func TestParseRejectsMissingRelation(t *testing.T) {
	src := "max\n1,0\nsubject to\n1,1\n"
	_, err := lpfile.Parse(strings.NewReader(src))
	require.Error(t, err)
	assert.ErrorIs(t, err, lpfile.ErrImproperInput)
}

func TestParseToleratesCarriageReturns(t *testing.T) {
	src := "max\r\n1,1,0\r\nsubject to\r\n1,0,<=,1\r\n0,1,<=,1\r\n"
	p, err := lpfile.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, lpfile.Maximize, p.Direction)
}

func TestNormalizeExpandsEqualityConstraint(t *testing.T) {
	src := "max\n1,1,0\nsubject to\n1,1,=,1\n"
	p, err := lpfile.Parse(strings.NewReader(src))
	require.NoError(t, err)

	raw := p.Normalize()
	n, m := raw.Dimensions()
	require.Equal(t, 3, n) // objective row + 2 rows from the expanded equality
	require.Equal(t, 3, m)

	assert.Equal(t, float64(1), float64(raw.Get(2, 3)))
	assert.Equal(t, float64(-1), float64(raw.Get(3, 3)))
}

func TestNormalizeNegatesGreaterEqual(t *testing.T) {
	src := "min\n3,2,0\nsubject to\n1,1,>=,4\n1,0,<=,10\n0,1,<=,10\n"
	p, err := lpfile.Parse(strings.NewReader(src))
	require.NoError(t, err)

	raw := p.Normalize()
	assert.Equal(t, float64(-3), float64(raw.Get(1, 1)))
	assert.Equal(t, float64(-2), float64(raw.Get(1, 2)))
	assert.Equal(t, float64(-1), float64(raw.Get(2, 1)))
	assert.Equal(t, float64(-4), float64(raw.Get(2, 3)))
}

func TestNormalizeNegatesConstantForMinimize(t *testing.T) {
	src := "min\n1,5\nsubject to\n1,<=,10\n"
	p, err := lpfile.Parse(strings.NewReader(src))
	require.NoError(t, err)

	raw := p.Normalize()
	assert.Equal(t, float64(-1), float64(raw.Get(1, 1)))
	assert.Equal(t, float64(-5), float64(raw.Get(1, 2)))
}

func TestLoadAndSolveMinConversionWithNonzeroConstant(t *testing.T) {
	src := "min\n1,5\nsubject to\n1,<=,10\n"
	path := writeTempLP(t, src)

	loaded, err := lpfile.Load(path, simplex.Options{})
	require.NoError(t, err)

	z, err := loaded.Solve(simplex.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 5, float64(z), 1e-9)
}

func TestLoadAndSolveMinConversion(t *testing.T) {
	src := "min\n3,2,0\nsubject to\n1,1,>=,4\n1,0,<=,10\n0,1,<=,10\n"
	path := writeTempLP(t, src)

	loaded, err := lpfile.Load(path, simplex.Options{})
	require.NoError(t, err)

	z, err := loaded.Solve(simplex.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 8, float64(z), 1e-9)
}

func TestLoadAndSolveTrivialFeasibilityRoundTrip(t *testing.T) {
	src := "max\n1,1,0\nsubject to\n1,0,<=,1\n0,1,<=,1\n"
	path := writeTempLP(t, src)

	loaded, err := lpfile.Load(path, simplex.Options{})
	require.NoError(t, err)

	z, err := loaded.Solve(simplex.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 2, float64(z), 1e-9)
}

func TestLoadInfeasibleFile(t *testing.T) {
	src := "max\n1,0\nsubject to\n1,<=,-1\n"
	path := writeTempLP(t, src)

	_, err := lpfile.Load(path, simplex.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, simplex.ErrInfeasible)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := lpfile.Load("/no/such/file.lp", simplex.Options{})
	require.Error(t, err)
}

func writeTempLP(t *testing.T, contents string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "*.lp")
	require.NoError(t, err)
	_, err = f.WriteString(contents)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
