package polynomial_test

import (
	"math"
	"sort"
	"testing"

	"github.com/bwkimmel/jmist-sub000/complexnum"
	"github.com/bwkimmel/jmist-sub000/mathutil"
	"github.com/bwkimmel/jmist-sub000/polynomial"
	"github.com/bwkimmel/jmist-sub000/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Canonical(t *testing.T) {
	p := polynomial.New(1, 2, 0, 0)
	q := polynomial.New(1, 2)
	assert.Equal(t, 1, p.Degree())
	assert.True(t, p.Equal(q))
	assert.Equal(t, []float64{1, 2}, p.Coefficients())
	for _, x := range []float64{-2, 0, 0.5, 3} {
		assert.Equal(t, q.At(x), p.At(x))
	}

	z := polynomial.New(0, 0, 0)
	assert.True(t, z.IsZero())
	assert.Equal(t, -1, z.Degree())
	assert.True(t, z.Equal(polynomial.Zero()))
	assert.True(t, polynomial.Polynomial{}.Equal(polynomial.New()))
	assert.Empty(t, z.Coefficients())
}

func TestNew_CopiesInput(t *testing.T) {
	in := []float64{1, 2, 3}
	p := polynomial.New(in...)
	in[0] = 99
	assert.Equal(t, 1.0, p.Coefficient(0))

	out := p.Coefficients()
	out[1] = 99
	assert.Equal(t, 2.0, p.Coefficient(1))
}

func TestCoefficient(t *testing.T) {
	p := polynomial.New(4, 0, -1)
	assert.Equal(t, 4.0, p.Coefficient(0))
	assert.Equal(t, 0.0, p.Coefficient(1))
	assert.Equal(t, -1.0, p.Coefficient(2))
	assert.Equal(t, 0.0, p.Coefficient(10))
	assert.Panics(t, func() { p.Coefficient(-1) })
}

func TestAt(t *testing.T) {
	p := polynomial.New(-6, 11, -6, 1)
	for _, r := range []float64{1, 2, 3} {
		assert.InDelta(t, 0, p.At(r), 1e-12)
	}
	assert.Equal(t, -6.0, p.At(0))
	assert.Equal(t, 0.0, polynomial.Zero().At(5))

	// x² + 1 at i is zero.
	q := polynomial.New(1, 0, 1)
	v := q.AtComplex(complexnum.I)
	assert.InDelta(t, 0, v.Abs(), 1e-15)

	w := q.AtComplex(complexnum.Real(2))
	assert.Equal(t, complexnum.Real(5), w)
}

func TestArithmetic(t *testing.T) {
	p := polynomial.New(1, 2, 3)
	q := polynomial.New(-1, 0, -3)

	assert.Equal(t, []float64{0, 2}, p.Plus(q).Coefficients())
	assert.Equal(t, []float64{2, 2, 6}, p.Minus(q).Coefficients())
	assert.True(t, p.Minus(p).IsZero())
	assert.True(t, p.Plus(polynomial.Zero()).Equal(p))

	// (x − 1)(x + 1) = x² − 1
	prod := polynomial.New(-1, 1).Times(polynomial.New(1, 1))
	assert.Equal(t, []float64{-1, 0, 1}, prod.Coefficients())
	assert.True(t, p.Times(polynomial.Zero()).IsZero())
}

func TestTimes_MatchesEvaluation(t *testing.T) {
	rng := mathutil.NewRNG(mathutil.DefaultSeed)
	for i := 0; i < 50; i++ {
		a := polynomial.New(rng.Float64(), rng.Float64(), rng.Float64())
		b := polynomial.New(rng.Float64(), rng.Float64())
		x := mathutil.UniformRange(rng, -2, 2)
		assert.InDelta(t, a.At(x)*b.At(x), a.Times(b).At(x), 1e-12)
	}
}

func TestFromRoots(t *testing.T) {
	p := polynomial.FromRoots(1, 2, 3)
	assert.Equal(t, []float64{-6, 11, -6, 1}, p.Coefficients())
	assert.Equal(t, []float64{1}, polynomial.FromRoots().Coefficients())
}

func TestRoots(t *testing.T) {
	p := polynomial.New(30, -61, 41, -11, 1)
	roots, err := p.Roots()
	require.NoError(t, err)
	sort.Float64s(roots)
	assert.InDeltaSlice(t, []float64{1, 2, 3, 5}, roots, 1e-9)

	// Trailing zeros do not raise the degree seen by the solver.
	roots, err = polynomial.New(-2, 1, 0, 0, 0, 0).Roots()
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, roots)

	roots, err = polynomial.Zero().Roots()
	require.NoError(t, err)
	assert.Empty(t, roots)

	croots, err := polynomial.New(1, 0, 1).ComplexRoots()
	require.NoError(t, err)
	require.Len(t, croots, 2)
	for _, z := range croots {
		assert.InDelta(t, 0, polynomial.New(1, 0, 1).AtComplex(z).Abs(), 1e-12)
	}
}

func TestRoots_UnsupportedDegree(t *testing.T) {
	p := polynomial.FromRoots(1, 2, 3, 4, 5)
	_, err := p.Roots()
	require.ErrorIs(t, err, solver.ErrUnsupportedDegree)
	_, err = p.ComplexRoots()
	require.ErrorIs(t, err, solver.ErrUnsupportedDegree)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "-6x^0 + 11x^1 - 6x^2 + 1x^3", polynomial.New(-6, 11, -6, 1).String())
	assert.Equal(t, "0.5t^0 + 0t^1 - 2.25t^2", polynomial.New(0.5, 0, -2.25).Format("t"))
	assert.Equal(t, "0", polynomial.Zero().String())
	assert.Equal(t, "NaNx^0", polynomial.New(math.NaN()).String())
}
