// Package mathutil_test covers tolerances, interpolation, statistics and
// the seeded RNG helpers.
package mathutil_test

import (
	"math"
	"testing"

	"github.com/bwkimmel/jmist-sub000/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMachineEpsilon checks the constant against the float64 definition.
func TestMachineEpsilon(t *testing.T) {
	const eps = mathutil.MachineEpsilon
	require.Equal(t, math.Pow(2, -52), eps)
	require.NotEqual(t, 1.0, 1.0+mathutil.MachineEpsilon)
	require.Equal(t, 1.0, 1.0+mathutil.MachineEpsilon/4)
}

// TestCompare exercises the tolerant predicates.
func TestCompare(t *testing.T) {
	assert.True(t, mathutil.IsZero(1e-7))
	assert.False(t, mathutil.IsZero(1e-5))
	assert.True(t, mathutil.IsZeroEps(1e-13, mathutil.TinyEpsilon))
	assert.True(t, mathutil.Equal(1.0, 1.0+1e-8))
	assert.False(t, mathutil.EqualEps(1.0, 1.1, 0.05))

	assert.True(t, mathutil.AllEqual(nil, 0))
	assert.True(t, mathutil.AllEqual([]float64{1, 1.01, 0.995}, 0.1))
	assert.False(t, mathutil.AllEqual([]float64{1, 1.01, 0.9}, 0.1))

	assert.Equal(t, 1.0, mathutil.Signum(3))
	assert.Equal(t, -1.0, mathutil.Signum(-0.5))
	assert.Equal(t, 0.0, mathutil.Signum(0))
	assert.True(t, math.IsNaN(mathutil.Signum(math.NaN())))

	assert.Equal(t, 2.0, mathutil.Clamp(5, -2, 2))
	assert.Equal(t, -2.0, mathutil.Clamp(-5, -2, 2))
	assert.Equal(t, 9.0, mathutil.Sqr(-3))
}

// TestInRange checks the four open/closed interval variants at the bounds.
func TestInRange(t *testing.T) {
	assert.False(t, mathutil.InRangeOO(0, 0, 1))
	assert.True(t, mathutil.InRangeCO(0, 0, 1))
	assert.False(t, mathutil.InRangeCO(1, 0, 1))
	assert.True(t, mathutil.InRangeCC(1, 0, 1))
	assert.True(t, mathutil.InRangeOC(1, 0, 1))
	assert.False(t, mathutil.InRangeOC(0, 0, 1))
}

// TestInterpolate covers the scalar, two-point and bilinear forms.
func TestInterpolate(t *testing.T) {
	assert.Equal(t, 2.5, mathutil.Interpolate(2, 3, 0.5))
	assert.Equal(t, 4.0, mathutil.Interpolate(2, 3, 2)) // extrapolates
	assert.InDelta(t, 15.0, mathutil.InterpolatePoints(1, 10, 3, 20, 2), 1e-12)
	assert.InDelta(t, 2.5, mathutil.BilinearInterpolate(1, 2, 3, 4, 0.5, 0.5), 1e-12)
	assert.Equal(t, 3.0, mathutil.BilinearInterpolate(1, 2, 3, 4, 0, 1))
}

// TestInterpolateTable checks held end values, exact samples and interior blends.
func TestInterpolateTable(t *testing.T) {
	xs := []float64{0, 1, 3}
	ys := []float64{0, 10, 30}

	cases := []struct {
		x, want float64
	}{
		{-1, 0}, {0, 0}, {0.5, 5}, {1, 10}, {2, 20}, {3, 30}, {7, 30},
	}
	for _, c := range cases {
		got, err := mathutil.InterpolateTable(xs, ys, c.x)
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 1e-12, "x=%v", c.x)
	}

	_, err := mathutil.InterpolateTable(xs, ys[:2], 0)
	require.ErrorIs(t, err, mathutil.ErrLengthMismatch)
	_, err = mathutil.InterpolateTable(nil, nil, 0)
	require.ErrorIs(t, err, mathutil.ErrEmptyInput)
	_, err = mathutil.InterpolateTable([]float64{0, 0}, []float64{1, 2}, 0)
	require.ErrorIs(t, err, mathutil.ErrNotIncreasing)
}

// TestInterpolateWrapped checks periodic wrap-around; ys[n-1] is ignored.
func TestInterpolateWrapped(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 10, 999}

	cases := []struct {
		x, want float64
	}{
		{0, 0}, {0.5, 5}, {1, 10}, {1.5, 5}, {2, 0}, {2.5, 5}, {-0.5, 5}, {-1, 10},
	}
	for _, c := range cases {
		got, err := mathutil.InterpolateWrapped(xs, ys, c.x)
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 1e-12, "x=%v", c.x)
	}

	got, err := mathutil.InterpolateWrapped([]float64{4}, []float64{7}, 100)
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)
}

// TestTrapz integrates simple piecewise-linear shapes.
func TestTrapz(t *testing.T) {
	got, err := mathutil.Trapz([]float64{0, 1, 2}, []float64{0, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	got, err = mathutil.Trapz([]float64{5}, []float64{3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = mathutil.Trapz([]float64{1, 0}, []float64{0, 0})
	require.ErrorIs(t, err, mathutil.ErrNotIncreasing)
	_, err = mathutil.Trapz(nil, nil)
	require.ErrorIs(t, err, mathutil.ErrEmptyInput)
	_, err = mathutil.Trapz([]float64{0}, nil)
	require.ErrorIs(t, err, mathutil.ErrLengthMismatch)

	got, err = mathutil.TrapzUniform([]float64{1, 1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 1e-12)
}

// TestTrapzUniform matches Trapz on unit-spaced abscissae.
func TestTrapzUniform(t *testing.T) {
	y := []float64{0, 2, 1, 4, 3}
	want, err := mathutil.Trapz([]float64{0, 1, 2, 3, 4}, y)
	require.NoError(t, err)

	got, err := mathutil.TrapzUniform(y)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, 8.5, got, 1e-12)

	got, err = mathutil.TrapzUniform([]float64{7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = mathutil.TrapzUniform(nil)
	require.ErrorIs(t, err, mathutil.ErrEmptyInput)
}

// TestStats checks the gonum-backed statistics and their empty-input policy.
func TestStats(t *testing.T) {
	v := []float64{3, -1, 4, 1, 5}
	assert.Equal(t, 12.0, mathutil.Sum(v))
	assert.Equal(t, -60.0, mathutil.Product(v))
	assert.InDelta(t, 2.4, mathutil.Mean(v), 1e-12)
	assert.Equal(t, -1.0, mathutil.Min(v))
	assert.Equal(t, 5.0, mathutil.Max(v))
	assert.Equal(t, []float64{3, 2, 6, 7, 12}, mathutil.CumSum(v))
	assert.Equal(t, []float64{3, -1, 4, 1, 5}, v, "inputs must not be modified")

	n := mathutil.Normalize([]float64{1, 3})
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, n, 1e-12)

	assert.Equal(t, 0.0, mathutil.Sum(nil))
	assert.Equal(t, 1.0, mathutil.Product(nil))
	assert.Equal(t, 0.0, mathutil.Product([]float64{2, 0, 3}))
	assert.True(t, math.IsNaN(mathutil.Mean(nil)))
	assert.True(t, math.IsNaN(mathutil.Min(nil)))
	assert.True(t, math.IsNaN(mathutil.Max(nil)))
	assert.Empty(t, mathutil.CumSum(nil))
}

// TestRNGDeterminism checks that equal seeds give equal streams and that
// derived streams are decorrelated from their parent.
func TestRNGDeterminism(t *testing.T) {
	a, b := mathutil.NewRNG(42), mathutil.NewRNG(42)
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}

	z0, d := mathutil.NewRNG(0), mathutil.NewRNG(mathutil.DefaultSeed)
	require.Equal(t, d.Int63(), z0.Int63(), "seed 0 maps to DefaultSeed")

	c1 := mathutil.DeriveRNG(mathutil.NewRNG(7), 1)
	c2 := mathutil.DeriveRNG(mathutil.NewRNG(7), 2)
	require.NotEqual(t, c1.Int63(), c2.Int63())

	n1 := mathutil.DeriveRNG(nil, 3)
	n2 := mathutil.DeriveRNG(nil, 3)
	require.Equal(t, n1.Int63(), n2.Int63())

	rng := mathutil.NewRNG(9)
	for i := 0; i < 100; i++ {
		x := mathutil.UniformRange(rng, -2, 3)
		require.GreaterOrEqual(t, x, -2.0)
		require.Less(t, x, 3.0)
	}
	require.False(t, math.IsNaN(mathutil.UniformRange(nil, 0, 1)))
}
