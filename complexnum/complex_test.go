// Package complexnum_test verifies Complex arithmetic against math/cmplx.
package complexnum_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/bwkimmel/jmist-sub000/complexnum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// requireClose asserts that got is within tol of want in both components.
func requireClose(t *testing.T, want complex128, got complexnum.Complex, msgAndArgs ...interface{}) {
	t.Helper()
	require.InDelta(t, real(want), got.Re, tol, msgAndArgs...)
	require.InDelta(t, imag(want), got.Im, tol, msgAndArgs...)
}

// samples covers every quadrant, both axes and a non-unit modulus.
var samples = []complex128{
	1 + 2i, -3 + 0.5i, -1.5 - 2.5i, 0.25 - 4i, 2, -2, 3i, -3i,
}

// TestConstructors checks New, Real, Polar, Array and the constants.
func TestConstructors(t *testing.T) {
	require.Equal(t, complexnum.Complex{Re: 1, Im: -2}, complexnum.New(1, -2))
	require.Equal(t, complexnum.Complex{Re: 5}, complexnum.Real(5))
	require.Equal(t, complexnum.One, complexnum.Real(1))
	require.Equal(t, complex(0, 1), complexnum.I.Complex128())
	require.Equal(t, complexnum.Zero, complexnum.FromComplex128(0))

	requireClose(t, cmplx.Rect(2, math.Pi/3), complexnum.Polar(2, math.Pi/3))

	zs, err := complexnum.Array([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, []complexnum.Complex{{Re: 1, Im: 3}, {Re: 2, Im: 4}}, zs)

	_, err = complexnum.Array([]float64{1}, nil)
	require.ErrorIs(t, err, complexnum.ErrLengthMismatch)
}

// TestAbsArg checks modulus and principal argument, including the negative
// real axis which must map to +π.
func TestAbsArg(t *testing.T) {
	z := complexnum.New(3, 4)
	require.Equal(t, 5.0, z.Abs())
	require.InDelta(t, math.Atan2(4, 3), z.Arg(), tol)
	require.Equal(t, math.Pi, complexnum.Real(-1).Arg())
}

// TestFieldOps compares every field operation with the builtin complex128.
func TestFieldOps(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			za, zb := complexnum.FromComplex128(a), complexnum.FromComplex128(b)
			requireClose(t, a+b, za.Plus(zb), "%v+%v", a, b)
			requireClose(t, a-b, za.Minus(zb), "%v-%v", a, b)
			requireClose(t, a*b, za.Times(zb), "%v*%v", a, b)
			requireClose(t, a/b, za.Divide(zb), "%v/%v", a, b)
		}
		z := complexnum.FromComplex128(a)
		requireClose(t, a+1.5, z.PlusReal(1.5))
		requireClose(t, a-1.5, z.MinusReal(1.5))
		requireClose(t, a*2, z.Scale(2))
		requireClose(t, a/4, z.DivideReal(4))
		requireClose(t, 1/a, z.Reciprocal())
		requireClose(t, -a, z.Negative())
		requireClose(t, cmplx.Conj(a), z.Conjugate())
	}
}

// TestDivideByZero checks that a zero divisor produces NaN, not a panic.
func TestDivideByZero(t *testing.T) {
	require.True(t, complexnum.New(1, 1).Divide(complexnum.Zero).IsNaN())
	require.True(t, complexnum.Zero.Reciprocal().IsNaN())
	require.False(t, complexnum.One.IsNaN())
}

// TestRoots checks principal square and cube roots and their powers.
func TestRoots(t *testing.T) {
	for _, a := range samples {
		z := complexnum.FromComplex128(a)
		requireClose(t, cmplx.Sqrt(a), z.Sqrt(), "sqrt(%v)", a)
		requireClose(t, cmplx.Pow(a, 1.0/3), z.Cbrt(), "cbrt(%v)", a)

		c := z.Cbrt()
		requireClose(t, a, c.Times(c).Times(c), "cbrt(%v)^3", a)
	}

	// the principal cube root of −8 is 1+√3i, not −2
	requireClose(t, complex(1, math.Sqrt(3)), complexnum.Real(-8).Cbrt())
}

// TestSqrtReal checks the real-radicand helper on both signs.
func TestSqrtReal(t *testing.T) {
	require.Equal(t, complexnum.Complex{Re: 3}, complexnum.SqrtReal(9))
	require.Equal(t, complexnum.Complex{Im: 3}, complexnum.SqrtReal(-9))
	require.Equal(t, complexnum.Zero, complexnum.SqrtReal(0))
}

// TestExpPow checks Exp, Pow and PowComplex against math/cmplx.
func TestExpPow(t *testing.T) {
	for _, a := range samples {
		z := complexnum.FromComplex128(a)
		requireClose(t, cmplx.Exp(a), z.Exp(), "exp(%v)", a)
		requireClose(t, cmplx.Pow(a, 2.5), z.Pow(2.5), "%v^2.5", a)
		requireClose(t, cmplx.Pow(a, 0.5+0.25i), z.PowComplex(complexnum.New(0.5, 0.25)), "%v^(0.5+0.25i)", a)
	}
	requireClose(t, -1, complexnum.New(0, math.Pi).Exp())
}

// TestTrig checks Sin, Cos and Tan against math/cmplx.
func TestTrig(t *testing.T) {
	for _, a := range []complex128{0.3 + 0.2i, -1 + 0.5i, 2 - 1i} {
		z := complexnum.FromComplex128(a)
		requireClose(t, cmplx.Sin(a), z.Sin())
		requireClose(t, cmplx.Cos(a), z.Cos())
		requireClose(t, cmplx.Tan(a), z.Tan())
	}
}

// TestString checks the textual form for both signs of the imaginary part.
func TestString(t *testing.T) {
	assert.Equal(t, "1+2i", complexnum.New(1, 2).String())
	assert.Equal(t, "-0.5-3i", complexnum.New(-0.5, -3).String())
	assert.Equal(t, "0+0i", complexnum.Zero.String())
}
