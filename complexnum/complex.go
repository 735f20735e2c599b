// SPDX-License-Identifier: MIT

package complexnum

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrLengthMismatch is returned by Array when re and im differ in length.
var ErrLengthMismatch = errors.New("complexnum: re/im length mismatch")

// Complex is an immutable complex number Re + Im·i.
type Complex struct {
	Re float64 // real part
	Im float64 // imaginary part
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Complex{}

var (
	// Zero is 0+0i.
	Zero = Complex{}

	// One is 1+0i.
	One = Complex{Re: 1}

	// I is the imaginary unit 0+1i.
	I = Complex{Im: 1}
)

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Real returns the purely real value re + 0i.
func Real(re float64) Complex {
	return Complex{Re: re}
}

// Polar returns the complex value with modulus r and argument theta.
func Polar(r, theta float64) Complex {
	return Complex{Re: r * math.Cos(theta), Im: r * math.Sin(theta)}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex {
	return Complex{Re: real(z), Im: imag(z)}
}

// Array zips parallel real and imaginary slices.
// Returns ErrLengthMismatch if len(re) != len(im).
func Array(re, im []float64) ([]Complex, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("Array(%d,%d): %w", len(re), len(im), ErrLengthMismatch)
	}
	out := make([]Complex, len(re))
	for i := range re {
		out[i] = Complex{Re: re[i], Im: im[i]}
	}

	return out, nil
}

// Complex128 converts z to the builtin representation.
func (z Complex) Complex128() complex128 {
	return complex(z.Re, z.Im)
}

// Abs returns the modulus |z| = hypot(Re, Im).
func (z Complex) Abs() float64 {
	return math.Hypot(z.Re, z.Im)
}

// Arg returns the principal argument atan2(Im, Re) in (−π, π].
func (z Complex) Arg() float64 {
	return math.Atan2(z.Im, z.Re)
}

// IsNaN reports whether either component is NaN.
func (z Complex) IsNaN() bool {
	return math.IsNaN(z.Re) || math.IsNaN(z.Im)
}

// Plus returns z + w.
func (z Complex) Plus(w Complex) Complex {
	return Complex{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// PlusReal returns z + x.
func (z Complex) PlusReal(x float64) Complex {
	return Complex{Re: z.Re + x, Im: z.Im}
}

// Minus returns z − w.
func (z Complex) Minus(w Complex) Complex {
	return Complex{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// MinusReal returns z − x.
func (z Complex) MinusReal(x float64) Complex {
	return Complex{Re: z.Re - x, Im: z.Im}
}

// Times returns z·w.
func (z Complex) Times(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Scale returns z·x for real x.
func (z Complex) Scale(x float64) Complex {
	return Complex{Re: z.Re * x, Im: z.Im * x}
}

// Divide returns z / w. A zero-modulus w yields NaN components.
func (z Complex) Divide(w Complex) Complex {
	d := w.Re*w.Re + w.Im*w.Im
	return Complex{
		Re: (z.Re*w.Re + z.Im*w.Im) / d,
		Im: (z.Im*w.Re - z.Re*w.Im) / d,
	}
}

// DivideReal returns z / x.
func (z Complex) DivideReal(x float64) Complex {
	return Complex{Re: z.Re / x, Im: z.Im / x}
}

// Reciprocal returns 1/z. Zero yields NaN components.
func (z Complex) Reciprocal() Complex {
	d := z.Re*z.Re + z.Im*z.Im
	return Complex{Re: z.Re / d, Im: -z.Im / d}
}

// Negative returns −z.
func (z Complex) Negative() Complex {
	return Complex{Re: -z.Re, Im: -z.Im}
}

// Conjugate returns Re − Im·i.
func (z Complex) Conjugate() Complex {
	return Complex{Re: z.Re, Im: -z.Im}
}

// Sqrt returns the principal square root, computed in polar form.
func (z Complex) Sqrt() Complex {
	return Polar(math.Sqrt(z.Abs()), z.Arg()/2)
}

// SqrtReal returns the square root of a real number as a Complex:
// pure real for x >= 0, pure imaginary for x < 0.
func SqrtReal(x float64) Complex {
	if x >= 0 {
		return Complex{Re: math.Sqrt(x)}
	}

	return Complex{Im: math.Sqrt(-x)}
}

// Cbrt returns the principal cube root, computed in polar form.
// For a negative real z the result is |z|^(1/3)·e^(iπ/3), not the real root.
func (z Complex) Cbrt() Complex {
	return Polar(math.Cbrt(z.Abs()), z.Arg()/3)
}

// Exp returns e^z.
func (z Complex) Exp() Complex {
	return Polar(math.Exp(z.Re), z.Im)
}

// Pow returns the principal value of z^x for real x.
func (z Complex) Pow(x float64) Complex {
	return Polar(math.Pow(z.Abs(), x), z.Arg()*x)
}

// PowComplex returns the principal value of z^w:
// |z|^a·e^(−bθ) · e^(i(aθ + b·ln|z|)) for w = a + bi, θ = Arg(z).
func (z Complex) PowComplex(w Complex) Complex {
	r, theta := z.Abs(), z.Arg()
	return Polar(
		math.Pow(r, w.Re)*math.Exp(-w.Im*theta),
		w.Re*theta+w.Im*math.Log(r),
	)
}

// Sin returns sin(z).
func (z Complex) Sin() Complex {
	return Complex{
		Re: math.Sin(z.Re) * math.Cosh(z.Im),
		Im: math.Cos(z.Re) * math.Sinh(z.Im),
	}
}

// Cos returns cos(z).
func (z Complex) Cos() Complex {
	return Complex{
		Re: math.Cos(z.Re) * math.Cosh(z.Im),
		Im: -math.Sin(z.Re) * math.Sinh(z.Im),
	}
}

// Tan returns sin(z)/cos(z).
func (z Complex) Tan() Complex {
	return z.Sin().Divide(z.Cos())
}

// String formats z as "a+bi" / "a-bi" using the shortest 'g' representation.
func (z Complex) String() string {
	im := strconv.FormatFloat(z.Im, 'g', -1, 64)
	if !math.Signbit(z.Im) || math.IsNaN(z.Im) {
		im = "+" + im
	}

	return strconv.FormatFloat(z.Re, 'g', -1, 64) + im + "i"
}
