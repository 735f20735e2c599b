// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bwkimmel/jmist-sub000/complexnum"
	"github.com/bwkimmel/jmist-sub000/solver"
)

const panicNegativeExponent = "polynomial: Coefficient: negative exponent"

// DefaultVariable is the variable name used by String.
const DefaultVariable = "x"

// Polynomial is Σ coeff[i]·xⁱ. The zero value is the zero polynomial.
type Polynomial struct {
	coeff []float64 // ascending by exponent; last entry non-zero
}

// New builds a polynomial from coefficients in ascending order by exponent.
// Trailing zeros are trimmed and the input is copied.
func New(coeffs ...float64) Polynomial {
	n := trimmedLen(coeffs)
	if n == 0 {
		return Polynomial{}
	}

	c := make([]float64, n)
	copy(c, coeffs)

	return Polynomial{coeff: c}
}

// Zero returns the zero polynomial.
func Zero() Polynomial { return Polynomial{} }

// FromRoots returns the monic polynomial ∏(x − r).
func FromRoots(roots ...float64) Polynomial {
	c := make([]float64, 1, len(roots)+1)
	c[0] = 1
	for _, r := range roots {
		c = append(c, 0)
		for i := len(c) - 1; i > 0; i-- {
			c[i] = c[i-1] - r*c[i]
		}
		c[0] *= -r
	}

	return New(c...)
}

// trimmedLen is the length of c without its trailing zeros.
func trimmedLen(c []float64) int {
	n := len(c)
	for n > 0 && c[n-1] == 0 {
		n--
	}
	return n
}

// Coefficient returns the coefficient of x^exp, or 0 beyond the degree.
// Panics if exp is negative.
func (p Polynomial) Coefficient(exp int) float64 {
	if exp < 0 {
		panic(panicNegativeExponent)
	}
	if exp >= len(p.coeff) {
		return 0
	}

	return p.coeff[exp]
}

// Coefficients returns a copy of the canonical coefficients, ascending by
// exponent. The zero polynomial yields an empty slice.
func (p Polynomial) Coefficients() []float64 {
	return append([]float64{}, p.coeff...)
}

// Degree is the highest exponent with a non-zero coefficient, or −1 for
// the zero polynomial.
func (p Polynomial) Degree() int { return len(p.coeff) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeff) == 0 }

// At evaluates p at x, accumulating low to high degree with a running
// power of x.
func (p Polynomial) At(x float64) float64 {
	sum, pow := 0.0, 1.0
	for _, c := range p.coeff {
		sum += c * pow
		pow *= x
	}

	return sum
}

// AtComplex evaluates p at z in the same order as At.
func (p Polynomial) AtComplex(z complexnum.Complex) complexnum.Complex {
	sum, pow := complexnum.Zero, complexnum.One
	for _, c := range p.coeff {
		sum = sum.Plus(pow.Scale(c))
		pow = pow.Times(z)
	}

	return sum
}

// Plus returns p + q.
func (p Polynomial) Plus(q Polynomial) Polynomial {
	return combine(p, q, 1)
}

// Minus returns p − q.
func (p Polynomial) Minus(q Polynomial) Polynomial {
	return combine(p, q, -1)
}

// combine returns p + sign·q, trimmed.
func combine(p, q Polynomial, sign float64) Polynomial {
	n := max(len(p.coeff), len(q.coeff))
	c := make([]float64, n)
	copy(c, p.coeff)
	for i, v := range q.coeff {
		c[i] += sign * v
	}

	return Polynomial{coeff: c[:trimmedLen(c)]}
}

// Times returns the product p·q by full convolution of the coefficients.
// Complexity: O(deg p · deg q).
func (p Polynomial) Times(q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Polynomial{}
	}

	c := make([]float64, len(p.coeff)+len(q.coeff)-1)
	for i, a := range p.coeff {
		for j, b := range q.coeff {
			c[i+j] += a * b
		}
	}

	// Underflow can zero the leading product.
	return Polynomial{coeff: c[:trimmedLen(c)]}
}

// Equal reports whether p and q have identical canonical coefficients.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeff) != len(q.coeff) {
		return false
	}
	for i := range p.coeff {
		if p.coeff[i] != q.coeff[i] {
			return false
		}
	}

	return true
}

// Roots returns the real roots of p = 0. The zero and constant
// polynomials have none; degree above 4 reports solver.ErrUnsupportedDegree.
func (p Polynomial) Roots() ([]float64, error) {
	roots, err := solver.Roots(p.coeff)
	if err != nil {
		return nil, fmt.Errorf("Polynomial.Roots(degree %d): %w", p.Degree(), err)
	}

	return roots, nil
}

// ComplexRoots returns all Degree() complex roots of p = 0.
func (p Polynomial) ComplexRoots() ([]complexnum.Complex, error) {
	roots, err := solver.ComplexRoots(p.coeff)
	if err != nil {
		return nil, fmt.Errorf("Polynomial.ComplexRoots(degree %d): %w", p.Degree(), err)
	}

	return roots, nil
}

// String implements fmt.Stringer using DefaultVariable.
func (p Polynomial) String() string { return p.Format(DefaultVariable) }

// Format renders every term up to the degree, lowest exponent first:
//
//	New(-6, 11, 0, 1).Format("t") == "-6t^0 + 11t^1 + 0t^2 + 1t^3"
//
// The zero polynomial renders as "0".
func (p Polynomial) Format(variable string) string {
	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder
	for exp, c := range p.coeff {
		switch {
		case exp == 0:
			sb.WriteString(formatFloat(c))
		case math.Signbit(c):
			sb.WriteString(" - ")
			sb.WriteString(formatFloat(-c))
		default:
			sb.WriteString(" + ")
			sb.WriteString(formatFloat(c))
		}
		sb.WriteString(variable)
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(exp))
	}

	return sb.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
