// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/bwkimmel/jmist-sub000/complexnum"
	"github.com/bwkimmel/jmist-sub000/mathutil"
)

// depressedCubic holds Nickalls' quantities for c0 + c1·x + c2·x² + c3·x³:
// the inflection point (xN, yN) and the squared half-distances that decide
// how many real roots exist.
type depressedCubic struct {
	xN, yN  float64
	twoA    float64 // 2·c3
	deltaSq float64 // δ²
	hSq     float64 // h² = (2a)²·δ⁶
	dis     float64 // yN² − h²
}

func newDepressedCubic(c0, c1, c2, c3 float64) depressedCubic {
	xN := -c2 / (3 * c3)
	twoA := 2 * c3
	deltaSq := (c2*c2 - 3*c3*c1) / (9 * c3 * c3)
	hSq := twoA * twoA * deltaSq * deltaSq * deltaSq
	yN := c0 + xN*(c1+xN*(c2+c3*xN))

	return depressedCubic{
		xN:      xN,
		yN:      yN,
		twoA:    twoA,
		deltaSq: deltaSq,
		hSq:     hSq,
		dis:     yN*yN - hSq,
	}
}

// signedCbrt is the real cube root of r/(2a) with the sign handling of
// Nickalls' single-root branch.
func (d depressedCubic) signedCbrt(r float64) float64 {
	sg := mathutil.Signum(r)
	return -sg * math.Cbrt(sg*r/d.twoA)
}

// Cubic returns the real roots of c0 + c1·x + c2·x² + c3·x³ = 0 using
// Nickalls' method.
//
// Behavior highlights:
//   - One root when the discriminant is positive.
//   - Two roots (one of them double) when it is zero within Epsilon
//     relative to yN² and h², or one root when the inflection point is
//     itself a triple root. The relative test keeps cubics whose roots are
//     all small (say 1e-3 apart) from collapsing to a double root.
//   - Three roots when negative, the largest first.
//   - c3 == 0 falls through to Quadratic.
//
// Reference: R.W.D. Nickalls, "A new approach to solving the cubic:
// Cardan's solution revealed", The Mathematical Gazette 77 (1993).
func (s Solver) Cubic(c0, c1, c2, c3 float64) []float64 {
	if c3 == 0 {
		degenerate(DegreeCubic)
		return s.Quadratic(c0, c1, c2)
	}

	d := newDepressedCubic(c0, c1, c2, c3)

	switch {
	case s.discriminantZero(d):
		delta3 := d.yN / d.twoA
		if s.isZero(delta3) {
			return []float64{d.xN}
		}
		delta := math.Cbrt(delta3)
		return []float64{d.xN + delta, d.xN - 2*delta}

	case d.dis > 0:
		sq := math.Sqrt(d.dis)
		return []float64{d.xN + d.signedCbrt(d.yN-sq) + d.signedCbrt(d.yN+sq)}

	default:
		// h keeps the sign of c3; rounding can push the cosine argument
		// marginally outside [-1, 1].
		delta := math.Sqrt(d.deltaSq)
		h := d.twoA * d.deltaSq * delta
		theta := math.Acos(mathutil.Clamp(-d.yN/h, -1, 1)) / 3
		twoD := 2 * delta
		return []float64{
			d.xN + twoD*math.Cos(theta),
			d.xN + twoD*math.Cos(2*math.Pi/3-theta),
			d.xN + twoD*math.Cos(2*math.Pi/3+theta),
		}
	}
}

// discriminantZero compares yN² − h² against the larger of its operands, so
// the test does not depend on the scale of the roots.
func (s Solver) discriminantZero(d depressedCubic) bool {
	return math.Abs(d.dis) <= s.eps*roundingSlack*math.Max(d.yN*d.yN, d.hSq)
}

// cubeRootOfUnity is e^(2πi/3).
var cubeRootOfUnity = complexnum.New(-0.5, math.Sqrt(3)/2)

// ComplexCubic returns all three roots of c0 + c1·x + c2·x² + c3·x³ = 0 by
// Cardano's formula. Real roots carry an imaginary part of rounding size.
//
// The two Cardano cube roots are tied by z1·z2 = −P, so only one principal
// cube root is taken; the other follows from it. c3 == 0 falls through to
// ComplexQuadratic.
func (s Solver) ComplexCubic(c0, c1, c2, c3 float64) []complexnum.Complex {
	if c3 == 0 {
		degenerate(DegreeCubic)
		return s.ComplexQuadratic(c0, c1, c2)
	}

	a, b, c := c2/c3, c1/c3, c0/c3
	shift := a / 3
	third := b / 3

	p := third - shift*shift
	q := c/2 + shift*shift*shift - 1.5*shift*third
	sqrtD := complexnum.SqrtReal(q*q + p*p*p)

	// Pick the larger radicand to keep z1 away from cancellation.
	w1 := sqrtD.MinusReal(q)
	w2 := sqrtD.Negative().MinusReal(q)
	if w2.Abs() > w1.Abs() {
		w1 = w2
	}

	z1 := w1.Cbrt()
	z2 := complexnum.Zero
	if z1.Abs() != 0 {
		z2 = complexnum.Real(-p).Divide(z1)
	}

	zeta := cubeRootOfUnity
	zetaBar := zeta.Conjugate()

	return []complexnum.Complex{
		z1.Plus(z2).MinusReal(shift),
		zeta.Times(z1).Plus(zetaBar.Times(z2)).MinusReal(shift),
		zetaBar.Times(z1).Plus(zeta.Times(z2)).MinusReal(shift),
	}
}
