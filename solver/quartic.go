// SPDX-License-Identifier: MIT

package solver

import (
	"log/slog"
	"math"

	"github.com/bwkimmel/jmist-sub000/complexnum"
)

// depressedQuartic is y⁴ + p·y² + q·y + r, with x = y − shift.
type depressedQuartic struct {
	shift   float64
	p, q, r float64
}

// newDepressedQuartic normalizes by c4 and removes the cubic term.
func newDepressedQuartic(c0, c1, c2, c3, c4 float64) depressedQuartic {
	a, b, c, d := c3/c4, c2/c4, c1/c4, c0/c4
	aa := a * a

	return depressedQuartic{
		shift: a / 4,
		p:     -3.0/8*aa + b,
		q:     aa*a/8 - a*b/2 + c,
		r:     -3.0/256*aa*aa + aa*b/16 - a*c/4 + d,
	}
}

// Quartic returns the real roots of c0 + c1·x + c2·x² + c3·x³ + c4·x⁴ = 0
// by Ferrari's method with a resolvent cubic.
//
// Implementation:
//   - Stage 1: depress to y⁴ + p·y² + q·y + r.
//   - Stage 2: r ≈ 0 factors out y = 0, leaving the cubic y³ + p·y + q.
//   - Stage 3: otherwise take the largest real root z of the resolvent
//     cubic and split into two quadratics y² ± v·y + (z ∓ u).
//
// Behavior highlights:
//   - Up to four roots; order unspecified; repeated roots may repeat.
//   - A negative radicand in Stage 3 (beyond rounding) yields no roots.
//   - c4 == 0 falls through to Cubic.
//
// Reference: "Graphics Gems", A. Glassner (ed.), 1990, Roots3And4.
func (s Solver) Quartic(c0, c1, c2, c3, c4 float64) []float64 {
	if c4 == 0 {
		degenerate(DegreeQuartic)
		return s.Cubic(c0, c1, c2, c3)
	}

	dq := newDepressedQuartic(c0, c1, c2, c3, c4)

	var ys []float64
	if s.isZero(dq.r) {
		ys = append(s.Cubic(dq.q, dq.p, 0, 1), 0)
	} else {
		ys = s.ferrari(dq)
	}

	for i := range ys {
		ys[i] -= dq.shift
	}

	return ys
}

// ferrari solves the depressed quartic for r ≠ 0.
func (s Solver) ferrari(dq depressedQuartic) []float64 {
	zs := s.Cubic(dq.r*dq.p/2-dq.q*dq.q/8, -dq.r, -dq.p/2, 1)

	// The largest resolvent root satisfies 2z ≥ p and z² ≥ r; a smaller one
	// may not, and would drop real roots.
	z := zs[0]
	for _, zi := range zs[1:] {
		z = math.Max(z, zi)
	}

	return s.splitAt(dq, z)
}

// splitAt factors the depressed quartic into two quadratics
// y² ± v·y + (z ∓ u) at the resolvent root z.
func (s Solver) splitAt(dq depressedQuartic, z float64) []float64 {
	p, q, r := dq.p, dq.q, dq.r

	u, ok := s.sqrtClamped(z*z-r, math.Max(z*z, math.Abs(r)))
	if !ok {
		Logger().Debug("solver: quartic resolvent radicand negative",
			slog.String("term", "z²-r"), slog.Float64("value", z*z-r))
		return nil
	}
	v, ok := s.sqrtClamped(2*z-p, math.Max(math.Abs(2*z), math.Abs(p)))
	if !ok {
		Logger().Debug("solver: quartic resolvent radicand negative",
			slog.String("term", "2z-p"), slog.Float64("value", 2*z-p))
		return nil
	}
	if q < 0 {
		v = -v
	}

	ys := s.Quadratic(z-u, v, 1)
	return append(ys, s.Quadratic(z+u, -v, 1)...)
}

// roundingSlack widens Epsilon to the few ulps a computed difference of
// nearly equal operands picks up.
const roundingSlack = 16

// sqrtClamped returns √x for a difference x of operands of magnitude up to
// scale. Values within Epsilon, absolutely or relative to scale, are zero;
// ok is false when x is negative beyond that.
func (s Solver) sqrtClamped(x, scale float64) (root float64, ok bool) {
	switch {
	case s.isZero(x) || math.Abs(x) <= s.eps*roundingSlack*scale:
		return 0, true
	case x > 0:
		return math.Sqrt(x), true
	default:
		return 0, false
	}
}

// ComplexQuartic returns all four roots of c0 + c1·x + … + c4·x⁴ = 0 by
// Ferrari's general formula. Real roots carry an imaginary part of
// rounding size.
//
// Near-zero intermediates (modulus below TinyEpsilon) switch to the
// branch that avoids dividing by them:
//   - U ≈ 0: y = −5a/6 − ∛Q.
//   - W ≈ 0: the odd term vanishes and the biquadratic path is used.
//
// c4 == 0 falls through to ComplexCubic.
func (s Solver) ComplexQuartic(c0, c1, c2, c3, c4 float64) []complexnum.Complex {
	if c4 == 0 {
		degenerate(DegreeQuartic)
		return s.ComplexCubic(c0, c1, c2, c3)
	}

	dq := newDepressedQuartic(c0, c1, c2, c3, c4)
	a, b, c := dq.p, dq.q, dq.r

	if b == 0 {
		return s.biquadratic(a, c, dq.shift)
	}

	pp := -a*a/12 - c
	qq := -a*a*a/108 + a*c/3 - b*b/8

	// R = −Q/2 ± √(Q²/4 + P³/27); the larger root avoids cancellation.
	sq := complexnum.SqrtReal(qq*qq/4 + pp*pp*pp/27)
	rr := sq.MinusReal(qq / 2)
	if alt := sq.Negative().MinusReal(qq / 2); alt.Abs() > rr.Abs() {
		rr = alt
	}
	uu := rr.Cbrt()

	var y complexnum.Complex
	if uu.Abs() < s.tinyEps {
		Logger().Debug("solver: complex quartic U near zero, using cube root of Q",
			slog.Float64("abs", uu.Abs()))
		y = uu.MinusReal(5*a/6 + math.Cbrt(qq))
	} else {
		y = uu.MinusReal(5 * a / 6).Minus(complexnum.Real(pp).Divide(uu.Scale(3)))
	}

	w := y.Scale(2).PlusReal(a).Sqrt()
	if w.Abs() < s.tinyEps {
		Logger().Debug("solver: complex quartic W near zero, using biquadratic path",
			slog.Float64("abs", w.Abs()))
		return s.biquadratic(a, c, dq.shift)
	}

	base := y.Scale(2).PlusReal(3 * a)
	odd := complexnum.Real(2 * b).Divide(w)
	sPos := base.Plus(odd).Negative().Sqrt()
	sNeg := base.Minus(odd).Negative().Sqrt()

	return []complexnum.Complex{
		w.Plus(sPos).Scale(0.5).MinusReal(dq.shift),
		w.Minus(sPos).Scale(0.5).MinusReal(dq.shift),
		w.Negative().Plus(sNeg).Scale(0.5).MinusReal(dq.shift),
		w.Negative().Minus(sNeg).Scale(0.5).MinusReal(dq.shift),
	}
}

// biquadratic solves y⁴ + a·y² + c = 0 through w = y².
func (s Solver) biquadratic(a, c, shift float64) []complexnum.Complex {
	ws := s.ComplexQuadratic(c, a, 1)
	out := make([]complexnum.Complex, 0, 2*len(ws))
	for _, wi := range ws {
		y := wi.Sqrt()
		out = append(out, y.MinusReal(shift), y.Negative().MinusReal(shift))
	}

	return out
}
