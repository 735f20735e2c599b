// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/bwkimmel/jmist-sub000/complexnum"
)

// Linear returns the root of c0 + c1·x = 0, or nil when c1 == 0.
// A constant polynomial has no root set here, even when c0 == 0.
func (s Solver) Linear(c0, c1 float64) []float64 {
	if c1 == 0 {
		return nil
	}

	return []float64{-c0 / c1}
}

// Quadratic returns the real roots of c0 + c1·x + c2·x² = 0.
//
//	disc > 0: two roots, ascending when c2 > 0
//	disc = 0: one (double) root
//	disc < 0: none
//
// The discriminant is compared exactly; a near-double root produced by
// rounding is reported twice. c2 == 0 falls through to Linear.
func (s Solver) Quadratic(c0, c1, c2 float64) []float64 {
	if c2 == 0 {
		degenerate(DegreeQuadratic)
		return s.Linear(c0, c1)
	}

	disc := c1*c1 - 4*c2*c0
	switch {
	case disc > 0:
		h := math.Sqrt(disc)
		d := 2 * c2
		return []float64{(-c1 - h) / d, (-c1 + h) / d}
	case disc < 0:
		return nil
	default:
		return []float64{-c1 / (2 * c2)}
	}
}

// ComplexLinear is Linear with a complex result.
func (s Solver) ComplexLinear(c0, c1 float64) []complexnum.Complex {
	if c1 == 0 {
		return nil
	}

	return []complexnum.Complex{complexnum.Real(-c0 / c1)}
}

// ComplexQuadratic returns both roots of c0 + c1·x + c2·x² = 0, repeated
// when the discriminant is zero and conjugate when it is negative.
func (s Solver) ComplexQuadratic(c0, c1, c2 float64) []complexnum.Complex {
	if c2 == 0 {
		degenerate(DegreeQuadratic)
		return s.ComplexLinear(c0, c1)
	}

	h := complexnum.SqrtReal(c1*c1 - 4*c2*c0)
	d := 2 * c2

	return []complexnum.Complex{
		h.Negative().MinusReal(c1).DivideReal(d),
		h.MinusReal(c1).DivideReal(d),
	}
}
