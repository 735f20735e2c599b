// SPDX-License-Identifier: MIT

// Package solver: functional configuration.
//
// Two tolerances drive the case analysis:
//   - eps: zero test for the cubic discriminant, the cubic inflection
//     value and the quartic's absolute term / resolvent radicands.
//   - tinyEps: modulus below which an intermediate complex value in the
//     complex quartic is treated as zero instead of being divided by.
//
// Option constructors panic on nonsensical values (programmer error).

package solver

import (
	"math"

	"github.com/bwkimmel/jmist-sub000/mathutil"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the zero test used inside the cubic and quartic solvers.
	DefaultEpsilon = mathutil.MachineEpsilon

	// DefaultTinyEpsilon is the complex-quartic fallback threshold.
	DefaultTinyEpsilon = mathutil.TinyEpsilon
)

const (
	panicEpsilonInvalid     = "solver: WithEpsilon: eps must be finite, non-negative"
	panicTinyEpsilonInvalid = "solver: WithTinyEpsilon: eps must be finite, non-negative"
)

// Option mutates a Solver under construction.
type Option func(*Solver)

// WithEpsilon sets the zero tolerance of the cubic/quartic case analysis.
// Panics if eps is NaN, infinite or negative.
//
// Larger values merge nearly-equal roots sooner (a near-double root is
// reported once); smaller values keep them apart at the cost of stability.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(s *Solver) { s.eps = eps }
}

// WithTinyEpsilon sets the modulus threshold of the complex-quartic
// fallbacks. Panics if eps is NaN, infinite or negative.
func WithTinyEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicTinyEpsilonInvalid)
	}

	return func(s *Solver) { s.tinyEps = eps }
}

// Solver is an immutable root-finder configuration. Build it with New; the
// zero value uses exact (zero-width) tolerances.
type Solver struct {
	eps     float64 // zero test in cubic/quartic
	tinyEps float64 // complex quartic near-zero modulus
}

// New resolves opts against the defaults, last writer wins.
//
// Complexity: O(len(opts)).
func New(opts ...Option) Solver {
	s := Solver{
		eps:     DefaultEpsilon,
		tinyEps: DefaultTinyEpsilon,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// Epsilon returns the configured zero tolerance.
func (s Solver) Epsilon() float64 { return s.eps }

// TinyEpsilon returns the configured complex fallback threshold.
func (s Solver) TinyEpsilon() float64 { return s.tinyEps }

// isZero is the tolerance test shared by the cubic and quartic.
func (s Solver) isZero(x float64) bool {
	return mathutil.IsZeroEps(x, s.eps)
}
