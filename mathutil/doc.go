// SPDX-License-Identifier: MIT

// Package mathutil collects the small numeric helpers shared by the rest of
// the module: tolerance constants, tolerant comparisons, range tests,
// piecewise-linear interpolation, simple statistics and seeded random
// streams.
//
// Tolerances:
//
//	TinyEpsilon    = 1e-12   near-zero complex moduli (solver fallbacks)
//	SmallEpsilon   = 1e-9
//	Epsilon        = 1e-6    default for IsZero / Equal
//	BigEpsilon     = 1e-4
//	MachineEpsilon = ulp(1)  zero tests inside the closed-form solvers
//
// Statistics delegate to gonum (floats, stat); this package only adds the
// empty-input policy (NaN for Mean/Min/Max, 0 for Sum).
//
// Random streams are never process-global: callers construct a *rand.Rand
// with NewRNG and pass it explicitly.
package mathutil
