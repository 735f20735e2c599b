// SPDX-License-Identifier: MIT

package mathutil

// Tolerance ladder, smallest first.
const (
	// TinyEpsilon guards divisions by values that are numerically zero.
	TinyEpsilon = 1e-12

	// SmallEpsilon is a tight tolerance for well-conditioned comparisons.
	SmallEpsilon = 1e-9

	// Epsilon is the default tolerance of IsZero and Equal.
	Epsilon = 1e-6

	// BigEpsilon is a loose tolerance for accumulated error.
	BigEpsilon = 1e-4
)

// MachineEpsilon is the distance from 1.0 to the next larger float64.
const MachineEpsilon = 0x1p-52
