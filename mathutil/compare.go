// SPDX-License-Identifier: MIT

package mathutil

import "math"

// IsZero reports whether |x| < Epsilon.
func IsZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// IsZeroEps reports whether |x| < eps.
func IsZeroEps(x, eps float64) bool {
	return math.Abs(x) < eps
}

// Equal reports whether |x-y| < Epsilon.
func Equal(x, y float64) bool {
	return math.Abs(x-y) < Epsilon
}

// EqualEps reports whether |x-y| < eps.
func EqualEps(x, y, eps float64) bool {
	return math.Abs(x-y) < eps
}

// AllEqual reports whether every value lies within eps of every other one.
// Fewer than two values are trivially equal.
func AllEqual(values []float64, eps float64) bool {
	if len(values) < 2 {
		return true
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		if !EqualEps(lo, hi, eps) {
			return false
		}
	}

	return true
}

// Signum returns -1, 0 or +1 according to the sign of x (NaN passes through).
func Signum(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x // keeps ±0 and NaN
	}
}

// Sqr returns x*x.
func Sqr(x float64) float64 { return x * x }

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// InRangeOO reports lo < x < hi.
func InRangeOO(x, lo, hi float64) bool { return lo < x && x < hi }

// InRangeCO reports lo <= x < hi.
func InRangeCO(x, lo, hi float64) bool { return lo <= x && x < hi }

// InRangeCC reports lo <= x <= hi.
func InRangeCC(x, lo, hi float64) bool { return lo <= x && x <= hi }

// InRangeOC reports lo < x <= hi.
func InRangeOC(x, lo, hi float64) bool { return lo < x && x <= hi }
