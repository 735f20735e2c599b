// SPDX-License-Identifier: MIT

package geometry

import "math"

// Interval is the closed range [Min, Max]. An interval with a NaN bound or
// Min > Max is empty.
type Interval struct {
	Min, Max float64
}

// EmptyInterval returns the interval containing nothing.
func EmptyInterval() Interval { return Interval{Min: math.NaN(), Max: math.NaN()} }

// Between returns the interval spanning a and b in either order.
func Between(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{Min: a, Max: b}
}

// IsEmpty reports whether i contains no values.
func (i Interval) IsEmpty() bool {
	return math.IsNaN(i.Min) || math.IsNaN(i.Max) || i.Min > i.Max
}

// Contains reports whether Min ≤ t ≤ Max.
func (i Interval) Contains(t float64) bool {
	return !i.IsEmpty() && i.Min <= t && t <= i.Max
}

// Length returns Max − Min, or 0 for an empty interval.
func (i Interval) Length() float64 {
	if i.IsEmpty() {
		return 0
	}
	return i.Max - i.Min
}

// Intersect returns the overlap of i and j, possibly empty.
func (i Interval) Intersect(j Interval) Interval {
	if i.IsEmpty() || j.IsEmpty() {
		return EmptyInterval()
	}
	return Interval{Min: math.Max(i.Min, j.Min), Max: math.Min(i.Max, j.Max)}
}

// Interpolate maps t ∈ [0, 1] linearly onto i.
func (i Interval) Interpolate(t float64) float64 {
	return i.Min + t*(i.Max-i.Min)
}
