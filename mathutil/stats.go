// SPDX-License-Identifier: MIT

package mathutil

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sum returns the sum of values (0 for empty input).
func Sum(values []float64) float64 {
	return floats.Sum(values)
}

// Product returns the product of values (1 for empty input).
func Product(values []float64) float64 {
	return floats.Prod(values)
}

// Mean returns the arithmetic mean, or NaN for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return stat.Mean(values, nil)
}

// Min returns the smallest value, or NaN for empty input.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return floats.Min(values)
}

// Max returns the largest value, or NaN for empty input.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return floats.Max(values)
}

// CumSum returns a new slice whose i-th entry is values[0]+…+values[i].
// The input is not modified.
func CumSum(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	return floats.CumSum(out, values)
}

// Normalize returns a copy of weights scaled to sum to one. A zero sum
// yields NaN/Inf entries; callers that can see all-zero weights must check.
func Normalize(weights []float64) []float64 {
	out := make([]float64, len(weights))
	copy(out, weights)
	floats.Scale(1/floats.Sum(out), out)

	return out
}
