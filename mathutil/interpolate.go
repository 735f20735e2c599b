// SPDX-License-Identifier: MIT

package mathutil

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Interpolate returns a + t*(b-a). t is not clamped.
func Interpolate(a, b, t float64) float64 {
	return a + t*(b-a)
}

// InterpolatePoints evaluates the line through (x0,y0) and (x1,y1) at x.
func InterpolatePoints(x0, y0, x1, y1, x float64) float64 {
	return Interpolate(y0, y1, (x-x0)/(x1-x0))
}

// BilinearInterpolate blends the four corner values of the unit square at
// (t, u): v00 at (0,0), v10 at (1,0), v01 at (0,1), v11 at (1,1).
func BilinearInterpolate(v00, v10, v01, v11, t, u float64) float64 {
	return Interpolate(Interpolate(v00, v10, t), Interpolate(v01, v11, t), u)
}

// checkTable validates a piecewise-linear table: equal non-zero lengths and
// strictly increasing abscissae.
func checkTable(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("table %d/%d: %w", len(xs), len(ys), ErrLengthMismatch)
	}
	if len(xs) == 0 {
		return ErrEmptyInput
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return fmt.Errorf("table at %d: %w", i, ErrNotIncreasing)
		}
	}

	return nil
}

// InterpolateTable evaluates the piecewise-linear function through
// (xs[i], ys[i]) at x. Outside [xs[0], xs[n-1]] the end values are held.
//
// Complexity: O(n) validation + O(log n) lookup.
func InterpolateTable(xs, ys []float64, x float64) (float64, error) {
	if err := checkTable(xs, ys); err != nil {
		return 0, fmt.Errorf("InterpolateTable: %w", err)
	}
	n := len(xs)
	if x <= xs[0] {
		return ys[0], nil
	}
	if x >= xs[n-1] {
		return ys[n-1], nil
	}

	// xs[0] < x < xs[n-1], so 1 <= j <= n-1
	j := sort.SearchFloat64s(xs, x)
	if xs[j] == x {
		return ys[j], nil
	}

	return InterpolatePoints(xs[j-1], ys[j-1], xs[j], ys[j], x), nil
}

// InterpolateWrapped treats the table as one period of a periodic function
// with period xs[n-1]-xs[0]. The sample at xs[n-1] is identified with the
// one at xs[0], so ys[n-1] is never read.
func InterpolateWrapped(xs, ys []float64, x float64) (float64, error) {
	if err := checkTable(xs, ys); err != nil {
		return 0, fmt.Errorf("InterpolateWrapped: %w", err)
	}
	n := len(xs)
	if n == 1 {
		return ys[0], nil
	}

	x0, x1 := xs[0], xs[n-1]
	period := x1 - x0
	x -= period * math.Floor((x-x0)/period)

	j := sort.SearchFloat64s(xs, x)
	switch {
	case j == 0, j >= n-1 && x >= x1:
		// rounding may land exactly on either end of the period
		return ys[0], nil
	case xs[j] == x:
		return ys[j], nil
	}

	yj := ys[j]
	if j == n-1 {
		yj = ys[0]
	}

	return InterpolatePoints(xs[j-1], ys[j-1], xs[j], yj, x), nil
}

// Trapz integrates the piecewise-linear function through (x[i], y[i]) with
// the trapezoidal rule. A single sample integrates to zero.
func Trapz(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("Trapz %d/%d: %w", len(x), len(y), ErrLengthMismatch)
	}
	switch len(y) {
	case 0:
		return 0, fmt.Errorf("Trapz: %w", ErrEmptyInput)
	case 1:
		return 0, nil
	}
	if !sort.Float64sAreSorted(x) {
		return 0, fmt.Errorf("Trapz: %w", ErrNotIncreasing)
	}

	return integrate.Trapezoidal(x, y), nil
}

// TrapzUniform integrates y sampled at unit spacing.
func TrapzUniform(y []float64) (float64, error) {
	switch len(y) {
	case 0:
		return 0, fmt.Errorf("TrapzUniform: %w", ErrEmptyInput)
	case 1:
		return 0, nil
	}
	x := floats.Span(make([]float64, len(y)), 0, float64(len(y)-1))

	return integrate.Trapezoidal(x, y), nil
}
