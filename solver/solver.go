// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"log/slog"

	"github.com/bwkimmel/jmist-sub000/complexnum"
)

// defaultSolver backs the package-level functions.
var defaultSolver = New()

// Roots returns the real roots of Σ c[i]·xⁱ = 0 with the default tolerances.
// See Solver.Roots.
func Roots(c []float64) ([]float64, error) { return defaultSolver.Roots(c) }

// ComplexRoots returns the complex roots of Σ c[i]·xⁱ = 0 with the default
// tolerances. See Solver.ComplexRoots.
func ComplexRoots(c []float64) ([]complexnum.Complex, error) { return defaultSolver.ComplexRoots(c) }

// Linear returns the real root of c0 + c1·x = 0, if any.
func Linear(c0, c1 float64) []float64 { return defaultSolver.Linear(c0, c1) }

// Quadratic returns the real roots of c0 + c1·x + c2·x² = 0.
func Quadratic(c0, c1, c2 float64) []float64 { return defaultSolver.Quadratic(c0, c1, c2) }

// Cubic returns the real roots of c0 + c1·x + c2·x² + c3·x³ = 0.
func Cubic(c0, c1, c2, c3 float64) []float64 { return defaultSolver.Cubic(c0, c1, c2, c3) }

// Quartic returns the real roots of c0 + c1·x + … + c4·x⁴ = 0.
func Quartic(c0, c1, c2, c3, c4 float64) []float64 {
	return defaultSolver.Quartic(c0, c1, c2, c3, c4)
}

// ComplexLinear returns the root of c0 + c1·x = 0 as a Complex, if any.
func ComplexLinear(c0, c1 float64) []complexnum.Complex {
	return defaultSolver.ComplexLinear(c0, c1)
}

// ComplexQuadratic returns both roots of c0 + c1·x + c2·x² = 0.
func ComplexQuadratic(c0, c1, c2 float64) []complexnum.Complex {
	return defaultSolver.ComplexQuadratic(c0, c1, c2)
}

// ComplexCubic returns all three roots of c0 + c1·x + c2·x² + c3·x³ = 0.
func ComplexCubic(c0, c1, c2, c3 float64) []complexnum.Complex {
	return defaultSolver.ComplexCubic(c0, c1, c2, c3)
}

// ComplexQuartic returns all four roots of c0 + c1·x + … + c4·x⁴ = 0.
func ComplexQuartic(c0, c1, c2, c3, c4 float64) []complexnum.Complex {
	return defaultSolver.ComplexQuartic(c0, c1, c2, c3, c4)
}

// Roots returns the real roots of Σ c[i]·xⁱ = 0.
//
// Implementation:
//   - Stage 1: map len(c) to a Degree (ErrUnsupportedDegree above quartic).
//   - Stage 2: call the fixed-degree solver; each one falls through to the
//     next lower degree when its leading coefficient is exactly zero.
//
// Behavior highlights:
//   - Zero or one coefficient: no roots, nil error.
//   - Fewer roots than the degree when some roots are complex.
//   - Order is unspecified; repeated roots may be reported once.
//
// Complexity: O(1).
func (s Solver) Roots(c []float64) ([]float64, error) {
	d, err := DegreeOf(len(c))
	if err != nil {
		return nil, fmt.Errorf("Roots: %w", err)
	}

	switch d {
	case DegreeLinear:
		return s.Linear(c[0], c[1]), nil
	case DegreeQuadratic:
		return s.Quadratic(c[0], c[1], c[2]), nil
	case DegreeCubic:
		return s.Cubic(c[0], c[1], c[2], c[3]), nil
	case DegreeQuartic:
		return s.Quartic(c[0], c[1], c[2], c[3], c[4]), nil
	default:
		return nil, nil
	}
}

// ComplexRoots returns the complex roots of Σ c[i]·xⁱ = 0.
//
// Behavior highlights:
//   - Exactly len(c)-1 values when the leading coefficient is non-zero,
//     repeated roots included.
//   - Zero or one coefficient: no roots, nil error.
//   - More than five coefficients: ErrUnsupportedDegree.
//
// Complexity: O(1).
func (s Solver) ComplexRoots(c []float64) ([]complexnum.Complex, error) {
	d, err := DegreeOf(len(c))
	if err != nil {
		return nil, fmt.Errorf("ComplexRoots: %w", err)
	}

	switch d {
	case DegreeLinear:
		return s.ComplexLinear(c[0], c[1]), nil
	case DegreeQuadratic:
		return s.ComplexQuadratic(c[0], c[1], c[2]), nil
	case DegreeCubic:
		return s.ComplexCubic(c[0], c[1], c[2], c[3]), nil
	case DegreeQuartic:
		return s.ComplexQuartic(c[0], c[1], c[2], c[3], c[4]), nil
	default:
		return nil, nil
	}
}

// degenerate records a fall-through caused by a zero leading coefficient.
func degenerate(from Degree) {
	Logger().Debug("solver: zero leading coefficient",
		slog.String("from", from.String()),
		slog.String("to", (from-1).String()))
}
