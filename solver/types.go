// SPDX-License-Identifier: MIT

package solver

import "fmt"

// Degree selects the closed-form method for a coefficient count.
type Degree int

const (
	// DegreeConstant covers zero or one coefficient: no roots.
	DegreeConstant Degree = iota
	// DegreeLinear covers two coefficients.
	DegreeLinear
	// DegreeQuadratic covers three coefficients.
	DegreeQuadratic
	// DegreeCubic covers four coefficients.
	DegreeCubic
	// DegreeQuartic covers five coefficients.
	DegreeQuartic
)

// MaxCoefficients is the largest coefficient count the solver accepts.
const MaxCoefficients = int(DegreeQuartic) + 1

// DegreeOf maps a coefficient count to its Degree.
// Returns ErrUnsupportedDegree for count > MaxCoefficients or count < 0.
func DegreeOf(count int) (Degree, error) {
	switch {
	case count < 0 || count > MaxCoefficients:
		return 0, fmt.Errorf("DegreeOf(%d): %w", count, ErrUnsupportedDegree)
	case count <= 1:
		return DegreeConstant, nil
	default:
		return Degree(count - 1), nil
	}
}

// String implements fmt.Stringer.
func (d Degree) String() string {
	switch d {
	case DegreeConstant:
		return "constant"
	case DegreeLinear:
		return "linear"
	case DegreeQuadratic:
		return "quadratic"
	case DegreeCubic:
		return "cubic"
	case DegreeQuartic:
		return "quartic"
	default:
		return fmt.Sprintf("Degree(%d)", int(d))
	}
}
