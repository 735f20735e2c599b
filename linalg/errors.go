// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Algorithms return these sentinels, wrapped with call-site context where it
// helps; tests match them with errors.Is.

package linalg

import "errors"

var (
	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. At returns this rather than panicking.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNotSymmetric signals that a symmetric matrix was required but
	// |a[i][j] − a[j][i]| exceeded the tolerance.
	ErrNotSymmetric = errors.New("linalg: matrix is not symmetric within tol")

	// ErrEigenFailed indicates that the Jacobi routine did not converge
	// within the given tolerance and iteration budget.
	ErrEigenFailed = errors.New("linalg: eigen decomposition did not converge")

	// ErrBadParameter indicates a NaN/negative tolerance or a non-positive
	// iteration budget.
	ErrBadParameter = errors.New("linalg: invalid tolerance or iteration budget")
)
