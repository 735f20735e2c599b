// SPDX-License-Identifier: MIT

// Package linalg provides small fixed-size real matrices (2×2, 3×3, 4×4)
// and their eigenvalues.
//
// What & Why:
//
//	Closed-form root finding is exact enough for the characteristic
//	polynomial of a matrix this small, so eigenvalues come straight from
//	det(A − λI) expanded into coefficients and handed to package solver.
//	SymmetricEigenvalues runs the Jacobi rotation method instead; it is
//	iterative, slower and independent of the closed-form path, which makes
//	it the natural cross-check for symmetric input.
//
// Storage:
//
//	Matrix2  [4]float64   row-major
//	Matrix3  f64.Mat3     row-major (golang.org/x/image/math/f64)
//	Matrix4  f64.Mat4     row-major
//
// All matrices are values: every operation returns a new matrix.
//
// Errors:
//
//	ErrOutOfRange    At with a row or column outside the matrix
//	ErrSingular      Inverse of a matrix with zero determinant
//	ErrNotSymmetric  Jacobi on a non-symmetric matrix
//	ErrEigenFailed   Jacobi did not converge within maxIter sweeps
//	ErrBadParameter  Jacobi with a negative/NaN tolerance or maxIter < 1
package linalg
