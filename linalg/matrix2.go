// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/bwkimmel/jmist-sub000/complexnum"
	"github.com/bwkimmel/jmist-sub000/polynomial"
)

// Matrix2 is a 2×2 matrix stored row-major: {a00, a01, a10, a11}.
type Matrix2 [4]float64

// Identity2 returns the 2×2 identity.
func Identity2() Matrix2 { return Matrix2{1, 0, 0, 1} }

// At returns the element at (row, col).
func (m Matrix2) At(row, col int) (float64, error) {
	i, err := index(2, row, col)
	if err != nil {
		return 0, fmt.Errorf("Matrix2.At: %w", err)
	}
	return m[i], nil
}

// Determinant returns a00·a11 − a01·a10.
func (m Matrix2) Determinant() float64 { return m[0]*m[3] - m[1]*m[2] }

// Trace returns a00 + a11.
func (m Matrix2) Trace() float64 { return m[0] + m[3] }

// Transpose returns mᵀ.
func (m Matrix2) Transpose() Matrix2 { return Matrix2{m[0], m[2], m[1], m[3]} }

// Plus returns m + o.
func (m Matrix2) Plus(o Matrix2) Matrix2 {
	return Matrix2{m[0] + o[0], m[1] + o[1], m[2] + o[2], m[3] + o[3]}
}

// Minus returns m − o.
func (m Matrix2) Minus(o Matrix2) Matrix2 {
	return Matrix2{m[0] - o[0], m[1] - o[1], m[2] - o[2], m[3] - o[3]}
}

// Times returns the product m·o.
func (m Matrix2) Times(o Matrix2) Matrix2 {
	return Matrix2{
		m[0]*o[0] + m[1]*o[2], m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2], m[2]*o[1] + m[3]*o[3],
	}
}

// Inverse returns m⁻¹, or ErrSingular when the determinant is zero.
func (m Matrix2) Inverse() (Matrix2, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix2{}, fmt.Errorf("Matrix2.Inverse: %w", ErrSingular)
	}

	return Matrix2{m[3] / det, -m[1] / det, -m[2] / det, m[0] / det}, nil
}

// Characteristic returns det(m − λI) = λ² − tr·λ + det.
func (m Matrix2) Characteristic() polynomial.Polynomial {
	return polynomial.New(m.Determinant(), -m.Trace(), 1)
}

// Eigenvalues returns the real eigenvalues (zero, one or two).
func (m Matrix2) Eigenvalues() ([]float64, error) {
	return m.Characteristic().Roots()
}

// ComplexEigenvalues returns both eigenvalues, repeated when equal.
func (m Matrix2) ComplexEigenvalues() ([]complexnum.Complex, error) {
	return m.Characteristic().ComplexRoots()
}

// SymmetricEigenvalues returns the eigenvalues of a symmetric m in ascending
// order by Jacobi rotation. See jacobiEigenvalues.
func (m Matrix2) SymmetricEigenvalues(tol float64, maxIter int) ([]float64, error) {
	vals, err := jacobiEigenvalues(m[:], 2, tol, maxIter)
	if err != nil {
		return nil, fmt.Errorf("Matrix2.SymmetricEigenvalues: %w", err)
	}
	return vals, nil
}
