// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"golang.org/x/image/math/f64"

	"github.com/bwkimmel/jmist-sub000/complexnum"
	"github.com/bwkimmel/jmist-sub000/polynomial"
)

// Matrix3 is a 3×3 matrix stored row-major.
type Matrix3 f64.Mat3

// Identity3 returns the 3×3 identity.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the element at (row, col).
func (m Matrix3) At(row, col int) (float64, error) {
	i, err := index(3, row, col)
	if err != nil {
		return 0, fmt.Errorf("Matrix3.At: %w", err)
	}
	return m[i], nil
}

// Determinant expands along the first row.
func (m Matrix3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Trace returns the sum of the diagonal.
func (m Matrix3) Trace() float64 { return m[0] + m[4] + m[8] }

// Transpose returns mᵀ.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Plus returns m + o.
func (m Matrix3) Plus(o Matrix3) Matrix3 {
	var r Matrix3
	for i := range m {
		r[i] = m[i] + o[i]
	}
	return r
}

// Minus returns m − o.
func (m Matrix3) Minus(o Matrix3) Matrix3 {
	var r Matrix3
	for i := range m {
		r[i] = m[i] - o[i]
	}
	return r
}

// Times returns the product m·o.
func (m Matrix3) Times(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[3*i+j] = m[3*i]*o[j] + m[3*i+1]*o[3+j] + m[3*i+2]*o[6+j]
		}
	}
	return r
}

// TimesVector returns m·v.
func (m Matrix3) TimesVector(v f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Inverse returns m⁻¹ as the adjugate over the determinant, or ErrSingular
// when the determinant is zero.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}, fmt.Errorf("Matrix3.Inverse: %w", ErrSingular)
	}

	return Matrix3{
		(m[4]*m[8] - m[5]*m[7]) / det,
		(m[2]*m[7] - m[1]*m[8]) / det,
		(m[1]*m[5] - m[2]*m[4]) / det,

		(m[5]*m[6] - m[3]*m[8]) / det,
		(m[0]*m[8] - m[2]*m[6]) / det,
		(m[2]*m[3] - m[0]*m[5]) / det,

		(m[3]*m[7] - m[4]*m[6]) / det,
		(m[1]*m[6] - m[0]*m[7]) / det,
		(m[0]*m[4] - m[1]*m[3]) / det,
	}, nil
}

// principalMinors2 is the sum of the three 2×2 principal minors.
func (m Matrix3) principalMinors2() float64 {
	return m[0]*m[4] - m[1]*m[3] +
		m[0]*m[8] - m[2]*m[6] +
		m[4]*m[8] - m[5]*m[7]
}

// Characteristic returns det(m − λI) = −λ³ + tr·λ² − e₂·λ + det, where e₂
// is the sum of the 2×2 principal minors.
func (m Matrix3) Characteristic() polynomial.Polynomial {
	return polynomial.New(m.Determinant(), -m.principalMinors2(), m.Trace(), -1)
}

// Eigenvalues returns the real eigenvalues (one to three).
func (m Matrix3) Eigenvalues() ([]float64, error) {
	return m.Characteristic().Roots()
}

// ComplexEigenvalues returns all three eigenvalues.
func (m Matrix3) ComplexEigenvalues() ([]complexnum.Complex, error) {
	return m.Characteristic().ComplexRoots()
}

// SymmetricEigenvalues returns the eigenvalues of a symmetric m in ascending
// order by Jacobi rotation.
func (m Matrix3) SymmetricEigenvalues(tol float64, maxIter int) ([]float64, error) {
	vals, err := jacobiEigenvalues(m[:], 3, tol, maxIter)
	if err != nil {
		return nil, fmt.Errorf("Matrix3.SymmetricEigenvalues: %w", err)
	}
	return vals, nil
}
