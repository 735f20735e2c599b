// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"golang.org/x/image/math/f64"

	"github.com/bwkimmel/jmist-sub000/complexnum"
	"github.com/bwkimmel/jmist-sub000/polynomial"
)

// Matrix4 is a 4×4 matrix stored row-major. As a quadric form it is
// symmetric and Dot(v, v) is its value at a homogeneous point v.
type Matrix4 f64.Mat4

// Identity4 returns the 4×4 identity.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at (row, col).
func (m Matrix4) At(row, col int) (float64, error) {
	i, err := index(4, row, col)
	if err != nil {
		return 0, fmt.Errorf("Matrix4.At: %w", err)
	}
	return m[i], nil
}

// minors2 holds the six 2×2 determinants of the top two rows (s) and of
// the bottom two rows (c), the Laplace expansion used by Determinant and
// Inverse.
type minors2 struct {
	s0, s1, s2, s3, s4, s5 float64
	c0, c1, c2, c3, c4, c5 float64
}

func (m Matrix4) minors() minors2 {
	return minors2{
		s0: m[0]*m[5] - m[4]*m[1],
		s1: m[0]*m[6] - m[4]*m[2],
		s2: m[0]*m[7] - m[4]*m[3],
		s3: m[1]*m[6] - m[5]*m[2],
		s4: m[1]*m[7] - m[5]*m[3],
		s5: m[2]*m[7] - m[6]*m[3],

		c5: m[10]*m[15] - m[14]*m[11],
		c4: m[9]*m[15] - m[13]*m[11],
		c3: m[9]*m[14] - m[13]*m[10],
		c2: m[8]*m[15] - m[12]*m[11],
		c1: m[8]*m[14] - m[12]*m[10],
		c0: m[8]*m[13] - m[12]*m[9],
	}
}

func (k minors2) det() float64 {
	return k.s0*k.c5 - k.s1*k.c4 + k.s2*k.c3 + k.s3*k.c2 - k.s4*k.c1 + k.s5*k.c0
}

// Determinant returns det(m).
func (m Matrix4) Determinant() float64 { return m.minors().det() }

// Trace returns the sum of the diagonal.
func (m Matrix4) Trace() float64 { return m[0] + m[5] + m[10] + m[15] }

// Transpose returns mᵀ.
func (m Matrix4) Transpose() Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[4*j+i] = m[4*i+j]
		}
	}
	return r
}

// Plus returns m + o.
func (m Matrix4) Plus(o Matrix4) Matrix4 {
	var r Matrix4
	for i := range m {
		r[i] = m[i] + o[i]
	}
	return r
}

// Minus returns m − o.
func (m Matrix4) Minus(o Matrix4) Matrix4 {
	var r Matrix4
	for i := range m {
		r[i] = m[i] - o[i]
	}
	return r
}

// Times returns the product m·o.
func (m Matrix4) Times(o Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[4*i+k] * o[4*k+j]
			}
			r[4*i+j] = sum
		}
	}
	return r
}

// TimesVector returns m·v.
func (m Matrix4) TimesVector(v f64.Vec4) f64.Vec4 {
	var r f64.Vec4
	for i := 0; i < 4; i++ {
		r[i] = m[4*i]*v[0] + m[4*i+1]*v[1] + m[4*i+2]*v[2] + m[4*i+3]*v[3]
	}
	return r
}

// Dot returns the general dot product uᵀ·m·v.
func (m Matrix4) Dot(u, v f64.Vec4) float64 {
	mv := m.TimesVector(v)
	return u[0]*mv[0] + u[1]*mv[1] + u[2]*mv[2] + u[3]*mv[3]
}

// Hermitian returns the symmetric part (m + mᵀ)/2.
func (m Matrix4) Hermitian() Matrix4 {
	t := m.Transpose()
	var r Matrix4
	for i := range m {
		r[i] = 0.5 * (m[i] + t[i])
	}
	return r
}

// Antihermitian returns the antisymmetric part (m − mᵀ)/2.
func (m Matrix4) Antihermitian() Matrix4 {
	t := m.Transpose()
	var r Matrix4
	for i := range m {
		r[i] = 0.5 * (m[i] - t[i])
	}
	return r
}

// Inverse returns m⁻¹, or ErrSingular when the determinant is zero.
func (m Matrix4) Inverse() (Matrix4, error) {
	k := m.minors()
	det := k.det()
	if det == 0 {
		return Matrix4{}, fmt.Errorf("Matrix4.Inverse: %w", ErrSingular)
	}
	inv := 1 / det

	return Matrix4{
		(m[5]*k.c5 - m[6]*k.c4 + m[7]*k.c3) * inv,
		(-m[1]*k.c5 + m[2]*k.c4 - m[3]*k.c3) * inv,
		(m[13]*k.s5 - m[14]*k.s4 + m[15]*k.s3) * inv,
		(-m[9]*k.s5 + m[10]*k.s4 - m[11]*k.s3) * inv,

		(-m[4]*k.c5 + m[6]*k.c2 - m[7]*k.c1) * inv,
		(m[0]*k.c5 - m[2]*k.c2 + m[3]*k.c1) * inv,
		(-m[12]*k.s5 + m[14]*k.s2 - m[15]*k.s1) * inv,
		(m[8]*k.s5 - m[10]*k.s2 + m[11]*k.s1) * inv,

		(m[4]*k.c4 - m[5]*k.c2 + m[7]*k.c0) * inv,
		(-m[0]*k.c4 + m[1]*k.c2 - m[3]*k.c0) * inv,
		(m[12]*k.s4 - m[13]*k.s2 + m[15]*k.s0) * inv,
		(-m[8]*k.s4 + m[9]*k.s2 - m[11]*k.s0) * inv,

		(-m[4]*k.c3 + m[5]*k.c1 - m[6]*k.c0) * inv,
		(m[0]*k.c3 - m[1]*k.c1 + m[2]*k.c0) * inv,
		(-m[12]*k.s3 + m[13]*k.s1 - m[14]*k.s0) * inv,
		(m[8]*k.s3 - m[9]*k.s1 + m[10]*k.s0) * inv,
	}, nil
}

// principalMinor3 is the determinant of the 3×3 submatrix on rows and
// columns {i, j, k}.
func (m Matrix4) principalMinor3(i, j, k int) float64 {
	sub := Matrix3{
		m[4*i+i], m[4*i+j], m[4*i+k],
		m[4*j+i], m[4*j+j], m[4*j+k],
		m[4*k+i], m[4*k+j], m[4*k+k],
	}
	return sub.Determinant()
}

// principalMinors2 is the sum of the six 2×2 principal minors.
func (m Matrix4) principalMinors2() float64 {
	var sum float64
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			sum += m[5*i]*m[5*j] - m[4*i+j]*m[4*j+i]
		}
	}
	return sum
}

// Characteristic returns det(m − λI) = λ⁴ − tr·λ³ + e₂·λ² − e₃·λ + det,
// where eₖ is the sum of the k×k principal minors.
func (m Matrix4) Characteristic() polynomial.Polynomial {
	e3 := m.principalMinor3(0, 1, 2) + m.principalMinor3(0, 1, 3) +
		m.principalMinor3(0, 2, 3) + m.principalMinor3(1, 2, 3)

	return polynomial.New(m.Determinant(), -e3, m.principalMinors2(), -m.Trace(), 1)
}

// Eigenvalues returns the real eigenvalues (zero to four).
func (m Matrix4) Eigenvalues() ([]float64, error) {
	return m.Characteristic().Roots()
}

// ComplexEigenvalues returns all four eigenvalues.
func (m Matrix4) ComplexEigenvalues() ([]complexnum.Complex, error) {
	return m.Characteristic().ComplexRoots()
}

// SymmetricEigenvalues returns the eigenvalues of a symmetric m in ascending
// order by Jacobi rotation.
func (m Matrix4) SymmetricEigenvalues(tol float64, maxIter int) ([]float64, error) {
	vals, err := jacobiEigenvalues(m[:], 4, tol, maxIter)
	if err != nil {
		return nil, fmt.Errorf("Matrix4.SymmetricEigenvalues: %w", err)
	}
	return vals, nil
}
