// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"math"
	"sort"
)

// index maps (row, col) of an n×n row-major matrix to a flat offset.
func index(n, row, col int) (int, error) {
	if row < 0 || row >= n || col < 0 || col >= n {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, n, n, ErrOutOfRange)
	}
	return n*row + col, nil
}

// jacobiEigenvalues computes the eigenvalues of the symmetric n×n matrix
// held row-major in data, using classical Jacobi rotations.
//
// Implementation:
//   - Stage 1: validate tol/maxIter and symmetry (|a[i][j] − a[j][i]| ≤ tol).
//   - Stage 2: copy data into a work buffer; data is never modified.
//   - Stage 3: repeatedly zero the largest off-diagonal |a[p][q]| with a
//     plane rotation until it drops to tol or below.
//   - Stage 4: return the diagonal, sorted ascending.
//
// Returns ErrBadParameter, ErrNotSymmetric, or ErrEigenFailed.
// Complexity: O(n²) per rotation, at most maxIter rotations; Memory: O(n²).
func jacobiEigenvalues(data []float64, n int, tol float64, maxIter int) ([]float64, error) {
	// Stage 1: Validate input
	if math.IsNaN(tol) || tol < 0 || maxIter < 1 {
		return nil, fmt.Errorf("tol=%g maxIter=%d: %w", tol, maxIter, ErrBadParameter)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(data[n*i+j]-data[n*j+i]) > tol {
				return nil, fmt.Errorf("a[%d][%d]=%g, a[%d][%d]=%g: %w",
					i, j, data[n*i+j], j, i, data[n*j+i], ErrNotSymmetric)
			}
		}
	}

	// Stage 2: Prepare the work copy
	a := make([]float64, n*n)
	copy(a, data)

	// Stage 3: Execute Jacobi rotations
	var (
		iter          int
		p, q          int     // pivot indices
		maxOff        float64 // largest |a[p][q]|
		theta, t      float64 // rotation parameters
		c, s          float64 // cosine and sine
		app, aqq, apq float64
		arp, arq      float64
		converged     bool
	)
	for iter = 0; iter <= maxIter; iter++ {
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off := math.Abs(a[n*i+j]); off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff <= tol {
			converged = true
			break
		}
		if iter == maxIter {
			break
		}

		app, aqq, apq = a[n*p+p], a[n*q+q], a[n*p+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for r := 0; r < n; r++ {
			if r == p || r == q {
				continue
			}
			arp, arq = a[n*r+p], a[n*r+q]
			a[n*r+p] = c*arp - s*arq
			a[n*p+r] = a[n*r+p]
			a[n*r+q] = s*arp + c*arq
			a[n*q+r] = a[n*r+q]
		}
		a[n*p+p] = app - t*apq
		a[n*q+q] = aqq + t*apq
		a[n*p+q] = 0
		a[n*q+p] = 0
	}

	if !converged {
		return nil, fmt.Errorf("after %d rotations, off-diagonal %g > %g: %w", maxIter, maxOff, tol, ErrEigenFailed)
	}

	// Stage 4: Finalize eigenvalues
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a[n*i+i]
	}
	sort.Float64s(eigs)

	return eigs, nil
}
