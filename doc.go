// SPDX-License-Identifier: MIT

// Package jmist is a closed-form polynomial root finder for degrees one
// through four, plus the small numeric toolkit around it and the
// consumers that motivated it: eigenvalues of small matrices and ray
// intersection with spheres, quadrics and tori.
//
// What is in the box?
//
//	mathutil/    tolerances, comparisons, interpolation, statistics, RNG
//	complexnum/  immutable complex numbers with principal-branch roots
//	solver/      real and complex roots of degree ≤ 4 (Nickalls, Ferrari,
//	             Cardano) with configurable tolerances
//	polynomial/  coefficient-vector polynomials: arithmetic, evaluation,
//	             Roots / ComplexRoots
//	linalg/      2×2, 3×3, 4×4 matrices; characteristic polynomials,
//	             closed-form eigenvalues, Jacobi cross-check
//	geometry/    points, rays, intervals; sphere, quadric and torus hits
//
// Dependencies flow one way:
//
//	mathutil → complexnum → solver → polynomial → linalg → geometry
//
// Quick taste:
//
//	p := polynomial.FromRoots(1, 2, 3) // x³ − 6x² + 11x − 6
//	roots, err := p.Roots()            // [3 1 2] in some order
//
// Degrees above four are reported with solver.ErrUnsupportedDegree; a zero
// leading coefficient silently drops to the next lower degree (visible
// through solver.SetLogger at debug level).
package jmist
