// SPDX-License-Identifier: MIT

// Package polynomial provides an immutable real polynomial in canonical
// form.
//
// Coefficients are stored in ascending order by exponent and the highest
// stored coefficient is never zero; the zero polynomial stores nothing and
// has degree −1. Every constructor and arithmetic result is trimmed to this
// form, so two polynomials with the same values compare Equal regardless of
// how they were built.
//
//	p := polynomial.New(-6, 11, -6, 1) // (x−1)(x−2)(x−3)
//	p.Degree()                         // 3
//	p.At(2)                            // 0
//	roots, _ := p.Roots()              // {3, 2, 1} in some order
//
// Root finding delegates to package solver, so it is limited to degree 4;
// higher degrees report solver.ErrUnsupportedDegree.
package polynomial
