// SPDX-License-Identifier: MIT

// Package geometry intersects rays with implicit surfaces by building a
// polynomial in the ray parameter t and handing it to the root finder.
//
//	Sphere   quadratic, solved with solver.Quadratic on raw coefficients
//	Quadric  quadratic Q(p + t·v) = 0 from a symmetric 4×4 matrix form
//	Torus    quartic, solved through polynomial.Polynomial
//
// Vectors and points are thin wrappers over golang.org/x/image/math/f64
// arrays. A Point3 lifts to homogeneous coordinates with w = 1, a Vector3
// with w = 0, which is what makes the quadric form work for both.
package geometry
