// SPDX-License-Identifier: MIT

// Package solver finds the roots of polynomials of degree one to four in
// closed form.
//
// Coefficients are supplied in ascending order by exponent:
//
//	c[0] + c[1]·x + c[2]·x² + … = 0
//
// and the degree is inferred from len(c). Two families of entry points are
// provided:
//
//   - Real family (Roots, Linear, Quadratic, Cubic, Quartic) returns only
//     the real roots, so it may return fewer values than the degree.
//   - Complex family (ComplexRoots, ComplexLinear, …, ComplexQuartic)
//     returns exactly degree values, repeated roots included.
//
// Methods, by degree:
//
//	1 linear      −c0/c1
//	2 quadratic   discriminant case analysis (real); principal √D (complex)
//	3 cubic       Nickalls' method (real); Cardano in depressed form (complex)
//	4 quartic     Ferrari via a resolvent cubic (real, Graphics Gems form);
//	              depressed-quartic resolvent in complex arithmetic (complex)
//
// Degeneracy: when the leading coefficient is exactly zero the call falls
// through to the next lower degree. This is checked before any formula
// divides by the leading coefficient.
//
// More than five coefficients is reported as ErrUnsupportedDegree; it is
// never answered with a silent empty result. Any other numerically odd
// input (NaN, Inf, unanticipated zero denominators) propagates as NaN/Inf
// through the returned values, and callers that can feed such input must
// check for it.
//
// Configuration follows functional options:
//
//	s := solver.New(solver.WithEpsilon(1e-12))
//	xs, err := s.Roots([]float64{-6, 11, -6, 1}) // {3, 2, 1} in some order
//
// Package-level functions use the default configuration. A Solver is an
// immutable value; every call is a finite synchronous computation, safe for
// concurrent use.
//
// Diagnostics are emitted through log/slog at debug level and are silent
// unless SetLogger installs a logger.
package solver
