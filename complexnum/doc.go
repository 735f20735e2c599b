// SPDX-License-Identifier: MIT

// Package complexnum provides an immutable complex number value type.
//
// Every operation returns a new Complex; nothing is mutated in place, so
// values are safe to share across goroutines.
//
// Roots and powers go through polar form: the value is converted to
// (r, θ) with θ = Arg() in (−π, π], the operation is applied to r and θ,
// and the result is converted back. Sqrt and Cbrt therefore return the
// principal root. SqrtReal is the separate entry point for real radicands:
// non-negative input gives a pure real result, negative input a pure
// imaginary one, with no polar round-trip error.
//
// IEEE-754 semantics apply throughout: dividing by a zero-modulus value
// yields NaN components rather than an error.
//
//	z := complexnum.New(3, 4)
//	z.Abs()            // 5
//	z.Sqrt()           // 2+1i
//	complexnum.SqrtReal(-4) // 0+2i
package complexnum
