// SPDX-License-Identifier: MIT

package geometry

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Vector3 is a displacement in three dimensions.
type Vector3 f64.Vec3

// Point3 is a location in three dimensions.
type Point3 f64.Vec3

// Origin is the point (0, 0, 0).
var Origin = Point3{}

// Dot returns v·w.
func (v Vector3) Dot(w Vector3) float64 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Cross returns v × w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Plus returns v + w.
func (v Vector3) Plus(w Vector3) Vector3 { return Vector3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Minus returns v − w.
func (v Vector3) Minus(w Vector3) Vector3 { return Vector3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Times returns s·v.
func (v Vector3) Times(s float64) Vector3 { return Vector3{s * v[0], s * v[1], s * v[2]} }

// SquaredLength returns |v|².
func (v Vector3) SquaredLength() float64 { return v.Dot(v) }

// Length returns |v|.
func (v Vector3) Length() float64 { return math.Sqrt(v.SquaredLength()) }

// Unit returns v scaled to length one. The zero vector yields NaN components.
func (v Vector3) Unit() Vector3 { return v.Times(1 / v.Length()) }

// ToVector4 lifts v to homogeneous coordinates with w = 0.
func (v Vector3) ToVector4() f64.Vec4 { return f64.Vec4{v[0], v[1], v[2], 0} }

// Plus returns p translated by v.
func (p Point3) Plus(v Vector3) Point3 { return Point3{p[0] + v[0], p[1] + v[1], p[2] + v[2]} }

// VectorTo returns q − p.
func (p Point3) VectorTo(q Point3) Vector3 { return Vector3{q[0] - p[0], q[1] - p[1], q[2] - p[2]} }

// VectorFromOrigin returns p − Origin.
func (p Point3) VectorFromOrigin() Vector3 { return Vector3(p) }

// SquaredDistanceTo returns |q − p|².
func (p Point3) SquaredDistanceTo(q Point3) float64 { return p.VectorTo(q).SquaredLength() }

// ToVector4 lifts p to homogeneous coordinates with w = 1.
func (p Point3) ToVector4() f64.Vec4 { return f64.Vec4{p[0], p[1], p[2], 1} }

// Ray3 is the half-line Origin + t·Direction, t ≥ 0. Direction need not be
// a unit vector; t is measured in multiples of it.
type Ray3 struct {
	Origin    Point3
	Direction Vector3
}

// PointAt returns Origin + t·Direction.
func (r Ray3) PointAt(t float64) Point3 { return r.Origin.Plus(r.Direction.Times(t)) }
