// SPDX-License-Identifier: MIT

package geometry

import "github.com/bwkimmel/jmist-sub000/solver"

// Sphere is the solid ball of the given Radius about Center.
type Sphere struct {
	Center Point3
	Radius float64
}

// Intersect returns the range of t for which ray.PointAt(t) lies inside s.
//
// The entry point is clamped to 0 when the ray starts inside the sphere.
// A ray that misses, or whose hits all lie behind its origin, gets
// EmptyInterval. A grazing ray yields a zero-length interval.
func (s Sphere) Intersect(ray Ray3) Interval {
	oc := s.Center.VectorTo(ray.Origin)
	a := ray.Direction.SquaredLength()
	b := 2 * ray.Direction.Dot(oc)
	c := oc.SquaredLength() - s.Radius*s.Radius

	ts := solver.Quadratic(c, b, a)
	if len(ts) == 0 {
		return EmptyInterval()
	}

	hit := Between(ts[0], ts[len(ts)-1])
	if hit.Max < 0 {
		return EmptyInterval()
	}
	if c < 0 || hit.Min < 0 {
		hit.Min = 0
	}

	return hit
}

// Contains reports whether p is strictly inside s.
func (s Sphere) Contains(p Point3) bool {
	return s.Center.SquaredDistanceTo(p) < s.Radius*s.Radius
}

// Normal returns the outward unit normal at p, which should lie on s.
func (s Sphere) Normal(p Point3) Vector3 {
	return s.Center.VectorTo(p).Unit()
}
