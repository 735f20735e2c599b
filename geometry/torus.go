// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"
	"sort"

	"github.com/bwkimmel/jmist-sub000/polynomial"
)

// Torus is centered at the origin with its axis of revolution along y.
// Major is the distance from the center to the middle of the tube and
// Minor is the tube radius.
type Torus struct {
	Major, Minor float64
}

// Intersect returns the ray parameters at which ray meets the surface,
// ascending. Up to four; t is in units of ray.Direction, which need not be
// normalized.
//
// With o the origin, d the direction, R and r the radii and
// K = |o|² − (R² + r²), a point on the ray is on the torus when
//
//	(|o + t·d|² − (R² + r²))² − 4R²(r² − (o_y + t·d_y)²) = 0.
func (s Torus) Intersect(ray Ray3) ([]float64, error) {
	o := ray.Origin.VectorFromOrigin()
	d := ray.Direction

	rr := s.Major * s.Major
	mm := s.Minor * s.Minor
	dd := d.SquaredLength()
	oo := o.SquaredLength()
	do := d.Dot(o)
	k := oo - (rr + mm)

	f := polynomial.New(
		k*k-4*rr*(mm-o[1]*o[1]),
		4*do*k+8*rr*d[1]*o[1],
		2*dd*k+4*(do*do+rr*d[1]*d[1]),
		4*do*dd,
		dd*dd,
	)

	ts, err := f.Roots()
	if err != nil {
		return nil, fmt.Errorf("Torus.Intersect: %w", err)
	}
	sort.Float64s(ts)

	return ts, nil
}

// Contains reports whether p is strictly inside the tube.
func (s Torus) Contains(p Point3) bool {
	ring := math.Hypot(p[0], p[2]) - s.Major
	return ring*ring+p[1]*p[1] < s.Minor*s.Minor
}

// Normal returns the unit outward normal at p, which should lie on s.
// Points on the axis have no ring direction and get +z.
func (s Torus) Normal(p Point3) Vector3 {
	l := math.Hypot(p[0], p[2])
	if l == 0 {
		return Vector3{0, 0, 1}
	}

	ring := Point3{p[0] * s.Major / l, 0, p[2] * s.Major / l}
	return ring.VectorTo(p).Unit()
}

// BoundingSphere returns the smallest sphere about the origin enclosing s.
func (s Torus) BoundingSphere() Sphere {
	return Sphere{Center: Origin, Radius: s.Major + s.Minor}
}
