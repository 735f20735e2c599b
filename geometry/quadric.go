// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"sort"

	"github.com/bwkimmel/jmist-sub000/linalg"
	"github.com/bwkimmel/jmist-sub000/polynomial"
)

// Quadric is the surface Q(p, p) = 0 of a symmetric 4×4 form over
// homogeneous points. Points with Q(p, p) < 0 are inside.
//
// The canonical factories center the surface at the origin along the
// coordinate axes; Transformed moves it elsewhere.
type Quadric struct {
	q linalg.Matrix4
}

// Basis3 is an orthonormal frame. Transformed maps U, V, W onto the
// canonical x, y, z axes.
type Basis3 struct {
	U, V, W Vector3
}

// StandardBasis is the x, y, z frame.
var StandardBasis = Basis3{
	U: Vector3{1, 0, 0},
	V: Vector3{0, 1, 0},
	W: Vector3{0, 0, 1},
}

// NewQuadric returns the quadric whose form is the symmetric part of m.
func NewQuadric(m linalg.Matrix4) Quadric {
	return Quadric{q: m.Hermitian()}
}

// Matrix returns the symmetric matrix representation.
func (s Quadric) Matrix() linalg.Matrix4 { return s.q }

// Characterize returns Q(p, p): negative inside, zero on the surface.
func (s Quadric) Characterize(p Point3) float64 {
	v := p.ToVector4()
	return s.q.Dot(v, v)
}

// Contains reports whether p is strictly inside.
func (s Quadric) Contains(p Point3) bool { return s.Characterize(p) < 0 }

// Intersect returns the ray parameters at which ray meets the surface,
// ascending. With p the origin and v the direction in homogeneous form
// the parameters solve
//
//	Q(v,v)·t² + 2·Q(v,p)·t + Q(p,p) = 0.
//
// A ray along a ruling of the surface loses its quadratic term and is
// solved as a line.
func (s Quadric) Intersect(ray Ray3) ([]float64, error) {
	x0 := ray.Origin.ToVector4()
	x1 := ray.Direction.ToVector4()

	f := polynomial.New(
		s.q.Dot(x0, x0),
		2*s.q.Dot(x1, x0),
		s.q.Dot(x1, x1),
	)

	ts, err := f.Roots()
	if err != nil {
		return nil, fmt.Errorf("Quadric.Intersect: %w", err)
	}
	sort.Float64s(ts)

	return ts, nil
}

// Intersects reports whether ray meets the surface at some t > 0.
func (s Quadric) Intersects(ray Ray3) (bool, error) {
	ts, err := s.Intersect(ray)
	if err != nil {
		return false, err
	}

	return len(ts) > 0 && ts[len(ts)-1] > 0, nil
}

// Gradient returns ∇Q at p, the spatial part of 2·Q·p.
func (s Quadric) Gradient(p Point3) Vector3 {
	g := s.q.TimesVector(p.ToVector4())
	return Vector3{2 * g[0], 2 * g[1], 2 * g[2]}
}

// Normal returns the unit outward normal at p.
func (s Quadric) Normal(p Point3) Vector3 {
	return s.Gradient(p).Unit()
}

// Transformed returns s moved so that its canonical origin sits at center
// and its canonical axes follow basis.
func (s Quadric) Transformed(center Point3, basis Basis3) Quadric {
	t := linalg.Identity4()
	t[3], t[7], t[11] = -center[0], -center[1], -center[2]

	u, v, w := basis.U, basis.V, basis.W
	b := linalg.Matrix4{
		u[0], u[1], u[2], 0,
		v[0], v[1], v[2], 0,
		w[0], w[1], w[2], 0,
		0, 0, 0, 1,
	}

	bt := b.Times(t)
	return Quadric{q: bt.Transpose().Times(s.q).Times(bt)}
}

func diagonal(a, b, c, d float64) Quadric {
	return Quadric{q: linalg.Matrix4{
		a, 0, 0, 0,
		0, b, 0, 0,
		0, 0, c, 0,
		0, 0, 0, d,
	}}
}

func inverseSquare(x float64) float64 { return 1 / (x * x) }

// SphereQuadric returns the sphere of the given radius about center.
func SphereQuadric(center Point3, radius float64) Quadric {
	r := inverseSquare(radius)
	return diagonal(r, r, r, -1).Transformed(center, StandardBasis)
}

// Ellipsoid returns x²/a² + y²/b² + z²/c² = 1.
func Ellipsoid(a, b, c float64) Quadric {
	return diagonal(inverseSquare(a), inverseSquare(b), inverseSquare(c), -1)
}

// EllipticParaboloid returns x²/a² + y²/b² = z.
func EllipticParaboloid(a, b float64) Quadric {
	return Quadric{q: linalg.Matrix4{
		inverseSquare(a), 0, 0, 0,
		0, inverseSquare(b), 0, 0,
		0, 0, 0, -0.5,
		0, 0, -0.5, 0,
	}}
}

// HyperbolicParaboloid returns x²/a² − y²/b² = z.
func HyperbolicParaboloid(a, b float64) Quadric {
	return Quadric{q: linalg.Matrix4{
		inverseSquare(a), 0, 0, 0,
		0, -inverseSquare(b), 0, 0,
		0, 0, 0, -0.5,
		0, 0, -0.5, 0,
	}}
}

// HyperboloidOfOneSheet returns x²/a² + y²/b² − z²/c² = 1.
func HyperboloidOfOneSheet(a, b, c float64) Quadric {
	return diagonal(inverseSquare(a), inverseSquare(b), -inverseSquare(c), -1)
}

// HyperboloidOfTwoSheets returns x²/a² + y²/b² − z²/c² = −1.
func HyperboloidOfTwoSheets(a, b, c float64) Quadric {
	return diagonal(inverseSquare(a), inverseSquare(b), -inverseSquare(c), 1)
}

// EllipticCone returns x²/a² + y²/b² = z²/c².
func EllipticCone(a, b, c float64) Quadric {
	return diagonal(inverseSquare(a), inverseSquare(b), -inverseSquare(c), 0)
}

// EllipticCylinder returns x²/a² + y²/b² = 1, unbounded in z.
func EllipticCylinder(a, b float64) Quadric {
	return diagonal(inverseSquare(a), inverseSquare(b), 0, -1)
}

// HyperbolicCylinder returns x²/a² − y²/b² = 1.
func HyperbolicCylinder(a, b float64) Quadric {
	return diagonal(inverseSquare(a), -inverseSquare(b), 0, -1)
}

// ParabolicCylinder returns x² + 2a·y = 0.
func ParabolicCylinder(a float64) Quadric {
	return Quadric{q: linalg.Matrix4{
		1, 0, 0, 0,
		0, 0, 0, a,
		0, 0, 0, 0,
		0, a, 0, 0,
	}}
}

// ParallelPlanes returns x² = a², the slab between x = ±a.
func ParallelPlanes(a float64) Quadric {
	return diagonal(1, 0, 0, -a*a)
}
