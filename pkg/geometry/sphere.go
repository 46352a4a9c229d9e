package geometry

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Point3
	Radius float64
}

// NewSphere creates a new sphere. A negative radius is clamped to zero.
func NewSphere(center core.Point3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: math.Max(radius, 0),
	}
}

// Hit tests if a ray intersects the sphere within bounds.
//
// Solves |Q + t*d - C|^2 = r^2 as a quadratic in t using the
// half-coefficient form: a = d.d, h = d.(C-Q), c = |C-Q|^2 - r^2,
// discriminant = h^2 - a*c.
func (s *Sphere) Hit(ray core.Ray, bounds core.Interval) (*HitRecord, bool) {
	d := ray.Direction
	cq := s.Center.Subtract(ray.Origin) // (C-Q)

	a := d.LengthSquared()
	h := d.Dot(cq)
	c := cq.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the nearer root first; fall back to the farther one. When the
	// ray starts inside the sphere only the far root is in range.
	root := (h - sqrtD) / a
	if !bounds.Contains(root) {
		root = (h + sqrtD) / a
		if !bounds.Contains(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Divide(s.Radius)

	return NewHitRecord(point, outwardNormal, root, ray), true
}
