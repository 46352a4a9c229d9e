package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Hittable is any surface that can be tested for ray intersection
// within a parameter interval
type Hittable interface {
	// Hit returns the nearest intersection with parameter t inside
	// bounds, or (nil, false) if there is none. Must be side-effect free.
	Hit(ray core.Ray, bounds core.Interval) (*HitRecord, bool)
}

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Unit normal at the intersection, facing against the ray
	T         float64     // Parameter t along the ray
	FrontFace bool        // Whether the ray hit the outward side of the surface
}

// NewHitRecord creates a hit record from the geometric outward normal,
// resolving the front/back orientation against the ray direction so a
// record is never observed in an inconsistent state. The stored normal
// always faces against the ray; callers that need the true outward
// normal must negate it when FrontFace is false.
func NewHitRecord(point core.Point3, outwardNormal core.Vec3, t float64, ray core.Ray) *HitRecord {
	rec := &HitRecord{
		Point:     point,
		Normal:    outwardNormal,
		T:         t,
		FrontFace: ray.Direction.Dot(outwardNormal) < 0,
	}
	if !rec.FrontFace {
		rec.Normal = outwardNormal.Negate()
	}
	return rec
}
