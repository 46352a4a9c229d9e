package geometry

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// HittableList is a flat collection of surfaces that reports the
// nearest hit across all of them. It owns its objects exclusively and
// is read-only during rendering.
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates an empty collection
func NewHittableList() *HittableList {
	return &HittableList{}
}

// Add appends a surface to the collection
func (l *HittableList) Add(obj Hittable) {
	l.objects = append(l.objects, obj)
}

// Len returns the number of surfaces in the collection
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Hit returns the nearest intersection among all owned surfaces.
// The upper bound shrinks to the closest hit found so far, so later
// objects cannot claim a farther point than one already found and the
// result is independent of insertion order.
func (l *HittableList) Hit(ray core.Ray, bounds core.Interval) (*HitRecord, bool) {
	var closestHit *HitRecord
	closest := bounds.Max

	for _, obj := range l.objects {
		if hit, isHit := obj.Hit(ray, core.NewInterval(bounds.Min, closest)); isHit {
			closest = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
