package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// NewDefaultScene builds the built-in world: a small sphere resting on
// a much larger ground sphere
func NewDefaultScene() *geometry.HittableList {
	world := geometry.NewHittableList()
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100))
	return world
}

// NewSingleSphereScene builds a world with only the centered sphere,
// useful for quick renders and reference images
func NewSingleSphereScene() *geometry.HittableList {
	world := geometry.NewHittableList()
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5))
	return world
}
