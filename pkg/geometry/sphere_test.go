package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestSphereHitMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, core.PositiveInterval())
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphereHitFrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Point3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			// Origin inside the sphere: only the far root is valid, and
			// the stored normal is flipped against the ray
			name:           "back face hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, core.PositiveInterval())

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}

			tolerance := 1e-9
			if math.Abs(hit.Normal.X-tt.expectedNormal.X) > tolerance ||
				math.Abs(hit.Normal.Y-tt.expectedNormal.Y) > tolerance ||
				math.Abs(hit.Normal.Z-tt.expectedNormal.Z) > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphereHitPointLiesOnSurface(t *testing.T) {
	tests := []struct {
		name      string
		center    core.Point3
		radius    float64
		origin    core.Point3
		direction core.Vec3
	}{
		{"axis aligned", core.NewVec3(0, 0, -1), 0.5, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)},
		{"off axis", core.NewVec3(1, 2, -3), 1.5, core.NewVec3(0, 0, 0), core.NewVec3(0.3, 0.7, -1)},
		{"unnormalized direction", core.NewVec3(0, 0, -5), 2.0, core.NewVec3(0.5, -0.25, 1), core.NewVec3(-0.1, 0.05, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius)
			ray := core.NewRay(tt.origin, tt.direction)

			hit, isHit := sphere.Hit(ray, core.PositiveInterval())
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			// The hit point must lie on the sphere surface
			dist := ray.At(hit.T).Subtract(tt.center).Length()
			if math.Abs(dist-tt.radius) > 1e-9 {
				t.Errorf("Expected |at(t) - center| = %f, got %f", tt.radius, dist)
			}

			if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
				t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
			}
		})
	}
}

func TestSphereHitRespectsBounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -2), 0.5)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Roots are at t=1.5 and t=2.5
	tests := []struct {
		name      string
		bounds    core.Interval
		expectHit bool
		expectedT float64
	}{
		{"both roots inside", core.NewInterval(0, 10), true, 1.5},
		{"only far root inside", core.NewInterval(2, 10), true, 2.5},
		{"both roots outside", core.NewInterval(3, 10), false, 0},
		{"bounds before sphere", core.NewInterval(0, 1), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.bounds)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestNewSphereClampsNegativeRadius(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), -1.0)
	if sphere.Radius != 0 {
		t.Errorf("Expected radius 0, got %f", sphere.Radius)
	}
}

func TestNewHitRecordFrontFaceMatchesDotProduct(t *testing.T) {
	point := core.NewVec3(0, 0, 1)
	outward := core.NewVec3(0, 0, 1)

	// Ray moving against the outward normal hits the front face
	toward := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
	rec := NewHitRecord(point, outward, 1, toward)
	if !rec.FrontFace {
		t.Error("Expected front face for ray opposing the outward normal")
	}
	if rec.Normal != outward {
		t.Errorf("Expected stored normal %v, got %v", outward, rec.Normal)
	}

	// Ray moving with the outward normal hits the back face; the stored
	// normal is flipped
	along := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	rec = NewHitRecord(point, outward, 1, along)
	if rec.FrontFace {
		t.Error("Expected back face for ray along the outward normal")
	}
	if rec.Normal != outward.Negate() {
		t.Errorf("Expected stored normal %v, got %v", outward.Negate(), rec.Normal)
	}
}
