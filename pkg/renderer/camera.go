package renderer

import (
	"io"
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/ppm"
)

// Background gradient endpoints: white below, sky blue above
var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// CameraConfig contains camera and sampling configuration
type CameraConfig struct {
	FocalLength     float64     // Distance from camera center to viewport plane
	Center          core.Point3 // Camera position
	ViewportHeight  float64     // World-space height of the viewport
	SamplesPerPixel int         // Random samples per pixel for antialiasing
	MaxDepth        int         // Diffuse bounce budget per sample
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		FocalLength:     1.0,
		Center:          core.NewVec3(0, 0, 0),
		ViewportHeight:  2.0,
		SamplesPerPixel: 100,
		MaxDepth:        10,
	}
}

// viewportContext is the image-space to world-space mapping, computed
// once per render and reused for every pixel
type viewportContext struct {
	pixel00 core.Point3 // Center of the upper-left pixel
	deltaU  core.Vec3   // World-space step per pixel column
	deltaV  core.Vec3   // World-space step per pixel row
}

// Camera owns the viewport geometry and drives the render loop
type Camera struct {
	config        CameraConfig
	image         Image
	viewportWidth float64
	viewport      viewportContext
	random        *rand.Rand
	logger        core.Logger
}

// NewCamera creates a camera for the given image. The random source is
// used for pixel jitter and diffuse bounce directions; passing a seeded
// source makes the render reproducible. A nil logger disables progress
// reporting.
func NewCamera(img Image, config CameraConfig, random *rand.Rand, logger core.Logger) *Camera {
	if logger == nil {
		logger = core.DiscardLogger{}
	}

	// Viewport width follows the ideal (unrounded) image ratio so pixels
	// stay square even when the height was rounded.
	viewportWidth := config.ViewportHeight * img.IdealRatio()

	viewportU := core.NewVec3(viewportWidth, 0, 0)
	// v points down: image rows increase downward, world y increases upward
	viewportV := core.NewVec3(0, -config.ViewportHeight, 0)

	deltaU := viewportU.Divide(float64(img.Width))
	deltaV := viewportV.Divide(float64(img.Height))

	upperLeft := config.Center.
		Subtract(core.NewVec3(0, 0, config.FocalLength)).
		Subtract(viewportU.Add(viewportV).Multiply(0.5))
	pixel00 := upperLeft.Add(deltaU.Add(deltaV).Multiply(0.5))

	return &Camera{
		config:        config,
		image:         img,
		viewportWidth: viewportWidth,
		viewport: viewportContext{
			pixel00: pixel00,
			deltaU:  deltaU,
			deltaV:  deltaV,
		},
		random: random,
		logger: logger,
	}
}

// ViewportWidth returns the derived world-space viewport width
func (c *Camera) ViewportWidth() float64 {
	return c.viewportWidth
}

// GetRay returns a ray from the camera center through a jittered sample
// point inside pixel (u, v). The direction is not normalized.
func (c *Camera) GetRay(u, v int) core.Ray {
	return c.rayThrough(u, v, c.sampleSquare())
}

// sampleSquare returns a jitter offset with x and y uniform in [-0.5, 0.5)
func (c *Camera) sampleSquare() core.Vec3 {
	return core.NewVec3(c.random.Float64()-0.5, c.random.Float64()-0.5, 0)
}

// rayThrough builds the ray for pixel (u, v) displaced by offset in
// pixel units. A zero offset passes exactly through the pixel center.
func (c *Camera) rayThrough(u, v int, offset core.Vec3) core.Ray {
	pixelSample := c.viewport.pixel00.
		Add(c.viewport.deltaU.Multiply(float64(u) + offset.X)).
		Add(c.viewport.deltaV.Multiply(float64(v) + offset.Y))

	return core.NewRay(c.config.Center, pixelSample.Subtract(c.config.Center))
}

// rayColor returns the color gathered along a ray. Each diffuse bounce
// recurses with a decremented depth budget and keeps half the energy;
// rays that escape the scene sample the background gradient.
func (c *Camera) rayColor(ray core.Ray, world geometry.Hittable, depth int) core.Vec3 {
	// Bounce budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	if hit, isHit := world.Hit(ray, core.PositiveInterval()); isHit {
		direction := hit.Normal.Add(core.RandomUnitVector(c.random))
		bounce := core.NewRay(hit.Point, direction)
		return c.rayColor(bounce, world, depth-1).Multiply(0.5)
	}

	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(white, skyBlue, t)
}

// Render writes the scene as a plain-text PPM image, one row per line.
// Each pixel is the mean of SamplesPerPixel independently jittered
// samples. The first write error aborts the render and is returned.
func (c *Camera) Render(w io.Writer, world geometry.Hittable) error {
	if err := ppm.WriteHeader(w, c.image.Width, c.image.Height); err != nil {
		return err
	}

	for v := 0; v < c.image.Height; v++ {
		c.logger.Printf("Scanning lines [%d/%d]\n", v+1, c.image.Height)
		for u := 0; u < c.image.Width; u++ {
			color := core.Vec3{}
			for s := 0; s < c.config.SamplesPerPixel; s++ {
				ray := c.GetRay(u, v)
				color = color.Add(c.rayColor(ray, world, c.config.MaxDepth))
			}
			color = color.Divide(float64(c.config.SamplesPerPixel))

			if err := ppm.WriteColor(w, color); err != nil {
				return err
			}
		}
		if err := ppm.WriteRowEnd(w); err != nil {
			return err
		}
	}

	return nil
}
