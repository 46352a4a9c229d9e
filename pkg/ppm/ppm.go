// Package ppm writes images in the plain-text PPM (P3) raster format.
package ppm

import (
	"fmt"
	"io"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// intensity is the clamp range for output channels. The top end stays
// below 1.0 so a full-intensity channel maps to 255, not 256.
var intensity = core.NewInterval(0, 0.999)

// LinearToGamma transforms a linear color component using the gamma 2
// transform. Non-positive input maps to 0.
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// WriteHeader writes the three-line P3 header
func WriteHeader(w io.Writer, width, height int) error {
	_, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", width, height)
	return err
}

// WriteColor writes one pixel as a space-terminated "r g b " triplet of
// integers in [0, 255], applying the gamma transform to each channel
func WriteColor(w io.Writer, c core.Vec3) error {
	r := LinearToGamma(c.X)
	g := LinearToGamma(c.Y)
	b := LinearToGamma(c.Z)

	rbyte := int(255.0 * intensity.Clamp(r))
	gbyte := int(255.0 * intensity.Clamp(g))
	bbyte := int(255.0 * intensity.Clamp(b))

	_, err := fmt.Fprintf(w, "%d %d %d ", rbyte, gbyte, bbyte)
	return err
}

// WriteRowEnd terminates an image row
func WriteRowEnd(w io.Writer) error {
	_, err := fmt.Fprintln(w)
	return err
}
