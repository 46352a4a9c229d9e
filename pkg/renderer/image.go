package renderer

import "fmt"

// Image describes the raster dimensions of a render target
type Image struct {
	Width  int
	Height int
}

// NewImage creates an image description, rejecting dimensions below 1x1
func NewImage(width, height int) (Image, error) {
	if width < 1 || height < 1 {
		return Image{}, fmt.Errorf("invalid image dimensions %dx%d: width and height must be at least 1", width, height)
	}
	return Image{Width: width, Height: height}, nil
}

// NewImageFromAspectRatio derives the height from the width and the
// desired width/height ratio, then validates the result
func NewImageFromAspectRatio(width int, aspectRatio float64) (Image, error) {
	return NewImage(width, int(float64(width)/aspectRatio))
}

// IdealRatio returns the unrounded width/height ratio
func (i Image) IdealRatio() float64 {
	return float64(i.Width) / float64(i.Height)
}

// AspectRatio returns the ideal ratio truncated to the closest integer ratio
func (i Image) AspectRatio() int {
	return int(i.IdealRatio())
}
