package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// glogLogger adapts glog to the renderer's Logger interface.
// Progress lines go to the diagnostic stream, never to the image output.
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.Infof(format, args...)
}

// renderOptions collects the command line configuration
type renderOptions struct {
	width     int
	aspect    float64
	samples   int
	maxDepth  int
	seed      int64
	output    string
	sceneType string
}

// createScene builds the world for a scene name
func createScene(sceneType string) (*geometry.HittableList, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "single-sphere":
		return scene.NewSingleSphereScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q (available: default, single-sphere)", sceneType)
	}
}

func run(opts renderOptions) error {
	img, err := renderer.NewImageFromAspectRatio(opts.width, opts.aspect)
	if err != nil {
		return fmt.Errorf("failed to set up image: %v", err)
	}

	world, err := createScene(opts.sceneType)
	if err != nil {
		return err
	}

	config := renderer.DefaultCameraConfig()
	config.SamplesPerPixel = opts.samples
	config.MaxDepth = opts.maxDepth

	random := rand.New(rand.NewSource(opts.seed))
	camera := renderer.NewCamera(img, config, random, glogLogger{})

	var out io.Writer = os.Stdout
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %v", err)
		}
		defer file.Close()
		out = file
	}

	// Buffer the pixel stream; the render writes one small triplet at a time
	buffered := bufio.NewWriter(out)

	glog.Infof("Rendering %dx%d, %d samples per pixel, depth %d, scene %q",
		img.Width, img.Height, opts.samples, opts.maxDepth, opts.sceneType)

	start := time.Now()
	if err := camera.Render(buffered, world); err != nil {
		return fmt.Errorf("failed to render: %v", err)
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %v", err)
	}

	glog.Infof("Render completed in %v", time.Since(start))
	return nil
}

func main() {
	opts := renderOptions{}
	flag.IntVar(&opts.width, "width", 400, "Image width in pixels")
	flag.Float64Var(&opts.aspect, "aspect", 16.0/9.0, "Ideal width/height ratio used to derive the image height")
	flag.IntVar(&opts.samples, "samples", 100, "Random samples per pixel for antialiasing")
	flag.IntVar(&opts.maxDepth, "max-depth", 10, "Maximum diffuse bounce depth per sample")
	flag.Int64Var(&opts.seed, "seed", 42, "Seed for jitter and bounce sampling; fixed seed gives reproducible output")
	flag.StringVar(&opts.output, "output", "", "Output PPM file; empty writes the image to stdout")
	flag.StringVar(&opts.sceneType, "scene", "default", "Scene to render: 'default' or 'single-sphere'")
	flag.Parse()
	defer glog.Flush()

	if err := run(opts); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
}
