package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NewtonVan/RayTracing1/pkg/core"
	"github.com/NewtonVan/RayTracing1/pkg/output"
	"github.com/NewtonVan/RayTracing1/pkg/renderer"
	"github.com/NewtonVan/RayTracing1/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType string
	format    string
	out       string
	seed      int64
	seedSet   bool
	depthSet  bool // -depth given, so a zero depth replaces the scene's
	quiet     bool
	help      bool
	overrides renderer.CameraConfig // only flags given on the command line
}

// imageSink is a pixel writer that must be closed to finish the image
type imageSink interface {
	renderer.PixelWriter
	Close() error
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.help {
		printHelp(os.Stdout)
		return
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if opts.quiet {
		logger = log.New(io.Discard, "", 0)
	}

	if err := run(opts, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cameraFlags receives the camera flags before they are merged as overrides
type cameraFlags struct {
	width  int
	aspect float64
	spp    int
	depth  int
}

func newFlagSet(opts *options, cam *cameraFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.StringVar(&opts.sceneType, "scene", "default", "Scene type: "+strings.Join(scene.Names(), ", "))
	fs.IntVar(&cam.width, "width", 0, "Image width in pixels (default: scene setting)")
	fs.Float64Var(&cam.aspect, "aspect", 0, "Aspect ratio, width over height (default: scene setting)")
	fs.IntVar(&cam.spp, "spp", 0, "Samples per pixel (default: scene setting)")
	fs.IntVar(&cam.depth, "depth", 0, "Maximum ray bounce depth (default: scene setting)")
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed (default: time based)")
	fs.StringVar(&opts.format, "format", "", "Output format: 'ppm' or 'png' (default: from -out extension, else ppm)")
	fs.StringVar(&opts.out, "out", "", "Output file (default: stdout)")
	fs.BoolVar(&opts.quiet, "quiet", false, "Suppress progress output")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	return fs
}

// parseFlags reads the command line. Camera flags only override the scene
// when they are given explicitly.
func parseFlags(args []string, errOut io.Writer) (options, error) {
	var opts options
	var cam cameraFlags
	fs := newFlagSet(&opts, &cam)
	fs.SetOutput(errOut)

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	// Zero means unset to MergeCameraConfig, so explicit zeros must be caught here
	var invalid error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			opts.overrides.Width = cam.width
			if cam.width <= 0 {
				invalid = fmt.Errorf("-width %d: %w", cam.width, renderer.ErrInvalidWidth)
			}
		case "aspect":
			opts.overrides.AspectRatio = float32(cam.aspect)
			if !(cam.aspect > 0) {
				invalid = fmt.Errorf("-aspect %g: %w", cam.aspect, renderer.ErrInvalidAspectRatio)
			}
		case "spp":
			opts.overrides.SamplesPerPixel = cam.spp
			if cam.spp <= 0 {
				invalid = fmt.Errorf("-spp %d: %w", cam.spp, renderer.ErrInvalidSamples)
			}
		case "depth":
			opts.overrides.MaxDepth = cam.depth
			opts.depthSet = true
			if cam.depth < 0 {
				invalid = fmt.Errorf("-depth %d: %w", cam.depth, renderer.ErrInvalidDepth)
			}
		case "seed":
			opts.seedSet = true
		}
	})
	if invalid != nil {
		return opts, invalid
	}

	if opts.format == "" {
		opts.format = "ppm"
		if strings.EqualFold(filepath.Ext(opts.out), ".png") {
			opts.format = "png"
		}
	}
	opts.format = strings.ToLower(opts.format)
	if opts.format != "ppm" && opts.format != "png" {
		return opts, fmt.Errorf("unknown format %q: expected 'ppm' or 'png'", opts.format)
	}

	return opts, nil
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Ray Tracer")
	fmt.Fprintln(w, "Usage: raytracer [options] > image.ppm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs := newFlagSet(&options{}, &cameraFlags{})
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pixels go to stdout unless -out is given; progress goes to stderr.")
}

// createScene builds the requested scene with command line overrides applied.
// MergeCameraConfig skips zero fields, so an explicit depth is applied separately.
func createScene(sceneType string, overrides renderer.CameraConfig, depthSet bool) (*scene.Scene, error) {
	s, err := scene.Create(sceneType, overrides)
	if err != nil {
		return nil, err
	}
	if depthSet {
		s.CameraConfig.MaxDepth = overrides.MaxDepth
	}
	if err := s.CameraConfig.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	return s, nil
}

// newSink wraps w in the writer for the requested format
func newSink(format string, w io.Writer) (imageSink, error) {
	switch format {
	case "ppm":
		return output.NewPPMWriter(w), nil
	case "png":
		return output.NewPNGWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// run renders the selected scene into stdout, or into opts.out when set
func run(opts options, stdout io.Writer, logger core.Logger) (err error) {
	selectedScene, err := createScene(opts.sceneType, opts.overrides, opts.depthSet)
	if err != nil {
		return err
	}

	camera, err := selectedScene.NewCamera()
	if err != nil {
		return err
	}

	seed := opts.seed
	if !opts.seedSet {
		seed = time.Now().UnixNano()
	}
	logger.Printf("Rendering scene %s at %dx%d, %d samples per pixel, max depth %d, seed %d",
		selectedScene.Name, camera.Width(), camera.Height(),
		camera.Config().SamplesPerPixel, camera.Config().MaxDepth, seed)

	dst := stdout
	if opts.out != "" {
		file, createErr := os.Create(opts.out)
		if createErr != nil {
			return fmt.Errorf("create output file: %w", createErr)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output file: %w", cerr)
			}
		}()
		dst = file
	}

	sink, err := newSink(opts.format, dst)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(camera, selectedScene.World, core.NewSeededSampler(seed), logger)
	stats, err := raytracer.Render(sink)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := sink.Close(); err != nil {
		return fmt.Errorf("finish %s output: %w", opts.format, err)
	}

	logger.Printf("Render completed: %v", stats)
	if opts.out != "" {
		logger.Printf("Render saved as %s", opts.out)
	}
	return nil
}
