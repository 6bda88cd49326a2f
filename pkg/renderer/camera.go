package renderer

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/NewtonVan/RayTracing1/pkg/core"
)

// CameraConfig contains the recognized camera and sampling knobs
type CameraConfig struct {
	AspectRatio     float32 // Viewport shape, width over height
	Width           int     // Output image width in pixels
	SamplesPerPixel int     // Number of jittered rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
}

// DefaultCameraConfig returns the camera defaults
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1.0,
		Width:           100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
	}
}

// MergeCameraConfig returns base with every non-zero field of override applied on top
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	return result
}

// MaxImagePixels bounds width*height so the image buffers stay allocatable
const MaxImagePixels = 1 << 28

// Errors returned by CameraConfig.Validate, wrapped with the offending value
var (
	ErrInvalidWidth       = errors.New("image width must be positive")
	ErrInvalidAspectRatio = errors.New("aspect ratio must be positive and finite")
	ErrInvalidSamples     = errors.New("samples per pixel must be positive")
	ErrInvalidDepth       = errors.New("max depth must not be negative")
	ErrImageTooLarge      = errors.New("image exceeds the pixel limit")
)

// Validate checks the configuration before any geometry is derived from it
func (c CameraConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width %d: %w", c.Width, ErrInvalidWidth)
	}
	if !(c.AspectRatio > 0) || math32.IsInf(c.AspectRatio, 1) {
		return fmt.Errorf("aspect ratio %g: %w", c.AspectRatio, ErrInvalidAspectRatio)
	}
	height := imageHeight(c.Width, c.AspectRatio)
	if math32.IsInf(height, 0) || math32.IsNaN(height) || height > MaxImagePixels ||
		int64(c.Width)*int64(height) > MaxImagePixels {
		return fmt.Errorf("%d wide at aspect ratio %g: %w", c.Width, c.AspectRatio, ErrImageTooLarge)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel %d: %w", c.SamplesPerPixel, ErrInvalidSamples)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth %d: %w", c.MaxDepth, ErrInvalidDepth)
	}
	return nil
}

// Camera generates rays for rendering. Its geometry is fixed at construction.
type Camera struct {
	config            CameraConfig
	height            int       // Rendered image height
	pixelSamplesScale float32   // Color scale factor for a sum of pixel samples
	center            core.Vec3 // Camera center
	pixel00Loc        core.Vec3 // Location of pixel 0, 0
	pixelDeltaU       core.Vec3 // Offset to pixel to the right
	pixelDeltaV       core.Vec3 // Offset to pixel below
}

// NewCamera validates the configuration and derives the viewport
func NewCamera(config CameraConfig) (*Camera, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid camera config: %w", err)
	}

	c := &Camera{config: config}
	c.initialize()
	return c, nil
}

// imageHeight rounds width/aspect to the nearest row count, at least 1.
// It overflows to +Inf for tiny aspect ratios.
func imageHeight(width int, aspect float32) float32 {
	return max(1, math32.Floor(float32(width)/aspect+0.5))
}

func (c *Camera) initialize() {
	c.height = int(imageHeight(c.config.Width, c.config.AspectRatio))
	c.pixelSamplesScale = 1.0 / float32(c.config.SamplesPerPixel)

	focalLength := float32(1.0)
	viewportHeight := float32(2.0)
	// Use the real image ratio, which differs from AspectRatio after rounding
	viewportWidth := viewportHeight * (float32(c.config.Width) / float32(c.height))
	c.center = core.NewVec3(0, 0, 0)

	// Image rows grow downward while world Y grows upward
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -viewportHeight, 0)

	c.pixelDeltaU = viewportU.Divide(float32(c.config.Width))
	c.pixelDeltaV = viewportV.Divide(float32(c.height))

	viewportUpperLeft := c.center.
		Subtract(core.NewVec3(0, 0, focalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.config.Width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig { return c.config }

// GetRay returns a ray from the camera center through a random point inside pixel (i, j)
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := core.SampleSquare(sampler)
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float32(i) + offset.X)).
		Add(c.pixelDeltaV.Multiply(float32(j) + offset.Y))

	return core.NewRay(c.center, pixelSample.Subtract(c.center))
}
