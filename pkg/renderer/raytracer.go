package renderer

import (
	"fmt"
	"image/color"
	"time"

	"github.com/chewxy/math32"

	"github.com/NewtonVan/RayTracing1/pkg/core"
	"github.com/NewtonVan/RayTracing1/pkg/geometry"
)

const (
	// albedo is the fraction of light kept at each diffuse bounce
	albedo = 0.5
	// shadowEpsilon skips hits at the previous bounce's exit point
	shadowEpsilon = 0.001
)

var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// PixelWriter receives the rendered image in scanline order
type PixelWriter interface {
	WriteHeader(width, height int) error
	WritePixel(c color.RGBA) error
}

// Raytracer handles the rendering process
type Raytracer struct {
	camera  *Camera
	world   geometry.Shape
	sampler core.Sampler
	logger  core.Logger
}

// NewRaytracer creates a new raytracer. The world must not change while rendering.
func NewRaytracer(camera *Camera, world geometry.Shape, sampler core.Sampler, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		camera:  camera,
		world:   world,
		sampler: sampler,
		logger:  logger,
	}
}

// Render writes the header, then every pixel row by row from the top, left to right.
// A writer error aborts the render.
func (rt *Raytracer) Render(w PixelWriter) (RenderStats, error) {
	startTime := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()
	stats := RenderStats{Width: width, Height: height}

	if err := w.WriteHeader(width, height); err != nil {
		return stats, fmt.Errorf("write header: %w", err)
	}

	for j := 0; j < height; j++ {
		rt.logger.Printf("Scanlines remaining: %d", height-j)
		for i := 0; i < width; i++ {
			ps := rt.samplePixel(i, j)
			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount

			pixelColor := ps.ColorAccum.Multiply(rt.camera.pixelSamplesScale)
			if err := w.WritePixel(pixelColor.GammaCorrect().ToColor()); err != nil {
				return stats, fmt.Errorf("write pixel (%d, %d): %w", i, j, err)
			}
		}
	}

	stats.Elapsed = time.Since(startTime)
	rt.logger.Printf("Done.")
	return stats, nil
}

// samplePixel folds SamplesPerPixel independent ray colors for pixel (i, j)
func (rt *Raytracer) samplePixel(i, j int) PixelStats {
	var ps PixelStats
	for range rt.camera.config.SamplesPerPixel {
		ray := rt.camera.GetRay(i, j, rt.sampler)
		ps.AddSample(RayColor(ray, rt.camera.config.MaxDepth, rt.world, rt.sampler))
	}
	return ps
}

// RayColor returns the color seen along a ray, following at most depth diffuse bounces.
// Each bounce keeps half the light; running out of depth returns black.
func RayColor(ray core.Ray, depth int, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	attenuation := float32(1.0)
	rayT := core.NewInterval(shadowEpsilon, math32.Inf(1))

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, rayT)
		if !isHit {
			return backgroundGradient(ray).Multiply(attenuation)
		}

		direction := hit.Normal.Add(core.RandomUnitVector(sampler))
		ray = core.NewRay(hit.Point, direction)
		attenuation *= albedo
	}

	return core.Vec3{}
}

// backgroundGradient blends white at straight down to sky blue at straight up
func backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Unit()
	a := 0.5 * (unitDirection.Y + 1.0)
	return skyWhite.Multiply(1.0 - a).Add(skyBlue.Multiply(a))
}
