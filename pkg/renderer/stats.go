package renderer

import (
	"fmt"
	"time"

	"github.com/NewtonVan/RayTracing1/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width        int           // Image width in pixels
	Height       int           // Image height in pixels
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of samples taken
	Elapsed      time.Duration // Wall time spent rendering
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d pixels, %d samples (%.1f per pixel) in %v",
		s.Width, s.Height, s.TotalPixels, s.TotalSamples, s.AverageSamples(), s.Elapsed)
}

// PixelStats accumulates color samples for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}
