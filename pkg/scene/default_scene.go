package scene

import (
	"github.com/NewtonVan/RayTracing1/pkg/core"
	"github.com/NewtonVan/RayTracing1/pkg/geometry"
	"github.com/NewtonVan/RayTracing1/pkg/renderer"
)

// NewDefaultScene creates a sphere resting on a much larger ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100), // ground
	)

	return &Scene{
		Name:         "default",
		World:        world,
		CameraConfig: mergeOverrides(defaultCameraConfig, cameraOverrides),
	}
}

// NewInsideScene places the camera inside a sphere. Every ray hits the far wall
// and no path escapes, so the image converges to black.
func NewInsideScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		AspectRatio:     1.0,
		Width:           100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
	}

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 5),
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5),
	)

	return &Scene{
		Name:         "inside",
		World:        world,
		CameraConfig: mergeOverrides(defaultCameraConfig, cameraOverrides),
	}
}
