package scene

import (
	"github.com/NewtonVan/RayTracing1/pkg/core"
	"github.com/NewtonVan/RayTracing1/pkg/geometry"
	"github.com/NewtonVan/RayTracing1/pkg/renderer"
)

// NewSphereGridScene creates a row of small spheres over the ground sphere.
// The inner spheres are grouped in their own list, nested inside the world.
func NewSphereGridScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		Width:           400,
		SamplesPerPixel: 50,
		MaxDepth:        25,
	}

	gridSize := 7
	spacing := float32(0.5)
	sphereRadius := spacing * 0.35
	groundTop := float32(-0.5)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100), // ground
	)
	inner := geometry.NewHittableList()

	for i := 0; i < gridSize; i++ {
		// Centered around x=0, sitting on the ground
		x := (float32(i) - float32(gridSize-1)/2) * spacing
		sphere := geometry.NewSphere(core.NewVec3(x, groundTop+sphereRadius, -1.5), sphereRadius)

		if i == 0 || i == gridSize-1 {
			world.Add(sphere)
		} else {
			inner.Add(sphere)
		}
	}
	world.Add(inner)

	return &Scene{
		Name:         "spheregrid",
		World:        world,
		CameraConfig: mergeOverrides(defaultCameraConfig, cameraOverrides),
	}
}
