package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NewtonVan/RayTracing1/pkg/renderer"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by Create
	DisplayName string // Human readable name
	Description string
}

type sceneFactory func(cameraOverrides ...renderer.CameraConfig) *Scene

var builtInScenes = map[string]struct {
	info    SceneInfo
	factory sceneFactory
}{
	"default": {
		SceneInfo{ID: "default", DisplayName: titleCase("default"), Description: "Sphere resting on a ground sphere"},
		NewDefaultScene,
	},
	"spheregrid": {
		SceneInfo{ID: "spheregrid", DisplayName: "Sphere Grid", Description: "Row of small spheres, partly in a nested list"},
		NewSphereGridScene,
	},
	"inside": {
		SceneInfo{ID: "inside", DisplayName: titleCase("inside"), Description: "Camera enclosed by a sphere; every path is absorbed"},
		NewInsideScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, entry := range builtInScenes {
		scenes = append(scenes, entry.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Names returns the IDs accepted by Create, sorted
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.ID
	}
	return names
}

// Create builds the named scene with optional camera overrides
func Create(name string, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	entry, ok := builtInScenes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return entry.factory(cameraOverrides...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
