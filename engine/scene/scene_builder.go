package scene

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/game_object"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithSettings sets the initial render settings of the scene.
//
// Parameters:
//   - settings: the render settings
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithSettings(settings Settings) SceneBuilderOption {
	return func(s *scene) {
		s.settings = settings
	}
}

// WithObjects adds initial objects to the scene, in order.
// Objects without IDs (or with colliding IDs) are assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			if obj != nil {
				s.addLocked(obj)
			}
		}
	}
}

// WithLights adds initial point lights to the scene, in order.
//
// Parameters:
//   - lights: the lights to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLights(lights ...light.Light) SceneBuilderOption {
	return func(s *scene) {
		for _, l := range lights {
			if l != nil {
				s.addLightLocked(l)
			}
		}
	}
}
