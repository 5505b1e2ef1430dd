package game_object

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/model"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-gl/engine/transform"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject. Scene.Add overwrites it.
//
// Parameters:
//   - id: handle for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets the descriptive name of the GameObject.
//
// Parameters:
//   - name: the object name
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithHUD marks the GameObject as an overlay object drawn after the world without depth testing.
//
// Parameters:
//   - hud: true to draw in the overlay pass
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the HUD flag
func WithHUD(hud bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.hud.Store(hud)
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithTransform sets the full local transform of the GameObject.
//
// Parameters:
//   - tr: the local transform
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the transform
func WithTransform(tr transform.Transform) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.tr = tr
	}
}

// WithPosition sets the initial position of the GameObject.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.tr.Position = [3]float32{x, y, z}
	}
}

// WithScale sets the initial scale of the GameObject.
//
// Parameters:
//   - sx, sy, sz: scale components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy, sz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.tr.Scale = [3]float32{sx, sy, sz}
	}
}

// WithRotation sets the initial rotation of the GameObject from Euler angles.
//
// Parameters:
//   - rx, ry, rz: rotation angles in radians
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(rx, ry, rz float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.tr.SetRotationEuler(rx, ry, rz)
	}
}

// WithCentroid sets the pivot of the GameObject.
//
// Parameters:
//   - x, y, z: pivot in local coordinates
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the centroid
func WithCentroid(x, y, z float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.tr.Centroid = [3]float32{x, y, z}
	}
}

// WithParent sets the handle of the parent GameObject.
//
// Parameters:
//   - parentID: the parent's scene handle
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the parent
func WithParent(parentID uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.parentID = parentID
	}
}

// WithMaterial sets the Material for this GameObject.
//
// Parameters:
//   - m: the Material to associate
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Material
func WithMaterial(m material.Material) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mat = m
	}
}

// WithModel sets the Model for this GameObject.
//
// Parameters:
//   - m: the Model to associate
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Model
func WithModel(m model.Model) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mdl = m
	}
}
