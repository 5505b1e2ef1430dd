package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-gl/engine/model"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-gl/engine/transform"
)

type gameObject struct {
	mu       sync.RWMutex
	id       uint64
	name     string
	hud      atomic.Bool
	enabled  atomic.Bool
	tr       transform.Transform
	parentID uint64
	mat      material.Material
	mdl      model.Model
}

// GameObject defines the interface for a renderable scene entity: a local transform,
// an optional parent, a material and the device-side model it is drawn with.
//
// Derived matrices are never stored on the object; they are recomputed every frame by
// a transform.Resolver from the object's Transform and its parent chain.
type GameObject interface {
	transform.Node

	// SetID sets the object's scene handle. Called by the Scene when the object is added.
	//
	// Parameters:
	//   - id: the handle to assign
	SetID(id uint64)

	// SetName sets the object's descriptive name. Names need not be unique.
	//
	// Parameters:
	//   - name: the new name
	SetName(name string)

	// HUD reports whether the object is drawn in the overlay pass.
	//
	// Returns:
	//   - bool: true for HUD objects
	HUD() bool

	// SetHUD sets whether the object is drawn in the overlay pass.
	//
	// Parameters:
	//   - hud: true to draw over the world without depth testing
	SetHUD(hud bool)

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetTransform replaces the object's local transform.
	//
	// Parameters:
	//   - tr: the new local transform
	SetTransform(tr transform.Transform)

	// SetPosition updates the translation of the local transform.
	//
	// Parameters:
	//   - x, y, z: new position components
	SetPosition(x, y, z float32)

	// SetRotationEuler updates the rotation of the local transform from Euler angles.
	//
	// Parameters:
	//   - rx, ry, rz: rotation angles in radians
	SetRotationEuler(rx, ry, rz float32)

	// SetRotationAxisAngle updates the rotation of the local transform from an axis and angle.
	//
	// Parameters:
	//   - x, y, z: rotation axis
	//   - angle: rotation angle in radians
	SetRotationAxisAngle(x, y, z, angle float32)

	// SetScale updates the scale of the local transform.
	//
	// Parameters:
	//   - sx, sy, sz: new scale components
	SetScale(sx, sy, sz float32)

	// SetCentroid updates the pivot about which rotation and scale are applied.
	//
	// Parameters:
	//   - x, y, z: pivot in local coordinates
	SetCentroid(x, y, z float32)

	// SetParent sets the handle of the parent object, 0 to detach.
	//
	// Parameters:
	//   - parentID: the parent handle
	SetParent(parentID uint64)

	// Material returns the surface material, or nil if none is set.
	//
	// Returns:
	//   - material.Material: the material or nil
	Material() material.Material

	// SetMaterial assigns the surface material.
	//
	// Parameters:
	//   - m: the Material to associate
	SetMaterial(m material.Material)

	// Model returns the Model associated with this object, or nil if not set.
	//
	// Returns:
	//   - model.Model: the associated model or nil
	Model() model.Model

	// SetModel assigns a Model to this object.
	//
	// Parameters:
	//   - m: the Model to associate
	SetModel(m model.Model)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject with the given options.
// Objects start enabled, unparented, with an identity transform and a default material.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		tr:  transform.New(),
		mat: material.NewMaterial(),
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.id
}

func (g *gameObject) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.name
}

func (g *gameObject) Transform() transform.Transform {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tr
}

func (g *gameObject) ParentID() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.parentID
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) SetName(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.name = name
}

func (g *gameObject) HUD() bool {
	return g.hud.Load()
}

func (g *gameObject) SetHUD(hud bool) {
	g.hud.Store(hud)
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetTransform(tr transform.Transform) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tr = tr
}

func (g *gameObject) SetPosition(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tr.Position = [3]float32{x, y, z}
}

func (g *gameObject) SetRotationEuler(rx, ry, rz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tr.SetRotationEuler(rx, ry, rz)
}

func (g *gameObject) SetRotationAxisAngle(x, y, z, angle float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tr.SetRotationAxisAngle(x, y, z, angle)
}

func (g *gameObject) SetScale(sx, sy, sz float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tr.Scale = [3]float32{sx, sy, sz}
}

func (g *gameObject) SetCentroid(x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tr.Centroid = [3]float32{x, y, z}
}

func (g *gameObject) SetParent(parentID uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.parentID = parentID
}

func (g *gameObject) Material() material.Material {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mat
}

func (g *gameObject) SetMaterial(m material.Material) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mat = m
}

func (g *gameObject) Model() model.Model {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mdl
}

func (g *gameObject) SetModel(m model.Model) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mdl = m
}
