package camera

import (
	"sync"

	"github.com/charmbracelet/harmonica"
)

// springAxis tracks one damped position component and its spring velocity.
type springAxis struct {
	pos float64
	vel float64
}

type rigImpl struct {
	mu *sync.Mutex

	cam       Camera
	frequency float64
	damping   float64
	offset    [3]float32
	target    [3]float32
	lookAt    bool

	spring harmonica.Spring
	step   float32
	axes   [3]springAxis
}

// Rig drives a Camera towards a moving target with critically damped (by default)
// spring motion, so game logic can retarget the camera every frame without jitter.
// The camera is placed at target + offset and, optionally, turned to face the target.
type Rig interface {
	// Camera returns the camera driven by the rig.
	//
	// Returns:
	//   - Camera: the driven camera
	Camera() Camera

	// Target returns the point the rig is following.
	//
	// Returns:
	//   - [3]float32: the target point
	Target() [3]float32

	// SetTarget sets the point the rig follows. The camera converges on target + offset.
	//
	// Parameters:
	//   - x, y, z: the target point
	SetTarget(x, y, z float32)

	// Snap moves the camera to its resting position immediately and clears spring velocity.
	Snap()

	// Update advances the springs by dt seconds and writes the result to the camera.
	// Non-positive dt leaves the camera untouched.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Update(dt float32)
}

var _ Rig = &rigImpl{}

// NewRig creates a Rig that drives cam. The rig starts at rest at the camera's
// current position, following the origin.
//
// Parameters:
//   - cam: the camera to drive (must not be nil)
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewRig(cam Camera, options ...RigBuilderOption) Rig {
	if cam == nil {
		panic("camera: NewRig requires a non-nil camera")
	}
	r := &rigImpl{
		mu:        &sync.Mutex{},
		cam:       cam,
		frequency: 6.0,
		damping:   1.0,
		lookAt:    true,
	}
	for _, option := range options {
		option(r)
	}
	pos := cam.Position()
	for i := range r.axes {
		r.axes[i].pos = float64(pos[i])
	}
	return r
}

func (r *rigImpl) Camera() Camera {
	return r.cam
}

func (r *rigImpl) Target() [3]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

func (r *rigImpl) SetTarget(x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = [3]float32{x, y, z}
}

func (r *rigImpl) Snap() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.axes {
		r.axes[i] = springAxis{pos: float64(r.target[i] + r.offset[i])}
	}
	r.apply()
}

func (r *rigImpl) Update(dt float32) {
	if dt <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	// harmonica bakes the time step into the spring coefficients.
	if dt != r.step {
		r.spring = harmonica.NewSpring(float64(dt), r.frequency, r.damping)
		r.step = dt
	}
	for i := range r.axes {
		goal := float64(r.target[i] + r.offset[i])
		r.axes[i].pos, r.axes[i].vel = r.spring.Update(r.axes[i].pos, r.axes[i].vel, goal)
	}
	r.apply()
}

// apply writes the spring state to the camera. Caller must hold the mutex.
func (r *rigImpl) apply() {
	x, y, z := float32(r.axes[0].pos), float32(r.axes[1].pos), float32(r.axes[2].pos)
	r.cam.SetPosition(x, y, z)
	if r.lookAt {
		r.cam.LookAt(r.target[0], r.target[1], r.target[2])
	}
}
