package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/chewxy/math32"
)

type cameraImpl struct {
	mu *sync.Mutex

	position [3]float32
	front    [3]float32
	up       [3]float32
}

// Camera defines the interface for the scene's viewpoint: an eye position, the
// direction it looks along (front) and an up vector. The projection is not owned
// by the camera; it is derived each frame from the scene settings and viewport.
type Camera interface {
	// Position returns the eye position in world space.
	//
	// Returns:
	//   - [3]float32: the eye position
	Position() [3]float32

	// Front returns the viewing direction. It need not be normalized.
	//
	// Returns:
	//   - [3]float32: the viewing direction
	Front() [3]float32

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - [3]float32: the up vector
	Up() [3]float32

	// ViewMatrix computes the 4x4 view matrix looking from Position towards Position + Front.
	//
	// Returns:
	//   - [16]float32: the column-major view matrix
	ViewMatrix() [16]float32

	// SetPosition sets the eye position.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetFront sets the viewing direction. A zero vector is ignored.
	//
	// Parameters:
	//   - x, y, z: direction components
	SetFront(x, y, z float32)

	// SetUp sets the camera's up vector. A zero vector is ignored.
	//
	// Parameters:
	//   - x, y, z: up vector components
	SetUp(x, y, z float32)

	// LookAt points the camera at a world-space point without moving it.
	// Does nothing if the point coincides with the eye position.
	//
	// Parameters:
	//   - x, y, z: the point to look at
	LookAt(x, y, z float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with the given options.
// By default the camera sits at the origin looking down -Z with +Y up.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:    &sync.Mutex{},
		front: [3]float32{0, 0, -1},
		up:    [3]float32{0, 1, 0},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Position() [3]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Front() [3]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front
}

func (c *cameraImpl) Up() [3]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var view [16]float32
	center := common.Add3(c.position, c.front)
	common.LookAt(view[:],
		c.position[0], c.position[1], c.position[2],
		center[0], center[1], center[2],
		c.up[0], c.up[1], c.up[2],
	)
	return view
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = [3]float32{x, y, z}
}

func (c *cameraImpl) SetFront(x, y, z float32) {
	if x == 0 && y == 0 && z == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.front = [3]float32{x, y, z}
}

func (c *cameraImpl) SetUp(x, y, z float32) {
	if x == 0 && y == 0 && z == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = [3]float32{x, y, z}
}

func (c *cameraImpl) LookAt(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	dx, dy, dz := x-c.position[0], y-c.position[1], z-c.position[2]
	length := math32.Sqrt(dx*dx + dy*dy + dz*dz)
	if length == 0 {
		return
	}
	c.front = [3]float32{dx / length, dy / length, dz / length}
}
