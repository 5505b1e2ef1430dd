package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, [3]float32{}, c.Position())
	assert.Equal(t, [3]float32{0, 0, -1}, c.Front())
	assert.Equal(t, [3]float32{0, 1, 0}, c.Up())
	assert.Equal(t, common.IdentityMatrix, c.ViewMatrix())
}

func TestViewMatrixMovesEyeToOrigin(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 10), WithFront(0, 0, -1))
	view := c.ViewMatrix()

	eye := common.TransformPoint(view[:], [3]float32{0, 0, 10})
	for i := range eye {
		assert.InDelta(t, 0, eye[i], 1e-5)
	}
	ahead := common.TransformPoint(view[:], [3]float32{0, 0, 0})
	assert.InDelta(t, -10, ahead[2], 1e-5)
}

func TestSetFrontIgnoresZero(t *testing.T) {
	c := NewCamera()
	c.SetFront(0, 0, 0)
	c.SetUp(0, 0, 0)
	assert.Equal(t, [3]float32{0, 0, -1}, c.Front())
	assert.Equal(t, [3]float32{0, 1, 0}, c.Up())
}

func TestLookAt(t *testing.T) {
	c := NewCamera(WithPosition(1, 0, 0))
	c.LookAt(1, 0, 5)
	front := c.Front()
	assert.InDeltaSlice(t, []float32{0, 0, 1}, front[:], 1e-6)

	// Looking at the eye itself keeps the previous direction.
	c.LookAt(1, 0, 0)
	front = c.Front()
	assert.InDeltaSlice(t, []float32{0, 0, 1}, front[:], 1e-6)
}

func TestRigConvergesOnTarget(t *testing.T) {
	cam := NewCamera()
	rig := NewRig(cam, WithOffset(0, 0, 10), WithSpring(8, 1))
	rig.SetTarget(4, 2, 0)

	for i := 0; i < 600; i++ {
		rig.Update(1.0 / 60)
	}

	pos := cam.Position()
	assert.InDelta(t, 4, pos[0], 1e-3)
	assert.InDelta(t, 2, pos[1], 1e-3)
	assert.InDelta(t, 10, pos[2], 1e-3)
	assert.InDelta(t, -1, cam.Front()[2], 1e-3)
}

func TestRigSnapAndZeroDelta(t *testing.T) {
	cam := NewCamera(WithPosition(5, 5, 5))
	rig := NewRig(cam, WithTarget(1, 1, 1), WithOffset(0, 1, 0), WithLookAtTarget(false))
	require.Equal(t, [3]float32{1, 1, 1}, rig.Target())

	rig.Update(0)
	assert.Equal(t, [3]float32{5, 5, 5}, cam.Position())

	rig.Snap()
	assert.Equal(t, [3]float32{1, 2, 1}, cam.Position())
	assert.Equal(t, [3]float32{0, 0, -1}, cam.Front())
	assert.Same(t, cam, rig.Camera())
}

func TestNewRigPanicsOnNilCamera(t *testing.T) {
	assert.Panics(t, func() { NewRig(nil) })
}
