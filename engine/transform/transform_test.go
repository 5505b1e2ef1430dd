package transform

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertMatrixInDelta(t *testing.T, want, got [16]float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "element %d", i)
	}
}

func assertPointInDelta(t *testing.T, want, got [3]float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d", i)
	}
}

func TestLocalMatrixIdentity(t *testing.T) {
	assert.Equal(t, common.IdentityMatrix, New().LocalMatrix())
	assert.Equal(t, common.IdentityMatrix, Transform{}.LocalMatrix(), "zero value degrades to identity")
}

func TestLocalMatrixTranslation(t *testing.T) {
	tr := New()
	tr.Position = [3]float32{1, 2, 3}
	m := tr.LocalMatrix()
	assertPointInDelta(t, [3]float32{1, 2, 3}, common.TransformPoint(m[:], [3]float32{}))
}

func TestLocalMatrixRotatesAboutCentroid(t *testing.T) {
	tr := New()
	tr.Centroid = [3]float32{1, 0, 0}
	tr.SetRotationAxisAngle(0, 1, 0, math.Pi)
	m := tr.LocalMatrix()

	// The pivot is a fixed point of its own rotation.
	assertPointInDelta(t, [3]float32{1, 0, 0}, common.TransformPoint(m[:], tr.Centroid))
	// The local origin swings around the pivot.
	assertPointInDelta(t, [3]float32{2, 0, 0}, common.TransformPoint(m[:], [3]float32{}))
}

func TestLocalMatrixScalesAboutCentroid(t *testing.T) {
	tr := New()
	tr.Centroid = [3]float32{1, 1, 1}
	tr.Scale = [3]float32{2, 2, 2}
	m := tr.LocalMatrix()

	assertPointInDelta(t, [3]float32{1, 1, 1}, common.TransformPoint(m[:], tr.Centroid))
	assertPointInDelta(t, [3]float32{3, 3, 3}, common.TransformPoint(m[:], [3]float32{2, 2, 2}))
}

func TestLocalMatrixNonFiniteFallbacks(t *testing.T) {
	nan := float32(math.NaN())
	tr := Transform{
		Position: [3]float32{nan, 1, 0},
		Scale:    [3]float32{nan, 1, 1},
	}
	tr.Rotation[0] = float32(math.Inf(1))

	m := tr.LocalMatrix()
	for i, v := range m {
		assert.True(t, common.IsFinite(v), "element %d is not finite", i)
	}
	assertPointInDelta(t, [3]float32{0, 1, 0}, common.TransformPoint(m[:], [3]float32{}))
}

func TestSetRotationQuatMatchesAxisAngle(t *testing.T) {
	half := float32(math.Pi / 4)
	a, b := New(), New()
	a.SetRotationQuat(0, float32(math.Sin(float64(half))), 0, float32(math.Cos(float64(half))))
	b.SetRotationAxisAngle(0, 1, 0, math.Pi/2)
	assertMatrixInDelta(t, b.Rotation, a.Rotation)
}
