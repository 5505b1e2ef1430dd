package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertMatrixInDelta(t *testing.T, want, got []float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "element %d", i)
	}
}

func TestMul4Identity(t *testing.T) {
	var m, out [16]float32
	Translation4(m[:], 1, 2, 3)
	Mul4(out[:], IdentityMatrix[:], m[:])
	assert.Equal(t, m, out)

	// out aliases a
	Mul4(m[:], m[:], IdentityMatrix[:])
	assert.Equal(t, out, m)
}

func TestTranslateThenScaleOrder(t *testing.T) {
	var tr, sc, m [16]float32
	Translation4(tr[:], 10, 0, 0)
	Scaling4(sc[:], 2, 2, 2)
	Mul4(m[:], tr[:], sc[:])

	p := TransformPoint(m[:], [3]float32{1, 1, 1})
	assert.InDelta(t, 12, p[0], eps)
	assert.InDelta(t, 2, p[1], eps)
	assert.InDelta(t, 2, p[2], eps)
}

func TestRotationAxisAngle(t *testing.T) {
	var m [16]float32
	RotationAxisAngle(m[:], 0, 1, 0, math32.Pi/2)
	p := TransformPoint(m[:], [3]float32{1, 0, 0})
	assert.InDelta(t, 0, p[0], eps)
	assert.InDelta(t, 0, p[1], eps)
	assert.InDelta(t, -1, p[2], eps)
}

func TestRotationQuatMatchesAxisAngle(t *testing.T) {
	var fromAxis, fromQuat [16]float32
	angle := float32(0.7)
	RotationAxisAngle(fromAxis[:], 0, 0, 1, angle)
	RotationQuat(fromQuat[:], 0, 0, math32.Sin(angle/2), math32.Cos(angle/2))
	assertMatrixInDelta(t, fromAxis[:], fromQuat[:])
}

func TestInvert4(t *testing.T) {
	var m, inv, product [16]float32
	RotationEuler(m[:], 0.3, -1.1, 0.5)
	m[12], m[13], m[14] = 4, -2, 7

	assert.True(t, Invert4(inv[:], m[:]))
	Mul4(product[:], m[:], inv[:])
	assertMatrixInDelta(t, IdentityMatrix[:], product[:])
}

func TestInvert4Singular(t *testing.T) {
	var m, inv [16]float32
	Scaling4(m[:], 1, 0, 1)
	assert.False(t, Invert4(inv[:], m[:]))
}

func TestTranspose4(t *testing.T) {
	var m, tr [16]float32
	for i := range m {
		m[i] = float32(i)
	}
	Transpose4(tr[:], m[:])
	assert.Equal(t, float32(4), tr[1])
	assert.Equal(t, float32(1), tr[4])
	assert.Equal(t, m[0], tr[0])
}

func TestPerspective(t *testing.T) {
	var m [16]float32
	Perspective(m[:], DegToRad(90), 2, 0.1, 100)

	assert.InDelta(t, 0.5, m[0], eps)
	assert.InDelta(t, 1, m[5], eps)
	assert.Equal(t, float32(-1), m[11])
	assert.Zero(t, m[15])
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	var m [16]float32
	LookAt(m[:], 0, 0, 5, 0, 0, 0, 0, 1, 0)
	p := TransformPoint(m[:], [3]float32{0, 0, 5})
	assert.InDelta(t, 0, p[0], eps)
	assert.InDelta(t, 0, p[1], eps)
	assert.InDelta(t, 0, p[2], eps)

	target := TransformPoint(m[:], [3]float32{0, 0, 0})
	assert.InDelta(t, -5, target[2], eps)
}

func TestVectorHelpers(t *testing.T) {
	a, b := [3]float32{1, 2, 2}, [3]float32{0, 0, 0}
	assert.InDelta(t, 3, Distance3(a, b), eps)
	assert.Equal(t, [3]float32{2, 4, 4}, Add3(a, a))
	assert.Equal(t, [3]float32{-1, -2, -2}, Negate3(a))
	assert.True(t, IsFinite(1))
	assert.False(t, IsFinite(math32.NaN()))
	assert.False(t, IsFinite(math32.Inf(1)))
}

func TestCoalesceAndDegToRad(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.InDelta(t, math32.Pi, DegToRad(180), eps)
}
