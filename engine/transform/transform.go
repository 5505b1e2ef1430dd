package transform

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
)

// Transform is the local placement of a scene object: a translation, a rotation
// and a non-uniform scale, where rotation and scale are applied about Centroid
// (the object's pivot) rather than the local origin.
//
// The zero value is usable: an all-zero Rotation is treated as the identity and
// an all-zero Scale as (1, 1, 1), so a partially-populated Transform degrades to
// the identity instead of collapsing the object.
type Transform struct {
	// Position is the translation applied last, in parent space.
	Position [3]float32
	// Rotation is a column-major 4x4 rotation matrix.
	Rotation [16]float32
	// Scale is the per-axis scale factor.
	Scale [3]float32
	// Centroid is the pivot about which Rotation and Scale are applied.
	Centroid [3]float32
}

// New returns an identity Transform (no translation, no rotation, unit scale, pivot at the origin).
//
// Returns:
//   - Transform: the identity transform
func New() Transform {
	return Transform{
		Rotation: common.IdentityMatrix,
		Scale:    [3]float32{1, 1, 1},
	}
}

// SetRotationAxisAngle sets the rotation to angle radians about the axis (x, y, z).
//
// Parameters:
//   - x, y, z: rotation axis (need not be normalized)
//   - angle: rotation angle in radians
func (t *Transform) SetRotationAxisAngle(x, y, z, angle float32) {
	common.RotationAxisAngle(t.Rotation[:], x, y, z, angle)
}

// SetRotationQuat sets the rotation from the quaternion (x, y, z, w).
//
// Parameters:
//   - x, y, z, w: quaternion components (need not be normalized)
func (t *Transform) SetRotationQuat(x, y, z, w float32) {
	common.RotationQuat(t.Rotation[:], x, y, z, w)
}

// SetRotationEuler sets the rotation from Euler angles applied in Y * X * Z order.
//
// Parameters:
//   - rx, ry, rz: rotation angles in radians around each axis
func (t *Transform) SetRotationEuler(rx, ry, rz float32) {
	common.RotationEuler(t.Rotation[:], rx, ry, rz)
}

// LocalMatrix composes the object's local model matrix:
//
//	translate(Position) * translate(Centroid) * Rotation * scale(Scale) * translate(-Centroid)
//
// Non-finite position or centroid components fall back to zero, a non-finite or
// all-zero rotation falls back to the identity, and a non-finite or all-zero
// scale falls back to unit scale.
//
// Returns:
//   - [16]float32: the column-major local model matrix
func (t Transform) LocalMatrix() [16]float32 {
	pos := finiteOr(t.Position, 0)
	centroid := finiteOr(t.Centroid, 0)

	rot := t.Rotation
	if isZero16(rot) || !finite16(rot) {
		rot = common.IdentityMatrix
	}

	scale := t.Scale
	if scale == [3]float32{} || !finite3(scale) {
		scale = [3]float32{1, 1, 1}
	}

	var m, tmp [16]float32
	common.Translation4(m[:], pos[0]+centroid[0], pos[1]+centroid[1], pos[2]+centroid[2])
	common.Mul4(m[:], m[:], rot[:])
	common.Scaling4(tmp[:], scale[0], scale[1], scale[2])
	common.Mul4(m[:], m[:], tmp[:])
	common.Translation4(tmp[:], -centroid[0], -centroid[1], -centroid[2])
	common.Mul4(m[:], m[:], tmp[:])
	return m
}

func finiteOr(v [3]float32, fallback float32) [3]float32 {
	for i := range v {
		if !common.IsFinite(v[i]) {
			v[i] = fallback
		}
	}
	return v
}

func finite3(v [3]float32) bool {
	return common.IsFinite(v[0]) && common.IsFinite(v[1]) && common.IsFinite(v[2])
}

func finite16(m [16]float32) bool {
	for _, v := range m {
		if !common.IsFinite(v) {
			return false
		}
	}
	return true
}

func isZero16(m [16]float32) bool {
	return m == [16]float32{}
}
