package model

import "strings"

// Kind identifies how a model's geometry was produced, which in turn decides how it is drawn.
type Kind string

const (
	// KindMesh is geometry loaded from a mesh asset, stored as a flat non-indexed triangle list.
	KindMesh Kind = "mesh"
	// KindCube is the built-in indexed cube primitive.
	KindCube Kind = "cube"
	// KindPlane is the built-in indexed plane primitive.
	KindPlane Kind = "plane"
	// KindMeshCustom is application-supplied non-indexed triangle data.
	KindMeshCustom Kind = "meshCustom"
)

// Indexed reports whether models of this kind are drawn from an index buffer.
// Only the raw triangle-list kinds (mesh and meshCustom) draw non-indexed.
//
// Returns:
//   - bool: true if draws use 16-bit indices
func (k Kind) Indexed() bool {
	return k != KindMesh && k != KindMeshCustom
}

// Custom reports whether the kind is an application-defined variant (any "...Custom" kind).
//
// Returns:
//   - bool: true for custom kinds
func (k Kind) Custom() bool {
	return strings.HasSuffix(string(k), "Custom")
}

// ComponentsPerVertex is the number of floats per position in a non-indexed vertex buffer.
const ComponentsPerVertex = 3

// DrawCall describes the draw submission for one model.
type DrawCall struct {
	// Indexed selects an element draw with 16-bit indices instead of an array draw.
	Indexed bool
	// Count is the number of indices (indexed) or vertices (non-indexed) to draw.
	Count int
}
