// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// ProgramHandle identifies a linked shader program owned by the graphics backend.
// The zero value means "no program".
type ProgramHandle uint32

// Valid reports whether the handle refers to a program at all.
func (h ProgramHandle) Valid() bool { return h != 0 }

// TextureHandle identifies a 2D texture owned by the graphics backend.
// The zero value means "no texture".
type TextureHandle uint32

// Valid reports whether the handle refers to a texture at all.
func (h TextureHandle) Valid() bool { return h != 0 }

// VertexArrayHandle identifies a vertex array (VAO) owned by the graphics backend.
// The zero value means "no vertex data".
type VertexArrayHandle uint32

// Valid reports whether the handle refers to a vertex array at all.
func (h VertexArrayHandle) Valid() bool { return h != 0 }

// TextureUnit is the texture image unit a texture is bound to.
type TextureUnit uint32

const (
	// TextureUnitDiffuse holds the diffuse/albedo texture.
	TextureUnitDiffuse TextureUnit = 0
	// TextureUnitNormal holds the normal map texture.
	TextureUnitNormal TextureUnit = 1
)
