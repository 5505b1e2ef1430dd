package model

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
)

// ModelBuilderOption is a function that configures a model instance during construction.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the model.
//
// Parameters:
//   - name: the identifier for the model
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithKind is an option builder that sets the geometry kind of the model.
//
// Parameters:
//   - kind: the model kind
//
// Returns:
//   - ModelBuilderOption: a function that applies the kind option to a model
func WithKind(kind Kind) ModelBuilderOption {
	return func(m *model) {
		m.kind = kind
	}
}

// WithProgram is an option builder that sets the shader program handle.
//
// Parameters:
//   - h: the program handle
//
// Returns:
//   - ModelBuilderOption: a function that applies the program option to a model
func WithProgram(h common.ProgramHandle) ModelBuilderOption {
	return func(m *model) {
		m.program = h
	}
}

// WithVertexArray is an option builder that sets the vertex array handle and element counts.
//
// Parameters:
//   - h: the vertex array handle
//   - vertexBufferLen: the position buffer length in floats
//   - indexCount: the number of 16-bit indices (0 for non-indexed kinds)
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertex array option to a model
func WithVertexArray(h common.VertexArrayHandle, vertexBufferLen, indexCount int) ModelBuilderOption {
	return func(m *model) {
		m.vertexArray = h
		m.vertexBufferLen = vertexBufferLen
		m.indexCount = indexCount
	}
}

// WithDiffuseTexture is an option builder that sets the diffuse texture handle.
//
// Parameters:
//   - h: the texture handle
//
// Returns:
//   - ModelBuilderOption: a function that applies the diffuse texture option to a model
func WithDiffuseTexture(h common.TextureHandle) ModelBuilderOption {
	return func(m *model) {
		m.diffuseTexture = h
	}
}

// WithNormalTexture is an option builder that sets the normal map texture handle.
//
// Parameters:
//   - h: the texture handle
//
// Returns:
//   - ModelBuilderOption: a function that applies the normal texture option to a model
func WithNormalTexture(h common.TextureHandle) ModelBuilderOption {
	return func(m *model) {
		m.normalTexture = h
	}
}
