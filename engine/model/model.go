package model

import (
	"github.com/Carmen-Shannon/oxy-gl/common"
)

// model is the implementation of the Model interface.
type model struct {
	name            string
	kind            Kind
	program         common.ProgramHandle
	vertexArray     common.VertexArrayHandle
	vertexBufferLen int
	indexCount      int
	diffuseTexture  common.TextureHandle
	normalTexture   common.TextureHandle
}

// Model defines the interface for the device-side half of a scene object: the shader
// program it draws with, its vertex array and element counts, and its optional textures.
//
// Handles are created by the graphics backend during loading and are only referenced here;
// the model never owns or releases device resources. A zero handle means "absent".
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the name of the model
	Name() string

	// Kind retrieves the geometry kind, which selects indexed or non-indexed drawing.
	//
	// Returns:
	//   - Kind: the model kind
	Kind() Kind

	// Program retrieves the shader program used to draw the model.
	//
	// Returns:
	//   - common.ProgramHandle: the program handle, zero if none was linked
	Program() common.ProgramHandle

	// VertexArray retrieves the vertex array holding the model's attribute bindings.
	//
	// Returns:
	//   - common.VertexArrayHandle: the vertex array handle, zero if none was created
	VertexArray() common.VertexArrayHandle

	// VertexBufferLen retrieves the number of floats in the position buffer.
	//
	// Returns:
	//   - int: the position buffer length in floats
	VertexBufferLen() int

	// IndexCount retrieves the number of 16-bit indices in the element buffer.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// DiffuseTexture retrieves the diffuse texture bound on unit 0, zero if none.
	//
	// Returns:
	//   - common.TextureHandle: the diffuse texture handle
	DiffuseTexture() common.TextureHandle

	// NormalTexture retrieves the normal map bound on unit 1, zero if none.
	//
	// Returns:
	//   - common.TextureHandle: the normal texture handle
	NormalTexture() common.TextureHandle

	// DrawCall selects the draw submission for the model's kind: non-indexed kinds draw
	// VertexBufferLen / 3 vertices, every other kind draws IndexCount indices.
	//
	// Returns:
	//   - DrawCall: the draw parameters
	DrawCall() DrawCall

	// SetProgram sets the shader program handle.
	//
	// Parameters:
	//   - h: the program handle
	SetProgram(h common.ProgramHandle)

	// SetVertexArray sets the vertex array handle and the element counts it was uploaded with.
	//
	// Parameters:
	//   - h: the vertex array handle
	//   - vertexBufferLen: the position buffer length in floats
	//   - indexCount: the number of 16-bit indices (0 for non-indexed kinds)
	SetVertexArray(h common.VertexArrayHandle, vertexBufferLen, indexCount int)

	// SetTextures sets the diffuse and normal texture handles (zero for absent).
	//
	// Parameters:
	//   - diffuse: the diffuse texture handle
	//   - normal: the normal texture handle
	SetTextures(diffuse, normal common.TextureHandle)
}

var _ Model = &model{}

// NewModel creates a new Model instance configured with the provided options.
// The default kind is KindMesh.
//
// Parameters:
//   - options: variadic list of ModelBuilderOption functions to configure the model
//
// Returns:
//   - Model: a new Model instance
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		kind: KindMesh,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Kind() Kind {
	return m.kind
}

func (m *model) Program() common.ProgramHandle {
	return m.program
}

func (m *model) VertexArray() common.VertexArrayHandle {
	return m.vertexArray
}

func (m *model) VertexBufferLen() int {
	return m.vertexBufferLen
}

func (m *model) IndexCount() int {
	return m.indexCount
}

func (m *model) DiffuseTexture() common.TextureHandle {
	return m.diffuseTexture
}

func (m *model) NormalTexture() common.TextureHandle {
	return m.normalTexture
}

func (m *model) DrawCall() DrawCall {
	if m.kind.Indexed() {
		return DrawCall{Indexed: true, Count: m.indexCount}
	}
	return DrawCall{Count: m.vertexBufferLen / ComponentsPerVertex}
}

func (m *model) SetProgram(h common.ProgramHandle) {
	m.program = h
}

func (m *model) SetVertexArray(h common.VertexArrayHandle, vertexBufferLen, indexCount int) {
	m.vertexArray = h
	m.vertexBufferLen = vertexBufferLen
	m.indexCount = indexCount
}

func (m *model) SetTextures(diffuse, normal common.TextureHandle) {
	m.diffuseTexture = diffuse
	m.normalTexture = normal
}
