package renderer

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/model"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
)

// RendererBackendType identifies the graphics backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeGL selects the OpenGL 4.1 core backend.
	BackendTypeGL RendererBackendType = iota

	// BackendTypeHeadless selects the recording backend that issues no device calls.
	BackendTypeHeadless
)

func (t RendererBackendType) String() string {
	switch t {
	case BackendTypeGL:
		return "gl"
	case BackendTypeHeadless:
		return "headless"
	}
	return "unknown"
}

// ErrInvalidHandle is returned by a backend when a handle does not name a live device object.
var ErrInvalidHandle = errors.New("invalid device handle")

// MeshData is CPU-side geometry uploaded by CreateMesh. Positions and Normals hold
// (x, y, z) triples, UVs hold (u, v) pairs. Indices may be empty for non-indexed meshes.
type MeshData struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint16
}

// TextureData is an RGBA8 image uploaded by CreateTexture.
type TextureData struct {
	Width  int
	Height int
	Pixels []byte
}

// RendererBackend is the capability set the Renderer drives. Implementations own every
// device object; the Renderer only passes handles back to the backend that created them.
//
// Uniform setters address uniforms by name on the program bound by the last successful
// UseProgram. Names the program does not declare are ignored, so a shader only receives
// the data it asks for.
type RendererBackend interface {
	// Type returns the backend implementation type.
	//
	// Returns:
	//   - RendererBackendType: the backend type
	Type() RendererBackendType

	// Viewport returns the size of the drawable surface in pixels.
	//
	// Returns:
	//   - width, height: the surface size
	Viewport() (width, height int)

	// SetViewport sets the size of the drawable surface in pixels.
	//
	// Parameters:
	//   - width, height: the new surface size
	SetViewport(width, height int)

	// SetPipelineState applies depth, blend and cull state.
	//
	// Parameters:
	//   - state: the state to apply
	SetPipelineState(state pipeline.State)

	// Clear clears the color buffer to color (alpha 1) and the depth buffer to depth.
	//
	// Parameters:
	//   - color: the RGB clear color
	//   - depth: the clear depth
	Clear(color [3]float32, depth float32)

	// UseProgram binds a linked shader program for subsequent uniform uploads and draws.
	//
	// Parameters:
	//   - h: the program handle
	//
	// Returns:
	//   - error: wraps ErrInvalidHandle if h does not name a live program
	UseProgram(h common.ProgramHandle) error

	// SetUniformMat4 uploads a column-major 4x4 matrix.
	SetUniformMat4(name string, v [16]float32)

	// SetUniformVec3 uploads a vec3.
	SetUniformVec3(name string, v [3]float32)

	// SetUniformVec3Array uploads len(v)/3 consecutive vec3 values. Empty slices are skipped.
	SetUniformVec3Array(name string, v []float32)

	// SetUniformFloat uploads a float.
	SetUniformFloat(name string, v float32)

	// SetUniformFloatArray uploads consecutive float values. Empty slices are skipped.
	SetUniformFloatArray(name string, v []float32)

	// SetUniformInt uploads an int (also used for sampler units and flags).
	SetUniformInt(name string, v int32)

	// BindTexture binds a 2D texture to a texture unit; a zero handle unbinds the unit.
	//
	// Parameters:
	//   - unit: the texture unit
	//   - h: the texture handle, zero to unbind
	//
	// Returns:
	//   - error: wraps ErrInvalidHandle if a non-zero h does not name a live texture
	BindTexture(unit common.TextureUnit, h common.TextureHandle) error

	// BindVertexArray binds the vertex array used by subsequent draws.
	//
	// Parameters:
	//   - h: the vertex array handle
	//
	// Returns:
	//   - error: wraps ErrInvalidHandle if h does not name a live vertex array
	BindVertexArray(h common.VertexArrayHandle) error

	// Draw submits a triangle-list draw using the bound program and vertex array.
	//
	// Parameters:
	//   - call: the draw parameters
	//
	// Returns:
	//   - error: an error if the device rejected the draw
	Draw(call model.DrawCall) error

	// CreateProgram compiles and links a vertex and fragment shader pair.
	//
	// Parameters:
	//   - vertex: the vertex stage
	//   - fragment: the fragment stage
	//
	// Returns:
	//   - common.ProgramHandle: the linked program
	//   - error: an error if compilation or linking fails
	CreateProgram(vertex, fragment shader.Shader) (common.ProgramHandle, error)

	// CreateMesh uploads geometry into a new vertex array.
	//
	// Parameters:
	//   - mesh: the geometry to upload
	//
	// Returns:
	//   - common.VertexArrayHandle: the vertex array
	//   - error: an error if the upload fails
	CreateMesh(mesh MeshData) (common.VertexArrayHandle, error)

	// CreateTexture uploads an RGBA8 image into a new 2D texture.
	//
	// Parameters:
	//   - tex: the image to upload
	//
	// Returns:
	//   - common.TextureHandle: the texture
	//   - error: an error if the image is malformed or the upload fails
	CreateTexture(tex TextureData) (common.TextureHandle, error)

	// Release frees every device object created by the backend.
	Release()
}
