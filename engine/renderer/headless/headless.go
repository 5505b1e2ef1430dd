// Package headless provides a RendererBackend that records every command it receives
// instead of talking to a graphics device. It backs renderer tests and dry runs.
package headless

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/model"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
)

// Op is the kind of a recorded command.
type Op int

const (
	OpSetPipelineState Op = iota
	OpClear
	OpUseProgram
	OpSetUniform
	OpBindTexture
	OpBindVertexArray
	OpDraw
)

func (o Op) String() string {
	switch o {
	case OpSetPipelineState:
		return "SetPipelineState"
	case OpClear:
		return "Clear"
	case OpUseProgram:
		return "UseProgram"
	case OpSetUniform:
		return "SetUniform"
	case OpBindTexture:
		return "BindTexture"
	case OpBindVertexArray:
		return "BindVertexArray"
	case OpDraw:
		return "Draw"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Command is one recorded backend call. Only the fields relevant to Op are set.
type Command struct {
	Op Op

	State pipeline.State

	Color [3]float32
	Depth float32

	Program     common.ProgramHandle
	VertexArray common.VertexArrayHandle
	Unit        common.TextureUnit
	Texture     common.TextureHandle

	Uniform string
	Values  []float32
	Int     int32

	Draw model.DrawCall
}

// Uniforms maps uniform names to the values most recently set while a program was bound.
type Uniforms map[string][]float32

type backend struct {
	mu *sync.Mutex

	width, height int

	commands []Command
	bound    common.ProgramHandle

	nextHandle   uint32
	programs     map[common.ProgramHandle]bool
	vertexArrays map[common.VertexArrayHandle]bool
	textures     map[common.TextureHandle]bool

	programUniforms map[common.ProgramHandle]map[string]bool
	drawUniforms    []Uniforms
	pending         Uniforms
}

// Backend is a renderer.RendererBackend that records commands and tracks device handles
// in memory.
type Backend interface {
	renderer.RendererBackend

	// Commands returns a copy of every command recorded since the last Reset.
	//
	// Returns:
	//   - []Command: the recorded commands in call order
	Commands() []Command

	// DrawUniforms returns, for every recorded Draw, the uniform values in effect for it.
	//
	// Returns:
	//   - []Uniforms: one entry per Draw, in call order
	DrawUniforms() []Uniforms

	// Reset discards the recorded commands. Device handles are kept.
	Reset()

	// Invalidate marks a previously created handle as no longer live. Subsequent calls
	// using it fail with renderer.ErrInvalidHandle.
	//
	// Parameters:
	//   - h: a program, vertex array or texture handle
	Invalidate(h uint32)
}

var _ Backend = &backend{}

// NewBackend creates a headless Backend with the given viewport size.
//
// Parameters:
//   - width, height: the viewport size in pixels
//
// Returns:
//   - Backend: the newly created backend
func NewBackend(width, height int) Backend {
	return &backend{
		mu:              &sync.Mutex{},
		width:           width,
		height:          height,
		programs:        make(map[common.ProgramHandle]bool),
		vertexArrays:    make(map[common.VertexArrayHandle]bool),
		textures:        make(map[common.TextureHandle]bool),
		programUniforms: make(map[common.ProgramHandle]map[string]bool),
	}
}

func (b *backend) Type() renderer.RendererBackendType {
	return renderer.BackendTypeHeadless
}

func (b *backend) Viewport() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *backend) SetViewport(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width, b.height = width, height
}

func (b *backend) SetPipelineState(state pipeline.State) {
	b.record(Command{Op: OpSetPipelineState, State: state})
}

func (b *backend) Clear(color [3]float32, depth float32) {
	b.record(Command{Op: OpClear, Color: color, Depth: depth})
}

func (b *backend) UseProgram(h common.ProgramHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.programs[h] {
		return fmt.Errorf("program %d: %w", h, renderer.ErrInvalidHandle)
	}
	b.bound = h
	b.pending = make(Uniforms)
	b.commands = append(b.commands, Command{Op: OpUseProgram, Program: h})
	return nil
}

func (b *backend) SetUniformMat4(name string, v [16]float32) {
	b.setUniform(name, v[:])
}

func (b *backend) SetUniformVec3(name string, v [3]float32) {
	b.setUniform(name, v[:])
}

func (b *backend) SetUniformVec3Array(name string, v []float32) {
	if len(v) < 3 {
		return
	}
	b.setUniform(name, v[:len(v)/3*3])
}

func (b *backend) SetUniformFloat(name string, v float32) {
	b.setUniform(name, []float32{v})
}

func (b *backend) SetUniformFloatArray(name string, v []float32) {
	if len(v) == 0 {
		return
	}
	b.setUniform(name, v)
}

func (b *backend) SetUniformInt(name string, v int32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.accepts(name) {
		return
	}
	b.pending[name] = []float32{float32(v)}
	b.commands = append(b.commands, Command{Op: OpSetUniform, Program: b.bound, Uniform: name, Int: v})
}

func (b *backend) BindTexture(unit common.TextureUnit, h common.TextureHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if h.Valid() && !b.textures[h] {
		return fmt.Errorf("texture %d: %w", h, renderer.ErrInvalidHandle)
	}
	b.commands = append(b.commands, Command{Op: OpBindTexture, Unit: unit, Texture: h})
	return nil
}

func (b *backend) BindVertexArray(h common.VertexArrayHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.vertexArrays[h] {
		return fmt.Errorf("vertex array %d: %w", h, renderer.ErrInvalidHandle)
	}
	b.commands = append(b.commands, Command{Op: OpBindVertexArray, VertexArray: h})
	return nil
}

func (b *backend) Draw(call model.DrawCall) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if call.Count <= 0 {
		return fmt.Errorf("draw: count %d", call.Count)
	}
	b.commands = append(b.commands, Command{Op: OpDraw, Program: b.bound, Draw: call})
	snapshot := make(Uniforms, len(b.pending))
	for k, v := range b.pending {
		snapshot[k] = slices.Clone(v)
	}
	b.drawUniforms = append(b.drawUniforms, snapshot)
	return nil
}

func (b *backend) CreateProgram(vertex, fragment shader.Shader) (common.ProgramHandle, error) {
	if vertex == nil || fragment == nil {
		return 0, fmt.Errorf("create program: missing shader stage")
	}
	if vertex.ShaderType() != shader.ShaderTypeVertex || fragment.ShaderType() != shader.ShaderTypeFragment {
		return 0, fmt.Errorf("create program: stages %s/%s", vertex.ShaderType(), fragment.ShaderType())
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	h := common.ProgramHandle(b.allocate())
	b.programs[h] = true
	declared := make(map[string]bool)
	for _, u := range vertex.Uniforms() {
		declared[u.Name] = true
	}
	for _, u := range fragment.Uniforms() {
		declared[u.Name] = true
	}
	b.programUniforms[h] = declared
	return h, nil
}

func (b *backend) CreateMesh(mesh renderer.MeshData) (common.VertexArrayHandle, error) {
	if len(mesh.Positions) == 0 || len(mesh.Positions)%3 != 0 {
		return 0, fmt.Errorf("create mesh: %d position floats", len(mesh.Positions))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	h := common.VertexArrayHandle(b.allocate())
	b.vertexArrays[h] = true
	return h, nil
}

func (b *backend) CreateTexture(tex renderer.TextureData) (common.TextureHandle, error) {
	if tex.Width <= 0 || tex.Height <= 0 || len(tex.Pixels) != tex.Width*tex.Height*4 {
		return 0, fmt.Errorf("create texture: %dx%d with %d bytes", tex.Width, tex.Height, len(tex.Pixels))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	h := common.TextureHandle(b.allocate())
	b.textures[h] = true
	return h, nil
}

func (b *backend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	clear(b.programs)
	clear(b.vertexArrays)
	clear(b.textures)
	clear(b.programUniforms)
	b.bound = 0
}

func (b *backend) Commands() []Command {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.commands)
}

func (b *backend) DrawUniforms() []Uniforms {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.drawUniforms)
}

func (b *backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.commands = nil
	b.drawUniforms = nil
}

func (b *backend) Invalidate(h uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.programs, common.ProgramHandle(h))
	delete(b.vertexArrays, common.VertexArrayHandle(h))
	delete(b.textures, common.TextureHandle(h))
}

func (b *backend) record(cmd Command) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.commands = append(b.commands, cmd)
}

func (b *backend) setUniform(name string, v []float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.accepts(name) {
		return
	}
	b.pending[name] = slices.Clone(v)
	b.commands = append(b.commands, Command{Op: OpSetUniform, Program: b.bound, Uniform: name, Values: slices.Clone(v)})
}

// accepts reports whether the bound program declares name. Caller must hold the lock.
func (b *backend) accepts(name string) bool {
	if b.bound == 0 {
		return false
	}
	return b.programUniforms[b.bound][name]
}

// allocate returns the next handle. Handles are shared across object kinds so that
// Invalidate can take any of them. Caller must hold the lock.
func (b *backend) allocate() uint32 {
	b.nextHandle++
	return b.nextHandle
}
