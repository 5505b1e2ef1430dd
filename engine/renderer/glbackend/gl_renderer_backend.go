// Package glbackend implements renderer.RendererBackend on OpenGL 4.1 core.
//
// Every method issues GL calls and must run on the thread that owns the current GL
// context (see window.Window.MakeContextCurrent and runtime.LockOSThread).
package glbackend

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/model"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// meshBuffers are the buffer objects owned by one vertex array.
type meshBuffers struct {
	vbos []uint32
	ebo  uint32
}

type glBackend struct {
	mu *sync.Mutex

	width, height int
	logger        *slog.Logger

	state    pipeline.State
	stateSet bool

	bound     common.ProgramHandle
	locations map[common.ProgramHandle]map[string]int32

	programs map[common.ProgramHandle]bool
	meshes   map[common.VertexArrayHandle]meshBuffers
	textures map[common.TextureHandle]bool
}

var _ renderer.RendererBackend = &glBackend{}

// NewBackend loads the GL function pointers for the current context and creates a backend
// drawing into a surface of the given size.
//
// Parameters:
//   - width, height: the initial viewport size in pixels
//   - options: functional options to configure the backend
//
// Returns:
//   - renderer.RendererBackend: the GL backend
//   - error: an error if the GL bindings cannot be initialized
func NewBackend(width, height int, options ...BackendBuilderOption) (renderer.RendererBackend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glbackend: failed to initialize OpenGL bindings: %w", err)
	}

	b := &glBackend{
		mu:        &sync.Mutex{},
		logger:    slog.Default(),
		locations: make(map[common.ProgramHandle]map[string]int32),
		programs:  make(map[common.ProgramHandle]bool),
		meshes:    make(map[common.VertexArrayHandle]meshBuffers),
		textures:  make(map[common.TextureHandle]bool),
	}
	for _, opt := range options {
		opt(b)
	}

	b.logger.Info("opengl context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
	)
	b.SetViewport(width, height)
	return b, nil
}

func (b *glBackend) Type() renderer.RendererBackendType {
	return renderer.BackendTypeGL
}

func (b *glBackend) Viewport() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *glBackend) SetViewport(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width, b.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetPipelineState only touches the GL switches that differ from the last applied state.
func (b *glBackend) SetPipelineState(state pipeline.State) {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev, full := b.state, !b.stateSet
	if full || prev.DepthTest != state.DepthTest {
		toggle(gl.DEPTH_TEST, state.DepthTest)
	}
	if full || prev.DepthWrite != state.DepthWrite {
		gl.DepthMask(state.DepthWrite)
	}
	if full || prev.DepthFunc != state.DepthFunc {
		gl.DepthFunc(depthFunc(state.DepthFunc))
	}
	if full || prev.Blend != state.Blend {
		toggle(gl.BLEND, state.Blend)
	}
	if full || prev.BlendSrc != state.BlendSrc || prev.BlendDst != state.BlendDst {
		gl.BlendFunc(blendFactor(state.BlendSrc), blendFactor(state.BlendDst))
	}
	if full || prev.Cull != state.Cull {
		switch state.Cull {
		case pipeline.CullModeNone:
			gl.Disable(gl.CULL_FACE)
		case pipeline.CullModeFront:
			gl.Enable(gl.CULL_FACE)
			gl.CullFace(gl.FRONT)
		default:
			gl.Enable(gl.CULL_FACE)
			gl.CullFace(gl.BACK)
		}
	}
	b.state, b.stateSet = state, true
}

func (b *glBackend) Clear(color [3]float32, depth float32) {
	gl.ClearColor(color[0], color[1], color[2], 1)
	gl.ClearDepth(float64(depth))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *glBackend) UseProgram(h common.ProgramHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.programs[h] || !gl.IsProgram(uint32(h)) {
		return fmt.Errorf("program %d: %w", h, renderer.ErrInvalidHandle)
	}
	if b.bound != h {
		gl.UseProgram(uint32(h))
		b.bound = h
	}
	return nil
}

func (b *glBackend) SetUniformMat4(name string, v [16]float32) {
	if loc, ok := b.location(name); ok {
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	}
}

func (b *glBackend) SetUniformVec3(name string, v [3]float32) {
	if loc, ok := b.location(name); ok {
		gl.Uniform3fv(loc, 1, &v[0])
	}
}

func (b *glBackend) SetUniformVec3Array(name string, v []float32) {
	if len(v) < 3 {
		return
	}
	if loc, ok := b.location(name); ok {
		gl.Uniform3fv(loc, int32(len(v)/3), &v[0])
	}
}

func (b *glBackend) SetUniformFloat(name string, v float32) {
	if loc, ok := b.location(name); ok {
		gl.Uniform1f(loc, v)
	}
}

func (b *glBackend) SetUniformFloatArray(name string, v []float32) {
	if len(v) == 0 {
		return
	}
	if loc, ok := b.location(name); ok {
		gl.Uniform1fv(loc, int32(len(v)), &v[0])
	}
}

func (b *glBackend) SetUniformInt(name string, v int32) {
	if loc, ok := b.location(name); ok {
		gl.Uniform1i(loc, v)
	}
}

func (b *glBackend) BindTexture(unit common.TextureUnit, h common.TextureHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if h.Valid() && !b.textures[h] {
		return fmt.Errorf("texture %d: %w", h, renderer.ErrInvalidHandle)
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(h))
	return nil
}

func (b *glBackend) BindVertexArray(h common.VertexArrayHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.meshes[h]; !ok {
		return fmt.Errorf("vertex array %d: %w", h, renderer.ErrInvalidHandle)
	}
	gl.BindVertexArray(uint32(h))
	return nil
}

func (b *glBackend) Draw(call model.DrawCall) error {
	if call.Count <= 0 {
		return fmt.Errorf("draw: count %d", call.Count)
	}
	if call.Indexed {
		gl.DrawElements(gl.TRIANGLES, int32(call.Count), gl.UNSIGNED_SHORT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(call.Count))
	}
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("draw: opengl error 0x%x", code)
	}
	return nil
}

func (b *glBackend) CreateProgram(vertex, fragment shader.Shader) (common.ProgramHandle, error) {
	if vertex == nil || fragment == nil {
		return 0, fmt.Errorf("create program: missing shader stage")
	}

	vs, err := compileShader(vertex.Source(), gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("create program: vertex shader %s: %w", vertex.Key(), err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(fragment.Source(), gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("create program: fragment shader %s: %w", fragment.Key(), err)
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	if prog == 0 {
		return 0, fmt.Errorf("create program: opengl error 0x%x", gl.GetError())
	}
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status != gl.TRUE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength)+1)
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("create program: link %s+%s: %s", vertex.Key(), fragment.Key(), strings.TrimRight(log, "\x00"))
	}

	h := common.ProgramHandle(prog)
	b.mu.Lock()
	b.programs[h] = true
	b.locations[h] = make(map[string]int32)
	b.mu.Unlock()

	b.logger.Debug("program linked", "program", prog, "vertex", vertex.Key(), "fragment", fragment.Key())
	return h, nil
}

func (b *glBackend) CreateMesh(mesh renderer.MeshData) (common.VertexArrayHandle, error) {
	if len(mesh.Positions) == 0 || len(mesh.Positions)%3 != 0 {
		return 0, fmt.Errorf("create mesh: %d position floats", len(mesh.Positions))
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return 0, fmt.Errorf("create mesh: opengl error 0x%x", gl.GetError())
	}
	gl.BindVertexArray(vao)
	defer gl.BindVertexArray(0)

	var buffers meshBuffers
	streams := []struct {
		location uint32
		size     int32
		data     []float32
	}{
		{shader.AttributePosition, 3, mesh.Positions},
		{shader.AttributeNormal, 3, mesh.Normals},
		{shader.AttributeUV, 2, mesh.UVs},
	}
	for _, s := range streams {
		if len(s.data) == 0 {
			continue
		}
		var vbo uint32
		gl.GenBuffers(1, &vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(s.data)*4, gl.Ptr(s.data), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(s.location)
		gl.VertexAttribPointerWithOffset(s.location, s.size, gl.FLOAT, false, 0, 0)
		buffers.vbos = append(buffers.vbos, vbo)
	}
	if len(mesh.Indices) > 0 {
		gl.GenBuffers(1, &buffers.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffers.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*2, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)
	}

	h := common.VertexArrayHandle(vao)
	b.mu.Lock()
	b.meshes[h] = buffers
	b.mu.Unlock()
	return h, nil
}

func (b *glBackend) CreateTexture(tex renderer.TextureData) (common.TextureHandle, error) {
	if tex.Width <= 0 || tex.Height <= 0 || len(tex.Pixels) != tex.Width*tex.Height*4 {
		return 0, fmt.Errorf("create texture: %dx%d with %d bytes", tex.Width, tex.Height, len(tex.Pixels))
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(tex.Width), int32(tex.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tex.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	h := common.TextureHandle(id)
	b.mu.Lock()
	b.textures[h] = true
	b.mu.Unlock()
	return h, nil
}

func (b *glBackend) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for h := range b.programs {
		gl.DeleteProgram(uint32(h))
	}
	for h, bufs := range b.meshes {
		if len(bufs.vbos) > 0 {
			gl.DeleteBuffers(int32(len(bufs.vbos)), &bufs.vbos[0])
		}
		if bufs.ebo != 0 {
			gl.DeleteBuffers(1, &bufs.ebo)
		}
		vao := uint32(h)
		gl.DeleteVertexArrays(1, &vao)
	}
	for h := range b.textures {
		id := uint32(h)
		gl.DeleteTextures(1, &id)
	}
	clear(b.programs)
	clear(b.meshes)
	clear(b.textures)
	clear(b.locations)
	b.bound = 0
}

// location returns the cached uniform location of name in the bound program.
// Uniforms the program does not declare (or the linker removed) report false.
func (b *glBackend) location(name string) (int32, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.bound == 0 {
		return -1, false
	}
	cache := b.locations[b.bound]
	loc, ok := cache[name]
	if !ok {
		loc = gl.GetUniformLocation(uint32(b.bound), gl.Str(name+"\x00"))
		cache[name] = loc
	}
	return loc, loc >= 0
}

func compileShader(source string, stage uint32) (uint32, error) {
	id := gl.CreateShader(stage)
	if id == 0 {
		return 0, fmt.Errorf("opengl error 0x%x", gl.GetError())
	}

	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csrc, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.TRUE {
		return id, nil
	}

	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength)+1)
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
	gl.DeleteShader(id)
	return 0, fmt.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
}

func toggle(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func depthFunc(f pipeline.DepthFunc) uint32 {
	switch f {
	case pipeline.DepthFuncLess:
		return gl.LESS
	case pipeline.DepthFuncAlways:
		return gl.ALWAYS
	default:
		return gl.LEQUAL
	}
}

func blendFactor(f pipeline.BlendFactor) uint32 {
	switch f {
	case pipeline.BlendFactorZero:
		return gl.ZERO
	case pipeline.BlendFactorSrcAlpha:
		return gl.SRC_ALPHA
	case pipeline.BlendFactorOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	default:
		return gl.ONE
	}
}
