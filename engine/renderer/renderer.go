package renderer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/game_object"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/model"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/Carmen-Shannon/oxy-gl/engine/transform"
)

var (
	// ErrMissingModel is reported for an enabled object that has no Model attached.
	ErrMissingModel = errors.New("object has no model")

	// ErrMissingProgram is reported for an object whose model has no linked program.
	ErrMissingProgram = errors.New("model has no shader program")

	// ErrMissingVertexArray is reported for an object whose model has no vertex data.
	ErrMissingVertexArray = errors.New("model has no vertex array")

	// ErrEmptyDrawRange is reported for an object whose model would draw zero primitives.
	ErrEmptyDrawRange = errors.New("model draw range is empty")

	// ErrProgramNotFound is returned when no program is cached under a key.
	ErrProgramNotFound = errors.New("program not found")
)

// ClearDepth is the depth buffer value every frame starts from.
const ClearDepth float32 = 1.0

// Pass names the stage of a frame a Warning was raised in.
type Pass int

const (
	// PassResolve covers transform resolution, before any draw is issued.
	PassResolve Pass = iota

	// PassWorld is the depth-tested pass drawing world objects back to front.
	PassWorld

	// PassOverlay is the blended pass drawing HUD objects over the world.
	PassOverlay
)

func (p Pass) String() string {
	switch p {
	case PassResolve:
		return "resolve"
	case PassWorld:
		return "world"
	case PassOverlay:
		return "overlay"
	}
	return "unknown"
}

// Warning describes one object that was degraded or skipped during a frame.
type Warning struct {
	ObjectID uint64
	Name     string
	Pass     Pass
	Err      error
}

func (w Warning) Error() string {
	return fmt.Sprintf("%s pass: object %d (%q): %v", w.Pass, w.ObjectID, w.Name, w.Err)
}

// Unwrap exposes the underlying error for errors.Is.
func (w Warning) Unwrap() error {
	return w.Err
}

// FrameReport summarizes what RenderFrame did.
type FrameReport struct {
	// DeltaTime is the elapsed time handed to RenderFrame, in seconds.
	DeltaTime float32
	// World lists the IDs of world objects drawn, in draw order.
	World []uint64
	// Overlay lists the IDs of HUD objects drawn, in draw order.
	Overlay []uint64
	// LightCount is the number of lights uploaded to every draw.
	LightCount int
	// Warnings lists the recoverable defects found during the frame.
	Warnings []Warning
}

// Drawn returns the total number of objects drawn.
func (f FrameReport) Drawn() int {
	return len(f.World) + len(f.Overlay)
}

// frameData is computed once per frame and shared by every draw in both passes.
type frameData struct {
	projection [16]float32
	view       [16]float32
	cameraPos  [3]float32
	lights     light.Packed
	resolver   transform.Resolver
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	programCache map[string]common.ProgramHandle

	backend RendererBackend
	sorter  scene.DepthSorter
	logger  *slog.Logger

	defaultMaterial material.Material
}

// Renderer defines the interface for the per-frame render orchestrator. It owns no scene
// data: every frame is rebuilt from the Scene handed to RenderFrame.
type Renderer interface {
	// Backend returns the graphics backend the renderer drives.
	//
	// Returns:
	//   - RendererBackend: the backend, nil if none was configured
	Backend() RendererBackend

	// CreateProgram compiles and links a shader pair on the backend and caches the program
	// under key. An existing program under the same key is returned without recompiling.
	//
	// Parameters:
	//   - key: the unique identifier for the program
	//   - vertex: the vertex stage
	//   - fragment: the fragment stage
	//
	// Returns:
	//   - common.ProgramHandle: the linked program
	//   - error: an error if there is no backend or compilation fails
	CreateProgram(key string, vertex, fragment shader.Shader) (common.ProgramHandle, error)

	// Program retrieves a cached program by key.
	//
	// Parameters:
	//   - key: the unique identifier for the program
	//
	// Returns:
	//   - common.ProgramHandle: the program
	//   - error: ErrProgramNotFound if nothing is cached under key
	Program(key string) (common.ProgramHandle, error)

	// Upload creates the vertex array for m from mesh and records its draw range on m.
	// Indexed kinds draw len(mesh.Indices) indices; the others draw every position.
	//
	// Parameters:
	//   - m: the model to attach the vertex array to
	//   - mesh: the geometry to upload
	//
	// Returns:
	//   - error: an error if there is no backend or the upload fails
	Upload(m model.Model, mesh MeshData) error

	// RenderFrame draws one frame of s. The world pass draws enabled non-HUD objects back
	// to front with depth testing; the overlay pass then draws enabled HUD objects in scene
	// order with depth testing off and alpha blending on. Objects that cannot be drawn are
	// skipped and reported in the returned FrameReport; the frame itself never fails.
	//
	// Parameters:
	//   - s: the scene to draw
	//   - deltaTime: seconds since the previous frame
	//
	// Returns:
	//   - FrameReport: what was drawn and what was skipped
	RenderFrame(s scene.Scene, deltaTime float32) FrameReport

	// Resize updates the backend viewport, used for the projection aspect ratio.
	//
	// Parameters:
	//   - width, height: the new surface size in pixels
	Resize(width, height int)

	// Release frees every device object owned by the backend and clears the program cache.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer driving backend. A nil backend is accepted so that the
// owner can report the missing graphics context itself; RenderFrame then draws nothing.
//
// Parameters:
//   - backend: the graphics backend to drive
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(backend RendererBackend, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:              &sync.Mutex{},
		programCache:    make(map[string]common.ProgramHandle),
		backend:         backend,
		logger:          slog.Default(),
		defaultMaterial: material.NewMaterial(),
	}
	for _, opt := range options {
		opt(r)
	}
	if r.sorter == nil {
		r.sorter = scene.NewDepthSorter()
	}
	return r
}

func (r *renderer) Backend() RendererBackend {
	return r.backend
}

func (r *renderer) CreateProgram(key string, vertex, fragment shader.Shader) (common.ProgramHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.programCache[key]; ok {
		return h, nil
	}
	if r.backend == nil {
		return 0, fmt.Errorf("create program %q: no backend", key)
	}
	h, err := r.backend.CreateProgram(vertex, fragment)
	if err != nil {
		return 0, fmt.Errorf("create program %q: %w", key, err)
	}
	r.programCache[key] = h
	return h, nil
}

func (r *renderer) Program(key string) (common.ProgramHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.programCache[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrProgramNotFound, key)
	}
	return h, nil
}

func (r *renderer) Upload(m model.Model, mesh MeshData) error {
	if m == nil {
		return errors.New("upload: nil model")
	}
	if r.backend == nil {
		return fmt.Errorf("upload %q: no backend", m.Name())
	}
	vao, err := r.backend.CreateMesh(mesh)
	if err != nil {
		return fmt.Errorf("upload %q: %w", m.Name(), err)
	}
	m.SetVertexArray(vao, len(mesh.Positions), len(mesh.Indices))
	return nil
}

func (r *renderer) Resize(width, height int) {
	if r.backend != nil {
		r.backend.SetViewport(width, height)
	}
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backend != nil {
		r.backend.Release()
	}
	r.programCache = make(map[string]common.ProgramHandle)
}

func (r *renderer) RenderFrame(s scene.Scene, deltaTime float32) FrameReport {
	report := FrameReport{
		DeltaTime: deltaTime,
		World:     []uint64{},
		Overlay:   []uint64{},
	}
	if r.backend == nil || s == nil {
		r.logger.Error("render frame skipped", "reason", "no backend or scene")
		return report
	}

	enabled := make([]game_object.GameObject, 0, s.Count())
	for _, obj := range s.Objects() {
		if obj.Enabled() {
			enabled = append(enabled, obj)
		}
	}

	frame := r.prepareFrame(s)
	for _, obj := range enabled {
		frame.resolver.Resolve(obj)
	}
	for _, w := range frame.resolver.Warnings() {
		report.Warnings = append(report.Warnings, Warning{ObjectID: w.ObjectID, Name: w.Name, Pass: PassResolve, Err: w.Err})
	}
	report.LightCount = frame.lights.Count

	world, overlay := scene.Partition(enabled)
	world = r.sorter.Sort(world, frame.cameraPos, frame.resolver.World)

	r.backend.SetPipelineState(pipeline.World())
	r.backend.Clear(s.Settings().BackgroundColor, ClearDepth)
	report.World = r.drawPass(PassWorld, world, frame, &report)

	r.backend.SetPipelineState(pipeline.Overlay())
	report.Overlay = r.drawPass(PassOverlay, overlay, frame, &report)

	r.backend.SetPipelineState(pipeline.Restored())
	return report
}

// prepareFrame computes the data shared by every draw of the frame.
func (r *renderer) prepareFrame(s scene.Scene) frameData {
	settings := s.Settings()
	cam := s.Camera()

	width, height := r.backend.Viewport()
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}

	f := frameData{
		view:      cam.ViewMatrix(),
		cameraPos: cam.Position(),
		lights:    light.Aggregate(s.Lights()),
		resolver:  transform.NewResolver(scene.NodeLookup(s), transform.WithLogger(r.logger)),
	}
	common.Perspective(f.projection[:], common.DegToRad(settings.FovDegrees), aspect, settings.Near, settings.Far)
	return f
}

// drawPass draws objects in order and returns the IDs that were drawn.
func (r *renderer) drawPass(pass Pass, objects []game_object.GameObject, frame frameData, report *FrameReport) []uint64 {
	drawn := make([]uint64, 0, len(objects))
	for _, obj := range objects {
		if err := r.drawObject(obj, frame); err != nil {
			w := Warning{ObjectID: obj.ID(), Name: obj.Name(), Pass: pass, Err: err}
			report.Warnings = append(report.Warnings, w)
			r.logger.Warn("object skipped", "object_id", w.ObjectID, "object", w.Name, "pass", pass.String(), "err", err)
			continue
		}
		drawn = append(drawn, obj.ID())
	}
	return drawn
}

// drawObject validates obj's device resources before issuing any command, then binds
// its program, uploads its uniforms and submits the draw.
func (r *renderer) drawObject(obj game_object.GameObject, frame frameData) error {
	mdl := obj.Model()
	if mdl == nil {
		return ErrMissingModel
	}
	if !mdl.Program().Valid() {
		return ErrMissingProgram
	}
	if !mdl.VertexArray().Valid() {
		return ErrMissingVertexArray
	}
	call := mdl.DrawCall()
	if call.Count <= 0 {
		return ErrEmptyDrawRange
	}

	if err := r.backend.UseProgram(mdl.Program()); err != nil {
		return fmt.Errorf("use program: %w", err)
	}

	resolved := frame.resolver.Resolve(obj)
	r.backend.SetUniformMat4(shader.UniformProjection, frame.projection)
	r.backend.SetUniformMat4(shader.UniformView, frame.view)
	r.backend.SetUniformVec3(shader.UniformCameraPosition, frame.cameraPos)
	r.backend.SetUniformMat4(shader.UniformModel, resolved.Model)
	r.backend.SetUniformMat4(shader.UniformNormal, resolved.Normal)

	mat := obj.Material()
	if mat == nil {
		mat = r.defaultMaterial
	}
	r.backend.SetUniformVec3(shader.UniformDiffuse, mat.Diffuse())
	r.backend.SetUniformVec3(shader.UniformAmbient, mat.Ambient())
	r.backend.SetUniformVec3(shader.UniformSpecular, mat.Specular())
	r.backend.SetUniformFloat(shader.UniformShininess, mat.Shininess())
	r.backend.SetUniformFloat(shader.UniformAlpha, mat.Alpha())

	r.backend.SetUniformInt(shader.UniformLightCount, int32(frame.lights.Count))
	r.backend.SetUniformVec3Array(shader.UniformLightPositions, frame.lights.Positions)
	r.backend.SetUniformVec3Array(shader.UniformLightColours, frame.lights.Colours)
	r.backend.SetUniformFloatArray(shader.UniformLightStrengths, frame.lights.Strengths)

	if err := r.bindSampler(common.TextureUnitDiffuse, mdl.DiffuseTexture(), shader.UniformDiffuseSampler, shader.UniformDiffuseSamplerExists); err != nil {
		return err
	}
	if err := r.bindSampler(common.TextureUnitNormal, mdl.NormalTexture(), shader.UniformNormalSampler, shader.UniformNormalSamplerExists); err != nil {
		return err
	}

	if err := r.backend.BindVertexArray(mdl.VertexArray()); err != nil {
		return fmt.Errorf("bind vertex array: %w", err)
	}
	if err := r.backend.Draw(call); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

// bindSampler binds h to unit (or unbinds the unit when h is zero) and sets the sampler
// uniform and its presence flag.
func (r *renderer) bindSampler(unit common.TextureUnit, h common.TextureHandle, sampler, exists string) error {
	if err := r.backend.BindTexture(unit, h); err != nil {
		return fmt.Errorf("bind texture unit %d: %w", unit, err)
	}
	r.backend.SetUniformInt(sampler, int32(unit))
	if h.Valid() {
		r.backend.SetUniformInt(exists, 1)
	} else {
		r.backend.SetUniformInt(exists, 0)
	}
	return nil
}
