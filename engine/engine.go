package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
)

// ErrNoBackend is returned by Run when the renderer has no graphics backend.
// It is the only fatal condition of the frame loop and is reported before the first frame.
var ErrNoBackend = errors.New("engine: no graphics backend")

// engine implements the Engine interface.
type engine struct {
	mu *sync.Mutex

	renderer renderer.Renderer
	scene    scene.Scene
	pacer    Pacer
	logger   *slog.Logger
	clock    func() time.Time

	tickRate float64

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	onStart  func(ctx context.Context) error
	onUpdate func(deltaTime float32)
	onFrame  func(report renderer.FrameReport)

	lastTick time.Time
	frames   atomic.Uint64
	running  atomic.Bool
	quitOnce sync.Once
}

// Engine is the frame driver. Each tick it measures the time since the previous tick,
// renders the scene with that delta, then hands the delta to the update callback.
// Rendering and the update callback run strictly one after the other on the pacer's thread.
type Engine interface {
	// Renderer returns the renderer frames are drawn with.
	//
	// Returns:
	//   - renderer.Renderer: the renderer
	Renderer() renderer.Renderer

	// Scene returns the scene drawn each frame.
	//
	// Returns:
	//   - scene.Scene: the current scene
	Scene() scene.Scene

	// SetScene replaces the scene drawn from the next frame on.
	//
	// Parameters:
	//   - s: the new scene (nil is ignored)
	SetScene(s scene.Scene)

	// EnableProfiler enables periodic performance logging.
	EnableProfiler()

	// DisableProfiler disables periodic performance logging.
	DisableProfiler()

	// Frames returns the number of frames rendered so far.
	//
	// Returns:
	//   - uint64: the frame count
	Frames() uint64

	// Run invokes the start callback once, then drives frames from the pacer until the pacer
	// stops, Quit is called or ctx is cancelled. It fails before the first frame if the
	// renderer has no backend or the start callback returns an error.
	//
	// Parameters:
	//   - ctx: cancels the loop
	//
	// Returns:
	//   - error: ErrNoBackend, a start callback error, or ctx.Err() after cancellation
	Run(ctx context.Context) error

	// Tick renders one frame at time now and invokes the update callback. The delta time
	// is now minus the previous tick's time in seconds, 0 on the first tick and never negative.
	//
	// Parameters:
	//   - now: the frame timestamp
	//
	// Returns:
	//   - renderer.FrameReport: the render report for the frame
	Tick(now time.Time) renderer.FrameReport

	// Quit stops the frame loop after the current frame. Safe to call multiple times and
	// from any goroutine.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates an Engine drawing s with r. A nil renderer (or one without a backend)
// is accepted here and reported by Run as ErrNoBackend. Without WithWindow, frames are
// paced by a ticker at the configured tick rate. It panics if s is nil.
//
// Parameters:
//   - r: the renderer
//   - s: the scene to draw (must not be nil)
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(r renderer.Renderer, s scene.Scene, options ...EngineBuilderOption) Engine {
	if s == nil {
		panic("engine: NewEngine requires a non-nil Scene")
	}

	e := &engine{
		mu:       &sync.Mutex{},
		renderer: r,
		scene:    s,
		logger:   slog.Default(),
		clock:    time.Now,
		tickRate: 60,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.pacer == nil {
		e.pacer = NewTickerPacer(e.tickRate)
	}
	e.profiler = profiler.NewProfiler(e.logger, time.Second)
	return e
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Scene() scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scene
}

func (e *engine) SetScene(s scene.Scene) {
	if s == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scene = s
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

func (e *engine) Frames() uint64 {
	return e.frames.Load()
}

func (e *engine) Run(ctx context.Context) error {
	if e.renderer == nil || e.renderer.Backend() == nil {
		return ErrNoBackend
	}
	if !e.running.CompareAndSwap(false, true) {
		return errors.New("engine: already running")
	}
	defer e.running.Store(false)

	s := e.Scene()
	loadStart := e.clock()
	if e.onStart != nil {
		if err := e.onStart(ctx); err != nil {
			return fmt.Errorf("engine: start callback: %w", err)
		}
	}
	e.logger.Info("scene loaded", "scene", s.Name(), "objects", s.Count(), "load_time", e.clock().Sub(loadStart))

	if err := ctx.Err(); err != nil {
		return err
	}
	stop := context.AfterFunc(ctx, e.Quit)
	defer stop()

	e.pacer.SetResizeCallback(e.renderer.Resize)
	e.pacer.SetUpdateCallback(func() {
		e.Tick(e.clock())
	})

	e.mu.Lock()
	e.lastTick = e.clock()
	e.mu.Unlock()

	e.pacer.ProcessMessages()
	e.pacer.SetUpdateCallback(nil)
	return ctx.Err()
}

func (e *engine) Tick(now time.Time) renderer.FrameReport {
	e.mu.Lock()
	var dt float32
	if !e.lastTick.IsZero() {
		dt = float32(max(now.Sub(e.lastTick), 0).Seconds())
	}
	e.lastTick = now
	s := e.scene
	e.mu.Unlock()

	var report renderer.FrameReport
	if e.renderer != nil {
		report = e.renderer.RenderFrame(s, dt)
	} else {
		report = renderer.FrameReport{DeltaTime: dt}
	}
	if e.onFrame != nil {
		e.onFrame(report)
	}
	if e.onUpdate != nil {
		e.onUpdate(dt)
	}
	e.frames.Add(1)

	if e.profilingEnabled.Load() {
		e.profiler.Tick(now, report.Drawn(), len(report.Warnings))
	}
	return report
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.pacer.RequestClose()
	})
}
