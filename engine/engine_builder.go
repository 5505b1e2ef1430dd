package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled.Store(enabled)
	}
}

// WithTickRate sets the frame rate of the ticker pacer used when no window is attached.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target frames per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60
		}
		e.tickRate = fps
	}
}

// WithWindow paces frames with a window (or any other Pacer) instead of a ticker.
//
// Parameters:
//   - p: the pacer, typically a window.Window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(p Pacer) EngineBuilderOption {
	return func(e *engine) {
		e.pacer = p
	}
}

// WithStartCallback sets the function awaited once before the first frame.
// Use it to create programs, upload meshes and populate the scene.
//
// Parameters:
//   - callback: the start function; a returned error aborts Run
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStartCallback(callback func(ctx context.Context) error) EngineBuilderOption {
	return func(e *engine) {
		e.onStart = callback
	}
}

// WithUpdateCallback sets the function called after every frame is rendered.
//
// Parameters:
//   - callback: function receiving the frame's delta time in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithUpdateCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.onUpdate = callback
	}
}

// WithFrameCallback sets the function handed every frame's render report, before the
// update callback runs.
//
// Parameters:
//   - callback: function receiving the FrameReport
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFrameCallback(callback func(report renderer.FrameReport)) EngineBuilderOption {
	return func(e *engine) {
		e.onFrame = callback
	}
}

// WithClock replaces the time source used to timestamp frames.
//
// Parameters:
//   - clock: returns the current time
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClock(clock func() time.Time) EngineBuilderOption {
	return func(e *engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithLogger sets the structured logger for lifecycle and profiler output.
//
// Parameters:
//   - logger: the logger to use (nil keeps the default)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
