package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/headless"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// stepPacer runs a fixed number of frames synchronously.
type stepPacer struct {
	frames   int
	onUpdate func()
	onResize func(width, height int)
	closed   bool
}

func (p *stepPacer) SetUpdateCallback(callback func())                  { p.onUpdate = callback }
func (p *stepPacer) SetResizeCallback(callback func(width, height int)) { p.onResize = callback }
func (p *stepPacer) IsRunning() bool                                    { return !p.closed }
func (p *stepPacer) RequestClose()                                      { p.closed = true }

func (p *stepPacer) ProcessMessages() {
	for i := 0; i < p.frames && !p.closed; i++ {
		if p.onUpdate != nil {
			p.onUpdate()
		}
	}
}

// fakeClock advances by step on every call.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func newTestScene() scene.Scene {
	return scene.NewScene("test", camera.NewCamera())
}

func newTestRenderer() (renderer.Renderer, headless.Backend) {
	be := headless.NewBackend(320, 240)
	return renderer.NewRenderer(be, renderer.WithLogger(quiet)), be
}

func TestRunWithoutBackend(t *testing.T) {
	started := false
	start := WithStartCallback(func(context.Context) error {
		started = true
		return nil
	})

	e := NewEngine(nil, newTestScene(), start, WithLogger(quiet))
	assert.ErrorIs(t, e.Run(context.Background()), ErrNoBackend)

	e = NewEngine(renderer.NewRenderer(nil, renderer.WithLogger(quiet)), newTestScene(), start, WithLogger(quiet))
	assert.ErrorIs(t, e.Run(context.Background()), ErrNoBackend)
	assert.False(t, started)
}

func TestTickDeltaTime(t *testing.T) {
	r, _ := newTestRenderer()
	var deltas []float32
	e := NewEngine(r, newTestScene(), WithLogger(quiet), WithUpdateCallback(func(dt float32) {
		deltas = append(deltas, dt)
	}))

	base := time.Unix(100, 0)
	e.Tick(base)
	e.Tick(base.Add(500 * time.Millisecond))
	e.Tick(base.Add(250 * time.Millisecond))
	report := e.Tick(base.Add(1250 * time.Millisecond))

	require.Len(t, deltas, 4)
	assert.Zero(t, deltas[0])
	assert.InDelta(t, 0.5, deltas[1], 1e-6)
	assert.Zero(t, deltas[2], "time going backwards yields zero")
	assert.InDelta(t, 1.0, deltas[3], 1e-6)
	assert.InDelta(t, 1.0, report.DeltaTime, 1e-6)
	assert.Equal(t, uint64(4), e.Frames())
}

func TestTickRendersBeforeUpdate(t *testing.T) {
	r, be := newTestRenderer()
	var order []string
	e := NewEngine(r, newTestScene(), WithLogger(quiet),
		WithFrameCallback(func(renderer.FrameReport) {
			order = append(order, "frame")
		}),
		WithUpdateCallback(func(float32) {
			assert.NotEmpty(t, be.Commands(), "frame is rendered before update runs")
			order = append(order, "update")
		}),
	)

	e.Tick(time.Now())
	assert.Equal(t, []string{"frame", "update"}, order)
}

func TestRunDrivesPacer(t *testing.T) {
	r, be := newTestRenderer()
	clock := &fakeClock{now: time.Unix(0, 0), step: 16 * time.Millisecond}
	pacer := &stepPacer{frames: 5}

	var calls []string
	var deltas []float32
	e := NewEngine(r, newTestScene(),
		WithLogger(quiet),
		WithWindow(pacer),
		WithClock(clock.Now),
		WithStartCallback(func(context.Context) error {
			calls = append(calls, "start")
			return nil
		}),
		WithUpdateCallback(func(dt float32) {
			calls = append(calls, "update")
			deltas = append(deltas, dt)
		}),
	)

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, []string{"start", "update", "update", "update", "update", "update"}, calls)
	assert.Equal(t, uint64(5), e.Frames())
	for _, dt := range deltas {
		assert.InDelta(t, 0.016, dt, 1e-6)
	}

	require.NotNil(t, pacer.onResize)
	pacer.onResize(100, 50)
	w, h := be.Viewport()
	assert.Equal(t, 100, w)
	assert.Equal(t, 50, h)
}

func TestRunQuitFromUpdate(t *testing.T) {
	r, _ := newTestRenderer()
	pacer := &stepPacer{frames: 100}
	var e Engine
	e = NewEngine(r, newTestScene(), WithLogger(quiet), WithWindow(pacer), WithUpdateCallback(func(float32) {
		if e.Frames() == 2 {
			e.Quit()
			e.Quit()
		}
	}))

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, uint64(3), e.Frames())
}

func TestRunStartCallbackError(t *testing.T) {
	r, _ := newTestRenderer()
	boom := errors.New("boom")
	e := NewEngine(r, newTestScene(), WithLogger(quiet), WithWindow(&stepPacer{frames: 3}),
		WithStartCallback(func(context.Context) error { return boom }))

	err := e.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, e.Frames())
}

func TestRunTickerPacerCancel(t *testing.T) {
	r, _ := newTestRenderer()
	ctx, cancel := context.WithCancel(context.Background())
	e := NewEngine(r, newTestScene(), WithLogger(quiet), WithTickRate(1000), WithUpdateCallback(func(float32) {}))

	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	require.Eventually(t, func() bool { return e.Frames() >= 3 }, 5*time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	r, _ := newTestRenderer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := NewEngine(r, newTestScene(), WithLogger(quiet), WithWindow(&stepPacer{frames: 3}))

	assert.ErrorIs(t, e.Run(ctx), context.Canceled)
	assert.Zero(t, e.Frames())
}

func TestSceneAccessors(t *testing.T) {
	r, _ := newTestRenderer()
	s := newTestScene()
	e := NewEngine(r, s, WithLogger(quiet))
	assert.Same(t, r, e.Renderer())
	assert.Same(t, s, e.Scene())

	e.SetScene(nil)
	assert.Same(t, s, e.Scene())

	other := newTestScene()
	e.SetScene(other)
	assert.Same(t, other, e.Scene())

	assert.Panics(t, func() { NewEngine(r, nil) })
}

func TestTickerPacer(t *testing.T) {
	p := NewTickerPacer(500)
	n := 0
	p.SetUpdateCallback(func() {
		n++
		if n == 3 {
			p.RequestClose()
		}
	})
	assert.True(t, p.IsRunning())
	p.ProcessMessages()
	assert.False(t, p.IsRunning())
	assert.Equal(t, 3, n)
	assert.Equal(t, time.Second/60, tickInterval(0))
}
