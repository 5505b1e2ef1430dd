package engine

import (
	"sync"
	"time"
)

// Pacer drives the frame loop: ProcessMessages calls the update callback once per
// refresh until the pacer is closed. window.Window implements Pacer with vsync pacing.
type Pacer interface {
	// SetUpdateCallback sets the function called once per frame.
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the drawable surface is resized.
	SetResizeCallback(callback func(width, height int))

	// ProcessMessages blocks, calling the update callback once per frame, until the pacer stops.
	ProcessMessages()

	// IsRunning reports whether the loop is still active.
	IsRunning() bool

	// RequestClose asks the loop to stop after the current frame. Safe from any goroutine.
	RequestClose()
}

// tickerPacer paces frames with a time.Ticker. It is used when no window is attached.
type tickerPacer struct {
	mu       *sync.Mutex
	interval time.Duration
	onUpdate func()

	quit     chan struct{}
	quitOnce sync.Once
}

var _ Pacer = &tickerPacer{}

// NewTickerPacer creates a Pacer that fires at a fixed rate without a window.
//
// Parameters:
//   - fps: frames per second (defaults to 60 if <= 0)
//
// Returns:
//   - Pacer: the ticker pacer
func NewTickerPacer(fps float64) Pacer {
	return &tickerPacer{
		mu:       &sync.Mutex{},
		interval: tickInterval(fps),
		quit:     make(chan struct{}),
	}
}

func (p *tickerPacer) SetUpdateCallback(callback func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = callback
}

// SetResizeCallback is a no-op: a ticker has no surface to resize.
func (p *tickerPacer) SetResizeCallback(func(width, height int)) {}

func (p *tickerPacer) ProcessMessages() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.quit:
			return
		case <-ticker.C:
			p.mu.Lock()
			update := p.onUpdate
			p.mu.Unlock()
			if update != nil {
				update()
			}
		}
	}
}

func (p *tickerPacer) IsRunning() bool {
	select {
	case <-p.quit:
		return false
	default:
		return true
	}
}

func (p *tickerPacer) RequestClose() {
	p.quitOnce.Do(func() {
		close(p.quit)
	})
}

func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
