package profiler

import (
	"log/slog"
	"runtime"
	"time"
)

// Profiler tracks frame rate, draw counts and memory statistics for performance monitoring.
// Outputs stats to a structured logger at a configurable interval.
type Profiler struct {
	logger         *slog.Logger
	frameCount     int
	drawn          int
	skipped        int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// Stats is one logged sample.
type Stats struct {
	FPS          float64
	DrawsPerSec  float64
	SkippedTotal int
	HeapMB       float64
	AllocRateMB  float64
	GCCount      uint32
	LastPauseUs  uint64
	MaxPauseUs   uint64
	SysMB        float64
}

// NewProfiler creates a new Profiler logging to logger every interval.
// A nil logger uses slog.Default(); a non-positive interval defaults to 1 second.
//
// Parameters:
//   - logger: the structured logger
//   - interval: the sampling interval
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(logger *slog.Logger, interval time.Duration) *Profiler {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Profiler{
		logger:         logger,
		lastTime:       time.Now(),
		updateInterval: interval,
	}
}

// Tick should be called once per frame with that frame's draw and skip counts.
// Logs performance statistics when the update interval has elapsed.
//
// Parameters:
//   - now: the frame timestamp
//   - drawn: objects drawn this frame
//   - skipped: objects skipped this frame
//
// Returns:
//   - Stats: the logged sample, zero if nothing was logged
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(now time.Time, drawn, skipped int) (Stats, bool) {
	p.frameCount++
	p.drawn += drawn
	p.skipped += skipped
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return Stats{}, false
	}

	runtime.ReadMemStats(&p.memStats)
	s := Stats{
		FPS:          float64(p.frameCount) / elapsed.Seconds(),
		DrawsPerSec:  float64(p.drawn) / elapsed.Seconds(),
		SkippedTotal: p.skipped,
		HeapMB:       float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:        float64(p.memStats.Sys) / 1024 / 1024,
		AllocRateMB:  float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:      p.memStats.NumGC,
	}

	// PauseNs is a circular buffer of the last 256 GC pauses.
	if gcCount := s.GCCount; gcCount > 0 {
		s.LastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			s.MaxPauseUs = max(s.MaxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.logger.Info("profiler",
		"fps", s.FPS,
		"draws_per_sec", s.DrawsPerSec,
		"skipped", s.SkippedTotal,
		"heap_mb", s.HeapMB,
		"alloc_rate_mb", s.AllocRateMB,
		"gc", s.GCCount,
		"gc_last_us", s.LastPauseUs,
		"gc_max_us", s.MaxPauseUs,
		"sys_mb", s.SysMB,
	)

	p.frameCount = 0
	p.drawn = 0
	p.skipped = 0
	p.lastTime = now
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return s, true
}
