package profiler

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickLogsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(slog.New(slog.NewTextHandler(&buf, nil)), time.Second)
	start := p.lastTime

	for i := 1; i < 10; i++ {
		_, logged := p.Tick(start.Add(time.Duration(i)*100*time.Millisecond), 3, 0)
		assert.False(t, logged)
	}
	stats, logged := p.Tick(start.Add(time.Second), 3, 1)
	require.True(t, logged)

	assert.InDelta(t, 10, stats.FPS, 1e-9)
	assert.InDelta(t, 30, stats.DrawsPerSec, 1e-9)
	assert.Equal(t, 1, stats.SkippedTotal)
	assert.Contains(t, buf.String(), "fps=10")

	_, logged = p.Tick(start.Add(1500*time.Millisecond), 0, 0)
	assert.False(t, logged, "counters restart after logging")
}

func TestNewProfilerDefaults(t *testing.T) {
	p := NewProfiler(nil, 0)
	assert.Equal(t, time.Second, p.updateInterval)
	assert.NotNil(t, p.logger)
}
