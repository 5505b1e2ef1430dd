package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, scene.DefaultSettings(), cfg.SceneSettings())
	assert.True(t, cfg.Window.VSync)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[window]
title = "hud"
width = 640

[render]
background_color = [0.1, 0.2, 0.3]
fov_degrees = 60.0

[engine]
profiling = true
sort_workers = 4
`))
	require.NoError(t, err)

	assert.Equal(t, "hud", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "missing keys keep defaults")
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, cfg.Render.BackgroundColor)
	assert.Equal(t, float32(60), cfg.Render.FovDegrees)
	assert.Equal(t, float32(0.1), cfg.Render.Near)
	assert.True(t, cfg.Engine.Profiling)
	assert.Equal(t, 4, cfg.Engine.SortWorkers)
	assert.Equal(t, 512, cfg.Engine.ParallelSortThreshold)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero width", "[window]\nwidth = 0"},
		{"near past far", "[render]\nnear = 10.0\nfar = 1.0"},
		{"fov too wide", "[render]\nfov_degrees = 180.0"},
		{"negative tick rate", "[engine]\ntick_rate = -1.0"},
		{"colour out of range", "[render]\nbackground_color = [2.0, 0.0, 0.0]"},
		{"unknown key", "[window]\nfullscreen = true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	_, err := Parse([]byte("[window"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oxy.toml")
	require.NoError(t, os.WriteFile(path, []byte("[engine]\ntick_rate = 30.0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.Engine.TickRate)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
