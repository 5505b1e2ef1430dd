// Package config loads the TOML configuration of an oxy-gl application: window,
// render and engine settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Window configures the application window.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

// Render configures the projection and clear colour.
type Render struct {
	BackgroundColor [3]float32 `toml:"background_color"`
	FovDegrees      float32    `toml:"fov_degrees"`
	Near            float32    `toml:"near"`
	Far             float32    `toml:"far"`
}

// Engine configures the frame driver and depth sorter.
type Engine struct {
	TickRate              float64 `toml:"tick_rate"`
	Profiling             bool    `toml:"profiling"`
	SortWorkers           int     `toml:"sort_workers"`
	ParallelSortThreshold int     `toml:"parallel_sort_threshold"`
}

// Config is the root of the configuration file.
type Config struct {
	Window Window `toml:"window"`
	Render Render `toml:"render"`
	Engine Engine `toml:"engine"`
}

// Default returns the configuration used when no file is given: a 1280x720 vsynced
// window, the default scene projection and a 60Hz ticker.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	settings := scene.DefaultSettings()
	return Config{
		Window: Window{Title: "oxy-gl", Width: 1280, Height: 720, VSync: true},
		Render: Render{
			BackgroundColor: settings.BackgroundColor,
			FovDegrees:      settings.FovDegrees,
			Near:            settings.Near,
			Far:             settings.Far,
		},
		Engine: Engine{TickRate: 60, ParallelSortThreshold: 512},
	}
}

// Parse decodes TOML on top of Default and validates the result. Unknown keys are rejected.
//
// Parameters:
//   - data: the TOML document
//
// Returns:
//   - Config: the parsed configuration
//   - error: a decode or validation error
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("config: %w: %s", ErrInvalid, strict.String())
		}
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the TOML file at path.
//
// Parameters:
//   - path: the configuration file
//
// Returns:
//   - Config: the parsed configuration
//   - error: a read, decode or validation error
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
//
// Returns:
//   - error: an error wrapping ErrInvalid, nil if the configuration is usable
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: %w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Render.FovDegrees <= 0 || c.Render.FovDegrees >= 180:
		return fmt.Errorf("config: %w: fov_degrees %v outside (0, 180)", ErrInvalid, c.Render.FovDegrees)
	case c.Render.Near <= 0 || c.Render.Near >= c.Render.Far:
		return fmt.Errorf("config: %w: near %v / far %v", ErrInvalid, c.Render.Near, c.Render.Far)
	case c.Engine.TickRate < 0:
		return fmt.Errorf("config: %w: tick_rate %v", ErrInvalid, c.Engine.TickRate)
	case c.Engine.SortWorkers < 0 || c.Engine.ParallelSortThreshold < 0:
		return fmt.Errorf("config: %w: sort workers %d / threshold %d", ErrInvalid, c.Engine.SortWorkers, c.Engine.ParallelSortThreshold)
	}
	for _, ch := range c.Render.BackgroundColor {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("config: %w: background_color %v outside [0, 1]", ErrInvalid, c.Render.BackgroundColor)
		}
	}
	return nil
}

// SceneSettings converts the render section to scene settings.
//
// Returns:
//   - scene.Settings: the scene render settings
func (c Config) SceneSettings() scene.Settings {
	return scene.Settings{
		BackgroundColor: c.Render.BackgroundColor,
		FovDegrees:      c.Render.FovDegrees,
		Near:            c.Render.Near,
		Far:             c.Render.Far,
	}
}
