package renderer

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-gl/engine/scene"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithProgram pre-registers an already linked program in the renderer's program cache under the given key.
//
// Parameters:
//   - key: the unique identifier for the program
//   - h: the program handle
//
// Returns:
//   - RendererBuilderOption: a function that applies the program option to a renderer
func WithProgram(key string, h common.ProgramHandle) RendererBuilderOption {
	return func(r *renderer) {
		r.programCache[key] = h
	}
}

// WithLogger sets the structured logger used for skipped-object warnings.
//
// Parameters:
//   - logger: the logger to use (nil keeps the default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the logger option to a renderer
func WithLogger(logger *slog.Logger) RendererBuilderOption {
	return func(r *renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDepthSorter replaces the depth sorter used to order the world pass.
//
// Parameters:
//   - sorter: the sorter to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the sorter option to a renderer
func WithDepthSorter(sorter scene.DepthSorter) RendererBuilderOption {
	return func(r *renderer) {
		r.sorter = sorter
	}
}

// WithSortWorkers configures the default depth sorter's worker count and the object
// count above which distances are computed in parallel.
//
// Parameters:
//   - workers: maximum worker goroutines
//   - threshold: minimum world object count for parallel distance computation
//
// Returns:
//   - RendererBuilderOption: a function that applies the sort option to a renderer
func WithSortWorkers(workers, threshold int) RendererBuilderOption {
	return func(r *renderer) {
		r.sorter = scene.NewDepthSorter(scene.WithWorkers(workers), scene.WithParallelThreshold(threshold))
	}
}

// WithDefaultMaterial sets the material used for objects that have none.
//
// Parameters:
//   - m: the fallback material
//
// Returns:
//   - RendererBuilderOption: a function that applies the material option to a renderer
func WithDefaultMaterial(m material.Material) RendererBuilderOption {
	return func(r *renderer) {
		if m != nil {
			r.defaultMaterial = m
		}
	}
}
