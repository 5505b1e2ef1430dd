package glbackend

import "log/slog"

// BackendBuilderOption is a functional option applied to the GL backend during construction via NewBackend.
type BackendBuilderOption func(*glBackend)

// WithLogger sets the structured logger used for context and program diagnostics.
//
// Parameters:
//   - logger: the logger to use (nil keeps the default)
//
// Returns:
//   - BackendBuilderOption: a function that applies the logger option to a backend
func WithLogger(logger *slog.Logger) BackendBuilderOption {
	return func(b *glBackend) {
		if logger != nil {
			b.logger = logger
		}
	}
}
