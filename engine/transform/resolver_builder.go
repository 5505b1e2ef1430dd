package transform

import "log/slog"

// ResolverBuilderOption is a functional option for configuring a Resolver during construction.
type ResolverBuilderOption func(*resolver)

// WithLogger sets the logger used to report degraded transforms.
//
// Parameters:
//   - logger: the structured logger (nil keeps slog.Default())
//
// Returns:
//   - ResolverBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) ResolverBuilderOption {
	return func(r *resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}
