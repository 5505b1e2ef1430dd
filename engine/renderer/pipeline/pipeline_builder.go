package pipeline

// StateBuilderOption is a functional option used to configure a State during construction.
type StateBuilderOption func(*State)

// WithDepthTest sets whether depth testing is enabled.
//
// Parameters:
//   - enabled: a boolean indicating whether depth testing should be enabled
//
// Returns:
//   - StateBuilderOption: a function that sets the depth test state
func WithDepthTest(enabled bool) StateBuilderOption {
	return func(s *State) {
		s.DepthTest = enabled
	}
}

// WithDepthWrite sets whether passing fragments write to the depth buffer.
//
// Parameters:
//   - enabled: a boolean indicating whether depth writes should be enabled
//
// Returns:
//   - StateBuilderOption: a function that sets the depth write state
func WithDepthWrite(enabled bool) StateBuilderOption {
	return func(s *State) {
		s.DepthWrite = enabled
	}
}

// WithDepthFunc sets the depth comparison function.
//
// Parameters:
//   - f: the depth comparison
//
// Returns:
//   - StateBuilderOption: a function that sets the depth function
func WithDepthFunc(f DepthFunc) StateBuilderOption {
	return func(s *State) {
		s.DepthFunc = f
	}
}

// WithBlend enables blending with the given source and destination factors.
//
// Parameters:
//   - src: the source factor
//   - dst: the destination factor
//
// Returns:
//   - StateBuilderOption: a function that enables blending
func WithBlend(src, dst BlendFactor) StateBuilderOption {
	return func(s *State) {
		s.Blend = true
		s.BlendSrc = src
		s.BlendDst = dst
	}
}

// WithCullMode sets which faces are culled.
//
// Parameters:
//   - mode: the cull mode
//
// Returns:
//   - StateBuilderOption: a function that sets the cull mode
func WithCullMode(mode CullMode) StateBuilderOption {
	return func(s *State) {
		s.Cull = mode
	}
}
