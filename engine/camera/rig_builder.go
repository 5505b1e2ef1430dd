package camera

// RigBuilderOption is a functional option for configuring a Rig during construction.
type RigBuilderOption func(*rigImpl)

// WithOffset sets the camera's resting offset from the target.
//
// Parameters:
//   - x, y, z: offset components
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithOffset(x, y, z float32) RigBuilderOption {
	return func(r *rigImpl) {
		r.offset = [3]float32{x, y, z}
	}
}

// WithTarget sets the initial follow target.
//
// Parameters:
//   - x, y, z: the target point
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithTarget(x, y, z float32) RigBuilderOption {
	return func(r *rigImpl) {
		r.target = [3]float32{x, y, z}
	}
}

// WithSpring sets the spring's angular frequency and damping ratio.
// A damping ratio of 1 is critically damped; below 1 the camera overshoots.
//
// Parameters:
//   - frequency: angular frequency, higher is snappier
//   - damping: damping ratio
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithSpring(frequency, damping float64) RigBuilderOption {
	return func(r *rigImpl) {
		r.frequency = frequency
		r.damping = damping
	}
}

// WithLookAtTarget sets whether the rig turns the camera to face the target.
//
// Parameters:
//   - lookAt: true to face the target after every update
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithLookAtTarget(lookAt bool) RigBuilderOption {
	return func(r *rigImpl) {
		r.lookAt = lookAt
	}
}
