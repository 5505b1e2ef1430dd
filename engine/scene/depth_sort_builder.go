package scene

// DepthSorterBuilderOption is a functional option for configuring a DepthSorter.
type DepthSorterBuilderOption func(d *depthSorter)

// WithWorkers sets the number of worker goroutines used to compute distance keys.
// Values below 1 are raised to 1, which disables the parallel path.
//
// Parameters:
//   - n: the number of workers
//
// Returns:
//   - DepthSorterBuilderOption: option function to apply
func WithWorkers(n int) DepthSorterBuilderOption {
	return func(d *depthSorter) {
		d.workers = max(n, 1)
	}
}

// WithParallelThreshold sets the minimum number of objects for which distance keys are
// computed on the worker pool. Smaller inputs are handled on the calling goroutine.
//
// Parameters:
//   - n: the object count threshold
//
// Returns:
//   - DepthSorterBuilderOption: option function to apply
func WithParallelThreshold(n int) DepthSorterBuilderOption {
	return func(d *depthSorter) {
		d.threshold = max(n, 0)
	}
}
