package scene

import (
	"cmp"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/game_object"
	"github.com/chewxy/math32"
)

// WorldFunc returns the resolved world matrix of an object for the current frame,
// or false when the object has not been resolved.
type WorldFunc func(id uint64) ([16]float32, bool)

// depthKey is the precomputed sort key of one object.
type depthKey struct {
	obj   game_object.GameObject
	index int
	dist  float32
}

type depthSorter struct {
	workers   int
	threshold int

	poolOnce sync.Once
	pool     worker.DynamicWorkerPool
	keys     []depthKey
}

// DepthSorter orders world objects back to front (farthest from the camera first)
// for painter's-algorithm compositing.
//
// The comparison is a strict total order: descending distance, then ascending input
// index for exact ties, so sorting the same input always yields the same output.
// Distance keys are computed on a worker pool when the input is large enough.
// A DepthSorter reuses its key buffer and is not safe for concurrent use.
type DepthSorter interface {
	// Sort returns a new slice holding world ordered back to front. The input slice
	// is not modified.
	//
	// Parameters:
	//   - world: the objects to order
	//   - cameraPos: the eye position distances are measured from
	//   - worldOf: world matrix lookup for the current frame (may be nil)
	//
	// Returns:
	//   - []game_object.GameObject: the ordered objects
	Sort(world []game_object.GameObject, cameraPos [3]float32, worldOf WorldFunc) []game_object.GameObject
}

var _ DepthSorter = &depthSorter{}

// NewDepthSorter creates a DepthSorter. By default it uses runtime.NumCPU()-1 workers
// and only goes parallel for 512 objects or more.
//
// Parameters:
//   - options: functional options to configure the sorter
//
// Returns:
//   - DepthSorter: the newly created sorter
func NewDepthSorter(options ...DepthSorterBuilderOption) DepthSorter {
	d := &depthSorter{
		workers:   max(runtime.NumCPU()-1, 1),
		threshold: 512,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// WorldCentroid returns the world-space pivot of obj: its local centroid transformed
// by the object's world matrix when one is available, otherwise the untransformed sum
// position + centroid. Non-finite components are treated as zero.
//
// Parameters:
//   - obj: the object
//   - worldOf: world matrix lookup for the current frame (may be nil)
//
// Returns:
//   - [3]float32: the world-space centroid
func WorldCentroid(obj game_object.GameObject, worldOf WorldFunc) [3]float32 {
	tr := obj.Transform()
	c := finite3(tr.Centroid)
	if worldOf != nil {
		if m, ok := worldOf(obj.ID()); ok {
			return common.TransformPoint(m[:], c)
		}
	}
	return common.Add3(finite3(tr.Position), c)
}

func (d *depthSorter) Sort(world []game_object.GameObject, cameraPos [3]float32, worldOf WorldFunc) []game_object.GameObject {
	keys := d.keys[:0]
	for i, obj := range world {
		if obj != nil {
			keys = append(keys, depthKey{obj: obj, index: i})
		}
	}

	if len(keys) >= d.threshold && d.workers > 1 {
		d.fillParallel(keys, cameraPos, worldOf)
	} else {
		fillDistances(keys, cameraPos, worldOf)
	}

	slices.SortFunc(keys, compareDepth)

	out := make([]game_object.GameObject, len(keys))
	for i := range keys {
		out[i] = keys[i].obj
		keys[i].obj = nil
	}
	d.keys = keys
	return out
}

// fillParallel splits keys into one contiguous chunk per worker and waits for all
// of them. Chunks never overlap, so no further synchronization is needed.
func (d *depthSorter) fillParallel(keys []depthKey, cameraPos [3]float32, worldOf WorldFunc) {
	d.poolOnce.Do(func() {
		d.pool = worker.NewDynamicWorkerPool(d.workers, 256, 1*time.Second)
	})

	chunk := (len(keys) + d.workers - 1) / d.workers
	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(keys); start += chunk {
		part := keys[start:min(start+chunk, len(keys))]
		wg.Add(1)
		d.pool.SubmitTask(worker.Task{
			ID: taskID,
			Do: func() (any, error) {
				defer wg.Done()
				fillDistances(part, cameraPos, worldOf)
				return nil, nil
			},
		})
		taskID++
	}
	wg.Wait()
}

func fillDistances(keys []depthKey, cameraPos [3]float32, worldOf WorldFunc) {
	for i := range keys {
		dist := common.Distance3(cameraPos, WorldCentroid(keys[i].obj, worldOf))
		if math32.IsNaN(dist) {
			dist = math32.Inf(1)
		}
		keys[i].dist = dist
	}
}

// compareDepth orders farther objects first, breaking exact ties by input index.
func compareDepth(a, b depthKey) int {
	if c := cmp.Compare(b.dist, a.dist); c != 0 {
		return c
	}
	return cmp.Compare(a.index, b.index)
}

func finite3(v [3]float32) [3]float32 {
	for i := range v {
		if !common.IsFinite(v[i]) {
			v[i] = 0
		}
	}
	return v
}
