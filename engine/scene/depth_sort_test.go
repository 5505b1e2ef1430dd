package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/game_object"
	"github.com/Carmen-Shannon/oxy-gl/engine/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func objectAt(id uint64, x, y, z float32) game_object.GameObject {
	return game_object.NewGameObject(game_object.WithID(id), game_object.WithPosition(x, y, z))
}

func idsOf(objs []game_object.GameObject) []uint64 {
	out := make([]uint64, len(objs))
	for i, o := range objs {
		out[i] = o.ID()
	}
	return out
}

func TestSortBackToFront(t *testing.T) {
	objs := []game_object.GameObject{
		objectAt(1, 0, 0, 8),  // distance 2
		objectAt(2, 0, 0, -5), // distance 15
		objectAt(3, 0, 0, 0),  // distance 10
	}
	sorted := NewDepthSorter().Sort(objs, [3]float32{0, 0, 10}, nil)
	assert.Equal(t, []uint64{2, 3, 1}, idsOf(sorted))
	assert.Equal(t, []uint64{1, 2, 3}, idsOf(objs), "input must not be modified")
}

func TestSortTiesKeepInputOrder(t *testing.T) {
	objs := []game_object.GameObject{
		objectAt(1, 1, 0, 0),
		objectAt(2, -1, 0, 0),
		objectAt(3, 0, 1, 0),
		objectAt(4, 0, 5, 0),
	}
	sorter := NewDepthSorter()
	first := sorter.Sort(objs, [3]float32{}, nil)
	assert.Equal(t, []uint64{4, 1, 2, 3}, idsOf(first))

	second := sorter.Sort(objs, [3]float32{}, nil)
	assert.Equal(t, idsOf(first), idsOf(second))
}

func TestSortNonFiniteDistanceGoesFirst(t *testing.T) {
	nan := float32(math.NaN())
	objs := []game_object.GameObject{
		objectAt(1, 0, 0, 1),
		objectAt(2, 0, 0, 0),
	}
	worldOf := func(id uint64) ([16]float32, bool) {
		if id != 2 {
			return [16]float32{}, false
		}
		var m [16]float32
		m[12] = nan
		return m, true
	}
	sorted := NewDepthSorter().Sort(objs, [3]float32{}, worldOf)
	assert.Equal(t, []uint64{2, 1}, idsOf(sorted))
}

func TestSortUsesResolvedWorldMatrix(t *testing.T) {
	parent := objectAt(1, 0, 0, -100)
	child := game_object.NewGameObject(game_object.WithID(2), game_object.WithParent(1))
	near := objectAt(3, 0, 0, -10)

	s := newTestScene(WithObjects(parent, child, near))
	r := transform.NewResolver(NodeLookup(s))
	for _, o := range s.Objects() {
		r.Resolve(o)
	}

	sorted := NewDepthSorter().Sort([]game_object.GameObject{near, child}, [3]float32{}, r.World)
	// The child inherits its parent's translation and is the farther object.
	assert.Equal(t, []uint64{2, 3}, idsOf(sorted))

	// Without world matrices the child sits at the origin and sorts last.
	sorted = NewDepthSorter().Sort([]game_object.GameObject{near, child}, [3]float32{}, nil)
	assert.Equal(t, []uint64{3, 2}, idsOf(sorted))
}

func TestWorldCentroid(t *testing.T) {
	obj := game_object.NewGameObject(
		game_object.WithID(1),
		game_object.WithPosition(1, 2, 3),
		game_object.WithCentroid(1, 0, 0),
	)
	assert.Equal(t, [3]float32{2, 2, 3}, WorldCentroid(obj, nil))

	obj.SetPosition(float32(math.Inf(1)), 0, 0)
	assert.Equal(t, [3]float32{1, 0, 0}, WorldCentroid(obj, nil))
}

func TestWorldCentroidAfterParentRotation(t *testing.T) {
	parent := game_object.NewGameObject(game_object.WithID(1))
	parent.SetRotationAxisAngle(0, 1, 0, math.Pi)
	child := game_object.NewGameObject(
		game_object.WithID(2),
		game_object.WithParent(1),
		game_object.WithCentroid(1, 0, 0),
	)
	s := newTestScene(WithObjects(parent, child))
	r := transform.NewResolver(NodeLookup(s))
	r.Resolve(child)

	c := WorldCentroid(child, r.World)
	assert.InDelta(t, -1, c[0], 1e-5)
	assert.InDelta(t, 0, c[1], 1e-5)
	assert.InDelta(t, 0, c[2], 1e-5)
}

func TestParallelSortMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	objs := make([]game_object.GameObject, 2000)
	for i := range objs {
		// Coarse grid positions produce many exact distance ties.
		objs[i] = objectAt(uint64(i+1), float32(rng.Intn(10)), float32(rng.Intn(10)), float32(rng.Intn(10)))
	}
	cam := [3]float32{4.5, 4.5, 20}

	serial := NewDepthSorter(WithWorkers(1)).Sort(objs, cam, nil)
	parallel := NewDepthSorter(WithWorkers(4), WithParallelThreshold(16)).Sort(objs, cam, nil)
	require.Len(t, parallel, len(objs))
	assert.Equal(t, idsOf(serial), idsOf(parallel))

	for i := 1; i < len(serial); i++ {
		prev := WorldCentroid(serial[i-1], nil)
		cur := WorldCentroid(serial[i], nil)
		dPrev := dist(cam, prev)
		dCur := dist(cam, cur)
		require.GreaterOrEqual(t, dPrev, dCur)
		if dPrev == dCur {
			require.Less(t, serial[i-1].ID(), serial[i].ID())
		}
	}
}

func dist(a, b [3]float32) float64 {
	dx, dy, dz := float64(a[0]-b[0]), float64(a[1]-b[1]), float64(a[2]-b[2])
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
