package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/game_object"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(options ...SceneBuilderOption) Scene {
	return NewScene("test", camera.NewCamera(), options...)
}

func TestNewScenePanicsWithoutCamera(t *testing.T) {
	assert.Panics(t, func() { NewScene("nil", nil) })
}

func TestDefaultSettings(t *testing.T) {
	s := newTestScene()
	assert.Equal(t, "test", s.Name())
	assert.Equal(t, Settings{FovDegrees: 90, Near: 0.1, Far: 1_000_000}, s.Settings())

	custom := Settings{BackgroundColor: [3]float32{0.1, 0.2, 0.3}, FovDegrees: 60, Near: 1, Far: 100}
	s.SetSettings(custom)
	assert.Equal(t, custom, s.Settings())
}

func TestAddAssignsHandles(t *testing.T) {
	s := newTestScene()
	a := game_object.NewGameObject(game_object.WithName("a"))
	b := game_object.NewGameObject(game_object.WithName("b"), game_object.WithID(10))
	c := game_object.NewGameObject(game_object.WithName("c"), game_object.WithID(10))

	assert.Equal(t, uint64(1), s.Add(a))
	assert.Equal(t, uint64(10), s.Add(b))
	// ID 10 is taken, so c gets the next free handle.
	assert.Equal(t, uint64(11), s.Add(c))
	assert.Equal(t, uint64(11), c.ID())
	assert.Zero(t, s.Add(nil))
	assert.Equal(t, 3, s.Count())

	got, ok := s.Get(10)
	require.True(t, ok)
	assert.Same(t, b, got)

	_, ok = s.Get(99)
	assert.False(t, ok)
}

func TestLookupReturnsFirstMatch(t *testing.T) {
	first := game_object.NewGameObject(game_object.WithName("crate"))
	second := game_object.NewGameObject(game_object.WithName("crate"))
	s := newTestScene(WithObjects(first, second))

	got, ok := s.Lookup("crate")
	require.True(t, ok)
	assert.Same(t, first, got)

	got, ok = s.Lookup("missing")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRemoveKeepsOrder(t *testing.T) {
	objs := []game_object.GameObject{
		game_object.NewGameObject(game_object.WithName("a")),
		game_object.NewGameObject(game_object.WithName("b")),
		game_object.NewGameObject(game_object.WithName("c")),
	}
	s := newTestScene(WithObjects(objs...))

	assert.True(t, s.Remove(objs[1].ID()))
	assert.False(t, s.Remove(objs[1].ID()))

	remaining := s.Objects()
	require.Len(t, remaining, 2)
	assert.Equal(t, "a", remaining[0].Name())
	assert.Equal(t, "c", remaining[1].Name())

	_, ok := s.Get(objs[1].ID())
	assert.False(t, ok)
}

func TestObjectsIsSnapshot(t *testing.T) {
	s := newTestScene(WithObjects(game_object.NewGameObject()))
	snap := s.Objects()
	s.Add(game_object.NewGameObject())
	assert.Len(t, snap, 1)
	assert.Len(t, s.Objects(), 2)
}

func TestLights(t *testing.T) {
	key := light.NewLight(light.WithName("key"))
	fill := light.NewLight(light.WithName("fill"))
	s := newTestScene(WithLights(key))

	assert.Equal(t, uint64(1), key.ID())
	id := s.AddLight(fill)
	assert.Equal(t, uint64(2), id)
	assert.Zero(t, s.AddLight(nil))
	require.Len(t, s.Lights(), 2)

	assert.True(t, s.RemoveLight(1))
	assert.False(t, s.RemoveLight(1))
	lights := s.Lights()
	require.Len(t, lights, 1)
	assert.Equal(t, "fill", lights[0].Name())

	s.Clear()
	assert.Empty(t, s.Lights())
	assert.Zero(t, s.Count())
}

func TestNodeLookup(t *testing.T) {
	obj := game_object.NewGameObject()
	s := newTestScene(WithObjects(obj))
	lookup := NodeLookup(s)

	n, ok := lookup(obj.ID())
	require.True(t, ok)
	assert.Equal(t, obj.ID(), n.ID())

	n, ok = lookup(42)
	assert.False(t, ok)
	assert.Nil(t, n)
}

func TestSetCameraIgnoresNil(t *testing.T) {
	s := newTestScene()
	cam := s.Camera()
	s.SetCamera(nil)
	assert.Same(t, cam, s.Camera())

	next := camera.NewCamera()
	s.SetCamera(next)
	assert.Same(t, next, s.Camera())
}
