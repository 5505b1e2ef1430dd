package scene

import (
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/engine/camera"
	"github.com/Carmen-Shannon/oxy-gl/engine/game_object"
	"github.com/Carmen-Shannon/oxy-gl/engine/light"
	"github.com/Carmen-Shannon/oxy-gl/engine/transform"
)

// Settings holds the global render settings of a scene.
type Settings struct {
	// BackgroundColor is the RGB clear color.
	BackgroundColor [3]float32
	// FovDegrees is the vertical field of view of the projection.
	FovDegrees float32
	// Near is the near clipping plane distance.
	Near float32
	// Far is the far clipping plane distance.
	Far float32
}

// DefaultSettings returns the stock projection (90 degree vertical field of view,
// near 0.1, far 1e6) over a black background.
//
// Returns:
//   - Settings: the default settings
func DefaultSettings() Settings {
	return Settings{
		FovDegrees: 90,
		Near:       0.1,
		Far:        1_000_000,
	}
}

// Scene holds everything one frame is rendered from: the objects in insertion order,
// the point lights, the camera and the global render settings.
//
// Objects and lights are addressed by handles assigned on Add. Lookups report an
// explicit not-found result instead of returning a nil object. The scene is safe for
// concurrent use, but it is expected to be mutated only between frames.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera (nil is ignored)
	SetCamera(cam camera.Camera)

	// Settings returns the scene's render settings.
	Settings() Settings

	// SetSettings replaces the scene's render settings.
	//
	// Parameters:
	//   - settings: the new settings
	SetSettings(settings Settings)

	// Count returns the number of objects in the scene.
	//
	// Returns:
	//   - int: count of objects
	Count() int

	// Add appends a GameObject to the scene and returns its handle. An object that
	// already carries an unused non-zero ID keeps it; otherwise the next free handle
	// is assigned to it.
	//
	// Parameters:
	//   - obj: the GameObject to add (nil is ignored and yields 0)
	//
	// Returns:
	//   - uint64: the assigned object ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a GameObject by its ID.
	//
	// Parameters:
	//   - id: the object's handle
	//
	// Returns:
	//   - game_object.GameObject: the object, nil if not found
	//   - bool: false if no object has this handle
	Get(id uint64) (game_object.GameObject, bool)

	// Lookup retrieves the first GameObject, in insertion order, with the given name.
	//
	// Parameters:
	//   - name: the object name
	//
	// Returns:
	//   - game_object.GameObject: the object, nil if not found
	//   - bool: false if no object has this name
	Lookup(name string) (game_object.GameObject, bool)

	// Remove removes a GameObject by ID. Children of the removed object keep their
	// parent handle and are treated as unparented until it is changed.
	//
	// Parameters:
	//   - id: the object's handle
	//
	// Returns:
	//   - bool: true if an object was removed
	Remove(id uint64) bool

	// Clear removes all objects and lights from the scene.
	Clear()

	// Objects returns a snapshot of the objects in insertion order.
	//
	// Returns:
	//   - []game_object.GameObject: the objects
	Objects() []game_object.GameObject

	// AddLight appends a point light and returns its handle.
	//
	// Parameters:
	//   - l: the light to add (nil is ignored and yields 0)
	//
	// Returns:
	//   - uint64: the assigned light ID
	AddLight(l light.Light) uint64

	// RemoveLight removes a point light by ID.
	//
	// Parameters:
	//   - id: the light's handle
	//
	// Returns:
	//   - bool: true if a light was removed
	RemoveLight(id uint64) bool

	// Lights returns a snapshot of the point lights in insertion order.
	//
	// Returns:
	//   - []light.Light: the lights
	Lights() []light.Light
}

type scene struct {
	mu *sync.RWMutex

	name     string
	cam      camera.Camera
	settings Settings

	objects  []game_object.GameObject
	registry map[uint64]game_object.GameObject
	nextID   uint64

	lights      []light.Light
	nextLightID uint64
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and DefaultSettings.
// It panics if cam is nil.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	if cam == nil {
		panic("scene: NewScene requires a non-nil Camera")
	}

	s := &scene{
		mu:          &sync.RWMutex{},
		name:        name,
		cam:         cam,
		settings:    DefaultSettings(),
		registry:    make(map[uint64]game_object.GameObject),
		nextID:      1,
		nextLightID: 1,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// NodeLookup adapts a Scene's ID lookup to the transform resolver's parent lookup.
//
// Parameters:
//   - s: the scene to look parents up in
//
// Returns:
//   - transform.LookupFunc: the lookup function
func NodeLookup(s Scene) transform.LookupFunc {
	return func(id uint64) (transform.Node, bool) {
		obj, ok := s.Get(id)
		if !ok {
			return nil, false
		}
		return obj, true
	}
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	if cam == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *scene) SetSettings(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	if obj == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(obj)
}

// addLocked registers obj. Caller must hold the write lock.
func (s *scene) addLocked(obj game_object.GameObject) uint64 {
	id := obj.ID()
	if _, taken := s.registry[id]; id == 0 || taken {
		id = s.nextID
		obj.SetID(id)
	}
	s.nextID = max(s.nextID, id+1)
	s.registry[id] = obj
	s.objects = append(s.objects, obj)
	return id
}

func (s *scene) Get(id uint64) (game_object.GameObject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.registry[id]
	return obj, ok
}

func (s *scene) Lookup(name string) (game_object.GameObject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, obj := range s.objects {
		if obj.Name() == name {
			return obj, true
		}
	}
	return nil, false
}

func (s *scene) Remove(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, exists := s.registry[id]
	if !exists {
		return false
	}
	delete(s.registry, id)
	s.objects = slices.DeleteFunc(s.objects, func(o game_object.GameObject) bool {
		return o == obj
	})
	return true
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects = nil
	s.registry = make(map[uint64]game_object.GameObject)
	s.lights = nil
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.objects)
}

func (s *scene) AddLight(l light.Light) uint64 {
	if l == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLightLocked(l)
}

// addLightLocked registers l. Caller must hold the write lock.
func (s *scene) addLightLocked(l light.Light) uint64 {
	id := s.nextLightID
	s.nextLightID++
	l.SetID(id)
	s.lights = append(s.lights, l)
	return id
}

func (s *scene) RemoveLight(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.lights {
		if l.ID() == id {
			s.lights = slices.Delete(s.lights, i, i+1)
			return true
		}
	}
	return false
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lights)
}
