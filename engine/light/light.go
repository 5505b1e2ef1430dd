package light

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	id       uint64
	name     string
	position [3]float32
	color    [3]float32
	strength float32
	enabled  bool
}

// Light defines the interface for a point light in the scene.
//
// A point light emits in all directions from its position. Its color is scaled by
// its strength before it contributes to the ambient, diffuse and specular terms.
//
// Lights are owned by the scene and packed into fixed-capacity uniform arrays
// once per frame by Aggregate.
type Light interface {
	// ID returns the light's scene handle, 0 until it is added to a scene.
	//
	// Returns:
	//   - uint64: the light handle
	ID() uint64

	// Name returns the descriptive name of the light.
	//
	// Returns:
	//   - string: the light name
	Name() string

	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Color returns the RGB color of the light.
	//
	// Returns:
	//   - [3]float32: color as (r, g, b)
	Color() [3]float32

	// Strength returns the scalar multiplier applied to the light's color.
	//
	// Returns:
	//   - float32: the strength value
	Strength() float32

	// Enabled returns whether this light is active for rendering.
	// Disabled lights are skipped by Aggregate and do not use a slot.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetID sets the light's scene handle. Called by the scene when the light is added.
	//
	// Parameters:
	//   - id: the handle to assign
	SetID(id uint64)

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x, y, z: the position components
	SetPosition(x, y, z float32)

	// SetColor sets the RGB color of the light.
	//
	// Parameters:
	//   - r, g, b: the color components
	SetColor(r, g, b float32)

	// SetStrength sets the scalar multiplier applied to the light's color.
	//
	// Parameters:
	//   - strength: the strength value
	SetStrength(strength float32)

	// SetEnabled enables or disables the light.
	//
	// Parameters:
	//   - enabled: true to enable the light
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new point Light configured with the given options.
// Defaults to a white, enabled light of strength 1 at the origin.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		color:    [3]float32{1, 1, 1},
		strength: 1,
		enabled:  true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) ID() uint64 {
	return l.id
}

func (l *lightImpl) Name() string {
	return l.name
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Strength() float32 {
	return l.strength
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetID(id uint64) {
	l.id = id
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetStrength(strength float32) {
	l.strength = strength
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
