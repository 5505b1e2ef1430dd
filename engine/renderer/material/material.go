package material

import "fmt"

// material is the implementation of the Material interface.
type material struct {
	name      string
	diffuse   [3]float32
	ambient   [3]float32
	specular  [3]float32
	shininess float32
	alpha     float32
}

// Material defines the interface for a Blinn-Phong surface description. The values
// are uploaded verbatim as shading uniforms for every draw of the owning object.
//
// Surface properties are set at construction time. Alpha is mutable so game logic
// can fade objects (typically HUD quads) between frames.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Diffuse retrieves the diffuse RGB reflectance, used when no diffuse texture is bound.
	//
	// Returns:
	//   - [3]float32: the diffuse color
	Diffuse() [3]float32

	// Ambient retrieves the ambient RGB reflectance.
	//
	// Returns:
	//   - [3]float32: the ambient color
	Ambient() [3]float32

	// Specular retrieves the specular RGB reflectance.
	//
	// Returns:
	//   - [3]float32: the specular color
	Specular() [3]float32

	// Shininess retrieves the specular exponent n.
	//
	// Returns:
	//   - float32: the shininess exponent
	Shininess() float32

	// Alpha retrieves the output opacity of the material.
	// A value of 1.0 is fully opaque; lower values only blend during the overlay pass.
	//
	// Returns:
	//   - float32: the alpha value
	Alpha() float32

	// SetAlpha sets the output opacity of the material, clamped to [0, 1].
	//
	// Parameters:
	//   - alpha: the new alpha value
	SetAlpha(alpha float32)

	// String returns a short human readable description of the material.
	String() string
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
// Unset properties default to a white diffuse, a dim grey ambient, a mid grey
// specular, shininess 10 and full opacity.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		diffuse:   [3]float32{1, 1, 1},
		ambient:   [3]float32{0.1, 0.1, 0.1},
		specular:  [3]float32{0.5, 0.5, 0.5},
		shininess: 10,
		alpha:     1,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Diffuse() [3]float32 {
	return m.diffuse
}

func (m *material) Ambient() [3]float32 {
	return m.ambient
}

func (m *material) Specular() [3]float32 {
	return m.specular
}

func (m *material) Shininess() float32 {
	return m.shininess
}

func (m *material) Alpha() float32 {
	return m.alpha
}

func (m *material) SetAlpha(alpha float32) {
	m.alpha = clamp01(alpha)
}

func (m *material) String() string {
	return fmt.Sprintf("material(%s diffuse=%v n=%g alpha=%g)", m.name, m.diffuse, m.shininess, m.alpha)
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	// NaN compares false both ways.
	case v != v:
		return 1
	}
	return v
}
