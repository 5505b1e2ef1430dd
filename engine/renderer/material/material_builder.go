package material

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithDiffuse is an option builder that sets the diffuse RGB reflectance of the material.
//
// Parameters:
//   - color: the diffuse color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse option to a material
func WithDiffuse(color [3]float32) MaterialBuilderOption {
	return func(m *material) {
		m.diffuse = color
	}
}

// WithAmbient is an option builder that sets the ambient RGB reflectance of the material.
//
// Parameters:
//   - color: the ambient color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the ambient option to a material
func WithAmbient(color [3]float32) MaterialBuilderOption {
	return func(m *material) {
		m.ambient = color
	}
}

// WithSpecular is an option builder that sets the specular RGB reflectance of the material.
//
// Parameters:
//   - color: the specular color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the specular option to a material
func WithSpecular(color [3]float32) MaterialBuilderOption {
	return func(m *material) {
		m.specular = color
	}
}

// WithShininess is an option builder that sets the specular exponent of the material.
//
// Parameters:
//   - n: the shininess exponent
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shininess option to a material
func WithShininess(n float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = n
	}
}

// WithAlpha is an option builder that sets the opacity of the material, clamped to [0, 1].
//
// Parameters:
//   - alpha: the opacity
//
// Returns:
//   - MaterialBuilderOption: a function that applies the alpha option to a material
func WithAlpha(alpha float32) MaterialBuilderOption {
	return func(m *material) {
		m.alpha = clamp01(alpha)
	}
}
