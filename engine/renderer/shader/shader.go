package shader

import (
	"fmt"
	"os"
)

// ShaderType identifies the pipeline stage a shader runs in.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render programs.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	}
	return fmt.Sprintf("ShaderType(%d)", int(t))
}

// shader is the implementation of the Shader interface.
// It holds the processed source and the reflection data extracted from it.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
	uniforms   []Uniform
	attributes []Attribute

	pp PreProcessor
}

// Shader defines the interface for a loaded and pre-processed GLSL shader stage. It exposes
// the processed source handed to the graphics backend for compilation, plus the uniforms
// and vertex inputs it declares.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the processed GLSL source code.
	//
	// Returns:
	//   - string: the GLSL source code of the shader
	Source() string

	// ShaderType returns the stage of this shader.
	//
	// Returns:
	//   - ShaderType: the shader stage
	ShaderType() ShaderType

	// Uniforms returns the uniforms declared by the shader, in source order.
	//
	// Returns:
	//   - []Uniform: the declared uniforms
	Uniforms() []Uniform

	// HasUniform reports whether the shader declares a uniform with the given name.
	//
	// Parameters:
	//   - name: the uniform name
	//
	// Returns:
	//   - bool: true if declared
	HasUniform(name string) bool

	// Attributes returns the vertex inputs of a vertex shader, nil for other stages.
	//
	// Returns:
	//   - []Attribute: the declared vertex inputs
	Attributes() []Attribute

	// Declarations returns the @oxy: annotations expanded while processing the source.
	//
	// Returns:
	//   - []Annotation: the expanded annotations
	Declarations() []Annotation
}

var _ Shader = &shader{}

// NewShader creates a new Shader from GLSL source, expanding @oxy: annotations.
//
// Parameters:
//   - key: the unique identifier for the shader
//   - shaderType: the shader stage
//   - source: the raw GLSL source
//
// Returns:
//   - Shader: the processed shader
//   - error: an error if pre-processing fails
func NewShader(key string, shaderType ShaderType, source string) (Shader, error) {
	s := &shader{
		key:        key,
		shaderType: shaderType,
		pp:         NewPreProcessor(),
	}
	processed, err := s.pp.Process(source)
	if err != nil {
		return nil, fmt.Errorf("shader %s: failed to pre-process source: %w", key, err)
	}
	s.source = processed
	s.uniforms = parseUniforms(processed)
	if shaderType == ShaderTypeVertex {
		s.attributes = parseAttributes(processed)
	}
	return s, nil
}

// NewShaderFromFile reads GLSL source from path and creates a Shader from it.
//
// Parameters:
//   - key: the unique identifier for the shader
//   - shaderType: the shader stage
//   - path: the source file path
//
// Returns:
//   - Shader: the processed shader
//   - error: an error if the file cannot be read or pre-processing fails
func NewShaderFromFile(key string, shaderType ShaderType, path string) (Shader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shader %s: failed to read source file %q: %w", key, path, err)
	}
	return NewShader(key, shaderType, string(data))
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) Uniforms() []Uniform {
	return s.uniforms
}

func (s *shader) HasUniform(name string) bool {
	for _, u := range s.uniforms {
		if u.Name == name {
			return true
		}
	}
	return false
}

func (s *shader) Attributes() []Attribute {
	return s.attributes
}

func (s *shader) Declarations() []Annotation {
	return s.pp.Declarations()
}
