package shader

import (
	_ "embed"
	"fmt"
)

//go:embed assets/phong.vert
var defaultVertexSource string

//go:embed assets/phong.frag
var defaultFragmentSource string

// DefaultVertex returns the stock Blinn-Phong vertex shader. It transforms positions
// by projection * view * model and forwards world-space position, normal and UVs.
//
// Returns:
//   - Shader: the default vertex shader
func DefaultVertex() Shader {
	return mustShader("default_vertex", ShaderTypeVertex, defaultVertexSource)
}

// DefaultFragment returns the stock Blinn-Phong fragment shader. It accumulates
// ambient, diffuse and specular terms over the packed point lights and writes the
// material alpha, sampling the diffuse texture when one is bound.
//
// Returns:
//   - Shader: the default fragment shader
func DefaultFragment() Shader {
	return mustShader("default_fragment", ShaderTypeFragment, defaultFragmentSource)
}

func mustShader(key string, shaderType ShaderType, source string) Shader {
	s, err := NewShader(key, shaderType, source)
	if err != nil {
		panic(fmt.Sprintf("shader: embedded %s shader is invalid: %v", key, err))
	}
	return s
}
