package shader

import (
	"regexp"
	"strconv"
	"strings"
)

// Uniform describes one uniform declared by a processed shader.
type Uniform struct {
	// Name is the uniform's GLSL identifier.
	Name string
	// Type is the GLSL type (e.g. "mat4", "vec3", "sampler2D").
	Type string
	// ArraySize is the declared element count, 0 for non-array uniforms.
	ArraySize int
}

// Attribute describes one vertex input declared by a processed vertex shader.
type Attribute struct {
	// Name is the input's GLSL identifier.
	Name string
	// Type is the GLSL type.
	Type string
	// Location is the explicit layout location, -1 if none was given.
	Location int
}

var (
	uniformPattern   = regexp.MustCompile(`^\s*uniform\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*(?:\[\s*(\w+)\s*\])?\s*;`)
	attributePattern = regexp.MustCompile(`^\s*(?:layout\s*\(\s*location\s*=\s*(\d+)\s*\)\s*)?in\s+(\w+)\s+(\w+)\s*;`)
	definePattern    = regexp.MustCompile(`^\s*#define\s+(\w+)\s+(\d+)\s*$`)
)

// parseUniforms extracts the uniform declarations from processed GLSL source. Array
// sizes given by an integer #define earlier in the source are resolved.
func parseUniforms(source string) []Uniform {
	defines := make(map[string]int)
	var out []Uniform
	for line := range strings.SplitSeq(source, "\n") {
		line = stripLineComment(line)
		if m := definePattern.FindStringSubmatch(line); m != nil {
			if v, err := strconv.Atoi(m[2]); err == nil {
				defines[m[1]] = v
			}
			continue
		}
		m := uniformPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		u := Uniform{Type: m[1], Name: m[2]}
		if size := m[3]; size != "" {
			if v, err := strconv.Atoi(size); err == nil {
				u.ArraySize = v
			} else {
				u.ArraySize = defines[size]
			}
		}
		out = append(out, u)
	}
	return out
}

// parseAttributes extracts the vertex inputs from processed vertex shader source.
func parseAttributes(source string) []Attribute {
	var out []Attribute
	for line := range strings.SplitSeq(source, "\n") {
		m := attributePattern.FindStringSubmatch(stripLineComment(line))
		if m == nil {
			continue
		}
		a := Attribute{Type: m[2], Name: m[3], Location: -1}
		if m[1] != "" {
			a.Location, _ = strconv.Atoi(m[1])
		}
		out = append(out, a)
	}
	return out
}

func stripLineComment(line string) string {
	if before, _, ok := strings.Cut(line, "//"); ok {
		return before
	}
	return line
}
