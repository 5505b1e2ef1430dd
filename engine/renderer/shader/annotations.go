// annotations.go defines the annotation types, argument constants, and parser for the
// Oxy GLSL shader pre-processor. Annotations are single-line GLSL comments prefixed
// with @oxy: that inject the engine's shared uniform blocks and declare vertex inputs
// at fixed locations, so custom shaders stay in step with the render pass scheduler.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix is the marker that identifies an Oxy annotation within a GLSL comment line.
// Every annotation must appear on a line beginning with "//" followed by this prefix.
const annotationPrefix = "@oxy:"

// AnnotationType identifies the kind of annotation parsed from a GLSL comment line.
type AnnotationType string

const (
	// AnnotationTypeInclude injects the GLSL declarations of a registered uniform block
	// at the annotation site.
	//
	// Syntax: //@oxy:include <block>
	//
	// Example: //@oxy:include lights
	AnnotationTypeInclude AnnotationType = "include"

	// AnnotationTypeAttribute declares a vertex input at an explicit location.
	//
	// Syntax: //@oxy:attribute <location> <name> <glsl_type>
	//
	// Example: //@oxy:attribute 0 aPosition vec3
	AnnotationTypeAttribute AnnotationType = "attribute"
)

// Annotation represents a single parsed @oxy: annotation from a GLSL shader source line.
type Annotation struct {
	// Type identifies which annotation was parsed (include or attribute).
	Type AnnotationType

	// Args holds the annotation's arguments. The contents depend on Type:
	//   - include:   [0] = block key (e.g. "lights")
	//   - attribute: [0] = variable name, [1] = GLSL type
	Args []AnnotationArg

	// Line is the 1-based line number in the original source where this annotation
	// was found. Used for error reporting.
	Line int

	// Location is the attribute location for attribute annotations. Nil for include annotations.
	Location *int
}

// AnnotationArg is a typed string used as an argument in annotations.
type AnnotationArg string

// Uniform block arguments accepted by @oxy:include.
const (
	// AnnotationArgMatrices identifies the projection, view, model and normal matrices.
	AnnotationArgMatrices AnnotationArg = "matrices"

	// AnnotationArgCamera identifies the camera position uniform.
	AnnotationArgCamera AnnotationArg = "camera"

	// AnnotationArgMaterial identifies the Blinn-Phong material uniforms.
	AnnotationArgMaterial AnnotationArg = "material"

	// AnnotationArgLights identifies the MAX_LIGHTS define and the packed point light arrays.
	AnnotationArgLights AnnotationArg = "lights"

	// AnnotationArgTextures identifies the diffuse and normal samplers and their presence flags.
	AnnotationArgTextures AnnotationArg = "textures"
)

var validBlocks = []AnnotationArg{
	AnnotationArgMatrices,
	AnnotationArgCamera,
	AnnotationArgMaterial,
	AnnotationArgLights,
	AnnotationArgTextures,
}

var validAttributeTypes = []string{"float", "vec2", "vec3", "vec4"}

// parseAnnotation parses a single source line. It returns nil, nil for lines that
// carry no annotation.
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, nil
	}
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @oxy annotation", lineNum)
	}

	switch args[0] {
	case string(AnnotationTypeInclude):
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @oxy include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validBlocks, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown uniform block %q in @oxy include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: AnnotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil
	case string(AnnotationTypeAttribute):
		if len(args) != 4 {
			return nil, fmt.Errorf("line %d: @oxy attribute annotation requires exactly three arguments (location, name, type)", lineNum)
		}
		location, err := strconv.Atoi(args[1])
		if err != nil || location < 0 {
			return nil, fmt.Errorf("line %d: invalid location %q in @oxy attribute annotation", lineNum, args[1])
		}
		if !slices.Contains(validAttributeTypes, args[3]) {
			return nil, fmt.Errorf("line %d: unsupported attribute type %q in @oxy attribute annotation", lineNum, args[3])
		}
		return &Annotation{
			Type:     AnnotationTypeAttribute,
			Args:     []AnnotationArg{AnnotationArg(args[2]), AnnotationArg(args[3])},
			Line:     lineNum,
			Location: &location,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @oxy annotation type %q", lineNum, args[0])
	}
}
