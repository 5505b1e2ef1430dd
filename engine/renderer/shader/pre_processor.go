// pre_processor.go implements the Oxy GLSL shader pre-processor. It scans shader
// source code for @oxy: annotations, replaces them with generated GLSL declarations
// and collects the list of annotations it expanded.
package shader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/engine/light"
)

// blockRegistry maps uniform block keys to the GLSL they expand to. The lights block
// is generated so MAX_LIGHTS always matches the aggregator's capacity.
var blockRegistry = map[AnnotationArg]string{
	AnnotationArgMatrices: strings.Join([]string{
		"uniform mat4 " + UniformProjection + ";",
		"uniform mat4 " + UniformView + ";",
		"uniform mat4 " + UniformModel + ";",
		"uniform mat4 " + UniformNormal + ";",
	}, "\n"),
	AnnotationArgCamera: "uniform vec3 " + UniformCameraPosition + ";",
	AnnotationArgMaterial: strings.Join([]string{
		"uniform vec3 " + UniformDiffuse + ";",
		"uniform vec3 " + UniformAmbient + ";",
		"uniform vec3 " + UniformSpecular + ";",
		"uniform float " + UniformShininess + ";",
		"uniform float " + UniformAlpha + ";",
	}, "\n"),
	AnnotationArgLights: strings.Join([]string{
		fmt.Sprintf("#define MAX_LIGHTS %d", light.MaxLights),
		"uniform int " + UniformLightCount + ";",
		"uniform vec3 " + UniformLightPositions + "[MAX_LIGHTS];",
		"uniform vec3 " + UniformLightColours + "[MAX_LIGHTS];",
		"uniform float " + UniformLightStrengths + "[MAX_LIGHTS];",
	}, "\n"),
	AnnotationArgTextures: strings.Join([]string{
		"uniform sampler2D " + UniformDiffuseSampler + ";",
		"uniform int " + UniformDiffuseSamplerExists + ";",
		"uniform sampler2D " + UniformNormalSampler + ";",
		"uniform int " + UniformNormalSamplerExists + ";",
	}, "\n"),
}

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// declarations accumulates the annotations expanded during a Process call.
	// Reset at the start of each Process invocation.
	declarations []Annotation
}

// PreProcessor processes raw GLSL shader source code containing @oxy: annotations,
// replacing them with generated declarations.
type PreProcessor interface {
	// Process takes raw GLSL shader source code and replaces every @oxy: annotation
	// with its GLSL output. Each uniform block may be included at most once.
	//
	// The declarations list is reset at the start of each call and can be retrieved
	// via Declarations() after Process returns.
	//
	// Parameters:
	//   - source: the raw GLSL source code containing annotations to be processed
	//
	// Returns:
	//   - string: the processed GLSL source code with annotations replaced
	//   - error: an error if any annotation is malformed or repeated
	Process(source string) (string, error)

	// Declarations returns the annotations expanded during the most recent call to
	// Process, in source order. Returns nil if Process has not been called.
	//
	// Returns:
	//   - []Annotation: the declarations collected during the last Process call
	Declarations() []Annotation
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a new PreProcessor.
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor() PreProcessor {
	return &preProcessor{}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = nil
	included := make(map[AnnotationArg]bool)
	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case AnnotationTypeInclude:
			block := a.Args[0]
			if included[block] {
				return "", fmt.Errorf("line %d: uniform block %q included twice", a.Line, block)
			}
			included[block] = true
			out = append(out, blockRegistry[block])
		case AnnotationTypeAttribute:
			out = append(out, fmt.Sprintf("layout(location = %d) in %s %s;", *a.Location, a.Args[1], a.Args[0]))
		default:
			return "", fmt.Errorf("line %d: unknown annotation type %q", a.Line, a.Type)
		}
		p.declarations = append(p.declarations, *a)
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}
