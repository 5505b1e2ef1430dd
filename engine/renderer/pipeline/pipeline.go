package pipeline

import "fmt"

// DepthFunc is the comparison used by the depth test.
type DepthFunc int

const (
	// DepthFuncLess passes fragments strictly closer than the stored depth.
	DepthFuncLess DepthFunc = iota
	// DepthFuncLessEqual passes fragments closer than or as close as the stored depth.
	DepthFuncLessEqual
	// DepthFuncAlways passes every fragment.
	DepthFuncAlways
)

func (f DepthFunc) String() string {
	switch f {
	case DepthFuncLess:
		return "LESS"
	case DepthFuncLessEqual:
		return "LEQUAL"
	case DepthFuncAlways:
		return "ALWAYS"
	}
	return fmt.Sprintf("DepthFunc(%d)", int(f))
}

// BlendFactor is a source or destination factor of the blend equation.
type BlendFactor int

const (
	// BlendFactorOne multiplies by 1.
	BlendFactorOne BlendFactor = iota
	// BlendFactorZero multiplies by 0.
	BlendFactorZero
	// BlendFactorSrcAlpha multiplies by the source alpha.
	BlendFactorSrcAlpha
	// BlendFactorOneMinusSrcAlpha multiplies by one minus the source alpha.
	BlendFactorOneMinusSrcAlpha
)

func (f BlendFactor) String() string {
	switch f {
	case BlendFactorOne:
		return "ONE"
	case BlendFactorZero:
		return "ZERO"
	case BlendFactorSrcAlpha:
		return "SRC_ALPHA"
	case BlendFactorOneMinusSrcAlpha:
		return "ONE_MINUS_SRC_ALPHA"
	}
	return fmt.Sprintf("BlendFactor(%d)", int(f))
}

// CullMode selects which triangle faces are discarded.
type CullMode int

const (
	// CullModeNone draws both faces.
	CullModeNone CullMode = iota
	// CullModeBack discards back faces.
	CullModeBack
	// CullModeFront discards front faces.
	CullModeFront
)

func (c CullMode) String() string {
	switch c {
	case CullModeNone:
		return "NONE"
	case CullModeBack:
		return "BACK"
	case CullModeFront:
		return "FRONT"
	}
	return fmt.Sprintf("CullMode(%d)", int(c))
}

// State is the fixed-function device state a pass draws with. It is a plain value:
// backends compare it against what they last applied and only issue the toggles
// that changed.
type State struct {
	DepthTest  bool
	DepthWrite bool
	DepthFunc  DepthFunc
	Blend      bool
	BlendSrc   BlendFactor
	BlendDst   BlendFactor
	Cull       CullMode
}

// NewState creates a State from the given options, starting from Restored().
//
// Parameters:
//   - options: variadic list of StateBuilderOption functions
//
// Returns:
//   - State: the configured state
func NewState(options ...StateBuilderOption) State {
	s := Restored()
	for _, opt := range options {
		opt(&s)
	}
	return s
}

// World is the state of the world pass: depth tested with LEQUAL, depth writes on,
// no blending and no face culling.
//
// Returns:
//   - State: the world pass state
func World() State {
	return State{
		DepthTest:  true,
		DepthWrite: true,
		DepthFunc:  DepthFuncLessEqual,
		BlendSrc:   BlendFactorOne,
		BlendDst:   BlendFactorZero,
		Cull:       CullModeNone,
	}
}

// Overlay is the state of the overlay pass: no depth test, no depth writes and
// standard source-alpha over blending, so HUD objects always land on top.
//
// Returns:
//   - State: the overlay pass state
func Overlay() State {
	return State{
		DepthFunc: DepthFuncLessEqual,
		Blend:     true,
		BlendSrc:  BlendFactorSrcAlpha,
		BlendDst:  BlendFactorOneMinusSrcAlpha,
		Cull:      CullModeNone,
	}
}

// Restored is the state left on the device at the end of a frame: blending off and
// depth test and writes back on.
//
// Returns:
//   - State: the end-of-frame state
func Restored() State {
	return World()
}

func (s State) String() string {
	return fmt.Sprintf("depthTest=%t depthWrite=%t depthFunc=%s blend=%t(%s,%s) cull=%s",
		s.DepthTest, s.DepthWrite, s.DepthFunc, s.Blend, s.BlendSrc, s.BlendDst, s.Cull)
}
