package shader

// Uniform names shared by the default shaders and the render pass scheduler.
// Custom shaders must use the same names for the data they want to receive;
// uniforms a program does not declare are skipped by the backend.
const (
	UniformProjection     = "uProjectionMatrix"
	UniformView           = "uViewMatrix"
	UniformModel          = "uModelMatrix"
	UniformNormal         = "uNormalMatrix"
	UniformCameraPosition = "uCameraPosition"

	UniformDiffuse   = "diffuseVal"
	UniformAmbient   = "ambientVal"
	UniformSpecular  = "specularVal"
	UniformShininess = "nVal"
	UniformAlpha     = "alpha"

	UniformLightCount     = "numLights"
	UniformLightPositions = "uLightPositions"
	UniformLightColours   = "uLightColours"
	UniformLightStrengths = "uLightStrengths"

	UniformDiffuseSampler       = "uTexture"
	UniformDiffuseSamplerExists = "samplerExists"
	UniformNormalSampler        = "uNormalTexture"
	UniformNormalSamplerExists  = "normalSamplerExists"
)

// Vertex attribute locations expected by the default vertex shader.
const (
	AttributePosition uint32 = 0
	AttributeNormal   uint32 = 1
	AttributeUV       uint32 = 2
)
