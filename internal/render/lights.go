package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"scene-engine/internal/shader"
)

// LightCount is the fixed number of scene light sources. The shader declares
// exactly this many; the slots are configured once and never mutated afterwards.
const LightCount = 4

// UseLightingUniform gates the Phong term in the shader.
const UseLightingUniform = "bUseLighting"

// LightSource is one positional light's contribution coefficients.
type LightSource struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// ApplyLights pushes all four light sources under lightSources[i].* keys and
// enables lighting. Call once during scene preparation.
func ApplyLights(sink shader.Sink, lights [LightCount]LightSource) {
	sink.SetBool(UseLightingUniform, true)
	for i, l := range lights {
		prefix := fmt.Sprintf("lightSources[%d].", i)
		sink.SetVec3(prefix+"position", l.Position)
		sink.SetVec3(prefix+"ambientColor", l.AmbientColor)
		sink.SetVec3(prefix+"diffuseColor", l.DiffuseColor)
		sink.SetVec3(prefix+"specularColor", l.SpecularColor)
		sink.SetFloat(prefix+"focalStrength", l.FocalStrength)
		sink.SetFloat(prefix+"specularIntensity", l.SpecularIntensity)
	}
}

// DefaultLights returns the scene's stock four-light rig: two dim overhead
// fills and two brighter front lights with stronger specular response.
func DefaultLights() [LightCount]LightSource {
	return [LightCount]LightSource{
		{
			Position:          mgl32.Vec3{3, 14, 0},
			AmbientColor:      mgl32.Vec3{0.01, 0.01, 0.01},
			DiffuseColor:      mgl32.Vec3{0.4, 0.4, 0.4},
			SpecularColor:     mgl32.Vec3{0.1, 0.1, 0.1},
			FocalStrength:     32,
			SpecularIntensity: 0.05,
		},
		{
			Position:          mgl32.Vec3{-3, 14, 0},
			AmbientColor:      mgl32.Vec3{0.01, 0.01, 0.01},
			DiffuseColor:      mgl32.Vec3{0.4, 0.4, 0.4},
			SpecularColor:     mgl32.Vec3{0, 0, 0},
			FocalStrength:     32,
			SpecularIntensity: 0.05,
		},
		{
			Position:          mgl32.Vec3{0.6, 5, 6},
			AmbientColor:      mgl32.Vec3{0.01, 0.01, 0.01},
			DiffuseColor:      mgl32.Vec3{0.3, 0.3, 0.3},
			SpecularColor:     mgl32.Vec3{0.3, 0.3, 0.3},
			FocalStrength:     12,
			SpecularIntensity: 0.5,
		},
		{
			Position:          mgl32.Vec3{-0.6, 5, 6},
			AmbientColor:      mgl32.Vec3{0.01, 0.01, 0.01},
			DiffuseColor:      mgl32.Vec3{0.3, 0.3, 0.3},
			SpecularColor:     mgl32.Vec3{0.3, 0.3, 0.3},
			FocalStrength:     12,
			SpecularIntensity: 0.5,
		},
	}
}
