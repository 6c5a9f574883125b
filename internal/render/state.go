package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"scene-engine/internal/material"
	"scene-engine/internal/shader"
	"scene-engine/internal/texture"
)

// Uniform keys for per-draw object state.
const (
	ColorUniform      = "objectColor"
	TextureUniform    = "objectTexture"
	UseTextureUniform = "bUseTexture"
	UVScaleUniform    = "UVscale"
)

// StateSetter configures the shader for the next draw: flat color or texture
// slot, UV scale, and material coefficients. It owns no GL state itself; all
// side effects go through the uniform sink, and none of its methods draw.
type StateSetter struct {
	sink      shader.Sink
	textures  *texture.Registry
	materials *material.Registry
}

// NewStateSetter returns a setter resolving tags against the given registries.
func NewStateSetter(sink shader.Sink, textures *texture.Registry, materials *material.Registry) *StateSetter {
	return &StateSetter{sink: sink, textures: textures, materials: materials}
}

// SetColor disables texture sampling for the next draw and pushes a flat color.
func (s *StateSetter) SetColor(r, g, b, a float32) {
	s.sink.SetBool(UseTextureUniform, false)
	s.sink.SetVec4(ColorUniform, mgl32.Vec4{r, g, b, a})
}

// SetTexture enables texture sampling for the next draw and pushes the tag's
// slot as the active sampler. An unresolved tag pushes the -1 sentinel, which
// the shader treats as no texture bound; the registry logs the miss.
func (s *StateSetter) SetTexture(tag string) {
	s.sink.SetBool(UseTextureUniform, true)
	s.sink.SetInt(TextureUniform, int32(s.textures.FindSlot(tag)))
}

// SetUVScale pushes the texture-coordinate scale, independent of color/texture mode.
func (s *StateSetter) SetUVScale(u, v float32) {
	s.sink.SetVec2(UVScaleUniform, mgl32.Vec2{u, v})
}

// SetMaterial looks up the tag and pushes its five fields as separate uniforms.
// On a miss the sink keeps whatever the previous draw set, so callers must set
// a material for every object they care about; the registry logs the miss.
func (s *StateSetter) SetMaterial(tag string) {
	p, ok := s.materials.Find(tag)
	if !ok {
		return
	}
	s.sink.SetVec3("material.ambientColor", p.AmbientColor)
	s.sink.SetFloat("material.ambientStrength", p.AmbientStrength)
	s.sink.SetVec3("material.diffuseColor", p.DiffuseColor)
	s.sink.SetVec3("material.specularColor", p.SpecularColor)
	s.sink.SetFloat("material.shininess", p.Shininess)
}
