package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-engine/internal/logger"
	"scene-engine/internal/material"
	"scene-engine/internal/texture"
)

// recordingSink captures pushed uniforms by key.
type recordingSink struct {
	bools  map[string]bool
	ints   map[string]int32
	floats map[string]float32
	vec2s  map[string]mgl32.Vec2
	vec3s  map[string]mgl32.Vec3
	vec4s  map[string]mgl32.Vec4
	mat4s  map[string]mgl32.Mat4
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		bools:  make(map[string]bool),
		ints:   make(map[string]int32),
		floats: make(map[string]float32),
		vec2s:  make(map[string]mgl32.Vec2),
		vec3s:  make(map[string]mgl32.Vec3),
		vec4s:  make(map[string]mgl32.Vec4),
		mat4s:  make(map[string]mgl32.Mat4),
	}
}

func (s *recordingSink) SetBool(name string, v bool)        { s.bools[name] = v }
func (s *recordingSink) SetInt(name string, v int32)        { s.ints[name] = v }
func (s *recordingSink) SetFloat(name string, v float32)    { s.floats[name] = v }
func (s *recordingSink) SetVec2(name string, v mgl32.Vec2)  { s.vec2s[name] = v }
func (s *recordingSink) SetVec3(name string, v mgl32.Vec3)  { s.vec3s[name] = v }
func (s *recordingSink) SetVec4(name string, v mgl32.Vec4)  { s.vec4s[name] = v }
func (s *recordingSink) SetMat4(name string, v mgl32.Mat4)  { s.mat4s[name] = v }

// nullGPU satisfies texture.GPU without recording anything.
type nullGPU struct{ next uint32 }

func (g *nullGPU) CreateTexture(int, int, int, []byte) (uint32, error) {
	g.next++
	return g.next, nil
}
func (g *nullGPU) BindUnit(int, uint32) {}
func (g *nullGPU) Delete(uint32)        {}

func loadedTextures(t *testing.T, tags ...string) *texture.Registry {
	t.Helper()
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	path := filepath.Join(dir, "tex.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	r := texture.NewRegistry(&nullGPU{}, logger.New())
	for _, tag := range tags {
		require.NoError(t, r.Load(path, tag))
	}
	return r
}

func newSetter(t *testing.T, sink *recordingSink, textureTags ...string) *StateSetter {
	t.Helper()
	materials := material.NewRegistry(logger.New())
	for _, p := range material.Defaults() {
		materials.Register(p)
	}
	return NewStateSetter(sink, loadedTextures(t, textureTags...), materials)
}

func TestSetColorDisablesTexturing(t *testing.T) {
	sink := newRecordingSink()
	s := newSetter(t, sink)

	s.SetColor(0.9, 0.8, 0.7, 1)

	assert.False(t, sink.bools[UseTextureUniform])
	assert.Equal(t, mgl32.Vec4{0.9, 0.8, 0.7, 1}, sink.vec4s[ColorUniform])
}

func TestSetTexturePushesSlotAndEnablesTexturing(t *testing.T) {
	sink := newRecordingSink()
	s := newSetter(t, sink, "table", "apple")

	s.SetTexture("apple")

	assert.True(t, sink.bools[UseTextureUniform])
	assert.Equal(t, int32(1), sink.ints[TextureUniform])
}

func TestSetTextureAfterSetColorWins(t *testing.T) {
	// Texture mode takes precedence over color mode for the draw that follows.
	sink := newRecordingSink()
	s := newSetter(t, sink, "table")

	s.SetColor(1, 0, 0, 1)
	s.SetTexture("table")

	assert.True(t, sink.bools[UseTextureUniform])
	assert.Equal(t, int32(0), sink.ints[TextureUniform])
}

func TestSetTextureMissPushesSentinel(t *testing.T) {
	sink := newRecordingSink()
	s := newSetter(t, sink, "table")

	s.SetTexture("no-such-tag")

	assert.True(t, sink.bools[UseTextureUniform])
	assert.Equal(t, int32(-1), sink.ints[TextureUniform])
}

func TestSetUVScale(t *testing.T) {
	sink := newRecordingSink()
	s := newSetter(t, sink)

	s.SetUVScale(4, 2)
	assert.Equal(t, mgl32.Vec2{4, 2}, sink.vec2s[UVScaleUniform])
}

func TestSetMaterialPushesAllFiveFields(t *testing.T) {
	sink := newRecordingSink()
	s := newSetter(t, sink)

	s.SetMaterial("glass")

	assert.Equal(t, mgl32.Vec3{0.4, 0.4, 0.4}, sink.vec3s["material.ambientColor"])
	assert.Equal(t, float32(0.3), sink.floats["material.ambientStrength"])
	assert.Equal(t, mgl32.Vec3{0.3, 0.3, 0.3}, sink.vec3s["material.diffuseColor"])
	assert.Equal(t, mgl32.Vec3{0.6, 0.6, 0.6}, sink.vec3s["material.specularColor"])
	assert.Equal(t, float32(85), sink.floats["material.shininess"])
}

func TestSetMaterialMissLeavesPreviousState(t *testing.T) {
	sink := newRecordingSink()
	s := newSetter(t, sink)

	s.SetMaterial("wood")
	prev := sink.floats["material.shininess"]

	s.SetMaterial("unobtainium")
	assert.Equal(t, prev, sink.floats["material.shininess"])
}

func TestApplyLightsPushesAllFourSources(t *testing.T) {
	sink := newRecordingSink()
	ApplyLights(sink, DefaultLights())

	assert.True(t, sink.bools[UseLightingUniform])
	// 4 lights x 4 vec3 fields and 4 lights x 2 float fields.
	assert.Len(t, sink.vec3s, 16)
	assert.Len(t, sink.floats, 8)
	assert.Equal(t, mgl32.Vec3{3, 14, 0}, sink.vec3s["lightSources[0].position"])
	assert.Equal(t, float32(12), sink.floats["lightSources[3].focalStrength"])
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, sink.vec3s["lightSources[1].specularColor"])
}
