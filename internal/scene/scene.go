package scene

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"scene-engine/internal/logger"
	"scene-engine/internal/material"
	"scene-engine/internal/meshes"
	"scene-engine/internal/render"
	"scene-engine/internal/shader"
	"scene-engine/internal/texture"
	"scene-engine/internal/transform"
)

// TextureRef names an image file and the tag it is registered under.
type TextureRef struct {
	Path string
	Tag  string
}

// MeshStore is the mesh collaborator: idempotent per-kind resource creation
// plus draws that consume whatever shader state is currently pushed.
// meshes.Manager satisfies it; tests substitute a recording fake.
type MeshStore interface {
	Load(k meshes.Kind) error
	Draw(k meshes.Kind)
}

// Camera is the static viewpoint for the scene. View, projection, and the
// viewer position are pushed once per frame before the placements are drawn.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovYDeg  float32
	Aspect   float32
}

// DefaultCamera looks at the tabletop from front-above.
func DefaultCamera(aspect float32) Camera {
	return Camera{
		Position: mgl32.Vec3{0, 5.5, 14},
		Target:   mgl32.Vec3{0, 3, 0},
		Up:       mgl32.Vec3{0, 1, 0},
		FovYDeg:  80,
		Aspect:   aspect,
	}
}

// Apply pushes the view and projection matrices and the viewer position.
func (c Camera) Apply(sink shader.Sink) {
	sink.SetMat4("view", mgl32.LookAtV(c.Position, c.Target, c.Up))
	sink.SetMat4("projection", mgl32.Perspective(mgl32.DegToRad(c.FovYDeg), c.Aspect, 0.1, 100))
	sink.SetVec3("viewPosition", c.Position)
}

// Scene owns the resource registries and the ordered placement list, and
// drives the per-draw pipeline: transform, then shader state, then mesh draw.
// Prepare populates the registries exactly once; Render may run every frame.
type Scene struct {
	log       *logger.Logger
	sink      shader.Sink
	textures  *texture.Registry
	materials *material.Registry
	composer  *transform.Composer
	state     *render.StateSetter
	meshes    MeshStore

	Camera       Camera
	placements   []Placement
	lights       [render.LightCount]render.LightSource
	textureFiles []TextureRef
	prepared     bool
	drawCount    int
}

// New wires a scene over the given collaborators, with the default placement
// list, light rig, and texture set.
func New(sink shader.Sink, textures *texture.Registry, materials *material.Registry, store MeshStore, log *logger.Logger) *Scene {
	return &Scene{
		log:          log,
		sink:         sink,
		textures:     textures,
		materials:    materials,
		composer:     transform.NewComposer(sink),
		state:        render.NewStateSetter(sink, textures, materials),
		meshes:       store,
		Camera:       DefaultCamera(1),
		placements:   DefaultPlacements(),
		lights:       render.DefaultLights(),
		textureFiles: DefaultTextures("assets"),
	}
}

// DefaultTextures lists the stock texture files under assetDir/textures.
func DefaultTextures(assetDir string) []TextureRef {
	dir := filepath.Join(assetDir, "textures")
	return []TextureRef{
		{Path: filepath.Join(dir, "green_apple.jpg"), Tag: "apple"},
		{Path: filepath.Join(dir, "apple_stem.jpg"), Tag: "stem"},
		{Path: filepath.Join(dir, "rusticwood.jpg"), Tag: "table"},
		{Path: filepath.Join(dir, "ceramic.jpg"), Tag: "ceramic"},
		{Path: filepath.Join(dir, "cardboard.jpg"), Tag: "cardboard"},
	}
}

// SetPlacements replaces the placement list (e.g. with one loaded from YAML).
// Call before Prepare so the mesh set matches.
func (s *Scene) SetPlacements(placements []Placement) {
	s.placements = placements
}

// SetTextures replaces the texture file list. Call before Prepare.
func (s *Scene) SetTextures(refs []TextureRef) {
	s.textureFiles = refs
}

// Placements returns the current placement list.
func (s *Scene) Placements() []Placement {
	return s.placements
}

// Prepare performs one-time scene setup: load and bind textures, register
// materials, configure the four light sources, and upload every mesh kind the
// placement list uses. A second call is a logged no-op, since re-running would
// duplicate GPU resources. A texture that fails to load degrades the draws
// that reference it but does not abort preparation.
func (s *Scene) Prepare() error {
	if s.prepared {
		s.log.Warnf("scene already prepared, skipping")
		return nil
	}

	for _, ref := range s.textureFiles {
		if err := s.textures.Load(ref.Path, ref.Tag); err != nil {
			s.log.Warnf("continuing without texture %q: %v", ref.Tag, err)
		}
	}
	s.textures.BindAll()

	for _, p := range material.Defaults() {
		s.materials.Register(p)
	}

	render.ApplyLights(s.sink, s.lights)

	for _, k := range usedKinds(s.placements) {
		if err := s.meshes.Load(k); err != nil {
			return err
		}
	}

	s.prepared = true
	s.log.Infof("scene prepared: %d textures, %d materials, %d placements",
		s.textures.Len(), s.materials.Len(), len(s.placements))
	return nil
}

// Render draws every placement in order. Each draw is preceded by exactly one
// transform composition and one state configuration; nothing here reads back
// results, so a missing texture or material degrades output without halting
// the pass.
func (s *Scene) Render() {
	s.Camera.Apply(s.sink)

	for _, p := range s.placements {
		s.composer.Compose(
			mgl32.Vec3(p.Scale),
			mgl32.Vec3(p.RotationDeg),
			mgl32.Vec3(p.Position),
		)

		if p.Color != nil {
			c := *p.Color
			s.state.SetColor(c[0], c[1], c[2], c[3])
		}
		if p.Material != "" {
			s.state.SetMaterial(p.Material)
		}
		if p.Texture != "" {
			s.state.SetTexture(p.Texture)
		}
		if p.UVScale != nil {
			s.state.SetUVScale(p.UVScale[0], p.UVScale[1])
		} else {
			s.state.SetUVScale(1, 1)
		}

		s.meshes.Draw(p.Mesh)
		s.drawCount++
	}
}

// DrawCount returns the total number of draws issued since creation.
func (s *Scene) DrawCount() int {
	return s.drawCount
}

// Teardown releases the scene's GPU textures.
func (s *Scene) Teardown() {
	s.textures.Teardown()
}

// usedKinds returns the distinct mesh kinds in placement order.
func usedKinds(placements []Placement) []meshes.Kind {
	seen := make(map[meshes.Kind]bool)
	var kinds []meshes.Kind
	for _, p := range placements {
		if !seen[p.Mesh] {
			seen[p.Mesh] = true
			kinds = append(kinds, p.Mesh)
		}
	}
	return kinds
}
