package material

import (
	"github.com/go-gl/mathgl/mgl32"

	"scene-engine/internal/logger"
)

// Preset is a named bundle of lighting-response coefficients applied to a
// surface during shading. Immutable after registration.
type Preset struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// Registry stores material presets by tag. Registration order is preserved;
// a duplicate tag keeps the first entry (first match wins) and logs a warning
// instead of silently shadowing.
type Registry struct {
	log     *logger.Logger
	presets []Preset
	byTag   map[string]int
}

// NewRegistry returns an empty material registry.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		log:   log,
		byTag: make(map[string]int),
	}
}

// Register appends a preset. A duplicate tag is dropped with a warning so the
// first registration stays authoritative.
func (r *Registry) Register(p Preset) {
	if _, ok := r.byTag[p.Tag]; ok {
		r.log.Warnf("material %q already registered, keeping first entry", p.Tag)
		return
	}
	r.byTag[p.Tag] = len(r.presets)
	r.presets = append(r.presets, p)
}

// Find returns the preset registered under tag. The second return is false on
// a true miss; a miss is logged so a draw falling back to the previous
// material state is visible.
func (r *Registry) Find(tag string) (Preset, bool) {
	if i, ok := r.byTag[tag]; ok {
		return r.presets[i], true
	}
	r.log.Warnf("material lookup miss for tag %q", tag)
	return Preset{}, false
}

// Len returns the number of registered presets.
func (r *Registry) Len() int {
	return len(r.presets)
}

// Defaults returns the scene's stock material set.
func Defaults() []Preset {
	return []Preset{
		{
			Tag:             "gold",
			AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.1},
			AmbientStrength: 0.4,
			DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.2},
			SpecularColor:   mgl32.Vec3{0.6, 0.5, 0.4},
			Shininess:       22.0,
		},
		{
			Tag:             "appleskin",
			AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.1},
			AmbientStrength: 0.2,
			DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.2},
			SpecularColor:   mgl32.Vec3{0.3, 0.3, 0.3},
			Shininess:       5.0,
		},
		{
			Tag:             "cement",
			AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
			AmbientStrength: 0.2,
			DiffuseColor:    mgl32.Vec3{0.5, 0.5, 0.5},
			SpecularColor:   mgl32.Vec3{0.4, 0.4, 0.4},
			Shininess:       0.5,
		},
		{
			Tag:             "wood",
			AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
			AmbientStrength: 0.2,
			DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
			SpecularColor:   mgl32.Vec3{0.4, 0.4, 0.4},
			Shininess:       0.3,
		},
		{
			Tag:             "polishWood",
			AmbientColor:    mgl32.Vec3{0.4, 0.3, 0.1},
			AmbientStrength: 0.2,
			DiffuseColor:    mgl32.Vec3{0.3, 0.2, 0.1},
			SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:       11.0,
		},
		{
			Tag:             "tile",
			AmbientColor:    mgl32.Vec3{0.2, 0.3, 0.4},
			AmbientStrength: 0.3,
			DiffuseColor:    mgl32.Vec3{0.3, 0.2, 0.1},
			SpecularColor:   mgl32.Vec3{0.4, 0.5, 0.6},
			Shininess:       25.0,
		},
		{
			Tag:             "glass",
			AmbientColor:    mgl32.Vec3{0.4, 0.4, 0.4},
			AmbientStrength: 0.3,
			DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
			SpecularColor:   mgl32.Vec3{0.6, 0.6, 0.6},
			Shininess:       85.0,
		},
		{
			Tag:             "clay",
			AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.3},
			AmbientStrength: 0.3,
			DiffuseColor:    mgl32.Vec3{0.4, 0.4, 0.5},
			SpecularColor:   mgl32.Vec3{0.2, 0.2, 0.4},
			Shininess:       0.5,
		},
		{
			Tag:             "polishClay",
			AmbientColor:    mgl32.Vec3{0.4, 0.3, 0.1},
			AmbientStrength: 0.2,
			DiffuseColor:    mgl32.Vec3{0.3, 0.2, 0.1},
			SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
			Shininess:       30.0,
		},
	}
}
