package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"scene-engine/internal/meshes"
)

// Placement is one object in the scene: which primitive to draw and the
// transform, color, material, and texture state to configure before drawing
// it. The scene is a flat ordered list of these; order only affects depth-test
// outcomes, not correctness.
type Placement struct {
	Name        string       `yaml:"name"`
	Mesh        meshes.Kind  `yaml:"mesh"`
	Scale       [3]float32   `yaml:"scale"`
	RotationDeg [3]float32   `yaml:"rotation,omitempty"`
	Position    [3]float32   `yaml:"position"`
	Color       *[4]float32  `yaml:"color,omitempty"`
	Material    string       `yaml:"material,omitempty"`
	Texture     string       `yaml:"texture,omitempty"`
	UVScale     *[2]float32  `yaml:"uv_scale,omitempty"`
}

// LoadPlacements reads a placement list from a YAML file and validates the
// mesh kinds.
func LoadPlacements(path string) ([]Placement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene file: %w", err)
	}
	var placements []Placement
	if err := yaml.Unmarshal(data, &placements); err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	for i, p := range placements {
		if !p.Mesh.Valid() {
			return nil, fmt.Errorf("scene file %s: placement %d (%s): unknown mesh kind %q", path, i, p.Name, p.Mesh)
		}
	}
	return placements, nil
}

// SavePlacements writes a placement list as YAML.
func SavePlacements(path string, placements []Placement) error {
	data, err := yaml.Marshal(placements)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var white = [4]float32{1, 1, 1, 1}

// DefaultPlacements returns the built-in still life: a tabletop with an apple,
// a lidded ceramic container, two cardboard boxes, and a teacup.
func DefaultPlacements() []Placement {
	beige := [4]float32{0.9, 0.8, 0.7, 1}
	return []Placement{
		{
			Name:     "table",
			Mesh:     meshes.Plane,
			Scale:    [3]float32{20, 1, 10},
			Position: [3]float32{0, 1.5, 0},
			Color:    &beige,
			Material: "polishWood",
			Texture:  "table",
		},
		{
			Name:        "apple",
			Mesh:        meshes.Sphere,
			Scale:       [3]float32{1, 1.1, 1},
			RotationDeg: [3]float32{0, 0, -1},
			Position:    [3]float32{0, 2.5, 0},
			Material:    "appleskin",
			Texture:     "apple",
		},
		{
			Name:        "apple-stem",
			Mesh:        meshes.Cylinder,
			Scale:       [3]float32{0.1, 1, 0.1},
			RotationDeg: [3]float32{0, 0, -15},
			Position:    [3]float32{0, 3, 0},
			Material:    "wood",
			Texture:     "stem",
		},
		{
			Name:     "container",
			Mesh:     meshes.Cylinder,
			Scale:    [3]float32{1.5, 2, 1.5},
			Position: [3]float32{2.5, 1.5, 0},
			Material: "polishClay",
			Texture:  "ceramic",
		},
		{
			Name:     "container-lid-knob",
			Mesh:     meshes.Sphere,
			Scale:    [3]float32{0.5, 0.325, 0.5},
			Position: [3]float32{2.5, 3.85, 0},
			Material: "polishClay",
			Texture:  "ceramic",
		},
		{
			Name:        "container-lid-rim",
			Mesh:        meshes.Torus,
			Scale:       [3]float32{1.25, 1.25, 1.25},
			RotationDeg: [3]float32{90, 0, 0},
			Position:    [3]float32{2.5, 3.45, 0},
			Material:    "polishClay",
			Texture:     "ceramic",
		},
		{
			Name:     "container-lid-inset",
			Mesh:     meshes.Cylinder,
			Scale:    [3]float32{1.25, 0.25, 1.25},
			Position: [3]float32{2.5, 3.45, 0},
			Material: "polishClay",
			Texture:  "ceramic",
		},
		{
			Name:        "box-large",
			Mesh:        meshes.Box,
			Scale:       [3]float32{4, 3, 3},
			RotationDeg: [3]float32{0, -30, 0},
			Position:    [3]float32{2.5, 3, -3.5},
			Color:       &white,
			Material:    "wood",
			Texture:     "cardboard",
		},
		{
			Name:        "box-tall",
			Mesh:        meshes.Box,
			Scale:       [3]float32{2.5, 3.25, 0.5},
			RotationDeg: [3]float32{0, 25, 0},
			Position:    [3]float32{-0.35, 3.25, -1.5},
			Color:       &white,
			Material:    "wood",
			Texture:     "cardboard",
		},
		{
			Name:        "teacup",
			Mesh:        meshes.TaperedCylinder,
			Scale:       [3]float32{1.5, 1.5, 1.5},
			RotationDeg: [3]float32{180, 0, 0},
			Position:    [3]float32{2.5, 6, -3.5},
			Color:       &white,
			Material:    "polishClay",
			Texture:     "ceramic",
		},
		{
			Name:     "teacup-handle",
			Mesh:     meshes.Torus,
			Scale:    [3]float32{0.5, 0.5, 0.5},
			Position: [3]float32{3.5, 5.25, -3.5},
			Color:    &white,
			Material: "polishClay",
			Texture:  "ceramic",
		},
	}
}
