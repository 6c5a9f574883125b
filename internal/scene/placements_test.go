package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-engine/internal/material"
	"scene-engine/internal/meshes"
)

func TestDefaultPlacementsAreWellFormed(t *testing.T) {
	placements := DefaultPlacements()
	require.Len(t, placements, 11)

	defaults := make(map[string]bool)
	for _, p := range material.Defaults() {
		defaults[p.Tag] = true
	}
	tags := make(map[string]bool)
	for _, ref := range DefaultTextures("assets") {
		tags[ref.Tag] = true
	}

	for _, p := range placements {
		assert.NotEmpty(t, p.Name)
		assert.True(t, p.Mesh.Valid(), "placement %s: mesh %q", p.Name, p.Mesh)
		if p.Material != "" {
			assert.True(t, defaults[p.Material], "placement %s: material %q not in defaults", p.Name, p.Material)
		}
		if p.Texture != "" {
			assert.True(t, tags[p.Texture], "placement %s: texture %q not in default set", p.Name, p.Texture)
		}
	}
}

func TestPlacementsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	want := DefaultPlacements()

	require.NoError(t, SavePlacements(path, want))
	got, err := LoadPlacements(path)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestLoadPlacementsRejectsUnknownMesh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := "- name: mystery\n  mesh: dodecahedron\n  scale: [1, 1, 1]\n  position: [0, 0, 0]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := LoadPlacements(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dodecahedron")
}

func TestLoadPlacementsMissingFile(t *testing.T) {
	_, err := LoadPlacements(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadPlacementsPartialFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := "- name: cube\n  mesh: box\n  scale: [2, 2, 2]\n  position: [0, 1, 0]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	got, err := LoadPlacements(path)
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, meshes.Box, p.Mesh)
	assert.Nil(t, p.Color)
	assert.Nil(t, p.UVScale)
	assert.Empty(t, p.Material)
	assert.Empty(t, p.Texture)
	assert.Equal(t, [3]float32{0, 0, 0}, p.RotationDeg)
}
