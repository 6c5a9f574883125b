package meshes

import (
	"fmt"

	"scene-engine/internal/logger"
)

// Kind names a primitive mesh. The string values double as the YAML spelling
// in scene placement files.
type Kind string

const (
	Box             Kind = "box"
	Plane           Kind = "plane"
	Cylinder        Kind = "cylinder"
	Cone            Kind = "cone"
	Prism           Kind = "prism"
	Pyramid4        Kind = "pyramid4"
	Sphere          Kind = "sphere"
	TaperedCylinder Kind = "tapered_cylinder"
	Torus           Kind = "torus"
)

// AllKinds lists every primitive the engine can generate.
var AllKinds = []Kind{Box, Plane, Cylinder, Cone, Prism, Pyramid4, Sphere, TaperedCylinder, Torus}

// Valid reports whether k names a known primitive.
func (k Kind) Valid() bool {
	switch k {
	case Box, Plane, Cylinder, Cone, Prism, Pyramid4, Sphere, TaperedCylinder, Torus:
		return true
	}
	return false
}

// Geometry is generated vertex data: interleaved position(3), normal(3), uv(2)
// floats plus a triangle index list.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the interleaved buffer.
func (g Geometry) VertexCount() int {
	return len(g.Vertices) / floatsPerVertex
}

// floatsPerVertex: position 3 + normal 3 + uv 2.
const floatsPerVertex = 8

// GPUMesh is an uploaded mesh: buffer object names plus the index count to draw.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// Mesher uploads, draws, and releases mesh data. GLMesher implements it with
// VAO/VBO/EBO objects; tests substitute a counting fake.
type Mesher interface {
	CreateMesh(g Geometry) (GPUMesh, error)
	DrawMesh(m GPUMesh)
	DeleteMesh(m GPUMesh)
}

// Drawer is the mesh collaborator the renderer consumes: it draws one instance
// of a primitive using whatever transform/material/texture state is currently
// pushed to the shader.
type Drawer interface {
	Draw(k Kind)
}

// Manager generates and owns one GPU mesh per primitive kind. Load is
// idempotent per kind, so a mesh is uploaded once no matter how often it is
// drawn.
type Manager struct {
	mesher Mesher
	log    *logger.Logger
	loaded map[Kind]GPUMesh
}

// NewManager returns a manager with no meshes loaded.
func NewManager(mesher Mesher, log *logger.Logger) *Manager {
	return &Manager{
		mesher: mesher,
		log:    log,
		loaded: make(map[Kind]GPUMesh),
	}
}

// Load generates and uploads the mesh for k if it is not already resident.
func (m *Manager) Load(k Kind) error {
	if _, ok := m.loaded[k]; ok {
		return nil
	}
	g, err := Generate(k)
	if err != nil {
		return err
	}
	mesh, err := m.mesher.CreateMesh(g)
	if err != nil {
		return fmt.Errorf("mesh %s: %w", k, err)
	}
	m.loaded[k] = mesh
	m.log.Infof("loaded mesh %s (%d vertices, %d indices)", k, g.VertexCount(), len(g.Indices))
	return nil
}

// LoadAll loads every primitive kind.
func (m *Manager) LoadAll() error {
	for _, k := range AllKinds {
		if err := m.Load(k); err != nil {
			return err
		}
	}
	return nil
}

// Loaded reports whether k is resident.
func (m *Manager) Loaded(k Kind) bool {
	_, ok := m.loaded[k]
	return ok
}

// Draw issues the draw for k using the currently pushed shader state.
// Drawing an unloaded kind is a logged no-op.
func (m *Manager) Draw(k Kind) {
	mesh, ok := m.loaded[k]
	if !ok {
		m.log.Warnf("draw of unloaded mesh %s skipped", k)
		return
	}
	m.mesher.DrawMesh(mesh)
}

// Teardown releases every resident mesh.
func (m *Manager) Teardown() {
	for k, mesh := range m.loaded {
		m.mesher.DeleteMesh(mesh)
		delete(m.loaded, k)
	}
}

// Generate builds the vertex data for k.
func Generate(k Kind) (Geometry, error) {
	switch k {
	case Box:
		return BoxGeometry(), nil
	case Plane:
		return PlaneGeometry(), nil
	case Cylinder:
		return CylinderGeometry(), nil
	case Cone:
		return ConeGeometry(), nil
	case Prism:
		return PrismGeometry(), nil
	case Pyramid4:
		return Pyramid4Geometry(), nil
	case Sphere:
		return SphereGeometry(), nil
	case TaperedCylinder:
		return TaperedCylinderGeometry(), nil
	case Torus:
		return TorusGeometry(), nil
	default:
		return Geometry{}, fmt.Errorf("unknown mesh kind %q", k)
	}
}
