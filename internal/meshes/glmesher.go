package meshes

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex attribute locations, matching the "in" declarations of the scene
// program: 0 position, 1 normal, 2 uv.
const (
	positionAttrib = 0
	normalAttrib   = 1
	uvAttrib       = 2
)

// GLMesher implements Mesher with a VAO/VBO/EBO per mesh. The GL context must
// be current on the calling goroutine.
type GLMesher struct{}

// CreateMesh uploads the interleaved vertex buffer and index list.
func (GLMesher) CreateMesh(g Geometry) (GPUMesh, error) {
	if len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return GPUMesh{}, errors.New("empty geometry")
	}

	var mesh GPUMesh
	gl.GenVertexArrays(1, &mesh.VAO)
	gl.BindVertexArray(mesh.VAO)

	gl.GenBuffers(1, &mesh.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*4, gl.Ptr(g.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mesh.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.EnableVertexAttribArray(positionAttrib)
	gl.VertexAttribPointerWithOffset(positionAttrib, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(normalAttrib)
	gl.VertexAttribPointerWithOffset(normalAttrib, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(uvAttrib)
	gl.VertexAttribPointerWithOffset(uvAttrib, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)

	mesh.IndexCount = int32(len(g.Indices))
	return mesh, nil
}

// DrawMesh issues the indexed draw for an uploaded mesh.
func (GLMesher) DrawMesh(m GPUMesh) {
	gl.BindVertexArray(m.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.IndexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// DeleteMesh releases the mesh's buffer objects.
func (GLMesher) DeleteMesh(m GPUMesh) {
	gl.DeleteBuffers(1, &m.VBO)
	gl.DeleteBuffers(1, &m.EBO)
	gl.DeleteVertexArrays(1, &m.VAO)
}
