package meshes

import (
	"github.com/chewxy/math32"
)

// Mesh resolution constants. High enough for smooth silhouettes at scene scale.
const (
	sphereStacks   = 30
	sphereSlices   = 30
	latheSlices    = 36
	torusRings     = 36
	torusSides     = 18
	torusRadius    = 0.75
	torusTubeWidth = 0.25
)

// Primitive conventions, matched by the placement data:
// box is a unit cube centered at the origin; plane spans -1..1 on XZ at y=0;
// cylinder, cone, tapered cylinder, prism, and pyramid sit with their base on
// the XZ plane at y=0 and rise to y=1; sphere is radius 1 centered at the
// origin; torus lies in the XY plane with its axis along +Z.

func appendVertex(g *Geometry, px, py, pz, nx, ny, nz, u, v float32) {
	g.Vertices = append(g.Vertices, px, py, pz, nx, ny, nz, u, v)
}

func normalize(x, y, z float32) (float32, float32, float32) {
	l := math32.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return 0, 0, 0
	}
	return x / l, y / l, z / l
}

// quad appends four vertices sharing one normal and two triangles over them.
// Corners are given in winding order; UVs map corner 0 to (0,0) around to (0,1).
func quad(g *Geometry, corners [4][3]float32, normal [3]float32) {
	base := uint32(g.VertexCount())
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, c := range corners {
		appendVertex(g, c[0], c[1], c[2], normal[0], normal[1], normal[2], uvs[i][0], uvs[i][1])
	}
	g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
}

// BoxGeometry builds a unit cube centered at the origin with per-face normals
// and a full 0..1 UV square on every face.
func BoxGeometry() Geometry {
	var g Geometry
	const h = 0.5
	quad(&g, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}, [3]float32{0, 0, 1})
	quad(&g, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, [3]float32{0, 0, -1})
	quad(&g, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}, [3]float32{1, 0, 0})
	quad(&g, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, [3]float32{-1, 0, 0})
	quad(&g, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}, [3]float32{0, 1, 0})
	quad(&g, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, [3]float32{0, -1, 0})
	return g
}

// PlaneGeometry builds a 2x2 quad on the XZ plane facing +Y.
func PlaneGeometry() Geometry {
	var g Geometry
	quad(&g, [4][3]float32{{-1, 0, 1}, {1, 0, 1}, {1, 0, -1}, {-1, 0, -1}}, [3]float32{0, 1, 0})
	return g
}

// latheSide appends the side surface of a solid of revolution running from
// baseRadius at y=0 to topRadius at y=height. The seam column is duplicated so
// UVs wrap cleanly from 0 to 1.
func latheSide(g *Geometry, baseRadius, topRadius, height float32, slices int) {
	slope := (baseRadius - topRadius) / height
	base := uint32(g.VertexCount())
	for i := 0; i <= slices; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(slices)
		c, s := math32.Cos(theta), math32.Sin(theta)
		nx, ny, nz := normalize(c, slope, s)
		u := float32(i) / float32(slices)
		appendVertex(g, baseRadius*c, 0, baseRadius*s, nx, ny, nz, u, 0)
		appendVertex(g, topRadius*c, height, topRadius*s, nx, ny, nz, u, 1)
	}
	for i := 0; i < slices; i++ {
		b := base + uint32(2*i)
		g.Indices = append(g.Indices, b, b+2, b+3, b, b+3, b+1)
	}
}

// latheCap appends a disc at the given height, facing up or down.
func latheCap(g *Geometry, radius, y float32, up bool, slices int) {
	base := uint32(g.VertexCount())
	ny := float32(1)
	if !up {
		ny = -1
	}
	appendVertex(g, 0, y, 0, 0, ny, 0, 0.5, 0.5)
	for i := 0; i <= slices; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(slices)
		c, s := math32.Cos(theta), math32.Sin(theta)
		appendVertex(g, radius*c, y, radius*s, 0, ny, 0, 0.5+0.5*c, 0.5+0.5*s)
	}
	for i := 0; i < slices; i++ {
		a, b := base+1+uint32(i), base+2+uint32(i)
		if up {
			g.Indices = append(g.Indices, base, b, a)
		} else {
			g.Indices = append(g.Indices, base, a, b)
		}
	}
}

// CylinderGeometry builds a radius-1 cylinder from y=0 to y=1 with both caps.
func CylinderGeometry() Geometry {
	var g Geometry
	latheSide(&g, 1, 1, 1, latheSlices)
	latheCap(&g, 1, 1, true, latheSlices)
	latheCap(&g, 1, 0, false, latheSlices)
	return g
}

// ConeGeometry builds a radius-1 cone with its base at y=0 and apex at y=1.
func ConeGeometry() Geometry {
	var g Geometry
	latheSide(&g, 1, 0, 1, latheSlices)
	latheCap(&g, 1, 0, false, latheSlices)
	return g
}

// TaperedCylinderGeometry builds a frustum from radius 1 at y=0 to radius 0.5
// at y=1, with both caps.
func TaperedCylinderGeometry() Geometry {
	var g Geometry
	latheSide(&g, 1, 0.5, 1, latheSlices)
	latheCap(&g, 0.5, 1, true, latheSlices)
	latheCap(&g, 1, 0, false, latheSlices)
	return g
}

// SphereGeometry builds a radius-1 sphere centered at the origin.
func SphereGeometry() Geometry {
	var g Geometry
	for stack := 0; stack <= sphereStacks; stack++ {
		phi := math32.Pi * float32(stack) / float32(sphereStacks)
		y := math32.Cos(phi)
		ringRadius := math32.Sin(phi)
		for slice := 0; slice <= sphereSlices; slice++ {
			theta := 2 * math32.Pi * float32(slice) / float32(sphereSlices)
			x := ringRadius * math32.Cos(theta)
			z := ringRadius * math32.Sin(theta)
			u := float32(slice) / float32(sphereSlices)
			v := 1 - float32(stack)/float32(sphereStacks)
			appendVertex(&g, x, y, z, x, y, z, u, v)
		}
	}
	cols := uint32(sphereSlices + 1)
	for stack := 0; stack < sphereStacks; stack++ {
		for slice := 0; slice < sphereSlices; slice++ {
			a := uint32(stack)*cols + uint32(slice)
			b := a + cols
			g.Indices = append(g.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return g
}

// flatQuad appends a side wall between two base corners, extruded from y=0 to
// y=height, with an outward-facing flat normal.
func flatQuad(g *Geometry, x0, z0, x1, z1, height float32) {
	dx, dz := x1-x0, z1-z0
	nx, _, nz := normalize(-dz, 0, dx)
	midX, midZ := (x0+x1)/2, (z0+z1)/2
	if nx*midX+nz*midZ < 0 {
		nx, nz = -nx, -nz
	}
	quad(g, [4][3]float32{
		{x0, 0, z0}, {x1, 0, z1}, {x1, height, z1}, {x0, height, z0},
	}, [3]float32{nx, 0, nz})
}

// PrismGeometry builds a triangular prism: an equilateral triangle of
// circumradius 1 on XZ, extruded from y=0 to y=1.
func PrismGeometry() Geometry {
	var g Geometry
	angles := [3]float32{90, 210, 330}
	var xs, zs [3]float32
	for i, deg := range angles {
		rad := deg * math32.Pi / 180
		xs[i] = math32.Cos(rad)
		zs[i] = math32.Sin(rad)
	}

	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		flatQuad(&g, xs[i], zs[i], xs[j], zs[j], 1)
	}

	// Caps: one triangle each, UVs from the XZ footprint.
	for _, capSide := range []struct {
		y  float32
		ny float32
	}{{1, 1}, {0, -1}} {
		base := uint32(g.VertexCount())
		for i := 0; i < 3; i++ {
			appendVertex(&g, xs[i], capSide.y, zs[i], 0, capSide.ny, 0, 0.5+0.5*xs[i], 0.5+0.5*zs[i])
		}
		if capSide.ny > 0 {
			g.Indices = append(g.Indices, base, base+2, base+1)
		} else {
			g.Indices = append(g.Indices, base, base+1, base+2)
		}
	}
	return g
}

// Pyramid4Geometry builds a four-sided pyramid: a unit square base on XZ at
// y=0 with the apex at (0,1,0). Each side gets its own flat normal.
func Pyramid4Geometry() Geometry {
	var g Geometry
	const h = 0.5
	corners := [4][2]float32{{-h, -h}, {h, -h}, {h, h}, {-h, h}}

	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		x0, z0 := corners[i][0], corners[i][1]
		x1, z1 := corners[j][0], corners[j][1]

		// Face normal from the two edges of the triangle, flipped outward.
		e1 := [3]float32{x1 - x0, 0, z1 - z0}
		e2 := [3]float32{-x0, 1, -z0}
		nx := e1[1]*e2[2] - e1[2]*e2[1]
		ny := e1[2]*e2[0] - e1[0]*e2[2]
		nz := e1[0]*e2[1] - e1[1]*e2[0]
		nx, ny, nz = normalize(nx, ny, nz)
		midX, midZ := (x0+x1)/2, (z0+z1)/2
		if nx*midX+nz*midZ < 0 {
			nx, ny, nz = -nx, -ny, -nz
		}

		base := uint32(g.VertexCount())
		appendVertex(&g, x0, 0, z0, nx, ny, nz, 0, 0)
		appendVertex(&g, x1, 0, z1, nx, ny, nz, 1, 0)
		appendVertex(&g, 0, 1, 0, nx, ny, nz, 0.5, 1)
		g.Indices = append(g.Indices, base, base+1, base+2)
	}

	quad(&g, [4][3]float32{{-h, 0, -h}, {h, 0, -h}, {h, 0, h}, {-h, 0, h}}, [3]float32{0, -1, 0})
	return g
}

// TorusGeometry builds a torus in the XY plane (axis along +Z) with center
// radius 0.75 and tube radius 0.25, so the overall radius is 1.
func TorusGeometry() Geometry {
	var g Geometry
	for ring := 0; ring <= torusRings; ring++ {
		u := 2 * math32.Pi * float32(ring) / float32(torusRings)
		cu, su := math32.Cos(u), math32.Sin(u)
		for side := 0; side <= torusSides; side++ {
			v := 2 * math32.Pi * float32(side) / float32(torusSides)
			cv, sv := math32.Cos(v), math32.Sin(v)
			r := torusRadius + torusTubeWidth*cv
			appendVertex(&g,
				r*cu, r*su, torusTubeWidth*sv,
				cv*cu, cv*su, sv,
				float32(ring)/float32(torusRings), float32(side)/float32(torusSides))
		}
	}
	cols := uint32(torusSides + 1)
	for ring := 0; ring < torusRings; ring++ {
		for side := 0; side < torusSides; side++ {
			a := uint32(ring)*cols + uint32(side)
			b := a + cols
			g.Indices = append(g.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return g
}
