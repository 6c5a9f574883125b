package transform

import (
	"github.com/go-gl/mathgl/mgl32"

	"scene-engine/internal/shader"
)

// ModelUniform is the uniform key the composed model matrix is pushed under.
const ModelUniform = "model"

// Composer builds model matrices and pushes them to the uniform sink. Every
// draw must be preceded by exactly one Compose call; there is no batching.
type Composer struct {
	sink shader.Sink
}

// NewComposer returns a composer writing to sink.
func NewComposer(sink shader.Sink) *Composer {
	return &Composer{sink: sink}
}

// Compose builds the model matrix as Translate * RotX * RotY * RotZ * Scale:
// scale first, then elemental rotations about the original X, Y, and Z axes in
// that order, then translate. Rotations are given in degrees. The matrix is
// pushed immediately under ModelUniform and also returned.
func (c *Composer) Compose(scale, rotationDeg, position mgl32.Vec3) mgl32.Mat4 {
	m := Model(scale, rotationDeg, position)
	c.sink.SetMat4(ModelUniform, m)
	return m
}

// Model builds the model matrix without touching the sink.
func Model(scale, rotationDeg, position mgl32.Vec3) mgl32.Mat4 {
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotationDeg.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotationDeg.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotationDeg.Z()))
	t := mgl32.Translate3D(position.X(), position.Y(), position.Z())

	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}
