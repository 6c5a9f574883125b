package shader

import "github.com/go-gl/mathgl/mgl32"

// Sink is the destination for per-draw shader configuration. The transform composer,
// state setter, and light setup all write here; nothing reads values back.
// Program implements Sink against the active GL program; tests substitute a recording fake.
type Sink interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, v mgl32.Mat4)
}
