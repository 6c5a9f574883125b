package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a compiled+linked GLSL program with a uniform location cache.
// Locations are fetched once per name; unknown names resolve to -1 and every
// setter guards against that, so writing to a uniform the shader does not
// declare is a no-op rather than a GL error.
type Program struct {
	handle    uint32
	locations map[string]int32
}

// New compiles the given vertex and fragment sources and links them into a program.
// The GL context must be current on the calling goroutine.
func New(vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := compile(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := compile(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(handle, logLen, nil, gl.Str(log))
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("link program: %v", log)
	}

	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	return &Program{
		handle:    handle,
		locations: make(map[string]int32),
	}, nil
}

// Default builds the engine's standard textured Phong program from the embedded sources.
func Default() (*Program, error) {
	return New(vertexSource, fragmentSource)
}

func compile(src string, kind uint32) (uint32, error) {
	handle := gl.CreateShader(kind)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(handle, 1, csrc, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(handle, logLen, nil, gl.Str(log))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("compile: %v", log)
	}
	return handle, nil
}

// Use makes this program the active one. Call once before setting uniforms or drawing.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Handle returns the underlying GL program object.
func (p *Program) Handle() uint32 {
	return p.handle
}

// Delete releases the program object.
func (p *Program) Delete() {
	gl.DeleteProgram(p.handle)
	p.locations = make(map[string]int32)
}

// location returns the cached uniform location, fetching and caching it on first use.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

// SetBool sets a bool uniform (uploaded as 0/1 int).
func (p *Program) SetBool(name string, v bool) {
	if loc := p.location(name); loc >= 0 {
		var i int32
		if v {
			i = 1
		}
		gl.Uniform1i(loc, i)
	}
}

// SetInt sets an int or sampler uniform.
func (p *Program) SetInt(name string, v int32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform2f(loc, v.X(), v.Y())
	}
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform3f(loc, v.X(), v.Y(), v.Z())
	}
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform4f(loc, v.X(), v.Y(), v.Z(), v.W())
	}
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, v mgl32.Mat4) {
	if loc := p.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	}
}
