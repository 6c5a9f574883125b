package graphics

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"scene-engine/internal/engineconfig"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// Window wraps the GLFW window and the GL context created for it.
type Window struct {
	handle *glfw.Window
	width  int
	height int
}

// Open creates the window and initializes OpenGL 4.1 core. The caller owns the
// returned window and must call Close when done.
func Open(prefs engineconfig.Prefs) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	handle, err := glfw.CreateWindow(prefs.WindowWidth, prefs.WindowHeight, prefs.WindowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	handle.MakeContextCurrent()

	if prefs.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)

	return &Window{handle: handle, width: prefs.WindowWidth, height: prefs.WindowHeight}, nil
}

// Aspect returns the framebuffer width/height ratio.
func (w *Window) Aspect() float32 {
	fw, fh := w.handle.GetFramebufferSize()
	if fh == 0 {
		return 1
	}
	return float32(fw) / float32(fh)
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose() || w.handle.GetKey(glfw.KeyEscape) == glfw.Press
}

// Frame clears the buffers, calls draw, then swaps and polls events.
func (w *Window) Frame(draw func()) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	draw()
	w.handle.SwapBuffers()
	glfw.PollEvents()
}

// Close destroys the window and shuts GLFW down.
func (w *Window) Close() {
	w.handle.Destroy()
	glfw.Terminate()
}

// Run opens a window, calls setup once with it, then calls frame each
// iteration until the window closes. cleanup runs after the loop while the GL
// context is still current, so GPU resources can be released; cleanup may be
// nil.
func Run(prefs engineconfig.Prefs, setup func(*Window) (frame, cleanup func(), err error)) error {
	w, err := Open(prefs)
	if err != nil {
		return err
	}
	defer w.Close()

	frame, cleanup, err := setup(w)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	for !w.ShouldClose() {
		w.Frame(frame)
	}
	return nil
}
