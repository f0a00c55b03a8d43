package renderer

import (
	"fmt"
	"math"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/avasilakis/orion/scene"
	"github.com/avasilakis/orion/tracer"
)

// An interactive opengl-based renderer. It owns the window event loop:
// every iteration polls for a quit signal, derives the camera orbit angle
// from the elapsed monotonic time, renders a full frame through the tracer
// pool and blits it to the window. Quit is only observed between frames, so
// an in-flight frame always runs to completion.
type interactiveGLRenderer struct {
	*defaultRenderer

	// opengl handles
	window *glfw.Window
	texFbo uint32
}

// Create a new interactive opengl renderer. Must be called from the main
// OS thread (runtime.LockOSThread) as required by glfw.
func NewInteractive(sc *scene.Scene, camera *scene.Camera, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	base, err := NewDefault(sc, camera, scheduler, opts)
	if err != nil {
		return nil, err
	}

	r := &interactiveGLRenderer{
		defaultRenderer: base.(*defaultRenderer),
	}

	if err = r.initGL(opts); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

func (r *interactiveGLRenderer) initGL(opts Options) error {
	var err error
	if err = glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %s", err.Error())
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	r.window, err = glfw.CreateWindow(int(opts.FrameW), int(opts.FrameH), "orion", nil, nil)
	if err != nil {
		return fmt.Errorf("could not create opengl window: %s", err.Error())
	}
	r.window.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		return fmt.Errorf("could not init opengl: %s", err.Error())
	}

	// Setup texture for image data
	var fbTexture uint32
	gl.GenTextures(1, &fbTexture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fbTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(opts.FrameW), int32(opts.FrameH), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	// Attach texture to FBO
	gl.GenFramebuffers(1, &r.texFbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.texFbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fbTexture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	r.window.SetKeyCallback(r.onKeyEvent)

	return nil
}

// Run the render loop until the window is closed. The start angle offsets
// the orbit; the angle then advances with wall-clock time so that one full
// orbit takes Options.OrbitPeriod.
func (r *interactiveGLRenderer) Render(startAngle float32) error {
	frameW, frameH := int32(r.options.FrameW), int32(r.options.FrameH)
	start := time.Now()

	for !r.window.ShouldClose() {
		glfw.PollEvents()

		elapsed := time.Since(start)
		orbit := float64(elapsed%r.options.OrbitPeriod) / float64(r.options.OrbitPeriod)
		angle := startAngle + float32(2*math.Pi*orbit)

		if err := r.defaultRenderer.Render(angle); err != nil {
			return err
		}

		// Update texture with quantized frame data and blit it to the
		// window, flipping Y to match the screen orientation.
		frame := r.fb.RGBA()
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, frameW, frameH, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&frame.Pix[0]))
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.texFbo)
		gl.BlitFramebuffer(0, 0, frameW, frameH, 0, frameH, frameW, 0, gl.COLOR_BUFFER_BIT, gl.LINEAR)
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

		r.window.SwapBuffers()
	}

	return nil
}

func (r *interactiveGLRenderer) onKeyEvent(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	if key == glfw.KeyEscape {
		r.window.SetShouldClose(true)
	}
}

func (r *interactiveGLRenderer) Close() {
	if r.window != nil {
		r.window.Destroy()
		r.window = nil
		glfw.Terminate()
	}
	r.defaultRenderer.Close()
}
