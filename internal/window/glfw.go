package window

import (
	"learngl/internal/glapi"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwSurface struct {
	window *glfw.Window
	api    *glapi.Native
	events []Event
}

// OpenGLFW opens a window with a core profile, forward compatible context
// of the requested version and makes it current on the calling thread.
// The caller must have locked that thread.
func OpenGLFW(opts Options) (Surface, error) {
	if err := glfw.Init(); err != nil {
		return nil, &WindowCreationError{Err: err}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(opts.Resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(!opts.Hidden))

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, &WindowCreationError{Err: err}
	}
	win.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	api, err := glapi.Load()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, &ContextCreationError{Err: err}
	}

	s := &glfwSurface{window: win, api: api}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		s.events = append(s.events, Event{Kind: EventResize, Width: width, Height: height})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			s.events = append(s.events, Event{Kind: EventEscape})
		}
	})
	win.SetCloseCallback(func(*glfw.Window) {
		s.events = append(s.events, Event{Kind: EventClose})
	})
	return s, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (s *glfwSurface) GL() glapi.API { return s.api }

func (s *glfwSurface) FramebufferSize() (int, int) {
	return s.window.GetFramebufferSize()
}

func (s *glfwSurface) PollEvents() []Event {
	s.events = s.events[:0]
	glfw.PollEvents()
	return s.events
}

func (s *glfwSurface) SwapBuffers() {
	s.window.SwapBuffers()
}

func (s *glfwSurface) Destroy() {
	s.window.Destroy()
	glfw.Terminate()
}
