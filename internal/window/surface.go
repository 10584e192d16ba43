package window

import (
	"learngl/internal/glapi"
)

// EventKind is one of the window events the runner reacts to.
type EventKind int

const (
	EventClose EventKind = iota
	EventEscape
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventClose:
		return "close"
	case EventEscape:
		return "escape"
	case EventResize:
		return "resize"
	}
	return "unknown"
}

// Event is a window event. Width and Height are set for EventResize and
// are framebuffer pixels.
type Event struct {
	Kind          EventKind
	Width, Height int
}

// Options describe the window and context to open.
type Options struct {
	Title         string
	Width, Height int
	Resizable     bool
	GLMajor       int
	GLMinor       int
	VSync         bool
	Hidden        bool
}

// Surface is an open window with a current GL context.
type Surface interface {
	GL() glapi.API
	FramebufferSize() (width, height int)
	// PollEvents processes pending window system events and returns the
	// ones the runner handles. The slice is valid until the next call.
	PollEvents() []Event
	SwapBuffers()
	// Destroy closes the window and releases the windowing system.
	Destroy()
}

// OpenFunc opens a Surface. It returns *WindowCreationError or
// *ContextCreationError on failure.
type OpenFunc func(opts Options) (Surface, error)
