package window

// WindowCreationError means the windowing system could not be initialized
// or refused to open the window.
type WindowCreationError struct {
	Err error
}

func (e *WindowCreationError) Error() string {
	return "failed to create window: " + e.Err.Error()
}

func (e *WindowCreationError) Unwrap() error { return e.Err }

// ContextCreationError means the window opened but OpenGL entry points
// could not be loaded for its context.
type ContextCreationError struct {
	Err error
}

func (e *ContextCreationError) Error() string {
	return "failed to initialize OpenGL context: " + e.Err.Error()
}

func (e *ContextCreationError) Unwrap() error { return e.Err }
