// Package app defines the contract between the window runner and a demo.
package app

import (
	"errors"
	"time"

	"learngl/internal/assets"
	"learngl/internal/glapi"
	"learngl/internal/graphics"
)

// Application is driven by the window runner. All methods run on the thread
// that owns the GL context.
type Application interface {
	Title() string
	PreferredWidth() int
	PreferredHeight() int
	IsResizable() bool

	// Initialize builds GPU state. A returned error stops the runner after
	// Cleanup has been called.
	Initialize(ctx *Context) error
	Render(ctx *Context)
	RenderOverlay(ctx *Context)
	// Cleanup releases everything Initialize created. The runner calls it
	// exactly once.
	Cleanup()
	OnResize(width, height int)
}

// Reloader is implemented by applications that can rebuild their shader
// programs when a source file changes on disk.
type Reloader interface {
	// Reload is called with the changed file's base name in ctx.Changed.
	Reload(ctx *Context) error
}

// ReloadPrograms rebuilds every program built from ctx.Changed. A program
// that fails to rebuild keeps running; the errors are joined.
func ReloadPrograms(ctx *Context, sources ...*graphics.ProgramSource) error {
	var errs []error
	for _, src := range sources {
		if !src.Uses(ctx.Changed) {
			continue
		}
		if err := src.Build(ctx.GL, ctx.Assets); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Context is what an application sees of the runner.
type Context struct {
	GL     glapi.API
	Assets *assets.Loader

	Start   time.Time
	Elapsed float64 // seconds since Start
	DT      float64 // seconds since the previous frame

	Width, Height int // framebuffer size in pixels

	// Changed is the shader file that triggered the current Reload.
	Changed string
}

// Time returns the elapsed seconds as float32, the type shaders take.
func (c *Context) Time() float32 {
	return float32(c.Elapsed)
}

// Aspect is width over height, or 1 before the first size is known.
func (c *Context) Aspect() float32 {
	if c.Height == 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// Base gives an application the default window settings and no-op hooks.
// Embed it and implement Initialize and Render.
type Base struct{}

func (Base) Title() string              { return "LearnOpenGL" }
func (Base) PreferredWidth() int        { return 800 }
func (Base) PreferredHeight() int       { return 600 }
func (Base) IsResizable() bool          { return false }
func (Base) RenderOverlay(ctx *Context) {}
func (Base) Cleanup()                   {}
func (Base) OnResize(width, height int) {}
