// Package window opens a GL window and drives an app.Application through
// its lifetime.
package window

import (
	"errors"
	"fmt"
	"log"
	"time"

	"learngl/internal/app"
	"learngl/internal/assets"
	"learngl/internal/config"
	"learngl/internal/hotreload"
	"learngl/internal/overlay"
	"learngl/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// State of a Runner.
type State int

const (
	StateCreated State = iota
	StateRunning
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateRunning:
		return "running"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// ErrAlreadyRun is returned by a second call to Run.
var ErrAlreadyRun = errors.New("window: runner has already run")

type changeSource interface {
	Pending() []string
	Close() error
}

// Runner owns the window and calls the application's hooks in order. A
// Runner runs one application once.
type Runner struct {
	cfg    config.Config
	loader *assets.Loader

	open        OpenFunc
	openWatcher func(dir string) (changeSource, error)
	now         func() time.Time

	state   State
	surface Surface
	app     app.Application
	ctx     *app.Context
	stats   *overlay.Overlay
	changes changeSource
	fps     *profiling.FrameCounter
	limiter FrameLimiter
	last    time.Time
}

// NewRunner returns a runner that opens a glfw window configured by cfg.
func NewRunner(cfg config.Config) *Runner {
	return &Runner{
		cfg:    cfg,
		loader: assets.NewLoader(cfg.Assets.Dir),
		open:   OpenGLFW,
		openWatcher: func(dir string) (changeSource, error) {
			return hotreload.New(dir)
		},
		now: time.Now,
	}
}

// State reports where the runner is in its lifetime.
func (r *Runner) State() State {
	return r.state
}

// Run opens the window, initializes a and renders until the window is
// closed or Escape is pressed. a.Cleanup is called exactly once if the
// window opened, including when Initialize fails.
func (r *Runner) Run(a app.Application) error {
	if r.state != StateCreated {
		return ErrAlreadyRun
	}
	s, err := r.open(Options{
		Title:     a.Title(),
		Width:     a.PreferredWidth(),
		Height:    a.PreferredHeight(),
		Resizable: a.IsResizable(),
		GLMajor:   r.cfg.Window.GLMajor,
		GLMinor:   r.cfg.Window.GLMinor,
		VSync:     r.cfg.Window.VSync,
	})
	if err != nil {
		r.state = StateDestroyed
		return err
	}
	defer s.Destroy()

	api := s.GL()
	log.Printf("OpenGL %s, renderer %s", api.GetString(gl.VERSION), api.GetString(gl.RENDERER))

	r.surface = s
	r.app = a
	r.state = StateRunning
	start := r.now()
	w, h := s.FramebufferSize()
	r.ctx = &app.Context{GL: api, Assets: r.loader, Start: start, Width: w, Height: h}
	api.Viewport(0, 0, int32(w), int32(h))

	if err := a.Initialize(r.ctx); err != nil {
		r.destroy()
		return fmt.Errorf("failed to initialize %q: %w", a.Title(), err)
	}

	r.startStats()
	r.startWatcher()
	defer r.stopExtras()

	r.fps = profiling.NewFrameCounter(start, time.Second)
	r.last = start
	for r.state == StateRunning {
		r.frame()
	}
	return nil
}

func (r *Runner) destroy() {
	if r.state == StateDestroyed {
		return
	}
	r.state = StateDestroyed
	r.app.Cleanup()
}

func (r *Runner) startStats() {
	if !r.cfg.Overlay.Enabled {
		return
	}
	o, err := overlay.New(r.ctx.GL, r.loader)
	if err != nil {
		log.Printf("stats overlay disabled: %v", err)
		return
	}
	o.SetText(r.app.Title(), "-- fps")
	r.stats = o
}

func (r *Runner) startWatcher() {
	if !r.cfg.Assets.Watch || r.loader.Embedded() {
		return
	}
	if _, ok := r.app.(app.Reloader); !ok {
		return
	}
	w, err := r.openWatcher(r.loader.ShaderDir())
	if err != nil {
		log.Printf("shader hot reload disabled: %v", err)
		return
	}
	log.Printf("watching %s for shader changes", r.loader.ShaderDir())
	r.changes = w
}

func (r *Runner) stopExtras() {
	if r.changes != nil {
		r.changes.Close()
		r.changes = nil
	}
	if r.stats != nil {
		r.stats.Delete()
		r.stats = nil
	}
}

func (r *Runner) frame() {
	profiling.ResetFrame()
	now := r.now()
	r.ctx.DT = now.Sub(r.last).Seconds()
	r.ctx.Elapsed = now.Sub(r.ctx.Start).Seconds()
	r.last = now

	stop := profiling.Track("glfw.PollEvents")
	events := r.surface.PollEvents()
	stop()
	for _, ev := range events {
		switch ev.Kind {
		case EventClose, EventEscape:
			r.destroy()
			return
		case EventResize:
			// minimized windows report 0x0
			if ev.Width == 0 || ev.Height == 0 {
				continue
			}
			r.ctx.Width, r.ctx.Height = ev.Width, ev.Height
			r.ctx.GL.Viewport(0, 0, int32(ev.Width), int32(ev.Height))
			r.app.OnResize(ev.Width, ev.Height)
		}
	}

	r.reload()

	stop = profiling.Track("app.Render")
	r.app.Render(r.ctx)
	stop()

	stop = profiling.Track("app.RenderOverlay")
	r.app.RenderOverlay(r.ctx)
	stop()

	if r.stats != nil {
		stop = profiling.Track("overlay.Render")
		r.stats.Render(r.ctx.Width, r.ctx.Height)
		stop()
	}

	stop = profiling.Track("glfw.SwapBuffers")
	r.surface.SwapBuffers()
	stop()

	if r.fps.Tick(r.now()) {
		fps := fmt.Sprintf("%d fps", r.fps.FPS())
		log.Println(fps)
		if r.stats != nil {
			r.stats.SetText(r.app.Title(), fps)
		}
	}

	budget := time.Duration(r.cfg.Window.SlowFrameMS) * time.Millisecond
	if took := r.now().Sub(now); budget > 0 && took > budget {
		log.Printf("Slow frame: %v. Top tasks: %s", took, profiling.TopN(5))
	}

	r.limiter.Wait()
}

func (r *Runner) reload() {
	if r.changes == nil {
		return
	}
	names := r.changes.Pending()
	if len(names) == 0 {
		return
	}
	reloader := r.app.(app.Reloader)
	defer profiling.Track("app.Reload")()
	for _, name := range names {
		r.ctx.Changed = name
		if err := reloader.Reload(r.ctx); err != nil {
			log.Printf("reload after %s changed: %v", name, err)
			continue
		}
		log.Printf("reloaded %s", name)
	}
	r.ctx.Changed = ""
}
