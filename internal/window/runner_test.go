package window

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"learngl/internal/app"
	"learngl/internal/config"
	"learngl/internal/glapi"
	"learngl/internal/glapi/glapitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	gl        *glapitest.Fake
	polls     [][]Event
	calls     *[]string
	destroyed int
}

func (s *fakeSurface) GL() glapi.API               { return s.gl }
func (s *fakeSurface) FramebufferSize() (int, int) { return 800, 600 }
func (s *fakeSurface) SwapBuffers()                { *s.calls = append(*s.calls, "swap") }
func (s *fakeSurface) Destroy()                    { s.destroyed++ }

// PollEvents plays back the scripted events, then asks to close.
func (s *fakeSurface) PollEvents() []Event {
	if len(s.polls) == 0 {
		return []Event{{Kind: EventClose}}
	}
	ev := s.polls[0]
	s.polls = s.polls[1:]
	return ev
}

type recordingApp struct {
	app.Base
	calls   *[]string
	initErr error
	ctx     *app.Context
}

func (a *recordingApp) Initialize(ctx *app.Context) error {
	*a.calls = append(*a.calls, "init")
	a.ctx = ctx
	return a.initErr
}

func (a *recordingApp) Render(ctx *app.Context) { *a.calls = append(*a.calls, "render") }

func (a *recordingApp) RenderOverlay(ctx *app.Context) { *a.calls = append(*a.calls, "overlay") }

func (a *recordingApp) Cleanup() { *a.calls = append(*a.calls, "cleanup") }

func (a *recordingApp) OnResize(w, h int) {
	*a.calls = append(*a.calls, fmt.Sprintf("resize %dx%d", w, h))
}

type reloadingApp struct {
	recordingApp
	reloaded []string
}

func (a *reloadingApp) Reload(ctx *app.Context) error {
	a.reloaded = append(a.reloaded, ctx.Changed)
	if ctx.Changed == "broken.frag" {
		return errors.New("compile failed")
	}
	return nil
}

type fakeChanges struct {
	batches [][]string
	closed  int
}

func (c *fakeChanges) Pending() []string {
	if len(c.batches) == 0 {
		return nil
	}
	b := c.batches[0]
	c.batches = c.batches[1:]
	return b
}

func (c *fakeChanges) Close() error {
	c.closed++
	return nil
}

func newTestRunner(cfg config.Config, polls ...[]Event) (*Runner, *fakeSurface, *[]string) {
	calls := &[]string{}
	s := &fakeSurface{gl: glapitest.New(), polls: polls, calls: calls}
	r := NewRunner(cfg)
	r.open = func(Options) (Surface, error) { return s, nil }
	clock := time.Unix(0, 0)
	r.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}
	return r, s, calls
}

func count(calls []string, name string) int {
	n := 0
	for _, c := range calls {
		if c == name {
			n++
		}
	}
	return n
}

func TestEscapeCleansUpOnce(t *testing.T) {
	r, s, calls := newTestRunner(config.Default(), nil, nil, []Event{{Kind: EventEscape}, {Kind: EventClose}})
	a := &recordingApp{calls: calls}

	require.NoError(t, r.Run(a))
	assert.Equal(t, []string{
		"init",
		"render", "overlay", "swap",
		"render", "overlay", "swap",
		"cleanup",
	}, *calls)
	assert.Equal(t, StateDestroyed, r.State())
	assert.Equal(t, 1, s.destroyed)
}

func TestCloseCleansUpOnce(t *testing.T) {
	r, s, calls := newTestRunner(config.Default(), []Event{{Kind: EventClose}})
	a := &recordingApp{calls: calls}

	require.NoError(t, r.Run(a))
	assert.Equal(t, []string{"init", "cleanup"}, *calls)
	assert.Equal(t, 1, s.destroyed)
}

func TestInitializeFailure(t *testing.T) {
	r, s, calls := newTestRunner(config.Default())
	boom := errors.New("missing texture")
	a := &recordingApp{calls: calls, initErr: boom}

	err := r.Run(a)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"init", "cleanup"}, *calls)
	assert.Equal(t, 0, count(*calls, "render"))
	assert.Equal(t, StateDestroyed, r.State())
	assert.Equal(t, 1, s.destroyed)
}

func TestOpenFailure(t *testing.T) {
	r := NewRunner(config.Default())
	cause := errors.New("no display")
	r.open = func(Options) (Surface, error) { return nil, &WindowCreationError{Err: cause} }
	calls := &[]string{}

	err := r.Run(&recordingApp{calls: calls})
	var wce *WindowCreationError
	require.ErrorAs(t, err, &wce)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, *calls)

	assert.ErrorIs(t, r.Run(&recordingApp{calls: calls}), ErrAlreadyRun)
}

func TestOptionsFromApplication(t *testing.T) {
	r, s, calls := newTestRunner(config.Default())
	var got Options
	r.open = func(o Options) (Surface, error) {
		got = o
		return s, nil
	}
	require.NoError(t, r.Run(&recordingApp{calls: calls}))
	assert.Equal(t, Options{
		Title: "LearnOpenGL", Width: 800, Height: 600,
		GLMajor: 4, GLMinor: 1, VSync: true,
	}, got)
}

func TestResize(t *testing.T) {
	r, s, calls := newTestRunner(config.Default(),
		[]Event{{Kind: EventResize, Width: 1024, Height: 768}},
		[]Event{{Kind: EventResize, Width: 0, Height: 0}},
	)
	a := &recordingApp{calls: calls}

	require.NoError(t, r.Run(a))
	assert.Equal(t, []string{
		"init",
		"resize 1024x768", "render", "overlay", "swap",
		"render", "overlay", "swap",
		"cleanup",
	}, *calls)
	assert.Equal(t, [4]int32{0, 0, 1024, 768}, s.gl.ViewportRect)
	assert.Equal(t, 1024, a.ctx.Width)
	assert.Equal(t, 768, a.ctx.Height)
}

func TestTimingAdvances(t *testing.T) {
	r, _, calls := newTestRunner(config.Default(), nil, nil)
	a := &recordingApp{calls: calls}
	require.NoError(t, r.Run(a))
	assert.Greater(t, a.ctx.Elapsed, 0.0)
	assert.Greater(t, a.ctx.DT, 0.0)
}

func TestStatsOverlayLifecycle(t *testing.T) {
	cfg := config.Default()
	cfg.Overlay.Enabled = true
	r, s, calls := newTestRunner(cfg, nil)
	require.NoError(t, r.Run(&recordingApp{calls: calls}))

	require.NotEmpty(t, s.gl.Draws, "overlay did not draw")
	for _, k := range []glapitest.Kind{glapitest.KindProgram, glapitest.KindVertexArray, glapitest.KindBuffer, glapitest.KindTexture} {
		assert.Zero(t, s.gl.Live(k), k)
	}
	assert.Empty(t, s.gl.Errors)
}

func TestReloadOnChanges(t *testing.T) {
	cfg := config.Default()
	cfg.Assets.Dir = t.TempDir()
	cfg.Assets.Watch = true
	r, _, calls := newTestRunner(cfg, nil, nil)
	changes := &fakeChanges{batches: [][]string{{"shaders.frag", "broken.frag"}}}
	var watched string
	r.openWatcher = func(dir string) (changeSource, error) {
		watched = dir
		return changes, nil
	}
	a := &reloadingApp{recordingApp: recordingApp{calls: calls}}

	require.NoError(t, r.Run(a))
	assert.Equal(t, r.loader.ShaderDir(), watched)
	assert.Equal(t, []string{"shaders.frag", "broken.frag"}, a.reloaded)
	assert.Equal(t, 1, changes.closed)
	assert.Equal(t, 1, count(*calls, "cleanup"))
}

func TestNoWatcherWithoutReloader(t *testing.T) {
	cfg := config.Default()
	cfg.Assets.Dir = t.TempDir()
	cfg.Assets.Watch = true
	r, _, calls := newTestRunner(cfg, nil)
	r.openWatcher = func(string) (changeSource, error) {
		t.Fatal("watcher opened for an application that cannot reload")
		return nil, nil
	}
	require.NoError(t, r.Run(&recordingApp{calls: calls}))
}
