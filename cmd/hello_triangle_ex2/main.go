// Command hello_triangle_ex2 draws the same two triangles as
// hello_triangle_ex1, each from its own vertex array.
package main

import (
	"runtime"

	"learngl/internal/app"
	"learngl/internal/graphics"
	"learngl/internal/window"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func init() {
	runtime.LockOSThread()
}

type twoArrays struct {
	app.Base
	left, right *graphics.VertexArrayObject
	program     graphics.ProgramSource
}

func (*twoArrays) Title() string { return "Hello Triangle Exercise 2" }

func (t *twoArrays) Initialize(ctx *app.Context) error {
	position := []graphics.VertexAttribPointer{graphics.DefaultVertexAttribPointer()}
	t.left = graphics.CreateVertexArray(ctx.GL, []float32{
		-0.6, -0.5, 0.0,
		0.4, -0.5, 0.0,
		-0.1, 0.5, 0.0,
	}, position)
	t.right = graphics.CreateVertexArray(ctx.GL, []float32{
		0.1, 0.5, 0.0,
		0.6, -0.5, 0.0,
		1.0, 0.5, 0.0,
	}, position)

	t.program = graphics.ProgramSource{Vertex: "hello_triangle.vert", Fragment: "hello_triangle.frag"}
	return t.program.Build(ctx.GL, ctx.Assets)
}

func (t *twoArrays) Render(ctx *app.Context) {
	ctx.GL.ClearColor(0.6, 0.6, 0.6, 1.0)
	ctx.GL.Clear(gl.COLOR_BUFFER_BIT)
	t.program.Program.Use()
	t.left.DrawArrays(gl.TRIANGLES, 0, 3)
	t.right.DrawArrays(gl.TRIANGLES, 0, 3)
}

func (t *twoArrays) Reload(ctx *app.Context) error {
	return app.ReloadPrograms(ctx, &t.program)
}

func (t *twoArrays) Cleanup() {
	t.left.Delete()
	t.right.Delete()
	t.program.Program.Delete()
}

func main() {
	window.Main(&twoArrays{})
}
