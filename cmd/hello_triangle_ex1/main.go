// Command hello_triangle_ex1 draws two triangles next to each other from a
// single vertex buffer.
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

type twoTriangles struct {
	app.Base
	vao     *graphics.VertexArrayObject
	program graphics.ProgramSource
}

func (*twoTriangles) Title() string { return "Hello Triangle Exercise 1" }

func (t *twoTriangles) Initialize(ctx *app.Context) error {
	vertices := []float32{
		-0.6, -0.5, 0.0,
		0.4, -0.5, 0.0,
		-0.1, 0.5, 0.0,

		0.1, 0.5, 0.0,
		0.6, -0.5, 0.0,
		1.0, 0.5, 0.0,
	}
	t.vao = graphics.CreateVertexArray(ctx.GL, vertices,
		[]graphics.VertexAttribPointer{graphics.DefaultVertexAttribPointer()})

	t.program = graphics.ProgramSource{Vertex: "hello_triangle.vert", Fragment: "hello_triangle.frag"}
	return t.program.Build(ctx.GL, ctx.Assets)
}

func (t *twoTriangles) Render(ctx *app.Context) {
	ctx.GL.ClearColor(0.6, 0.6, 0.6, 1.0)
	ctx.GL.Clear(gl.COLOR_BUFFER_BIT)
	t.program.Program.Use()
	t.vao.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (t *twoTriangles) Reload(ctx *app.Context) error {
	return app.ReloadPrograms(ctx, &t.program)
}

func (t *twoTriangles) Cleanup() {
	t.vao.Delete()
	t.program.Program.Delete()
}

func main() {
	window.Main(&twoTriangles{})
}
