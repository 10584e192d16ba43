// Command hello_triangle draws one orange triangle.
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

type vertex struct {
	Position [3]float32
}

type helloTriangle struct {
	app.Base
	vao     *graphics.VertexArrayObject
	program graphics.ProgramSource
}

func (*helloTriangle) Title() string { return "Hello Triangle" }

func (h *helloTriangle) Initialize(ctx *app.Context) error {
	vertices := []vertex{
		{[3]float32{-0.5, -0.5, 0.0}},
		{[3]float32{0.5, -0.5, 0.0}},
		{[3]float32{0.0, 0.5, 0.5}},
	}
	h.vao = graphics.CreateVertexArray(ctx.GL, vertices,
		[]graphics.VertexAttribPointer{graphics.DefaultVertexAttribPointer()})

	h.program = graphics.ProgramSource{Vertex: "hello_triangle.vert", Fragment: "hello_triangle.frag"}
	return h.program.Build(ctx.GL, ctx.Assets)
}

func (h *helloTriangle) Render(ctx *app.Context) {
	ctx.GL.ClearColor(0.6, 0.6, 0.6, 1.0)
	ctx.GL.Clear(gl.COLOR_BUFFER_BIT)
	h.program.Program.Use()
	h.vao.DrawArrays(gl.TRIANGLES, 0, 3)
}

func (h *helloTriangle) Reload(ctx *app.Context) error {
	return app.ReloadPrograms(ctx, &h.program)
}

func (h *helloTriangle) Cleanup() {
	h.vao.Delete()
	h.program.Program.Delete()
}

func main() {
	window.Main(&helloTriangle{})
}
