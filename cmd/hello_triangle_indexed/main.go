// Command hello_triangle_indexed draws a rectangle from four vertices and
// six indices.
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

type helloTriangleIndexed struct {
	app.Base
	vao     *graphics.VertexArrayObject
	program graphics.ProgramSource
}

func (*helloTriangleIndexed) Title() string { return "Hello Triangle Indexed" }

func (h *helloTriangleIndexed) Initialize(ctx *app.Context) error {
	vertices := []float32{
		0.5, 0.5, 0.0,
		0.5, -0.5, 0.0,
		-0.5, -0.5, 0.0,
		-0.5, 0.5, 0.0,
	}
	indices := []uint32{0, 1, 3, 1, 2, 3}
	h.vao = graphics.CreateIndexedVertexArray(ctx.GL, vertices,
		[]graphics.VertexAttribPointer{graphics.DefaultVertexAttribPointer()}, indices)

	h.program = graphics.ProgramSource{Vertex: "hello_triangle.vert", Fragment: "hello_triangle.frag"}
	return h.program.Build(ctx.GL, ctx.Assets)
}

func (h *helloTriangleIndexed) Render(ctx *app.Context) {
	ctx.GL.ClearColor(0.6, 0.6, 0.6, 1.0)
	ctx.GL.Clear(gl.COLOR_BUFFER_BIT)
	h.program.Program.Use()
	h.vao.DrawElements(gl.TRIANGLES)
}

func (h *helloTriangleIndexed) Reload(ctx *app.Context) error {
	return app.ReloadPrograms(ctx, &h.program)
}

func (h *helloTriangleIndexed) Cleanup() {
	h.vao.Delete()
	h.program.Program.Delete()
}

func main() {
	window.Main(&helloTriangleIndexed{})
}
