// Command shaders_ex3 colors a triangle with its own vertex positions.
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

type positionColor struct {
	app.Base
	vao     *graphics.VertexArrayObject
	program graphics.ProgramSource
}

func (*positionColor) Title() string { return "Shaders Exercise 3" }

func (p *positionColor) Initialize(ctx *app.Context) error {
	vertices := [][3]float32{
		{0.5, -0.5, 0.0},
		{-0.5, -0.5, 0.0},
		{0.0, 0.5, 0.0},
	}
	p.vao = graphics.CreateVertexArray(ctx.GL, vertices,
		[]graphics.VertexAttribPointer{graphics.DefaultVertexAttribPointer()})

	p.program = graphics.ProgramSource{Vertex: "shaders_ex3.vert", Fragment: "shaders_ex3.frag"}
	return p.program.Build(ctx.GL, ctx.Assets)
}

func (p *positionColor) Render(ctx *app.Context) {
	ctx.GL.ClearColor(0.6, 0.6, 0.6, 1.0)
	ctx.GL.Clear(gl.COLOR_BUFFER_BIT)
	p.program.Program.Use()
	p.vao.DrawArrays(gl.TRIANGLES, 0, 3)
}

func (p *positionColor) Reload(ctx *app.Context) error {
	return app.ReloadPrograms(ctx, &p.program)
}

func (p *positionColor) Cleanup() {
	p.vao.Delete()
	p.program.Program.Delete()
}

func main() {
	window.Main(&positionColor{})
}
