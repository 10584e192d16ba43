// Command shaders_ex1 draws an upside-down triangle with a color per
// vertex.
package main

import (
	"runtime"
	"unsafe"

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
	Color    [3]float32
}

type upsideDown struct {
	app.Base
	vao     *graphics.VertexArrayObject
	program graphics.ProgramSource
}

func (*upsideDown) Title() string { return "Shaders Exercise 1" }

func (u *upsideDown) Initialize(ctx *app.Context) error {
	vertices := []vertex{
		{Position: [3]float32{0.5, -0.5, 0.0}, Color: [3]float32{1.0, 0.0, 0.0}},
		{Position: [3]float32{-0.5, -0.5, 0.0}, Color: [3]float32{0.0, 1.0, 0.0}},
		{Position: [3]float32{0.0, 0.5, 0.0}, Color: [3]float32{0.0, 0.0, 1.0}},
	}
	stride := int32(unsafe.Sizeof(vertex{}))
	u.vao = graphics.CreateVertexArray(ctx.GL, vertices, []graphics.VertexAttribPointer{
		{Index: 0, Size: 3, Type: gl.FLOAT, Stride: stride, Offset: unsafe.Offsetof(vertex{}.Position)},
		{Index: 1, Size: 3, Type: gl.FLOAT, Stride: stride, Offset: unsafe.Offsetof(vertex{}.Color)},
	})

	u.program = graphics.ProgramSource{Vertex: "shaders_ex1.vert", Fragment: "shaders.frag"}
	return u.program.Build(ctx.GL, ctx.Assets)
}

func (u *upsideDown) Render(ctx *app.Context) {
	ctx.GL.ClearColor(0.6, 0.6, 0.6, 1.0)
	ctx.GL.Clear(gl.COLOR_BUFFER_BIT)
	u.program.Program.Use()
	u.vao.DrawArrays(gl.TRIANGLES, 0, 3)
}

func (u *upsideDown) Reload(ctx *app.Context) error {
	return app.ReloadPrograms(ctx, &u.program)
}

func (u *upsideDown) Cleanup() {
	u.vao.Delete()
	u.program.Program.Delete()
}

func main() {
	window.Main(&upsideDown{})
}
