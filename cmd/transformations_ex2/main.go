// Command transformations_ex2 draws one container orbiting the center while
// spinning, and a second one in the top-left corner that pulses in size.
package main

import (
	"runtime"
	"unsafe"

	"learngl/internal/app"
	"learngl/internal/graphics"
	"learngl/internal/window"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	runtime.LockOSThread()
}

type vertex struct {
	Position [3]float32
	Tex      [2]float32
}

type transformations struct {
	app.Base
	vao             *graphics.VertexArrayObject
	container, face *graphics.Texture2D
	program         graphics.ProgramSource
}

func (*transformations) Title() string { return "Transformations Exercise 2" }

func (t *transformations) Initialize(ctx *app.Context) error {
	vertices := []vertex{
		{Position: [3]float32{0.5, 0.5, 0.0}, Tex: [2]float32{1.0, 1.0}},
		{Position: [3]float32{0.5, -0.5, 0.0}, Tex: [2]float32{1.0, 0.0}},
		{Position: [3]float32{-0.5, -0.5, 0.0}, Tex: [2]float32{0.0, 0.0}},
		{Position: [3]float32{-0.5, 0.5, 0.0}, Tex: [2]float32{0.0, 1.0}},
	}
	indices := []uint32{0, 1, 3, 1, 2, 3}
	stride := int32(unsafe.Sizeof(vertex{}))
	t.vao = graphics.CreateIndexedVertexArray(ctx.GL, vertices, []graphics.VertexAttribPointer{
		{Index: 0, Size: 3, Type: gl.FLOAT, Stride: stride, Offset: unsafe.Offsetof(vertex{}.Position)},
		{Index: 1, Size: 2, Type: gl.FLOAT, Stride: stride, Offset: unsafe.Offsetof(vertex{}.Tex)},
	}, indices)

	img, err := ctx.Assets.Image("container.png", false)
	if err != nil {
		return err
	}
	t.container = graphics.Create2D(ctx.GL, graphics.Texture2DDescriptor{Unit: gl.TEXTURE0, Image: img})

	img, err = ctx.Assets.Image("awesomeface.png", true)
	if err != nil {
		return err
	}
	t.face = graphics.Create2D(ctx.GL, graphics.Texture2DDescriptor{Unit: gl.TEXTURE1, Image: img})

	t.program = graphics.ProgramSource{Vertex: "transformations.vert", Fragment: "textures_multi.frag"}
	return t.program.Build(ctx.GL, ctx.Assets)
}

func (t *transformations) Render(ctx *app.Context) {
	elapsed := ctx.Time()

	ctx.GL.ClearColor(0.6, 0.6, 0.6, 1.0)
	ctx.GL.Clear(gl.COLOR_BUFFER_BIT)

	p := t.program.Program
	p.Use()
	p.SetInt("texture1", t.container.UnitIndex())
	p.SetInt("texture2", t.face.UnitIndex())
	t.container.Bind()
	t.face.Bind()

	// spin in place, then orbit the center of the view
	orbit := mgl32.HomogRotate3DZ(elapsed * math32.Pi / 4).
		Mul4(mgl32.Translate3D(0.5, 0, 0)).
		Mul4(mgl32.HomogRotate3DZ(elapsed * math32.Pi))
	p.SetMatrix4("transform", orbit)
	t.vao.DrawElements(gl.TRIANGLES)

	scale := 0.5 * (1 + math32.Sin(elapsed*math32.Pi/4))
	pulse := mgl32.Translate3D(-0.5, 0.5, 0).Mul4(mgl32.Scale3D(scale, scale, scale))
	p.SetMatrix4("transform", pulse)
	t.vao.DrawElements(gl.TRIANGLES)
}

func (t *transformations) Reload(ctx *app.Context) error {
	return app.ReloadPrograms(ctx, &t.program)
}

func (t *transformations) Cleanup() {
	t.vao.Delete()
	t.container.Delete()
	t.face.Delete()
	t.program.Program.Delete()
}

func main() {
	window.Main(&transformations{})
}
