// Command textures_ex2 shows four smileys on one quad by running the
// texture coordinates to 2 and letting the wrap mode repeat the image.
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
	Tex      [2]float32
}

type fourFaces struct {
	app.Base
	vao     *graphics.VertexArrayObject
	face    *graphics.Texture2D
	program graphics.ProgramSource
}

func (*fourFaces) Title() string { return "Textures Exercise 2" }

func (f *fourFaces) Initialize(ctx *app.Context) error {
	vertices := []vertex{
		{[3]float32{0.5, 0.5, 0.0}, [3]float32{1.0, 0.0, 0.0}, [2]float32{2.0, 2.0}},
		{[3]float32{0.5, -0.5, 0.0}, [3]float32{0.0, 1.0, 0.0}, [2]float32{2.0, 0.0}},
		{[3]float32{-0.5, -0.5, 0.0}, [3]float32{0.0, 0.0, 1.0}, [2]float32{0.0, 0.0}},
		{[3]float32{-0.5, 0.5, 0.0}, [3]float32{1.0, 1.0, 0.0}, [2]float32{0.0, 2.0}},
	}
	indices := []uint32{0, 1, 3, 1, 2, 3}
	stride := int32(unsafe.Sizeof(vertex{}))
	f.vao = graphics.CreateIndexedVertexArray(ctx.GL, vertices, []graphics.VertexAttribPointer{
		{Index: 0, Size: 3, Type: gl.FLOAT, Stride: stride, Offset: unsafe.Offsetof(vertex{}.Position)},
		{Index: 1, Size: 3, Type: gl.FLOAT, Stride: stride, Offset: unsafe.Offsetof(vertex{}.Color)},
		{Index: 2, Size: 2, Type: gl.FLOAT, Stride: stride, Offset: unsafe.Offsetof(vertex{}.Tex)},
	}, indices)

	img, err := ctx.Assets.Image("awesomeface.png", true)
	if err != nil {
		return err
	}
	// wrap stays REPEAT; only magnification is overridden
	f.face = graphics.Create2D(ctx.GL, graphics.Texture2DDescriptor{
		Unit:   gl.TEXTURE0,
		Image:  img,
		Params: &graphics.Texture2DParams{MagFilter: gl.NEAREST},
	})

	f.program = graphics.ProgramSource{Vertex: "textures.vert", Fragment: "textures.frag"}
	return f.program.Build(ctx.GL, ctx.Assets)
}

func (f *fourFaces) Render(ctx *app.Context) {
	ctx.GL.ClearColor(0.6, 0.6, 0.6, 1.0)
	ctx.GL.Clear(gl.COLOR_BUFFER_BIT)
	f.program.Program.Use()
	f.program.Program.SetInt("ourTexture", f.face.UnitIndex())
	f.face.Bind()
	f.vao.DrawElements(gl.TRIANGLES)
}

func (f *fourFaces) Reload(ctx *app.Context) error {
	return app.ReloadPrograms(ctx, &f.program)
}

func (f *fourFaces) Cleanup() {
	f.vao.Delete()
	f.face.Delete()
	f.program.Program.Delete()
}

func main() {
	window.Main(&fourFaces{})
}
