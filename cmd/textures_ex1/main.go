// Command textures_ex1 mixes the container and face textures on a quad,
// with the face mirrored horizontally in the fragment shader.
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
	Tex      [2]float32
}

type mirroredFace struct {
	app.Base
	vao             *graphics.VertexArrayObject
	container, face *graphics.Texture2D
	program         graphics.ProgramSource
}

func (*mirroredFace) Title() string { return "Textures Exercise 1" }

func (m *mirroredFace) Initialize(ctx *app.Context) error {
	vertices := []vertex{
		{Position: [3]float32{0.5, 0.5, 0.0}, Tex: [2]float32{1.0, 1.0}},
		{Position: [3]float32{0.5, -0.5, 0.0}, Tex: [2]float32{1.0, 0.0}},
		{Position: [3]float32{-0.5, -0.5, 0.0}, Tex: [2]float32{0.0, 0.0}},
		{Position: [3]float32{-0.5, 0.5, 0.0}, Tex: [2]float32{0.0, 1.0}},
	}
	indices := []uint32{0, 1, 3, 1, 2, 3}
	stride := int32(unsafe.Sizeof(vertex{}))
	m.vao = graphics.CreateIndexedVertexArray(ctx.GL, vertices, []graphics.VertexAttribPointer{
		{Index: 0, Size: 3, Type: gl.FLOAT, Stride: stride, Offset: unsafe.Offsetof(vertex{}.Position)},
		{Index: 1, Size: 2, Type: gl.FLOAT, Stride: stride, Offset: unsafe.Offsetof(vertex{}.Tex)},
	}, indices)

	img, err := ctx.Assets.Image("container.png", false)
	if err != nil {
		return err
	}
	m.container = graphics.Create2D(ctx.GL, graphics.Texture2DDescriptor{Unit: gl.TEXTURE0, Image: img})

	// image rows run top-down, GL texture rows bottom-up
	img, err = ctx.Assets.Image("awesomeface.png", true)
	if err != nil {
		return err
	}
	m.face = graphics.Create2D(ctx.GL, graphics.Texture2DDescriptor{Unit: gl.TEXTURE1, Image: img})

	m.program = graphics.ProgramSource{Vertex: "textures_multi.vert", Fragment: "textures_ex1.frag"}
	return m.program.Build(ctx.GL, ctx.Assets)
}

func (m *mirroredFace) Render(ctx *app.Context) {
	ctx.GL.ClearColor(0.6, 0.6, 0.6, 1.0)
	ctx.GL.Clear(gl.COLOR_BUFFER_BIT)

	p := m.program.Program
	p.Use()
	p.SetInt("texture1", m.container.UnitIndex())
	p.SetInt("texture2", m.face.UnitIndex())
	m.container.Bind()
	m.face.Bind()
	m.vao.DrawElements(gl.TRIANGLES)
}

func (m *mirroredFace) Reload(ctx *app.Context) error {
	return app.ReloadPrograms(ctx, &m.program)
}

func (m *mirroredFace) Cleanup() {
	m.vao.Delete()
	m.container.Delete()
	m.face.Delete()
	m.program.Program.Delete()
}

func main() {
	window.Main(&mirroredFace{})
}
