// Command coordinate_systems draws ten textured cubes through a perspective
// camera. The window can be resized; the projection follows its aspect.
package main

import (
	"runtime"

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

// position xyz, texture uv
var cube = []float32{
	// front
	-0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0,
	// right
	0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 1.0,
	// back
	0.5, -0.5, -0.5, 0.0, 0.0,
	-0.5, -0.5, -0.5, 1.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 1.0,
	// left
	-0.5, -0.5, -0.5, 0.0, 0.0,
	-0.5, -0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, 0.5, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
	// top
	-0.5, 0.5, 0.5, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
	// bottom
	-0.5, -0.5, -0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 1.0,
}

var cubeIndices = []uint32{
	0, 1, 2, 0, 2, 3,
	4, 5, 6, 4, 6, 7,
	8, 9, 10, 8, 10, 11,
	12, 13, 14, 12, 14, 15,
	16, 17, 18, 16, 18, 19,
	20, 21, 22, 20, 22, 23,
}

var cubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

var spinAxis = mgl32.Vec3{1.0, 0.3, 0.5}

type coordinateSystems struct {
	app.Base
	vao             *graphics.VertexArrayObject
	container, face *graphics.Texture2D
	program         graphics.ProgramSource
	camera          *graphics.Camera
}

func (*coordinateSystems) Title() string     { return "Coordinate Systems" }
func (*coordinateSystems) IsResizable() bool { return true }

func (c *coordinateSystems) Initialize(ctx *app.Context) error {
	const stride = 5 * 4
	c.vao = graphics.CreateIndexedVertexArray(ctx.GL, cube, []graphics.VertexAttribPointer{
		{Index: 0, Size: 3, Type: gl.FLOAT, Stride: stride, Offset: 0},
		{Index: 1, Size: 2, Type: gl.FLOAT, Stride: stride, Offset: 3 * 4},
	}, cubeIndices)

	img, err := ctx.Assets.Image("container.png", false)
	if err != nil {
		return err
	}
	c.container = graphics.Create2D(ctx.GL, graphics.Texture2DDescriptor{Unit: gl.TEXTURE0, Image: img})

	img, err = ctx.Assets.Image("awesomeface.png", true)
	if err != nil {
		return err
	}
	c.face = graphics.Create2D(ctx.GL, graphics.Texture2DDescriptor{Unit: gl.TEXTURE1, Image: img})

	c.camera = graphics.NewCamera(ctx.Width, ctx.Height)

	c.program = graphics.ProgramSource{Vertex: "coordinate_systems.vert", Fragment: "textures_multi.frag"}
	return c.program.Build(ctx.GL, ctx.Assets)
}

func (c *coordinateSystems) OnResize(width, height int) {
	c.camera.SetViewport(width, height)
}

func (c *coordinateSystems) Render(ctx *app.Context) {
	ctx.GL.Enable(gl.DEPTH_TEST)
	ctx.GL.ClearColor(0.6, 0.6, 0.6, 1.0)
	ctx.GL.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p := c.program.Program
	p.Use()
	p.SetInt("texture1", c.container.UnitIndex())
	p.SetInt("texture2", c.face.UnitIndex())
	c.container.Bind()
	c.face.Bind()

	p.SetMatrix4("view", c.camera.ViewMatrix())
	p.SetMatrix4("projection", c.camera.ProjectionMatrix())

	axis := spinAxis.Normalize()
	speed := spinAxis.Len()
	for i, pos := range cubePositions {
		angle := mgl32.DegToRad(20 * float32(i))
		if i%3 == 0 {
			angle = ctx.Time() * math32.Pi / 4
		}
		model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).
			Mul4(mgl32.HomogRotate3D(angle*speed, axis))
		p.SetMatrix4("model", model)
		c.vao.DrawElements(gl.TRIANGLES)
	}
	// the stats overlay draws without depth testing
	ctx.GL.Disable(gl.DEPTH_TEST)
}

func (c *coordinateSystems) Reload(ctx *app.Context) error {
	return app.ReloadPrograms(ctx, &c.program)
}

func (c *coordinateSystems) Cleanup() {
	c.vao.Delete()
	c.container.Delete()
	c.face.Delete()
	c.program.Program.Delete()
}

func main() {
	window.Main(&coordinateSystems{})
}
