// Command hello_triangle_ex3 draws two triangles with two programs that
// share one vertex stage. The fragment stages come from one template with
// different colors.
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

const fragmentTemplate = "hello_triangle_ex3.frag.tmpl"

type twoPrograms struct {
	app.Base
	left, right  *graphics.VertexArrayObject
	orange, pink *graphics.ShaderProgram
}

func (*twoPrograms) Title() string { return "Hello Triangle Exercise 3" }

func (t *twoPrograms) Initialize(ctx *app.Context) error {
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

	vsSrc, err := ctx.Assets.ReadSource("hello_triangle.vert")
	if err != nil {
		return err
	}
	vs, err := graphics.Compile(ctx.GL, vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	defer vs.Delete()

	if t.orange, err = t.colored(ctx, vs, "1.0, 0.6, 0.2, 1.0"); err != nil {
		return err
	}
	t.pink, err = t.colored(ctx, vs, "1.0, 0.75, 0.8, 1.0")
	return err
}

// colored links vs with a fragment stage that outputs one constant color.
func (t *twoPrograms) colored(ctx *app.Context, vs *graphics.Shader, rgba string) (*graphics.ShaderProgram, error) {
	src, err := ctx.Assets.ReadTemplate(fragmentTemplate, map[string]string{"color": rgba})
	if err != nil {
		return nil, err
	}
	fs, err := graphics.Compile(ctx.GL, src, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer fs.Delete()
	return graphics.Link(ctx.GL, vs, fs)
}

func (t *twoPrograms) Render(ctx *app.Context) {
	ctx.GL.ClearColor(0.6, 0.6, 0.6, 1.0)
	ctx.GL.Clear(gl.COLOR_BUFFER_BIT)
	t.orange.Use()
	t.left.DrawArrays(gl.TRIANGLES, 0, 3)
	t.pink.Use()
	t.right.DrawArrays(gl.TRIANGLES, 0, 3)
}

func (t *twoPrograms) Cleanup() {
	t.left.Delete()
	t.right.Delete()
	t.orange.Delete()
	t.pink.Delete()
}

func main() {
	window.Main(&twoPrograms{})
}
