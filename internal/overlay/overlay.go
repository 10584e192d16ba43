// Package overlay draws a small block of text (window title and frame rate)
// in the top-left corner of the framebuffer.
package overlay

import (
	"image"
	"image/color"
	"strings"

	"learngl/internal/glapi"
	"learngl/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	padding = 4
	margin  = 8
	// high unit so demo textures on the low units stay bound
	textUnit = gl.TEXTURE15
)

var background = color.RGBA{A: 160}

type vertex struct {
	X, Y float32
	U, V float32
}

var quad = []vertex{
	{0, 0, 0, 0},
	{1, 0, 1, 0},
	{1, 1, 1, 1},
	{0, 1, 0, 1},
}

var quadIndices = []uint32{0, 1, 2, 2, 3, 0}

// Overlay owns the program, quad and text texture it draws with.
type Overlay struct {
	api     glapi.API
	program *graphics.ShaderProgram
	quad    *graphics.VertexArrayObject
	tex     *graphics.Texture2D

	text          string
	width, height int
}

// New builds the overlay program from overlay.vert and overlay.frag.
func New(api glapi.API, r graphics.SourceReader) (*Overlay, error) {
	program, err := graphics.LoadProgram(api, r, "overlay.vert", "overlay.frag")
	if err != nil {
		return nil, err
	}
	attribs := []graphics.VertexAttribPointer{
		{Index: 0, Size: 2, Type: gl.FLOAT, Stride: 16, Offset: 0},
		{Index: 1, Size: 2, Type: gl.FLOAT, Stride: 16, Offset: 8},
	}
	return &Overlay{
		api:     api,
		program: program,
		quad:    graphics.CreateIndexedVertexArray(api, quad, attribs, quadIndices),
	}, nil
}

// SetText replaces the displayed lines. The texture is rebuilt only when
// the text actually changes.
func (o *Overlay) SetText(lines ...string) {
	text := strings.Join(lines, "\n")
	if text == o.text && o.tex != nil {
		return
	}
	img := Rasterize(lines)
	o.tex.Delete()
	o.tex = graphics.Create2D(o.api, graphics.Texture2DDescriptor{
		Unit:  textUnit,
		Image: img,
		Params: &graphics.Texture2DParams{
			WrapS:     gl.CLAMP_TO_EDGE,
			WrapT:     gl.CLAMP_TO_EDGE,
			MinFilter: gl.NEAREST,
			MagFilter: gl.NEAREST,
		},
	})
	o.text = text
	o.width, o.height = img.Rect.Dx(), img.Rect.Dy()
}

// Text is the text currently shown.
func (o *Overlay) Text() string {
	return o.text
}

// Render draws the text over whatever is in the framebuffer. It changes
// the current program, vertex array and blend state, and leaves TEXTURE0
// active.
func (o *Overlay) Render(viewportWidth, viewportHeight int) {
	if o.tex == nil || viewportWidth == 0 || viewportHeight == 0 {
		return
	}
	o.api.Enable(gl.BLEND)
	// text pixels are premultiplied
	o.api.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	o.program.Use()
	o.tex.Bind()
	o.program.SetInt("text", o.tex.UnitIndex())
	o.program.SetVector4("rect", margin, margin, float32(o.width), float32(o.height))
	o.program.SetVector2("viewport", float32(viewportWidth), float32(viewportHeight))
	o.quad.DrawElements(gl.TRIANGLES)

	o.api.Disable(gl.BLEND)
	o.api.ActiveTexture(gl.TEXTURE0)
}

// Delete releases every GL object the overlay created.
func (o *Overlay) Delete() {
	o.tex.Delete()
	o.quad.Delete()
	o.program.Delete()
}

// Rasterize draws lines in white 7x13 text on a translucent black box.
func Rasterize(lines []string) *image.RGBA {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	n := len(lines)
	if n == 0 {
		n = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width+2*padding, n*lineHeight+2*padding))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for i, line := range lines {
		d.Dot = fixed.P(padding, padding+ascent+i*lineHeight)
		d.DrawString(line)
	}
	return img
}
