package graphics

import (
	"image"

	"learngl/internal/glapi"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture2DParams are the sampling parameters applied at creation. A zero
// field keeps the default for that parameter.
type Texture2DParams struct {
	WrapS     int32
	WrapT     int32
	MinFilter int32
	MagFilter int32
}

// DefaultTexture2DParams repeats on both axes and filters linearly.
func DefaultTexture2DParams() Texture2DParams {
	return Texture2DParams{
		WrapS:     gl.REPEAT,
		WrapT:     gl.REPEAT,
		MinFilter: gl.LINEAR,
		MagFilter: gl.LINEAR,
	}
}

func (p *Texture2DParams) withDefaults() Texture2DParams {
	out := DefaultTexture2DParams()
	if p == nil {
		return out
	}
	if p.WrapS != 0 {
		out.WrapS = p.WrapS
	}
	if p.WrapT != 0 {
		out.WrapT = p.WrapT
	}
	if p.MinFilter != 0 {
		out.MinFilter = p.MinFilter
	}
	if p.MagFilter != 0 {
		out.MagFilter = p.MagFilter
	}
	return out
}

// Texture2DDescriptor describes a texture to create. Unit is the texture
// unit enum (gl.TEXTURE0 + n). A nil Params uses the defaults.
type Texture2DDescriptor struct {
	Unit   uint32
	Image  *image.RGBA
	Params *Texture2DParams
}

// Texture2D owns one 2D texture and remembers its texture unit.
type Texture2D struct {
	ID   uint32
	Unit uint32
	api  glapi.API
}

// Create2D allocates a texture, uploads the whole image as RGBA8 mip level
// 0 and applies the sampling parameters. It activates desc.Unit and leaves
// the texture bound to TEXTURE_2D there; nothing is restored. The unit is
// not range checked.
func Create2D(api glapi.API, desc Texture2DDescriptor) *Texture2D {
	params := desc.Params.withDefaults()

	tex := &Texture2D{Unit: desc.Unit, api: api}
	tex.ID = api.GenTexture()
	api.ActiveTexture(desc.Unit)
	api.BindTexture(gl.TEXTURE_2D, tex.ID)

	api.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, params.WrapS)
	api.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, params.WrapT)
	api.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, params.MinFilter)
	api.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, params.MagFilter)

	var (
		w, h int32
		pix  []byte
	)
	if img := desc.Image; img != nil {
		size := img.Rect.Size()
		w, h = int32(size.X), int32(size.Y)
		pix = img.Pix
	}
	api.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, w, h, gl.RGBA, gl.UNSIGNED_BYTE, pix)

	return tex
}

// Bind activates the texture's unit and binds the texture there. Binding
// state is global, so call it before every draw that samples t.
func (t *Texture2D) Bind() {
	t.api.ActiveTexture(t.Unit)
	t.api.BindTexture(gl.TEXTURE_2D, t.ID)
}

// UnitIndex is the sampler value for the texture's unit (0 for TEXTURE0).
func (t *Texture2D) UnitIndex() int32 {
	return int32(t.Unit - gl.TEXTURE0)
}

// Delete releases the texture. Calling it again is a no-op.
func (t *Texture2D) Delete() {
	if t == nil || t.ID == 0 {
		return
	}
	logRelease("texture", t.ID)
	t.api.DeleteTexture(t.ID)
	t.ID = 0
}
