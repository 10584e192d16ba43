package graphics

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"learngl/internal/glapi/glapitest"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				img.Set(x, y, color.RGBA{0, 0, 0, 255})
			}
		}
	}
	return img
}

func TestCreate2DDefaults(t *testing.T) {
	api := glapitest.New()
	img := checker(4, 2)

	tex := Create2D(api, Texture2DDescriptor{Unit: gl.TEXTURE0, Image: img})
	require.NotZero(t, tex.ID)
	assert.Equal(t, uint32(gl.TEXTURE0), tex.Unit)
	assert.Equal(t, int32(0), tex.UnitIndex())

	state := api.Textures[tex.ID]
	assert.Equal(t, int32(gl.REPEAT), state.Params[gl.TEXTURE_WRAP_S])
	assert.Equal(t, int32(gl.REPEAT), state.Params[gl.TEXTURE_WRAP_T])
	assert.Equal(t, int32(gl.LINEAR), state.Params[gl.TEXTURE_MIN_FILTER])
	assert.Equal(t, int32(gl.LINEAR), state.Params[gl.TEXTURE_MAG_FILTER])

	assert.Equal(t, int32(0), state.Level)
	assert.Equal(t, int32(gl.RGBA8), state.InternalFormat)
	assert.Equal(t, uint32(gl.RGBA), state.Format)
	assert.Equal(t, uint32(gl.UNSIGNED_BYTE), state.Type)
	assert.Equal(t, int32(4), state.Width)
	assert.Equal(t, int32(2), state.Height)
	assert.Equal(t, img.Pix, state.Pixels)
}

func TestCreate2DOverridesSubset(t *testing.T) {
	api := glapitest.New()

	tex := Create2D(api, Texture2DDescriptor{
		Unit:   gl.TEXTURE1,
		Image:  checker(2, 2),
		Params: &Texture2DParams{WrapT: gl.CLAMP_TO_EDGE, MagFilter: gl.NEAREST},
	})

	state := api.Textures[tex.ID]
	assert.Equal(t, int32(gl.REPEAT), state.Params[gl.TEXTURE_WRAP_S])
	assert.Equal(t, int32(gl.CLAMP_TO_EDGE), state.Params[gl.TEXTURE_WRAP_T])
	assert.Equal(t, int32(gl.LINEAR), state.Params[gl.TEXTURE_MIN_FILTER])
	assert.Equal(t, int32(gl.NEAREST), state.Params[gl.TEXTURE_MAG_FILTER])

	// upload leaves the unit active and the texture bound there
	assert.Equal(t, uint32(gl.TEXTURE1), api.ActiveUnit)
	assert.Equal(t, tex.ID, api.BoundTextures[gl.TEXTURE1])
	assert.Equal(t, int32(1), tex.UnitIndex())
}

func TestTextureBindAndDelete(t *testing.T) {
	api := glapitest.New()
	a := Create2D(api, Texture2DDescriptor{Unit: gl.TEXTURE0, Image: checker(1, 1)})
	b := Create2D(api, Texture2DDescriptor{Unit: gl.TEXTURE1, Image: checker(1, 1)})

	api.ActiveTexture(gl.TEXTURE5)
	a.Bind()
	assert.Equal(t, uint32(gl.TEXTURE0), api.ActiveUnit)
	assert.Equal(t, a.ID, api.BoundTextures[gl.TEXTURE0])
	assert.Equal(t, b.ID, api.BoundTextures[gl.TEXTURE1])

	id := a.ID
	a.Delete()
	a.Delete()
	b.Delete()
	assert.Equal(t, 1, api.Deleted[id])
	assert.Equal(t, 0, api.Live(glapitest.KindTexture))
	assert.Empty(t, api.Errors)
}

func TestDecodeRGBAFlip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	src.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	upright, err := DecodeRGBA(bytes.NewReader(buf.Bytes()), false)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, upright.RGBAAt(0, 0))

	flipped, err := DecodeRGBA(bytes.NewReader(buf.Bytes()), true)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, flipped.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, flipped.RGBAAt(0, 1))
	assert.Len(t, flipped.Pix, 8)
}

func TestDecodeRGBARejectsGarbage(t *testing.T) {
	_, err := DecodeRGBA(bytes.NewReader([]byte("not an image")), false)
	assert.Error(t, err)
}
