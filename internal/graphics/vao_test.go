package graphics

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"learngl/internal/glapi/glapitest"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type texturedVertex struct {
	Pos [3]float32
	Tex [2]float32
}

func texturedAttribs() []VertexAttribPointer {
	stride := int32(unsafe.Sizeof(texturedVertex{}))
	return []VertexAttribPointer{
		{Index: 0, Size: 3, Type: gl.FLOAT, Stride: stride, Offset: 0},
		{Index: 1, Size: 2, Type: gl.FLOAT, Normalized: true, Stride: stride, Offset: unsafe.Offsetof(texturedVertex{}.Tex)},
	}
}

var quad = []texturedVertex{
	{Pos: [3]float32{0.5, 0.5, 0}, Tex: [2]float32{1, 1}},
	{Pos: [3]float32{0.5, -0.5, 0}, Tex: [2]float32{1, 0}},
	{Pos: [3]float32{-0.5, -0.5, 0}, Tex: [2]float32{0, 0}},
	{Pos: [3]float32{-0.5, 0.5, 0}, Tex: [2]float32{0, 1}},
}

var quadIndices = []uint32{0, 1, 3, 1, 2, 3}

func TestCreateVertexArrayConfiguresEachDescriptor(t *testing.T) {
	api := glapitest.New()
	attribs := texturedAttribs()

	vao := CreateVertexArray(api, quad, attribs)
	require.NotZero(t, vao.ID)
	assert.Zero(t, vao.EBO)
	assert.Zero(t, vao.IndexCount())

	state := api.VertexArrays[vao.ID]
	require.NotNil(t, state)
	assert.Equal(t, len(attribs), state.EnabledSlots())
	for _, want := range attribs {
		got := state.Attribs[want.Index]
		require.NotNil(t, got, "slot %d", want.Index)
		assert.True(t, got.Enabled)
		assert.Equal(t, want.Size, got.Size)
		assert.Equal(t, want.Type, got.Type)
		assert.Equal(t, want.Normalized, got.Normalized)
		assert.Equal(t, want.Stride, got.Stride)
		assert.Equal(t, want.Offset, got.Offset)
		assert.Equal(t, vao.VBO, got.Buffer)
	}

	// the array and its buffer stay bound
	assert.Equal(t, vao.ID, api.CurrentVertexArray)
	assert.Equal(t, vao.VBO, api.ArrayBuffer)
	assert.Len(t, api.Buffers[vao.VBO], len(quad)*int(unsafe.Sizeof(texturedVertex{})))
	assert.Empty(t, api.Errors)
}

func TestCreateVertexArrayDefaultDescriptor(t *testing.T) {
	api := glapitest.New()
	vertices := []float32{-0.5, -0.5, 0, 0.5, -0.5, 0, 0, 0.5, 0}

	vao := CreateVertexArray(api, vertices, []VertexAttribPointer{DefaultVertexAttribPointer()})
	got := api.VertexArrays[vao.ID].Attribs[0]
	require.NotNil(t, got)
	assert.Equal(t, int32(3), got.Size)
	assert.Equal(t, uint32(gl.FLOAT), got.Type)
	assert.False(t, got.Normalized)
	assert.Zero(t, got.Stride)
	assert.Zero(t, got.Offset)

	data := api.Buffers[vao.VBO]
	require.Len(t, data, 9*4)
	assert.Equal(t, asBytes(vertices), data)
}

func TestCreateVertexArrayNoDescriptors(t *testing.T) {
	api := glapitest.New()
	vao := CreateVertexArray(api, []float32{0, 0, 0}, nil)
	assert.Equal(t, 0, api.VertexArrays[vao.ID].EnabledSlots())
}

func TestIndexedVertexArrayRoundTrip(t *testing.T) {
	api := glapitest.New()

	vao := CreateIndexedVertexArray(api, quad, texturedAttribs(), quadIndices)
	require.NotZero(t, vao.EBO)
	assert.Equal(t, int32(len(quadIndices)), vao.IndexCount())
	assert.Equal(t, vao.EBO, api.VertexArrays[vao.ID].ElementBuffer)

	// read the element buffer back through the bound array object
	vao.Bind()
	raw := make([]byte, 4*vao.IndexCount())
	api.GetBufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, raw)
	got := make([]uint32, vao.IndexCount())
	for i := range got {
		got[i] = binary.NativeEndian.Uint32(raw[i*4:])
	}
	assert.Equal(t, quadIndices, got)

	vao.DrawElements(gl.TRIANGLES)
	require.Len(t, api.Draws, 1)
	d := api.Draws[0]
	assert.True(t, d.Indexed)
	assert.Equal(t, int32(6), d.Count)
	assert.Equal(t, uint32(gl.UNSIGNED_INT), d.IndexType)
	assert.Equal(t, vao.ID, d.VertexArray)
	assert.Empty(t, api.Errors)
}

func TestVertexArrayDeleteReleasesEachObjectOnce(t *testing.T) {
	api := glapitest.New()

	plain := CreateVertexArray(api, quad, texturedAttribs())
	indexed := CreateIndexedVertexArray(api, quad, texturedAttribs(), quadIndices)
	ids := []uint32{plain.ID, plain.VBO, indexed.ID, indexed.VBO, indexed.EBO}
	assert.Equal(t, 2, api.Live(glapitest.KindVertexArray))
	assert.Equal(t, 3, api.Live(glapitest.KindBuffer))

	plain.Delete()
	indexed.Delete()
	plain.Delete()
	indexed.Delete()

	for _, id := range ids {
		assert.Equal(t, 1, api.Deleted[id], "object %d", id)
	}
	assert.Equal(t, 0, api.Live(glapitest.KindVertexArray))
	assert.Equal(t, 0, api.Live(glapitest.KindBuffer))
	assert.Empty(t, api.Errors)
}

func TestDrawArraysBindsFirst(t *testing.T) {
	api := glapitest.New()
	a := CreateVertexArray(api, quad[:3], texturedAttribs())
	b := CreateVertexArray(api, quad[1:], texturedAttribs())

	a.DrawArrays(gl.TRIANGLES, 0, 3)
	b.DrawArrays(gl.TRIANGLES, 0, 3)

	require.Len(t, api.Draws, 2)
	assert.Equal(t, a.ID, api.Draws[0].VertexArray)
	assert.Equal(t, b.ID, api.Draws[1].VertexArray)
	assert.False(t, api.Draws[0].Indexed)
}
