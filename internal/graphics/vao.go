package graphics

import (
	"unsafe"

	"learngl/internal/glapi"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexAttribPointer describes how one shader input reads the vertex
// buffer. Stride and Offset are in bytes.
type VertexAttribPointer struct {
	Index      uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
}

// DefaultVertexAttribPointer is three tightly packed floats at location 0.
func DefaultVertexAttribPointer() VertexAttribPointer {
	return VertexAttribPointer{Index: 0, Size: 3, Type: gl.FLOAT}
}

// VertexArrayObject owns a vertex array together with its vertex buffer and
// optional index buffer. All three are released by Delete.
type VertexArrayObject struct {
	ID  uint32
	VBO uint32
	EBO uint32

	indexCount int32
	api        glapi.API
}

// CreateVertexArray uploads vertices to a new buffer and configures one
// attribute per descriptor. V must not contain pointers; its in-memory
// layout is what the descriptors describe. Mismatched descriptors are not
// detected.
//
// On return the new array object and its vertex buffer are bound.
func CreateVertexArray[V any](api glapi.API, vertices []V, attribs []VertexAttribPointer) *VertexArrayObject {
	vao := &VertexArrayObject{api: api}
	vao.ID = api.GenVertexArray()
	api.BindVertexArray(vao.ID)

	vao.VBO = createBuffer(api, gl.ARRAY_BUFFER, asBytes(vertices))

	for _, a := range attribs {
		api.EnableVertexAttribArray(a.Index)
		api.VertexAttribPointer(a.Index, a.Size, a.Type, a.Normalized, a.Stride, a.Offset)
	}
	return vao
}

// CreateIndexedVertexArray is CreateVertexArray plus an index buffer. The
// index buffer is bound while the array object is bound, so the array
// records it and DrawElements needs no further binding.
func CreateIndexedVertexArray[V any](api glapi.API, vertices []V, attribs []VertexAttribPointer, indices []uint32) *VertexArrayObject {
	vao := CreateVertexArray(api, vertices, attribs)
	vao.EBO = createBuffer(api, gl.ELEMENT_ARRAY_BUFFER, asBytes(indices))
	vao.indexCount = int32(len(indices))
	return vao
}

func createBuffer(api glapi.API, target uint32, data []byte) uint32 {
	buf := api.GenBuffer()
	api.BindBuffer(target, buf)
	api.BufferData(target, data, gl.STATIC_DRAW)
	return buf
}

func asBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}

// IndexCount is the number of indices uploaded, 0 for non-indexed arrays.
func (v *VertexArrayObject) IndexCount() int32 {
	return v.indexCount
}

// Bind makes v the current vertex array.
func (v *VertexArrayObject) Bind() {
	v.api.BindVertexArray(v.ID)
}

// DrawArrays binds v and draws count vertices starting at first.
func (v *VertexArrayObject) DrawArrays(mode uint32, first, count int32) {
	v.api.BindVertexArray(v.ID)
	v.api.DrawArrays(mode, first, count)
}

// DrawElements binds v and draws every uploaded index.
func (v *VertexArrayObject) DrawElements(mode uint32) {
	v.api.BindVertexArray(v.ID)
	v.api.DrawElements(mode, v.indexCount, gl.UNSIGNED_INT, 0)
}

// Delete releases the array, the vertex buffer and the index buffer, each
// once. Calling it again is a no-op.
func (v *VertexArrayObject) Delete() {
	if v == nil || v.ID == 0 {
		return
	}
	logRelease("vao", v.ID)
	v.api.DeleteVertexArray(v.ID)
	v.ID = 0

	if v.VBO != 0 {
		logRelease("vbo", v.VBO)
		v.api.DeleteBuffer(v.VBO)
		v.VBO = 0
	}
	if v.EBO != 0 {
		logRelease("ebo", v.EBO)
		v.api.DeleteBuffer(v.EBO)
		v.EBO = 0
	}
	v.indexCount = 0
}
