package glapi

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Native forwards every call to the go-gl bindings. It must only be used
// on the thread that owns the current context.
type Native struct{}

// Load resolves the OpenGL entry points for the current context. A context
// must already be current on the calling thread.
func Load() (*Native, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("could not load OpenGL entry points: %w", err)
	}
	return &Native{}, nil
}

func (Native) CreateShader(stage uint32) uint32 { return gl.CreateShader(stage) }

func (Native) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Native) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Native) GetShaderiv(shader uint32, pname uint32, params *int32) {
	gl.GetShaderiv(shader, pname, params)
}

func (Native) GetShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Native) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Native) CreateProgram() uint32 { return gl.CreateProgram() }

func (Native) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (Native) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Native) GetProgramiv(program uint32, pname uint32, params *int32) {
	gl.GetProgramiv(program, pname, params)
}

func (Native) GetProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (Native) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Native) UseProgram(program uint32) { gl.UseProgram(program) }

func (Native) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Native) Uniform1i(location int32, v0 int32) { gl.Uniform1i(location, v0) }

func (Native) Uniform1f(location int32, v0 float32) { gl.Uniform1f(location, v0) }

func (Native) Uniform2f(location int32, v0, v1 float32) { gl.Uniform2f(location, v0, v1) }

func (Native) Uniform3f(location int32, v0, v1, v2 float32) { gl.Uniform3f(location, v0, v1, v2) }

func (Native) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (Native) UniformMatrix4fv(location int32, transpose bool, value []float32) {
	if len(value) < 16 {
		return
	}
	gl.UniformMatrix4fv(location, int32(len(value)/16), transpose, &value[0])
}

func (Native) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Native) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (Native) DeleteVertexArray(array uint32) { gl.DeleteVertexArrays(1, &array) }

func (Native) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (Native) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (Native) BufferData(target uint32, data []byte, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data), gl.Ptr(data), usage)
}

func (Native) GetBufferSubData(target uint32, offset int, dst []byte) {
	if len(dst) == 0 {
		return
	}
	gl.GetBufferSubData(target, offset, len(dst), gl.Ptr(dst))
}

func (Native) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (Native) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Native) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (Native) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (Native) ActiveTexture(unit uint32) { gl.ActiveTexture(unit) }

func (Native) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }

func (Native) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (Native) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte) {
	if len(pixels) == 0 {
		gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, nil)
		return
	}
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, gl.Ptr(pixels))
}

func (Native) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

func (Native) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (Native) ClearColor(red, green, blue, alpha float32) { gl.ClearColor(red, green, blue, alpha) }

func (Native) Clear(mask uint32) { gl.Clear(mask) }

func (Native) Enable(capability uint32) { gl.Enable(capability) }

func (Native) Disable(capability uint32) { gl.Disable(capability) }

func (Native) BlendFunc(sfactor, dfactor uint32) { gl.BlendFunc(sfactor, dfactor) }

func (Native) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (Native) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElementsWithOffset(mode, count, xtype, offset)
}

func (Native) ReadPixels(x, y, width, height int32, dst []byte) {
	if len(dst) == 0 {
		return
	}
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(dst))
}

func (Native) GetString(name uint32) string { return gl.GoStr(gl.GetString(name)) }
