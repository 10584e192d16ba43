// Package glapitest provides an in-memory stand-in for glapi.API.
//
// Fake keeps enough OpenGL state to check what the graphics package asked
// the driver to do: live objects, bindings, attribute slots, buffer and
// texture contents, and every draw call. It never touches a real context.
package glapitest

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Kind of GL object tracked by the fake.
type Kind string

const (
	KindShader      Kind = "shader"
	KindProgram     Kind = "program"
	KindVertexArray Kind = "vertex array"
	KindBuffer      Kind = "buffer"
	KindTexture     Kind = "texture"
)

// Attrib is the state of one vertex attribute slot in a vertex array.
type Attrib struct {
	Enabled    bool
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Buffer     uint32
}

// VertexArray is the fake vertex array object state.
type VertexArray struct {
	Attribs       map[uint32]*Attrib
	ElementBuffer uint32
}

// EnabledSlots returns the number of enabled attribute slots.
func (v *VertexArray) EnabledSlots() int {
	n := 0
	for _, a := range v.Attribs {
		if a.Enabled {
			n++
		}
	}
	return n
}

// Texture is the fake 2D texture state.
type Texture struct {
	Params         map[uint32]int32
	Level          int32
	InternalFormat int32
	Width, Height  int32
	Format, Type   uint32
	Pixels         []byte
}

// Shader is the fake shader object state.
type Shader struct {
	Stage    uint32
	Source   string
	Compiled bool
	Log      string
}

// Program is the fake program object state.
type Program struct {
	Attached []uint32
	Linked   bool
	Log      string
	Uniforms map[string]int32
}

// Draw records one DrawArrays or DrawElements call.
type Draw struct {
	Mode        uint32
	First       int32
	Count       int32
	IndexType   uint32
	Offset      uintptr
	Indexed     bool
	Program     uint32
	VertexArray uint32
	Textures    map[uint32]uint32
}

// Fake implements glapi.API in memory.
type Fake struct {
	// CompileFails reports whether a stage source should fail to compile.
	// The default fails sources without a main function.
	CompileFails func(source string) bool
	// LinkFails reports whether linking should fail once both stages
	// compiled. The default never fails.
	LinkFails func(p *Program) bool

	nextID uint32
	live   map[uint32]Kind

	// Deleted counts delete calls per object, including repeated ones.
	Deleted map[uint32]int
	// Errors collects misuse the driver would report, like double deletes.
	Errors []string

	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program
	VertexArrays map[uint32]*VertexArray
	Buffers      map[uint32][]byte
	Textures     map[uint32]*Texture

	CurrentProgram     uint32
	CurrentVertexArray uint32
	ArrayBuffer        uint32
	ActiveUnit         uint32
	BoundTextures      map[uint32]uint32

	ClearColorValue [4]float32
	Clears          []uint32
	Enabled         map[uint32]bool
	ViewportRect    [4]int32
	Draws           []Draw
	UniformValues   map[int32][]float32
}

// New returns an empty fake with TEXTURE0 active.
func New() *Fake {
	return &Fake{
		live:          make(map[uint32]Kind),
		Deleted:       make(map[uint32]int),
		Shaders:       make(map[uint32]*Shader),
		Programs:      make(map[uint32]*Program),
		VertexArrays:  make(map[uint32]*VertexArray),
		Buffers:       make(map[uint32][]byte),
		Textures:      make(map[uint32]*Texture),
		ActiveUnit:    gl.TEXTURE0,
		BoundTextures: make(map[uint32]uint32),
		Enabled:       make(map[uint32]bool),
		UniformValues: make(map[int32][]float32),
	}
}

// Live returns how many objects of the given kind have not been deleted.
func (f *Fake) Live(kind Kind) int {
	n := 0
	for _, k := range f.live {
		if k == kind {
			n++
		}
	}
	return n
}

// IsLive reports whether id names an object that has not been deleted.
func (f *Fake) IsLive(id uint32) bool {
	_, ok := f.live[id]
	return ok
}

func (f *Fake) alloc(kind Kind) uint32 {
	f.nextID++
	f.live[f.nextID] = kind
	return f.nextID
}

func (f *Fake) release(id uint32, kind Kind) {
	if id == 0 {
		return
	}
	f.Deleted[id]++
	k, ok := f.live[id]
	if !ok {
		f.Errors = append(f.Errors, fmt.Sprintf("delete of dead %s %d", kind, id))
		return
	}
	if k != kind {
		f.Errors = append(f.Errors, fmt.Sprintf("delete of %s %d as %s", k, id, kind))
		return
	}
	delete(f.live, id)
}

func (f *Fake) elementTarget() uint32 {
	if va := f.VertexArrays[f.CurrentVertexArray]; va != nil {
		return va.ElementBuffer
	}
	return 0
}

func (f *Fake) boundBuffer(target uint32) uint32 {
	switch target {
	case gl.ARRAY_BUFFER:
		return f.ArrayBuffer
	case gl.ELEMENT_ARRAY_BUFFER:
		return f.elementTarget()
	}
	return 0
}

func (f *Fake) CreateShader(stage uint32) uint32 {
	id := f.alloc(KindShader)
	f.Shaders[id] = &Shader{Stage: stage}
	return id
}

func (f *Fake) ShaderSource(shader uint32, source string) {
	if s := f.Shaders[shader]; s != nil {
		s.Source = source
	}
}

func (f *Fake) CompileShader(shader uint32) {
	s := f.Shaders[shader]
	if s == nil {
		return
	}
	fails := f.CompileFails
	if fails == nil {
		fails = func(src string) bool { return !strings.Contains(src, "void main") }
	}
	if fails(s.Source) {
		s.Compiled = false
		s.Log = "0:1(1): error: syntax error, unexpected end of file\n"
		return
	}
	s.Compiled = true
	s.Log = ""
}

func (f *Fake) GetShaderiv(shader uint32, pname uint32, params *int32) {
	s := f.Shaders[shader]
	if s == nil {
		return
	}
	switch pname {
	case gl.COMPILE_STATUS:
		*params = gl.FALSE
		if s.Compiled {
			*params = gl.TRUE
		}
	case gl.INFO_LOG_LENGTH:
		*params = int32(len(s.Log))
	case gl.SHADER_TYPE:
		*params = int32(s.Stage)
	}
}

func (f *Fake) GetShaderInfoLog(shader uint32) string {
	if s := f.Shaders[shader]; s != nil {
		return s.Log
	}
	return ""
}

func (f *Fake) DeleteShader(shader uint32) { f.release(shader, KindShader) }

func (f *Fake) CreateProgram() uint32 {
	id := f.alloc(KindProgram)
	f.Programs[id] = &Program{Uniforms: make(map[string]int32)}
	return id
}

func (f *Fake) AttachShader(program, shader uint32) {
	if p := f.Programs[program]; p != nil {
		p.Attached = append(p.Attached, shader)
	}
}

func (f *Fake) LinkProgram(program uint32) {
	p := f.Programs[program]
	if p == nil {
		return
	}
	stages := make(map[uint32]bool)
	for _, id := range p.Attached {
		s := f.Shaders[id]
		if s == nil || !f.IsLive(id) || !s.Compiled {
			p.Linked = false
			p.Log = fmt.Sprintf("error: shader %d is not compiled\n", id)
			return
		}
		stages[s.Stage] = true
	}
	if !stages[gl.VERTEX_SHADER] || !stages[gl.FRAGMENT_SHADER] {
		p.Linked = false
		p.Log = "error: program needs a vertex and a fragment stage\n"
		return
	}
	if f.LinkFails != nil && f.LinkFails(p) {
		p.Linked = false
		p.Log = "error: vertex output does not match fragment input\n"
		return
	}
	p.Linked = true
	p.Log = ""
}

func (f *Fake) GetProgramiv(program uint32, pname uint32, params *int32) {
	p := f.Programs[program]
	if p == nil {
		return
	}
	switch pname {
	case gl.LINK_STATUS:
		*params = gl.FALSE
		if p.Linked {
			*params = gl.TRUE
		}
	case gl.INFO_LOG_LENGTH:
		*params = int32(len(p.Log))
	case gl.ATTACHED_SHADERS:
		*params = int32(len(p.Attached))
	}
}

func (f *Fake) GetProgramInfoLog(program uint32) string {
	if p := f.Programs[program]; p != nil {
		return p.Log
	}
	return ""
}

func (f *Fake) DeleteProgram(program uint32) {
	if f.CurrentProgram == program {
		f.CurrentProgram = 0
	}
	f.release(program, KindProgram)
}

func (f *Fake) UseProgram(program uint32) { f.CurrentProgram = program }

// GetUniformLocation hands out a stable location per program and name.
func (f *Fake) GetUniformLocation(program uint32, name string) int32 {
	p := f.Programs[program]
	if p == nil || !p.Linked {
		return -1
	}
	if loc, ok := p.Uniforms[name]; ok {
		return loc
	}
	loc := int32(program)*100 + int32(len(p.Uniforms))
	p.Uniforms[name] = loc
	return loc
}

// Uniform returns the last value written to the named uniform of program.
func (f *Fake) Uniform(program uint32, name string) []float32 {
	p := f.Programs[program]
	if p == nil {
		return nil
	}
	loc, ok := p.Uniforms[name]
	if !ok {
		return nil
	}
	return f.UniformValues[loc]
}

func (f *Fake) setUniform(location int32, v ...float32) {
	if location < 0 {
		return
	}
	f.UniformValues[location] = append([]float32(nil), v...)
}

func (f *Fake) Uniform1i(location int32, v0 int32) { f.setUniform(location, float32(v0)) }

func (f *Fake) Uniform1f(location int32, v0 float32) { f.setUniform(location, v0) }

func (f *Fake) Uniform2f(location int32, v0, v1 float32) { f.setUniform(location, v0, v1) }

func (f *Fake) Uniform3f(location int32, v0, v1, v2 float32) { f.setUniform(location, v0, v1, v2) }

func (f *Fake) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	f.setUniform(location, v0, v1, v2, v3)
}

func (f *Fake) UniformMatrix4fv(location int32, transpose bool, value []float32) {
	f.setUniform(location, value...)
}

func (f *Fake) GenVertexArray() uint32 {
	id := f.alloc(KindVertexArray)
	f.VertexArrays[id] = &VertexArray{Attribs: make(map[uint32]*Attrib)}
	return id
}

func (f *Fake) BindVertexArray(array uint32) { f.CurrentVertexArray = array }

func (f *Fake) DeleteVertexArray(array uint32) {
	if f.CurrentVertexArray == array {
		f.CurrentVertexArray = 0
	}
	f.release(array, KindVertexArray)
}

func (f *Fake) GenBuffer() uint32 {
	id := f.alloc(KindBuffer)
	f.Buffers[id] = nil
	return id
}

func (f *Fake) BindBuffer(target, buffer uint32) {
	switch target {
	case gl.ARRAY_BUFFER:
		f.ArrayBuffer = buffer
	case gl.ELEMENT_ARRAY_BUFFER:
		if va := f.VertexArrays[f.CurrentVertexArray]; va != nil {
			va.ElementBuffer = buffer
		} else {
			f.Errors = append(f.Errors, "element buffer bound without a vertex array")
		}
	}
}

func (f *Fake) BufferData(target uint32, data []byte, usage uint32) {
	buf := f.boundBuffer(target)
	if buf == 0 {
		f.Errors = append(f.Errors, fmt.Sprintf("BufferData with no buffer bound to 0x%x", target))
		return
	}
	f.Buffers[buf] = append([]byte(nil), data...)
}

func (f *Fake) GetBufferSubData(target uint32, offset int, dst []byte) {
	buf := f.boundBuffer(target)
	copy(dst, f.Buffers[buf][offset:])
}

func (f *Fake) DeleteBuffer(buffer uint32) {
	if f.ArrayBuffer == buffer {
		f.ArrayBuffer = 0
	}
	f.release(buffer, KindBuffer)
}

func (f *Fake) attrib(index uint32) *Attrib {
	va := f.VertexArrays[f.CurrentVertexArray]
	if va == nil {
		f.Errors = append(f.Errors, "vertex attribute set without a vertex array")
		return &Attrib{}
	}
	a := va.Attribs[index]
	if a == nil {
		a = &Attrib{}
		va.Attribs[index] = a
	}
	return a
}

func (f *Fake) EnableVertexAttribArray(index uint32) { f.attrib(index).Enabled = true }

func (f *Fake) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	a := f.attrib(index)
	a.Size = size
	a.Type = xtype
	a.Normalized = normalized
	a.Stride = stride
	a.Offset = offset
	a.Buffer = f.ArrayBuffer
}

func (f *Fake) GenTexture() uint32 {
	id := f.alloc(KindTexture)
	f.Textures[id] = &Texture{Params: make(map[uint32]int32)}
	return id
}

func (f *Fake) ActiveTexture(unit uint32) { f.ActiveUnit = unit }

func (f *Fake) BindTexture(target, texture uint32) {
	if target == gl.TEXTURE_2D {
		f.BoundTextures[f.ActiveUnit] = texture
	}
}

func (f *Fake) boundTexture() *Texture {
	return f.Textures[f.BoundTextures[f.ActiveUnit]]
}

func (f *Fake) TexParameteri(target, pname uint32, param int32) {
	if t := f.boundTexture(); t != nil {
		t.Params[pname] = param
	}
}

func (f *Fake) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte) {
	t := f.boundTexture()
	if t == nil {
		f.Errors = append(f.Errors, "TexImage2D with no texture bound")
		return
	}
	t.Level = level
	t.InternalFormat = internalFormat
	t.Width, t.Height = width, height
	t.Format, t.Type = format, xtype
	t.Pixels = append([]byte(nil), pixels...)
}

func (f *Fake) DeleteTexture(texture uint32) {
	for unit, id := range f.BoundTextures {
		if id == texture {
			delete(f.BoundTextures, unit)
		}
	}
	f.release(texture, KindTexture)
}

func (f *Fake) Viewport(x, y, width, height int32) {
	f.ViewportRect = [4]int32{x, y, width, height}
}

func (f *Fake) ClearColor(red, green, blue, alpha float32) {
	f.ClearColorValue = [4]float32{red, green, blue, alpha}
}

func (f *Fake) Clear(mask uint32) { f.Clears = append(f.Clears, mask) }

func (f *Fake) Enable(capability uint32) { f.Enabled[capability] = true }

func (f *Fake) Disable(capability uint32) { delete(f.Enabled, capability) }

func (f *Fake) BlendFunc(sfactor, dfactor uint32) {}

func (f *Fake) snapshotTextures() map[uint32]uint32 {
	out := make(map[uint32]uint32, len(f.BoundTextures))
	for unit, id := range f.BoundTextures {
		out[unit] = id
	}
	return out
}

func (f *Fake) DrawArrays(mode uint32, first, count int32) {
	f.Draws = append(f.Draws, Draw{
		Mode:        mode,
		First:       first,
		Count:       count,
		Program:     f.CurrentProgram,
		VertexArray: f.CurrentVertexArray,
		Textures:    f.snapshotTextures(),
	})
}

func (f *Fake) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	f.Draws = append(f.Draws, Draw{
		Mode:        mode,
		Count:       count,
		IndexType:   xtype,
		Offset:      offset,
		Indexed:     true,
		Program:     f.CurrentProgram,
		VertexArray: f.CurrentVertexArray,
		Textures:    f.snapshotTextures(),
	})
}

// ReadPixels fills dst with the clear color; the fake does not rasterize.
func (f *Fake) ReadPixels(x, y, width, height int32, dst []byte) {
	c := f.ClearColorValue
	for i := 0; i+3 < len(dst); i += 4 {
		dst[i] = byte(c[0] * 255)
		dst[i+1] = byte(c[1] * 255)
		dst[i+2] = byte(c[2] * 255)
		dst[i+3] = byte(c[3] * 255)
	}
}

func (f *Fake) GetString(name uint32) string {
	switch name {
	case gl.VERSION:
		return "4.1 fake"
	case gl.RENDERER:
		return "glapitest"
	}
	return ""
}
