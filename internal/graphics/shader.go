package graphics

import (
	"fmt"

	"learngl/internal/glapi"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CompileError is returned when a shader stage fails to compile. Log holds
// the driver's diagnostic text.
type CompileError struct {
	Stage uint32
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", StageName(e.Stage), e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// StageName returns a readable name for a shader stage enum.
func StageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	}
	return fmt.Sprintf("0x%x", stage)
}

// Shader is one compiled shader stage.
type Shader struct {
	ID    uint32
	Stage uint32
	api   glapi.API
}

// Compile compiles source as the given stage. On failure the shader object
// is deleted and a *CompileError carrying the info log is returned.
func Compile(api glapi.API, source string, stage uint32) (*Shader, error) {
	id := api.CreateShader(stage)
	api.ShaderSource(id, source)
	api.CompileShader(id)

	var status int32
	api.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := api.GetShaderInfoLog(id)
		api.DeleteShader(id)
		if log == "" {
			log = "no diagnostic from driver"
		}
		return nil, &CompileError{Stage: stage, Log: log}
	}
	return &Shader{ID: id, Stage: stage, api: api}, nil
}

// Delete flags the shader object for deletion. It is safe to call more
// than once and after the shader has been linked.
func (s *Shader) Delete() {
	if s == nil || s.ID == 0 {
		return
	}
	logRelease("shader", s.ID)
	s.api.DeleteShader(s.ID)
	s.ID = 0
}

// ShaderProgram is a linked program. ID 0 means not yet created.
type ShaderProgram struct {
	ID  uint32
	api glapi.API
}

// Link attaches vs and fs to a new program and links it. The stages are
// left alive so the same vertex stage can be linked into several programs;
// the caller deletes them once every program using them is linked.
func Link(api glapi.API, vs, fs *Shader) (*ShaderProgram, error) {
	id := api.CreateProgram()
	api.AttachShader(id, vs.ID)
	api.AttachShader(id, fs.ID)
	api.LinkProgram(id)

	var status int32
	api.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := api.GetProgramInfoLog(id)
		api.DeleteProgram(id)
		if log == "" {
			log = "no diagnostic from driver"
		}
		return nil, &LinkError{Log: log}
	}
	return &ShaderProgram{ID: id, api: api}, nil
}

// NewProgram compiles both stages, links them and releases the stages.
func NewProgram(api glapi.API, vertexSrc, fragmentSrc string) (*ShaderProgram, error) {
	vs, err := Compile(api, vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer vs.Delete()

	fs, err := Compile(api, fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer fs.Delete()

	return Link(api, vs, fs)
}

// SourceReader returns shader source text by name.
type SourceReader interface {
	ReadSource(name string) (string, error)
}

// LoadProgram reads the named vertex and fragment sources and links them.
func LoadProgram(api glapi.API, r SourceReader, vertexName, fragmentName string) (*ShaderProgram, error) {
	vertexSrc, err := r.ReadSource(vertexName)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader %s: %w", vertexName, err)
	}
	fragmentSrc, err := r.ReadSource(fragmentName)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader %s: %w", fragmentName, err)
	}
	return NewProgram(api, vertexSrc, fragmentSrc)
}

// Delete releases the program. Calling it again is a no-op.
func (p *ShaderProgram) Delete() {
	if p == nil || p.ID == 0 {
		return
	}
	logRelease("shader program", p.ID)
	p.api.DeleteProgram(p.ID)
	p.ID = 0
}

// Use makes p the current program. Uniform setters below act on the
// current program, so call Use first.
func (p *ShaderProgram) Use() {
	p.api.UseProgram(p.ID)
}

func (p *ShaderProgram) location(name string) int32 {
	return p.api.GetUniformLocation(p.ID, name)
}

// SetBool sets a boolean uniform
func (p *ShaderProgram) SetBool(name string, value bool) {
	var intValue int32
	if value {
		intValue = 1
	}
	p.api.Uniform1i(p.location(name), intValue)
}

// SetInt sets an integer uniform, also used for sampler units.
func (p *ShaderProgram) SetInt(name string, value int32) {
	p.api.Uniform1i(p.location(name), value)
}

// SetFloat sets a float uniform
func (p *ShaderProgram) SetFloat(name string, value float32) {
	p.api.Uniform1f(p.location(name), value)
}

// SetVector2 sets a vec2 uniform
func (p *ShaderProgram) SetVector2(name string, x, y float32) {
	p.api.Uniform2f(p.location(name), x, y)
}

// SetVector3 sets a vec3 uniform
func (p *ShaderProgram) SetVector3(name string, x, y, z float32) {
	p.api.Uniform3f(p.location(name), x, y, z)
}

// SetVector4 sets a vec4 uniform
func (p *ShaderProgram) SetVector4(name string, x, y, z, w float32) {
	p.api.Uniform4f(p.location(name), x, y, z, w)
}

// SetMatrix4 sets a mat4 uniform (column major, as mgl32 stores it).
func (p *ShaderProgram) SetMatrix4(name string, m mgl32.Mat4) {
	p.api.UniformMatrix4fv(p.location(name), false, m[:])
}

// ProgramSource names the two source files of a program and holds the
// program most recently built from them.
type ProgramSource struct {
	Vertex   string
	Fragment string
	Program  *ShaderProgram
}

// Build links a fresh program from the sources. On success the previous
// program is released; on failure it is kept and the error returned, so a
// broken edit never leaves the caller without a working program.
func (s *ProgramSource) Build(api glapi.API, r SourceReader) error {
	p, err := LoadProgram(api, r, s.Vertex, s.Fragment)
	if err != nil {
		return err
	}
	s.Program.Delete()
	s.Program = p
	return nil
}

// Uses reports whether name is one of the program's source files.
func (s *ProgramSource) Uses(name string) bool {
	return name == s.Vertex || name == s.Fragment
}
