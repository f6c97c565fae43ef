package graphics

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names shared by the cube shaders and the renderer.
const (
	UniformMVP     = "ModelViewProjectionMatrix"
	UniformColor   = "PrimitiveColor"
	UniformTexture = "CubeTexture"
)

// Shader represents an OpenGL shader program and the uniform locations
// resolved for it.
type Shader struct {
	ID       uint32
	uniforms map[string]int32
}

// NewShader creates a new shader program from vertex and fragment shader source files.
func NewShader(vertexPath, fragmentPath string, uniforms ...string) (*Shader, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader file: %w", err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader file: %w", err)
	}

	return NewShaderFromSource(string(vertexSource), string(fragmentSource), uniforms...)
}

// NewShaderFromSource compiles and links a program, then resolves the
// named uniforms. A uniform the linker optimised away resolves to -1,
// which GL ignores on upload.
func NewShaderFromSource(vertexSrc, fragmentSrc string, uniforms ...string) (*Shader, error) {
	program, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	s := &Shader{ID: program, uniforms: make(map[string]int32, len(uniforms))}
	for _, name := range uniforms {
		s.uniforms[name] = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	}
	return s, nil
}

// NewCubeShader builds the embedded cube-map program.
func NewCubeShader() (*Shader, error) {
	return NewShaderFromSource(cubeVertexSource, cubeFragmentSource, UniformMVP, UniformColor, UniformTexture)
}

// Location returns the resolved location of name, looking it up on first use.
func (s *Shader) Location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(name string, value int32) {
	gl.Uniform1i(s.Location(name), value)
}

// SetVector4 sets a vec4 uniform
func (s *Shader) SetVector4(name string, v mgl32.Vec4) {
	gl.Uniform4fv(s.Location(name), 1, &v[0])
}

// SetMatrix4 sets a 4x4 matrix uniform
func (s *Shader) SetMatrix4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(s.Location(name), 1, false, &m[0])
}

// Delete releases the program.
func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

// Helper functions
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %s shader: %v", shaderKind(shaderType), strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func shaderKind(t uint32) string {
	switch t {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}
