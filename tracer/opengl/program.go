package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.3-core/gl"
)

// Compile the supplied shader sources (keyed by shader type) and link them
// into a program.
func NewProgram(sources map[uint32]string) (uint32, error) {
	if len(sources) == 0 {
		return 0, ErrNoShaderSources
	}

	shaders := make([]uint32, 0, len(sources))
	defer func() {
		for _, shader := range shaders {
			gl.DeleteShader(shader)
		}
	}()

	for shaderType, src := range sources {
		shader, err := compileShader(src, shaderType)
		if err != nil {
			return 0, err
		}
		shaders = append(shaders, shader)
	}

	program := gl.CreateProgram()
	for _, shader := range shaders {
		gl.AttachShader(program, shader)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("opengl tracer: could not link program: %s", strings.TrimRight(string(log), "\x00"))
	}

	for _, shader := range shaders {
		gl.DetachShader(program, shader)
	}

	return program, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("opengl tracer: could not compile %s shader: %s", shaderTypeName(shaderType), strings.TrimRight(string(log), "\x00"))
	}
	return shader, nil
}

func shaderTypeName(shaderType uint32) string {
	switch shaderType {
	case gl.COMPUTE_SHADER:
		return "compute"
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return "unknown"
}
