package graphics

import (
	"cube-mapping/internal/console"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Info describes the current context. Call after gl.Init.
func Info() []console.Field {
	return []console.Field{
		{Label: "GLFW version", Value: glfw.GetVersionString()},
		{Label: "Renderer", Value: gl.GoStr(gl.GetString(gl.RENDERER))},
		{Label: "OpenGL version", Value: gl.GoStr(gl.GetString(gl.VERSION))},
		{Label: "GLSL version", Value: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))},
	}
}
