package app

import (
	"fmt"

	"cube-mapping/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(cfg config.WindowConfig) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("could not load OpenGL functions: %w", err)
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	return window, nil
}
