package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	// MVP is projection*view; renderables with a model matrix multiply it in.
	MVP mgl32.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
