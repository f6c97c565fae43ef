package renderer

import (
	"fmt"

	"cube-mapping/internal/camera"
	"cube-mapping/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	clearColor  mgl32.Vec4
}

// NewRenderer configures GL state and initializes the renderables in order.
// If one fails, those already initialized are disposed.
func NewRenderer(clearColor mgl32.Vec4, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)

	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}

	return &Renderer{renderables: rs, clearColor: clearColor}, nil
}

// Render clears the frame and draws every renderable from cam's point of view.
func (r *Renderer) Render(cam *camera.Camera) {
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{MVP: cam.ViewProjection()}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// SetViewport resizes the GL viewport and forwards the size to renderables.
func (r *Renderer) SetViewport(width, height int) {
	defer profiling.Track("renderer.SetViewport")()
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}
