package cube

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"cube-mapping/internal/geometry"
	"cube-mapping/internal/graphics"
	renderer "cube-mapping/internal/graphics/renderer"
	"cube-mapping/internal/profiling"
	"cube-mapping/internal/texture"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Opener produces a fresh set of face sources.
type Opener func() (*texture.Cube, error)

// Shader file names looked up in a shader directory.
const (
	VertShader = "cube.vert"
	FragShader = "cube.frag"
)

// Cube renders a cube-mapped box centred on the origin.
type Cube struct {
	halfLength float32
	color      mgl32.Vec4
	open       Opener
	logger     *slog.Logger
	shaderDir  string

	shader *graphics.Shader
	object *graphics.Object
	failed bool
}

// NewCube creates a cube renderable. Faces are opened in Init. An empty
// shaderDir uses the built-in shaders.
func NewCube(halfLength float32, color mgl32.Vec4, shaderDir string, open Opener, logger *slog.Logger) *Cube {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cube{halfLength: halfLength, color: color, shaderDir: shaderDir, open: open, logger: logger}
}

// ShaderPaths returns the vertex and fragment shader files inside dir.
func ShaderPaths(dir string) (vert, frag string) {
	return filepath.Join(dir, VertShader), filepath.Join(dir, FragShader)
}

func (c *Cube) loadShader() (*graphics.Shader, error) {
	if c.shaderDir == "" {
		return graphics.NewCubeShader()
	}
	vert, frag := ShaderPaths(c.shaderDir)
	return graphics.NewShader(vert, frag, graphics.UniformMVP, graphics.UniformColor, graphics.UniformTexture)
}

// Init compiles the shader and uploads geometry and the first texture frames.
func (c *Cube) Init() error {
	var err error
	c.shader, err = c.loadShader()
	if err != nil {
		return err
	}

	faces, err := c.open()
	if err != nil {
		c.shader.Delete()
		return fmt.Errorf("open cube faces: %w", err)
	}
	c.object, err = graphics.NewObject(gl.TRIANGLES, c.color, geometry.Cube(c.halfLength), faces)
	if err != nil {
		c.shader.Delete()
		return err
	}
	return nil
}

// Render draws the cube with the frame's model-view-projection matrix.
func (c *Cube) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderCube")()

	c.shader.Use()
	c.shader.SetMatrix4(graphics.UniformMVP, ctx.MVP)
	c.shader.SetVector4(graphics.UniformColor, c.object.Color)
	c.shader.SetInt(graphics.UniformTexture, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	if !c.failed {
		if err := c.object.RefreshTextures(); err != nil {
			// Keep the last good frame on screen and stop decoding.
			c.logger.Error("refresh cube texture", "err", err)
			c.failed = true
		}
	} else {
		gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.object.Texture)
	}

	c.object.Draw()
}

// Reload reopens the faces and swaps them in. On failure the current
// texture stays.
func (c *Cube) Reload() error {
	faces, err := c.open()
	if err != nil {
		return fmt.Errorf("open cube faces: %w", err)
	}
	prev := c.object.Texture
	err = c.object.ReplaceTexture(faces)
	if c.object.Texture != prev {
		c.failed = false
	}
	return err
}

// Dispose cleans up OpenGL resources
func (c *Cube) Dispose() {
	if c.object != nil {
		if err := c.object.Dispose(); err != nil {
			c.logger.Warn("close cube faces", "err", err)
		}
		c.object = nil
	}
	if c.shader != nil {
		c.shader.Delete()
		c.shader = nil
	}
}

// SetViewport is a no-op; the projection lives in the camera.
func (c *Cube) SetViewport(width, height int) {}
