package graphics

import (
	"fmt"

	"cube-mapping/internal/geometry"
	"cube-mapping/internal/texture"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Object is a vertex buffer drawn with a cube-map texture and a
// reflectance colour.
type Object struct {
	VAO         uint32
	VBO         uint32
	DrawMode    uint32
	VertexCount int32
	Texture     uint32
	Color       mgl32.Vec4

	faces *texture.Cube
}

// NewObject uploads vertices and the first frame of every face. The
// object owns faces from here on, including on error.
func NewObject(drawMode uint32, color mgl32.Vec4, vertices []mgl32.Vec3, faces *texture.Cube) (*Object, error) {
	first, err := faces.First()
	if err != nil {
		faces.Close()
		return nil, fmt.Errorf("cube texture: %w", err)
	}

	o := &Object{
		DrawMode:    drawMode,
		VertexCount: int32(len(vertices)),
		Color:       color,
		faces:       faces,
	}

	data := geometry.Flatten(vertices)
	gl.GenVertexArrays(1, &o.VAO)
	gl.BindVertexArray(o.VAO)

	gl.GenBuffers(1, &o.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	o.Texture = NewCubeMap(first)
	return o, nil
}

// RefreshTextures uploads the next frame of every face that has one.
// Still images are exhausted after the first frame and cost nothing.
func (o *Object) RefreshTextures() error {
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, o.Texture)
	_, err := o.faces.Next(UpdateFace)
	return err
}

// ReplaceTexture swaps in a new face set. The old texture survives if the
// new one cannot be started.
func (o *Object) ReplaceTexture(faces *texture.Cube) error {
	first, err := faces.First()
	if err != nil {
		faces.Close()
		return fmt.Errorf("cube texture: %w", err)
	}
	id := NewCubeMap(first)

	gl.DeleteTextures(1, &o.Texture)
	old := o.faces
	o.Texture, o.faces = id, faces
	return old.Close()
}

// Draw issues the draw call. The caller has bound the program.
func (o *Object) Draw() {
	gl.BindVertexArray(o.VAO)
	gl.DrawArrays(o.DrawMode, 0, o.VertexCount)
	gl.BindVertexArray(0)
}

// Dispose releases GL resources and closes the face sources.
func (o *Object) Dispose() error {
	if o.VAO != 0 {
		gl.DeleteVertexArrays(1, &o.VAO)
		o.VAO = 0
	}
	if o.VBO != 0 {
		gl.DeleteBuffers(1, &o.VBO)
		o.VBO = 0
	}
	if o.Texture != 0 {
		gl.DeleteTextures(1, &o.Texture)
		o.Texture = 0
	}
	if o.faces == nil {
		return nil
	}
	err := o.faces.Close()
	o.faces = nil
	return err
}
