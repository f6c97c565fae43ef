package graphics

import (
	"image"

	"cube-mapping/internal/texture"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// faceTargets follows texture.Face order.
var faceTargets = [texture.FaceCount]uint32{
	gl.TEXTURE_CUBE_MAP_POSITIVE_X,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
}

// NewCubeMap uploads six equally sized square faces into a new cube-map
// texture and returns its id. The texture is left bound.
func NewCubeMap(faces [texture.FaceCount]*image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_BASE_LEVEL, 0)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAX_LEVEL, 0)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	for f, img := range faces {
		size := int32(img.Rect.Dx())
		gl.TexImage2D(faceTargets[f], 0, gl.RGBA, size, size, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	return id
}

// UpdateFace replaces the pixels of one face of the bound cube map.
func UpdateFace(f texture.Face, img *image.RGBA) {
	size := int32(img.Rect.Dx())
	gl.TexSubImage2D(faceTargets[f], 0, 0, 0, size, size, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}
