package geometry

import "github.com/go-gl/mathgl/mgl32"

// CubeVertexCount is the number of vertices Cube returns: 6 faces, 2 triangles each.
const CubeVertexCount = 36

// Cube returns triangle-list positions for an axis-aligned cube centred on
// the origin with the given half edge length. Faces wind so they are seen
// from inside, which is how a skybox is viewed.
func Cube(half float32) []mgl32.Vec3 {
	l := half
	return []mgl32.Vec3{
		// -Z
		{-l, l, -l}, {-l, -l, -l}, {l, -l, -l},
		{l, -l, -l}, {l, l, -l}, {-l, l, -l},

		// -X
		{-l, -l, l}, {-l, -l, -l}, {-l, l, -l},
		{-l, l, -l}, {-l, l, l}, {-l, -l, l},

		// +X
		{l, -l, -l}, {l, -l, l}, {l, l, l},
		{l, l, l}, {l, l, -l}, {l, -l, -l},

		// +Z
		{-l, -l, l}, {-l, l, l}, {l, l, l},
		{l, l, l}, {l, -l, l}, {-l, -l, l},

		// +Y
		{-l, l, -l}, {l, l, -l}, {l, l, l},
		{l, l, l}, {-l, l, l}, {-l, l, -l},

		// -Y
		{-l, -l, -l}, {-l, -l, l}, {l, -l, -l},
		{l, -l, -l}, {-l, -l, l}, {l, -l, l},
	}
}

// Flatten packs positions into x,y,z triples for a vertex buffer.
func Flatten(vs []mgl32.Vec3) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}
