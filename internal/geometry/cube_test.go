package geometry_test

import (
	"testing"

	"cube-mapping/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeShape(t *testing.T) {
	vs := geometry.Cube(5)
	require.Len(t, vs, geometry.CubeVertexCount)

	for i, v := range vs {
		for axis := 0; axis < 3; axis++ {
			assert.Contains(t, []float32{-5, 5}, v[axis], "vertex %d axis %d", i, axis)
		}
	}
}

func TestCubeFaces(t *testing.T) {
	vs := geometry.Cube(1)

	// Each consecutive group of 6 vertices lies on one face plane, and each
	// of the 6 planes appears exactly once.
	seen := map[[2]int]bool{}
	for f := 0; f < 6; f++ {
		tri := vs[f*6 : f*6+6]
		var plane [2]int
		found := false
		for axis := 0; axis < 3 && !found; axis++ {
			for _, sign := range []float32{-1, 1} {
				all := true
				for _, v := range tri {
					if v[axis] != sign {
						all = false
						break
					}
				}
				if all {
					plane = [2]int{axis, int(sign)}
					found = true
					break
				}
			}
		}
		require.True(t, found, "face %d is not planar", f)
		assert.False(t, seen[plane], "face plane %v repeated", plane)
		seen[plane] = true
	}
	assert.Len(t, seen, 6)
}

func TestFlatten(t *testing.T) {
	got := geometry.Flatten([]mgl32.Vec3{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, got)

	assert.Len(t, geometry.Flatten(geometry.Cube(2)), geometry.CubeVertexCount*3)
	assert.Empty(t, geometry.Flatten(nil))
}
