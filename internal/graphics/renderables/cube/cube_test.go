package cube_test

import (
	"os"
	"path/filepath"
	"testing"

	"cube-mapping/internal/graphics/renderables/cube"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderPaths(t *testing.T) {
	vert, frag := cube.ShaderPaths("glsl")
	assert.Equal(t, filepath.Join("glsl", "cube.vert"), vert)
	assert.Equal(t, filepath.Join("glsl", "cube.frag"), frag)
}

func TestBuiltInShadersWorkAsDirectory(t *testing.T) {
	vert, frag := cube.ShaderPaths(filepath.Join("..", "..", "shaders"))
	for _, p := range []string{vert, frag} {
		src, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Contains(t, string(src), "#version 410 core")
	}
}
