package video_test

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"cube-mapping/internal/texture"
	"cube-mapping/internal/texture/video"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clip.y4m holds three 16x16 frames. tone.wav is audio only.
const (
	clipPath  = "testdata/clip.y4m"
	audioPath = "testdata/tone.wav"
)

// openClip opens the test clip, skipping when the linked ffmpeg build
// cannot demux it.
func openClip(t *testing.T, path string) *video.Source {
	t.Helper()
	s, err := video.Open(path)
	if err != nil {
		t.Skipf("ffmpeg cannot open %s: %v", path, err)
	}
	return s
}

func TestSourceReadsUntilExhausted(t *testing.T) {
	s := openClip(t, clipPath)
	defer s.Close()

	frames := 0
	for {
		img, ok, err := s.NextFrame()
		require.NoError(t, err)
		if !ok {
			assert.Nil(t, img)
			break
		}
		require.NotNil(t, img)
		assert.Equal(t, 16, img.Bounds().Dx())
		assert.Equal(t, 16, img.Bounds().Dy())
		frames++
		require.LessOrEqual(t, frames, 3, "more frames than the clip holds")
	}
	assert.GreaterOrEqual(t, frames, 1)

	for i := 0; i < 3; i++ {
		img, ok, err := s.NextFrame()
		assert.Nil(t, img)
		assert.False(t, ok, "exhausted stream stays exhausted")
		assert.NoError(t, err)
	}
}

func TestSourceCloseTwice(t *testing.T) {
	s := openClip(t, clipPath)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())

	img, ok, err := s.NextFrame()
	assert.Nil(t, img)
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestOpenAudioOnly(t *testing.T) {
	openClip(t, clipPath).Close()

	_, err := video.Open(audioPath)
	assert.ErrorIs(t, err, video.ErrNoVideoStream)
}

func TestOpenMissing(t *testing.T) {
	_, err := video.Open(filepath.Join(t.TempDir(), "right.avi"))
	assert.Error(t, err)
}

func TestOpenCube(t *testing.T) {
	openClip(t, clipPath).Close()

	data, err := os.ReadFile(clipPath)
	require.NoError(t, err)
	dir := t.TempDir()
	for _, p := range texture.FacePaths(dir, ".y4m") {
		require.NoError(t, os.WriteFile(p, data, 0o644))
	}

	cube, err := video.OpenCube(dir, ".y4m")
	require.NoError(t, err)
	defer cube.Close()

	faces, err := cube.First()
	require.NoError(t, err)
	assert.Equal(t, 16, cube.Size())
	for f, img := range faces {
		require.NotNil(t, img, texture.Face(f).String())
		assert.Equal(t, 16, img.Rect.Dx())
	}

	// Drain the clip; exhausted faces are skipped, not errors.
	for i := 0; i < 10; i++ {
		_, err := cube.Next(func(texture.Face, *image.RGBA) {})
		require.NoError(t, err)
	}
	n, err := cube.Next(func(texture.Face, *image.RGBA) {})
	assert.NoError(t, err)
	assert.Zero(t, n)
}
