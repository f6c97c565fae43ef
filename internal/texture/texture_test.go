package texture_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cube-mapping/internal/texture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted is a Source that replays a fixed list of frames.
type scripted struct {
	frames []image.Image
	err    error
	closed bool
}

func (s *scripted) NextFrame() (image.Image, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	if len(s.frames) == 0 {
		return nil, false, nil
	}
	img := s.frames[0]
	s.frames = s.frames[1:]
	return img, true, nil
}

func (s *scripted) Close() error {
	s.closed = true
	return nil
}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestFacePaths(t *testing.T) {
	paths := texture.FacePaths("samples/static", "jpg")
	assert.Equal(t, filepath.Join("samples/static", "right.jpg"), paths[texture.FaceRight])
	assert.Equal(t, filepath.Join("samples/static", "front.jpg"), paths[texture.FaceFront])

	dotted := texture.FacePaths("d", ".avi")
	assert.Equal(t, filepath.Join("d", "bottom.avi"), dotted[texture.FaceBottom])
}

func TestFaceString(t *testing.T) {
	want := []string{"right", "left", "top", "bottom", "back", "front"}
	for f := texture.Face(0); f < texture.FaceCount; f++ {
		assert.Equal(t, want[f], f.String())
	}
	assert.Equal(t, "Face(9)", texture.Face(9).String())
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "right.png")
	writePNG(t, path, solid(4, 4, color.RGBA{255, 0, 0, 255}))

	img, err := texture.LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
}

func TestLoadImageRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "right.jpg")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a jpeg"), 0o644))

	_, err := texture.LoadImage(path)
	assert.ErrorIs(t, err, texture.ErrNotImage)
}

func TestLoadImageMissing(t *testing.T) {
	_, err := texture.LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNormalize(t *testing.T) {
	exact := solid(8, 8, color.White)
	assert.Same(t, exact, texture.Normalize(exact, 8))

	scaled := texture.Normalize(solid(16, 8, color.White), 8)
	assert.Equal(t, image.Rect(0, 0, 8, 8), scaled.Bounds())
	assert.GreaterOrEqual(t, scaled.RGBAAt(3, 3).R, uint8(250))

	gray := image.NewGray(image.Rect(2, 2, 6, 6))
	converted := texture.Normalize(gray, 4)
	assert.Equal(t, image.Rect(0, 0, 4, 4), converted.Bounds())
}

func TestImageSourceSingleFrame(t *testing.T) {
	s := texture.NewImageSource(solid(2, 2, color.Black))

	img, ok, err := s.NextFrame()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotNil(t, img)

	_, ok, err = s.NextFrame()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, s.Close())
}

func newScriptedCube(frames int) (*texture.Cube, [texture.FaceCount]*scripted) {
	var ss [texture.FaceCount]*scripted
	var sources [texture.FaceCount]texture.Source
	for f := range ss {
		s := &scripted{}
		for i := 0; i < frames; i++ {
			s.frames = append(s.frames, solid(4, 4, color.Gray{uint8(f * 10)}))
		}
		ss[f] = s
		sources[f] = s
	}
	return texture.NewCube(sources), ss
}

func TestCubeFirstSetsSize(t *testing.T) {
	cube, ss := newScriptedCube(1)
	ss[texture.FaceLeft].frames[0] = solid(8, 8, color.White)

	faces, err := cube.First()
	require.NoError(t, err)
	assert.Equal(t, 4, cube.Size())
	for _, f := range faces {
		assert.Equal(t, image.Rect(0, 0, 4, 4), f.Bounds())
	}
}

func TestCubeFirstMissingFrame(t *testing.T) {
	cube, ss := newScriptedCube(1)
	ss[texture.FaceTop].frames = nil

	_, err := cube.First()
	assert.ErrorIs(t, err, texture.ErrNoFrame)
	assert.Contains(t, err.Error(), "top")
}

func TestCubeNextSkipsExhaustedFaces(t *testing.T) {
	cube, ss := newScriptedCube(3)
	_, err := cube.First()
	require.NoError(t, err)

	// back runs out after its first frame.
	ss[texture.FaceBack].frames = nil

	var got []texture.Face
	n, err := cube.Next(func(f texture.Face, img *image.RGBA) {
		got = append(got, f)
		assert.Equal(t, 4, img.Bounds().Dx())
	})
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.NotContains(t, got, texture.FaceBack)

	// One more frame each, then everything is exhausted.
	n, err = cube.Next(func(texture.Face, *image.RGBA) {})
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = cube.Next(func(texture.Face, *image.RGBA) { t.Fatal("no face should upload") })
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCubeNextBeforeFirst(t *testing.T) {
	cube, _ := newScriptedCube(1)
	_, err := cube.Next(func(texture.Face, *image.RGBA) {})
	assert.ErrorIs(t, err, texture.ErrNoFrame)
}

func TestCubeNextError(t *testing.T) {
	cube, ss := newScriptedCube(2)
	_, err := cube.First()
	require.NoError(t, err)

	boom := errors.New("decode failed")
	ss[texture.FaceBottom].err = boom
	n, err := cube.Next(func(texture.Face, *image.RGBA) {})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, n)
}

func TestCubeClose(t *testing.T) {
	cube, ss := newScriptedCube(1)
	require.NoError(t, cube.Close())
	for _, s := range ss {
		assert.True(t, s.closed)
	}
}

func TestOpenWithClosesOnFailure(t *testing.T) {
	var opened []*scripted
	paths := texture.FacePaths("x", ".png")
	_, err := texture.OpenWith(paths, func(path string) (texture.Source, error) {
		if path == paths[texture.FaceBottom] {
			return nil, os.ErrNotExist
		}
		s := &scripted{}
		opened = append(opened, s)
		return s, nil
	})
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "bottom face")
	require.Len(t, opened, 3)
	for _, s := range opened {
		assert.True(t, s.closed)
	}
}

func TestOpenImages(t *testing.T) {
	dir := t.TempDir()
	for _, p := range texture.FacePaths(dir, ".png") {
		writePNG(t, p, solid(6, 6, color.White))
	}

	cube, err := texture.OpenImages(dir, "png")
	require.NoError(t, err)
	defer cube.Close()

	faces, err := cube.First()
	require.NoError(t, err)
	assert.Equal(t, 6, cube.Size())
	assert.Len(t, faces, int(texture.FaceCount))
}
