package texture

import (
	"errors"
	"fmt"
	"image"
)

// ErrNoFrame is returned when a face has nothing to show at start-up.
var ErrNoFrame = errors.New("no frame")

// Source yields successive frames for one cube face.
type Source interface {
	// NextFrame returns the next frame. ok is false when the source is
	// exhausted; that is not an error.
	NextFrame() (img image.Image, ok bool, err error)
	Close() error
}

// Cube groups the six face sources of one cube map.
type Cube struct {
	sources [FaceCount]Source
	size    int
}

// NewCube takes ownership of sources; Close closes them.
func NewCube(sources [FaceCount]Source) *Cube {
	return &Cube{sources: sources}
}

// OpenImages loads <dir>/<face><ext> still images for every face.
func OpenImages(dir, ext string) (*Cube, error) {
	return OpenWith(FacePaths(dir, ext), func(path string) (Source, error) {
		return OpenImage(path)
	})
}

// OpenWith opens one source per path. If any open fails, the ones already
// opened are closed.
func OpenWith(paths [FaceCount]string, open func(path string) (Source, error)) (*Cube, error) {
	var sources [FaceCount]Source
	for f := Face(0); f < FaceCount; f++ {
		s, err := open(paths[f])
		if err != nil {
			for _, opened := range sources[:f] {
				opened.Close()
			}
			return nil, fmt.Errorf("%s face: %w", f, err)
		}
		sources[f] = s
	}
	return NewCube(sources), nil
}

// Size is the edge length of every face in pixels, fixed by First.
func (c *Cube) Size() int {
	return c.size
}

// First reads the opening frame of every face. The right face fixes the
// face size; the others are resampled to it.
func (c *Cube) First() ([FaceCount]*image.RGBA, error) {
	var faces [FaceCount]*image.RGBA
	for f := Face(0); f < FaceCount; f++ {
		img, ok, err := c.sources[f].NextFrame()
		if err != nil {
			return faces, fmt.Errorf("%s face: %w", f, err)
		}
		if !ok || img == nil {
			return faces, fmt.Errorf("%s face: %w", f, ErrNoFrame)
		}
		if f == FaceRight {
			c.size = img.Bounds().Dx()
		}
		faces[f] = Normalize(img, c.size)
	}
	return faces, nil
}

// Next pulls one frame from every face and hands decoded ones to upload.
// Faces without a next frame are skipped. It returns how many faces were
// uploaded; the first decode error stops the pass.
func (c *Cube) Next(upload func(f Face, img *image.RGBA)) (int, error) {
	if c.size == 0 {
		return 0, fmt.Errorf("cube not started: %w", ErrNoFrame)
	}
	n := 0
	for f := Face(0); f < FaceCount; f++ {
		img, ok, err := c.sources[f].NextFrame()
		if err != nil {
			return n, fmt.Errorf("%s face: %w", f, err)
		}
		if !ok || img == nil {
			continue
		}
		upload(f, Normalize(img, c.size))
		n++
	}
	return n, nil
}

// Close closes every face source.
func (c *Cube) Close() error {
	var errs []error
	for f, s := range c.sources {
		if s == nil {
			continue
		}
		if err := s.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s face: %w", Face(f), err))
		}
	}
	return errors.Join(errs...)
}
