package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNotImage is returned when a face file's content is not a known image type.
var ErrNotImage = errors.New("not an image")

// sniffLen is the number of header bytes filetype needs to match any type.
const sniffLen = 261

// LoadImage opens and decodes a face image. The content is sniffed before
// decoding so a stray video or text file gets a clear error.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read texture file %s: %w", path, err)
	}
	if !filetype.IsImage(head[:n]) {
		kind, _ := filetype.Match(head[:n])
		return nil, fmt.Errorf("%s (%s): %w", path, kind.MIME.Value, ErrNotImage)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind texture file %s: %w", path, err)
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// Normalize returns img as a size x size RGBA image anchored at the origin.
// Images of another size are resampled; a tightly packed RGBA image that
// already fits is returned unchanged.
func Normalize(img image.Image, size int) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && b.Dx() == size && b.Dy() == size && rgba.Stride == 4*size {
		return rgba
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if b.Dx() == size && b.Dy() == size {
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// ImageSource serves a still image as a single frame.
type ImageSource struct {
	img  image.Image
	done bool
}

// NewImageSource wraps an already decoded image.
func NewImageSource(img image.Image) *ImageSource {
	return &ImageSource{img: img}
}

// OpenImage loads path into an ImageSource.
func OpenImage(path string) (*ImageSource, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewImageSource(img), nil
}

// NextFrame returns the image once and reports no frame afterwards.
func (s *ImageSource) NextFrame() (image.Image, bool, error) {
	if s.done {
		return nil, false, nil
	}
	s.done = true
	return s.img, true, nil
}

// Close releases nothing; still images hold no handles.
func (s *ImageSource) Close() error { return nil }
