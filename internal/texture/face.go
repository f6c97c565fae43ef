package texture

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Face identifies one side of a cube map. The order matches the GL
// TEXTURE_CUBE_MAP_POSITIVE_X + i targets.
type Face int

const (
	FaceRight  Face = iota // +X
	FaceLeft               // -X
	FaceTop                // +Y
	FaceBottom             // -Y
	FaceBack               // +Z
	FaceFront              // -Z
	FaceCount
)

var faceNames = [FaceCount]string{"right", "left", "top", "bottom", "back", "front"}

func (f Face) String() string {
	if f < 0 || f >= FaceCount {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// FacePaths returns <dir>/<face><ext> for every face in GL order.
// ext may be given with or without the leading dot.
func FacePaths(dir, ext string) [FaceCount]string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	var out [FaceCount]string
	for f := Face(0); f < FaceCount; f++ {
		out[f] = filepath.Join(dir, f.String()+ext)
	}
	return out
}
