package console_test

import (
	"bytes"
	"testing"

	"cube-mapping/internal/console"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestBannerPlain(t *testing.T) {
	var buf bytes.Buffer
	c := console.New(&buf, termenv.WithProfile(termenv.Ascii))

	c.Banner([]console.Field{
		{Label: "OpenGL renderer", Value: "llvmpipe"},
		{Label: "OpenGL version supported", Value: "4.1"},
	})

	want := "****************************************************************\n" +
		" - OpenGL renderer: llvmpipe\n" +
		" - OpenGL version supported: 4.1\n" +
		"****************************************************************\n\n"
	assert.Equal(t, want, buf.String())
}

func TestPositionPlain(t *testing.T) {
	var buf bytes.Buffer
	c := console.New(&buf, termenv.WithProfile(termenv.Ascii))

	c.Position(mgl32.Vec3{0, 0.5, -5})
	assert.Equal(t, "Camera Position: 0, 0.5, -5\n", buf.String())
}

func TestColoredOutputKeepsText(t *testing.T) {
	var buf bytes.Buffer
	c := console.New(&buf, termenv.WithProfile(termenv.ANSI))

	c.Position(mgl32.Vec3{1, 2, 3})
	assert.Contains(t, buf.String(), "Camera Position:")
	assert.Contains(t, buf.String(), "1, 2, 3")
}
