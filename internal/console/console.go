// Package console prints the user-facing lines of the demo: the OpenGL
// information banner and camera positions.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/muesli/termenv"
)

const rule = "****************************************************************"

// Field is one labelled line of the banner.
type Field struct {
	Label string
	Value string
}

// Console writes styled text. Colours degrade to plain text when the
// writer is not a terminal.
type Console struct {
	out *termenv.Output
}

// New returns a console writing to w.
func New(w io.Writer, opts ...termenv.OutputOption) *Console {
	return &Console{out: termenv.NewOutput(w, opts...)}
}

// Banner prints fields between two rules, one " - label: value" per line.
func (c *Console) Banner(fields []Field) {
	var b strings.Builder
	b.WriteString(rule + "\n")
	for _, f := range fields {
		label := c.out.String(f.Label + ":").Foreground(termenv.ANSICyan)
		fmt.Fprintf(&b, " - %s %s\n", label, f.Value)
	}
	b.WriteString(rule + "\n\n")
	fmt.Fprint(c.out, b.String())
}

// Position prints the camera position.
func (c *Console) Position(p mgl32.Vec3) {
	label := c.out.String("Camera Position:").Bold()
	fmt.Fprintf(c.out, "%s %g, %g, %g\n", label, p.X(), p.Y(), p.Z())
}
