package shell

import (
	"math"

	"github.com/bdwalton/aptpic/internal/apt"
	"github.com/bdwalton/aptpic/internal/assets"
	"github.com/bdwalton/aptpic/internal/frame"
	"github.com/bdwalton/aptpic/internal/stackvm"
)

// Mono is the single-program grayscale shell from spec.md section 3:
// pixel = (v+1)*127.5 per channel, alpha always 255.
type Mono struct {
	tree *apt.Node
	prog stackvm.Program
	cs   apt.CoordSystem
}

// NewMono compiles tree once and returns a ready-to-render Mono shell.
func NewMono(tree *apt.Node, cs apt.CoordSystem) *Mono {
	return &Mono{tree: tree, prog: stackvm.Compile(tree), cs: cs}
}

func (m *Mono) ToLisp() string {
	return headerMono + " " + m.tree.ToLisp()
}

func (m *Mono) GetRGBA8(w, h int, t float64, table *assets.Table) []byte {
	return frame.Render([]stackvm.Program{m.prog}, m.cs, w, h, t, table,
		func(vals [][]float64, lane int) (r, g, b, a uint8) {
			c := toChannelByte(vals[0][lane])
			return c, c, c, 255
		})
}

// toChannelByte implements "(v+1)*127.5" clamped to a byte, per
// spec.md section 3's Mono/RGB channel scaling.
func toChannelByte(v float64) uint8 {
	c := (v + 1) * 127.5
	if c < 0 {
		c = 0
	}
	if c > 255 {
		c = 255
	}
	return uint8(math.Round(c))
}
