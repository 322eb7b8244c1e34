package shell

import (
	"strconv"
	"strings"

	"github.com/bdwalton/aptpic/internal/apt"
	"github.com/bdwalton/aptpic/internal/assets"
	"github.com/bdwalton/aptpic/internal/color"
	"github.com/bdwalton/aptpic/internal/frame"
	"github.com/bdwalton/aptpic/internal/stackvm"
)

// Gradient is the palette-indexed shell from spec.md section 3: one
// program plus a 512-entry color table built by interpolating
// between the palette's K stops.
type Gradient struct {
	tree    *apt.Node
	prog    stackvm.Program
	cs      apt.CoordSystem
	palette Palette
	table   [GradientTableSize]pcolor
}

// NewGradient compiles tree and expands pal into the dense lookup
// table once at construction time.
func NewGradient(tree *apt.Node, pal Palette, cs apt.CoordSystem) *Gradient {
	return &Gradient{
		tree:    tree,
		prog:    stackvm.Compile(tree),
		cs:      cs,
		palette: pal,
		table:   pal.BuildTable(),
	}
}

func (g *Gradient) ToLisp() string {
	var b strings.Builder
	b.WriteString(headerGradient)
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(len(g.palette.Colors)))
	for i, c := range g.palette.Colors {
		b.WriteString(" ")
		writeColor4(&b, c)
		b.WriteString(" ")
		writeFloat(&b, g.palette.Positions[i])
	}
	b.WriteString(" ")
	b.WriteString(g.tree.ToLisp())
	return b.String()
}

func (g *Gradient) GetRGBA8(w, h int, t float64, table *assets.Table) []byte {
	return frame.Render([]stackvm.Program{g.prog}, g.cs, w, h, t, table,
		func(vals [][]float64, lane int) (r, gr, bl, a uint8) {
			idx := Index(vals[0][lane])
			c := g.table[idx]
			return byteOf(c.R), byteOf(c.G), byteOf(c.B), byteOfAlpha(c.A)
		})
}

func byteOfAlpha(a float64) uint8 {
	return byteOf(color.Clamp01(a))
}
