package shell

import (
	"github.com/bdwalton/aptpic/internal/apt"
	"github.com/bdwalton/aptpic/internal/assets"
	"github.com/bdwalton/aptpic/internal/frame"
	"github.com/bdwalton/aptpic/internal/stackvm"
)

// RGB is the three-program shell from spec.md section 3: each channel
// independently scaled the same way Mono scales its single channel.
type RGB struct {
	r, g, b *apt.Node
	progs   []stackvm.Program
	cs      apt.CoordSystem
}

// NewRGB compiles the three channel trees once.
func NewRGB(r, g, b *apt.Node, cs apt.CoordSystem) *RGB {
	return &RGB{
		r: r, g: g, b: b,
		progs: []stackvm.Program{stackvm.Compile(r), stackvm.Compile(g), stackvm.Compile(b)},
		cs:    cs,
	}
}

func (s *RGB) ToLisp() string {
	return headerRGB + " " + s.r.ToLisp() + " " + s.g.ToLisp() + " " + s.b.ToLisp()
}

func (s *RGB) GetRGBA8(w, h int, t float64, table *assets.Table) []byte {
	return frame.Render(s.progs, s.cs, w, h, t, table,
		func(vals [][]float64, lane int) (r, g, b, a uint8) {
			return toChannelByte(vals[0][lane]), toChannelByte(vals[1][lane]), toChannelByte(vals[2][lane]), 255
		})
}
