package shell

import (
	"math"

	"github.com/bdwalton/aptpic/internal/apt"
	"github.com/bdwalton/aptpic/internal/assets"
	"github.com/bdwalton/aptpic/internal/color"
	"github.com/bdwalton/aptpic/internal/frame"
	"github.com/bdwalton/aptpic/internal/stackvm"
)

// HSV is the three-program shell from spec.md section 3: each
// program's output is mapped to [0,1] by (v+1)/2 (wrapping to unit),
// then converted HSV->RGB.
type HSV struct {
	h, s, v *apt.Node
	progs   []stackvm.Program
	cs      apt.CoordSystem
}

// NewHSV compiles the three channel trees once.
func NewHSV(h, s, v *apt.Node, cs apt.CoordSystem) *HSV {
	return &HSV{
		h: h, s: s, v: v,
		progs: []stackvm.Program{stackvm.Compile(h), stackvm.Compile(s), stackvm.Compile(v)},
		cs:    cs,
	}
}

func (sh *HSV) ToLisp() string {
	return headerHSV + " " + sh.h.ToLisp() + " " + sh.s.ToLisp() + " " + sh.v.ToLisp()
}

func (sh *HSV) GetRGBA8(w, h int, t float64, table *assets.Table) []byte {
	return frame.Render(sh.progs, sh.cs, w, h, t, table,
		func(vals [][]float64, lane int) (r, g, b, a uint8) {
			hv := (vals[0][lane] + 1) / 2
			sv := (vals[1][lane] + 1) / 2
			vv := (vals[2][lane] + 1) / 2
			rf, gf, bf := color.HSVToRGB(hv, sv, vv)
			return byteOf(rf), byteOf(gf), byteOf(bf), 255
		})
}

func byteOf(v float64) uint8 {
	v = color.Clamp01(v)
	return uint8(math.Round(v * 255))
}
