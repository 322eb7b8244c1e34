package shell

import (
	"math"
	"math/rand"
	"sort"

	"github.com/bdwalton/aptpic/internal/color"
)

// pcolor is a palette stop color with an explicit alpha channel
// (gradient headers serialize alpha literally, unlike the other
// shells which always force alpha to opaque).
type pcolor struct {
	R, G, B, A float64
}

// GradientTableSize is the fixed 512-entry lookup table size from
// spec.md section 3.
const GradientTableSize = 512

// Palette is the K in [2,10] (color, position) stops that a Gradient
// shell interpolates between.
type Palette struct {
	Colors    []pcolor
	Positions []float64
}

// RandomPalette builds a palette of K colors (K uniform in [2,10]) at
// K sorted random positions in [0,1], forcing the first position to 0
// and the last to 1 per spec.md section 3.
func RandomPalette(rng *rand.Rand) Palette {
	k := 2 + rng.Intn(9) // [2,10]
	positions := make([]float64, k)
	positions[0] = 0
	positions[k-1] = 1
	for i := 1; i < k-1; i++ {
		positions[i] = rng.Float64()
	}
	sort.Float64s(positions)

	colors := make([]pcolor, k)
	for i := range colors {
		c := color.RandomNamedColor(rng)
		colors[i] = pcolor{R: c.R, G: c.G, B: c.B, A: 1}
	}
	return Palette{Colors: colors, Positions: positions}
}

// BuildTable expands the palette's sparse stops into a dense
// GradientTableSize-entry lookup table, linearly interpolating
// between adjacent stops, satisfying testable property 5:
// table[0]==c0, table[511]==c_{K-1}.
func (p Palette) BuildTable() [GradientTableSize]pcolor {
	var table [GradientTableSize]pcolor
	k := len(p.Colors)
	if k == 0 {
		return table
	}
	if k == 1 {
		for i := range table {
			table[i] = p.Colors[0]
		}
		return table
	}

	seg := 0
	for i := 0; i < GradientTableSize; i++ {
		pos := float64(i) / float64(GradientTableSize-1)
		for seg < k-2 && pos > p.Positions[seg+1] {
			seg++
		}
		lo, hi := p.Positions[seg], p.Positions[seg+1]
		pct := 0.0
		if hi > lo {
			pct = (pos - lo) / (hi - lo)
		}
		a, b := p.Colors[seg], p.Colors[seg+1]
		table[i] = pcolor{
			R: color.Lerp(a.R, b.R, pct),
			G: color.Lerp(a.G, b.G, pct),
			B: color.Lerp(a.B, b.B, pct),
			A: color.Lerp(a.A, b.A, pct),
		}
	}
	return table
}

// Index maps a node output v in [-1,1] to a table slot, clamping the
// v=+1 endpoint to the last slot rather than wrapping it back to 0,
// and using a non-negative modulo tie-break for any out-of-range
// input below -1, per spec.md section 4.4.
func Index(v float64) int {
	idx := int(math.Floor((v + 1) / 2 * GradientTableSize))
	if idx >= GradientTableSize {
		idx = GradientTableSize - 1
	}
	idx %= GradientTableSize
	if idx < 0 {
		idx += GradientTableSize
	}
	return idx
}
