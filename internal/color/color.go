// Package color implements the small color utilities shared by the
// colorization shells: linear interpolation, HSV<->RGB conversion and
// random color generation.
package color

import (
	"math"

	"golang.org/x/image/colornames"
)

// RGBA is a color with channels in [0,1]. Quantization to byte
// channels happens only at the shell boundary.
type RGBA struct {
	R, G, B, A float64
}

// Lerp linearly interpolates between a and b by pct, which is expected
// in [0,1] but not clamped.
func Lerp(a, b, pct float64) float64 {
	return a + pct*(b-a)
}

// LerpRGBA interpolates every channel of two colors by pct.
func LerpRGBA(a, b RGBA, pct float64) RGBA {
	return RGBA{
		R: Lerp(a.R, b.R, pct),
		G: Lerp(a.G, b.G, pct),
		B: Lerp(a.B, b.B, pct),
		A: Lerp(a.A, b.A, pct),
	}
}

// Clamp01 clamps v into [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wrap01 folds v into [0,1.0001) by taking it modulo 1.0001, the way
// pic.rs's wrap_0_1 folds a hue that has drifted past 1.0 back into
// range; inputs in [0,1] pass through unchanged.
func wrap01(v float64) float64 {
	m := math.Mod(v, 1.0001)
	if m < 0 {
		m += 1.0001
	}
	return m
}

// HSVToRGB converts h,s,v (each expected in [0,1]) to RGB in [0,1],
// following the standard sextant decomposition. All three inputs are
// wrapped to the unit range rather than clamped, matching pic.rs's
// uniform wrap_0_1 call on hs/ss/vs before hsv_to_rgb.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h = wrap01(h)
	s = wrap01(s)
	v = wrap01(v)

	hi := int(math.Floor(h * 6))
	f := h*6 - float64(hi)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch ((hi % 6) + 6) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// RGBToHSV is the inverse of HSVToRGB, used only by tests to verify
// the round-trip invariant.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	v = max
	d := max - min
	if max == 0 {
		s = 0
	} else {
		s = d / max
	}
	if d == 0 {
		h = 0
		return
	}
	switch max {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h /= 6
	if h < 0 {
		h++
	}
	return
}

// RandomSource is the minimal RNG surface the color utilities need;
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// RandomNamedColor picks a uniformly random entry from x/image/colornames'
// CSS color set, for callers (palette generation) that want named,
// recognizable stops rather than arbitrary RGB triples.
func RandomNamedColor(rng RandomSource) RGBA {
	name := colornames.Names[int(rng.Float64()*float64(len(colornames.Names)))]
	c := colornames.Map[name]
	return RGBA{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: float64(c.A) / 255}
}

// ToBytes quantizes a channel in [0,1] to a byte, matching the
// teacher's NES PPU color struct's byte channels.
func ToBytes(c RGBA) (r, g, b, a uint8) {
	return byteOf(c.R), byteOf(c.G), byteOf(c.B), byteOf(c.A)
}

func byteOf(v float64) uint8 {
	v = Clamp01(v)
	return uint8(math.Round(v * 255))
}
