package color

import (
	"math"
	"math/rand"
	"testing"
)

func TestLerp(t *testing.T) {
	cases := []struct {
		a, b, pct float64
		want      float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{-1, 1, 0.5, 0},
	}
	for i, tc := range cases {
		if got := Lerp(tc.a, tc.b, tc.pct); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%d: Lerp(%v,%v,%v) = %v, want %v", i, tc.a, tc.b, tc.pct, got, tc.want)
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	cases := []RGBA{
		{R: 1, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
		{R: 0.2, G: 0.6, B: 0.9},
		{R: 1, G: 1, B: 1},
		{R: 0, G: 0, B: 0},
	}
	for i, c := range cases {
		h, s, v := RGBToHSV(c.R, c.G, c.B)
		r, g, b := HSVToRGB(h, s, v)
		if math.Abs(r-c.R) > 1.0/255 || math.Abs(g-c.G) > 1.0/255 || math.Abs(b-c.B) > 1.0/255 {
			t.Errorf("%d: round trip %v -> hsv(%v,%v,%v) -> (%v,%v,%v)", i, c, h, s, v, r, g, b)
		}
	}
}

func TestHSVToRGBWrapsOutOfRangeSV(t *testing.T) {
	// s=2 should be wrapped by wrap01 like h (to about 0.9999), not
	// clamped to 1 (which would produce pure red here).
	r, g, b := HSVToRGB(0, 2, 1)
	if r == 1 && g == 0 && b == 0 {
		t.Errorf("HSVToRGB(0,2,1) = (%v,%v,%v), looks clamped to full saturation instead of wrapped", r, g, b)
	}

	wr, wg, wb := HSVToRGB(0, wrap01(2), 1)
	if r != wr || g != wg || b != wb {
		t.Errorf("HSVToRGB(0,2,1) = (%v,%v,%v), want same as wrap01(2) = (%v,%v,%v)", r, g, b, wr, wg, wb)
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-5) != 0 {
		t.Error("expected clamp to 0")
	}
	if Clamp01(5) != 1 {
		t.Error("expected clamp to 1")
	}
	if Clamp01(0.5) != 0.5 {
		t.Error("expected passthrough")
	}
}

func TestRandomNamedColorIsOpaqueAndInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		c := RandomNamedColor(rng)
		if c.A != 1 {
			t.Errorf("alpha = %v, want 1 (CSS named colors are opaque)", c.A)
		}
		for _, ch := range []float64{c.R, c.G, c.B} {
			if ch < 0 || ch > 1 {
				t.Errorf("channel = %v, want in [0,1]", ch)
			}
		}
	}
}

func TestToBytes(t *testing.T) {
	r, g, b, a := ToBytes(RGBA{R: 0, G: 0.5, B: 1, A: 1})
	if r != 0 || b != 255 || a != 255 {
		t.Errorf("got (%d,%d,%d,%d)", r, g, b, a)
	}
}
