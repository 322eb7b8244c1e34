// Package shell implements the outer colorization layer: Mono, RGB,
// HSV and Gradient, each owning one or three compiled APT programs
// (plus Gradient's palette table) and exposing GetRGBA8, matching
// spec.md section 3's "Color shell" data model and section 6's
// evaluator API (get_rgba8/serialize/parse). Grounded directly on
// original_source/src/pic.rs's MonoPic/RgbPic/HsvPic/get_rgba8
// methods, generalized from the Rust SIMD backend to the Go frame
// driver in internal/frame.
package shell

import (
	"strconv"
	"strings"

	"github.com/bdwalton/aptpic/internal/apt"
	"github.com/bdwalton/aptpic/internal/apterr"
	"github.com/bdwalton/aptpic/internal/assets"
)

// Shell is a fully-typed, ready-to-render color shell.
type Shell interface {
	// GetRGBA8 evaluates the shell over a w x h grid at time t,
	// returning a row-major RGBA8 buffer of length w*h*4.
	GetRGBA8(w, h int, t float64, assets *assets.Table) []byte
	// ToLisp serializes the shell (header line + tree(s)) back to
	// the textual S-expression format from spec.md section 6.
	ToLisp() string
}

// header keywords, from spec.md section 6.
const (
	headerMono     = "Mono"
	headerRGB      = "RGB"
	headerHSV      = "HSV"
	headerGradient = "Gradient"
)

// ParseShell tokenizes text and parses a fully-typed Shell, validating
// every operator's arity and every Pic reference against assetNames
// (see apt.Parse). coordSystem is carried alongside the parsed tree(s)
// as spec.md section 3 requires.
func ParseShell(text string, coordSystem apt.CoordSystem, assetNames []string) (Shell, error) {
	toks := apt.Tokenize(text)
	if len(toks) == 0 {
		return nil, apterr.NewParseError(0, "empty input")
	}

	switch toks[0] {
	case headerMono:
		tree, next, err := apt.Parse(toks, 1, assetNames)
		if err != nil {
			return nil, err
		}
		if next != len(toks) {
			return nil, apterr.NewParseError(next, "trailing tokens after Mono tree")
		}
		return NewMono(tree, coordSystem), nil

	case headerRGB:
		trees, next, err := parseNTrees(toks, 1, 3, assetNames)
		if err != nil {
			return nil, err
		}
		if next != len(toks) {
			return nil, apterr.NewParseError(next, "trailing tokens after RGB trees")
		}
		return NewRGB(trees[0], trees[1], trees[2], coordSystem), nil

	case headerHSV:
		trees, next, err := parseNTrees(toks, 1, 3, assetNames)
		if err != nil {
			return nil, err
		}
		if next != len(toks) {
			return nil, apterr.NewParseError(next, "trailing tokens after HSV trees")
		}
		return NewHSV(trees[0], trees[1], trees[2], coordSystem), nil

	case headerGradient:
		pal, tree, next, err := parseGradientBody(toks, 1, assetNames)
		if err != nil {
			return nil, err
		}
		if next != len(toks) {
			return nil, apterr.NewParseError(next, "trailing tokens after Gradient tree")
		}
		return NewGradient(tree, pal, coordSystem), nil

	default:
		return nil, apterr.NewParseError(0, "unknown shell header %q", toks[0])
	}
}

func parseNTrees(toks []string, pos, n int, assetNames []string) ([]*apt.Node, int, error) {
	trees := make([]*apt.Node, n)
	for i := 0; i < n; i++ {
		tree, next, err := apt.Parse(toks, pos, assetNames)
		if err != nil {
			return nil, pos, err
		}
		trees[i] = tree
		pos = next
	}
	return trees, pos, nil
}

func parseGradientBody(toks []string, pos int, assetNames []string) (Palette, *apt.Node, int, error) {
	if pos >= len(toks) {
		return Palette{}, nil, pos, apterr.NewParseError(pos, "Gradient missing stop count")
	}
	k, err := strconv.Atoi(toks[pos])
	if err != nil || k < 2 || k > 10 {
		return Palette{}, nil, pos, apterr.NewParseError(pos, "Gradient stop count must be an integer in [2,10], got %q", toks[pos])
	}
	pos++

	pal := Palette{}
	for i := 0; i < k; i++ {
		if pos+5 > len(toks) {
			return Palette{}, nil, pos, apterr.NewParseError(pos, "Gradient palette entry %d is truncated", i)
		}
		c, err := parseColor4(toks[pos : pos+4])
		if err != nil {
			return Palette{}, nil, pos, apterr.NewParseError(pos, "Gradient color %d: %v", i, err)
		}
		p, err := strconv.ParseFloat(toks[pos+4], 64)
		if err != nil {
			return Palette{}, nil, pos + 4, apterr.NewParseError(pos+4, "Gradient position %d is not a number", i)
		}
		pal.Colors = append(pal.Colors, c)
		pal.Positions = append(pal.Positions, p)
		pos += 5
	}

	tree, next, err := apt.Parse(toks, pos, assetNames)
	if err != nil {
		return Palette{}, nil, next, err
	}
	return pal, tree, next, nil
}

func parseColor4(toks []string) (pcolor, error) {
	vals := make([]float64, 4)
	for i, tk := range toks {
		v, err := strconv.ParseFloat(tk, 64)
		if err != nil {
			return pcolor{}, err
		}
		vals[i] = v
	}
	return pcolor{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

// writeColor4 serializes a palette color's components space-separated,
// the literal encoding spec.md section 4.2 requires so round-trip
// reproduces the palette exactly.
func writeColor4(b *strings.Builder, c pcolor) {
	writeFloat(b, c.R)
	b.WriteString(" ")
	writeFloat(b, c.G)
	b.WriteString(" ")
	writeFloat(b, c.B)
	b.WriteString(" ")
	writeFloat(b, c.A)
}

func writeFloat(b *strings.Builder, v float64) {
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
}

