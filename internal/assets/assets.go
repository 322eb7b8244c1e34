// Package assets loads the immutable table of named bitmaps that Pic
// nodes sample from. Mirrors the teacher's "decode a fixed external
// format into an in-memory struct, fail loudly if it can't be read"
// shape (see ines/nesrom), generalized from an iNES cartridge image
// to a directory of PNG/JPEG/GIF files.
package assets

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/bdwalton/aptpic/internal/apterr"
	"golang.org/x/image/draw"
)

// Image is a decoded, row-major RGBA8 bitmap.
type Image struct {
	W, H int
	Pix  []byte // len == W*H*4
}

// At returns the RGBA8 texel at (x,y), wrapping coordinates outside
// [0,W)x[0,H) the way §4.4 requires for Pic sampling.
func (img *Image) At(x, y int) (r, g, b, a uint8) {
	x = wrapIndex(x, img.W)
	y = wrapIndex(y, img.H)
	i := (y*img.W + x) * 4
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Table is an immutable, read-only-shared map from short basename
// (without extension) to decoded image.
type Table struct {
	byName map[string]*Image
	names  []string // stable order, for uniform random selection
}

// Names returns the asset names in a stable, deterministic order.
func (t *Table) Names() []string {
	return t.names
}

// Len reports the number of loaded assets.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Get looks up an asset by name.
func (t *Table) Get(name string) (*Image, bool) {
	if t == nil {
		return nil, false
	}
	img, ok := t.byName[name]
	return img, ok
}

// Empty returns a usable Table with no assets, for callers that don't
// need Pic support.
func Empty() *Table {
	return &Table{byName: map[string]*Image{}}
}

var supportedExt = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
}

// Load decodes every supported image file directly inside dir into a
// Table keyed by basename without extension. Unsupported extensions
// are skipped. A directory that cannot be opened is a fatal
// apterr.AssetError; an unreadable/undecodable file is also fatal,
// per spec: asset errors are never raised during evaluation, only at
// construction.
func Load(dir string) (*Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apterr.NewAssetError(dir, err)
	}

	t := &Table{byName: map[string]*Image{}}
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(ent.Name()))
		if !supportedExt[ext] {
			continue
		}
		path := filepath.Join(dir, ent.Name())
		img, err := decodeFile(path)
		if err != nil {
			return nil, apterr.NewAssetError(path, err)
		}
		name := strings.TrimSuffix(ent.Name(), filepath.Ext(ent.Name()))
		t.byName[name] = img
		t.names = append(t.names, name)
	}
	return t, nil
}

func decodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// draw.Draw handles arbitrary source color models (palette,
	// YCbCr, etc); draw.Src copies without blending.
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	return &Image{W: w, H: h, Pix: dst.Pix}, nil
}
