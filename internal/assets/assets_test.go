package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir, name string, w, h int, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSkipsUnsupportedAndDecodesSupported(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, dir, "red.png", 2, 2, color.RGBA{255, 0, 0, 255})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("expected 1 asset, got %d", tbl.Len())
	}
	img, ok := tbl.Get("red")
	if !ok {
		t.Fatal("expected asset named 'red'")
	}
	r, g, b, a := img.At(0, 0)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("got (%d,%d,%d,%d), want red opaque", r, g, b, a)
	}
}

func TestLoadMissingDirIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestAtWraps(t *testing.T) {
	img := &Image{W: 2, H: 1, Pix: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	r, _, _, _ := img.At(2, 0) // wraps to x=0
	if r != 1 {
		t.Errorf("expected wrap to x=0 (r=1), got r=%d", r)
	}
	r, _, _, _ = img.At(-1, 0) // wraps to x=1
	if r != 5 {
		t.Errorf("expected wrap to x=1 (r=5), got r=%d", r)
	}
}
