package video

import (
	"testing"

	"github.com/bdwalton/aptpic/internal/assets"
)

type fakeShell struct {
	calls []float64
}

func (f *fakeShell) GetRGBA8(w, h int, t float64, table *assets.Table) []byte {
	f.calls = append(f.calls, t)
	return make([]byte, w*h*4)
}

func TestFrameCount(t *testing.T) {
	cases := []struct {
		fps         float64
		durationMS  int
		wantN       int
	}{
		{30, 1000, 30},
		{24, 500, 12},
		{10, 0, 0},
		{0, 1000, 0},
	}
	for _, c := range cases {
		if got := FrameCount(c.fps, c.durationMS); got != c.wantN {
			t.Errorf("FrameCount(%v,%v) = %d, want %d", c.fps, c.durationMS, got, c.wantN)
		}
	}
}

func TestGetVideoFrameCountAndDims(t *testing.T) {
	fs := &fakeShell{}
	frames := GetVideo(fs, 4, 3, 10, 1000, assets.Empty())
	if len(frames) != 10 {
		t.Fatalf("got %d frames, want 10", len(frames))
	}
	for i, f := range frames {
		if len(f) != 4*3*4 {
			t.Errorf("frame %d length = %d, want %d", i, len(f), 4*3*4)
		}
	}
}

func TestGetVideoStartsAtMinusOne(t *testing.T) {
	fs := &fakeShell{}
	GetVideo(fs, 2, 2, 5, 1000, assets.Empty())
	if len(fs.calls) == 0 || fs.calls[0] != -1 {
		t.Fatalf("first frame t = %v, want -1", fs.calls[0])
	}
}

func TestGetVideoZeroDurationIsEmpty(t *testing.T) {
	fs := &fakeShell{}
	frames := GetVideo(fs, 2, 2, 30, 0, assets.Empty())
	if frames != nil {
		t.Fatalf("got %d frames, want none", len(frames))
	}
}

func TestGetVideoSingleFrame(t *testing.T) {
	fs := &fakeShell{}
	frames := GetVideo(fs, 2, 2, 2, 500, assets.Empty())
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	if fs.calls[0] != -1 {
		t.Fatalf("single frame t = %v, want -1", fs.calls[0])
	}
}
