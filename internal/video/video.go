// Package video implements the frame-sequence driver from spec.md
// section 4.6: it walks a shell.Shell across a linear time ramp and
// renders one RGBA8 buffer per frame. Grounded on
// phanxgames-willow/camera.go's scroll-tween pattern
// (gween.New(from, to, duration, ease) + repeated Update(dt) calls),
// generalized from a camera's (x,y) scroll to the picture's t ramp.
package video

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/bdwalton/aptpic/internal/assets"
)

// Shell is the subset of shell.Shell that GetVideo needs; declared
// locally so this package does not import internal/shell.
type Shell interface {
	GetRGBA8(w, h int, t float64, assets *assets.Table) []byte
}

// FrameCount implements "N = floor(fps * durationMS / 1000)" from
// spec.md section 4.6.
func FrameCount(fps float64, durationMS int) int {
	n := int(fps * float64(durationMS) / 1000)
	if n < 0 {
		n = 0
	}
	return n
}

// GetVideo renders N = FrameCount(fps, durationMS) frames of sh across
// a w x h grid, with t ramping linearly from -1 toward 1 in steps of
// 2/N, so the last frame is at t=1-2/N. A single-frame request (N==1)
// renders one frame at t=-1; N<=0 returns nil.
func GetVideo(sh Shell, w, h int, fps float64, durationMS int, table *assets.Table) [][]byte {
	n := FrameCount(fps, durationMS)
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return [][]byte{sh.GetRGBA8(w, h, -1, table)}
	}

	dt := float32(1.0 / fps)
	tween := gween.New(-1, 1, float32(n)*dt, ease.Linear)

	frames := make([][]byte, n)
	t := float32(-1)
	for i := 0; i < n; i++ {
		frames[i] = sh.GetRGBA8(w, h, float64(t), table)
		var done bool
		t, done = tween.Update(dt)
		if done {
			t = 1
		}
	}
	return frames
}
