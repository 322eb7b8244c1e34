// Package ui implements the optional live preview window: an
// ebiten.Game that polls a shell.Shell once per tick and blits its
// rendered RGBA8 buffer to the screen. Grounded directly on
// console/bus.go's Bus (Layout/Draw/Update ebiten.Game
// implementation), generalized from "drive an NES PPU framebuffer" to
// "drive an APT shell's rendered frame", and from gintendo.go's
// context.WithCancel goroutine pairing for background work alongside
// ebiten.RunGame.
package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bdwalton/aptpic/internal/assets"
	"github.com/bdwalton/aptpic/internal/shell"
)

// Viewer renders sh into a w x h window, advancing its time parameter
// at tRate units per second when animated is true.
type Viewer struct {
	sh       shell.Shell
	table    *assets.Table
	w, h     int
	animated bool
	tRate    float64

	t        float64
	lastTick time.Time
}

// New constructs a Viewer and sizes the ebiten window to match,
// mirroring console.New's ebiten.SetWindowSize/SetWindowTitle setup.
func New(sh shell.Shell, w, h int, animated bool, table *assets.Table) *Viewer {
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("aptpic preview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return &Viewer{
		sh:       sh,
		table:    table,
		w:        w,
		h:        h,
		animated: animated,
		tRate:    0.5, // t sweeps the full [-1,1] range every 4 seconds
	}
}

// Layout returns the fixed render resolution so ebiten scales the
// window rather than the content, as console/bus.go's Layout does.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.w, v.h
}

// Draw renders the current frame and blits the whole buffer at once
// with WritePixels, matching the frame driver's "whole buffer, once
// per frame" contract rather than Bus.Draw's per-pixel screen.Set
// loop. Layout fixes screen's bounds at (v.w, v.h), so buf's length
// always matches what WritePixels expects.
func (v *Viewer) Draw(screen *ebiten.Image) {
	buf := v.sh.GetRGBA8(v.w, v.h, v.t, v.table)
	screen.WritePixels(buf)
}

// Update advances t when the shell is animated. It never returns an
// error: rendering is total, so there is nothing for the preview loop
// to fail on.
func (v *Viewer) Update() error {
	if !v.animated {
		return nil
	}
	now := time.Now()
	if v.lastTick.IsZero() {
		v.lastTick = now
		return nil
	}
	dt := now.Sub(v.lastTick).Seconds()
	v.lastTick = now

	v.t += v.tRate * dt
	for v.t > 1 {
		v.t -= 2
	}
	return nil
}
