package ui

import (
	"testing"
	"time"

	"github.com/bdwalton/aptpic/internal/apt"
	"github.com/bdwalton/aptpic/internal/assets"
	"github.com/bdwalton/aptpic/internal/shell"
)

func TestLayoutReturnsFixedResolution(t *testing.T) {
	sh := shell.NewMono(apt.NewLeaf(apt.KindX), apt.Cartesian)
	v := &Viewer{sh: sh, table: assets.Empty(), w: 64, h: 48}

	w, h := v.Layout(999, 999)
	if w != 64 || h != 48 {
		t.Errorf("Layout = (%d,%d), want (64,48)", w, h)
	}
}

func TestUpdateStaticShellDoesNothing(t *testing.T) {
	sh := shell.NewMono(apt.NewConstant(0), apt.Cartesian)
	v := &Viewer{sh: sh, table: assets.Empty(), w: 4, h: 4, animated: false}

	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if v.t != 0 {
		t.Errorf("t = %v, want 0 for a non-animated viewer", v.t)
	}
}

func TestUpdateAnimatedAdvancesAndWraps(t *testing.T) {
	sh := shell.NewMono(apt.NewLeaf(apt.KindT), apt.Cartesian)
	v := &Viewer{sh: sh, table: assets.Empty(), w: 4, h: 4, animated: true, tRate: 1}

	v.lastTick = time.Now().Add(-3 * time.Second)
	if err := v.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if v.t < -1 || v.t > 1 {
		t.Errorf("t = %v, want wrapped into [-1,1]", v.t)
	}
}
