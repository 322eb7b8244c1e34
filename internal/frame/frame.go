// Package frame implements the row-strip frame driver from spec.md
// section 4.5/5: it partitions an output buffer into one-row strips,
// dispatches them to a worker pool, and has each worker walk its row
// in lane-width steps, evaluating every program the color shell needs
// and writing the combined pixel bytes. Grounded on gintendo.go's
// context.WithCancel/goroutine pairing, generalized from "one
// emulation goroutine" to a fixed pool of goroutines pulling rows,
// joined with golang.org/x/sync/errgroup instead of a raw WaitGroup.
// Workers never return an error and the group's context is not
// consulted, so no strip cancels another.
package frame

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bdwalton/aptpic/internal/apt"
	"github.com/bdwalton/aptpic/internal/assets"
	"github.com/bdwalton/aptpic/internal/stackvm"
)

// LaneWidth is the software SIMD batch size: the number of pixels a
// single Execute call advances across at once (see spec.md 4.4/9 and
// DESIGN.md's note on why this is a plain float64 batch rather than a
// CPU-intrinsic vector register).
const LaneWidth = 8

// Combine turns one lane's worth of per-program scalar outputs into
// RGBA8 bytes. vals[p][lane] is program p's output for that lane.
type Combine func(vals [][]float64, lane int) (r, g, b, a uint8)

// Render evaluates progs across a w x h grid at time t and returns a
// row-major RGBA8 buffer. combine reduces each pixel's per-program
// values to output bytes. Strips are independent rows; their
// interleaving is unobservable since each owns a disjoint slice of
// buf, matching spec.md section 5's no-aliasing guarantee.
func Render(progs []stackvm.Program, cs apt.CoordSystem, w, h int, t float64, table *assets.Table, combine Combine) []byte {
	buf := make([]byte, w*h*4)
	if w == 0 || h == 0 {
		return buf
	}

	pics := make([][]*assets.Image, len(progs))
	for i, p := range progs {
		pics[i] = stackvm.ResolvePics(p, table)
	}

	g, _ := errgroup.WithContext(context.Background())
	workers := runtime.NumCPU()
	if workers > h {
		workers = h
	}
	if workers < 1 {
		workers = 1
	}

	rows := make(chan int, h)
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			renderRows(rows, progs, pics, cs, w, h, t, buf, combine)
			return nil
		})
	}
	_ = g.Wait() // no stage returns an error: the evaluator is total (spec.md 7)
	return buf
}

func renderRows(rows <-chan int, progs []stackvm.Program, pics [][]*assets.Image, cs apt.CoordSystem, w, h int, t float64, buf []byte, combine Combine) {
	stacks := make([][][]float64, len(progs))
	for i, p := range progs {
		stacks[i] = stackvm.NewStack(p.MaxDepth, LaneWidth)
	}

	xs := make([]float64, LaneWidth)
	rxs := make([]float64, LaneWidth)
	rys := make([]float64, LaneWidth)
	ys := make([]float64, LaneWidth)
	ts := make([]float64, LaneWidth)
	for i := range ts {
		ts[i] = t
	}

	dx := 0.0
	if w > 1 {
		dx = 2.0 / float64(w-1)
	}

	vals := make([][]float64, len(progs))

	for y := range rows {
		yVal := (float64(y) / float64(h)) * 2 - 1
		for i := range ys {
			ys[i] = yVal
		}
		rowOff := y * w * 4

		for x0 := 0; x0 < w; x0 += LaneWidth {
			n := LaneWidth
			if w-x0 < n {
				n = w - x0
			}
			for i := 0; i < n; i++ {
				xs[i] = -1 + float64(x0+i)*dx
			}
			for i := n; i < LaneWidth; i++ {
				xs[i] = xs[0]
			}
			for i := 0; i < LaneWidth; i++ {
				rxs[i], rys[i] = apt.TransformCoords(cs, xs[i], ys[i])
			}

			for p := range progs {
				vals[p] = stackvm.Execute(progs[p], stacks[p], rxs, rys, ts, pics[p])
			}

			for i := 0; i < n; i++ {
				r, g, b, a := combine(vals, i)
				off := rowOff + (x0+i)*4
				buf[off] = r
				buf[off+1] = g
				buf[off+2] = b
				buf[off+3] = a
			}
		}
	}
}
