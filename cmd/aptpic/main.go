// Command aptpic generates, parses, renders, and optionally previews
// Arithmetic Picture Tree images. Flag surface and flag.Parse/log.Fatalf
// wiring follow gintendo.go's CLI shape directly.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bdwalton/aptpic/internal/alog"
	"github.com/bdwalton/aptpic/internal/apt"
	"github.com/bdwalton/aptpic/internal/apterr"
	"github.com/bdwalton/aptpic/internal/assets"
	"github.com/bdwalton/aptpic/internal/shell"
	"github.com/bdwalton/aptpic/internal/ui"
	"github.com/bdwalton/aptpic/internal/video"
)

var (
	width     = flag.Int("w", 512, "Output image width.")
	height    = flag.Int("h", 512, "Output image height.")
	seed      = flag.Int64("seed", 0, "Random seed; 0 picks a time-derived seed.")
	depthMin  = flag.Int("depth-min", 2, "Minimum generated tree depth.")
	depthMax  = flag.Int("depth-max", 6, "Maximum generated tree depth.")
	animated  = flag.Bool("animated", false, "Allow generated trees to reference T.")
	coords    = flag.String("coords", "cartesian", "Coordinate system: cartesian or polar.")
	assetDir  = flag.String("assets", "", "Directory of asset images for Pic sampling.")
	shellArg  = flag.String("shell", "random", "Shell kind: mono, rgb, hsv, gradient, or random.")
	inFile    = flag.String("in", "", "Parse a shell from this S-expression file instead of generating one.")
	outFile   = flag.String("out", "", "Write a single rendered PNG here.")
	framesDir = flag.String("frames-dir", "", "Write a numbered PNG frame sequence into this directory.")
	fps       = flag.Float64("fps", 30, "Frames per second for -frames-dir.")
	durMS     = flag.Int("duration-ms", 1000, "Animation duration in milliseconds for -frames-dir.")
	preview   = flag.Bool("preview", false, "Launch an ebiten live preview window instead of writing files.")
	histogram = flag.String("histogram", "", "Write a luminance histogram PNG of the rendered frame here.")
	debugLvl  = flag.Bool("debug", false, "Enable debug logging.")
)

func main() {
	flag.Parse()
	level := alog.LevelInfo
	if *debugLvl {
		level = alog.LevelDebug
	}
	log := alog.New(level)

	cs, err := parseCoordSystem(*coords)
	if err != nil {
		log.Fatalf("bad -coords: %v", err)
	}

	table := assets.Empty()
	var assetNames []string
	if *assetDir != "" {
		t, err := assets.Load(*assetDir)
		if err != nil {
			log.Fatalf("loading assets: %v", err)
		}
		table = t
		assetNames = table.Names()
	}

	sh, err := buildOrParseShell(cs, assetNames, log)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Infof("shell: %s", sh.ToLisp())

	switch {
	case *preview:
		runPreview(sh, table)
	case *framesDir != "":
		writeFrames(sh, table, log)
	default:
		writeSinglePNG(sh, table, log)
	}

	if *histogram != "" {
		if err := writeHistogram(sh, table, *histogram); err != nil {
			log.Fatalf("writing histogram: %v", err)
		}
	}
}

func parseCoordSystem(s string) (apt.CoordSystem, error) {
	switch s {
	case "cartesian", "":
		return apt.Cartesian, nil
	case "polar":
		return apt.Polar, nil
	default:
		return apt.Cartesian, fmt.Errorf("unknown coordinate system %q", s)
	}
}

func buildOrParseShell(cs apt.CoordSystem, assetNames []string, log *alog.Logger) (shell.Shell, error) {
	if *inFile != "" {
		data, err := os.ReadFile(*inFile)
		if err != nil {
			return nil, apterr.NewAssetError(*inFile, err)
		}
		return shell.ParseShell(string(data), cs, assetNames)
	}

	rng := newRNG()
	kind := shellKindFromFlag(*shellArg, rng)
	log.Debugf("building shell kind=%d depth=[%d,%d] animated=%v", kind, *depthMin, *depthMax, *animated)
	return shell.BuildShell(kind, *depthMin, *depthMax, *animated, cs, assetNames, rng), nil
}

func newRNG() *rand.Rand {
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func shellKindFromFlag(s string, rng *rand.Rand) shell.Kind {
	switch s {
	case "mono":
		return shell.KindMono
	case "rgb":
		return shell.KindRGB
	case "hsv":
		return shell.KindHSV
	case "gradient":
		return shell.KindGradient
	default:
		return shell.Kind(rng.Intn(4))
	}
}

func runPreview(sh shell.Shell, table *assets.Table) {
	v := ui.New(sh, *width, *height, *animated, table)
	if err := ebiten.RunGame(v); err != nil {
		alog.New(alog.LevelInfo).Fatalf("preview: %v", err)
	}
}

func writeSinglePNG(sh shell.Shell, table *assets.Table, log *alog.Logger) {
	if *outFile == "" {
		log.Infof("no -out given; skipping PNG write")
		return
	}
	buf := sh.GetRGBA8(*width, *height, -1, table)
	if err := writePNG(*outFile, *width, *height, buf); err != nil {
		log.Fatalf("writing PNG: %v", err)
	}
}

func writeFrames(sh shell.Shell, table *assets.Table, log *alog.Logger) {
	if err := os.MkdirAll(*framesDir, 0o755); err != nil {
		log.Fatalf("creating frames dir: %v", err)
	}
	frames := video.GetVideo(sh, *width, *height, *fps, *durMS, table)
	for i, f := range frames {
		path := filepath.Join(*framesDir, fmt.Sprintf("frame-%04d.png", i))
		if err := writePNG(path, *width, *height, f); err != nil {
			log.Fatalf("writing frame %d: %v", i, err)
		}
	}
	log.Infof("wrote %d frames to %s", len(frames), *framesDir)
}

// writePNG wraps buf (already row-major RGBA8 with a w*4 stride) in
// an image.RGBA with no copy, and PNG-encodes it.
func writePNG(path string, w, h int, buf []byte) error {
	img := &image.RGBA{Pix: buf, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// histogramBins is the bucket count for the luminance debug plot.
const histogramBins = 32

// writeHistogram buckets the rendered frame's per-pixel luminance with
// stat.Histogram and plots the counts as a bar chart, the way
// js-arias-phygeo buckets distances with stat.Quantile before handing
// the result to gonum/plot.
func writeHistogram(sh shell.Shell, table *assets.Table, path string) error {
	buf := sh.GetRGBA8(*width, *height, -1, table)
	vals := make([]float64, 0, (*width)*(*height))
	for i := 0; i < len(buf); i += 4 {
		lum := 0.299*float64(buf[i]) + 0.587*float64(buf[i+1]) + 0.114*float64(buf[i+2])
		vals = append(vals, lum)
	}

	dividers := make([]float64, histogramBins+1)
	for i := range dividers {
		dividers[i] = float64(i) / histogramBins * 255
	}
	counts := stat.Histogram(nil, dividers, vals, nil)

	p := plot.New()
	p.Title.Text = "luminance histogram"
	p.X.Label.Text = "bucket"
	p.Y.Label.Text = "count"

	bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(4))
	if err != nil {
		return err
	}
	p.Add(bars)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
