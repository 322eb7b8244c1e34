package shell

import (
	"math/rand"

	"github.com/bdwalton/aptpic/internal/apt"
)

// Kind selects which color shell BuildShell constructs.
type Kind int

const (
	KindMono Kind = iota
	KindRGB
	KindHSV
	KindGradient
)

// BuildShell implements the evaluator API's build_tree(depth_min,
// depth_max, animated, seed) -> Shell from spec.md section 6: it
// picks a random tree depth in [depthMin,depthMax), generates the
// tree(s) a shell of the given kind needs, and (for Gradient) a
// random palette. assetNames enables Pic selection in the generated
// trees.
func BuildShell(kind Kind, depthMin, depthMax int, animated bool, cs apt.CoordSystem, assetNames []string, rng *rand.Rand) Shell {
	depth := func() int {
		if depthMax <= depthMin {
			return depthMin
		}
		return depthMin + rng.Intn(depthMax-depthMin)
	}

	switch kind {
	case KindRGB:
		return NewRGB(
			apt.GenerateTree(depth(), animated, assetNames, rng),
			apt.GenerateTree(depth(), animated, assetNames, rng),
			apt.GenerateTree(depth(), animated, assetNames, rng),
			cs,
		)
	case KindHSV:
		return NewHSV(
			apt.GenerateTree(depth(), animated, assetNames, rng),
			apt.GenerateTree(depth(), animated, assetNames, rng),
			apt.GenerateTree(depth(), animated, assetNames, rng),
			cs,
		)
	case KindGradient:
		return NewGradient(apt.GenerateTree(depth(), animated, assetNames, rng), RandomPalette(rng), cs)
	default:
		return NewMono(apt.GenerateTree(depth(), animated, assetNames, rng), cs)
	}
}
