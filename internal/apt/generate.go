package apt

import "math/rand"

// internalKinds lists every operator kind in deterministic order,
// used by GenerateTree for uniform selection. Pic is appended
// separately only when the caller has at least one asset name.
var internalKinds = []Kind{
	KindAdd, KindSub, KindMul, KindDiv, KindMod, KindFloorDiv,
	KindNeg, KindAbs, KindSquare, KindSqrt,
	KindSin, KindCos, KindTan, KindAtan, KindAtan2, KindLog,
	KindFloor, KindCeil, KindClamp, KindWrap, KindMin, KindMax, KindIf,
	KindFBM, KindRidge, KindTurbulence, KindCell1, KindCell2,
}

// leafProbability is the chance of emitting a leaf instead of an
// operator at a given remaining depth; it rises to 1 at depth<=0, per
// spec.md 4.1 ("depth<=0 forces leaf").
func leafProbability(depth int) float64 {
	if depth <= 0 {
		return 1
	}
	return 1.0 / float64(depth+1)
}

// GenerateTree builds a random tree of height at most depth+1 (each
// level below the root gets depth-1, and depth<=0 is always a leaf).
// animated=false forbids any T leaf anywhere in the tree (and
// therefore every descendant of every node) per spec.md 4.1. assetNames
// enables Pic selection, and must be non-empty for Pic to ever be
// chosen; when Pic is chosen its name child is picked uniformly from
// assetNames. Never fails: depth<=0 always emits a leaf.
func GenerateTree(depth int, animated bool, assetNames []string, rng *rand.Rand) *Node {
	if rng.Float64() < leafProbability(depth) {
		return generateLeaf(animated, assetNames, rng)
	}
	return generateInternal(depth, animated, assetNames, rng)
}

func generateLeaf(animated bool, assetNames []string, rng *rand.Rand) *Node {
	options := []Kind{KindX, KindY, KindConstant}
	if animated {
		options = append(options, KindT)
	}
	switch k := options[rng.Intn(len(options))]; k {
	case KindConstant:
		return NewConstant(rng.Float64()*2 - 1)
	default:
		return NewLeaf(k)
	}
}

func generateInternal(depth int, animated bool, assetNames []string, rng *rand.Rand) *Node {
	canPic := len(assetNames) > 0
	n := len(internalKinds)
	if canPic {
		n++
	}
	idx := rng.Intn(n)
	if canPic && idx == len(internalKinds) {
		name := assetNames[rng.Intn(len(assetNames))]
		b := GenerateTree(depth-1, animated, assetNames, rng)
		c := GenerateTree(depth-1, animated, assetNames, rng)
		return NewPic(name, b, c)
	}

	kind := internalKinds[idx]
	children := make([]*Node, Arity(kind))
	for i := range children {
		children[i] = GenerateTree(depth-1, animated, assetNames, rng)
	}
	return NewOp(kind, children...)
}
