// Package apt implements the Arithmetic Picture Tree: the symbolic
// expression language evaluated once per pixel. A Node is either a
// leaf (X, Y, T, Constant, PicRef) or an operator with a fixed arity
// over an ordered list of child subtrees, per spec.md section 3.
package apt

import "fmt"

// Kind tags every node variant, following the teacher's
// mos6502/opcodes.go convention of an iota-enumerated instruction set
// with a name table alongside it.
type Kind int

const (
	// Leaves.
	KindX Kind = iota
	KindY
	KindT
	KindConstant
	KindPicRef

	// Arithmetic.
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindMod
	KindFloorDiv
	KindNeg
	KindAbs
	KindSquare
	KindSqrt

	// Trig/transcendental.
	KindSin
	KindCos
	KindTan
	KindAtan
	KindAtan2
	KindLog

	// Rounding/range control.
	KindFloor
	KindCeil
	KindClamp
	KindWrap
	KindMin
	KindMax
	KindIf

	// Noise family.
	KindFBM
	KindRidge
	KindTurbulence
	KindCell1
	KindCell2

	// Asset sampler.
	KindPic
)

var kindNames = map[Kind]string{
	KindX: "X", KindY: "Y", KindT: "T", KindConstant: "Constant", KindPicRef: "PicRef",
	KindAdd: "Add", KindSub: "Sub", KindMul: "Mul", KindDiv: "Div",
	KindMod: "Mod", KindFloorDiv: "FloorDiv",
	KindNeg: "Neg", KindAbs: "Abs", KindSquare: "Square", KindSqrt: "Sqrt",
	KindSin: "Sin", KindCos: "Cos", KindTan: "Tan", KindAtan: "Atan", KindAtan2: "Atan2",
	KindLog: "Log", KindFloor: "Floor", KindCeil: "Ceil", KindClamp: "Clamp", KindWrap: "Wrap",
	KindMin: "Min", KindMax: "Max", KindIf: "If",
	KindFBM: "FBM", KindRidge: "Ridge", KindTurbulence: "Turbulence",
	KindCell1: "Cell1", KindCell2: "Cell2", KindPic: "Pic",
}

var namesToKind map[string]Kind

func init() {
	namesToKind = make(map[string]Kind, len(kindNames))
	for k, n := range kindNames {
		namesToKind[n] = k
	}
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindByName resolves an operator/leaf name to its Kind, used by the
// parser.
func KindByName(name string) (Kind, bool) {
	k, ok := namesToKind[name]
	return k, ok
}

// IsLeaf reports whether a node of this kind never has children.
func (k Kind) IsLeaf() bool {
	switch k {
	case KindX, KindY, KindT, KindConstant, KindPicRef:
		return true
	default:
		return false
	}
}

// scalarArity is the number of scalar-valued operand children a node
// takes, matching spec.md section 3's operator catalog table exactly.
// Pic's name argument is not a scalar operand (it's resolved to an
// asset index at compile time) and so isn't counted here; see
// Node.Children for the full, including-name child list.
var scalarArity = map[Kind]int{
	KindAdd: 2, KindSub: 2, KindMul: 2, KindDiv: 2,
	KindMod: 2, KindFloorDiv: 2,
	KindNeg: 1, KindAbs: 1, KindSquare: 1, KindSqrt: 1,
	KindSin: 1, KindCos: 1, KindTan: 1, KindAtan: 1, KindAtan2: 2,
	KindLog: 1, KindFloor: 1, KindCeil: 1, KindClamp: 1, KindWrap: 1,
	KindMin: 2, KindMax: 2, KindIf: 3,
	KindFBM: 3, KindRidge: 3, KindTurbulence: 3, KindCell1: 3, KindCell2: 3,
	KindPic: 2,
}

// Arity returns the declared scalar arity of an internal node kind.
// It panics for leaf kinds, which have no arity.
func Arity(k Kind) int {
	a, ok := scalarArity[k]
	if !ok {
		panic(fmt.Sprintf("apt: Arity called on leaf kind %s", k))
	}
	return a
}

// isTLeaf reports whether a subtree rooted at this kind is
// only legal when the tree is allowed to reference T (i.e. it is T
// itself; internal nodes are fine in still trees as long as none of
// their descendants are T).
func (k Kind) isTLeaf() bool {
	return k == KindT
}
