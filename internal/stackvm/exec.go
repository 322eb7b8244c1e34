package stackvm

import (
	"math"

	"github.com/bdwalton/aptpic/internal/apt"
	"github.com/bdwalton/aptpic/internal/assets"
)

// NewStack preallocates a scratch stack of Program.MaxDepth slots,
// each a lane-width float64 batch, for reuse across every step of a
// row strip (per spec.md 4.5: "allocates one scratch stack" per
// worker, reused for the whole strip).
func NewStack(depth, laneWidth int) [][]float64 {
	stack := make([][]float64, depth)
	for i := range stack {
		stack[i] = make([]float64, laneWidth)
	}
	return stack
}

// ResolvePics looks up a program's referenced asset names once per
// frame (not once per pixel), matching spec.md 5's "asset table ...
// shared read-only" contract.
func ResolvePics(prog Program, table *assets.Table) []*assets.Image {
	imgs := make([]*assets.Image, len(prog.PicNames))
	for i, name := range prog.PicNames {
		img, _ := table.Get(name)
		imgs[i] = img // nil is fine: parse validated presence, compile trusts it
	}
	return imgs
}

// Execute runs prog across a lane-width batch of pixels. xReg, yReg
// and tReg are the already coordinate-system-transformed register
// values (see apt.TransformCoords) for each lane; stack must have at
// least prog.MaxDepth slots of len(xReg) width (as returned by
// NewStack). The returned slice aliases stack's bottom slot and is
// only valid until the next call to Execute with the same stack.
func Execute(prog Program, stack [][]float64, xReg, yReg, tReg []float64, pics []*assets.Image) []float64 {
	w := len(xReg)
	sp := 0

	for _, ins := range prog.Instructions {
		switch ins.Code {
		case PushConst:
			dst := stack[sp]
			for i := 0; i < w; i++ {
				dst[i] = ins.Const
			}
			sp++
		case PushX:
			copy(stack[sp], xReg)
			sp++
		case PushY:
			copy(stack[sp], yReg)
			sp++
		case PushT:
			copy(stack[sp], tReg)
			sp++
		case Op:
			sp = evalOp(ins.OpKind, stack, sp)
		case Sample:
			c := stack[sp-1]
			b := stack[sp-2]
			img := pics[ins.PicIndex]
			dst := stack[sp-2]
			for i := 0; i < w; i++ {
				dst[i] = sampleBilinear(img, b[i], c[i])
			}
			sp--
		}
	}

	result := stack[sp-1]
	for i := range result {
		result[i] = apt.CoerceFinite(result[i])
	}
	return result
}

// evalOp pops the operands for kind off the stack (top sp slots) and
// pushes one result, returning the new stack pointer. No instruction
// reads more than its declared arity's worth of slots, satisfying
// spec.md 8's invariant 4.
func evalOp(kind apt.Kind, stack [][]float64, sp int) int {
	arity := apt.Arity(kind)
	w := len(stack[0])

	switch arity {
	case 1:
		a := stack[sp-1]
		dst := a
		for i := 0; i < w; i++ {
			dst[i] = apt.CoerceFinite(unary(kind, a[i]))
		}
		return sp

	case 2:
		b := stack[sp-1]
		a := stack[sp-2]
		dst := a
		for i := 0; i < w; i++ {
			dst[i] = apt.CoerceFinite(binary(kind, a[i], b[i]))
		}
		return sp - 1

	default: // 3
		c := stack[sp-1]
		b := stack[sp-2]
		a := stack[sp-3]
		dst := a
		for i := 0; i < w; i++ {
			dst[i] = apt.CoerceFinite(ternary(kind, a[i], b[i], c[i]))
		}
		return sp - 2
	}
}

func unary(kind apt.Kind, a float64) float64 {
	switch kind {
	case apt.KindNeg:
		return -a
	case apt.KindAbs:
		return math.Abs(a)
	case apt.KindSquare:
		return a * a
	case apt.KindSqrt:
		return apt.Sqrt(a)
	case apt.KindSin:
		return math.Sin(a)
	case apt.KindCos:
		return math.Cos(a)
	case apt.KindTan:
		return apt.TanWrapped(a)
	case apt.KindAtan:
		return math.Atan(a)
	case apt.KindLog:
		return apt.Log(a)
	case apt.KindFloor:
		return math.Floor(a)
	case apt.KindCeil:
		return math.Ceil(a)
	case apt.KindClamp:
		return apt.Clamp(a)
	case apt.KindWrap:
		return apt.Wrap(a)
	default:
		return a
	}
}

func binary(kind apt.Kind, a, b float64) float64 {
	switch kind {
	case apt.KindAdd:
		return a + b
	case apt.KindSub:
		return a - b
	case apt.KindMul:
		return a * b
	case apt.KindDiv:
		return apt.SafeDiv(a, b)
	case apt.KindMod:
		return apt.Mod(a, b)
	case apt.KindFloorDiv:
		return apt.FloorDiv(a, b)
	case apt.KindAtan2:
		return math.Atan2(a, b)
	case apt.KindMin:
		return math.Min(a, b)
	case apt.KindMax:
		return math.Max(a, b)
	default:
		return a
	}
}

func ternary(kind apt.Kind, a, b, c float64) float64 {
	switch kind {
	case apt.KindIf:
		return apt.If(a, b, c)
	case apt.KindFBM:
		return apt.FBM(a, b, c)
	case apt.KindRidge:
		return apt.Ridge(a, b, c)
	case apt.KindTurbulence:
		return apt.Turbulence(a, b, c)
	case apt.KindCell1:
		return apt.Cell1(a, b, c)
	case apt.KindCell2:
		return apt.Cell2(a, b, c)
	default:
		return a
	}
}

// sampleBilinear reduces the named asset's texel channels to a
// scalar in [-1,1] at normalized coordinate (u,v) in [-1,1]^2,
// bilinearly interpolating between up to 4 neighboring texels and
// averaging their channels, per spec.md 4.4. A nil image (which
// should not occur once parse validation has run) samples as 0.
func sampleBilinear(img *assets.Image, u, v float64) float64 {
	if img == nil || img.W == 0 || img.H == 0 {
		return 0
	}
	px := (u + 1) / 2 * float64(img.W)
	py := (v + 1) / 2 * float64(img.H)

	x0 := int(math.Floor(px))
	y0 := int(math.Floor(py))
	fx := px - math.Floor(px)
	fy := py - math.Floor(py)

	c00 := texelScalar(img, x0, y0)
	c10 := texelScalar(img, x0+1, y0)
	c01 := texelScalar(img, x0, y0+1)
	c11 := texelScalar(img, x0+1, y0+1)

	top := c00 + fx*(c10-c00)
	bot := c01 + fx*(c11-c01)
	avg := top + fy*(bot-top) // in [0,1]

	return avg*2 - 1
}

func texelScalar(img *assets.Image, x, y int) float64 {
	r, g, b, _ := img.At(x, y)
	return (float64(r) + float64(g) + float64(b)) / (3 * 255)
}
