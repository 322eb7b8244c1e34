package stackvm

import (
	"math"
	"testing"

	"github.com/bdwalton/aptpic/internal/apt"
)

func run(t *testing.T, prog Program, x, y, tt float64) float64 {
	t.Helper()
	stack := NewStack(prog.MaxDepth, 1)
	res := Execute(prog, stack, []float64{x}, []float64{y}, []float64{tt}, nil)
	return res[0]
}

func TestCompileProgramLengthEqualsNodeCount(t *testing.T) {
	tree := apt.NewOp(apt.KindAdd, apt.NewLeaf(apt.KindX), apt.NewOp(apt.KindNeg, apt.NewLeaf(apt.KindY)))
	prog := Compile(tree)
	if len(prog.Instructions) != nodeCount(tree) {
		t.Fatalf("program length %d != node count %d", len(prog.Instructions), nodeCount(tree))
	}
}

func nodeCount(n *apt.Node) int {
	c := 1
	for _, ch := range n.Children {
		c += nodeCount(ch)
	}
	return c
}

func TestStackDepthEqualsHeightForLeftLeaningTree(t *testing.T) {
	tree := apt.NewOp(apt.KindAdd, apt.NewLeaf(apt.KindX), apt.NewLeaf(apt.KindY))
	prog := Compile(tree)
	if prog.MaxDepth != 2 {
		t.Fatalf("MaxDepth = %d, want 2", prog.MaxDepth)
	}
}

func TestExecuteX(t *testing.T) {
	prog := Compile(apt.NewLeaf(apt.KindX))
	if got := run(t, prog, 0.5, 0, 0); got != 0.5 {
		t.Fatalf("X = %v, want 0.5", got)
	}
}

func TestExecuteIf(t *testing.T) {
	tree := apt.NewOp(apt.KindIf, apt.NewLeaf(apt.KindX), apt.NewConstant(1), apt.NewConstant(-1))
	prog := Compile(tree)
	if got := run(t, prog, 0.5, 0, 0); got != 1 {
		t.Fatalf("If(0.5>0) = %v, want 1", got)
	}
	if got := run(t, prog, -0.5, 0, 0); got != -1 {
		t.Fatalf("If(-0.5>0) = %v, want -1", got)
	}
}

func TestExecuteDivByZeroIsSafe(t *testing.T) {
	tree := apt.NewOp(apt.KindDiv, apt.NewLeaf(apt.KindX), apt.NewConstant(0))
	prog := Compile(tree)
	got := run(t, prog, 0.7, 0, 0)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("Div by zero produced non-finite: %v", got)
	}
	if got != 0.7 {
		t.Fatalf("Div by ~0 should fall back to a, got %v", got)
	}
}

func TestExecuteNeverExceedsArityStackUsage(t *testing.T) {
	// Add has arity 2: evaluating it must only ever touch 2 slots at
	// the moment it executes, regardless of what's above it on a
	// deeper program; MaxDepth computed via Compile already bounds
	// this, so this test just exercises a deep program end to end.
	tree := apt.NewOp(apt.KindAdd,
		apt.NewOp(apt.KindMul, apt.NewLeaf(apt.KindX), apt.NewLeaf(apt.KindY)),
		apt.NewOp(apt.KindSin, apt.NewLeaf(apt.KindT)),
	)
	prog := Compile(tree)
	got := run(t, prog, 0.25, 0.5, 0)
	want := 0.25*0.5 + math.Sin(0)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExecuteConstantZero(t *testing.T) {
	prog := Compile(apt.NewConstant(0))
	if got := run(t, prog, 0, 0, 0); got != 0 {
		t.Fatalf("Constant(0) evaluated to %v, want 0", got)
	}
}
