package apt

import (
	"math/rand"
	"testing"
)

func TestRoundTripSimple(t *testing.T) {
	tree := NewOp(KindIf,
		NewLeaf(KindX),
		NewConstant(1),
		NewConstant(-1),
	)
	text := tree.ToLisp()
	toks := Tokenize(text)
	got, next, err := Parse(toks, 0, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if next != len(toks) {
		t.Fatalf("expected to consume all tokens, consumed %d of %d", next, len(toks))
	}
	if !got.Equal(tree) {
		t.Fatalf("round trip mismatch: %s -> %#v", text, got)
	}
}

func TestRoundTripWithPic(t *testing.T) {
	tree := NewPic("stone", NewLeaf(KindX), NewLeaf(KindY))
	text := tree.ToLisp()
	toks := Tokenize(text)
	got, _, err := Parse(toks, 0, []string{"stone"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !got.Equal(tree) {
		t.Fatalf("round trip mismatch for Pic: %s", text)
	}
}

func TestParseUnknownPicAsset(t *testing.T) {
	tree := NewPic("stone", NewLeaf(KindX), NewLeaf(KindY))
	toks := Tokenize(tree.ToLisp())
	if _, _, err := Parse(toks, 0, []string{"other"}); err == nil {
		t.Fatal("expected error for unknown Pic asset")
	}
}

func TestParseArityMismatch(t *testing.T) {
	toks := Tokenize("(Add (X))")
	if _, _, err := Parse(toks, 0, nil); err == nil {
		t.Fatal("expected arity mismatch error")
	}
}

func TestParseUnknownOperator(t *testing.T) {
	toks := Tokenize("(Bogus (X))")
	if _, _, err := Parse(toks, 0, nil); err == nil {
		t.Fatal("expected unknown operator error")
	}
}

func TestGenerateTreeRespectsDepthZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tree := GenerateTree(0, true, nil, rng)
	if !tree.Kind.IsLeaf() {
		t.Fatalf("depth 0 should always produce a leaf, got %s", tree.Kind)
	}
}

func TestGenerateTreeNonAnimatedNeverReferencesT(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		tree := GenerateTree(6, false, nil, rng)
		if tree.ReferencesT() {
			t.Fatalf("non-animated tree referenced T: %s", tree.ToLisp())
		}
	}
}

func TestGenerateTreePicOnlyWithAssets(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		tree := GenerateTree(6, true, nil, rng)
		if containsPic(tree) {
			t.Fatalf("Pic chosen with no assets available: %s", tree.ToLisp())
		}
	}
}

func containsPic(n *Node) bool {
	if n.Kind == KindPic {
		return true
	}
	for _, c := range n.Children {
		if containsPic(c) {
			return true
		}
	}
	return false
}

func TestHeightMatchesHandBuilt(t *testing.T) {
	leaf := NewLeaf(KindX)
	if leaf.Height() != 1 {
		t.Fatalf("leaf height = %d, want 1", leaf.Height())
	}
	tree := NewOp(KindAdd, NewLeaf(KindX), NewOp(KindNeg, NewLeaf(KindY)))
	if tree.Height() != 3 {
		t.Fatalf("tree height = %d, want 3", tree.Height())
	}
}

func TestTransformCoordsCartesianIsIdentity(t *testing.T) {
	x, y := TransformCoords(Cartesian, 0.3, -0.4)
	if x != 0.3 || y != -0.4 {
		t.Fatalf("Cartesian should be identity, got (%v,%v)", x, y)
	}
}

func TestNoiseFamilyBounded(t *testing.T) {
	fns := map[string]func(x, y, z float64) float64{
		"FBM": FBM, "Ridge": Ridge, "Turbulence": Turbulence, "Cell1": Cell1, "Cell2": Cell2,
	}
	for name, fn := range fns {
		for i := 0; i < 20; i++ {
			x := float64(i) * 0.37
			v := fn(x, -x, x*0.5)
			if v < -1.0001 || v > 1.0001 {
				t.Errorf("%s(%v) = %v out of [-1,1]", name, x, v)
			}
		}
	}
}
