package apt

// CoordSystem selects how the (x,y) leaves are derived from pixel
// coordinates before tree evaluation, per spec.md section 3.
type CoordSystem int

const (
	Cartesian CoordSystem = iota
	Polar
)

// Node is a recursive tagged tree node. Leaves carry Const or Name;
// internal nodes carry an ordered Children list. For KindPic,
// Children always holds exactly 3 entries: a KindPicRef name leaf
// first, then the two scalar coordinate operands (b, c) — see
// kind.go's scalarArity comment for why Pic's declared arity (2)
// excludes the name slot.
type Node struct {
	Kind     Kind
	Const    float64 // valid when Kind == KindConstant, in [-1,1]
	Name     string  // valid when Kind == KindPicRef
	Children []*Node
}

// NewLeaf builds an X/Y/T leaf.
func NewLeaf(k Kind) *Node {
	if !k.IsLeaf() || k == KindConstant || k == KindPicRef {
		panic("apt: NewLeaf requires X, Y or T")
	}
	return &Node{Kind: k}
}

// NewConstant builds a Constant leaf.
func NewConstant(v float64) *Node {
	return &Node{Kind: KindConstant, Const: v}
}

// NewPicRef builds a bare asset-name leaf, legal only as Pic's first
// child.
func NewPicRef(name string) *Node {
	return &Node{Kind: KindPicRef, Name: name}
}

// NewOp builds an internal operator node, panicking if the supplied
// children don't match the kind's declared scalar arity (for Pic,
// the name child is prepended separately by NewPic).
func NewOp(k Kind, children ...*Node) *Node {
	if k == KindPic {
		panic("apt: use NewPic to build Pic nodes")
	}
	if len(children) != Arity(k) {
		panic("apt: wrong child count for " + k.String())
	}
	return &Node{Kind: k, Children: children}
}

// NewPic builds a Pic(name, b, c) node.
func NewPic(name string, b, c *Node) *Node {
	return &Node{Kind: KindPic, Children: []*Node{NewPicRef(name), b, c}}
}

// Operands returns the scalar-valued children of a node: all of
// Children for ordinary ops, or the trailing (b,c) pair for Pic
// (skipping the name leaf).
func (n *Node) Operands() []*Node {
	if n.Kind == KindPic {
		return n.Children[1:]
	}
	return n.Children
}

// PicName returns the referenced asset name; only valid for KindPic.
func (n *Node) PicName() string {
	return n.Children[0].Name
}

// Height returns the tree height (1 for a leaf), counting only scalar
// operands (a Pic node's name leaf is skipped). The stack machine
// sizes its stack with its own depth computation, not with Height.
func (n *Node) Height() int {
	if n.Kind.IsLeaf() {
		return 1
	}
	max := 0
	for _, c := range n.Operands() {
		if h := c.Height(); h > max {
			max = h
		}
	}
	return 1 + max
}

// ReferencesT reports whether any descendant (including n itself) is
// a T leaf, i.e. whether the tree is "animated" per the glossary.
func (n *Node) ReferencesT() bool {
	if n.Kind.isTLeaf() {
		return true
	}
	for _, c := range n.Children {
		if c.ReferencesT() {
			return true
		}
	}
	return false
}

// Equal reports structural equality, used to verify the
// parse(serialize(t)) == t round-trip law.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Kind != o.Kind {
		return false
	}
	switch n.Kind {
	case KindConstant:
		return n.Const == o.Const
	case KindPicRef:
		return n.Name == o.Name
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// TransformCoords applies the coordinate system to a raw pixel
// (x,y) pair before it is bound to the X/Y leaves, implementing the
// Polar rewrite (r=sqrt(x^2+y^2), theta=atan2(y,x)) from spec.md
// section 3. Cartesian is the identity transform. This happens once
// per lane at evaluation time rather than as a tree rewrite, since
// every occurrence of X/Y in the tree must see the same (r,theta)
// pair computed from the same underlying pixel coordinate.
func TransformCoords(cs CoordSystem, x, y float64) (rx, ry float64) {
	if cs == Cartesian {
		return x, y
	}
	r := sqrtSafe(x*x + y*y)
	theta := atan2Safe(y, x)
	return r, theta
}
