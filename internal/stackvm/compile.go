package stackvm

import "github.com/bdwalton/aptpic/internal/apt"

// Compile performs the post-order emission described in spec.md 4.3:
// one instruction per node, children before parent, so program length
// equals node count, except that a Pic node's name leaf emits no
// instruction of its own. Pic names are resolved to an index into the
// returned Program's PicNames at compile time; parse-time validation
// has already guaranteed the name exists in the asset table.
func Compile(tree *apt.Node) Program {
	c := &compiler{picIndex: map[string]int{}}
	c.emit(tree)
	return Program{
		Instructions: c.instrs,
		MaxDepth:     stackDepth(tree),
		PicNames:     c.picNames,
	}
}

type compiler struct {
	instrs   []Instruction
	picNames []string
	picIndex map[string]int
}

func (c *compiler) emit(n *apt.Node) {
	switch n.Kind {
	case apt.KindX:
		c.instrs = append(c.instrs, Instruction{Code: PushX})
	case apt.KindY:
		c.instrs = append(c.instrs, Instruction{Code: PushY})
	case apt.KindT:
		c.instrs = append(c.instrs, Instruction{Code: PushT})
	case apt.KindConstant:
		c.instrs = append(c.instrs, Instruction{Code: PushConst, Const: n.Const})
	case apt.KindPic:
		for _, operand := range n.Operands() {
			c.emit(operand)
		}
		c.instrs = append(c.instrs, Instruction{Code: Sample, PicIndex: c.picRef(n.PicName())})
	default:
		for _, child := range n.Children {
			c.emit(child)
		}
		c.instrs = append(c.instrs, Instruction{Code: Op, OpKind: n.Kind})
	}
}

func (c *compiler) picRef(name string) int {
	if idx, ok := c.picIndex[name]; ok {
		return idx
	}
	idx := len(c.picNames)
	c.picNames = append(c.picNames, name)
	c.picIndex[name] = idx
	return idx
}

// stackDepth computes the peak number of stack slots required to
// evaluate n via the standard Sethi-Ullman recurrence: children are
// evaluated left to right, each leaving one result resident on the
// stack, so the i-th child (0-indexed) needs i slots already occupied
// by its siblings plus whatever depth it needs itself.
func stackDepth(n *apt.Node) int {
	if n.Kind.IsLeaf() {
		return 1
	}
	operands := n.Operands()
	max := 0
	for i, c := range operands {
		if d := i + stackDepth(c); d > max {
			max = d
		}
	}
	return max
}
