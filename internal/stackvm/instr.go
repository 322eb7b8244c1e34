// Package stackvm compiles an apt.Node tree into a flat stack-machine
// program and evaluates it lanewise (in fixed-size float64 batches)
// across a scanline, per spec.md sections 3/4.3/4.4. The opcode shape
// follows the teacher's mos6502/opcodes.go: an iota-tagged instruction
// kind with a small dispatch table, generalized here from a byte CPU
// to a float stack machine.
package stackvm

import "github.com/bdwalton/aptpic/internal/apt"

// InstrCode tags the kind of a compiled instruction.
type InstrCode int

const (
	PushConst InstrCode = iota
	PushX
	PushY
	PushT
	Op
	Sample
)

// Instruction is one compiled stack-machine step. Const is valid for
// PushConst; OpKind is valid for Op; PicIndex is valid for Sample and
// indexes into Program.PicNames.
type Instruction struct {
	Code     InstrCode
	Const    float64
	OpKind   apt.Kind
	PicIndex int
}

// Program is the flat, ordered instruction sequence compiled from a
// tree, plus the maximum stack depth required to run it (so callers
// can preallocate a scratch stack once per worker) and the ordered,
// de-duplicated list of asset names referenced by Sample instructions.
type Program struct {
	Instructions []Instruction
	MaxDepth     int
	PicNames     []string
}
