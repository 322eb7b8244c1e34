package apt

import (
	"strconv"
	"strings"

	"github.com/bdwalton/aptpic/internal/apterr"
)

// Tokenize splits S-expression text into atoms and individual "(" /
// ")" tokens, following spec.md 6's textual format. A double-quoted
// span (needed for filenames containing whitespace, per 4.2/6) is
// kept as one token with its quotes stripped.
func Tokenize(text string) []string {
	var toks []string
	i := 0
	n := len(text)
	for i < n {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(' || c == ')':
			toks = append(toks, string(c))
			i++
		case c == '"':
			j := i + 1
			for j < n && text[j] != '"' {
				j++
			}
			toks = append(toks, text[i+1:j])
			i = j + 1
		default:
			j := i
			for j < n && !strings.ContainsRune(" \t\n\r()", rune(text[j])) {
				j++
			}
			toks = append(toks, text[i:j])
			i = j
		}
	}
	return toks
}

// ToLisp serializes a node in prefix notation: "(Name child...)" for
// every node including zero-arity leaves (so "X" is written "(X)"),
// except a Pic node's name child, which is written as a bare token
// per spec.md section 6.
func (n *Node) ToLisp() string {
	var b strings.Builder
	n.writeLisp(&b)
	return b.String()
}

func (n *Node) writeLisp(b *strings.Builder) {
	switch n.Kind {
	case KindConstant:
		b.WriteString("(Constant ")
		b.WriteString(strconv.FormatFloat(n.Const, 'g', -1, 64))
		b.WriteString(")")
	case KindPic:
		b.WriteString("(Pic ")
		b.WriteString(quoteIfNeeded(n.PicName()))
		for _, c := range n.Operands() {
			b.WriteString(" ")
			c.writeLisp(b)
		}
		b.WriteString(")")
	default:
		b.WriteString("(")
		b.WriteString(n.Kind.String())
		for _, c := range n.Children {
			b.WriteString(" ")
			c.writeLisp(b)
		}
		b.WriteString(")")
	}
}

func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, " \t\n\r()") {
		return `"` + s + `"`
	}
	return s
}

// Parse parses a single tree starting at tokens[pos], which must be
// "(". It returns the parsed node and the index of the token
// immediately after the closing ")". assetNames validates Pic name
// references.
func Parse(tokens []string, pos int, assetNames []string) (*Node, int, error) {
	if pos >= len(tokens) {
		return nil, pos, apterr.NewParseError(pos, "unexpected end of input")
	}
	if tokens[pos] != "(" {
		return nil, pos, apterr.NewParseError(pos, "expected '(', got %q", tokens[pos])
	}
	pos++

	if pos >= len(tokens) {
		return nil, pos, apterr.NewParseError(pos, "unexpected end of input after '('")
	}
	name := tokens[pos]
	kind, ok := KindByName(name)
	if !ok {
		return nil, pos, apterr.NewParseError(pos, "unknown operator %q", name)
	}
	pos++

	switch kind {
	case KindPicRef:
		return nil, pos - 1, apterr.NewParseError(pos-1, "PicRef is only valid as Pic's asset name")
	case KindX, KindY, KindT:
		return expectClose(tokens, pos, NewLeaf(kind))
	case KindConstant:
		if pos >= len(tokens) {
			return nil, pos, apterr.NewParseError(pos, "Constant missing value")
		}
		v, err := strconv.ParseFloat(tokens[pos], 64)
		if err != nil {
			return nil, pos, apterr.NewParseError(pos, "Constant value %q is not a number", tokens[pos])
		}
		pos++
		return expectClose(tokens, pos, NewConstant(v))
	case KindPic:
		if pos >= len(tokens) {
			return nil, pos, apterr.NewParseError(pos, "Pic missing asset name")
		}
		assetName := tokens[pos]
		if !contains(assetNames, assetName) {
			return nil, pos, apterr.NewParseError(pos, "Pic references unknown asset %q", assetName)
		}
		pos++
		b, pos2, err := Parse(tokens, pos, assetNames)
		if err != nil {
			return nil, pos2, err
		}
		pos = pos2
		c, pos3, err := Parse(tokens, pos, assetNames)
		if err != nil {
			return nil, pos3, err
		}
		pos = pos3
		return expectClose(tokens, pos, NewPic(assetName, b, c))
	default:
		arity := Arity(kind)
		children := make([]*Node, arity)
		for i := 0; i < arity; i++ {
			child, next, err := Parse(tokens, pos, assetNames)
			if err != nil {
				return nil, next, err
			}
			children[i] = child
			pos = next
		}
		return expectClose(tokens, pos, NewOp(kind, children...))
	}
}

func expectClose(tokens []string, pos int, n *Node) (*Node, int, error) {
	if pos >= len(tokens) || tokens[pos] != ")" {
		got := "end of input"
		if pos < len(tokens) {
			got = strconv.Quote(tokens[pos])
		}
		return nil, pos, apterr.NewParseError(pos, "expected ')', got %s (arity mismatch for %s)", got, n.Kind)
	}
	return n, pos + 1, nil
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
