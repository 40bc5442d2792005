// Package syntax defines the regular-expression syntax tree consumed by the
// NFA builder, and a small parser producing it from pattern text.
package syntax

import "strings"

// Op identifies the kind of a syntax tree node.
type Op uint8

const (
	OpAny        Op = iota // .
	OpSingle               // a literal character
	OpClass                // [abc]
	OpSequence             // ab
	OpOptional             // a?
	OpOneOrMore            // a+
	OpZeroOrMore           // a*
	OpOr                   // a|b
)

var opNames = [...]string{
	OpAny:        "Any",
	OpSingle:     "Single",
	OpClass:      "Class",
	OpSequence:   "Sequence",
	OpOptional:   "Optional",
	OpOneOrMore:  "OneOrMore",
	OpZeroOrMore: "ZeroOrMore",
	OpOr:         "Or",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Op(?)"
}

// Node is a syntax tree node.
//
// Char is set for OpSingle and Chars for OpClass. Sequence and Or use both
// Left and Right; the repetition operators keep their operand in Left.
type Node struct {
	Op    Op
	Char  rune
	Chars []rune
	Left  *Node
	Right *Node
}

// Any returns a node matching any character.
func Any() *Node { return &Node{Op: OpAny} }

// Single returns a node matching exactly r.
func Single(r rune) *Node { return &Node{Op: OpSingle, Char: r} }

// Class returns a node matching any of chars, in the given order.
func Class(chars ...rune) *Node {
	return &Node{Op: OpClass, Chars: append([]rune(nil), chars...)}
}

// Sequence returns a node matching a followed by b.
func Sequence(a, b *Node) *Node { return &Node{Op: OpSequence, Left: a, Right: b} }

// Optional returns a node matching n zero or one times.
func Optional(n *Node) *Node { return &Node{Op: OpOptional, Left: n} }

// OneOrMore returns a node matching n one or more times.
func OneOrMore(n *Node) *Node { return &Node{Op: OpOneOrMore, Left: n} }

// ZeroOrMore returns a node matching n any number of times.
func ZeroOrMore(n *Node) *Node { return &Node{Op: OpZeroOrMore, Left: n} }

// Or returns a node matching either a or b.
func Or(a, b *Node) *Node { return &Node{Op: OpOr, Left: a, Right: b} }

// Binding strength used when rendering, loosest first.
const (
	precOr = iota
	precSequence
	precPostfix
)

// String renders the tree as pattern text that parses back to the same tree.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, precOr)
	return b.String()
}

func (n *Node) write(b *strings.Builder, prec int) {
	switch n.Op {
	case OpAny:
		b.WriteByte('.')
	case OpSingle:
		if strings.ContainsRune(metaChars, n.Char) {
			b.WriteByte('\\')
		}
		b.WriteRune(n.Char)
	case OpClass:
		b.WriteByte('[')
		for _, r := range n.Chars {
			b.WriteRune(r)
		}
		b.WriteByte(']')
	case OpSequence:
		if prec > precSequence {
			b.WriteByte('(')
			defer b.WriteByte(')')
		}
		n.Left.write(b, precSequence)
		n.Right.write(b, precPostfix)
	case OpOr:
		if prec > precOr {
			b.WriteByte('(')
			defer b.WriteByte(')')
		}
		n.Left.write(b, precOr)
		b.WriteByte('|')
		n.Right.write(b, precSequence)
	case OpOptional, OpOneOrMore, OpZeroOrMore:
		n.Left.write(b, precPostfix)
		b.WriteByte(postfixChar[n.Op])
	}
}

var postfixChar = map[Op]byte{
	OpOptional:   '?',
	OpOneOrMore:  '+',
	OpZeroOrMore: '*',
}

// metaChars must be escaped to be matched literally outside a class.
const metaChars = `.[]()|?+*\`
