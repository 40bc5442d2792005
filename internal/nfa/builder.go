package nfa

import (
	"fmt"

	"github.com/KromDaniel/regnfa/internal/syntax"
)

// Builder lowers syntax trees into automata using Thompson's construction.
// A Builder is not safe for concurrent use, and Build must not be re-entered.
type Builder struct {
	logger *Logger
	a      *Automaton
}

// NewBuilder returns a builder reporting its steps to logger, which may be nil.
func NewBuilder(logger *Logger) *Builder {
	if logger == nil {
		logger = NewLogger(false)
	}
	return &Builder{logger: logger}
}

// Build compiles n with a silent builder.
func Build(n *syntax.Node) *Automaton {
	return NewBuilder(nil).Build(n)
}

// Build compiles n into a new automaton whose remaining exits all lead to
// Accept.
//
// It panics if a literal does not encode as a single byte; the parser only
// produces ASCII literals.
func (b *Builder) Build(n *syntax.Node) *Automaton {
	b.a = New()
	defer func() { b.a = nil }()

	b.logger.Section("Thompson Construction")
	start := b.build(n)
	b.patch(start, Terminal())
	b.a.start = start
	b.logger.Log("Start state: %d, states: %d", start, b.a.Len())

	return b.a
}

// build appends the fragment for n and returns its entry index. The exits of
// the fragment are left Open.
func (b *Builder) build(n *syntax.Node) int {
	switch n.Op {
	case syntax.OpAny:
		return b.push(Match(Any(), Unlinked()))

	case syntax.OpSingle:
		return b.push(Match(OneRune(n.Char), Unlinked()))

	case syntax.OpClass:
		return b.push(Match(ClassRunes(n.Chars), Unlinked()))

	case syntax.OpSequence:
		left := b.child(n.Left)
		right := b.child(n.Right)
		b.patch(left, To(right))
		return left

	case syntax.OpOptional:
		inner := b.child(n.Left)
		return b.push(Branch(To(inner), Unlinked()))

	case syntax.OpOneOrMore:
		inner := b.child(n.Left)
		split := b.push(Branch(To(inner), Unlinked()))
		b.patch(inner, To(split))
		// The operand has to be crossed once before the loop is reached.
		return inner

	case syntax.OpZeroOrMore:
		inner := b.child(n.Left)
		split := b.push(Branch(To(inner), Unlinked()))
		b.patch(inner, To(split))
		return split

	case syntax.OpOr:
		left := b.child(n.Left)
		right := b.child(n.Right)
		return b.push(Branch(To(left), To(right)))
	}

	panic(fmt.Sprintf("nfa: unknown syntax op %v", n.Op))
}

// child builds an operand of the node being lowered.
func (b *Builder) child(n *syntax.Node) int {
	b.logger.Enter()
	defer b.logger.Leave()
	return b.build(n)
}

func (b *Builder) push(s State) int {
	index := b.a.push(s)
	b.logger.Log("state %d: %v", index, s)
	return index
}

func (b *Builder) patch(entry int, target Transition) {
	b.logger.Log("patch exits of %d -> %v", entry, target)
	b.a.patch(entry, target)
}
