package nfa

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT writes a Graphviz rendering of a to w. Branch states are drawn
// as points; the preferred alternative of a branch is labelled 1.
func WriteDOT(w io.Writer, a *Automaton) error {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("    rankdir=LR;\n")
	b.WriteString("    accept [shape=doublecircle, label=\"\"];\n")

	edge := func(from int, t Transition, label string) {
		switch t.Kind {
		case Linked:
			fmt.Fprintf(&b, "    s%d -> s%d [label=%q];\n", from, t.Index, label)
		case Accept:
			fmt.Fprintf(&b, "    s%d -> accept [label=%q];\n", from, label)
		default:
			fmt.Fprintf(&b, "    s%d -> open%d [label=%q, style=dashed];\n", from, from, label)
			fmt.Fprintf(&b, "    open%d [shape=none, label=\"?\"];\n", from)
		}
	}

	for i, s := range a.states {
		if s.Kind == BranchState {
			fmt.Fprintf(&b, "    s%d [shape=point];\n", i)
			edge(i, s.Next, "ε1")
			edge(i, s.Alt, "ε2")
			continue
		}
		fmt.Fprintf(&b, "    s%d [shape=circle, label=\"%d\"];\n", i, i)
		edge(i, s.Next, dotLabel(s.Cond))
	}

	if a.start >= 0 && a.start < len(a.states) {
		fmt.Fprintf(&b, "    start [shape=none, label=\"\"]; start -> s%d;\n", a.start)
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func dotLabel(c Condition) string {
	switch c.Kind {
	case CondOne:
		return string(rune(c.Byte))
	case CondClass:
		return "[" + string(c.Set) + "]"
	case CondAny:
		return "."
	}
	return "ε"
}
