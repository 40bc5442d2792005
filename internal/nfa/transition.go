package nfa

import "strconv"

// TransitionKind identifies where a transition leads.
type TransitionKind uint8

const (
	// Open is a transition not wired yet. The zero Transition is Open, and
	// none may remain once an automaton is built.
	Open TransitionKind = iota
	// Linked points at another state of the arena.
	Linked
	// Accept signals a successful match.
	Accept
)

// Transition is the successor slot of a state.
type Transition struct {
	Kind  TransitionKind
	Index int // Linked only
}

// To returns a transition linked to the state at index.
func To(index int) Transition { return Transition{Kind: Linked, Index: index} }

// Unlinked returns an Open transition.
func Unlinked() Transition { return Transition{} }

// Terminal returns an Accept transition.
func Terminal() Transition { return Transition{Kind: Accept} }

func (t Transition) String() string {
	switch t.Kind {
	case Linked:
		return "Linked(" + strconv.Itoa(t.Index) + ")"
	case Accept:
		return "Accept"
	}
	return "Open"
}
