// Package nfa compiles syntax trees into Thompson NFAs stored in a flat,
// index-addressed arena, and ranks the nondeterministic choices of the
// resulting graph so a simulator can reproduce greedy matching.
//
// An Automaton is immutable once built. Every accessor returns copies, so
// callers cannot reach into the arena.
package nfa

// Automaton is a compiled NFA: an append-only arena of states and the index
// of the start state.
type Automaton struct {
	start  int
	states []State
}

// New returns an empty automaton. Its start index does not refer to a state
// until something is built into it.
func New() *Automaton {
	return &Automaton{}
}

// FromStates returns an automaton over a copy of states, starting at index 0.
func FromStates(states []State) *Automaton {
	return Restore(0, states)
}

// Restore returns an automaton over a copy of states with the given start
// index. It is how generated code rebuilds a compiled table.
func Restore(start int, states []State) *Automaton {
	a := &Automaton{start: start, states: make([]State, len(states))}
	for i, s := range states {
		a.states[i] = s.clone()
	}
	return a
}

// StartIndex returns the index of the start state, which may be out of range
// for an empty automaton.
func (a *Automaton) StartIndex() int { return a.start }

// Start returns a copy of the start state. ok is false when the start index
// does not refer to a state.
func (a *Automaton) Start() (s State, ok bool) {
	return a.State(a.start)
}

// State returns a copy of the state at index.
func (a *Automaton) State(index int) (s State, ok bool) {
	if index < 0 || index >= len(a.states) {
		return State{}, false
	}
	return a.states[index].clone(), true
}

// Len returns the number of states in the arena.
func (a *Automaton) Len() int { return len(a.states) }

// States returns a copy of the whole arena.
func (a *Automaton) States() []State {
	out := make([]State, len(a.states))
	for i, s := range a.states {
		out[i] = s.clone()
	}
	return out
}

// Dangling returns the indices of states that still hold an Open
// transition. It is empty for every automaton produced by Build.
func (a *Automaton) Dangling() []int {
	var out []int
	for i, s := range a.states {
		for _, t := range s.Transitions() {
			if t.Kind == Open {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// push appends s to the arena and returns its index.
func (a *Automaton) push(s State) int {
	a.states = append(a.states, s)
	return len(a.states) - 1
}
