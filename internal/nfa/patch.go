package nfa

// patch replaces every Open transition reachable from entry with target.
//
// Linked transitions are followed, never rewritten, and each state is
// entered at most once per call, which keeps the walk finite through the
// back edges of repetition. Accept transitions are left alone.
func (a *Automaton) patch(entry int, target Transition) {
	visited := make([]bool, len(a.states))
	visited[entry] = true
	a.patchState(entry, target, visited)
}

func (a *Automaton) patchState(index int, target Transition, visited []bool) {
	s := &a.states[index]
	s.Next = a.patchTransition(s.Next, target, visited)
	if s.Kind == BranchState {
		s.Alt = a.patchTransition(s.Alt, target, visited)
	}
}

func (a *Automaton) patchTransition(t, target Transition, visited []bool) Transition {
	switch t.Kind {
	case Open:
		return target
	case Linked:
		if !visited[t.Index] {
			visited[t.Index] = true
			a.patchState(t.Index, target, visited)
		}
	}
	return t
}
