package nfa

import "math"

// MaxPriority is the key of a path that ends without consuming input. It is
// the least preferred value.
const MaxPriority uint = math.MaxUint

// Priority returns the ranking key of s within a. When several states can
// consume the same byte the one with the lowest key wins.
//
// A Match on One(c) ranks as c, a Match on Any or Class as 0. A Branch ranks
// as the lower of its two successors, followed through Linked transitions
// until a consuming state is found; Open and Accept rank as MaxPriority.
func (a *Automaton) Priority(s State) uint {
	return newResolver(a).priority(s)
}

// PriorityAt returns the priority of the state at index.
func (a *Automaton) PriorityAt(index int) (p uint, ok bool) {
	if index < 0 || index >= len(a.states) {
		return 0, false
	}
	return a.Priority(a.states[index]), true
}

// Priorities returns the priority of every state, indexed like the arena.
// Resolved successors are shared between states.
func (a *Automaton) Priorities() []uint {
	r := newResolver(a)
	out := make([]uint, len(a.states))
	for i, s := range a.states {
		out[i] = r.priority(s)
	}
	return out
}

// resolver walks epsilon links from one state at a time.
//
// onPath holds the states entered on the current path. Nested repetition such
// as (a*)* builds branch-only cycles; meeting one again ranks as a dead end
// instead of recursing forever. Alternatives that rejoin the same fragment
// make the links a DAG with shared successors, so every state whose walk
// never met the guard is kept in done: its key is then the same from any path.
type resolver struct {
	a      *Automaton
	onPath map[int]bool
	done   map[int]uint
}

func newResolver(a *Automaton) *resolver {
	return &resolver{a: a, onPath: make(map[int]bool), done: make(map[int]uint)}
}

func (r *resolver) priority(s State) uint {
	p, _ := r.state(s)
	return p
}

// state reports whether the walk below s met a state already on the path.
func (r *resolver) state(s State) (uint, bool) {
	if s.Kind == BranchState {
		next, cutNext := r.transition(None(), s.Next)
		alt, cutAlt := r.transition(None(), s.Alt)
		return min(next, alt), cutNext || cutAlt
	}
	return r.transition(s.Cond, s.Next)
}

func (r *resolver) transition(cond Condition, t Transition) (uint, bool) {
	switch cond.Kind {
	case CondOne:
		return uint(cond.Byte), false
	case CondAny, CondClass:
		return 0, false
	}

	if t.Kind != Linked || t.Index < 0 || t.Index >= len(r.a.states) {
		return MaxPriority, false
	}
	if p, ok := r.done[t.Index]; ok {
		return p, false
	}
	if r.onPath[t.Index] {
		return MaxPriority, true
	}
	r.onPath[t.Index] = true
	p, cut := r.state(r.a.states[t.Index])
	delete(r.onPath, t.Index)
	if !cut {
		r.done[t.Index] = p
	}
	return p, cut
}
