package nfa

import "fmt"

// StateKind distinguishes consuming states from epsilon splits.
type StateKind uint8

const (
	// MatchState consumes one byte satisfying Cond and continues at Next.
	MatchState StateKind = iota
	// BranchState continues at both Next and Alt without consuming input.
	// Next is the preferred alternative.
	BranchState
)

// State is a single arena entry.
type State struct {
	Kind StateKind
	Cond Condition  // MatchState only
	Next Transition // successor; first alternative of a branch
	Alt  Transition // BranchState only
}

// Match returns a consuming state.
func Match(cond Condition, next Transition) State {
	return State{Kind: MatchState, Cond: cond, Next: next}
}

// Branch returns an unconditioned split.
func Branch(next1, next2 Transition) State {
	return State{Kind: BranchState, Next: next1, Alt: next2}
}

// IsBranch reports whether s is an epsilon split.
func (s State) IsBranch() bool { return s.Kind == BranchState }

// Transitions returns the outgoing transitions of s in preference order.
func (s State) Transitions() []Transition {
	if s.Kind == BranchState {
		return []Transition{s.Next, s.Alt}
	}
	return []Transition{s.Next}
}

func (s State) clone() State {
	s.Cond = s.Cond.clone()
	return s
}

func (s State) String() string {
	if s.Kind == BranchState {
		return fmt.Sprintf("Branch(%v, %v)", s.Next, s.Alt)
	}
	return fmt.Sprintf("Match(%v, %v)", s.Cond, s.Next)
}
