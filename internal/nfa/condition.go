package nfa

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ConditionKind identifies what a Match state consumes.
type ConditionKind uint8

const (
	// CondNone never labels a built state. It only appears while resolving
	// priorities through non-consuming transitions.
	CondNone ConditionKind = iota
	CondOne
	CondClass
	CondAny
)

// Condition is the input test attached to a Match state.
type Condition struct {
	Kind ConditionKind
	Byte byte   // CondOne
	Set  []byte // CondClass, in declaration order
}

// One returns a condition matching exactly b.
func One(b byte) Condition { return Condition{Kind: CondOne, Byte: b} }

// Class returns a condition matching any byte of set.
func Class(set ...byte) Condition {
	return Condition{Kind: CondClass, Set: append([]byte(nil), set...)}
}

// Any returns a condition matching any byte. Whether that includes a
// newline is left to the simulator.
func Any() Condition { return Condition{Kind: CondAny} }

// None returns the non-consuming condition.
func None() Condition { return Condition{Kind: CondNone} }

// OneRune returns One for a character that encodes as a single byte.
// It panics otherwise: callers are expected to hand over parser output,
// which never holds wider literals.
func OneRune(r rune) Condition { return One(singleByte(r)) }

// ClassRunes is the Class counterpart of OneRune.
func ClassRunes(rs []rune) Condition {
	set := make([]byte, len(rs))
	for i, r := range rs {
		set[i] = singleByte(r)
	}
	return Condition{Kind: CondClass, Set: set}
}

func singleByte(r rune) byte {
	if r < 0 || r >= utf8.RuneSelf {
		panic(fmt.Sprintf("nfa: character %q does not encode as a single byte", r))
	}
	return byte(r)
}

// Matches reports whether b satisfies c. CondNone matches nothing.
func (c Condition) Matches(b byte) bool {
	switch c.Kind {
	case CondOne:
		return c.Byte == b
	case CondClass:
		for _, s := range c.Set {
			if s == b {
				return true
			}
		}
		return false
	case CondAny:
		return true
	}
	return false
}

func (c Condition) clone() Condition {
	if c.Set != nil {
		c.Set = append([]byte(nil), c.Set...)
	}
	return c
}

func (c Condition) String() string {
	switch c.Kind {
	case CondOne:
		return "One(" + strconv.QuoteRune(rune(c.Byte)) + ")"
	case CondClass:
		return "Class(" + strconv.Quote(string(c.Set)) + ")"
	case CondAny:
		return "Any"
	}
	return "None"
}
