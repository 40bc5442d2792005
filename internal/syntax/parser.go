package syntax

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ErrEmptyPattern      = errors.New("empty pattern")
	ErrMissingClassStart = errors.New("missing char class start `[`")
	ErrUnterminatedClass = errors.New("incomplete char class, expected `]`")
	ErrNoOperand         = errors.New("no token before metacharacter")
	ErrTrailingBackslash = errors.New("trailing backslash")
	ErrNonASCII          = errors.New("non-ASCII character")
	ErrUnbalancedParen   = errors.New("unbalanced parenthesis")
)

// Character classes are taken literally up to the first `]`.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Class", Pattern: `\[[^\]]*\]`},
	{Name: "Escaped", Pattern: `\\.`},
	{Name: "Meta", Pattern: `[().|?+*]`},
	{Name: "Char", Pattern: `[^\[\]().|?+*\\]`},
})

type alternation struct {
	Branches []*concat `parser:"@@ ( '|' @@ )*"`
}

type concat struct {
	Items []*repeat `parser:"@@+"`
}

type repeat struct {
	Atom *atom    `parser:"@@"`
	Ops  []string `parser:"@( '?' | '+' | '*' )*"`
}

type atom struct {
	Any     bool         `parser:"  @'.'"`
	Class   *string      `parser:"| @Class"`
	Escaped *string      `parser:"| @Escaped"`
	Char    *string      `parser:"| @Char"`
	Group   *alternation `parser:"| '(' @@ ')'"`
}

var parser = participle.MustBuild[alternation](participle.Lexer(patternLexer))

// Parse parses pattern into a syntax tree.
//
// Supported syntax: literals, `.`, `[...]` (members taken literally),
// postfix `?`, `+` and `*`, `|`, `(...)` and `\x` escapes. Only ASCII
// characters are accepted so every literal fits in one byte.
func Parse(pattern string) (*Node, error) {
	if err := check(pattern); err != nil {
		return nil, fmt.Errorf("parse %q: %w", pattern, err)
	}
	ast, err := parser.ParseString("pattern", pattern)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", pattern, err)
	}
	return ast.node(), nil
}

// MustParse is like Parse but panics on error.
func MustParse(pattern string) *Node {
	n, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

// check reports the structural errors participle would only describe by
// token position.
func check(pattern string) error {
	if pattern == "" {
		return ErrEmptyPattern
	}
	depth := 0
	operand := false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c >= utf8.RuneSelf {
			return ErrNonASCII
		}
		switch c {
		case '[':
			end := i + 1
			for end < len(pattern) && pattern[end] != ']' {
				if pattern[end] >= utf8.RuneSelf {
					return ErrNonASCII
				}
				end++
			}
			if end == len(pattern) {
				return ErrUnterminatedClass
			}
			i = end
			operand = true
		case ']':
			return ErrMissingClassStart
		case '\\':
			if i+1 == len(pattern) {
				return ErrTrailingBackslash
			}
			i++
			if pattern[i] >= utf8.RuneSelf {
				return ErrNonASCII
			}
			operand = true
		case '?', '+', '*':
			if !operand {
				return ErrNoOperand
			}
		case '(':
			depth++
			operand = false
		case ')':
			depth--
			if depth < 0 {
				return ErrUnbalancedParen
			}
			operand = true
		case '|':
			operand = false
		default:
			operand = true
		}
	}
	if depth != 0 {
		return ErrUnbalancedParen
	}
	return nil
}

func (a *alternation) node() *Node {
	n := a.Branches[0].node()
	for _, b := range a.Branches[1:] {
		n = Or(n, b.node())
	}
	return n
}

func (c *concat) node() *Node {
	n := c.Items[0].node()
	for _, it := range c.Items[1:] {
		n = Sequence(n, it.node())
	}
	return n
}

func (r *repeat) node() *Node {
	n := r.Atom.node()
	for _, op := range r.Ops {
		switch op {
		case "?":
			n = Optional(n)
		case "+":
			n = OneOrMore(n)
		case "*":
			n = ZeroOrMore(n)
		}
	}
	return n
}

func (a *atom) node() *Node {
	switch {
	case a.Any:
		return Any()
	case a.Class != nil:
		body := (*a.Class)[1 : len(*a.Class)-1]
		return Class([]rune(body)...)
	case a.Escaped != nil:
		return Single(rune((*a.Escaped)[1]))
	case a.Char != nil:
		return Single(rune((*a.Char)[0]))
	default:
		return a.Group.node()
	}
}
