// Package regnfa compiles regular expressions into Thompson NFAs with greedy
// priority keys, and generates Go source embedding the compiled automaton.
//
// The automaton is the input of a matching engine: start at Start, expand
// Branch states through both successors, and when several Match states
// accept the same byte prefer the one with the lowest Priority.
package regnfa

import (
	"fmt"
	"go/token"
	"io"

	"github.com/KromDaniel/regnfa/internal/codegen"
	"github.com/KromDaniel/regnfa/internal/compiler"
	"github.com/KromDaniel/regnfa/internal/nfa"
	"github.com/KromDaniel/regnfa/internal/syntax"
)

type (
	// Node is a parsed pattern.
	Node = syntax.Node
	// Automaton is a compiled NFA. It is immutable and safe to share.
	Automaton = nfa.Automaton
	// State is one entry of an automaton's arena.
	State = nfa.State
	// Condition is what a Match state consumes.
	Condition = nfa.Condition
	// Transition is the successor slot of a state.
	Transition = nfa.Transition
	// Logger prints verbose construction output.
	Logger = nfa.Logger
)

// MaxPriority ranks paths that end without consuming input.
const MaxPriority = nfa.MaxPriority

// Constructors used by generated code and by callers assembling tables by hand.
var (
	Match      = nfa.Match
	Branch     = nfa.Branch
	One        = nfa.One
	Class      = nfa.Class
	Any        = nfa.Any
	None       = nfa.None
	To         = nfa.To
	Terminal   = nfa.Terminal
	Unlinked   = nfa.Unlinked
	Restore    = nfa.Restore
	FromStates = nfa.FromStates
	NewLogger  = nfa.NewLogger
)

// Parse parses pattern into a syntax tree.
func Parse(pattern string) (*Node, error) {
	return syntax.Parse(pattern)
}

// Compile parses pattern and builds its automaton.
func Compile(pattern string) (*Automaton, error) {
	return CompileWithLogger(pattern, nil)
}

// CompileWithLogger is like Compile and reports construction steps to logger.
func CompileWithLogger(pattern string, logger *Logger) (*Automaton, error) {
	n, err := syntax.Parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pattern: %w", err)
	}
	return nfa.NewBuilder(logger).Build(n), nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string) *Automaton {
	a, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return a
}

// Build compiles an already parsed tree. It panics if a literal does not
// encode as a single byte.
func Build(n *Node) *Automaton {
	return nfa.Build(n)
}

// WriteDOT writes a Graphviz rendering of a to w.
func WriteDOT(w io.Writer, a *Automaton) error {
	return nfa.WriteDOT(w, a)
}

// Options configures code generation.
type Options struct {
	// Pattern is the regular expression to compile
	Pattern string

	// Name is the prefix for generated identifiers (e.g., "Email" generates "EmailStates")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// GenerateTestFile also writes a test checking the restored automaton against the emitted tables
	GenerateTestFile bool

	// Verbose logs construction and generation steps to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !token.IsIdentifier(codegen.UpperFirst(o.Name)) {
		return fmt.Errorf("name %q is not a Go identifier", o.Name)
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q is not a Go identifier", o.Package)
	}
	return nil
}

// Generate compiles opts.Pattern and writes the automaton as Go source.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	c := compiler.New(compiler.Config{
		Pattern:          opts.Pattern,
		Name:             opts.Name,
		Package:          opts.Package,
		GenerateTestFile: opts.GenerateTestFile,
		Verbose:          opts.Verbose,
	})
	c.SetOutputFile(opts.OutputFile)

	a, err := CompileWithLogger(opts.Pattern, c.Logger())
	if err != nil {
		return err
	}
	c.SetAutomaton(a)

	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
