// Package compiler turns compiled automata into Go source, so a pattern can
// be lowered once at build time and restored without parsing at run time.
package compiler

import (
	"errors"
	"fmt"
	"io"

	"github.com/KromDaniel/regnfa/internal/codegen"
	"github.com/KromDaniel/regnfa/internal/nfa"
	"github.com/dave/jennifer/jen"
)

var (
	// ErrNoAutomaton is returned when Config carries no automaton.
	ErrNoAutomaton = errors.New("no automaton to generate")
	// ErrIncomplete is returned for automata that still hold Open transitions.
	ErrIncomplete = errors.New("automaton has open transitions")
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern          string
	Name             string
	OutputFile       string
	Package          string
	Automaton        *nfa.Automaton
	GenerateTestFile bool // Also write <output>_test.go checking the restored table
	Verbose          bool // Enable verbose logging of generation steps
}

// Compiler generates Go source for a compiled automaton.
type Compiler struct {
	config Config
	logger *nfa.Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	return &Compiler{
		config: config,
		logger: nfa.NewLogger(config.Verbose),
	}
}

// Logger returns the logger used for verbose output.
func (c *Compiler) Logger() *nfa.Logger {
	return c.logger
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// SetAutomaton sets the automaton to generate.
func (c *Compiler) SetAutomaton(a *nfa.Automaton) {
	c.config.Automaton = a
}

// Generate generates the Go code and writes it to the output file.
func (c *Compiler) Generate() error {
	file, err := c.file()
	if err != nil {
		return err
	}

	if err := file.Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	c.logger.Log("Wrote %s", c.config.OutputFile)

	if c.config.GenerateTestFile {
		path := codegen.TestFileName(c.config.OutputFile)
		if err := c.testFile().Save(path); err != nil {
			return fmt.Errorf("failed to save test file: %w", err)
		}
		c.logger.Log("Wrote %s", path)
	}

	return nil
}

// Render writes the generated source to w instead of a file.
func (c *Compiler) Render(w io.Writer) error {
	file, err := c.file()
	if err != nil {
		return err
	}
	return file.Render(w)
}

func (c *Compiler) file() (*jen.File, error) {
	a := c.config.Automaton
	if a == nil {
		return nil, ErrNoAutomaton
	}
	if d := a.Dangling(); len(d) > 0 {
		return nil, fmt.Errorf("%w: states %v", ErrIncomplete, d)
	}

	c.logger.Section("Code Generation")
	c.logger.Log("Pattern: %s", c.config.Pattern)
	c.logger.Log("States: %d, start: %d", a.Len(), a.StartIndex())

	name := codegen.UpperFirst(c.config.Name)
	startName := codegen.StartName(name)
	statesName := codegen.StatesName(name)

	f := c.newFile()

	f.Commentf("%s is the index of the start state in %s.", startName, statesName)
	f.Const().Id(startName).Op("=").Lit(a.StartIndex())
	f.Line()

	f.Commentf("%s is the state table compiled from %q.", statesName, c.config.Pattern)
	f.Var().Id(statesName).Op("=").Index().Qual(codegen.RuntimePath, "State").CustomFunc(
		jen.Options{Open: "{", Close: "}", Separator: ",", Multi: true},
		func(g *jen.Group) {
			for _, s := range a.States() {
				g.Add(stateCode(s))
			}
		},
	)
	f.Line()

	priorities := a.Priorities()
	c.logger.Log("Priorities: %v", priorities)
	f.Commentf("%s holds the priority of each state; lower wins.", codegen.PrioritiesName(name))
	f.Var().Id(codegen.PrioritiesName(name)).Op("=").Index().Uint().ValuesFunc(func(g *jen.Group) {
		for _, p := range priorities {
			g.Add(priorityCode(p))
		}
	})
	f.Line()

	f.Commentf("%s restores the automaton compiled from %q.", name, c.config.Pattern)
	f.Func().Id(name).Params().Op("*").Qual(codegen.RuntimePath, "Automaton").Block(
		jen.Return(jen.Qual(codegen.RuntimePath, "Restore").Call(jen.Id(startName), jen.Id(statesName))),
	)

	return f, nil
}

func (c *Compiler) newFile() *jen.File {
	f := jen.NewFile(c.config.Package)
	f.ImportName(codegen.RuntimePath, codegen.RuntimeName)
	f.HeaderComment(fmt.Sprintf("Code generated by regnfa for pattern: %s. DO NOT EDIT.", c.config.Pattern))
	return f
}

// testFile generates a test asserting that the restored automaton matches
// the emitted tables.
func (c *Compiler) testFile() *jen.File {
	name := codegen.UpperFirst(c.config.Name)
	statesName := codegen.StatesName(name)
	a := jen.Id("a")

	f := c.newFile()
	f.Func().Id("Test"+name+"Automaton").Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
		a.Clone().Op(":=").Id(name).Call(),
		jen.Line(),
		jen.If(a.Clone().Dot("Len").Call().Op("!=").Len(jen.Id(statesName))).Block(
			jen.Id("t").Dot("Fatalf").Call(jen.Lit("Len() = %d, want %d"), a.Clone().Dot("Len").Call(), jen.Len(jen.Id(statesName))),
		),
		jen.If(jen.List(jen.Id("_"), jen.Id("ok")).Op(":=").Add(a.Clone()).Dot("Start").Call(), jen.Op("!").Id("ok")).Block(
			jen.Id("t").Dot("Fatal").Call(jen.Lit("start state out of range")),
		),
		jen.If(jen.Id("d").Op(":=").Add(a.Clone()).Dot("Dangling").Call(), jen.Len(jen.Id("d")).Op("!=").Lit(0)).Block(
			jen.Id("t").Dot("Errorf").Call(jen.Lit("states %v hold open transitions"), jen.Id("d")),
		),
		jen.For(jen.List(jen.Id("i"), jen.Id("want")).Op(":=").Range().Id(codegen.PrioritiesName(name))).Block(
			jen.If(
				jen.List(jen.Id("got"), jen.Id("_")).Op(":=").Add(a.Clone()).Dot("PriorityAt").Call(jen.Id("i")),
				jen.Id("got").Op("!=").Id("want"),
			).Block(
				jen.Id("t").Dot("Errorf").Call(jen.Lit("PriorityAt(%d) = %d, want %d"), jen.Id("i"), jen.Id("got"), jen.Id("want")),
			),
		),
	)
	return f
}

func qual(name string) *jen.Statement {
	return jen.Qual(codegen.RuntimePath, name)
}

func stateCode(s nfa.State) jen.Code {
	if s.IsBranch() {
		return qual("Branch").Call(transitionCode(s.Next), transitionCode(s.Alt))
	}
	return qual("Match").Call(conditionCode(s.Cond), transitionCode(s.Next))
}

func conditionCode(cond nfa.Condition) jen.Code {
	switch cond.Kind {
	case nfa.CondOne:
		return qual("One").Call(jen.LitRune(rune(cond.Byte)))
	case nfa.CondClass:
		return qual("Class").CallFunc(func(g *jen.Group) {
			for _, b := range cond.Set {
				g.LitRune(rune(b))
			}
		})
	case nfa.CondAny:
		return qual("Any").Call()
	}
	return qual("None").Call()
}

func transitionCode(t nfa.Transition) jen.Code {
	switch t.Kind {
	case nfa.Linked:
		return qual("To").Call(jen.Lit(t.Index))
	case nfa.Accept:
		return qual("Terminal").Call()
	}
	return qual("Unlinked").Call()
}

func priorityCode(p uint) jen.Code {
	if p == nfa.MaxPriority {
		return qual("MaxPriority")
	}
	return jen.Lit(int(p))
}
