// Command regnfa compiles patterns into Thompson NFAs. It prints the state
// table, renders it as Graphviz DOT, or generates Go source embedding it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/regnfa/internal/config"
	"github.com/KromDaniel/regnfa/pkg/regnfa"
)

const (
	appName    = "regnfa"
	appVersion = "0.1.0"
)

// arrayFlags collects a repeatable string flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var patterns arrayFlags
	fs.Var(&patterns, "pattern", "Pattern to compile (repeatable)")
	name := fs.String("name", "", "Prefix for generated identifiers")
	output := fs.String("output", "", "Write generated Go source to this file")
	pkg := fs.String("package", "", "Package name for generated code")
	testFile := fs.Bool("test-file", false, "Also generate a test file next to -output")
	configPath := fs.String("config", "", "YAML batch file listing patterns to generate")
	dot := fs.Bool("dot", false, "Print Graphviz DOT instead of the state table")
	verbose := fs.Bool("verbose", false, "Log construction steps to stderr")
	version := fs.Bool("version", false, "Print version information")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if *version {
		fmt.Fprintf(stdout, "%s version %s\n", appName, appVersion)
		return nil
	}

	if *configPath != "" {
		return runBatch(*configPath, stdout)
	}

	if len(patterns) == 0 {
		fmt.Fprintf(stderr, "Error: -pattern or -config is required\n\n")
		fs.Usage()
		return errUsage
	}

	if *output != "" {
		if len(patterns) != 1 {
			return fmt.Errorf("-output takes exactly one -pattern, got %d", len(patterns))
		}
		return regnfa.Generate(regnfa.Options{
			Pattern:          patterns[0],
			Name:             *name,
			OutputFile:       *output,
			Package:          *pkg,
			GenerateTestFile: *testFile,
			Verbose:          *verbose,
		})
	}

	logger := regnfa.NewLogger(*verbose)
	logger.SetOutput(stderr)
	for _, p := range patterns {
		a, err := regnfa.CompileWithLogger(p, logger)
		if err != nil {
			return err
		}
		if *dot {
			if err := regnfa.WriteDOT(stdout, a); err != nil {
				return err
			}
			continue
		}
		printTable(stdout, p, a)
	}
	return nil
}

func runBatch(path string, stdout io.Writer) error {
	f, err := config.Load(path)
	if err != nil {
		return err
	}
	for _, opts := range f.Options() {
		if err := regnfa.Generate(opts); err != nil {
			return fmt.Errorf("%s: %w", opts.Name, err)
		}
		fmt.Fprintf(stdout, "%s -> %s\n", opts.Name, opts.OutputFile)
	}
	return nil
}

func printTable(w io.Writer, pattern string, a *regnfa.Automaton) {
	fmt.Fprintf(w, "pattern %q: %d states, start %d\n", pattern, a.Len(), a.StartIndex())
	for i, s := range a.States() {
		p, _ := a.PriorityAt(i)
		prio := fmt.Sprint(p)
		if p == regnfa.MaxPriority {
			prio = "max"
		}
		fmt.Fprintf(w, "  %3d  %-32s priority %s\n", i, s, prio)
	}
}
