// Package config loads batch generation files for the regnfa command.
//
// A batch file lists patterns to compile, with defaults shared by all
// entries:
//
//	package: patterns
//	output_dir: internal/patterns
//	tests: true
//	patterns:
//	  - name: digits
//	    pattern: "[0123456789]+"
//	  - name: word
//	    pattern: "[abc]+(x|y)?"
//	    output: word_gen.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KromDaniel/regnfa/internal/codegen"
	"github.com/KromDaniel/regnfa/pkg/regnfa"
)

// File is a parsed batch file.
type File struct {
	Package   string    `yaml:"package"`
	OutputDir string    `yaml:"output_dir"`
	Tests     bool      `yaml:"tests"`
	Verbose   bool      `yaml:"verbose"`
	Patterns  []Pattern `yaml:"patterns"`
}

// Pattern is one entry of a batch file. Empty fields take the file defaults.
type Pattern struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Output  string `yaml:"output"`
	Package string `yaml:"package"`
	Tests   *bool  `yaml:"tests"`
}

// Load reads and validates the batch file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a batch file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that every entry can be turned into generation options.
func (f *File) Validate() error {
	if len(f.Patterns) == 0 {
		return errors.New("config lists no patterns")
	}
	seen := make(map[string]bool, len(f.Patterns))
	for i, p := range f.Patterns {
		if p.Name == "" {
			return fmt.Errorf("patterns[%d]: name cannot be empty", i)
		}
		if p.Pattern == "" {
			return fmt.Errorf("patterns[%d] (%s): pattern cannot be empty", i, p.Name)
		}
		if p.Package == "" && f.Package == "" {
			return fmt.Errorf("patterns[%d] (%s): package cannot be empty", i, p.Name)
		}
		if !token.IsIdentifier(codegen.UpperFirst(p.Name)) {
			return fmt.Errorf("patterns[%d]: name %q is not a Go identifier", i, p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("patterns[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Options returns the generation options of every entry, in file order.
func (f *File) Options() []regnfa.Options {
	out := make([]regnfa.Options, 0, len(f.Patterns))
	for _, p := range f.Patterns {
		opts := regnfa.Options{
			Pattern:          p.Pattern,
			Name:             p.Name,
			OutputFile:       p.Output,
			Package:          p.Package,
			GenerateTestFile: f.Tests,
			Verbose:          f.Verbose,
		}
		if opts.Package == "" {
			opts.Package = f.Package
		}
		if opts.OutputFile == "" {
			opts.OutputFile = strings.ToLower(p.Name) + ".go"
		}
		if !filepath.IsAbs(opts.OutputFile) {
			opts.OutputFile = filepath.Join(f.OutputDir, opts.OutputFile)
		}
		if p.Tests != nil {
			opts.GenerateTestFile = *p.Tests
		}
		out = append(out, opts)
	}
	return out
}
