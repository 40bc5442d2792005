package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestArrayFlagsString(t *testing.T) {
	tests := []struct {
		name     string
		flags    arrayFlags
		expected string
	}{
		{
			name:     "empty",
			flags:    arrayFlags{},
			expected: "",
		},
		{
			name:     "single",
			flags:    arrayFlags{"a+"},
			expected: "a+",
		},
		{
			name:     "multiple",
			flags:    arrayFlags{"a+", "[xyz]", "(ab)*"},
			expected: "a+, [xyz], (ab)*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.flags.String()
			if result != tt.expected {
				t.Errorf("String() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestArrayFlagsSet(t *testing.T) {
	var flags arrayFlags

	if err := flags.Set("a+"); err != nil {
		t.Errorf("Set() returned error: %v", err)
	}
	if len(flags) != 1 || flags[0] != "a+" {
		t.Errorf("Set() = %v, want [\"a+\"]", flags)
	}

	if err := flags.Set("b*"); err != nil {
		t.Errorf("Set() returned error: %v", err)
	}
	if len(flags) != 2 || flags[1] != "b*" {
		t.Errorf("Set() = %v, want [\"a+\", \"b*\"]", flags)
	}
}

func TestRunPrintsTable(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-pattern", "a?"}, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	out := stdout.String()
	for _, want := range []string{
		`pattern "a?": 2 states, start 1`,
		"Match(One('a'), Accept)",
		"Branch(Linked(0), Accept)",
		"priority 97",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunPrintsMaxPriority(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-pattern", "a"}, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if strings.Contains(stdout.String(), "priority max") {
		t.Errorf("single literal should not rank as max:\n%s", stdout.String())
	}
}

func TestRunDOT(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-dot", "-pattern", "a|b"}, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "digraph NFA {") {
		t.Errorf("output is not DOT:\n%s", stdout.String())
	}
}

func TestRunVerbose(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-verbose", "-pattern", "ab"}, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(stderr.String(), "=== Thompson Construction ===") {
		t.Errorf("stderr missing construction log:\n%s", stderr.String())
	}
}

func TestRunGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ab.go")
	var stdout, stderr bytes.Buffer
	args := []string{"-pattern", "ab", "-name", "AB", "-package", "gen", "-output", out, "-test-file"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file was not created: %v", err)
	}
	if _, err := os.Stat(strings.TrimSuffix(out, ".go") + "_test.go"); err != nil {
		t.Errorf("test file was not created: %v", err)
	}
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "regnfa.yaml")
	data := "package: gen\noutput_dir: " + dir + "\npatterns:\n  - {name: star, pattern: \"a*\"}\n"
	if err := os.WriteFile(cfg, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-config", cfg}, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "star.go")); err != nil {
		t.Errorf("batch output was not created: %v", err)
	}
	if !strings.Contains(stdout.String(), "star -> ") {
		t.Errorf("stdout = %q, want a line for star", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no pattern", nil, "usage"},
		{"bad flag", []string{"-nope"}, "usage"},
		{"bad pattern", []string{"-pattern", "[a"}, "failed to parse pattern"},
		{"two patterns to one output", []string{"-pattern", "a", "-pattern", "b", "-output", "x.go"}, "exactly one -pattern"},
		{"missing name", []string{"-pattern", "a", "-output", "x.go", "-package", "p"}, "name cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run(%v) error = %v, want containing %q", tt.args, err, tt.want)
			}
		})
	}
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-version"}, &stdout, &stderr); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if got := stdout.String(); got != "regnfa version 0.1.0\n" {
		t.Errorf("version output = %q", got)
	}
}
