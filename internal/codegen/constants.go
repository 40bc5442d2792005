// Package codegen provides code generation helpers and constants.
package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Import path and local name of the runtime package used by generated code.
const (
	RuntimePath = "github.com/KromDaniel/regnfa/pkg/regnfa"
	RuntimeName = "regnfa"
)

// Suffixes appended to the configured name for generated identifiers.
const (
	StartSuffix      = "Start"
	StatesSuffix     = "States"
	PrioritiesSuffix = "Priorities"
)

// StartName returns the name of the start index constant.
func StartName(name string) string { return UpperFirst(name) + StartSuffix }

// StatesName returns the name of the state table variable.
func StatesName(name string) string { return UpperFirst(name) + StatesSuffix }

// PrioritiesName returns the name of the priority table variable.
func PrioritiesName(name string) string { return UpperFirst(name) + PrioritiesSuffix }

// TestFileName returns the test file path written next to output.
func TestFileName(output string) string {
	return strings.TrimSuffix(output, ".go") + "_test.go"
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
