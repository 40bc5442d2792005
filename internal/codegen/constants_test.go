package codegen

import "testing"

func TestGeneratedNames(t *testing.T) {
	tests := []struct {
		fn   func(string) string
		name string
		want string
	}{
		{StartName, "email", "EmailStart"},
		{StatesName, "Email", "EmailStates"},
		{PrioritiesName, "digits", "DigitsPriorities"},
	}

	for _, tt := range tests {
		got := tt.fn(tt.name)
		if got != tt.want {
			t.Errorf("name(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTestFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"out/email.go", "out/email_test.go"},
		{"email", "email_test.go"},
	}

	for _, tt := range tests {
		got := TestFileName(tt.input)
		if got != tt.want {
			t.Errorf("TestFileName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "A"},
		{"abc", "Abc"},
		{"hello", "Hello"},
		{"Hello", "Hello"},
		{"x", "X"},
		{"1x", "1x"},
		{"_x", "_x"},
		{"éx", "Éx"},
	}

	for _, tt := range tests {
		got := UpperFirst(tt.input)
		if got != tt.want {
			t.Errorf("UpperFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
