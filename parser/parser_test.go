package parser

import (
	"errors"
	"testing"

	"github.com/rfaulhaber/ttt/expr"
)

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Binding order, loosest first: ->, xor, or, and, not.
		{"a -> b xor c or d and not e", "(a → (b ⊕ (c ∨ (d ∧ ¬e))))"},
		{"a and b or c", "((a ∧ b) ∨ c)"},
		{"a or b and c", "(a ∨ (b ∧ c))"},
		{"a xor b or c", "(a ⊕ (b ∨ c))"},
		{"a -> b xor c", "(a → (b ⊕ c))"},
		{"not a and b", "(¬a ∧ b)"},
		{"not a or not b", "(¬a ∨ ¬b)"},
	}

	for _, tt := range tests {
		e, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
			continue
		}
		if got := e.String(); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a and b and c", "((a ∧ b) ∧ c)"},
		{"a or b or c", "((a ∨ b) ∨ c)"},
		{"a xor b xor c", "((a ⊕ b) ⊕ c)"},
		{"a -> b -> c", "((a → b) → c)"},
	}

	for _, tt := range tests {
		e, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
			continue
		}
		if got := e.String(); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseParentheses(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a and (b or c)", "(a ∧ (b ∨ c))"},
		{"(a -> b) and c", "((a → b) ∧ c)"},
		{"((a))", "a"},
		{"not (a and b)", "¬(a ∧ b)"},
	}

	for _, tt := range tests {
		e, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
			continue
		}
		if got := e.String(); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseStackedNot(t *testing.T) {
	e, err := Parse("not not a")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := expr.Not{X: expr.Not{X: expr.Var{Name: "a"}}}
	if !expr.Equal(e, want) {
		t.Errorf("Parse(\"not not a\") = %s", e)
	}
}

func TestParseSymbolSpellings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a && b || !c", "((a ∧ b) ∨ ¬c)"},
		{"a ∧ b ∨ ¬c", "((a ∧ b) ∨ ¬c)"},
		{"a ⊻ b", "(a ⊕ b)"},
		{"a ⊕ b", "(a ⊕ b)"},
		{"a -> b", "(a → b)"},
		{"a → b", "(a → b)"},
	}

	for _, tt := range tests {
		e, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.input, err)
			continue
		}
		if got := e.String(); got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestParseKeywordCaseSensitivity(t *testing.T) {
	e, err := Parse("And")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !expr.Equal(e, expr.Var{Name: "And"}) {
		t.Errorf("Parse(\"And\") = %s, want the variable And", e)
	}
}

func TestParseRoundTrip(t *testing.T) {
	// The canonical rendering must parse back to the identical tree.
	inputs := []string{
		"a and b or not c",
		"p -> q -> r",
		"a xor (b or c) and not d",
		"not not x",
	}

	for _, input := range inputs {
		first, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		second, err := Parse(first.String())
		if err != nil {
			t.Fatalf("reparse of %s failed: %v", first, err)
		}
		if !expr.Equal(first, second) {
			t.Errorf("round trip of %q changed the tree: %s vs %s", input, first, second)
		}
	}
}

func TestParseUnexpectedEOF(t *testing.T) {
	tests := []struct {
		input string
		start int
	}{
		{"", 0},
		{"a and", 5},
		{"not", 3},
		{"(a or b", 7},
		{"a ->", 4},
	}

	for _, tt := range tests {
		_, err := Parse(tt.input)
		var eof *UnexpectedEOFError
		if !errors.As(err, &eof) {
			t.Errorf("Parse(%q): got %v, want UnexpectedEOFError", tt.input, err)
			continue
		}
		if eof.Span.Start != tt.start {
			t.Errorf("Parse(%q): span start = %d, want %d", tt.input, eof.Span.Start, tt.start)
		}
	}
}

func TestParseUnexpectedToken(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		start    int
	}{
		{"a b", "end of input", 2},
		{"a and or b", `identifier or "("`, 6},
		{"(a or b))", "end of input", 8},
		{"(a or b c", `")"`, 8},
		{") a", `identifier or "("`, 0},
	}

	for _, tt := range tests {
		_, err := Parse(tt.input)
		var unexpected *UnexpectedTokenError
		if !errors.As(err, &unexpected) {
			t.Errorf("Parse(%q): got %v, want UnexpectedTokenError", tt.input, err)
			continue
		}
		if unexpected.Expected != tt.expected {
			t.Errorf("Parse(%q): expected-clause = %q, want %q", tt.input, unexpected.Expected, tt.expected)
		}
		if unexpected.Span.Start != tt.start {
			t.Errorf("Parse(%q): span start = %d, want %d", tt.input, unexpected.Span.Start, tt.start)
		}
	}
}

func TestDiagnosticInterface(t *testing.T) {
	_, err := Parse("a and")
	var d Diagnostic
	if !errors.As(err, &d) {
		t.Fatalf("parse error %v does not implement Diagnostic", err)
	}
	if d.Pos().Start != 5 {
		t.Errorf("Pos().Start = %d, want 5", d.Pos().Start)
	}
}
