package main

import (
	"strings"
	"testing"

	"github.com/rfaulhaber/ttt/parser"
)

func TestParseAssignment(t *testing.T) {
	a, err := parseAssignment("a=T,b=F,c=true,d=0")
	if err != nil {
		t.Fatalf("parseAssignment failed: %v", err)
	}
	want := map[string]bool{"a": true, "b": false, "c": true, "d": false}
	if len(a) != len(want) {
		t.Fatalf("got %d bindings, want %d", len(a), len(want))
	}
	for name, v := range want {
		if a[name] != v {
			t.Errorf("%s = %v, want %v", name, a[name], v)
		}
	}
}

func TestParseAssignmentEmpty(t *testing.T) {
	a, err := parseAssignment("")
	if err != nil {
		t.Fatalf("parseAssignment failed: %v", err)
	}
	if len(a) != 0 {
		t.Errorf("got %d bindings, want 0", len(a))
	}
}

func TestParseAssignmentErrors(t *testing.T) {
	for _, s := range []string{"a", "a=maybe", "a=T,b"} {
		if _, err := parseAssignment(s); err == nil {
			t.Errorf("parseAssignment(%q) accepted", s)
		}
	}
}

func TestCaretMarksSpan(t *testing.T) {
	out := caret("a and )", parser.Span{Start: 6, End: 7})
	want := "  a and )\n        ^"
	if out != want {
		t.Errorf("caret = %q, want %q", out, want)
	}
}

func TestCaretAtEndOfInput(t *testing.T) {
	// EOF spans point one past the input; the caret lands just after it.
	out := caret("a and", parser.Span{Start: 5, End: 6})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[1] != "       ^" {
		t.Errorf("marker line = %q", lines[1])
	}
}

func TestParseExprDecoratesDiagnostics(t *testing.T) {
	_, err := parseExpr("a and or b")
	if err == nil {
		t.Fatal("bad input parsed")
	}
	msg := err.Error()
	if !strings.Contains(msg, "a and or b") {
		t.Errorf("diagnostic lacks source line: %q", msg)
	}
	if !strings.Contains(msg, "^") {
		t.Errorf("diagnostic lacks caret: %q", msg)
	}
}
