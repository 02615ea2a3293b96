package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/rfaulhaber/ttt/expr"
)

func TestTokenizeKindsAndSpans(t *testing.T) {
	tokens, err := NewLexer("a and b").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}

	want := []struct {
		kind TokenKind
		span Span
	}{
		{TokenIdent, Span{0, 1}},
		{TokenAnd, Span{2, 5}},
		{TokenIdent, Span{6, 7}},
		{TokenEOF, Span{7, 8}},
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind {
			t.Errorf("token %d: kind = %v, want %v", i, tokens[i].Kind, w.kind)
		}
		if tokens[i].Span != w.span {
			t.Errorf("token %d: span = %v, want %v", i, tokens[i].Span, w.span)
		}
	}
}

func TestOperatorSpellings(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"and", TokenAnd},
		{"&&", TokenAnd},
		{"∧", TokenAnd},
		{"or", TokenOr},
		{"||", TokenOr},
		{"∨", TokenOr},
		{"not", TokenNot},
		{"!", TokenNot},
		{"¬", TokenNot},
		{"xor", TokenXor},
		{"⊻", TokenXor},
		{"⊕", TokenXor},
		{"->", TokenImplies},
		{"→", TokenImplies},
	}

	for _, tt := range tests {
		tok, err := NewLexer(tt.input).Next()
		if err != nil {
			t.Errorf("lex %q failed: %v", tt.input, err)
			continue
		}
		if tok.Kind != tt.kind {
			t.Errorf("lex %q: kind = %v, want %v", tt.input, tok.Kind, tt.kind)
		}
		if tok.Lexeme != tt.input {
			t.Errorf("lex %q: lexeme = %q", tt.input, tok.Lexeme)
		}
	}
}

func TestUnicodeSpansAreRuneOffsets(t *testing.T) {
	tokens, err := NewLexer("¬a").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if tokens[0].Span != (Span{0, 1}) {
		t.Errorf("¬ span = %v, want {0 1}", tokens[0].Span)
	}
	if tokens[1].Span != (Span{1, 2}) {
		t.Errorf("a span = %v, want {1 2}", tokens[1].Span)
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	tok, err := NewLexer("And").Next()
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if tok.Kind != TokenIdent {
		t.Errorf("\"And\" lexed as %v, want identifier", tok.Kind)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		char  rune
		start int
	}{
		{"a $ b", '$', 2},
		{"a & b", '&', 2},
		{"a | b", '|', 2},
		{"a - b", '-', 2},
		{"π", 'π', 0},
	}

	for _, tt := range tests {
		_, err := NewLexer(tt.input).Tokenize()
		var lexErr *LexError
		if !errors.As(err, &lexErr) {
			t.Errorf("lex %q: got %v, want LexError", tt.input, err)
			continue
		}
		if lexErr.Char != tt.char {
			t.Errorf("lex %q: char = %q, want %q", tt.input, lexErr.Char, tt.char)
		}
		if lexErr.Span.Start != tt.start {
			t.Errorf("lex %q: span start = %d, want %d", tt.input, lexErr.Span.Start, tt.start)
		}
	}
}

func TestIdentifierTooLong(t *testing.T) {
	name := strings.Repeat("x", expr.MaxNameLength+1)
	_, err := NewLexer(name).Tokenize()

	var tooLong *IdentifierTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("got %v, want IdentifierTooLongError", err)
	}
	if tooLong.Length != expr.MaxNameLength+1 {
		t.Errorf("Length = %d, want %d", tooLong.Length, expr.MaxNameLength+1)
	}
	if tooLong.Limit != expr.MaxNameLength {
		t.Errorf("Limit = %d, want %d", tooLong.Limit, expr.MaxNameLength)
	}
	if tooLong.Span.End != expr.MaxNameLength+1 {
		t.Errorf("span = %v, want to cover the whole identifier", tooLong.Span)
	}
}

func TestIdentifierAtLimit(t *testing.T) {
	name := strings.Repeat("x", expr.MaxNameLength)
	tokens, err := NewLexer(name).Tokenize()
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	if tokens[0].Kind != TokenIdent || tokens[0].Lexeme != name {
		t.Errorf("50-character identifier not lexed as identifier")
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := NewLexer("a")
	if _, err := l.Next(); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if tok.Kind != TokenEOF {
			t.Fatalf("call %d after end: kind = %v, want EOF", i, tok.Kind)
		}
	}
}
