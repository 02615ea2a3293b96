package parser

import "fmt"

// Diagnostic is implemented by every parse-time error. The span locates the
// offending range in the source text; rendering it (caret lines, colors) is
// the caller's business, not this package's.
type Diagnostic interface {
	error
	Pos() Span
}

// LexError reports a character outside the expression alphabet.
type LexError struct {
	Span Span
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q", e.Char)
}

func (e *LexError) Pos() Span { return e.Span }

// IdentifierTooLongError reports an identifier longer than expr.MaxNameLength.
type IdentifierTooLongError struct {
	Span   Span
	Length int
	Limit  int
}

func (e *IdentifierTooLongError) Error() string {
	return fmt.Sprintf("identifier too long: %d characters, limit is %d", e.Length, e.Limit)
}

func (e *IdentifierTooLongError) Pos() Span { return e.Span }

// UnexpectedTokenError reports a token that does not fit the grammar at its
// position.
type UnexpectedTokenError struct {
	Span     Span
	Expected string
	Found    string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token: expected %s, found %s", e.Expected, e.Found)
}

func (e *UnexpectedTokenError) Pos() Span { return e.Span }

// UnexpectedEOFError reports input that ends mid-expression. The span points
// one past the last token.
type UnexpectedEOFError struct {
	Span Span
}

func (e *UnexpectedEOFError) Error() string {
	return "unexpected end of input"
}

func (e *UnexpectedEOFError) Pos() Span { return e.Span }
