// Package parser turns expression text into an expr.Expr tree. The lexer
// recognizes several spellings per operator ("and", "&&" and "∧" all produce
// the same token) and the parser is a recursive descent over the grammar
//
//	expression  = implication
//	implication = xor (("->"|"→") xor)*
//	xor         = or (("xor"|"⊻"|"⊕") or)*
//	or          = and (("or"|"||"|"∨") and)*
//	and         = not (("and"|"&&"|"∧") not)*
//	not         = ("not"|"!"|"¬")* primary
//	primary     = identifier | "(" expression ")"
//
// with all binary chains left-associative.
package parser

import "fmt"

// TokenKind classifies a lexer token.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenIdent
	TokenAnd
	TokenOr
	TokenXor
	TokenNot
	TokenImplies
	TokenLParen
	TokenRParen
)

// Span is a half-open range of rune offsets into the source text. Spans are
// carried for diagnostics only and never influence semantics.
type Span struct {
	Start int
	End   int
}

func newSpan(start, end int) Span { return Span{Start: start, End: end} }

// single returns the one-rune span at pos, used for end-of-input markers.
func single(pos int) Span { return Span{Start: pos, End: pos + 1} }

// Token is one lexeme with its source span.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Span   Span
}

// describe renders a token for error messages.
func (t Token) describe() string {
	switch t.Kind {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return fmt.Sprintf("identifier %q", t.Lexeme)
	default:
		return fmt.Sprintf("%q", t.Lexeme)
	}
}

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenIdent:
		return "IDENT"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenXor:
		return "XOR"
	case TokenNot:
		return "NOT"
	case TokenImplies:
		return "IMPL"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	}
	return "UNKNOWN"
}
