package parser

import (
	"unicode"

	"github.com/rfaulhaber/ttt/expr"
)

// keywords maps word spellings of operators to their token kinds. The table
// is read-only, process-wide configuration; symbol spellings are handled
// directly in the scanner. Matching is case-sensitive.
var keywords = map[string]TokenKind{
	"and": TokenAnd,
	"or":  TokenOr,
	"not": TokenNot,
	"xor": TokenXor,
}

// Lexer walks the source text one rune at a time. Spans are rune offsets.
type Lexer struct {
	input []rune
	pos   int
}

// NewLexer creates a lexer over the given source text.
func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

func (l *Lexer) current() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) advance() { l.pos++ }

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.current()) {
		l.advance()
	}
}

// Next returns the next token. After the input is exhausted it keeps
// returning an EOF token whose span points one past the last rune.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	start := l.pos
	ch := l.current()

	switch {
	case l.pos >= len(l.input):
		return Token{Kind: TokenEOF, Span: single(l.pos)}, nil
	case isIdentStart(ch):
		return l.readIdentifier()
	}

	switch ch {
	case '(':
		l.advance()
		return Token{Kind: TokenLParen, Lexeme: "(", Span: newSpan(start, l.pos)}, nil
	case ')':
		l.advance()
		return Token{Kind: TokenRParen, Lexeme: ")", Span: newSpan(start, l.pos)}, nil
	case '!':
		l.advance()
		return Token{Kind: TokenNot, Lexeme: "!", Span: newSpan(start, l.pos)}, nil
	case '¬':
		l.advance()
		return Token{Kind: TokenNot, Lexeme: "¬", Span: newSpan(start, l.pos)}, nil
	case '∧':
		l.advance()
		return Token{Kind: TokenAnd, Lexeme: "∧", Span: newSpan(start, l.pos)}, nil
	case '∨':
		l.advance()
		return Token{Kind: TokenOr, Lexeme: "∨", Span: newSpan(start, l.pos)}, nil
	case '→':
		l.advance()
		return Token{Kind: TokenImplies, Lexeme: "→", Span: newSpan(start, l.pos)}, nil
	case '⊻', '⊕':
		l.advance()
		return Token{Kind: TokenXor, Lexeme: string(ch), Span: newSpan(start, l.pos)}, nil
	case '&':
		if l.peek() == '&' {
			l.advance()
			l.advance()
			return Token{Kind: TokenAnd, Lexeme: "&&", Span: newSpan(start, l.pos)}, nil
		}
	case '|':
		if l.peek() == '|' {
			l.advance()
			l.advance()
			return Token{Kind: TokenOr, Lexeme: "||", Span: newSpan(start, l.pos)}, nil
		}
	case '-':
		if l.peek() == '>' {
			l.advance()
			l.advance()
			return Token{Kind: TokenImplies, Lexeme: "->", Span: newSpan(start, l.pos)}, nil
		}
	}

	return Token{}, &LexError{Span: single(start), Char: ch}
}

func (l *Lexer) readIdentifier() (Token, error) {
	start := l.pos
	for l.pos < len(l.input) && isIdentPart(l.current()) {
		l.advance()
	}
	name := string(l.input[start:l.pos])
	span := newSpan(start, l.pos)

	if len(name) > expr.MaxNameLength {
		return Token{}, &IdentifierTooLongError{Span: span, Length: len(name), Limit: expr.MaxNameLength}
	}
	if kind, ok := keywords[name]; ok {
		return Token{Kind: kind, Lexeme: name, Span: span}, nil
	}
	return Token{Kind: TokenIdent, Lexeme: name, Span: span}, nil
}

// Tokenize materializes the whole token stream, ending with an EOF token.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9') || r == '_'
}
