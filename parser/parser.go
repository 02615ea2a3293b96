package parser

import (
	"github.com/rfaulhaber/ttt/expr"
)

// Parser consumes a materialized token stream and builds an expression tree.
// It stops at the first error; there is no recovery or multi-error collection.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse tokenizes and parses a complete expression. The whole input must be
// consumed: leftover tokens after a well-formed prefix are an error.
func Parse(input string) (expr.Expr, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// NewParser creates a parser over tokens. The slice must end with an EOF
// token, as produced by Lexer.Tokenize.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	// Tokenize always ends the stream with EOF; synthesize one for safety.
	end := 0
	if n := len(p.tokens); n > 0 {
		end = p.tokens[n-1].Span.End
	}
	return Token{Kind: TokenEOF, Span: single(end)}
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

// Parse parses the token stream as a single expression.
func (p *Parser) Parse() (expr.Expr, error) {
	e, err := p.parseImplication()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Kind != TokenEOF {
		return nil, &UnexpectedTokenError{Span: tok.Span, Expected: "end of input", Found: tok.describe()}
	}
	return e, nil
}

func (p *Parser) parseImplication() (expr.Expr, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == TokenImplies {
		p.advance()
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		left = expr.Implies{L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseXor() (expr.Expr, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == TokenXor {
		p.advance()
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		left = expr.Xor{L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseOr() (expr.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = expr.Or{L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (expr.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == TokenAnd {
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = expr.And{L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (expr.Expr, error) {
	if p.current().Kind == TokenNot {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return expr.Not{X: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (expr.Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case TokenIdent:
		p.advance()
		return expr.Var{Name: tok.Lexeme}, nil
	case TokenLParen:
		p.advance()
		e, err := p.parseImplication()
		if err != nil {
			return nil, err
		}
		closing := p.current()
		if closing.Kind == TokenEOF {
			return nil, &UnexpectedEOFError{Span: closing.Span}
		}
		if closing.Kind != TokenRParen {
			return nil, &UnexpectedTokenError{Span: closing.Span, Expected: `")"`, Found: closing.describe()}
		}
		p.advance()
		return e, nil
	case TokenEOF:
		return nil, &UnexpectedEOFError{Span: tok.Span}
	default:
		return nil, &UnexpectedTokenError{Span: tok.Span, Expected: `identifier or "("`, Found: tok.describe()}
	}
}
