package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/emberian/simple-sexp/ast"
	"github.com/emberian/simple-sexp/lexer"
)

// TokenEOF is the sentinel the parser sees once the lexer's token channel is
// closed.
var TokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

// Parser builds one tree value from a token stream using one token of
// lookahead.
type Parser struct {
	lx *lexer.Lexer

	lastTok *lexer.Token
	nextTok *lexer.Token
}

// New creates a parser that reads characters from r
func New(r io.Reader) *Parser {
	p := &Parser{}
	p.lx = lexer.New(r)
	return p
}

// Parse consumes tokens until the first complete expression is built and
// returns it. Tokens past the first expression are drained but neither
// consumed semantically nor reported. When no expression can be built the
// returned error wraps one of the conditions from this package or from the
// lexer package.
func (p *Parser) Parse() (*ast.Value, error) {
	errCh := make(chan error, 1)

	go func() {
		errCh <- p.lx.Scan()
	}()

	v, err := p.parseValue()
	atEOF := p.curr() != nil && p.curr().Is(lexer.TokenEOF)

	for tok := p.next(); !tok.Is(lexer.TokenEOF); tok = p.next() {
		// drain trailing tokens so the scan can finish
	}
	lexErr := <-errCh

	if err != nil {
		if lexErr != nil && atEOF {
			// the token stream was cut short by a lexical error, which
			// is the real cause of this failure
			return nil, lexErr
		}
		return nil, err
	}

	// a lexical error found after the first complete expression belongs to
	// trailing garbage and is not reported
	return v, nil
}

func (p *Parser) curr() *lexer.Token {
	return p.lastTok
}

func (p *Parser) read() *lexer.Token {
	tok, ok := <-p.lx.Tokens()
	if ok {
		return &tok
	}
	return TokenEOF
}

func (p *Parser) peek() *lexer.Token {
	if p.nextTok != nil {
		return p.nextTok
	}

	p.nextTok = p.read()
	return p.nextTok
}

func (p *Parser) next() *lexer.Token {
	if p.nextTok != nil {
		tok := p.nextTok
		p.lastTok, p.nextTok = tok, nil
		return tok
	}

	tok := p.read()
	p.lastTok, p.nextTok = tok, nil
	return tok
}

// parseValue consumes exactly one expression:
//
//	value := NUMBER | SYMBOL | STRING | MINUS NUMBER | '(' value* ')'
func (p *Parser) parseValue() (*ast.Value, error) {
	tok := p.next()

	switch tok.Type() {
	case lexer.TokenEOF:
		return nil, ErrEmptyInput

	case lexer.TokenNumber:
		f, err := tok.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", lexer.ErrMalformedNumber, tok)
		}
		return ast.NewNumber(f), nil

	case lexer.TokenSymbol:
		return ast.NewSymbol(tok.Text()), nil

	case lexer.TokenString:
		return ast.NewString(tok.Text()), nil

	case lexer.TokenMinus:
		return p.parseNegativeNumber()

	case lexer.TokenOpenList:
		return p.parseList()

	case lexer.TokenCloseList:
		return nil, fmt.Errorf("%w: %v", ErrUnbalancedParenthesis, tok)
	}

	return nil, fmt.Errorf("unexpected token: %v", tok)
}

func (p *Parser) parseNegativeNumber() (*ast.Value, error) {
	tok := p.next()
	if !tok.Is(lexer.TokenNumber) {
		return nil, fmt.Errorf("%w, found %v", ErrExpectedNumber, tok)
	}

	f, err := tok.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lexer.ErrMalformedNumber, tok)
	}
	return ast.NewNumber(-f), nil
}

func (p *Parser) parseList() (*ast.Value, error) {
	values := []*ast.Value{}

	for {
		switch {
		case p.peek().Is(lexer.TokenCloseList):
			p.next()
			return ast.NewList(values...), nil

		case p.peek().Is(lexer.TokenEOF):
			p.next()
			return nil, fmt.Errorf("%w: unexpected EOF", ErrUnbalancedParenthesis)

		default:
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
}

// Parse takes an array of bytes and returns the first complete expression
// within it
func Parse(in []byte) (*ast.Value, error) {
	return New(bytes.NewReader(in)).Parse()
}
