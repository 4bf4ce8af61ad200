package lexer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"text/scanner"
)

type lexState func(*Lexer) lexState

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}

	return &Lexer{
		in:     s.Init(r),
		tokens: make(chan Token),
		done:   make(chan struct{}, 1),
		buf:    []rune{},
		line:   1,
		col:    1,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens chan Token
	done   chan struct{}

	lastErr error

	buf []rune

	line int
	col  int

	tokLine int
	tokCol  int
}

// Tokens returns a channel that is going to receive tokens as soon as they
// are detected. The channel is closed when the scan ends.
func (lx *Lexer) Tokens() chan Token {
	return lx.tokens
}

// Stop aborts a running scan. Pending tokens are drained so the scanning
// goroutine can notice the stop signal and wind down.
func (lx *Lexer) Stop() {
	select {
	case lx.done <- struct{}{}:
	default:
		// stop already requested
	}

	for range lx.tokens {
		// drain
	}
}

// Scan starts scanning the reader for tokens. It returns when the input is
// exhausted, a lexical error is found, or the scan is stopped.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		select {
		case <-lx.done:
			close(lx.tokens)
			return ErrForceStopped
		default:
			state = state(lx)
		}
	}

	if lx.lastErr == nil {
		lx.emit(TokenEOF)
	}

	close(lx.tokens)

	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens <- Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.tokLine,
		col:  lx.tokCol,
	}
	lx.discard()
}

func (lx *Lexer) discard() {
	lx.buf = lx.buf[:0]
	lx.tokLine = lx.line
	lx.tokCol = lx.col
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	if len(lx.buf) == 0 {
		lx.tokLine = lx.line
		lx.tokCol = lx.col
	}
	lx.buf = append(lx.buf, r)

	if isNewLine(r) {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r, nil
}

// skip consumes the next rune without keeping it
func (lx *Lexer) skip() error {
	if _, err := lx.next(); err != nil {
		return err
	}
	lx.discard()
	return nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)
	case isMinus(r):
		// a "-" is always its own token, even mid-number
		return lexEmit(TokenMinus)

	case isQuote(r):
		return lexString
	case IsSymbolRune(r):
		return lexSymbol
	case isDigit(r) || isDot(r):
		return lexNumeric

	case isHash(r):
		return lexComment
	case isSeparator(r):
		return lexSeparator

	default:
		return lexStateFatal(fmt.Errorf("%w %q at %d:%d", ErrInvalidCharacter, r, lx.tokLine, lx.tokCol))
	}
}

func lexString(lx *Lexer) lexState {
	line, col := lx.tokLine, lx.tokCol

	// drop the opening quote
	lx.discard()

	for {
		p := lx.peek()
		if p == scanner.EOF {
			return lexStateFatal(fmt.Errorf("%w at %d:%d", ErrUnterminatedString, line, col))
		}
		if isQuote(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}

	lx.emit(TokenString)

	// drop the closing quote
	if err := lx.skip(); err != nil {
		return lexStateError(err)
	}
	return lexDefaultState
}

func lexSymbol(lx *Lexer) lexState {
	for IsSymbolRune(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.emit(TokenSymbol)
	return lexDefaultState
}

func lexNumeric(lx *Lexer) lexState {
	if isDot(lx.buf[0]) {
		// ".5" reads as "0.5"
		lx.buf = append([]rune{'0'}, lx.buf...)
	} else {
		for isDigit(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
		if isDot(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
	}

	if isDot(lx.buf[len(lx.buf)-1]) {
		for isDigit(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
	}

	if _, err := strconv.ParseFloat(string(lx.buf), 64); err != nil {
		return lexStateFatal(fmt.Errorf("%w %q at %d:%d", ErrMalformedNumber, string(lx.buf), lx.tokLine, lx.tokCol))
	}

	lx.emit(TokenNumber)
	return lexDefaultState
}

func lexComment(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
		if isNewLine(p) {
			break
		}
	}
	lx.discard()
	return lexDefaultState
}

func lexSeparator(lx *Lexer) lexState {
	for isSeparator(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.discard()
	return lexDefaultState
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return lexStateFatal(err)
}

func lexStateFatal(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it, or
// an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}
	done := make(chan struct{})

	lx := New(bytes.NewReader(in))

	go func() {
		for tok := range lx.tokens {
			tokens = append(tokens, tok)
		}
		done <- struct{}{}
	}()

	err := lx.Scan()
	<-done

	if err != nil {
		return nil, err
	}
	return tokens, nil
}
