package lexer

import (
	"errors"
)

// Lexical failure conditions. Every error produced by a scan wraps one of
// these, so callers can match with errors.Is.
var (
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrMalformedNumber    = errors.New("malformed numeric literal")

	ErrForceStopped = errors.New("scan was stopped")
)
