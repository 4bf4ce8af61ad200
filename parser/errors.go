package parser

import (
	"errors"
)

// Grammar failure conditions. Every error produced by a parse wraps one of
// these, or one of the lexer package's conditions, so callers can match with
// errors.Is.
var (
	ErrExpectedNumber        = errors.New("expected a number")
	ErrUnbalancedParenthesis = errors.New("unbalanced parenthesis")
	ErrEmptyInput            = errors.New("empty input")
)
