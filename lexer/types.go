package lexer

import (
	"unicode"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid TokenType = iota

	TokenOpenList  // Open parenthesis: "("
	TokenCloseList // Close parenthesis: ")"
	TokenMinus     // Minus sign: "-"
	TokenNumber    // Unsigned decimal literal
	TokenSymbol    // Letters with internal hyphens
	TokenString    // Double-quoted literal, no escapes

	TokenEOF // End of input
)

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenMinus:     "minus",
	TokenNumber:    "number",
	TokenSymbol:    "symbol",
	TokenString:    "string",
	TokenEOF:       "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isOpenList(r rune) bool {
	return r == '('
}

func isCloseList(r rune) bool {
	return r == ')'
}

func isMinus(r rune) bool {
	return r == '-'
}

func isQuote(r rune) bool {
	return r == '"'
}

func isHash(r rune) bool {
	return r == '#'
}

func isNewLine(r rune) bool {
	return r == '\n'
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDot(r rune) bool {
	return r == '.'
}

// IsSymbolRune reports whether r may appear in a symbol. A symbol starts
// with a letter; a "-" can only continue one, since a leading "-" is always
// tokenized as TokenMinus first.
func IsSymbolRune(r rune) bool {
	return unicode.IsLetter(r) || r == '-'
}
