// Package sexpr reads and writes a minimal S-expression language:
// parenthesized lists of symbols, quoted strings and signed floating-point
// numbers.
package sexpr

import (
	"io"
	"strings"

	"github.com/emberian/simple-sexp/ast"
	"github.com/emberian/simple-sexp/parser"
)

// Parse reads characters from r and returns the first complete expression
// within them.
func Parse(r io.Reader) (*ast.Value, error) {
	return parser.New(r).Parse()
}

// ParseString returns the first complete expression within s
func ParseString(s string) (*ast.Value, error) {
	return Parse(strings.NewReader(s))
}

// Stringify returns the canonical text form of v. Parsing the result yields
// a value equal to v, as long as v's strings are quote-free, its symbols are
// made of letters and internal hyphens, and its numbers are finite.
func Stringify(v *ast.Value) string {
	return string(ast.Encode(v))
}
