package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberian/simple-sexp/ast"
	"github.com/emberian/simple-sexp/lexer"
)

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out *ast.Value
	}{
		{
			In:  `42`,
			Out: ast.NewNumber(42),
		},
		{
			In:  `-42`,
			Out: ast.NewNumber(-42),
		},
		{
			In:  `- 42`,
			Out: ast.NewNumber(-42),
		},
		{
			In:  `.5`,
			Out: ast.NewNumber(0.5),
		},
		{
			In:  `-.5`,
			Out: ast.NewNumber(-0.5),
		},
		{
			In:  `meow`,
			Out: ast.NewSymbol("meow"),
		},
		{
			In:  `"hello world"`,
			Out: ast.NewString("hello world"),
		},
		{
			In:  `()`,
			Out: ast.NewList(),
		},
		{
			In:  `(meow (42))`,
			Out: ast.NewList(ast.NewSymbol("meow"), ast.NewList(ast.NewNumber(42))),
		},
		{
			In: `(foo a c-d-e-f "g h" 1.25 -3)`,
			Out: ast.NewList(
				ast.NewSymbol("foo"),
				ast.NewSymbol("a"),
				ast.NewSymbol("c-d-e-f"),
				ast.NewString("g h"),
				ast.NewNumber(1.25),
				ast.NewNumber(-3),
			),
		},
		{
			In: "(a\n\t(b () (c))\n)",
			Out: ast.NewList(
				ast.NewSymbol("a"),
				ast.NewList(
					ast.NewSymbol("b"),
					ast.NewList(),
					ast.NewList(ast.NewSymbol("c")),
				),
			),
		},
		{
			In:  "# note\n(a)",
			Out: ast.NewList(ast.NewSymbol("a")),
		},
		{
			In:  "(a # note\nb)",
			Out: ast.NewList(ast.NewSymbol("a"), ast.NewSymbol("b")),
		},
	}

	for i := range testCases {
		root, err := Parse([]byte(testCases[i].In))

		assert.NoError(t, err, "case %q", testCases[i].In)
		assert.NotNil(t, root)

		assert.True(t, testCases[i].Out.Equal(root), "case %q: got %v", testCases[i].In, root)
	}
}

func TestParserFirstExpressionOnly(t *testing.T) {
	// one value per call; trailing tokens are neither consumed nor reported
	testCases := []struct {
		In  string
		Out *ast.Value
	}{
		{
			In:  `1 2 3`,
			Out: ast.NewNumber(1),
		},
		{
			In:  `(a) (b)`,
			Out: ast.NewList(ast.NewSymbol("a")),
		},
		{
			In:  `a ) ) )`,
			Out: ast.NewSymbol("a"),
		},
		{
			In:  `(a) @`,
			Out: ast.NewList(ast.NewSymbol("a")),
		},
	}

	for i := range testCases {
		root, err := Parse([]byte(testCases[i].In))

		assert.NoError(t, err, "case %q", testCases[i].In)
		assert.True(t, testCases[i].Out.Equal(root), "case %q: got %v", testCases[i].In, root)
	}
}

func TestParserErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{``, ErrEmptyInput},
		{" \t\n", ErrEmptyInput},
		{"# only a comment", ErrEmptyInput},

		{`(a`, ErrUnbalancedParenthesis},
		{`(`, ErrUnbalancedParenthesis},
		{`((a) (b)`, ErrUnbalancedParenthesis},
		{`)`, ErrUnbalancedParenthesis},
		{`) 1`, ErrUnbalancedParenthesis},
		{`(a))`, nil}, // trailing close is trailing garbage

		{`-`, ErrExpectedNumber},
		{`- a`, ErrExpectedNumber},
		{`--1`, ErrExpectedNumber},
		{`(- a)`, ErrExpectedNumber},
		{`-"x"`, ErrExpectedNumber},
		{`-(1)`, ErrExpectedNumber},

		{`(a @)`, lexer.ErrInvalidCharacter},
		{`@`, lexer.ErrInvalidCharacter},
		{`("abc`, lexer.ErrUnterminatedString},
		{`"abc`, lexer.ErrUnterminatedString},
		{`(` + strings.Repeat("9", 400) + `)`, lexer.ErrMalformedNumber},
	}

	for i := range testCases {
		root, err := Parse([]byte(testCases[i].In))

		if testCases[i].Err == nil {
			assert.NoError(t, err, "case %q", testCases[i].In)
			continue
		}

		assert.Nil(t, root, "case %q", testCases[i].In)
		assert.ErrorIs(t, err, testCases[i].Err, "case %q", testCases[i].In)
	}
}

func TestParserReader(t *testing.T) {
	p := New(strings.NewReader(`(one "two" 3)`))

	root, err := p.Parse()
	assert.NoError(t, err)

	expected := ast.NewList(ast.NewSymbol("one"), ast.NewString("two"), ast.NewNumber(3))
	assert.True(t, expected.Equal(root))
}
