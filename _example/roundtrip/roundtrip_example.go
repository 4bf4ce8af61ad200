package main

import (
	"fmt"
	"log"

	sexpr "github.com/emberian/simple-sexp"
	"github.com/emberian/simple-sexp/ast"
)

func main() {
	v := ast.NewList(
		ast.NewSymbol("greet"),
		ast.NewString("hello world"),
		ast.NewList(ast.NewNumber(42), ast.NewNumber(-2.5)),
		ast.NewList(),
	)

	text := sexpr.Stringify(v)
	fmt.Printf("stringified: %s\n", text)

	parsed, err := sexpr.ParseString(text)
	if err != nil {
		log.Fatal("sexpr.ParseString:", err)
	}

	fmt.Printf("round trip equal: %v\n", parsed.Equal(v))
}
