package main

import (
	"log"

	"github.com/emberian/simple-sexp/ast"
	"github.com/emberian/simple-sexp/parser"
)

func main() {
	input := `(server (host "localhost") (port 8080) (timeout 2.5) (offset -42))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
