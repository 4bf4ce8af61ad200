package main

import (
	"fmt"
	"log"

	"github.com/emberian/simple-sexp/lexer"
)

func main() {
	input := `
		(define fib # naive
			(lambda (n)
				(if (lt n 2) n (plus (fib (minus n 1)) (fib (minus n 2)))))
			"seed" -1 .5)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
