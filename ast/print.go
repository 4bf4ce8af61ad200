package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print displays a human-readable representation of a value
func Print(v *Value) {
	printLevel(v, 0)
}

func printLevel(v *Value, level int) {
	if v == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	switch v.Type() {
	case ValueTypeList:
		fmt.Printf("%s(%s)[%d]\n", indent, v.Type(), len(v.List()))
		list := v.List()
		for i := range list {
			printLevel(list[i], level+1)
		}
	default:
		fmt.Printf("%s(%s): %v\n", indent, v.Type(), v.v)
	}
}

// Encode transforms a value into its canonical text representation. The
// rendering is deterministic and never fails. Two boundaries are not
// escaped: strings containing the quote character, and non-finite numbers;
// both render to text that will not reparse to an equal value.
func Encode(v *Value) []byte {
	if v == nil {
		return nil
	}
	switch v.Type() {
	case ValueTypeList:
		nodes := []string{}
		for _, el := range v.List() {
			nodes = append(nodes, string(Encode(el)))
		}
		return []byte("(" + strings.Join(nodes, " ") + ")")

	case ValueTypeSymbol:
		return []byte(v.Text())

	case ValueTypeString:
		return []byte(`"` + v.Text() + `"`)

	case ValueTypeNumber:
		// 'f' keeps every finite float inside the grammar: shortest
		// round-trippable digits, never exponent notation.
		return []byte(strconv.FormatFloat(v.Float64(), 'f', -1, 64))

	default:
		panic("unknown value type")
	}
}
