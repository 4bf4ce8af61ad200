package ast

// ValueType represents the type of a tree value
type ValueType uint8

// Value types
const (
	ValueTypeInvalid ValueType = iota

	ValueTypeList
	ValueTypeSymbol
	ValueTypeString
	ValueTypeNumber
)

var valueTypeNames = map[ValueType]string{
	ValueTypeInvalid: "invalid",
	ValueTypeList:    "list",
	ValueTypeSymbol:  "symbol",
	ValueTypeString:  "string",
	ValueTypeNumber:  "number",
}

func (vt ValueType) String() string {
	if s, ok := valueTypeNames[vt]; ok {
		return s
	}
	return valueTypeNames[ValueTypeInvalid]
}
