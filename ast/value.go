package ast

// Value represents one node of the parsed tree. A value is either a leaf
// (symbol, string or number) or a list of values built strictly before it, so
// no cycles can be constructed.
type Value struct {
	v interface{}

	vt ValueType
}

// NewList creates a value of type list holding the given children, in order.
func NewList(values ...*Value) *Value {
	children := make([]*Value, len(values))
	copy(children, values)
	return &Value{v: children, vt: ValueTypeList}
}

// NewSymbol creates a value of type symbol. Every rune of the name is
// expected to satisfy the identifier predicate (a letter or "-", with a
// letter first); the type does not enforce it, but symbols that violate it
// will not survive an encode/parse round trip.
func NewSymbol(name string) *Value {
	return &Value{v: name, vt: ValueTypeSymbol}
}

// NewString creates a value of type string. The text must not contain the
// quote character or its encoded form will not reparse to an equal value.
func NewString(text string) *Value {
	return &Value{v: text, vt: ValueTypeString}
}

// NewNumber creates a value of type number.
func NewNumber(f float64) *Value {
	return &Value{v: f, vt: ValueTypeNumber}
}

// Type returns the type of the value
func (v *Value) Type() ValueType {
	return v.vt
}

// List returns the children of a value of type list
func (v *Value) List() []*Value {
	return v.v.([]*Value)
}

// Text returns the payload of a value of type symbol or string
func (v *Value) Text() string {
	return v.v.(string)
}

// Float64 returns the payload of a value of type number
func (v *Value) Float64() float64 {
	return v.v.(float64)
}

// IsList returns true if the value is of type list
func (v *Value) IsList() bool {
	return v.vt == ValueTypeList
}

// Equal reports whether two values are structurally equal: same type, and
// either equal payloads or pairwise-equal children in the same order.
func (v *Value) Equal(w *Value) bool {
	if v == nil || w == nil {
		return v == w
	}
	if v.vt != w.vt {
		return false
	}

	switch v.vt {
	case ValueTypeList:
		a, b := v.List(), w.List()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case ValueTypeSymbol, ValueTypeString:
		return v.Text() == w.Text()
	case ValueTypeNumber:
		return v.Float64() == w.Float64()
	}

	return false
}

func (v *Value) String() string {
	return string(Encode(v))
}
