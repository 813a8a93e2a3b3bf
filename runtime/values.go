package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindArray
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is implemented by exactly the five kinds below.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

type Number float64

func (Number) Kind() Kind { return KindNumber }
func (Number) isValue()   {}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

type Str string

func (Str) Kind() Kind { return KindString }
func (Str) isValue()   {}

func (s Str) String() string { return string(s) }

type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) isValue()   {}

func (b Bool) String() string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// Array is shared by reference: every binding holding the same *Array sees
// mutations made through any of them.
type Array struct {
	Elements []Value
}

func NewArray(elements ...Value) *Array {
	return &Array{Elements: append([]Value(nil), elements...)}
}

func (*Array) Kind() Kind { return KindArray }
func (*Array) isValue()   {}

func (a *Array) Len() int { return len(a.Elements) }

func (a *Array) Append(v Value) {
	a.Elements = append(a.Elements, v)
}

// RemoveAt deletes the element at i. The caller checks bounds.
func (a *Array) RemoveAt(i int) Value {
	removed := a.Elements[i]
	a.Elements = append(a.Elements[:i], a.Elements[i+1:]...)
	return removed
}

// String renders the array. An array reached again while it is still being
// rendered is shown as [...].
func (a *Array) String() string {
	return render(a, map[*Array]bool{})
}

// Tuple never changes after construction; NewTuple copies its input.
type Tuple struct {
	elements []Value
}

func NewTuple(elements ...Value) Tuple {
	return Tuple{elements: append([]Value(nil), elements...)}
}

func (Tuple) Kind() Kind { return KindTuple }
func (Tuple) isValue()   {}

func (t Tuple) Len() int { return len(t.elements) }

func (t Tuple) At(i int) Value { return t.elements[i] }

// Elements returns a copy of the tuple's contents.
func (t Tuple) Elements() []Value {
	return append([]Value(nil), t.elements...)
}

func (t Tuple) String() string {
	return render(t, map[*Array]bool{})
}

// render formats v, tracking the arrays currently open on the path from the
// root so that self-referencing arrays terminate.
func render(v Value, open map[*Array]bool) string {
	switch c := v.(type) {
	case *Array:
		if open[c] {
			return "[...]"
		}
		open[c] = true
		defer delete(open, c)
		return "[" + joinValues(c.Elements, open) + "]"
	case Tuple:
		if len(c.elements) == 1 {
			return "(" + renderElement(c.elements[0], open) + ",)"
		}
		return "(" + joinValues(c.elements, open) + ")"
	}
	return v.String()
}

func renderElement(v Value, open map[*Array]bool) string {
	if s, ok := v.(Str); ok {
		return strconv.Quote(string(s))
	}
	return render(v, open)
}

func joinValues(values []Value, open map[*Array]bool) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = renderElement(v, open)
	}
	return strings.Join(parts, ", ")
}
