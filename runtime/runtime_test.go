package runtime

import (
	"testing"

	"github.com/alecthomas/repr"
)

func TestEnvironment(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Get("x"); ok {
		t.Fatal("empty environment returned a binding")
	}

	env.Set("x", Number(1))
	env.Set("b", Bool(true))
	env.Set("x", Str("over"))

	v, ok := env.Get("x")
	if !ok || v != Value(Str("over")) {
		t.Fatalf("got %s", repr.String(v))
	}
	if env.Len() != 2 {
		t.Fatalf("len %d", env.Len())
	}
	if got := env.Keys(); repr.String(got) != repr.String([]string{"b", "x"}) {
		t.Fatalf("keys %s", repr.String(got))
	}

	snap := env.Snapshot()
	env.Set("y", Number(2))
	if _, ok := snap["y"]; ok {
		t.Fatal("snapshot tracks later bindings")
	}
}

func TestArraySharing(t *testing.T) {
	a := NewArray(Number(1), Number(2))
	env := NewEnvironment()
	env.Set("a", a)
	env.Set("b", a)

	a.Append(Number(3))
	b, _ := env.Get("b")
	if b.(*Array).Len() != 3 {
		t.Fatalf("alias did not observe append: %s", b)
	}

	removed := a.RemoveAt(1)
	if removed != Value(Number(2)) || b.String() != "[1, 3]" {
		t.Fatalf("got %s after removing %s", b, removed)
	}
}

func TestTupleCopiesInput(t *testing.T) {
	in := []Value{Number(1), Number(2)}
	tup := NewTuple(in...)
	in[0] = Number(9)

	if tup.String() != "(1, 2)" {
		t.Fatalf("tuple changed with its input: %s", tup)
	}

	out := tup.Elements()
	out[1] = Number(9)
	if tup.At(1) != Value(Number(2)) {
		t.Fatal("Elements exposed the backing slice")
	}
}

func TestCompareAndEqual(t *testing.T) {
	tests := []struct {
		left, right Value
		cmp         int
		ok          bool
	}{
		{Number(1), Number(2), -1, true},
		{Number(2), Number(2), 0, true},
		{Str("b"), Str("a"), 1, true},
		{Number(1), Str("1"), 0, false},
		{Bool(true), Bool(true), 0, false},
		{NewTuple(), NewTuple(), 0, false},
	}

	for _, test := range tests {
		cmp, ok := Compare(test.left, test.right)
		if cmp != test.cmp || ok != test.ok {
			t.Errorf("Compare(%s, %s) = %d, %v", test.left, test.right, cmp, ok)
		}
	}

	if eq, ok := Equal(Bool(true), Bool(true)); !eq || !ok {
		t.Error("TRUE == TRUE")
	}
	if _, ok := Equal(Bool(true), Number(1)); ok {
		t.Error("bool and number must not compare")
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		v        Value
		expected string
	}{
		{Number(6), "6"},
		{Number(2.5), "2.5"},
		{Number(-0.125), "-0.125"},
		{Str("hi"), "hi"},
		{Bool(false), "FALSE"},
		{NewArray(Str("a"), Number(1)), `["a", 1]`},
		{NewTuple(Number(1)), "(1,)"},
		{NewTuple(), "()"},
	}

	for _, test := range tests {
		if got := test.v.String(); got != test.expected {
			t.Errorf("got %s, expected %s", got, test.expected)
		}
	}
	if KindTuple.String() != "tuple" {
		t.Errorf("got %s", KindTuple)
	}
}

func TestCyclicArrayStrings(t *testing.T) {
	self := NewArray(Number(1))
	self.Append(self)

	a := NewArray(Number(1))
	b := NewArray(Number(2))
	b.Append(a)
	a.Append(b)

	shared := NewArray()
	twice := NewArray(shared, shared)

	tests := []struct {
		v        Value
		expected string
	}{
		{self, "[1, [...]]"},
		{a, "[1, [2, [...]]]"},
		{b, "[2, [1, [...]]]"},
		{NewTuple(self, Str("x")), `([1, [...]], "x")`},
		{NewTuple(a), "([1, [2, [...]]],)"},
		{twice, "[[], []]"},
	}

	for _, test := range tests {
		if got := test.v.String(); got != test.expected {
			t.Errorf("got %s, expected %s", got, test.expected)
		}
	}
}

func TestOrderable(t *testing.T) {
	if !Orderable(nil) || !Orderable([]Value{Str("a"), Str("b")}) {
		t.Error("expected orderable")
	}
	if Orderable([]Value{Number(1), Str("b")}) || Orderable([]Value{Bool(true)}) {
		t.Error("expected not orderable")
	}
}
