package builtins

import (
	"fmt"
	"math"
	"sort"

	"github.com/pontaoski/tawascript/errors"
	"github.com/pontaoski/tawascript/runtime"
)

// Func receives arguments that have already been checked against Arity.
type Func func(args []runtime.Value) (runtime.Value, error)

type Builtin struct {
	Name  string
	Arity int
	Fn    Func
}

// Call checks the argument count and invokes the builtin.
func (b Builtin) Call(args []runtime.Value) (runtime.Value, error) {
	if len(args) != b.Arity {
		return nil, errors.BuiltinArgumentError{
			Name:   b.Name,
			Reason: fmt.Sprintf("expected %d arguments, got %d", b.Arity, len(args)),
		}
	}
	return b.Fn(args)
}

type Registry struct {
	funcs map[string]Builtin
}

func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Builtin)}
}

// Default returns a registry holding every builtin of the language.
func Default() *Registry {
	r := NewRegistry()

	funcs := []func() Builtin{
		addMin,
		addMax,
		addLen,
		addConcat,
		addSplit,
		addAppend,
		addRemove,
		addSortTuple,
	}
	for _, fn := range funcs {
		r.Register(fn())
	}

	return r
}

func (r *Registry) Register(b Builtin) {
	r.funcs[b.Name] = b
}

func (r *Registry) Lookup(name string) (Builtin, bool) {
	b, ok := r.funcs[name]
	return b, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func argError(name string, format string, args ...interface{}) error {
	return errors.BuiltinArgumentError{
		Name:   name,
		Reason: fmt.Sprintf(format, args...),
	}
}

func numberArg(name string, args []runtime.Value, i int) (runtime.Number, error) {
	n, ok := args[i].(runtime.Number)
	if !ok {
		return 0, argError(name, "argument %d must be a number, got %s", i+1, args[i].Kind())
	}
	return n, nil
}

func stringArg(name string, args []runtime.Value, i int) (runtime.Str, error) {
	s, ok := args[i].(runtime.Str)
	if !ok {
		return "", argError(name, "argument %d must be a string, got %s", i+1, args[i].Kind())
	}
	return s, nil
}

// arrayArg rejects tuples with a message saying they cannot be changed.
func arrayArg(name string, args []runtime.Value, i int) (*runtime.Array, error) {
	switch v := args[i].(type) {
	case *runtime.Array:
		return v, nil
	case runtime.Tuple:
		return nil, argError(name, "argument %d is a tuple, tuples are immutable", i+1)
	}
	return nil, argError(name, "argument %d must be an array, got %s", i+1, args[i].Kind())
}

// Index converts a Number to a slice index, reporting IndexOutOfBounds for
// negative, fractional or too-large values.
func Index(n runtime.Number, length int) (int, error) {
	f := float64(n)
	if f < 0 || f != math.Trunc(f) || f >= float64(length) {
		return 0, errors.IndexOutOfBounds{Index: f, Length: length}
	}
	return int(f), nil
}
