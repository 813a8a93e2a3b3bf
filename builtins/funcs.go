package builtins

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pontaoski/tawascript/runtime"
)

func addMin() Builtin {
	return Builtin{Name: "MIN", Arity: 2, Fn: func(args []runtime.Value) (runtime.Value, error) {
		a, b, err := numberPair("MIN", args)
		if err != nil {
			return nil, err
		}
		if b < a {
			return b, nil
		}
		return a, nil
	}}
}

func addMax() Builtin {
	return Builtin{Name: "MAX", Arity: 2, Fn: func(args []runtime.Value) (runtime.Value, error) {
		a, b, err := numberPair("MAX", args)
		if err != nil {
			return nil, err
		}
		if b > a {
			return b, nil
		}
		return a, nil
	}}
}

func numberPair(name string, args []runtime.Value) (runtime.Number, runtime.Number, error) {
	a, err := numberArg(name, args, 0)
	if err != nil {
		return 0, 0, err
	}
	b, err := numberArg(name, args, 1)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func addLen() Builtin {
	return Builtin{Name: "LEN", Arity: 1, Fn: func(args []runtime.Value) (runtime.Value, error) {
		switch v := args[0].(type) {
		case runtime.Str:
			return runtime.Number(utf8.RuneCountInString(string(v))), nil
		case *runtime.Array:
			return runtime.Number(v.Len()), nil
		case runtime.Tuple:
			return runtime.Number(v.Len()), nil
		}
		return nil, argError("LEN", "argument must be a string, array or tuple, got %s", args[0].Kind())
	}}
}

func addConcat() Builtin {
	return Builtin{Name: "CONCAT", Arity: 2, Fn: func(args []runtime.Value) (runtime.Value, error) {
		a, err := stringArg("CONCAT", args, 0)
		if err != nil {
			return nil, err
		}
		b, err := stringArg("CONCAT", args, 1)
		if err != nil {
			return nil, err
		}
		return a + b, nil
	}}
}

func addSplit() Builtin {
	return Builtin{Name: "SPLIT", Arity: 2, Fn: func(args []runtime.Value) (runtime.Value, error) {
		s, err := stringArg("SPLIT", args, 0)
		if err != nil {
			return nil, err
		}
		sep, err := stringArg("SPLIT", args, 1)
		if err != nil {
			return nil, err
		}

		parts := strings.Split(string(s), string(sep))
		out := runtime.NewArray()
		for _, part := range parts {
			out.Append(runtime.Str(part))
		}
		return out, nil
	}}
}

func addAppend() Builtin {
	return Builtin{Name: "APPEND", Arity: 2, Fn: func(args []runtime.Value) (runtime.Value, error) {
		arr, err := arrayArg("APPEND", args, 0)
		if err != nil {
			return nil, err
		}
		arr.Append(args[1])
		return arr, nil
	}}
}

func addRemove() Builtin {
	return Builtin{Name: "REMOVE", Arity: 2, Fn: func(args []runtime.Value) (runtime.Value, error) {
		arr, err := arrayArg("REMOVE", args, 0)
		if err != nil {
			return nil, err
		}
		n, err := numberArg("REMOVE", args, 1)
		if err != nil {
			return nil, err
		}
		i, err := Index(n, arr.Len())
		if err != nil {
			return nil, err
		}
		arr.RemoveAt(i)
		return arr, nil
	}}
}

func addSortTuple() Builtin {
	return Builtin{Name: "SORT_TUPLE", Arity: 1, Fn: func(args []runtime.Value) (runtime.Value, error) {
		t, ok := args[0].(runtime.Tuple)
		if !ok {
			return nil, argError("SORT_TUPLE", "argument must be a tuple, got %s", args[0].Kind())
		}

		elements := t.Elements()
		if !runtime.Orderable(elements) {
			return nil, argError("SORT_TUPLE", "elements must be all numbers or all strings")
		}
		sort.SliceStable(elements, func(i, j int) bool {
			cmp, _ := runtime.Compare(elements[i], elements[j])
			return cmp < 0
		})
		return runtime.NewTuple(elements...), nil
	}}
}
