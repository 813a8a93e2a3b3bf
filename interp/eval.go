package interp

import (
	"math"

	"github.com/pontaoski/tawascript/ast"
	"github.com/pontaoski/tawascript/builtins"
	"github.com/pontaoski/tawascript/errors"
	"github.com/pontaoski/tawascript/runtime"
	"github.com/pontaoski/tawascript/types"
)

func (in *Interpreter) eval(expr ast.Expression) (runtime.Value, error) {
	switch e := expr.(type) {
	case ast.Literal:
		return e.Value, nil
	case ast.Identifier:
		v, ok := in.env.Get(e.Name)
		if !ok {
			return nil, errors.UndefinedVariable{Name: e.Name, Pos: e.Pos}
		}
		return v, nil
	case ast.BinaryOp:
		left, err := in.eval(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := in.eval(e.Right)
		if err != nil {
			return nil, err
		}
		return binary(e.Op, left, right, e.Pos)
	case ast.UnaryOp:
		operand, err := in.eval(e.Operand)
		if err != nil {
			return nil, err
		}
		n, ok := operand.(runtime.Number)
		if !ok {
			return nil, errors.TypeMismatch{Op: e.Op, Right: operand.Kind(), Unary: true, Pos: e.Pos}
		}
		return -n, nil
	case ast.Call:
		return in.call(e)
	case ast.Index:
		return in.index(e)
	case ast.ArrayLiteral:
		elements, err := in.evalAll(e.Elements)
		if err != nil {
			return nil, err
		}
		return runtime.NewArray(elements...), nil
	case ast.TupleLiteral:
		elements, err := in.evalAll(e.Elements)
		if err != nil {
			return nil, err
		}
		return runtime.NewTuple(elements...), nil
	}

	panic("unhandled expression")
}

// evalAll evaluates exprs left to right, stopping at the first error.
func (in *Interpreter) evalAll(exprs []ast.Expression) ([]runtime.Value, error) {
	values := make([]runtime.Value, 0, len(exprs))
	for _, expr := range exprs {
		v, err := in.eval(expr)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (in *Interpreter) call(c ast.Call) (runtime.Value, error) {
	b, ok := in.builtins.Lookup(c.Name)
	if !ok {
		return nil, errors.UnknownFunction{Name: c.Name, Pos: c.Pos}
	}

	args, err := in.evalAll(c.Arguments)
	if err != nil {
		return nil, err
	}

	v, err := b.Call(args)
	if err != nil {
		return nil, errors.At(err, c.Pos)
	}
	return v, nil
}

func (in *Interpreter) index(ix ast.Index) (runtime.Value, error) {
	coll, err := in.eval(ix.Collection)
	if err != nil {
		return nil, err
	}
	idx, err := in.eval(ix.Index)
	if err != nil {
		return nil, err
	}

	n, isNum := idx.(runtime.Number)
	var length int
	switch c := coll.(type) {
	case *runtime.Array:
		length = c.Len()
	case runtime.Tuple:
		length = c.Len()
	default:
		isNum = false
	}
	if !isNum {
		return nil, errors.TypeMismatch{Op: "[]", Left: coll.Kind(), Right: idx.Kind(), Pos: ix.Pos}
	}

	i, err := builtins.Index(n, length)
	if err != nil {
		return nil, errors.At(err, ix.Pos)
	}

	if arr, ok := coll.(*runtime.Array); ok {
		return arr.Elements[i], nil
	}
	return coll.(runtime.Tuple).At(i), nil
}

func binary(op string, left, right runtime.Value, pos types.Position) (runtime.Value, error) {
	mismatch := errors.TypeMismatch{Op: op, Left: left.Kind(), Right: right.Kind(), Pos: pos}

	switch op {
	case "+":
		if l, ok := left.(runtime.Str); ok {
			r, ok := right.(runtime.Str)
			if !ok {
				return nil, mismatch
			}
			return l + r, nil
		}
		fallthrough
	case "-", "*", "/":
		l, lok := left.(runtime.Number)
		r, rok := right.(runtime.Number)
		if !lok || !rok {
			return nil, mismatch
		}
		var result runtime.Number
		switch op {
		case "+":
			result = l + r
		case "-":
			result = l - r
		case "*":
			result = l * r
		default:
			if r == 0 {
				return nil, errors.DivisionByZero{Pos: pos}
			}
			result = l / r
		}
		if math.IsInf(float64(result), 0) || math.IsNaN(float64(result)) {
			return nil, errors.NonFiniteResult{Op: op, Pos: pos}
		}
		return result, nil
	case "==", "!=":
		eq, ok := runtime.Equal(left, right)
		if !ok {
			return nil, mismatch
		}
		return runtime.Bool(eq == (op == "==")), nil
	case "<", ">", "<=", ">=":
		cmp, ok := runtime.Compare(left, right)
		if !ok {
			return nil, mismatch
		}
		switch op {
		case "<":
			return runtime.Bool(cmp < 0), nil
		case ">":
			return runtime.Bool(cmp > 0), nil
		case "<=":
			return runtime.Bool(cmp <= 0), nil
		}
		return runtime.Bool(cmp >= 0), nil
	}

	panic("unhandled operator " + op)
}
