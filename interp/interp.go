package interp

import (
	"math"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/tawascript/ast"
	"github.com/pontaoski/tawascript/builtins"
	"github.com/pontaoski/tawascript/errors"
	"github.com/pontaoski/tawascript/parser"
	"github.com/pontaoski/tawascript/runtime"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawascript", "interp")

// Interpreter walks a parsed program against one Environment. It is not safe
// for concurrent use.
type Interpreter struct {
	env      *runtime.Environment
	builtins *builtins.Registry
	result   runtime.Value
}

// New returns an interpreter bound to env and registry. A nil env starts an
// empty global scope and a nil registry uses builtins.Default().
func New(env *runtime.Environment, registry *builtins.Registry) *Interpreter {
	if env == nil {
		env = runtime.NewEnvironment()
	}
	if registry == nil {
		registry = builtins.Default()
	}
	return &Interpreter{env: env, builtins: registry}
}

func (in *Interpreter) Environment() *runtime.Environment {
	return in.env
}

// Result returns the value of the last expression statement executed by the
// most recent Execute. ok is false when none ran.
func (in *Interpreter) Result() (v runtime.Value, ok bool) {
	return in.result, in.result != nil
}

// Execute runs block to completion or to the first error.
func (in *Interpreter) Execute(block ast.Block) error {
	plog.Debugf("executing %d statements", len(block.Statements))
	in.result = nil

	if err := in.execBlock(block); err != nil {
		plog.Debugf("run aborted: %v", err)
		return tracerr.Wrap(err)
	}

	plog.Debugf("run finished with %d bindings", in.env.Len())
	return nil
}

// Interpret lexes, parses and executes source in a fresh environment.
func Interpret(source string) error {
	return Run(source, runtime.NewEnvironment())
}

// Run executes source against env, leaving the final bindings in env.
func Run(source string, env *runtime.Environment) error {
	_, err := Eval(source, env)
	return err
}

// Eval executes source against env and returns the value of its last
// expression statement, or nil when it has none.
func Eval(source string, env *runtime.Environment) (runtime.Value, error) {
	block, err := parser.ParseSource(source)
	if err != nil {
		return nil, err
	}
	in := New(env, nil)
	if err := in.Execute(block); err != nil {
		return nil, err
	}
	v, _ := in.Result()
	return v, nil
}

func (in *Interpreter) execBlock(block ast.Block) error {
	for _, stmt := range block.Statements {
		if err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) exec(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case ast.Assignment:
		v, err := in.eval(s.Value)
		if err != nil {
			return err
		}
		in.assign(s.Name, v)
		return nil
	case ast.ExpressionStatement:
		v, err := in.eval(s.Expression)
		if err != nil {
			return err
		}
		in.result = v
		return nil
	case ast.Block:
		return in.execBlock(s)
	case ast.If:
		cond, err := in.condition(s.Condition)
		if err != nil {
			return err
		}
		if cond {
			return in.execBlock(s.Then)
		}
		if s.Else != nil {
			return in.execBlock(*s.Else)
		}
		return nil
	case ast.While:
		for {
			cond, err := in.condition(s.Condition)
			if err != nil {
				return err
			}
			if !cond {
				return nil
			}
			if err := in.execBlock(s.Body); err != nil {
				return err
			}
		}
	case ast.For:
		return in.execFor(s)
	}

	panic("unhandled statement")
}

func (in *Interpreter) assign(name string, v runtime.Value) {
	plog.Tracef("%s = %s", name, v)
	in.env.Set(name, v)
}

// execFor evaluates both bounds once. The iteration count is fixed up front
// and counted with an integer, so assigning to the loop variable inside the
// body does not change it, and ranges beyond float64's integer precision
// still terminate.
func (in *Interpreter) execFor(s ast.For) error {
	startV, err := in.eval(s.Start)
	if err != nil {
		return err
	}
	endV, err := in.eval(s.End)
	if err != nil {
		return err
	}

	start, startOk := startV.(runtime.Number)
	end, endOk := endV.(runtime.Number)
	if !startOk || !endOk {
		return errors.TypeMismatch{
			Op:    "FOR",
			Left:  startV.Kind(),
			Right: endV.Kind(),
			Pos:   s.Pos,
		}
	}

	in.assign(s.Var, start)
	count := math.Floor(float64(end-start)) + 1
	for k := int64(0); float64(k) < count; k++ {
		in.assign(s.Var, start+runtime.Number(k))
		if err := in.execBlock(s.Body); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) condition(expr ast.Expression) (bool, error) {
	v, err := in.eval(expr)
	if err != nil {
		return false, err
	}
	b, ok := v.(runtime.Bool)
	if !ok {
		return false, errors.ExpectedBoolean{Got: v.Kind(), Pos: expr.Position()}
	}
	return bool(b), nil
}
