package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/pontaoski/tawascript/runtime"
	"github.com/pontaoski/tawascript/types"
	"github.com/ztrue/tracerr"
)

// LangError is implemented by every error the lexer, parser and interpreter
// report to callers.
type LangError interface {
	error
	Position() types.Position
	Category() Category
}

type Category int

const (
	Lex Category = iota
	Parse
	Runtime
)

func (c Category) String() string {
	switch c {
	case Lex:
		return "lex error"
	case Parse:
		return "parse error"
	default:
		return "runtime error"
	}
}

type LexErrorKind int

const (
	InvalidNumber LexErrorKind = iota
	UnterminatedString
	UnexpectedCharacter
)

func (k LexErrorKind) String() string {
	switch k {
	case InvalidNumber:
		return "invalid number"
	case UnterminatedString:
		return "unterminated string"
	default:
		return "unexpected character"
	}
}

type LexError struct {
	Kind LexErrorKind
	Text string
	Pos  types.Position
}

func (e LexError) Error() string {
	return fmt.Sprintf("%s %q. %s", e.Kind, e.Text, e.Pos)
}

func (e LexError) Position() types.Position { return e.Pos }
func (e LexError) Category() Category       { return Lex }

type UnexpectedToken struct {
	Expected []string
	Found    types.Token
	Pos      types.Position
}

func (e UnexpectedToken) Error() string {
	return fmt.Sprintf("got %s, expected one of %s. %s", e.Found, strings.Join(e.Expected, ", "), e.Pos)
}

func (e UnexpectedToken) Position() types.Position { return e.Pos }
func (e UnexpectedToken) Category() Category       { return Parse }

// UnterminatedBlock reports a '{' whose matching '}' never arrived.
type UnterminatedBlock struct {
	Open types.Position
	Pos  types.Position
}

func (e UnterminatedBlock) Error() string {
	return fmt.Sprintf("block opened at %s is never closed. %s", e.Open, e.Pos)
}

func (e UnterminatedBlock) Position() types.Position { return e.Pos }
func (e UnterminatedBlock) Category() Category       { return Parse }

type UndefinedVariable struct {
	Name string
	Pos  types.Position
}

func (e UndefinedVariable) Error() string {
	return fmt.Sprintf("undefined variable %s. %s", e.Name, e.Pos)
}

func (e UndefinedVariable) Position() types.Position { return e.Pos }
func (e UndefinedVariable) Category() Category       { return Runtime }

// TypeMismatch is raised when an operator receives operands it does not
// accept. Unary operators only fill Right.
type TypeMismatch struct {
	Op    string
	Left  runtime.Kind
	Right runtime.Kind
	Unary bool
	Pos   types.Position
}

func (e TypeMismatch) Error() string {
	if e.Unary {
		return fmt.Sprintf("operator %s does not apply to %s. %s", e.Op, e.Right, e.Pos)
	}
	return fmt.Sprintf("operator %s does not apply to %s and %s. %s", e.Op, e.Left, e.Right, e.Pos)
}

func (e TypeMismatch) Position() types.Position { return e.Pos }
func (e TypeMismatch) Category() Category       { return Runtime }

type DivisionByZero struct {
	Pos types.Position
}

func (e DivisionByZero) Error() string {
	return fmt.Sprintf("division by zero. %s", e.Pos)
}

func (e DivisionByZero) Position() types.Position { return e.Pos }
func (e DivisionByZero) Category() Category       { return Runtime }

// NonFiniteResult is raised when arithmetic overflows to an infinity or
// produces NaN.
type NonFiniteResult struct {
	Op  string
	Pos types.Position
}

func (e NonFiniteResult) Error() string {
	return fmt.Sprintf("operator %s produced a number out of range. %s", e.Op, e.Pos)
}

func (e NonFiniteResult) Position() types.Position { return e.Pos }
func (e NonFiniteResult) Category() Category       { return Runtime }

type UnknownFunction struct {
	Name string
	Pos  types.Position
}

func (e UnknownFunction) Error() string {
	return fmt.Sprintf("unknown function %s. %s", e.Name, e.Pos)
}

func (e UnknownFunction) Position() types.Position { return e.Pos }
func (e UnknownFunction) Category() Category       { return Runtime }

type BuiltinArgumentError struct {
	Name   string
	Reason string
	Pos    types.Position
}

func (e BuiltinArgumentError) Error() string {
	return fmt.Sprintf("%s: %s. %s", e.Name, e.Reason, e.Pos)
}

func (e BuiltinArgumentError) Position() types.Position { return e.Pos }
func (e BuiltinArgumentError) Category() Category       { return Runtime }

type IndexOutOfBounds struct {
	Index  float64
	Length int
	Pos    types.Position
}

func (e IndexOutOfBounds) Error() string {
	return fmt.Sprintf("index %g out of bounds for length %d. %s", e.Index, e.Length, e.Pos)
}

func (e IndexOutOfBounds) Position() types.Position { return e.Pos }
func (e IndexOutOfBounds) Category() Category       { return Runtime }

// ExpectedBoolean is raised when an IF or WHILE condition is not a Bool.
type ExpectedBoolean struct {
	Got runtime.Kind
	Pos types.Position
}

func (e ExpectedBoolean) Error() string {
	return fmt.Sprintf("condition must be a bool, got %s. %s", e.Got, e.Pos)
}

func (e ExpectedBoolean) Position() types.Position { return e.Pos }
func (e ExpectedBoolean) Category() Category       { return Runtime }

// At stamps pos onto a runtime error that was raised without one, such as an
// error returned by a builtin. Other errors pass through untouched.
func At(err error, pos types.Position) error {
	switch e := err.(type) {
	case BuiltinArgumentError:
		if e.Pos.IsZero() {
			e.Pos = pos
		}
		return e
	case IndexOutOfBounds:
		if e.Pos.IsZero() {
			e.Pos = pos
		}
		return e
	case TypeMismatch:
		if e.Pos.IsZero() {
			e.Pos = pos
		}
		return e
	case DivisionByZero:
		if e.Pos.IsZero() {
			e.Pos = pos
		}
		return e
	}
	return err
}

// AsLangError extracts the LangError carried by err, looking through tracerr
// wrapping.
func AsLangError(err error) (LangError, bool) {
	var le LangError
	if stderrors.As(tracerr.Unwrap(err), &le) {
		return le, true
	}
	return nil, false
}

func IsLexError(err error) bool {
	le, ok := AsLangError(err)
	return ok && le.Category() == Lex
}

func IsParseError(err error) bool {
	le, ok := AsLangError(err)
	return ok && le.Category() == Parse
}

func IsRuntimeError(err error) bool {
	le, ok := AsLangError(err)
	return ok && le.Category() == Runtime
}
