package ast

import (
	"github.com/pontaoski/tawascript/runtime"
	"github.com/pontaoski/tawascript/types"
)

type Node interface {
	Position() types.Position
}

type Expression interface {
	Node
	is_Expression()
}

type Statement interface {
	Node
	is_Statement()
}

// Literal holds a scalar constant: a Number, Str or Bool.
type Literal struct {
	Value runtime.Value
	Pos   types.Position
}

func (v Literal) is_Expression()           {}
func (v Literal) Position() types.Position { return v.Pos }

type Identifier struct {
	Name string
	Pos  types.Position
}

func (v Identifier) is_Expression()           {}
func (v Identifier) Position() types.Position { return v.Pos }

type BinaryOp struct {
	Op    string
	Left  Expression
	Right Expression
	Pos   types.Position
}

func (v BinaryOp) is_Expression()           {}
func (v BinaryOp) Position() types.Position { return v.Pos }

type UnaryOp struct {
	Op      string
	Operand Expression
	Pos     types.Position
}

func (v UnaryOp) is_Expression()           {}
func (v UnaryOp) Position() types.Position { return v.Pos }

type Call struct {
	Name      string
	Arguments []Expression
	Pos       types.Position
}

func (v Call) is_Expression()           {}
func (v Call) Position() types.Position { return v.Pos }

type Index struct {
	Collection Expression
	Index      Expression
	Pos        types.Position
}

func (v Index) is_Expression()           {}
func (v Index) Position() types.Position { return v.Pos }

// ArrayLiteral builds a fresh Array each time it is evaluated.
type ArrayLiteral struct {
	Elements []Expression
	Pos      types.Position
}

func (v ArrayLiteral) is_Expression()           {}
func (v ArrayLiteral) Position() types.Position { return v.Pos }

type TupleLiteral struct {
	Elements []Expression
	Pos      types.Position
}

func (v TupleLiteral) is_Expression()           {}
func (v TupleLiteral) Position() types.Position { return v.Pos }

type Assignment struct {
	Name  string
	Value Expression
	Pos   types.Position
}

func (v Assignment) is_Statement()            {}
func (v Assignment) Position() types.Position { return v.Pos }

type If struct {
	Condition Expression
	Then      Block
	Else      *Block
	Pos       types.Position
}

func (v If) is_Statement()            {}
func (v If) Position() types.Position { return v.Pos }

type While struct {
	Condition Expression
	Body      Block
	Pos       types.Position
}

func (v While) is_Statement()            {}
func (v While) Position() types.Position { return v.Pos }

// For runs Body with Var bound to Start, Start+1, ... up to and including End.
type For struct {
	Var   string
	Start Expression
	End   Expression
	Body  Block
	Pos   types.Position
}

func (v For) is_Statement()            {}
func (v For) Position() types.Position { return v.Pos }

type Block struct {
	Statements []Statement
	Pos        types.Position
}

func (v Block) is_Statement()            {}
func (v Block) Position() types.Position { return v.Pos }

type ExpressionStatement struct {
	Expression Expression
}

func (v ExpressionStatement) is_Statement()            {}
func (v ExpressionStatement) Position() types.Position { return v.Expression.Position() }
