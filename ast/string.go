package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pontaoski/tawascript/runtime"
)

// String renders a node as source text. Binary and unary operations are fully
// parenthesised so the rendering shows how the parser grouped them.
func String(n Node) string {
	switch v := n.(type) {
	case Literal:
		if s, ok := v.Value.(runtime.Str); ok {
			return "'" + strings.ReplaceAll(string(s), "'", "''") + "'"
		}
		return v.Value.String()
	case Identifier:
		return v.Name
	case BinaryOp:
		return fmt.Sprintf("(%s %s %s)", String(v.Left), v.Op, String(v.Right))
	case UnaryOp:
		return fmt.Sprintf("(%s%s)", v.Op, String(v.Operand))
	case Call:
		return v.Name + "(" + joinExpressions(v.Arguments) + ")"
	case Index:
		return fmt.Sprintf("%s[%s]", String(v.Collection), String(v.Index))
	case ArrayLiteral:
		return "[" + joinExpressions(v.Elements) + "]"
	case TupleLiteral:
		if len(v.Elements) == 1 {
			return "(" + String(v.Elements[0]) + ",)"
		}
		return "(" + joinExpressions(v.Elements) + ")"
	case Assignment:
		return v.Name + " = " + String(v.Value)
	case If:
		s := "IF " + String(v.Condition) + " " + String(v.Then)
		if v.Else != nil {
			s += " ELSE " + String(*v.Else)
		}
		return s
	case While:
		return "WHILE " + String(v.Condition) + " " + String(v.Body)
	case For:
		return fmt.Sprintf("FOR %s FROM %s TO %s %s", v.Var, String(v.Start), String(v.End), String(v.Body))
	case Block:
		if len(v.Statements) == 0 {
			return "{ }"
		}
		parts := make([]string, len(v.Statements))
		for i, stmt := range v.Statements {
			parts[i] = String(stmt)
		}
		return "{ " + strings.Join(parts, "; ") + " }"
	case ExpressionStatement:
		return String(v.Expression)
	}

	panic("unhandled node " + strconv.Quote(fmt.Sprintf("%T", n)))
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = String(e)
	}
	return strings.Join(parts, ", ")
}
