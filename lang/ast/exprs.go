package ast

import (
	"fmt"
	"strings"

	"github.com/loxlang/golox/lang/token"
)

type (
	// LiteralExpr is a nil, true, false, number or string literal.
	LiteralExpr struct {
		exprBase
		Value interface{} // nil, bool, float64 or string
		Line  token.Pos
	}

	// GroupingExpr is a parenthesized expression.
	GroupingExpr struct {
		exprBase
		Expression Expr
	}

	// UnaryExpr is a unary operator expression, e.g. -x or !x.
	UnaryExpr struct {
		exprBase
		Operator token.Token
		Right    Expr
	}

	// BinaryExpr is a binary operator expression, e.g. x + y.
	BinaryExpr struct {
		exprBase
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// LogicalExpr is a short-circuiting "and"/"or" expression.
	LogicalExpr struct {
		exprBase
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// VariableExpr reads the value bound to Name.
	VariableExpr struct {
		exprBase
		Name token.Token
	}

	// AssignExpr assigns Value to the variable Name.
	AssignExpr struct {
		exprBase
		Name  token.Token
		Value Expr
	}

	// CallExpr calls Callee with Arguments. Paren is the closing ')', kept
	// for error-reporting position.
	CallExpr struct {
		exprBase
		Callee    Expr
		Paren     token.Token
		Arguments []Expr
	}

	// GetExpr reads property Name off Object.
	GetExpr struct {
		exprBase
		Object Expr
		Name   token.Token
	}

	// SetExpr writes Value into property Name on Object.
	SetExpr struct {
		exprBase
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr resolves the receiver inside a method body.
	ThisExpr struct {
		exprBase
		Keyword token.Token
	}

	// SuperExpr resolves a method on the enclosing class's superclass.
	SuperExpr struct {
		exprBase
		Keyword token.Token
		Method  token.Token
	}
)

func (n *LiteralExpr) Span() token.Pos { return n.Line }
func (n *LiteralExpr) Walk(Visitor)    {}
func (n *LiteralExpr) String() string {
	if n.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", n.Value)
}

func (n *GroupingExpr) Span() token.Pos { return n.Expression.Span() }
func (n *GroupingExpr) Walk(v Visitor)  { Walk(v, n.Expression) }
func (n *GroupingExpr) String() string  { return "(group " + n.Expression.String() + ")" }

func (n *UnaryExpr) Span() token.Pos { return n.Right.Span() }
func (n *UnaryExpr) Walk(v Visitor)  { Walk(v, n.Right) }
func (n *UnaryExpr) String() string {
	return "(" + n.Operator.Lexeme + " " + n.Right.String() + ")"
}

func (n *BinaryExpr) Span() token.Pos { return n.Left.Span() }
func (n *BinaryExpr) Walk(v Visitor)  { Walk(v, n.Left); Walk(v, n.Right) }
func (n *BinaryExpr) String() string {
	return "(" + n.Operator.Lexeme + " " + n.Left.String() + " " + n.Right.String() + ")"
}

func (n *LogicalExpr) Span() token.Pos { return n.Left.Span() }
func (n *LogicalExpr) Walk(v Visitor)  { Walk(v, n.Left); Walk(v, n.Right) }
func (n *LogicalExpr) String() string {
	return "(" + n.Operator.Lexeme + " " + n.Left.String() + " " + n.Right.String() + ")"
}

func (n *VariableExpr) Span() token.Pos { return n.Name.Line }
func (n *VariableExpr) Walk(Visitor)    {}
func (n *VariableExpr) String() string  { return n.Name.Lexeme }

func (n *AssignExpr) Span() token.Pos { return n.Name.Line }
func (n *AssignExpr) Walk(v Visitor)  { Walk(v, n.Value) }
func (n *AssignExpr) String() string {
	return "(= " + n.Name.Lexeme + " " + n.Value.String() + ")"
}

func (n *CallExpr) Span() token.Pos { return n.Callee.Span() }
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Arguments {
		Walk(v, a)
	}
}
func (n *CallExpr) String() string {
	args := make([]string, len(n.Arguments))
	for i, a := range n.Arguments {
		args[i] = a.String()
	}
	return "(call " + n.Callee.String() + " " + strings.Join(args, " ") + ")"
}

func (n *GetExpr) Span() token.Pos { return n.Object.Span() }
func (n *GetExpr) Walk(v Visitor)  { Walk(v, n.Object) }
func (n *GetExpr) String() string  { return "(. " + n.Object.String() + " " + n.Name.Lexeme + ")" }

func (n *SetExpr) Span() token.Pos { return n.Object.Span() }
func (n *SetExpr) Walk(v Visitor)  { Walk(v, n.Object); Walk(v, n.Value) }
func (n *SetExpr) String() string {
	return "(set " + n.Object.String() + " " + n.Name.Lexeme + " " + n.Value.String() + ")"
}

func (n *ThisExpr) Span() token.Pos { return n.Keyword.Line }
func (n *ThisExpr) Walk(Visitor)    {}
func (n *ThisExpr) String() string  { return "this" }

func (n *SuperExpr) Span() token.Pos { return n.Keyword.Line }
func (n *SuperExpr) Walk(Visitor)    {}
func (n *SuperExpr) String() string  { return "(super " + n.Method.Lexeme + ")" }

// NewLiteral, NewGrouping, ... construct expressions with a fresh node ID.
// Constructors (rather than bare struct literals) keep exprBase
// initialization in one place.

func NewLiteral(value interface{}, line token.Pos) *LiteralExpr {
	return &LiteralExpr{exprBase: newExprBase(), Value: value, Line: line}
}
func NewGrouping(e Expr) *GroupingExpr {
	return &GroupingExpr{exprBase: newExprBase(), Expression: e}
}
func NewUnary(op token.Token, right Expr) *UnaryExpr {
	return &UnaryExpr{exprBase: newExprBase(), Operator: op, Right: right}
}
func NewBinary(left Expr, op token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{exprBase: newExprBase(), Left: left, Operator: op, Right: right}
}
func NewLogical(left Expr, op token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{exprBase: newExprBase(), Left: left, Operator: op, Right: right}
}
func NewVariable(name token.Token) *VariableExpr {
	return &VariableExpr{exprBase: newExprBase(), Name: name}
}
func NewAssign(name token.Token, value Expr) *AssignExpr {
	return &AssignExpr{exprBase: newExprBase(), Name: name, Value: value}
}
func NewCall(callee Expr, paren token.Token, args []Expr) *CallExpr {
	return &CallExpr{exprBase: newExprBase(), Callee: callee, Paren: paren, Arguments: args}
}
func NewGet(object Expr, name token.Token) *GetExpr {
	return &GetExpr{exprBase: newExprBase(), Object: object, Name: name}
}
func NewSet(object Expr, name token.Token, value Expr) *SetExpr {
	return &SetExpr{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}
func NewThis(keyword token.Token) *ThisExpr {
	return &ThisExpr{exprBase: newExprBase(), Keyword: keyword}
}
func NewSuper(keyword, method token.Token) *SuperExpr {
	return &SuperExpr{exprBase: newExprBase(), Keyword: keyword, Method: method}
}
