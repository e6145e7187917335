package ast

import (
	"fmt"

	"github.com/loxlang/golox/lang/token"
)

type (
	// ExpressionStmt evaluates Expression for its side effect and discards
	// the result.
	ExpressionStmt struct {
		stmtBase
		Expression Expr
	}

	// PrintStmt evaluates Expression and writes its string form followed by
	// a newline to standard output.
	PrintStmt struct {
		stmtBase
		Expression Expr
	}

	// VarStmt declares Name in the current scope, bound to Initializer
	// (a LiteralExpr(nil) when the source omitted "= expr").
	VarStmt struct {
		stmtBase
		Name        token.Token
		Initializer Expr
	}

	// BlockStmt introduces a new lexical scope around Statements.
	BlockStmt struct {
		stmtBase
		Statements []Stmt
	}

	// IfStmt branches on Condition's truthiness. Else is nil when absent.
	IfStmt struct {
		stmtBase
		Condition Expr
		Then      Stmt
		Else      Stmt
	}

	// WhileStmt re-evaluates Condition before each execution of Body.
	WhileStmt struct {
		stmtBase
		Condition Expr
		Body      Stmt
	}

	// FunctionStmt declares Name as a function (or, nested inside a
	// ClassStmt, a method) taking Params and executing Body.
	FunctionStmt struct {
		stmtBase
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// ClassStmt declares Name as a class, optionally inheriting from
	// Superclass (nil when absent), with Methods as FunctionStmt bodies.
	ClassStmt struct {
		stmtBase
		Name       token.Token
		Superclass *VariableExpr // nil if no "< Superclass" clause
		Methods    []*FunctionStmt
	}

	// ReturnStmt unwinds the enclosing call with Value, which is nil when
	// the source wrote a bare "return;". This stays distinct from an
	// explicit "return nil;" because the resolver must tell the two apart:
	// only the latter (or any other explicit value) is what an initializer
	// rejects.
	ReturnStmt struct {
		stmtBase
		Keyword token.Token
		Value   Expr
	}
)

func (n *ExpressionStmt) Span() token.Pos { return n.Expression.Span() }
func (n *ExpressionStmt) Walk(v Visitor)  { Walk(v, n.Expression) }
func (n *ExpressionStmt) String() string  { return n.Expression.String() + ";" }

func (n *PrintStmt) Span() token.Pos { return n.Expression.Span() }
func (n *PrintStmt) Walk(v Visitor)  { Walk(v, n.Expression) }
func (n *PrintStmt) String() string  { return "(print " + n.Expression.String() + ")" }

func (n *VarStmt) Span() token.Pos { return n.Name.Line }
func (n *VarStmt) Walk(v Visitor)  { Walk(v, n.Initializer) }
func (n *VarStmt) String() string {
	return "(var " + n.Name.Lexeme + " " + n.Initializer.String() + ")"
}

func (n *BlockStmt) Span() token.Pos {
	if len(n.Statements) == 0 {
		return token.NoPos
	}
	return n.Statements[0].Span()
}
func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Statements {
		Walk(v, s)
	}
}
func (n *BlockStmt) String() string { return "(block " + joinStrings(n.Statements) + ")" }

func (n *IfStmt) Span() token.Pos { return n.Condition.Span() }
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Condition)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *IfStmt) String() string {
	if n.Else == nil {
		return fmt.Sprintf("(if %s %s)", n.Condition, n.Then)
	}
	return fmt.Sprintf("(if-else %s %s %s)", n.Condition, n.Then, n.Else)
}

func (n *WhileStmt) Span() token.Pos { return n.Condition.Span() }
func (n *WhileStmt) Walk(v Visitor)  { Walk(v, n.Condition); Walk(v, n.Body) }
func (n *WhileStmt) String() string  { return fmt.Sprintf("(while %s %s)", n.Condition, n.Body) }

func (n *FunctionStmt) Span() token.Pos { return n.Name.Line }
func (n *FunctionStmt) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}
func (n *FunctionStmt) String() string {
	return "(fun " + n.Name.Lexeme + " " + joinStrings(n.Body) + ")"
}

func (n *ClassStmt) Span() token.Pos { return n.Name.Line }
func (n *ClassStmt) Walk(v Visitor) {
	if n.Superclass != nil {
		Walk(v, n.Superclass)
	}
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
func (n *ClassStmt) String() string { return "(class " + n.Name.Lexeme + ")" }

func (n *ReturnStmt) Span() token.Pos { return n.Keyword.Line }
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *ReturnStmt) String() string {
	if n.Value == nil {
		return "(return)"
	}
	return "(return " + n.Value.String() + ")"
}
