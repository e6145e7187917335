package resolver

import (
	"fmt"

	"github.com/loxlang/golox/lang/ast"
)

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		// no sub-expressions, nothing to resolve.
	case *ast.GroupingExpr:
		r.resolveExpr(e.Expression)
	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)
	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.errorf(e.Name.Line, "can't read local variable '"+e.Name.Lexeme+"' in its own initializer")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.GetExpr:
		r.resolveExpr(e.Object)
	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.ThisExpr:
		if r.currentClass == classNone {
			r.errorf(e.Keyword.Line, "can't use 'this' outside of a class")
			return
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.SuperExpr:
		switch r.currentClass {
		case classNone:
			r.errorf(e.Keyword.Line, "can't use 'super' outside of a class")
			return
		case classClass:
			r.errorf(e.Keyword.Line, "can't use 'super' in a class with no superclass")
			return
		}
		r.resolveLocal(e, e.Keyword)
	default:
		panic(fmt.Sprintf("resolver: unreachable expr %T", expr))
	}
}
