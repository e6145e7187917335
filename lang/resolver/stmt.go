package resolver

import (
	"fmt"

	"github.com/loxlang/golox/lang/ast"
)

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.VarStmt:
		r.declare(s.Name)
		r.resolveExpr(s.Initializer)
		r.define(s.Name)
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)
	case *ast.ClassStmt:
		r.resolveClass(s)
	case *ast.ReturnStmt:
		r.resolveReturn(s)
	default:
		panic(fmt.Sprintf("resolver: unreachable stmt %T", stmt))
	}
}

func (r *resolver) resolveReturn(s *ast.ReturnStmt) {
	if r.currentFunction == functionNone {
		r.errorf(s.Keyword.Line, "can't return from top-level code")
	}
	if s.Value != nil {
		if r.currentFunction == functionInitializer {
			r.errorf(s.Keyword.Line, "can't return a value from an initializer")
		}
		r.resolveExpr(s.Value)
	}
}

// resolveFunction resolves a function or method body in its own scope, with
// parameters declared+defined directly (they are always initialized), under
// the given functionType; the previous current function is restored after.
func (r *resolver) resolveFunction(fn *ast.FunctionStmt, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.errorf(s.Superclass.Name.Line, "a class can't inherit from itself")
		}
		r.resolveExpr(s.Superclass)
		r.currentClass = classSubclass

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := functionMethod
		if method.Name.Lexeme == "init" {
			kind = functionInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope() // this

	if s.Superclass != nil {
		r.endScope() // super
	}

	r.currentClass = enclosingClass
}
