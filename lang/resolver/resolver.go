// Package resolver implements the static pass that runs between parsing and
// evaluation: for every Variable, Assign, This and Super expression it
// records the lexical distance from point of use to the scope that declares
// it, so the evaluator never has to guess whether a name is local, a free
// variable reached through a closure, or global.
//
// The resolver walks a stack of scopes with declare/define and accumulates
// diagnostics the same way the scanner and parser do. It needs no
// cell/freevar conversion or predeclared-bindings list: the evaluator's
// Environment is a live, walkable chain of pointers rather than a flattened
// set of upvalue slots, so the only thing this pass produces is a distance
// integer per expression node.
package resolver

import (
	gotoken "go/token"

	"github.com/loxlang/golox/lang/ast"
	"github.com/loxlang/golox/lang/scanner"
	"github.com/loxlang/golox/lang/token"
)

// functionType tracks what kind of function body is currently being
// resolved, so Return can be validated against its context.
type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionMethod
	functionInitializer
)

// classType tracks whether the resolver is inside a class body, and whether
// that class has a superclass (which gates "super" outside Subclass).
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Result is the output of a successful (or partially successful) resolve:
// Depths maps an expression's ast.Expr.NodeID() to the number of enclosing
// scopes to walk at evaluation time. An expression with no entry resolves
// at the global scope.
type Result struct {
	Depths map[int]int
}

// resolver walks a statement list, maintaining a stack of block scopes.
// Each scope maps a declared name to whether it has finished initializing
// (the false/true distinction catches "var a = a;").
type resolver struct {
	filename        string
	scopes          []map[string]bool
	currentFunction functionType
	currentClass    classType
	depths          map[int]int
	errors          scanner.ErrorList
}

// Resolve runs the static pass over stmts. It always returns the partial
// Result accumulated so far, even when err is non-nil (a scanner.ErrorList),
// mirroring lang/parser.Parse's best-effort contract.
func Resolve(filename string, stmts []ast.Stmt) (Result, error) {
	r := &resolver{filename: filename, depths: map[int]int{}}
	r.resolveStmts(stmts)
	r.errors.Sort()
	return Result{Depths: r.depths}, r.errors.Err()
}

func (r *resolver) errorf(line token.Pos, message string) {
	r.errors.Add(gotoken.Position{Filename: r.filename, Line: int(line)}, message)
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.errorf(name.Line, "already a variable named '"+name.Lexeme+"' in this scope")
	}
	scope[name.Lexeme] = false
}

func (r *resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack outward from the innermost scope and
// records the distance to the first one defining name, leaving expr
// unresolved (global) if none does.
func (r *resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.depths[expr.NodeID()] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any scope: resolved at runtime via the global environment.
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}
