package types

import (
	"fmt"

	"github.com/loxlang/golox/lang/ast"
)

// NativeFunction wraps a Go function as a callable Lox value (e.g. the
// global clock()). Equality between NativeFunction values is by name,
// since the underlying Go func value is never itself comparable in a
// meaningful way to a Lox program.
type NativeFunction struct {
	name  string
	arity int
	fn    func(args []Value) (Value, error)
}

// NewNativeFunction returns a NativeFunction bound to fn.
func NewNativeFunction(name string, arity int, fn func(args []Value) (Value, error)) NativeFunction {
	return NativeFunction{name: name, arity: arity, fn: fn}
}

func (n NativeFunction) String() string { return "<native fn " + n.name + ">" }
func (n NativeFunction) Type() string   { return "native function" }
func (n NativeFunction) Arity() int     { return n.arity }

// Invoke runs the wrapped Go function. Named Invoke rather than Call so it
// doesn't collide with the evaluator's own call dispatch vocabulary: a
// NativeFunction never goes through the environment/Return machinery a
// LoxFunction call does, it just runs and returns.
func (n NativeFunction) Invoke(args []Value) (Value, error) { return n.fn(args) }

// LoxFunction is a user-defined function or method: its AST, the
// environment it closed over at definition time, and whether it is a class
// initializer (whose calls always yield the bound instance regardless of
// any return value).
type LoxFunction struct {
	Declaration   *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

// NewLoxFunction returns a *LoxFunction closing over closure.
func NewLoxFunction(decl *ast.FunctionStmt, closure *Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{Declaration: decl, Closure: closure, IsInitializer: isInitializer}
}

func (f *LoxFunction) String() string { return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme) }
func (f *LoxFunction) Type() string   { return "function" }
func (f *LoxFunction) Arity() int     { return len(f.Declaration.Params) }

// Bind returns a new *LoxFunction whose closure is a fresh environment,
// enclosing f's own closure, defining "this" as instance. Each property
// access on a method produces a fresh bound function, so two accesses are
// non-identical values even though calling either is observationally
// equivalent.
func (f *LoxFunction) Bind(instance *Instance) *LoxFunction {
	env := NewChildEnvironment(f.Closure)
	env.Define("this", instance)
	return NewLoxFunction(f.Declaration, env, f.IsInitializer)
}
