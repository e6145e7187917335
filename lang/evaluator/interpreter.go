// Package evaluator walks a resolved statement list directly, producing
// printed output and mutating environment state as it goes, with no
// intermediate bytecode or compile stage.
package evaluator

import (
	"fmt"
	"io"

	"github.com/loxlang/golox/lang/ast"
	"github.com/loxlang/golox/lang/resolver"
	"github.com/loxlang/golox/lang/token"
	"github.com/loxlang/golox/lang/types"
)

// resultKind distinguishes ordinary statement completion from an in-flight
// Return. This is a dedicated sum type rather than an error, since a Return
// unwinding to its enclosing call is control flow, not a failure, and must
// never be observable at an error boundary.
type resultKind int

const (
	resultNormal resultKind = iota
	resultReturning
)

// execResult is what executing a single statement yields: either normal
// completion, or a Return unwinding with a value, carried all the way up
// to the enclosing function call and nowhere else.
type execResult struct {
	kind  resultKind
	value types.Value
}

var normalResult = execResult{kind: resultNormal}

// Interpreter walks a resolved program. Construct with New, then call
// Interpret once per top-level parse (a single REPL line's statements, or
// a whole file).
type Interpreter struct {
	globals     *types.Environment
	environment *types.Environment
	depths      map[int]int
	callStack   []Frame
	stdout      io.Writer
}

// New returns an Interpreter whose global scope is prepopulated with the
// built-in clock() and whose stdout (print's destination) is w.
func New(w io.Writer, clock func() types.Value) *Interpreter {
	globals := types.NewEnvironment()
	globals.Define("clock", types.NewNativeFunction("clock", 0, func(args []types.Value) (types.Value, error) {
		return clock(), nil
	}))
	return &Interpreter{globals: globals, environment: globals, stdout: w}
}

// Interpret runs stmts (the output of a successful resolver.Resolve pass)
// against result's depth map, returning the first RuntimeError encountered.
// Execution stops there; a runtime error aborts the rest of the current
// statement list (a REPL line or the remainder of a file).
func (in *Interpreter) Interpret(stmts []ast.Stmt, result resolver.Result) error {
	in.depths = result.Depths
	for _, stmt := range stmts {
		if _, err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) (execResult, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return normalResult, err
	case *ast.PrintStmt:
		v, err := in.evaluate(s.Expression)
		if err != nil {
			return normalResult, err
		}
		fmt.Fprintln(in.stdout, v.String())
		return normalResult, nil
	case *ast.VarStmt:
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			return normalResult, err
		}
		in.environment.Define(s.Name.Lexeme, v)
		return normalResult, nil
	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, types.NewChildEnvironment(in.environment))
	case *ast.IfStmt:
		return in.executeIf(s)
	case *ast.WhileStmt:
		return in.executeWhile(s)
	case *ast.FunctionStmt:
		fn := types.NewLoxFunction(s, in.environment, false)
		in.environment.Define(s.Name.Lexeme, fn)
		return normalResult, nil
	case *ast.ClassStmt:
		return in.executeClass(s)
	case *ast.ReturnStmt:
		return in.executeReturn(s)
	default:
		panic(fmt.Sprintf("evaluator: unreachable stmt %T", stmt))
	}
}

func (in *Interpreter) executeIf(s *ast.IfStmt) (execResult, error) {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return normalResult, err
	}
	if types.Truthy(cond) {
		return in.execute(s.Then)
	}
	if s.Else != nil {
		return in.execute(s.Else)
	}
	return normalResult, nil
}

func (in *Interpreter) executeWhile(s *ast.WhileStmt) (execResult, error) {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return normalResult, err
		}
		if !types.Truthy(cond) {
			return normalResult, nil
		}
		res, err := in.execute(s.Body)
		if err != nil {
			return normalResult, err
		}
		if res.kind == resultReturning {
			return res, nil
		}
	}
}

func (in *Interpreter) executeReturn(s *ast.ReturnStmt) (execResult, error) {
	var value types.Value = types.Nil{}
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return normalResult, err
		}
		value = v
	}
	return execResult{kind: resultReturning, value: value}, nil
}

// executeBlock runs stmts in env, always restoring the interpreter's
// previous environment on the way out, including when a statement returns
// an error or a Return result, so a failed or returning block never leaks
// its scope into the caller.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *types.Environment) (execResult, error) {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range stmts {
		res, err := in.execute(stmt)
		if err != nil {
			return normalResult, err
		}
		if res.kind == resultReturning {
			return res, nil
		}
	}
	return normalResult, nil
}
