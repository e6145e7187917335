package evaluator

import (
	"github.com/loxlang/golox/lang/ast"
	"github.com/loxlang/golox/lang/token"
	"github.com/loxlang/golox/lang/types"
)

func (in *Interpreter) evalCall(e *ast.CallExpr) (types.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]types.Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case types.NativeFunction:
		if len(args) != fn.Arity() {
			return nil, newRuntimeError(e.Paren.Line, "expected %d arguments but got %d", fn.Arity(), len(args))
		}
		return fn.Invoke(args)
	case *types.LoxFunction:
		if len(args) != fn.Arity() {
			return nil, newRuntimeError(e.Paren.Line, "expected %d arguments but got %d", fn.Arity(), len(args))
		}
		return in.callFunction(fn, args, e.Paren.Line)
	case *types.LoxClass:
		if len(args) != fn.Arity() {
			return nil, newRuntimeError(e.Paren.Line, "expected %d arguments but got %d", fn.Arity(), len(args))
		}
		return in.instantiate(fn, args, e.Paren.Line)
	default:
		return nil, newRuntimeError(e.Paren.Line, "can only call functions and classes")
	}
}

// callFunction runs fn's body in a fresh environment enclosing its captured
// closure, with parameters bound to args. A Return inside the body unwinds
// only this call; an initializer call always yields "this" regardless of
// what (if anything) it returns.
func (in *Interpreter) callFunction(fn *types.LoxFunction, args []types.Value, callLine token.Pos) (types.Value, error) {
	in.callStack = append(in.callStack, Frame{Name: fn.Declaration.Name.Lexeme, Line: callLine})
	defer func() { in.callStack = in.callStack[:len(in.callStack)-1] }()

	env := types.NewChildEnvironment(fn.Closure)
	for i, param := range fn.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	res, err := in.executeBlock(fn.Declaration.Body, env)
	if err != nil {
		if re, ok := err.(*RuntimeError); ok && re.Frames == nil {
			re.Frames = append(re.Frames, in.callStack...)
		}
		return nil, err
	}

	if fn.IsInitializer {
		this, _ := fn.Closure.Get("this")
		return this, nil
	}
	if res.kind == resultReturning {
		return res.value, nil
	}
	return types.Nil{}, nil
}

// instantiate implements calling a class as a constructor: a fresh
// Instance, with "init" (if any) bound and invoked before the instance is
// handed back. The instance must already exist when init runs so that
// "this" inside init refers to it.
func (in *Interpreter) instantiate(class *types.LoxClass, args []types.Value, callLine token.Pos) (types.Value, error) {
	instance := types.NewInstance(class)
	if init, ok := class.FindMethod("init"); ok {
		if _, err := in.callFunction(init.Bind(instance), args, callLine); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
