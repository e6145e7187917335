package evaluator

import (
	"fmt"

	"github.com/loxlang/golox/lang/ast"
	"github.com/loxlang/golox/lang/token"
	"github.com/loxlang/golox/lang/types"
)

func (in *Interpreter) evaluate(expr ast.Expr) (types.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil
	case *ast.GroupingExpr:
		return in.evaluate(e.Expression)
	case *ast.UnaryExpr:
		return in.evalUnary(e)
	case *ast.BinaryExpr:
		return in.evalBinary(e)
	case *ast.LogicalExpr:
		return in.evalLogical(e)
	case *ast.VariableExpr:
		return in.lookupVariable(e.Name, e)
	case *ast.AssignExpr:
		return in.evalAssign(e)
	case *ast.CallExpr:
		return in.evalCall(e)
	case *ast.GetExpr:
		return in.evalGet(e)
	case *ast.SetExpr:
		return in.evalSet(e)
	case *ast.ThisExpr:
		return in.lookupVariable(e.Keyword, e)
	case *ast.SuperExpr:
		return in.evalSuper(e)
	default:
		panic(fmt.Sprintf("evaluator: unreachable expr %T", expr))
	}
}

func literalValue(v interface{}) types.Value {
	switch x := v.(type) {
	case nil:
		return types.Nil{}
	case bool:
		return types.Bool(x)
	case float64:
		return types.Number(x)
	case string:
		return types.String(x)
	default:
		panic(fmt.Sprintf("evaluator: unreachable literal payload %T", v))
	}
}

// lookupVariable resolves name through expr's recorded depth (a Variable,
// Assign, This or Super use), falling back to the global scope when the
// resolver left it unrecorded: those are the only two cases that can occur.
func (in *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (types.Value, error) {
	if depth, ok := in.depths[expr.NodeID()]; ok {
		if v, found := in.environment.GetAt(depth, name.Lexeme); found {
			return v, nil
		}
	} else if v, found := in.environment.GetGlobal(name.Lexeme); found {
		return v, nil
	}
	return nil, newRuntimeError(name.Line, "undefined variable '%s'", name.Lexeme)
}

func (in *Interpreter) evalAssign(e *ast.AssignExpr) (types.Value, error) {
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := in.depths[e.NodeID()]; ok {
		in.environment.AssignAt(depth, e.Name.Lexeme, value)
		return value, nil
	}
	if in.environment.AssignGlobal(e.Name.Lexeme, value) {
		return value, nil
	}
	return nil, newRuntimeError(e.Name.Line, "undefined variable '%s'", e.Name.Lexeme)
}

func (in *Interpreter) evalLogical(e *ast.LogicalExpr) (types.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	truthy := types.Truthy(left)
	if e.Operator.Kind == token.OR {
		if truthy {
			return left, nil
		}
	} else if !truthy {
		return left, nil
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (types.Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.MINUS:
		n, ok := right.(types.Number)
		if !ok {
			return nil, newRuntimeError(e.Operator.Line, "operand must be a number")
		}
		return -n, nil
	case token.BANG:
		return types.Bool(!types.Truthy(right)), nil
	default:
		panic(fmt.Sprintf("evaluator: unreachable unary operator %v", e.Operator.Kind))
	}
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (types.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.EQUAL_EQUAL:
		return types.Bool(types.Equal(left, right)), nil
	case token.BANG_EQUAL:
		return types.Bool(!types.Equal(left, right)), nil
	case token.PLUS:
		return evalPlus(e.Operator.Line, left, right)
	}

	ln, lok := left.(types.Number)
	rn, rok := right.(types.Number)
	if !lok || !rok {
		return nil, newRuntimeError(e.Operator.Line, "operands must be numbers")
	}
	switch e.Operator.Kind {
	case token.MINUS:
		return ln - rn, nil
	case token.STAR:
		return ln * rn, nil
	case token.SLASH:
		return ln / rn, nil
	case token.GREATER:
		return types.Bool(ln > rn), nil
	case token.GREATER_EQUAL:
		return types.Bool(ln >= rn), nil
	case token.LESS:
		return types.Bool(ln < rn), nil
	case token.LESS_EQUAL:
		return types.Bool(ln <= rn), nil
	default:
		panic(fmt.Sprintf("evaluator: unreachable binary operator %v", e.Operator.Kind))
	}
}

// evalPlus implements "+"'s overload: Number+Number arithmetic,
// String+String concatenation, any other combination an error.
func evalPlus(line token.Pos, left, right types.Value) (types.Value, error) {
	if ln, ok := left.(types.Number); ok {
		if rn, ok := right.(types.Number); ok {
			return ln + rn, nil
		}
	}
	if ls, ok := left.(types.String); ok {
		if rs, ok := right.(types.String); ok {
			return ls + rs, nil
		}
	}
	return nil, newRuntimeError(line, "operands must be two numbers or two strings")
}

func (in *Interpreter) evalGet(e *ast.GetExpr) (types.Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*types.Instance)
	if !ok {
		return nil, newRuntimeError(e.Name.Line, "only instances have properties")
	}
	v, found := instance.Get(e.Name.Lexeme)
	if !found {
		return nil, newRuntimeError(e.Name.Line, "undefined property '%s'", e.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalSet(e *ast.SetExpr) (types.Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*types.Instance)
	if !ok {
		return nil, newRuntimeError(e.Name.Line, "only instances have fields")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}

func (in *Interpreter) evalSuper(e *ast.SuperExpr) (types.Value, error) {
	depth := in.depths[e.NodeID()]
	superVal, _ := in.environment.GetAt(depth, "super")
	superclass := superVal.(*types.LoxClass)

	thisVal, _ := in.environment.GetAt(depth-1, "this")
	instance := thisVal.(*types.Instance)

	method, found := superclass.FindMethod(e.Method.Lexeme)
	if !found {
		return nil, newRuntimeError(e.Method.Line, "undefined property '%s'", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
