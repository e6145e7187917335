// Package types implements the runtime value model shared by the evaluator:
// a small tagged union (Nil, Bool, Number, String, NativeFunction,
// LoxFunction, LoxClass, Instance), the Environment that binds names to
// values, and the equality/truthiness rules the evaluator relies on.
//
// One file per value kind (value.go/bool.go/number.go/string.go/...), each
// a thin wrapper implementing Value. Lox's value set is small and fixed and
// this interpreter is single-threaded, so Value stays to String/Type; the
// evaluator does its own type switches for call dispatch and operator
// semantics rather than routing through capability interfaces on Value.
package types

// Value is any value a Lox program can hold or pass around.
type Value interface {
	String() string
	Type() string
}

// Callable is implemented by the three values a call expression may target:
// NativeFunction, *LoxFunction, *LoxClass. Arity is checked by the
// evaluator before each call; it never varies across calls to the same value.
// Dispatching the actual call body (binding parameters, running the
// function's statements, catching a Return) is the evaluator's job, not
// this package's; NativeFunction is the only one invoked directly here,
// since it needs no access to evaluator internals.
type Callable interface {
	Value
	Arity() int
}

// Truthy implements Lox's truthiness rule: Nil and Bool(false) are falsy;
// everything else, including Number(0) and String(""), is truthy.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(x)
	default:
		return true
	}
}

// Equal implements Lox's equality rule: same-typed primitives compare by
// value; cross-type comparisons are always unequal; Nil == Nil; functions,
// classes and instances compare by identity (Go pointer/value identity for
// the tagged union members used here).
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case *Instance:
		y, ok := b.(*Instance)
		return ok && x == y
	case *LoxClass:
		y, ok := b.(*LoxClass)
		return ok && x == y
	case *LoxFunction:
		y, ok := b.(*LoxFunction)
		return ok && x == y
	case NativeFunction:
		y, ok := b.(NativeFunction)
		return ok && x.name == y.name
	default:
		return false
	}
}
