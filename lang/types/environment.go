package types

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Environment is one lexical scope: a name-to-value map plus a link to the
// enclosing scope. Environments are always referred to by pointer and never
// copied, so closures sharing an enclosing scope observe each other's
// mutations for free, with no manual reference counting.
//
// Bindings live in a swiss.Map rather than a built-in Go map for stable,
// predictable iteration and lookup cost as scopes grow.
type Environment struct {
	enclosing *Environment
	values    *swiss.Map[string, Value]
}

// NewEnvironment returns a top-level (global) environment.
func NewEnvironment() *Environment {
	return &Environment{values: swiss.NewMap[string, Value](8)}
}

// NewChildEnvironment returns a new scope enclosed by e.
func NewChildEnvironment(e *Environment) *Environment {
	return &Environment{enclosing: e, values: swiss.NewMap[string, Value](8)}
}

// Define binds name to value in this environment, shadowing (rather than
// erroring on) a binding of the same name in an enclosing scope. The
// evaluator relies on this permissive rule when binding call parameters.
func (e *Environment) Define(name string, value Value) {
	e.values.Put(name, value)
}

// Get looks up name in this environment only (no enclosing-scope walk);
// used after the resolver has already computed an exact distance to walk.
func (e *Environment) Get(name string) (Value, bool) {
	return e.values.Get(name)
}

// Assign writes value into the first environment (outward from e) that
// already defines name, returning false if none does.
func (e *Environment) Assign(name string, value Value) bool {
	if _, ok := e.values.Get(name); ok {
		e.values.Put(name, value)
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return false
}

// GetAt reads name from the environment reached by walking distance
// enclosing links outward from e, per the resolver's recorded depth.
func (e *Environment) GetAt(distance int, name string) (Value, bool) {
	return e.ancestor(distance).Get(name)
}

// AssignAt writes value into the environment reached by walking distance
// enclosing links outward from e.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.ancestor(distance).Define(name, value)
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.enclosing == nil {
			panic(fmt.Sprintf("environment: ancestor distance %d exceeds scope chain", distance))
		}
		env = env.enclosing
	}
	return env
}

// GetGlobal looks up name at the root of the environment chain, used for
// any Variable/Assign the resolver left unrecorded (no local binding).
func (e *Environment) GetGlobal(name string) (Value, bool) {
	root := e
	for root.enclosing != nil {
		root = root.enclosing
	}
	return root.Get(name)
}

// AssignGlobal writes value at the root of the environment chain.
func (e *Environment) AssignGlobal(name string, value Value) bool {
	root := e
	for root.enclosing != nil {
		root = root.enclosing
	}
	return root.Assign(name, value)
}
