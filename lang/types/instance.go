package types

import "github.com/dolthub/swiss"

// Instance is a runtime object: its class plus its own field bindings.
// Fields always shadow methods of the same name (spec: Get checks fields
// before walking the class's method/superclass chain).
type Instance struct {
	class  *LoxClass
	fields *swiss.Map[string, Value]
}

// NewInstance returns a fresh, field-less instance of class.
func NewInstance(class *LoxClass) *Instance {
	return &Instance{class: class, fields: swiss.NewMap[string, Value](4)}
}

func (i *Instance) String() string { return i.class.Name + " instance" }
func (i *Instance) Type() string   { return "instance" }

// Class returns the instance's class, e.g. for a "super" lookup starting
// point or diagnostics.
func (i *Instance) Class() *LoxClass { return i.class }

// Get resolves a property: instance fields first, then a method bound
// fresh to this instance. The bool result is false for "no such property",
// which the caller turns into the "Undefined property" runtime error.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields.Get(name); ok {
		return v, true
	}
	if m, ok := i.class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set writes a field directly, creating or overwriting it; Lox has no
// notion of a sealed field set.
func (i *Instance) Set(name string, value Value) {
	i.fields.Put(name, value)
}
