package types

import "github.com/dolthub/swiss"

// LoxClass is a class declaration: its own methods plus an optional
// superclass to search when a method isn't found locally.
type LoxClass struct {
	Name       string
	Superclass *LoxClass
	methods    *swiss.Map[string, *LoxFunction]
}

// NewClass returns a class named name with the given method set (keyed by
// method name) and optional superclass.
func NewClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	m := swiss.NewMap[string, *LoxFunction](uint32(len(methods)))
	for k, v := range methods {
		m.Put(k, v)
	}
	return &LoxClass{Name: name, Superclass: superclass, methods: m}
}

func (c *LoxClass) String() string { return c.Name }
func (c *LoxClass) Type() string   { return "class" }

// Arity is the arity of "init" if the class (or an ancestor) defines one,
// or 0: calling a class with no initializer takes no arguments.
func (c *LoxClass) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// FindMethod looks up name on c, then walks the superclass chain. The
// returned *LoxFunction is unbound (Instance.Get, via LoxFunction.Bind,
// binds it to a specific instance); the class's own stored method is never mutated.
func (c *LoxClass) FindMethod(name string) (*LoxFunction, bool) {
	if m, ok := c.methods.Get(name); ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}
