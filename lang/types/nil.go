package types

// Nil is Lox's "nil" value. There is exactly one: the zero value of Nil.
type Nil struct{}

func (Nil) String() string { return "nil" }
func (Nil) Type() string   { return "nil" }
