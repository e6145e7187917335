package evaluator

import (
	"fmt"
	"strings"

	"github.com/loxlang/golox/lang/token"
)

// Frame is one call-stack entry, recorded at the moment a RuntimeError is
// raised so the diagnostic can show the call chain.
type Frame struct {
	Name string
	Line token.Pos
}

// RuntimeError is a dynamic (as opposed to static/resolver) failure: type
// errors, undefined variables, arity mismatches, wrong-typed operands, and
// so on. Its Error() always starts with "[line N] Error: message"; any
// stack frames are appended afterward and never change that leading line.
type RuntimeError struct {
	Message string
	Line    token.Pos
	Frames  []Frame
}

func (e *RuntimeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[line %d] Error: %s", e.Line, e.Message)
	if len(e.Frames) > 0 {
		b.WriteString("\n\nStack trace:")
		for i := len(e.Frames) - 1; i >= 0; i-- {
			f := e.Frames[i]
			fmt.Fprintf(&b, "\n  at %s [line %d]", f.Name, f.Line)
		}
	}
	return b.String()
}

func newRuntimeError(line token.Pos, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Line: line}
}
