package ast

import (
	"fmt"
	"io"
	"strings"
)

const indentSize = 2

// Printer renders a statement list as an indented tree: an exported options
// struct with an unexported visitor doing the actual walk.
type Printer struct {
	Output io.Writer
}

// Print writes an indented dump of stmts to p.Output.
func (p *Printer) Print(stmts []Stmt) {
	pp := &printer{w: p.Output}
	for _, s := range stmts {
		Walk(pp, s)
	}
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir != VisitEnter {
		return p
	}
	fmt.Fprintf(p.w, "%s%T %s\n", strings.Repeat(" ", p.indent), n, n)
	p.indent += indentSize
	return walkExit{p}
}

// walkExit un-indents on VisitExit without re-printing the node.
type walkExit struct{ p *printer }

func (w walkExit) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit {
		w.p.indent -= indentSize
		return nil
	}
	return w.p.Visit(n, dir)
}
