// Package ast defines the expression and statement node types produced by
// the parser, walked by the resolver, and evaluated by the evaluator.
package ast

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/loxlang/golox/lang/token"
)

// Node is any node in the tree: every expression and every statement.
type Node interface {
	// Span reports the source line the node starts on.
	Span() token.Pos

	// Walk visits the node's direct children, in evaluation order.
	Walk(v Visitor)

	fmt.Stringer
}

// Expr is an expression node. Every Expr has a process-unique ID assigned at
// construction time, used by the resolver as the lookup key for its
// scope-depth map: a plain allocation-order integer, cheaper and simpler
// than hashing the node's structure.
type Expr interface {
	Node
	NodeID() int
	expr()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmt()
}

// nextID hands out process-unique expression identities.
var nextID int64

func newID() int {
	return int(atomic.AddInt64(&nextID, 1))
}

// exprBase is embedded by every Expr implementation to supply NodeID().
type exprBase struct {
	id int
}

func newExprBase() exprBase { return exprBase{id: newID()} }

func (b exprBase) NodeID() int { return b.id }

func (exprBase) expr() {}

type stmtBase struct{}

func (stmtBase) stmt() {}

func joinStrings(nodes []Stmt) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, "\n")
}
