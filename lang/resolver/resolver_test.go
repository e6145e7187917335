package resolver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/lang/ast"
	"github.com/loxlang/golox/lang/parser"
	"github.com/loxlang/golox/lang/scanner"
)

func parseOK(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	toks, err := scanner.New("", []byte(src)).ScanTokens()
	require.NoError(t, err)
	stmts, err := parser.New("", toks).Parse()
	require.NoError(t, err)
	return stmts
}

func TestResolveReadingLocalInOwnInitializerIsAnError(t *testing.T) {
	stmts := parseOK(t, "{ var a = a; }")
	_, err := Resolve("", stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "own initializer")
}

func TestResolveReturnAtTopLevelIsAnError(t *testing.T) {
	stmts := parseOK(t, "return 1;")
	_, err := Resolve("", stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "top-level code")
}

func TestResolveClassInheritingFromItselfIsAnError(t *testing.T) {
	stmts := parseOK(t, "class A < A {}")
	_, err := Resolve("", stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "inherit from itself")
}

func TestResolveThisOutsideClassIsAnError(t *testing.T) {
	stmts := parseOK(t, "print this;")
	_, err := Resolve("", stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "'this' outside")
}

func TestResolveSuperWithNoSuperclassIsAnError(t *testing.T) {
	stmts := parseOK(t, "class B { m() { super.m(); } }")
	_, err := Resolve("", stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no superclass")
}

func TestResolveReturningValueFromInitializerIsAnError(t *testing.T) {
	stmts := parseOK(t, "class A { init() { return 1; } }")
	_, err := Resolve("", stmts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "from an initializer")
}

func TestResolveBareReturnFromInitializerIsAllowed(t *testing.T) {
	stmts := parseOK(t, "class A { init() { return; } }")
	_, err := Resolve("", stmts)
	require.NoError(t, err)
}

func TestResolveClosureReferenceToGlobalHasNoDepth(t *testing.T) {
	stmts := parseOK(t, `
var a = "global";
fun show() { print a; }
show();
{ var a = "block"; show(); }
`)
	result, err := Resolve("", stmts)
	require.NoError(t, err)

	// the "print a" inside show() always resolves to the global "a": the
	// function body scope enclosing its own locals doesn't hold "a", so it
	// should have NO recorded depth at all. show's body never sees the
	// block-local "a" since it isn't a free variable of show, it's a
	// second, unrelated global-shadowing declaration.
	block := stmts[3].(*ast.BlockStmt)
	require.IsType(t, &ast.VarStmt{}, block.Statements[0])

	showFn := stmts[1].(*ast.FunctionStmt)
	printStmt := showFn.Body[0].(*ast.PrintStmt)
	varExpr := printStmt.Expression.(*ast.VariableExpr)
	_, recorded := result.Depths[varExpr.NodeID()]
	require.False(t, recorded, "show's reference to global 'a' should have no recorded depth")
}

func TestResolveLocalVariableDistance(t *testing.T) {
	stmts := parseOK(t, `
{
	var a = 1;
	{
		print a;
	}
}
`)
	result, err := Resolve("", stmts)
	require.NoError(t, err)

	outer := stmts[0].(*ast.BlockStmt)
	inner := outer.Statements[1].(*ast.BlockStmt)
	printStmt := inner.Statements[0].(*ast.PrintStmt)
	varExpr := printStmt.Expression.(*ast.VariableExpr)

	depth, ok := result.Depths[varExpr.NodeID()]
	require.True(t, ok)
	require.Equal(t, 1, depth)
}

func TestResolveMultipleErrorsAccumulate(t *testing.T) {
	stmts := parseOK(t, "return 1; this;")
	_, err := Resolve("", stmts)
	require.Error(t, err)
}
