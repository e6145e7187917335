package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/lang/ast"
	"github.com/loxlang/golox/lang/scanner"
	"github.com/loxlang/golox/lang/token"
)

func parse(t *testing.T, src string) ([]ast.Stmt, error) {
	t.Helper()
	toks, err := scanner.New("", []byte(src)).ScanTokens()
	require.NoError(t, err)
	return New("", toks).Parse()
}

func TestParseExpressionPrecedence(t *testing.T) {
	stmts, err := parse(t, "1 + 2 * 3 == 4 - -5;")
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	expr := stmts[0].(*ast.ExpressionStmt).Expression
	require.Equal(t, "(== (+ 1 (* 2 3)) (- 4 (- 5)))", expr.String())
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	stmts, err := parse(t, "var a = 1; var b = 2; a = b = 3;")
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assign := stmts[2].(*ast.ExpressionStmt).Expression.(*ast.AssignExpr)
	require.Equal(t, "a", assign.Name.Lexeme)
	inner, ok := assign.Value.(*ast.AssignExpr)
	require.True(t, ok, "rhs of a = b = 3 should itself be an assignment")
	require.Equal(t, "b", inner.Name.Lexeme)
}

func TestParseInvalidAssignmentTargetReportsErrorButContinues(t *testing.T) {
	stmts, err := parse(t, "1 + 2 = 3; print 1;")
	require.Error(t, err)
	// the malformed statement is synchronized away; parsing still recovers
	// the trailing print statement.
	require.Len(t, stmts, 1)
	_, ok := stmts[0].(*ast.PrintStmt)
	require.True(t, ok)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, err := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok, "for with an initializer desugars to an outer block")
	require.Len(t, outer.Statements, 2)
	_, ok = outer.Statements[0].(*ast.VarStmt)
	require.True(t, ok)

	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)
	require.Equal(t, "(< i 3)", whileStmt.Condition.String())

	body, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok, "the increment is appended to the loop body as a block")
	require.Len(t, body.Statements, 2)
	_, ok = body.Statements[0].(*ast.PrintStmt)
	require.True(t, ok)
	_, ok = body.Statements[1].(*ast.ExpressionStmt)
	require.True(t, ok)
}

func TestParseForWithoutClausesDefaultsConditionToTrue(t *testing.T) {
	stmts, err := parse(t, "for (;;) print 1;")
	require.NoError(t, err)
	whileStmt := stmts[0].(*ast.WhileStmt)
	require.Equal(t, "true", whileStmt.Condition.String())
}

func TestParseClassWithSuperclassAndMethods(t *testing.T) {
	stmts, err := parse(t, `class Bagel < Bread {
		init(a) { this.a = a; }
		taste() { print this.a; }
	}`)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	class := stmts[0].(*ast.ClassStmt)
	require.Equal(t, "Bagel", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	require.Equal(t, "Bread", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 2)
	require.Equal(t, "init", class.Methods[0].Name.Lexeme)
	require.Equal(t, []string{"a"}, lexemes(class.Methods[0].Params))
}

func TestParseCallAndGetChain(t *testing.T) {
	stmts, err := parse(t, "a.b(1, 2).c;")
	require.NoError(t, err)
	expr := stmts[0].(*ast.ExpressionStmt).Expression
	get, ok := expr.(*ast.GetExpr)
	require.True(t, ok)
	require.Equal(t, "c", get.Name.Lexeme)
	call, ok := get.Object.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Arguments, 2)
}

func TestParseTooManyArgumentsReportsError(t *testing.T) {
	src := "fn("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"
	_, err := parse(t, src)
	require.Error(t, err)
}

func TestParseMultipleSyntaxErrorsAreAllReported(t *testing.T) {
	_, err := parse(t, "var ; var ; var ;")
	require.Error(t, err)
	list, ok := err.(scanner.ErrorList)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(list), 3)
}

func lexemes(toks []token.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Lexeme
	}
	return out
}
