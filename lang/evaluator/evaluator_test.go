package evaluator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/lang/parser"
	"github.com/loxlang/golox/lang/resolver"
	"github.com/loxlang/golox/lang/scanner"
	"github.com/loxlang/golox/lang/types"
)

func run(t *testing.T, src string) string {
	t.Helper()
	toks, err := scanner.New("", []byte(src)).ScanTokens()
	require.NoError(t, err)
	stmts, err := parser.New("", toks).Parse()
	require.NoError(t, err)
	result, err := resolver.Resolve("", stmts)
	require.NoError(t, err)

	var out bytes.Buffer
	in := New(&out, func() types.Value { return types.Number(0) })
	require.NoError(t, in.Interpret(stmts, result))
	return out.String()
}

func TestEvalArithmeticAndPrint(t *testing.T) {
	require.Equal(t, "7\n", run(t, "print 1 + 2 * 3;"))
}

func TestEvalClosureCapturesMutableBinding(t *testing.T) {
	src := `
var a = "global";
fun show() { print a; }
show();
{ var a = "block"; show(); }
`
	require.Equal(t, "global\nglobal\n", run(t, src))
}

func TestEvalRecursiveFibonacci(t *testing.T) {
	src := "fun fib(n){ if (n<2) return n; return fib(n-1)+fib(n-2);} print fib(7);"
	require.Equal(t, "13\n", run(t, src))
}

func TestEvalClassMethodBindingAndThis(t *testing.T) {
	src := `class C { greet(){ print "hi " + this.name; } } var c = C(); c.name = "lox"; c.greet();`
	require.Equal(t, "hi lox\n", run(t, src))
}

func TestEvalInitializerAndInheritance(t *testing.T) {
	src := `
class A { init(x){ this.x = x; } show(){ print this.x; } }
class B < A { init(x,y){ super.init(x); this.y = y; } }
var b = B(1,2); b.show(); print b.y;
`
	require.Equal(t, "1\n2\n", run(t, src))
}

func TestEvalForDesugaring(t *testing.T) {
	require.Equal(t, "0\n1\n2\n", run(t, "for (var i=0; i<3; i=i+1) print i;"))
}

func TestEvalStringPlusNumberIsARuntimeError(t *testing.T) {
	toks, err := scanner.New("", []byte(`print "a" + 1;`)).ScanTokens()
	require.NoError(t, err)
	stmts, err := parser.New("", toks).Parse()
	require.NoError(t, err)
	result, err := resolver.Resolve("", stmts)
	require.NoError(t, err)

	var out bytes.Buffer
	in := New(&out, func() types.Value { return types.Number(0) })
	err = in.Interpret(stmts, result)
	require.Error(t, err)
	require.Contains(t, err.Error(), "[line 1] Error:")
}

func TestEvalShortCircuitReturnsOperandNotCoercedBool(t *testing.T) {
	require.Equal(t, "1\n", run(t, `print 1 or 2;`))
	require.Equal(t, "2\n", run(t, `print false or 2;`))
	require.Equal(t, "false\n", run(t, `print false and 2;`))
}

func TestEvalUndefinedVariableIsARuntimeError(t *testing.T) {
	toks, _ := scanner.New("", []byte("print x;")).ScanTokens()
	stmts, _ := parser.New("", toks).Parse()
	result, _ := resolver.Resolve("", stmts)

	var out bytes.Buffer
	in := New(&out, func() types.Value { return types.Number(0) })
	err := in.Interpret(stmts, result)
	require.Error(t, err)
	require.Contains(t, err.Error(), "undefined variable")
}
