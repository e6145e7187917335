package clicmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"
)

func TestMainTooManyArgsIsUsageError(t *testing.T) {
	var out, errOut bytes.Buffer
	c := &Cmd{}
	code := c.Main([]string{"golox", "a.lox", "b.lox"}, mainer.Stdio{Stdout: &out, Stderr: &errOut})
	require.Equal(t, exitUsage, code)
	require.Contains(t, errOut.String(), "usage:")
}

func TestMainRunsFileAndExitsZeroOnSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lox")
	require.NoError(t, os.WriteFile(path, []byte("print 1 + 2;"), 0o600))

	var out, errOut bytes.Buffer
	c := &Cmd{}
	code := c.Main([]string{"golox", path}, mainer.Stdio{Stdout: &out, Stderr: &errOut})
	require.Equal(t, mainer.Success, code)
	require.Equal(t, "3\n", out.String())
}

func TestMainRunsFileAndExitsDataErrOnRuntimeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lox")
	require.NoError(t, os.WriteFile(path, []byte("print x;"), 0o600))

	var out, errOut bytes.Buffer
	c := &Cmd{}
	code := c.Main([]string{"golox", path}, mainer.Stdio{Stdout: &out, Stderr: &errOut})
	require.Equal(t, exitDataErr, code)
	require.Contains(t, errOut.String(), "undefined variable")
}

func TestMainRunsFileAndExitsDataErrOnStaticError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lox")
	require.NoError(t, os.WriteFile(path, []byte("1 + ;"), 0o600))

	var out, errOut bytes.Buffer
	c := &Cmd{}
	code := c.Main([]string{"golox", path}, mainer.Stdio{Stdout: &out, Stderr: &errOut})
	require.Equal(t, exitDataErr, code)
}

func TestMainREPLContinuesAfterAnErrorOnOneLine(t *testing.T) {
	var out, errOut bytes.Buffer
	in := strings.NewReader("print x;\nprint 1;\n")
	c := &Cmd{}
	code := c.Main([]string{"golox"}, mainer.Stdio{Stdout: &out, Stderr: &errOut, Stdin: in})
	require.Equal(t, mainer.Success, code)
	require.Contains(t, out.String(), "1\n")
	require.Contains(t, errOut.String(), "undefined variable")
}

func TestMainTokenizeDebugFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lox")
	require.NoError(t, os.WriteFile(path, []byte("1;"), 0o600))

	var out, errOut bytes.Buffer
	c := &Cmd{}
	code := c.Main([]string{"golox", "--tokenize", path}, mainer.Stdio{Stdout: &out, Stderr: &errOut})
	require.Equal(t, mainer.Success, code)
	require.Contains(t, out.String(), "number")
}
