// Package clicmd implements golox's command-line entry point: a mainer.Cmd
// (flag struct, SetArgs/SetFlags, Validate, Main) implementing the
// interpreter's argv contract: zero positional args runs a REPL, one runs
// a file, two or more is a usage error.
package clicmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mna/mainer"

	"github.com/loxlang/golox/internal/config"
	"github.com/loxlang/golox/lang/ast"
	"github.com/loxlang/golox/lang/evaluator"
	"github.com/loxlang/golox/lang/parser"
	"github.com/loxlang/golox/lang/resolver"
	"github.com/loxlang/golox/lang/scanner"
	"github.com/loxlang/golox/lang/types"
)

const binName = "golox"

// exit codes follow the sysexits.h convention the reference interpreter's
// own CLI uses: 64 for a command-line usage error, 65 for a static or
// runtime error encountered while running a file.
const (
	exitUsage   mainer.ExitCode = 64
	exitDataErr mainer.ExitCode = 65
)

var shortUsage = fmt.Sprintf("usage: %s [script]\n", binName)

// Cmd is golox's mainer command. The debug flags are pure diagnostics
// layered on top of the required 0/1/2+-arg contract; they never change it.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	Tokenize bool `flag:"tokenize"`
	Parse    bool `flag:"parse"`
	Resolve  bool `flag:"resolve"`

	args []string
}

// SetArgs implements mainer's flag-parsing contract: the positional
// arguments left over after flag parsing.
func (c *Cmd) SetArgs(args []string) { c.args = args }

// SetFlags implements mainer's flag-parsing contract; golox has no flag
// that needs to know whether it was explicitly set, so this is a no-op
// kept only to satisfy the interface.
func (c *Cmd) SetFlags(map[string]bool) {}

// Validate implements mainer's post-parse validation hook. The
// positional-argument-count contract (0/1/2+) carries its own specific
// exit code (64), so it's checked explicitly in Main rather than surfaced
// as a generic "invalid arguments" failure here.
func (c *Cmd) Validate() error { return nil }

// Main runs the command: REPL, file, or usage/help/version.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return exitUsage
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, shortUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	if len(c.args) > 1 {
		fmt.Fprint(stdio.Stderr, shortUsage)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: invalid configuration: %s\n", binName, err)
		return exitDataErr
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	r := &runner{cfg: cfg, stdio: stdio, debug: c.debugMode()}

	if len(c.args) == 1 {
		if !r.runFile(ctx, c.args[0]) {
			return exitDataErr
		}
		return mainer.Success
	}

	r.runREPL(ctx)
	return mainer.Success
}

// debugMode maps the mutually-exclusive --tokenize/--parse/--resolve flags
// to a single debugMode value; if more than one is set, the
// earliest-checked one wins.
func (c *Cmd) debugMode() debugMode {
	switch {
	case c.Tokenize:
		return debugTokenize
	case c.Parse:
		return debugParse
	case c.Resolve:
		return debugResolve
	default:
		return debugNone
	}
}

type debugMode int

const (
	debugNone debugMode = iota
	debugTokenize
	debugParse
	debugResolve
)

type runner struct {
	cfg   config.Config
	stdio mainer.Stdio
	debug debugMode
}

// runFile runs a whole file through scan/parse/resolve/(debug dump or
// evaluate), reporting errors to stderr. It returns false if any static or
// runtime error occurred, the signal the caller turns into exit 65.
func (r *runner) runFile(ctx context.Context, path string) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(r.stdio.Stderr, "%s: %s\n", binName, err)
		return false
	}
	return r.runSource(ctx, path, src)
}

// runREPL reads one line at a time, printing r.cfg.Prompt before each; a
// line's static or runtime error prints and the REPL continues; EOF
// (Ctrl-D) exits cleanly.
func (r *runner) runREPL(ctx context.Context) {
	scan := bufio.NewScanner(stdinOf(r.stdio))
	for {
		fmt.Fprint(r.stdio.Stdout, r.cfg.Prompt)
		if !scan.Scan() {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
		r.runSource(ctx, "", []byte(scan.Text()))
	}
}

func stdinOf(stdio mainer.Stdio) io.Reader {
	if stdio.Stdin != nil {
		return stdio.Stdin
	}
	return os.Stdin
}

// runSource drives the scan → parse → resolve → (debug dump | evaluate)
// pipeline shared by file and REPL execution, returning false if any
// static or runtime error was reported.
func (r *runner) runSource(ctx context.Context, filename string, src []byte) bool {
	toks, err := scanner.New(filename, src).ScanTokens()
	if err != nil {
		scanner.PrintError(r.stdio.Stderr, err)
		return false
	}
	if r.debug == debugTokenize {
		for _, t := range toks {
			fmt.Fprintf(r.stdio.Stdout, "%d %s %q\n", t.Line, t.Kind, t.Lexeme)
		}
		return true
	}

	stmts, err := parser.New(filename, toks).Parse()
	if err != nil {
		scanner.PrintError(r.stdio.Stderr, err)
		return false
	}
	if r.debug == debugParse {
		(&ast.Printer{Output: r.stdio.Stdout}).Print(stmts)
		return true
	}

	result, err := resolver.Resolve(filename, stmts)
	if err != nil {
		scanner.PrintError(r.stdio.Stderr, err)
		return false
	}
	if r.debug == debugResolve {
		(&ast.Printer{Output: r.stdio.Stdout}).Print(stmts)
		for id, depth := range result.Depths {
			fmt.Fprintf(r.stdio.Stdout, "  node %d -> depth %d\n", id, depth)
		}
		return true
	}

	in := evaluator.New(r.stdio.Stdout, r.clockFunc())
	if err := in.Interpret(stmts, result); err != nil {
		fmt.Fprintln(r.stdio.Stderr, err)
		return false
	}
	return true
}

// clockFunc returns the built-in clock() implementation, honoring
// cfg.ClockUnit ("s" or "ms"); either is fine as long as it's consistent.
func (r *runner) clockFunc() func() types.Value {
	return func() types.Value {
		now := time.Now()
		if r.cfg.ClockUnit == "s" {
			return types.Number(float64(now.UnixNano()) / float64(time.Second))
		}
		return types.Number(float64(now.UnixNano()) / float64(time.Millisecond))
	}
}
