package parser

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/internal/filetest"
	"github.com/loxlang/golox/lang/ast"
	"github.com/loxlang/golox/lang/scanner"
)

var testUpdateParserGoldenTests = flag.Bool("test.update-parser-golden-tests", false,
	"If set, replace expected parser golden results with actual results.")

// TestParserGolden dumps the parsed AST of each testdata/in/*.lox fixture
// through ast.Printer and diffs it against the corresponding golden file in
// testdata/out, using internal/filetest's fixture-directory-plus-diff
// helpers.
func TestParserGolden(t *testing.T) {
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")
	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		fi := fi
		t.Run(fi.Name(), func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(srcDir, fi.Name()))
			require.NoError(t, err)

			toks, err := scanner.New(fi.Name(), src).ScanTokens()
			require.NoError(t, err)
			stmts, err := New(fi.Name(), toks).Parse()
			require.NoError(t, err)

			var buf bytes.Buffer
			(&ast.Printer{Output: &buf}).Print(stmts)
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateParserGoldenTests)
		})
	}
}
