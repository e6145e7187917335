package token

import "fmt"

// Pos is a 1-based source line number. Lox diagnostics only ever report a
// line ("[line N] Error: message"), and a run only ever covers a single
// REPL line or source file, so Pos is a plain integer with no column and
// no multi-chunk FileSet to track.
type Pos int

// NoPos is the zero value, meaning "no position available".
const NoPos Pos = 0

func (p Pos) String() string { return fmt.Sprintf("line %d", int(p)) }
