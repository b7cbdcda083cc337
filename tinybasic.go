// Package tinybasic is a line-numbered BASIC dialect interpreter:
// integer-only variables A-Z, DIM arrays, PRINT/LET/GOTO/IF/END and
// line-number driven control flow.
package tinybasic

import (
	"github.com/davrell/tinybasic/ast"
	"github.com/davrell/tinybasic/parser"
	truntime "github.com/davrell/tinybasic/runtime"
)

// New returns a fresh interpreter session with an empty program.
func New() *truntime.VM {
	return truntime.New()
}

// ParseLine parses one numbered source line for tooling use without
// touching a session's program store.
func ParseLine(text string) (ast.Line, error) {
	return parser.ParseLine(text)
}
