// Package truntime executes stored programs: it owns the program
// store, the per-run variable state and the program-counter state
// machine that drives statements until END, the end of the program, a
// runtime error or the configured step limit.
package truntime

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/davrell/tinybasic/ast"
	"github.com/davrell/tinybasic/parser"
)

// Halt reports how a run terminated.
type Halt int

const (
	// HaltEnd: an END statement executed.
	HaltEnd Halt = iota
	// HaltOffEnd: execution advanced past the highest stored line.
	HaltOffEnd
	// HaltStepLimit: the configured maximum step count was reached.
	HaltStepLimit
	// HaltError: a runtime error stopped execution.
	HaltError
)

func (h Halt) String() string {
	switch h {
	case HaltEnd:
		return "END"
	case HaltOffEnd:
		return "end of program"
	case HaltStepLimit:
		return "step limit reached"
	case HaltError:
		return "runtime error"
	default:
		return "unknown"
	}
}

// OutputFunc receives one finished PRINT line.
type OutputFunc func(line string)

// VM is one interpreter session: a program store plus the machinery to
// run it. It is not safe for concurrent use; each session owns its
// state exclusively.
type VM struct {
	prog     *store
	state    State
	outputs  []string
	hook     OutputFunc
	maxSteps int
}

func New() *VM {
	return &VM{prog: newStore()}
}

// SetOutputHook installs the sink invoked once per executed PRINT.
// Output is buffered either way and available from Outputs.
func (vm *VM) SetOutputHook(fn OutputFunc) {
	vm.hook = fn
}

// SetMaxSteps bounds the number of statements one Run may execute, as
// a guard against unconditional GOTO cycles. Zero disables the limit.
func (vm *VM) SetMaxSteps(n int) {
	vm.maxSteps = n
}

// LoadLine parses `<number> [statement]` and inserts or replaces that
// line. A bare line number deletes the stored line. On a lex or parse
// error the store is left unchanged.
func (vm *VM) LoadLine(text string) error {
	line, err := parser.ParseLine(text)
	if err != nil {
		return err
	}
	if line.Stmt == nil {
		vm.prog.remove(line.Number)
		return nil
	}
	vm.prog.set(line.Number, line.Stmt)
	return nil
}

// LoadProgram replaces the whole program with the given source text,
// one numbered statement per line. Blank lines are skipped. On error
// nothing is replaced.
func (vm *VM) LoadProgram(src string) error {
	loaded := newStore()
	for i, text := range strings.Split(src, "\n") {
		if strings.TrimSpace(text) == "" {
			continue
		}
		line, err := parser.ParseLine(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		if line.Stmt == nil {
			loaded.remove(line.Number)
			continue
		}
		loaded.set(line.Number, line.Stmt)
	}
	vm.prog = loaded
	return nil
}

// Clear empties the program store (the NEW command).
func (vm *VM) Clear() {
	vm.prog.clear()
}

// LineCount reports the number of stored lines.
func (vm *VM) LineCount() int {
	return vm.prog.len()
}

// Statement returns the parsed statement stored at a line number.
func (vm *VM) Statement(n int) (ast.Statement, bool) {
	return vm.prog.at(n)
}

// List yields (line number, source-equivalent text) pairs in ascending
// order. The sequence is restartable; each range re-reads the store.
func (vm *VM) List() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for _, n := range vm.prog.numbers() {
			stmt, ok := vm.prog.at(n)
			if !ok {
				continue
			}
			if !yield(n, stmt.String()) {
				return
			}
		}
	}
}

// Serialize renders the program in LOAD-able form: ascending numbered
// lines, one statement each.
func (vm *VM) Serialize() string {
	var b strings.Builder
	for n, text := range vm.List() {
		fmt.Fprintf(&b, "%d %s\n", n, text)
	}
	return b.String()
}

// Outputs returns the PRINT lines of the most recent Run.
func (vm *VM) Outputs() []string {
	return append([]string(nil), vm.outputs...)
}

// Run executes from the lowest stored line with a freshly reset state,
// so repeated runs of the same program behave identically. The
// returned Halt says how execution stopped; err is non-nil only for
// HaltError and carries the offending line number.
func (vm *VM) Run() (Halt, error) {
	vm.state.Reset()
	vm.outputs = vm.outputs[:0]

	pc, ok := vm.prog.first()
	if !ok {
		return HaltOffEnd, nil
	}
	steps := 0
	for {
		if vm.maxSteps > 0 && steps >= vm.maxSteps {
			return HaltStepLimit, nil
		}
		stmt, ok := vm.prog.at(pc)
		if !ok {
			return HaltOffEnd, nil
		}
		steps++

		jump, jumped, end, err := vm.exec(stmt)
		if err != nil {
			var rerr *Error
			if errors.As(err, &rerr) && rerr.Line == 0 {
				rerr.Line = pc
			}
			return HaltError, err
		}
		if end {
			return HaltEnd, nil
		}
		if jumped {
			pc = jump
			continue
		}
		pc, ok = vm.prog.nextAfter(pc)
		if !ok {
			return HaltOffEnd, nil
		}
	}
}

func (vm *VM) exec(stmt ast.Statement) (jump int, jumped bool, end bool, err error) {
	switch s := stmt.(type) {
	case ast.PrintStmt:
		parts := make([]string, 0, len(s.Items))
		for _, item := range s.Items {
			switch it := item.(type) {
			case ast.TextItem:
				parts = append(parts, it.Text)
			case ast.ExprItem:
				v, err := evalExpr(&vm.state, it.Expr)
				if err != nil {
					return 0, false, false, err
				}
				parts = append(parts, fmt.Sprintf("%d", v))
			}
		}
		vm.emit(strings.Join(parts, ", "))
		return 0, false, false, nil

	case ast.LetStmt:
		v, err := evalExpr(&vm.state, s.Value)
		if err != nil {
			return 0, false, false, err
		}
		return 0, false, false, vm.state.SetScalar(s.Name, v)

	case ast.LetArrayStmt:
		index, err := evalExpr(&vm.state, s.Index)
		if err != nil {
			return 0, false, false, err
		}
		v, err := evalExpr(&vm.state, s.Value)
		if err != nil {
			return 0, false, false, err
		}
		return 0, false, false, vm.state.SetElement(s.Name, index, v)

	case ast.GotoStmt:
		target, err := evalExpr(&vm.state, s.Target)
		if err != nil {
			return 0, false, false, err
		}
		if !vm.prog.has(int(target)) {
			return 0, false, false, runtimeErr(UndefinedLine, "no such line %d", target)
		}
		return int(target), true, false, nil

	case ast.IfStmt:
		cond, err := evalExpr(&vm.state, s.Cond)
		if err != nil {
			return 0, false, false, err
		}
		if cond == 0 {
			return 0, false, false, nil
		}
		if !vm.prog.has(s.Target) {
			return 0, false, false, runtimeErr(UndefinedLine, "no such line %d", s.Target)
		}
		return s.Target, true, false, nil

	case ast.EndStmt:
		return 0, false, true, nil

	case ast.DimStmt:
		vm.state.Dim(s.Name, s.Size)
		return 0, false, false, nil

	default:
		return 0, false, false, runtimeErr(TypeMismatch, "unsupported statement %s", stmt)
	}
}

func (vm *VM) emit(line string) {
	vm.outputs = append(vm.outputs, line)
	if vm.hook != nil {
		vm.hook(line)
	}
}
