package truntime

import "fmt"

// Code classifies the runtime failures that halt a run.
type Code int

const (
	DivisionByZero Code = iota
	IndexOutOfBounds
	TypeMismatch
	UndefinedLine
)

func (c Code) String() string {
	switch c {
	case DivisionByZero:
		return "division by zero"
	case IndexOutOfBounds:
		return "index out of bounds"
	case TypeMismatch:
		return "type mismatch"
	case UndefinedLine:
		return "undefined line"
	default:
		return "unknown error"
	}
}

// Error is a runtime failure. Line is the number of the statement that
// was executing when the failure surfaced; the engine fills it in
// before the error escapes Run.
type Error struct {
	Code   Code
	Line   int
	Detail string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Detail)
	}
	return e.Detail
}

func runtimeErr(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Detail: fmt.Sprintf(format, args...)}
}
