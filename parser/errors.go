package parser

import "fmt"

// LexError reports an unrecognized character, a malformed identifier
// or an unterminated string literal. Pos is the rune offset within the
// submitted line.
type LexError struct {
	Message string
	Pos     int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Message, e.Pos)
}

// ParseError reports a malformed statement: what was expected and
// where. A rejected line never reaches the program store.
type ParseError struct {
	Reason string
	Pos    int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Reason, e.Pos)
}
