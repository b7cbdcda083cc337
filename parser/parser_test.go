package parser

import (
	"errors"
	"testing"

	"github.com/davrell/tinybasic/ast"
)

func TestParseLineStatements(t *testing.T) {
	cases := []struct {
		in   string
		num  int
		want string
	}{
		{`10 PRINT "Hello"`, 10, `PRINT "Hello"`},
		{`10 PRINT "X is", X, 1 + 2`, 10, `PRINT "X is", X, (1 + 2)`},
		{"20 LET X = 5", 20, "LET X = 5"},
		{"20 LET A(I + 1) = X * 2", 20, "LET A((I + 1)) = (X * 2)"},
		{"30 GOTO 100", 30, "GOTO 100"},
		{"30 GOTO X + 10", 30, "GOTO (X + 10)"},
		{"40 IF X < Y THEN 60", 40, "IF (X < Y) THEN 60"},
		{"50 END", 50, "END"},
		{"60 DIM A(5)", 60, "DIM A(5)"},
		{"60 DIM A(2 + 3)", 60, "DIM A(5)"},
		{"70 LET X = 1 + 2 * 3", 70, "LET X = (1 + (2 * 3))"},
		{"70 LET X = (1 + 2) * 3", 70, "LET X = ((1 + 2) * 3)"},
		{"70 LET X = -Y * 2", 70, "LET X = (-Y * 2)"},
		{"70 LET X = A(0) - A(1)", 70, "LET X = (A(0) - A(1))"},
		{"80 LET B = X <> Y", 80, "LET B = (X <> Y)"},
	}
	for _, c := range cases {
		line, err := ParseLine(c.in)
		if err != nil {
			t.Fatalf("ParseLine(%q) failed: %v", c.in, err)
		}
		if line.Number != c.num {
			t.Fatalf("ParseLine(%q) number = %d, want %d", c.in, line.Number, c.num)
		}
		if got := line.Stmt.String(); got != c.want {
			t.Fatalf("ParseLine(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseLineDeletion(t *testing.T) {
	line, err := ParseLine("10")
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if line.Number != 10 || line.Stmt != nil {
		t.Fatalf("bare line number parsed as %+v, want number 10, nil stmt", line)
	}
}

func TestParseLineErrors(t *testing.T) {
	cases := []string{
		`PRINT "no line number"`,
		"0 END",
		"10 X = 5",     // LET is mandatory
		"10 THEN 20",   // keyword that cannot start a statement
		"10 END END",   // trailing tokens
		"10 LET X = ",  // missing expression
		"10 LET X 5",   // missing =
		"10 IF X THEN 20",     // condition must be a comparison
		"10 IF X < Y GOTO 20", // missing THEN
		"10 IF X < Y THEN X",  // target must be a line number
		"10 IF X < Y < Z THEN 20", // comparisons do not chain
		"10 DIM A(0)",
		"10 DIM A(-3)",
		"10 DIM A(X)", // size must be constant
		"10 DIM A(1 / 0)",
		"10 LET X = (1 + 2",
		"10 GOTO",
	}
	for _, in := range cases {
		line, err := ParseLine(in)
		if err == nil {
			t.Fatalf("ParseLine(%q) = %v, want error", in, line)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("ParseLine(%q) error type %T, want *ParseError", in, err)
		}
	}
}

func TestParseLineLexErrorPassesThrough(t *testing.T) {
	_, err := ParseLine(`10 PRINT "oops`)
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("error type %T, want *LexError", err)
	}
}

func TestParseGotoKeepsExpression(t *testing.T) {
	line, err := ParseLine("10 GOTO 2 * 50")
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	g, ok := line.Stmt.(ast.GotoStmt)
	if !ok {
		t.Fatalf("statement type %T, want GotoStmt", line.Stmt)
	}
	if _, ok := g.Target.(ast.BinaryExpr); !ok {
		t.Fatalf("target type %T, want BinaryExpr", g.Target)
	}
}
