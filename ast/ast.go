// Package ast defines the statement and expression trees for the tiny
// BASIC dialect: one statement per numbered line, integer expressions
// over single-letter variables and DIM-declared arrays.
package ast

import (
	"fmt"
	"strings"
)

// Line pairs a positive line number with its parsed statement. A nil
// Stmt marks a deletion request (a line entered with only its number).
type Line struct {
	Number int
	Stmt   Statement
}

type Statement interface {
	isStatement()
	String() string
}

// PrintStmt emits one output line per execution. Items are string
// literals passed through verbatim or expressions evaluated at run
// time, comma-joined.
type PrintStmt struct {
	Items []PrintItem
}

func (PrintStmt) isStatement() {}

type PrintItem interface {
	isPrintItem()
	String() string
}

type TextItem struct {
	Text string
}

func (TextItem) isPrintItem() {}

func (t TextItem) String() string {
	return fmt.Sprintf("%q", t.Text)
}

type ExprItem struct {
	Expr Expr
}

func (ExprItem) isPrintItem() {}

func (e ExprItem) String() string {
	return e.Expr.String()
}

type LetStmt struct {
	Name  byte
	Value Expr
}

func (LetStmt) isStatement() {}

type LetArrayStmt struct {
	Name  byte
	Index Expr
	Value Expr
}

func (LetArrayStmt) isStatement() {}

// GotoStmt jumps to the stored line the target expression evaluates
// to. The target is usually a literal but any integer expression is
// accepted.
type GotoStmt struct {
	Target Expr
}

func (GotoStmt) isStatement() {}

// IfStmt jumps to Target when the condition is nonzero, otherwise
// falls through to the next stored line.
type IfStmt struct {
	Cond   Expr
	Target int
}

func (IfStmt) isStatement() {}

type EndStmt struct{}

func (EndStmt) isStatement() {}

// DimStmt declares the array for Name with Size zero-initialized
// elements, replacing any prior scalar value or declaration. The
// parser guarantees Size is positive.
type DimStmt struct {
	Name byte
	Size int
}

func (DimStmt) isStatement() {}

func (s PrintStmt) String() string {
	if len(s.Items) == 0 {
		return "PRINT"
	}
	parts := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		parts = append(parts, item.String())
	}
	return "PRINT " + strings.Join(parts, ", ")
}

func (s LetStmt) String() string {
	return fmt.Sprintf("LET %c = %s", s.Name, s.Value)
}

func (s LetArrayStmt) String() string {
	return fmt.Sprintf("LET %c(%s) = %s", s.Name, s.Index, s.Value)
}

func (s GotoStmt) String() string {
	return "GOTO " + s.Target.String()
}

func (s IfStmt) String() string {
	return fmt.Sprintf("IF %s THEN %d", s.Cond, s.Target)
}

func (EndStmt) String() string {
	return "END"
}

func (s DimStmt) String() string {
	return fmt.Sprintf("DIM %c(%d)", s.Name, s.Size)
}

type Expr interface {
	isExpr()
	String() string
}

type NumberLit struct {
	Value int64
}

func (NumberLit) isExpr() {}

func (n NumberLit) String() string {
	return fmt.Sprintf("%d", n.Value)
}

// VarRef names one of the 26 scalar variables A-Z.
type VarRef struct {
	Name byte
}

func (VarRef) isExpr() {}

func (v VarRef) String() string {
	return string(v.Name)
}

type ArrayRef struct {
	Name  byte
	Index Expr
}

func (ArrayRef) isExpr() {}

func (a ArrayRef) String() string {
	return fmt.Sprintf("%c(%s)", a.Name, a.Index)
}

type UnaryExpr struct {
	Op   string
	Expr Expr
}

func (UnaryExpr) isExpr() {}

func (u UnaryExpr) String() string {
	return u.Op + u.Expr.String()
}

type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (BinaryExpr) isExpr() {}

func (b BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}
