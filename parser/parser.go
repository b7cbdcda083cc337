// Package parser turns one numbered source line into its ast.Line.
// Statement dispatch is by leading keyword (LET is mandatory, never
// implied); expressions use precedence climbing with comparisons
// binding loosest and restricted to a single, non-chaining use.
package parser

import (
	"fmt"

	"github.com/davrell/tinybasic/ast"
)

const (
	precCompare = 1
	precAdd     = 2
	precMul     = 3
	precUnary   = 4
)

// ParseLine parses `<number> [statement]`. A bare line number yields a
// Line with a nil Stmt, the caller's convention for deleting that
// line. Trailing tokens after a complete statement are an error.
func ParseLine(raw string) (ast.Line, error) {
	toks, err := tokenize(raw)
	if err != nil {
		return ast.Line{}, err
	}
	p := &lineParser{tokens: toks}

	num := p.peek()
	if num.kind != tokNumber {
		return ast.Line{}, &ParseError{Reason: "expected line number", Pos: num.pos}
	}
	p.next()
	if num.num <= 0 {
		return ast.Line{}, &ParseError{Reason: fmt.Sprintf("invalid line number %d", num.num), Pos: num.pos}
	}
	line := ast.Line{Number: int(num.num)}

	if p.peek().kind == tokEOF {
		return line, nil
	}

	stmt, err := p.parseStatement()
	if err != nil {
		return ast.Line{}, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return ast.Line{}, &ParseError{Reason: fmt.Sprintf("unexpected %q after statement", t.lit), Pos: t.pos}
	}
	line.Stmt = stmt
	return line, nil
}

type lineParser struct {
	tokens []token
	pos    int
}

func (p *lineParser) peek() token {
	if p.pos >= len(p.tokens) {
		return token{kind: tokEOF}
	}
	return p.tokens[p.pos]
}

func (p *lineParser) next() token {
	t := p.peek()
	p.pos++
	return t
}

func (p *lineParser) expect(kind tokenKind, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return token{}, &ParseError{Reason: fmt.Sprintf("expected %s, got %q", what, t.lit), Pos: t.pos}
	}
	return t, nil
}

func (p *lineParser) parseStatement() (ast.Statement, error) {
	t := p.next()
	if t.kind != tokKeyword {
		return nil, &ParseError{Reason: fmt.Sprintf("expected statement keyword, got %q", t.lit), Pos: t.pos}
	}
	switch t.lit {
	case "PRINT":
		return p.parsePrint()
	case "LET":
		return p.parseLet()
	case "GOTO":
		target, err := p.parseExpr(precCompare)
		if err != nil {
			return nil, err
		}
		return ast.GotoStmt{Target: target}, nil
	case "IF":
		return p.parseIf()
	case "END":
		return ast.EndStmt{}, nil
	case "DIM":
		return p.parseDim()
	default:
		return nil, &ParseError{Reason: fmt.Sprintf("%s cannot start a statement", t.lit), Pos: t.pos}
	}
}

func (p *lineParser) parsePrint() (ast.Statement, error) {
	var items []ast.PrintItem
	if p.peek().kind == tokEOF {
		return ast.PrintStmt{}, nil
	}
	for {
		if t := p.peek(); t.kind == tokString {
			p.next()
			items = append(items, ast.TextItem{Text: t.lit})
		} else {
			e, err := p.parseExpr(precCompare)
			if err != nil {
				return nil, err
			}
			items = append(items, ast.ExprItem{Expr: e})
		}
		if p.peek().kind != tokComma {
			break
		}
		p.next()
	}
	return ast.PrintStmt{Items: items}, nil
}

func (p *lineParser) parseLet() (ast.Statement, error) {
	name, err := p.expect(tokIdent, "variable")
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokLParen {
		p.next()
		index, err := p.parseExpr(precCompare)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, ")"); err != nil {
			return nil, err
		}
		if err := p.expectOp("="); err != nil {
			return nil, err
		}
		value, err := p.parseExpr(precCompare)
		if err != nil {
			return nil, err
		}
		return ast.LetArrayStmt{Name: name.lit[0], Index: index, Value: value}, nil
	}
	if err := p.expectOp("="); err != nil {
		return nil, err
	}
	value, err := p.parseExpr(precCompare)
	if err != nil {
		return nil, err
	}
	return ast.LetStmt{Name: name.lit[0], Value: value}, nil
}

func (p *lineParser) parseIf() (ast.Statement, error) {
	cond, err := p.parseExpr(precCompare)
	if err != nil {
		return nil, err
	}
	if !isComparison(cond) {
		return nil, &ParseError{Reason: "IF condition must be a comparison", Pos: p.peek().pos}
	}
	then := p.next()
	if then.kind != tokKeyword || then.lit != "THEN" {
		return nil, &ParseError{Reason: fmt.Sprintf("expected THEN, got %q", then.lit), Pos: then.pos}
	}
	target, err := p.expect(tokNumber, "line number")
	if err != nil {
		return nil, err
	}
	if target.num <= 0 {
		return nil, &ParseError{Reason: fmt.Sprintf("invalid line number %d", target.num), Pos: target.pos}
	}
	return ast.IfStmt{Cond: cond, Target: int(target.num)}, nil
}

func (p *lineParser) parseDim() (ast.Statement, error) {
	name, err := p.expect(tokIdent, "array name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokLParen, "("); err != nil {
		return nil, err
	}
	start := p.peek()
	sizeExpr, err := p.parseExpr(precCompare)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokRParen, ")"); err != nil {
		return nil, err
	}
	size, ok := foldConst(sizeExpr)
	if !ok {
		return nil, &ParseError{Reason: "DIM size must be a constant", Pos: start.pos}
	}
	if size <= 0 {
		return nil, &ParseError{Reason: fmt.Sprintf("DIM size must be positive, got %d", size), Pos: start.pos}
	}
	return ast.DimStmt{Name: name.lit[0], Size: int(size)}, nil
}

func (p *lineParser) expectOp(op string) error {
	t := p.next()
	if t.kind != tokOp || t.lit != op {
		return &ParseError{Reason: fmt.Sprintf("expected %q, got %q", op, t.lit), Pos: t.pos}
	}
	return nil
}

func (p *lineParser) parseExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp {
			break
		}
		prec := opPrecedence(t.lit)
		if prec < minPrec {
			break
		}
		op := p.next().lit
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Op: op, Left: left, Right: right}
		// Comparisons do not chain: A < B < C is rejected as a
		// trailing token, not parsed as (A < B) < C.
		if prec == precCompare {
			break
		}
	}
	return left, nil
}

func (p *lineParser) parsePrefix() (ast.Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return ast.NumberLit{Value: t.num}, nil
	case tokIdent:
		if p.peek().kind == tokLParen {
			p.next()
			index, err := p.parseExpr(precCompare)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokRParen, ")"); err != nil {
				return nil, err
			}
			return ast.ArrayRef{Name: t.lit[0], Index: index}, nil
		}
		return ast.VarRef{Name: t.lit[0]}, nil
	case tokLParen:
		e, err := p.parseExpr(precCompare)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, ")"); err != nil {
			return nil, err
		}
		return e, nil
	case tokOp:
		if t.lit == "-" {
			operand, err := p.parseExpr(precUnary)
			if err != nil {
				return nil, err
			}
			return ast.UnaryExpr{Op: "-", Expr: operand}, nil
		}
	}
	return nil, &ParseError{Reason: fmt.Sprintf("expected expression, got %q", t.lit), Pos: t.pos}
}

func opPrecedence(op string) int {
	switch op {
	case "=", "<>", "<", "<=", ">", ">=":
		return precCompare
	case "+", "-":
		return precAdd
	case "*", "/":
		return precMul
	default:
		return 0
	}
}

func isComparison(e ast.Expr) bool {
	b, ok := e.(ast.BinaryExpr)
	return ok && opPrecedence(b.Op) == precCompare
}

// foldConst evaluates expressions made only of literals, for DIM size
// validation at parse time.
func foldConst(e ast.Expr) (int64, bool) {
	switch ex := e.(type) {
	case ast.NumberLit:
		return ex.Value, true
	case ast.UnaryExpr:
		v, ok := foldConst(ex.Expr)
		if !ok {
			return 0, false
		}
		return -v, true
	case ast.BinaryExpr:
		l, ok := foldConst(ex.Left)
		if !ok {
			return 0, false
		}
		r, ok := foldConst(ex.Right)
		if !ok {
			return 0, false
		}
		switch ex.Op {
		case "+":
			return l + r, true
		case "-":
			return l - r, true
		case "*":
			return l * r, true
		case "/":
			if r == 0 {
				return 0, false
			}
			return l / r, true
		}
		return 0, false
	default:
		return 0, false
	}
}
