package parser

import (
	"strconv"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokString
	tokKeyword
	tokOp
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	lit  string
	num  int64
	pos  int
}

var keywords = map[string]bool{
	"PRINT": true,
	"LET":   true,
	"GOTO":  true,
	"IF":    true,
	"THEN":  true,
	"END":   true,
	"DIM":   true,
}

// tokenize splits one source line into tokens. Keywords are matched
// case-sensitively; identifiers are exactly one uppercase letter, so a
// letter run that is neither a keyword nor a single letter is an
// error. Whitespace only separates tokens.
func tokenize(raw string) ([]token, error) {
	r := []rune(raw)
	toks := make([]token, 0, len(r)/2)
	for i := 0; i < len(r); {
		ch := r[i]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			i++
			continue
		}
		if ch >= '0' && ch <= '9' {
			j := i + 1
			for j < len(r) && r[j] >= '0' && r[j] <= '9' {
				j++
			}
			v, err := strconv.ParseInt(string(r[i:j]), 10, 64)
			if err != nil {
				return nil, &LexError{Message: "number too large", Pos: i}
			}
			toks = append(toks, token{kind: tokNumber, lit: string(r[i:j]), num: v, pos: i})
			i = j
			continue
		}
		if ch >= 'A' && ch <= 'Z' {
			j := i + 1
			for j < len(r) && r[j] >= 'A' && r[j] <= 'Z' {
				j++
			}
			word := string(r[i:j])
			switch {
			case keywords[word]:
				toks = append(toks, token{kind: tokKeyword, lit: word, pos: i})
			case j-i == 1:
				toks = append(toks, token{kind: tokIdent, lit: word, pos: i})
			default:
				return nil, &LexError{Message: "invalid identifier " + strconv.Quote(word), Pos: i}
			}
			i = j
			continue
		}
		if ch == '"' {
			j := i + 1
			for j < len(r) && r[j] != '"' {
				j++
			}
			if j >= len(r) {
				return nil, &LexError{Message: "unterminated string", Pos: i}
			}
			toks = append(toks, token{kind: tokString, lit: string(r[i+1 : j]), pos: i})
			i = j + 1
			continue
		}
		if i+1 < len(r) {
			two := string(r[i : i+2])
			switch two {
			case "<=", ">=", "<>":
				toks = append(toks, token{kind: tokOp, lit: two, pos: i})
				i += 2
				continue
			}
		}
		switch ch {
		case '+', '-', '*', '/', '=', '<', '>':
			toks = append(toks, token{kind: tokOp, lit: string(ch), pos: i})
			i++
		case '(':
			toks = append(toks, token{kind: tokLParen, lit: "(", pos: i})
			i++
		case ')':
			toks = append(toks, token{kind: tokRParen, lit: ")", pos: i})
			i++
		case ',':
			toks = append(toks, token{kind: tokComma, lit: ",", pos: i})
			i++
		default:
			return nil, &LexError{Message: "unexpected character " + strconv.QuoteRune(ch), Pos: i}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(r)})
	return toks, nil
}
