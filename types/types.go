package types

import (
	"fmt"
)

type Position struct {
	Line   int
	Column int
}

type TokenKind int

const (
	EOF TokenKind = iota

	NUMBER
	STRING
	IDENTIFIER
	KEYWORD
	OPERATOR
	PUNCTUATION
)

func (t TokenKind) String() string {
	data := map[TokenKind]string{
		EOF:         "EOF",
		NUMBER:      "NUMBER",
		STRING:      "STRING",
		IDENTIFIER:  "IDENTIFIER",
		KEYWORD:     "KEYWORD",
		OPERATOR:    "OPERATOR",
		PUNCTUATION: "PUNCTUATION",
	}
	if s, ok := data[t]; ok {
		return s
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsZero reports whether the position was never set.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

type Token struct {
	Kind TokenKind
	Text string
	Pos  Position
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

// Is reports whether the token has the given kind and, when texts are given,
// one of those texts.
func (t Token) Is(kind TokenKind, texts ...string) bool {
	if t.Kind != kind {
		return false
	}
	if len(texts) == 0 {
		return true
	}
	for _, text := range texts {
		if t.Text == text {
			return true
		}
	}
	return false
}

// Builtin function names. They lex as keywords.
var BuiltinNames = []string{
	"MIN",
	"MAX",
	"LEN",
	"CONCAT",
	"SPLIT",
	"APPEND",
	"REMOVE",
	"SORT_TUPLE",
}

var Keywords = func() map[string]bool {
	k := map[string]bool{
		"IF":    true,
		"ELSE":  true,
		"WHILE": true,
		"FOR":   true,
		"FROM":  true,
		"TO":    true,
		"TRUE":  true,
		"FALSE": true,
	}
	for _, name := range BuiltinNames {
		k[name] = true
	}
	return k
}()

// Operators holds every operator spelling, two-character forms first so the
// lexer can match by longest prefix.
var Operators = []string{
	"==", "!=", "<=", ">=",
	"+", "-", "*", "/", "<", ">", "=",
}

var Punctuation = map[rune]bool{
	'(': true,
	')': true,
	'{': true,
	'}': true,
	'[': true,
	']': true,
	',': true,
	';': true,
}
