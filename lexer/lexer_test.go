package lexer

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/tawascript/errors"
	"github.com/pontaoski/tawascript/types"
	"github.com/ztrue/tracerr"
)

func kindsAndTexts(tokens []types.Token) []types.Token {
	out := make([]types.Token, len(tokens))
	for i, tok := range tokens {
		out[i] = types.Token{Kind: tok.Kind, Text: tok.Text}
	}
	return out
}

func TestNumbers(t *testing.T) {
	for _, src := range []string{"0", "7", "42", "3.25", "10.", "007"} {
		tokens, err := Tokenize(src)
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		if len(tokens) != 2 {
			t.Fatalf("%s: expected NUMBER EOF, got %s", src, repr.String(tokens))
		}
		if tokens[0].Kind != types.NUMBER || tokens[0].Text != src {
			t.Errorf("%s: got %s", src, tokens[0])
		}
		if tokens[1].Kind != types.EOF {
			t.Errorf("%s: missing EOF, got %s", src, tokens[1])
		}
	}
}

func TestTokenKinds(t *testing.T) {
	tokens, err := Tokenize("x = LEN(a[0]) <= 'hi' # trailing\nIF FOO == != >= ; }")
	if err != nil {
		t.Fatal(err)
	}

	expected := []types.Token{
		{Kind: types.IDENTIFIER, Text: "x"},
		{Kind: types.OPERATOR, Text: "="},
		{Kind: types.KEYWORD, Text: "LEN"},
		{Kind: types.PUNCTUATION, Text: "("},
		{Kind: types.IDENTIFIER, Text: "a"},
		{Kind: types.PUNCTUATION, Text: "["},
		{Kind: types.NUMBER, Text: "0"},
		{Kind: types.PUNCTUATION, Text: "]"},
		{Kind: types.PUNCTUATION, Text: ")"},
		{Kind: types.OPERATOR, Text: "<="},
		{Kind: types.STRING, Text: "hi"},
		{Kind: types.KEYWORD, Text: "IF"},
		{Kind: types.IDENTIFIER, Text: "FOO"},
		{Kind: types.OPERATOR, Text: "=="},
		{Kind: types.OPERATOR, Text: "!="},
		{Kind: types.OPERATOR, Text: ">="},
		{Kind: types.PUNCTUATION, Text: ";"},
		{Kind: types.PUNCTUATION, Text: "}"},
		{Kind: types.EOF},
	}

	got := kindsAndTexts(tokens)
	if repr.String(got) != repr.String(expected) {
		t.Fatalf("got %s\nexpected %s", repr.String(got), repr.String(expected))
	}
}

func TestPositions(t *testing.T) {
	tokens, err := Tokenize("x = 1\n  y")
	if err != nil {
		t.Fatal(err)
	}

	expected := []types.Position{
		{Line: 1, Column: 1},
		{Line: 1, Column: 3},
		{Line: 1, Column: 5},
		{Line: 2, Column: 3},
	}
	for i, pos := range expected {
		if tokens[i].Pos != pos {
			t.Errorf("token %d (%s): got %s, expected %s", i, tokens[i], tokens[i].Pos, pos)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		src  string
		text string
	}{
		{"'abc'", "abc"},
		{"''", ""},
		{"'it''s'", "it's"},
		{"'a b\tc'", "a b\tc"},
	}

	for _, test := range tests {
		tokens, err := Tokenize(test.src)
		if err != nil {
			t.Fatalf("%s: %v", test.src, err)
		}
		if tokens[0].Kind != types.STRING || tokens[0].Text != test.text {
			t.Errorf("%s: got %s", test.src, tokens[0])
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind errors.LexErrorKind
		pos  types.Position
	}{
		{"1.2.3", errors.InvalidNumber, types.Position{Line: 1, Column: 4}},
		{"x = 'open", errors.UnterminatedString, types.Position{Line: 1, Column: 5}},
		{"a ! b", errors.UnexpectedCharacter, types.Position{Line: 1, Column: 3}},
		{"a @", errors.UnexpectedCharacter, types.Position{Line: 1, Column: 3}},
	}

	for _, test := range tests {
		_, err := Tokenize(test.src)
		if err == nil {
			t.Fatalf("%s: expected error", test.src)
		}

		var lexErr errors.LexError
		if !stderrors.As(tracerr.Unwrap(err), &lexErr) {
			t.Fatalf("%s: expected LexError, got %v", test.src, err)
		}
		if lexErr.Kind != test.kind {
			t.Errorf("%s: got kind %s, expected %s", test.src, lexErr.Kind, test.kind)
		}
		if lexErr.Pos != test.pos {
			t.Errorf("%s: got position %s, expected %s", test.src, lexErr.Pos, test.pos)
		}
		if !errors.IsLexError(err) {
			t.Errorf("%s: IsLexError false", test.src)
		}
	}
}

func TestRestartable(t *testing.T) {
	src := "FOR i FROM 1 TO 3 { total = total + i }"
	first, err := Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	if repr.String(first) != repr.String(second) {
		t.Fatalf("rescanning changed the tokens:\n%s\n%s", repr.String(first), repr.String(second))
	}
}

func TestPeek(t *testing.T) {
	l := NewLexer(strings.NewReader("a b"))
	if !l.PeekIs(types.IDENTIFIER, "a") {
		t.Fatalf("peek: got %s", l.Peek())
	}
	if tok := l.Lex(); tok.Text != "a" {
		t.Fatalf("lex after peek: got %s", tok)
	}
	if tok := l.Lex(); tok.Text != "b" {
		t.Fatalf("got %s", tok)
	}
	for i := 0; i < 2; i++ {
		if tok := l.Lex(); tok.Kind != types.EOF {
			t.Fatalf("expected EOF, got %s", tok)
		}
	}
}
