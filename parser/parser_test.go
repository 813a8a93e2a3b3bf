package parser

import (
	stderrors "errors"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/tawascript/ast"
	"github.com/pontaoski/tawascript/errors"
	"github.com/pontaoski/tawascript/lexer"
	"github.com/pontaoski/tawascript/types"
	"github.com/ztrue/tracerr"
)

func mustParse(t *testing.T, src string) ast.Block {
	t.Helper()
	block, err := ParseSource(src)
	if err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	return block
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"2 + 3 * 4", "{ (2 + (3 * 4)) }"},
		{"2 * 3 + 4", "{ ((2 * 3) + 4) }"},
		{"1 - 2 - 3", "{ ((1 - 2) - 3) }"},
		{"8 / 4 / 2", "{ ((8 / 4) / 2) }"},
		{"(2 + 3) * 4", "{ ((2 + 3) * 4) }"},
		{"-2 * 3", "{ ((-2) * 3) }"},
		{"1 + 2 < 3 * 4", "{ ((1 + 2) < (3 * 4)) }"},
		{"a == b + 1", "{ (a == (b + 1)) }"},
		{"-a[1]", "{ (-a[1]) }"},
		{"x <= 2", "{ (x <= 2) }"},
	}

	for _, test := range tests {
		got := ast.String(mustParse(t, test.src))
		if got != test.expected {
			t.Errorf("%s: got %s, expected %s", test.src, got, test.expected)
		}
	}
}

func TestStatements(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"x = 5 y = 3 x + y", "{ x = 5; y = 3; (x + y) }"},
		{"x = 0 WHILE x > 0 { x = x + 1 }", "{ x = 0; WHILE (x > 0) { x = (x + 1) } }"},
		{"IF x > 5 { y = 1 } ELSE { y = 2 }", "{ IF (x > 5) { y = 1 } ELSE { y = 2 } }"},
		{"IF a { } ELSE IF b { c = 1 }", "{ IF a { } ELSE { IF b { c = 1 } } }"},
		{"FOR i FROM 1 TO 3 { total = total + i }", "{ FOR i FROM 1 TO 3 { total = (total + i) } }"},
		{"{ x = 1; y = 2 }", "{ { x = 1; y = 2 } }"},
		{"a = [1, 2] APPEND(a, 3)", "{ a = [1, 2]; APPEND(a, 3) }"},
		{"t = SORT_TUPLE((3, 1, 2))", "{ t = SORT_TUPLE((3, 1, 2)) }"},
		{"t = (1,) e = ()", "{ t = (1,); e = () }"},
		{"s = 'it''s' b = TRUE", "{ s = 'it''s'; b = TRUE }"},
		{"foo(1, 'a')[0][1]", "{ foo(1, 'a')[0][1] }"},
		{"x = [1, 2,]", "{ x = [1, 2] }"},
	}

	for _, test := range tests {
		got := ast.String(mustParse(t, test.src))
		if got != test.expected {
			t.Errorf("%s:\ngot      %s\nexpected %s", test.src, got, test.expected)
		}
	}
}

func TestParseTokens(t *testing.T) {
	tokens, err := lexer.Tokenize("x = 1 + 2")
	if err != nil {
		t.Fatal(err)
	}
	block, err := Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}

	if len(block.Statements) != 1 {
		t.Fatalf("expected one statement, got %s", repr.String(block))
	}
	assign, ok := block.Statements[0].(ast.Assignment)
	if !ok {
		t.Fatalf("expected assignment, got %s", repr.String(block.Statements[0]))
	}
	if assign.Name != "x" || assign.Pos != (types.Position{Line: 1, Column: 1}) {
		t.Errorf("got %s", repr.String(assign))
	}
	if _, ok := assign.Value.(ast.BinaryOp); !ok {
		t.Errorf("expected binary op, got %s", repr.String(assign.Value))
	}
}

func TestUnexpectedToken(t *testing.T) {
	tests := []struct {
		src   string
		found string
		pos   types.Position
	}{
		{"x = ", "", types.Position{Line: 1, Column: 4}},
		{"FOR 1 FROM 1 TO 2 { }", "1", types.Position{Line: 1, Column: 5}},
		{"MIN 1", "1", types.Position{Line: 1, Column: 5}},
		{"IF x y = 1", "y", types.Position{Line: 1, Column: 6}},
		{"f(1 2)", "2", types.Position{Line: 1, Column: 5}},
		{"x = )", ")", types.Position{Line: 1, Column: 5}},
	}

	for _, test := range tests {
		_, err := ParseSource(test.src)
		if err == nil {
			t.Fatalf("%s: expected error", test.src)
		}

		var unexpected errors.UnexpectedToken
		if !stderrors.As(tracerr.Unwrap(err), &unexpected) {
			t.Fatalf("%s: expected UnexpectedToken, got %v", test.src, err)
		}
		if unexpected.Found.Text != test.found {
			t.Errorf("%s: found %s", test.src, unexpected.Found)
		}
		if unexpected.Pos != test.pos {
			t.Errorf("%s: got position %s, expected %s", test.src, unexpected.Pos, test.pos)
		}
		if len(unexpected.Expected) == 0 {
			t.Errorf("%s: no expectation recorded", test.src)
		}
		if !errors.IsParseError(err) {
			t.Errorf("%s: IsParseError false", test.src)
		}
	}
}

func TestUnterminatedBlock(t *testing.T) {
	_, err := ParseSource("WHILE TRUE {\n x = 1")
	var unterminated errors.UnterminatedBlock
	if !stderrors.As(tracerr.Unwrap(err), &unterminated) {
		t.Fatalf("expected UnterminatedBlock, got %v", err)
	}
	if unterminated.Open != (types.Position{Line: 1, Column: 12}) {
		t.Errorf("got open position %s", unterminated.Open)
	}
}

func TestLexErrorsSurface(t *testing.T) {
	_, err := ParseSource("x = 1.2.3")
	if !errors.IsLexError(err) {
		t.Fatalf("expected lex error, got %v", err)
	}
}

func TestDivisionByLiteralZeroParses(t *testing.T) {
	got := ast.String(mustParse(t, "10 / 0"))
	if got != "{ (10 / 0) }" {
		t.Fatalf("got %s", got)
	}
}
