package lexer

import (
	"bufio"
	"io"
	"strings"

	"github.com/pontaoski/tawascript/errors"
	"github.com/pontaoski/tawascript/types"
	"github.com/ztrue/tracerr"
)

type Lexer struct {
	pos    types.Position
	reader *bufio.Reader
	peeked *types.Token
	done   bool
}

func NewLexer(reader io.Reader) *Lexer {
	return &Lexer{
		pos:    types.Position{Line: 1, Column: 0},
		reader: bufio.NewReader(reader),
	}
}

// Tokenize scans source to the end and returns every token, always ending
// with a single EOF token. Scanning the same source again yields the same
// tokens.
func Tokenize(source string) (tokens []types.Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(errors.LexError)
			if !ok {
				panic(r)
			}
			tokens = nil
			err = tracerr.Wrap(rerr)
		}
	}()

	l := NewLexer(strings.NewReader(source))
	for {
		tok := l.Lex()
		tokens = append(tokens, tok)
		if tok.Kind == types.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) newline() {
	l.pos.Line++
	l.pos.Column = 0
}

func (l *Lexer) backup() {
	if err := l.reader.UnreadRune(); err != nil {
		panic(err)
	}

	l.pos.Column--
}

func (l *Lexer) read() (rune, bool) {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return 0, false
		}
		panic(err)
	}
	l.pos.Column++
	return r, true
}

func (l *Lexer) token(kind types.TokenKind, text string, at types.Position) types.Token {
	return types.Token{Kind: kind, Text: text, Pos: at}
}

func firstChar(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func otherChar(r rune) bool {
	return firstChar(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func (l *Lexer) lexIdent(first rune, from types.Position) types.Token {
	var lit strings.Builder
	lit.WriteRune(first)

	for {
		r, ok := l.read()
		if !ok {
			break
		}
		if !otherChar(r) {
			l.backup()
			break
		}
		lit.WriteRune(r)
	}

	text := lit.String()
	if types.Keywords[text] {
		return l.token(types.KEYWORD, text, from)
	}
	return l.token(types.IDENTIFIER, text, from)
}

func (l *Lexer) lexNumber(first rune, from types.Position) types.Token {
	var lit strings.Builder
	lit.WriteRune(first)
	seenPoint := false

	for {
		r, ok := l.read()
		if !ok {
			break
		}
		if r == '.' {
			if seenPoint {
				panic(errors.LexError{
					Kind: errors.InvalidNumber,
					Text: lit.String() + ".",
					Pos:  l.pos,
				})
			}
			seenPoint = true
			lit.WriteRune(r)
			continue
		}
		if !isDigit(r) {
			l.backup()
			break
		}
		lit.WriteRune(r)
	}

	return l.token(types.NUMBER, lit.String(), from)
}

// lexString is called after the opening quote. A doubled quote inside the
// literal stands for one quote character.
func (l *Lexer) lexString(from types.Position) types.Token {
	var lit strings.Builder

	for {
		r, ok := l.read()
		if !ok {
			panic(errors.LexError{
				Kind: errors.UnterminatedString,
				Text: "'" + lit.String(),
				Pos:  from,
			})
		}

		switch r {
		case '\'':
			next, err := l.reader.Peek(1)
			if err == nil && next[0] == '\'' {
				l.read()
				lit.WriteRune('\'')
				continue
			}
			return l.token(types.STRING, lit.String(), from)
		case '\n':
			lit.WriteRune(r)
			l.newline()
		default:
			lit.WriteRune(r)
		}
	}
}

func (l *Lexer) skipComment() {
	for {
		r, ok := l.read()
		if !ok {
			return
		}
		if r == '\n' {
			l.newline()
			return
		}
	}
}

// lexOperator matches the longest operator starting with r.
func (l *Lexer) lexOperator(r rune, from types.Position) (types.Token, bool) {
	next, err := l.reader.Peek(1)
	if err == nil {
		two := string(r) + string(next[0])
		for _, op := range types.Operators {
			if op == two {
				l.read()
				return l.token(types.OPERATOR, two, from), true
			}
		}
	}
	for _, op := range types.Operators {
		if op == string(r) {
			return l.token(types.OPERATOR, op, from), true
		}
	}
	return types.Token{}, false
}

func (l *Lexer) Peek() types.Token {
	if l.peeked != nil {
		return *l.peeked
	}

	tok := l.Lex()
	l.peeked = &tok

	return tok
}

func (l *Lexer) PeekIs(kind types.TokenKind, texts ...string) bool {
	return l.Peek().Is(kind, texts...)
}

// Lex returns the next token. Once EOF has been returned every further call
// returns EOF again.
func (l *Lexer) Lex() types.Token {
	if l.peeked != nil {
		defer func() { l.peeked = nil }()
		return *l.peeked
	}

	for {
		if l.done {
			return l.token(types.EOF, "", l.pos)
		}

		r, ok := l.read()
		if !ok {
			l.done = true
			continue
		}

		from := l.pos

		switch {
		case r == '\n':
			l.newline()
			continue
		case isSpace(r):
			continue
		case r == '#':
			l.skipComment()
			continue
		case r == '\'':
			return l.lexString(from)
		case isDigit(r):
			return l.lexNumber(r, from)
		case firstChar(r):
			return l.lexIdent(r, from)
		case types.Punctuation[r]:
			return l.token(types.PUNCTUATION, string(r), from)
		}

		if tok, ok := l.lexOperator(r, from); ok {
			return tok
		}

		panic(errors.LexError{
			Kind: errors.UnexpectedCharacter,
			Text: string(r),
			Pos:  from,
		})
	}
}
