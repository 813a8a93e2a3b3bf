package parser

import (
	"strconv"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/tawascript/ast"
	"github.com/pontaoski/tawascript/errors"
	"github.com/pontaoski/tawascript/lexer"
	"github.com/pontaoski/tawascript/runtime"
	"github.com/pontaoski/tawascript/types"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawascript", "parser")

// TokenStream yields tokens one at a time. *lexer.Lexer satisfies it.
type TokenStream interface {
	Lex() types.Token
	Peek() types.Token
}

type sliceStream struct {
	tokens []types.Token
	pos    int
}

func (s *sliceStream) Peek() types.Token {
	if s.pos >= len(s.tokens) {
		var at types.Position
		if len(s.tokens) > 0 {
			at = s.tokens[len(s.tokens)-1].Pos
		}
		return types.Token{Kind: types.EOF, Pos: at}
	}
	return s.tokens[s.pos]
}

func (s *sliceStream) Lex() types.Token {
	tok := s.Peek()
	if s.pos < len(s.tokens) {
		s.pos++
	}
	return tok
}

type Parser struct {
	l      TokenStream
	unread *types.Token
}

func NewParser(l TokenStream) *Parser {
	return &Parser{l: l}
}

// Parse parses an already tokenized program.
func Parse(tokens []types.Token) (ast.Block, error) {
	return NewParser(&sliceStream{tokens: tokens}).Parse()
}

// ParseSource lexes and parses source in one pass.
func ParseSource(source string) (ast.Block, error) {
	return NewParser(lexer.NewLexer(strings.NewReader(source))).Parse()
}

// Parse consumes the whole stream and returns the program as a root block.
func (p *Parser) Parse() (block ast.Block, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(errors.LangError)
			if !ok {
				panic(r)
			}
			block = ast.Block{}
			err = tracerr.Wrap(rerr)
		}
	}()

	block.Pos = p.peek().Pos
	for {
		if p.PeekIs(types.EOF) {
			break
		}
		if p.PeekIs(types.PUNCTUATION, ";") {
			p.lex()
			continue
		}
		block.Statements = append(block.Statements, p.parseStatement())
	}

	plog.Debugf("parsed %d top-level statements", len(block.Statements))
	return block, nil
}

func (p *Parser) peek() types.Token {
	if p.unread != nil {
		return *p.unread
	}
	return p.l.Peek()
}

func (p *Parser) lex() types.Token {
	if p.unread != nil {
		defer func() { p.unread = nil }()
		return *p.unread
	}
	return p.l.Lex()
}

// backup pushes tok back so the next peek or lex returns it again. Only one
// token may be pushed back at a time.
func (p *Parser) backup(tok types.Token) {
	if p.unread != nil {
		panic("parser: double backup")
	}
	p.unread = &tok
}

func (p *Parser) PeekIs(kind types.TokenKind, texts ...string) bool {
	return p.peek().Is(kind, texts...)
}

func (p *Parser) LexExpecting(kind types.TokenKind, texts ...string) types.Token {
	tok := p.lex()
	if tok.Is(kind, texts...) {
		return tok
	}

	panic(errors.UnexpectedToken{
		Expected: describe(kind, texts),
		Found:    tok,
		Pos:      tok.Pos,
	})
}

func describe(kind types.TokenKind, texts []string) []string {
	if len(texts) == 0 {
		return []string{kind.String()}
	}
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = strconv.Quote(text)
	}
	return out
}

func (p *Parser) parseStatement() ast.Statement {
	tok := p.peek()

	switch {
	case tok.Is(types.PUNCTUATION, "{"):
		return p.parseBlock()
	case tok.Is(types.KEYWORD, "IF"):
		return p.parseIf()
	case tok.Is(types.KEYWORD, "WHILE"):
		return p.parseWhile()
	case tok.Is(types.KEYWORD, "FOR"):
		return p.parseFor()
	case tok.Is(types.IDENTIFIER):
		ident := p.lex()
		if p.PeekIs(types.OPERATOR, "=") {
			p.lex()
			return ast.Assignment{
				Name:  ident.Text,
				Value: p.parseExpression(),
				Pos:   ident.Pos,
			}
		}
		p.backup(ident)
	}

	return ast.ExpressionStatement{Expression: p.parseExpression()}
}

func (p *Parser) parseBlock() ast.Block {
	open := p.LexExpecting(types.PUNCTUATION, "{")
	block := ast.Block{Pos: open.Pos}

	for {
		tok := p.peek()
		switch {
		case tok.Is(types.PUNCTUATION, "}"):
			p.lex()
			return block
		case tok.Is(types.EOF):
			panic(errors.UnterminatedBlock{
				Open: open.Pos,
				Pos:  tok.Pos,
			})
		case tok.Is(types.PUNCTUATION, ";"):
			p.lex()
			continue
		}

		block.Statements = append(block.Statements, p.parseStatement())
	}
}

func (p *Parser) parseIf() ast.Statement {
	kw := p.LexExpecting(types.KEYWORD, "IF")
	stmt := ast.If{
		Condition: p.parseExpression(),
		Pos:       kw.Pos,
	}
	stmt.Then = p.parseBlock()

	if p.PeekIs(types.KEYWORD, "ELSE") {
		p.lex()
		var elseBlock ast.Block
		if p.PeekIs(types.KEYWORD, "IF") {
			nested := p.parseIf()
			elseBlock = ast.Block{
				Statements: []ast.Statement{nested},
				Pos:        nested.Position(),
			}
		} else {
			elseBlock = p.parseBlock()
		}
		stmt.Else = &elseBlock
	}

	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	kw := p.LexExpecting(types.KEYWORD, "WHILE")
	cond := p.parseExpression()
	return ast.While{
		Condition: cond,
		Body:      p.parseBlock(),
		Pos:       kw.Pos,
	}
}

func (p *Parser) parseFor() ast.Statement {
	kw := p.LexExpecting(types.KEYWORD, "FOR")
	name := p.LexExpecting(types.IDENTIFIER)
	p.LexExpecting(types.KEYWORD, "FROM")
	start := p.parseExpression()
	p.LexExpecting(types.KEYWORD, "TO")
	end := p.parseExpression()

	return ast.For{
		Var:   name.Text,
		Start: start,
		End:   end,
		Body:  p.parseBlock(),
		Pos:   kw.Pos,
	}
}

func (p *Parser) parseExpression() ast.Expression {
	return p.parseComparison()
}

func (p *Parser) parseComparison() ast.Expression {
	expr := p.parseAdditive()
	for p.PeekIs(types.OPERATOR, "<", ">", "==", "!=", "<=", ">=") {
		op := p.lex()
		expr = ast.BinaryOp{
			Op:    op.Text,
			Left:  expr,
			Right: p.parseAdditive(),
			Pos:   op.Pos,
		}
	}
	return expr
}

func (p *Parser) parseAdditive() ast.Expression {
	expr := p.parseMultiplicative()
	for p.PeekIs(types.OPERATOR, "+", "-") {
		op := p.lex()
		expr = ast.BinaryOp{
			Op:    op.Text,
			Left:  expr,
			Right: p.parseMultiplicative(),
			Pos:   op.Pos,
		}
	}
	return expr
}

func (p *Parser) parseMultiplicative() ast.Expression {
	expr := p.parseUnary()
	for p.PeekIs(types.OPERATOR, "*", "/") {
		op := p.lex()
		expr = ast.BinaryOp{
			Op:    op.Text,
			Left:  expr,
			Right: p.parseUnary(),
			Pos:   op.Pos,
		}
	}
	return expr
}

func (p *Parser) parseUnary() ast.Expression {
	if p.PeekIs(types.OPERATOR, "-") {
		op := p.lex()
		return ast.UnaryOp{
			Op:      op.Text,
			Operand: p.parseUnary(),
			Pos:     op.Pos,
		}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for p.PeekIs(types.PUNCTUATION, "[") {
		open := p.lex()
		index := p.parseExpression()
		p.LexExpecting(types.PUNCTUATION, "]")
		expr = ast.Index{
			Collection: expr,
			Index:      index,
			Pos:        open.Pos,
		}
	}
	return expr
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.lex()

	switch {
	case tok.Is(types.NUMBER):
		parsed, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			panic(errors.LexError{Kind: errors.InvalidNumber, Text: tok.Text, Pos: tok.Pos})
		}
		return ast.Literal{Value: runtime.Number(parsed), Pos: tok.Pos}
	case tok.Is(types.STRING):
		return ast.Literal{Value: runtime.Str(tok.Text), Pos: tok.Pos}
	case tok.Is(types.KEYWORD, "TRUE", "FALSE"):
		return ast.Literal{Value: runtime.Bool(tok.Text == "TRUE"), Pos: tok.Pos}
	case tok.Is(types.KEYWORD, types.BuiltinNames...):
		return p.parseCall(tok)
	case tok.Is(types.IDENTIFIER):
		if p.PeekIs(types.PUNCTUATION, "(") {
			return p.parseCall(tok)
		}
		return ast.Identifier{Name: tok.Text, Pos: tok.Pos}
	case tok.Is(types.PUNCTUATION, "("):
		return p.parseParenthesized(tok)
	case tok.Is(types.PUNCTUATION, "["):
		return ast.ArrayLiteral{
			Elements: p.parseList("]"),
			Pos:      tok.Pos,
		}
	}

	panic(errors.UnexpectedToken{
		Expected: []string{"expression"},
		Found:    tok,
		Pos:      tok.Pos,
	})
}

// parseCall is called with the function name already consumed.
func (p *Parser) parseCall(name types.Token) ast.Expression {
	p.LexExpecting(types.PUNCTUATION, "(")
	return ast.Call{
		Name:      name.Text,
		Arguments: p.parseList(")"),
		Pos:       name.Pos,
	}
}

// parseList parses comma separated expressions up to and including the
// closing punctuation. A trailing comma is allowed.
func (p *Parser) parseList(closing string) []ast.Expression {
	var exprs []ast.Expression

	for !p.PeekIs(types.PUNCTUATION, closing) {
		exprs = append(exprs, p.parseExpression())
		if p.PeekIs(types.PUNCTUATION, ",") {
			p.lex()
			continue
		}
		break
	}
	p.LexExpecting(types.PUNCTUATION, closing)

	return exprs
}

// parseParenthesized is called past the opening parenthesis. "(a)" groups,
// while "()", "(a,)" and "(a, b)" build tuples.
func (p *Parser) parseParenthesized(open types.Token) ast.Expression {
	if p.PeekIs(types.PUNCTUATION, ")") {
		p.lex()
		return ast.TupleLiteral{Pos: open.Pos}
	}

	first := p.parseExpression()
	if !p.PeekIs(types.PUNCTUATION, ",") {
		p.LexExpecting(types.PUNCTUATION, ")")
		return first
	}
	p.lex()

	rest := p.parseList(")")
	return ast.TupleLiteral{
		Elements: append([]ast.Expression{first}, rest...),
		Pos:      open.Pos,
	}
}
