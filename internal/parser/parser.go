package parser

import (
	"fmt"

	"github.com/greek-cheese/casio-logic-calculator/internal/ast"
	"github.com/greek-cheese/casio-logic-calculator/internal/operator"
	"github.com/greek-cheese/casio-logic-calculator/internal/token"
)

// ParseError reports a token stream that does not match the grammar.
type ParseError struct {
	Message string
	Pos     int
	Token   string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parse error: %s", e.Message)
	}
	return fmt.Sprintf("parse error at position %d: %s (near %q)", e.Pos, e.Message, e.Token)
}

// Parser builds an expression tree from a token sequence using
// precedence-climbing recursive descent. The token slice is never
// mutated; an explicit cursor tracks consumption.
type Parser struct {
	tokens []token.Token
	pos    int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseString tokenizes and parses an expression in one step.
func ParseString(input string) (*ast.Node, error) {
	tokens, err := token.NewLexer().Tokenize(input)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}

// Parse consumes the whole token sequence and returns the root node.
// Trailing tokens after a complete expression are an error.
func (p *Parser) Parse() (*ast.Node, error) {
	node, err := p.parseBinary(operator.LoosestPrecedence())
	if err != nil {
		return nil, err
	}
	if !p.done() {
		tok := p.peek()
		return nil, &ParseError{Message: "unexpected trailing token", Pos: tok.Pos, Token: tok.Text}
	}
	return node, nil
}

// parseBinary implements the climbing loop: smaller precedence numbers
// bind tighter, so it keeps folding infix operators whose precedence is
// <= maxPrec into the tree built so far. Left-associative operators parse
// their right side one level tighter, which makes equal-precedence chains
// group left-to-right.
func (p *Parser) parseBinary(maxPrec int) (*ast.Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for !p.done() {
		tok := p.peek()
		if tok.Kind != token.Operator || tok.Op.IsUnary() || tok.Op.Precedence > maxPrec {
			break
		}
		p.pos++

		next := tok.Op.Precedence
		if tok.Op.Fixity == operator.InfixLeft {
			next--
		}
		right, err := p.parseBinary(next)
		if err != nil {
			return nil, err
		}
		node = ast.NewBinary(tok.Text, node, right)
	}

	return node, nil
}

// parsePrimary parses a single operand: a literal, a variable, a
// parenthesized sub-expression or a prefix operator application.
func (p *Parser) parsePrimary() (*ast.Node, error) {
	if p.done() {
		return nil, &ParseError{Message: "unexpected end of expression"}
	}
	tok := p.tokens[p.pos]
	p.pos++

	switch {
	case tok.Kind == token.Operand && tok.Literal:
		return ast.NewConst(tok.Value), nil
	case tok.Kind == token.Operand:
		return ast.NewVar(tok.Text), nil
	case tok.IsOpenParen():
		node, err := p.parseBinary(operator.LoosestPrecedence())
		if err != nil {
			return nil, err
		}
		if p.done() || !p.peek().IsCloseParen() {
			return nil, &ParseError{Message: "missing closing parenthesis", Pos: tok.Pos, Token: tok.Text}
		}
		p.pos++
		return node, nil
	case tok.Kind == token.Operator && tok.Op.IsUnary():
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(tok.Text, operand), nil
	default:
		return nil, &ParseError{Message: "unexpected token", Pos: tok.Pos, Token: tok.Text}
	}
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) done() bool {
	return p.pos >= len(p.tokens)
}
