package token

import (
	"fmt"

	"github.com/greek-cheese/casio-logic-calculator/internal/operator"
)

type Kind int

const (
	Operand Kind = iota
	Operator
	Paren
)

func (k Kind) String() string {
	switch k {
	case Operand:
		return "OPERAND"
	case Operator:
		return "OPERATOR"
	case Paren:
		return "PARENTHESIS"
	default:
		return "UNKNOWN"
	}
}

// Token is a classified lexical unit. Operand tokens are either TRUE/FALSE
// literals or single-letter variable names; operator tokens carry the table
// entry they were matched against.
type Token struct {
	Kind    Kind
	Text    string // variable name, operator keyword, "(" or ")"
	Literal bool   // operand is a TRUE/FALSE literal rather than a variable
	Value   bool   // literal value, meaningful only when Literal is set
	Op      operator.Entry
	Pos     int // rune offset in the upper-cased input
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// IsOpenParen returns true for a "(" token.
func (t Token) IsOpenParen() bool {
	return t.Kind == Paren && t.Text == "("
}

// IsCloseParen returns true for a ")" token.
func (t Token) IsCloseParen() bool {
	return t.Kind == Paren && t.Text == ")"
}
