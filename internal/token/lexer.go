package token

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/greek-cheese/casio-logic-calculator/internal/operator"
)

// ScanError reports a character the lexer cannot classify.
type ScanError struct {
	Char rune
	Pos  int
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("unknown character %q at position %d", e.Char, e.Pos)
}

// Lexer turns a propositional-logic expression into a token sequence.
// Input is case-insensitive; it is upper-cased before scanning, so token
// positions refer to the normalized text.
type Lexer struct {
	input []rune
	pos   int
}

func NewLexer() *Lexer {
	return &Lexer{}
}

// Tokenize scans the input left to right. Keywords are matched longest
// first (TRUE/FALSE before operators, operators in table order); any other
// letter becomes a single-character variable. Consecutive letters that do
// not form a keyword lex one at a time, so "AB" is the two variables A and
// B, never a two-letter identifier.
func (l *Lexer) Tokenize(input string) ([]Token, error) {
	l.input = []rune(strings.ToUpper(input))
	l.pos = 0

	var tokens []Token

	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case unicode.IsSpace(ch):
			l.pos++
		case ch == '(' || ch == ')':
			tokens = append(tokens, Token{Kind: Paren, Text: string(ch), Pos: l.pos})
			l.pos++
		case l.hasPrefix("TRUE"):
			tokens = append(tokens, Token{Kind: Operand, Text: "TRUE", Literal: true, Value: true, Pos: l.pos})
			l.pos += len("TRUE")
		case l.hasPrefix("FALSE"):
			tokens = append(tokens, Token{Kind: Operand, Text: "FALSE", Literal: true, Value: false, Pos: l.pos})
			l.pos += len("FALSE")
		default:
			if tok, ok := l.scanOperator(); ok {
				tokens = append(tokens, tok)
				continue
			}
			if unicode.IsLetter(ch) {
				tokens = append(tokens, Token{Kind: Operand, Text: string(ch), Pos: l.pos})
				l.pos++
				continue
			}
			return nil, &ScanError{Char: ch, Pos: l.pos}
		}
	}

	return tokens, nil
}

func (l *Lexer) scanOperator() (Token, bool) {
	for _, e := range operator.Table() {
		if l.hasPrefix(e.Symbol) {
			tok := Token{Kind: Operator, Text: e.Symbol, Op: e, Pos: l.pos}
			l.pos += len(e.Symbol)
			return tok, true
		}
	}
	return Token{}, false
}

func (l *Lexer) hasPrefix(s string) bool {
	if l.pos+len(s) > len(l.input) {
		return false
	}
	return string(l.input[l.pos:l.pos+len(s)]) == s
}
