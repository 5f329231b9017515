package operator

import "fmt"

// Fixity describes where an operator sits relative to its operands and,
// for infix operators, which way equal-precedence chains group.
type Fixity int

const (
	// PrefixUnary operators take a single operand to their right.
	PrefixUnary Fixity = iota

	// InfixLeft operators are binary and group left-to-right when chained.
	InfixLeft

	// InfixRight operators are binary and group right-to-left. No built-in
	// operator uses it today; the parser supports it so adding one is a
	// table change only.
	InfixRight
)

func (f Fixity) String() string {
	switch f {
	case PrefixUnary:
		return "prefix"
	case InfixLeft:
		return "infix-left"
	case InfixRight:
		return "infix-right"
	default:
		return "unknown"
	}
}

// Entry binds an operator keyword to its precedence, fixity and truth
// function. Exactly one of Unary/Binary is set, matching the fixity.
type Entry struct {
	Symbol     string
	Precedence int // smaller binds tighter
	Fixity     Fixity
	Unary      func(a bool) bool
	Binary     func(a, b bool) bool
}

// IsUnary returns true if the entry is a prefix unary operator.
func (e Entry) IsUnary() bool {
	return e.Fixity == PrefixUnary
}

// table order matters: the lexer tries keywords front to back.
var table = []Entry{
	{Symbol: "NOT", Precedence: 1, Fixity: PrefixUnary, Unary: func(a bool) bool { return !a }},
	{Symbol: "AND", Precedence: 2, Fixity: InfixLeft, Binary: func(a, b bool) bool { return a && b }},
	{Symbol: "XOR", Precedence: 3, Fixity: InfixLeft, Binary: func(a, b bool) bool { return a != b }},
	{Symbol: "OR", Precedence: 4, Fixity: InfixLeft, Binary: func(a, b bool) bool { return a || b }},
	{Symbol: "IMP", Precedence: 5, Fixity: InfixLeft, Binary: func(a, b bool) bool { return !a || b }},
	{Symbol: "IFF", Precedence: 6, Fixity: InfixLeft, Binary: func(a, b bool) bool { return a == b }},
}

var bySymbol = func() map[string]Entry {
	m := make(map[string]Entry, len(table))
	for _, e := range table {
		m[e.Symbol] = e
	}
	return m
}()

// Table returns the operator entries in lexing order. Callers must not
// modify the returned slice.
func Table() []Entry {
	return table
}

// Lookup returns the entry registered for the given keyword.
func Lookup(symbol string) (Entry, bool) {
	e, ok := bySymbol[symbol]
	return e, ok
}

// LoosestPrecedence returns the largest precedence number in the table,
// the one that binds least tightly.
func LoosestPrecedence() int {
	loosest := 0
	for _, e := range table {
		if e.Precedence > loosest {
			loosest = e.Precedence
		}
	}
	return loosest
}

// Symbols returns the recognized operator keywords in table order,
// suitable for help and usage text.
func Symbols() []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.Symbol
	}
	return out
}

// Validate checks the internal consistency of an entry: a prefix operator
// must carry a unary function, an infix one a binary function.
func (e Entry) Validate() error {
	switch e.Fixity {
	case PrefixUnary:
		if e.Unary == nil {
			return fmt.Errorf("operator %s: prefix entry without unary function", e.Symbol)
		}
	case InfixLeft, InfixRight:
		if e.Binary == nil {
			return fmt.Errorf("operator %s: infix entry without binary function", e.Symbol)
		}
	default:
		return fmt.Errorf("operator %s: unknown fixity %d", e.Symbol, e.Fixity)
	}
	return nil
}
