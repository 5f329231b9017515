package eval

import (
	"fmt"

	"github.com/greek-cheese/casio-logic-calculator/internal/ast"
	"github.com/greek-cheese/casio-logic-calculator/internal/operator"
)

// Assignment maps variable names to truth values. Variables absent from
// the map evaluate to false.
type Assignment map[string]bool

// UnknownOperatorError means the tree references an operator the table
// does not know. The parser only emits table operators, so hitting this
// is an internal inconsistency, not bad user input.
type UnknownOperatorError struct {
	Symbol string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator %q in expression tree", e.Symbol)
}

// Evaluate computes the truth value of the tree under the given
// assignment. It is pure: neither the tree nor the assignment is
// modified, and evaluating twice yields the same result.
func Evaluate(n *ast.Node, vars Assignment) (bool, error) {
	switch {
	case n.IsLeaf():
		if n.Kind == ast.Const {
			return n.Value, nil
		}
		return vars[n.Name], nil
	case n.Right == nil:
		entry, ok := operator.Lookup(n.Name)
		if !ok || entry.Unary == nil {
			return false, &UnknownOperatorError{Symbol: n.Name}
		}
		v, err := Evaluate(n.Left, vars)
		if err != nil {
			return false, err
		}
		return entry.Unary(v), nil
	default:
		entry, ok := operator.Lookup(n.Name)
		if !ok || entry.Binary == nil {
			return false, &UnknownOperatorError{Symbol: n.Name}
		}
		left, err := Evaluate(n.Left, vars)
		if err != nil {
			return false, err
		}
		right, err := Evaluate(n.Right, vars)
		if err != nil {
			return false, err
		}
		return entry.Binary(left, right), nil
	}
}
