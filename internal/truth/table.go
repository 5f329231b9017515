package truth

import (
	"fmt"

	"github.com/greek-cheese/casio-logic-calculator/internal/ast"
	"github.com/greek-cheese/casio-logic-calculator/internal/eval"
)

// MaxVariables is a hard cap on enumeration size. Callers exposing
// enumeration to users should enforce their own, lower bound; this one
// only keeps 1<<n well-defined and the table allocatable.
const MaxVariables = 30

// Row is one line of a truth table: the variable values in table order
// plus the expression's result under that assignment.
type Row struct {
	Values []bool
	Result bool
}

// Table is the complete enumeration of an expression over its variables.
type Table struct {
	Variables []string
	Rows      []Row
}

// Enumerate produces all 2^n assignments for the given variable ordering
// in ascending binary-counter order: the first variable varies slowest,
// the last fastest. An empty variable list yields a table with no rows;
// callers handle the constant-expression case by evaluating once.
func Enumerate(n *ast.Node, vars []string) (*Table, error) {
	t := &Table{Variables: vars}
	if len(vars) == 0 {
		return t, nil
	}
	if len(vars) > MaxVariables {
		return nil, fmt.Errorf("too many variables to enumerate: %d (max %d)", len(vars), MaxVariables)
	}

	count := 1 << len(vars)
	t.Rows = make([]Row, 0, count)

	for i := 0; i < count; i++ {
		values := make([]bool, len(vars))
		assignment := make(eval.Assignment, len(vars))
		for j, name := range vars {
			values[j] = (i>>(len(vars)-1-j))&1 == 1
			assignment[name] = values[j]
		}
		result, err := eval.Evaluate(n, assignment)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, Row{Values: values, Result: result})
	}

	return t, nil
}

// Assignment returns the name→value mapping of row i under the table's
// variable ordering.
func (t *Table) Assignment(i int) eval.Assignment {
	row := t.Rows[i]
	m := make(eval.Assignment, len(t.Variables))
	for j, name := range t.Variables {
		m[name] = row.Values[j]
	}
	return m
}
