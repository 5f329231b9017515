package suite

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/greek-cheese/casio-logic-calculator/internal/eval"
	"github.com/greek-cheese/casio-logic-calculator/internal/parser"
	"github.com/greek-cheese/casio-logic-calculator/internal/truth"
)

// Report is the outcome of running a worksheet once.
type Report struct {
	RunID     uuid.UUID
	Worksheet string
	Results   []Result
}

// Result is the outcome for one entry. Err is set when the expression
// failed to compile or enumerate; Passed reflects the entry's
// expectations and is true for entries that declare none.
type Result struct {
	ID         string
	Expression string
	Tree       string
	Variables  []string
	Result     bool
	Err        string
	Passed     bool
	Failures   []string
}

// Passed reports whether every entry passed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Run evaluates every entry of the worksheet independently. Entries are
// isolated: a scan or parse failure in one is recorded in its result and
// the run continues.
func Run(ws *Worksheet) *Report {
	report := &Report{
		RunID:     uuid.New(),
		Worksheet: ws.Name,
		Results:   make([]Result, 0, len(ws.Entries)),
	}

	for _, entry := range ws.Entries {
		report.Results = append(report.Results, runEntry(entry))
	}

	return report
}

func runEntry(entry Entry) Result {
	res := Result{
		ID:         entry.ID,
		Expression: entry.Expression,
	}

	node, err := parser.ParseString(entry.Expression)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Tree = node.String()
	res.Variables = eval.Variables(node)

	value, err := eval.Evaluate(node, entry.Assignment)
	if err != nil {
		res.Err = err.Error()
		return res
	}
	res.Result = value
	res.Passed = true

	if entry.Expect == nil {
		return res
	}

	if want := entry.Expect.Result; want != nil && value != *want {
		res.fail(fmt.Sprintf("result: expected %v, got %v", *want, value))
	}
	if want := entry.Expect.Variables; want != nil && !slices.Equal(res.Variables, want) {
		res.fail(fmt.Sprintf("variables: expected %v, got %v", want, res.Variables))
	}

	if entry.Expect.Tautology != nil || entry.Expect.Contradiction != nil {
		table, err := truth.Enumerate(node, res.Variables)
		if err != nil {
			res.Err = err.Error()
			res.Passed = false
			return res
		}

		allTrue, allFalse := true, true
		for _, row := range table.Rows {
			if row.Result {
				allFalse = false
			} else {
				allTrue = false
			}
		}
		// constant expressions have no rows; their single value decides
		if len(table.Rows) == 0 {
			allTrue = value
			allFalse = !value
		}

		if want := entry.Expect.Tautology; want != nil && allTrue != *want {
			res.fail(fmt.Sprintf("tautology: expected %v, got %v", *want, allTrue))
		}
		if want := entry.Expect.Contradiction; want != nil && allFalse != *want {
			res.fail(fmt.Sprintf("contradiction: expected %v, got %v", *want, allFalse))
		}
	}

	return res
}

func (r *Result) fail(msg string) {
	r.Passed = false
	r.Failures = append(r.Failures, msg)
}
