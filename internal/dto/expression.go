package dto

// EvaluateRequest asks for a single evaluation of an expression under an
// optional variable assignment. Variables absent from the assignment are
// treated as false.
type EvaluateRequest struct {
	Expression string          `json:"expression"`
	Assignment map[string]bool `json:"assignment,omitempty"`
}

type EvaluateResponse struct {
	Expression string   `json:"expression"`
	Result     bool     `json:"result"`
	Variables  []string `json:"variables"`
}

// TableRequest asks for the full truth table of an expression.
type TableRequest struct {
	Expression string `json:"expression"`
}

// TableRow is one truth-table line; results render as 1/0.
type TableRow struct {
	Assignment map[string]bool `json:"assignment"`
	Result     int             `json:"result"`
}

// TableResponse carries the enumerated table. For a constant expression
// (no variables) Rows is empty and Result holds the single evaluation.
type TableResponse struct {
	Expression string     `json:"expression"`
	Variables  []string   `json:"variables"`
	Rows       []TableRow `json:"rows,omitempty"`
	Result     *int       `json:"result,omitempty"`
}

// OperatorInfo describes one recognized operator keyword.
type OperatorInfo struct {
	Symbol     string `json:"symbol"`
	Precedence int    `json:"precedence"`
	Fixity     string `json:"fixity"`
}
