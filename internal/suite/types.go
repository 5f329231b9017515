package suite

// Worksheet is a YAML-defined batch of expressions to check in one run:
// regression fixtures, homework sets, sanity checks for a deployment.
type Worksheet struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Version     string  `yaml:"version"`
	Entries     []Entry `yaml:"entries"`
}

// Entry is a single expression with an optional assignment and optional
// expectations. Without expectations the entry is informational only.
type Entry struct {
	ID          string          `yaml:"id"`
	Description string          `yaml:"description,omitempty"`
	Expression  string          `yaml:"expression"`
	Assignment  map[string]bool `yaml:"assignment,omitempty"`
	Expect      *Expect         `yaml:"expect,omitempty"`
}

// Expect declares what the run should observe for an entry. All set
// fields must hold for the entry to pass.
type Expect struct {
	// Result is the expected evaluation under the entry's assignment.
	Result *bool `yaml:"result,omitempty"`

	// Variables is the expected sorted variable set of the expression.
	Variables []string `yaml:"variables,omitempty"`

	// Tautology / Contradiction assert the expression's value over its
	// whole truth table (checked by enumeration).
	Tautology     *bool `yaml:"tautology,omitempty"`
	Contradiction *bool `yaml:"contradiction,omitempty"`
}
