package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greek-cheese/casio-logic-calculator/internal/eval"
)

var rootCmd = &cobra.Command{
	Use:   "logicc",
	Short: "Propositional logic calculator",
	Long: `logicc compiles propositional-logic expressions into a syntax tree
and evaluates them or enumerates their truth table.

Operators (tightest first): NOT, AND, XOR, OR, IMP, IFF.
Operands: TRUE, FALSE and single-letter variables. Input is
case-insensitive; unassigned variables evaluate to false.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// parseAssignment turns repeated NAME=BOOL flags into an assignment.
// Names are upper-cased to match the lexer's normalization.
func parseAssignment(sets []string) (eval.Assignment, error) {
	if len(sets) == 0 {
		return nil, nil
	}

	assignment := make(eval.Assignment, len(sets))
	for _, s := range sets {
		name, raw, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q: expected NAME=BOOL", s)
		}
		value, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", s, err)
		}
		assignment[strings.ToUpper(strings.TrimSpace(name))] = value
	}
	return assignment, nil
}
