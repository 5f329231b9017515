package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greek-cheese/casio-logic-calculator/internal/eval"
	"github.com/greek-cheese/casio-logic-calculator/internal/parser"
	"github.com/greek-cheese/casio-logic-calculator/internal/report"
	"github.com/greek-cheese/casio-logic-calculator/internal/truth"
)

var tableMaxVars int

var tableCmd = &cobra.Command{
	Use:   "table <expression>",
	Short: "Print the full truth table of an expression",
	Example: `  logicc table "A AND B"
  logicc table "(A XOR B) IFF C"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		node, err := parser.ParseString(args[0])
		if err != nil {
			return err
		}

		vars := eval.Variables(node)
		if len(vars) == 0 {
			result, err := eval.Evaluate(node, nil)
			if err != nil {
				return err
			}
			report.WriteResult(result, cmd.OutOrStdout())
			return nil
		}

		if tableMaxVars > 0 && len(vars) > tableMaxVars {
			return fmt.Errorf("expression has %d variables, limit is %d (raise with --max-vars)", len(vars), tableMaxVars)
		}

		table, err := truth.Enumerate(node, vars)
		if err != nil {
			return err
		}

		report.WriteTruthTable(table, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	tableCmd.Flags().IntVar(&tableMaxVars, "max-vars", 16, "refuse tables with more variables than this (0 disables the check)")
	rootCmd.AddCommand(tableCmd)
}
