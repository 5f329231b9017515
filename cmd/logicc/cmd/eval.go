package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greek-cheese/casio-logic-calculator/internal/eval"
	"github.com/greek-cheese/casio-logic-calculator/internal/parser"
	"github.com/greek-cheese/casio-logic-calculator/internal/report"
)

var (
	evalSets     []string
	evalShowTree bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate an expression under a variable assignment",
	Example: `  logicc eval "TRUE AND FALSE"
  logicc eval "A AND B" --set A=true --set B=false
  logicc eval "NOT A OR B" --show-tree`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assignment, err := parseAssignment(evalSets)
		if err != nil {
			return err
		}

		node, err := parser.ParseString(args[0])
		if err != nil {
			return err
		}

		if evalShowTree {
			fmt.Fprintln(cmd.OutOrStdout(), node.String())
		}

		result, err := eval.Evaluate(node, assignment)
		if err != nil {
			return err
		}

		report.WriteResult(result, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	evalCmd.Flags().StringArrayVar(&evalSets, "set", nil, "variable assignment NAME=BOOL (repeatable)")
	evalCmd.Flags().BoolVar(&evalShowTree, "show-tree", false, "print the parsed expression tree")
	rootCmd.AddCommand(evalCmd)
}
