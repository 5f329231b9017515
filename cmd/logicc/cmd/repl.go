package cmd

import (
	"github.com/spf13/cobra"

	"github.com/greek-cheese/casio-logic-calculator/internal/repl"
)

var replMaxVars int

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive calculator",
	Long: `Starts a read-eval loop. Enter an expression to evaluate it or, when
it contains variables, to print its truth table. H or HELP lists the
operators; Q, X, QUIT or EXIT leaves the loop.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.New(cmd.InOrStdin(), cmd.OutOrStdout(), replMaxVars).Run()
	},
}

func init() {
	replCmd.Flags().IntVar(&replMaxVars, "max-vars", 16, "refuse tables with more variables than this")
	rootCmd.AddCommand(replCmd)
}
