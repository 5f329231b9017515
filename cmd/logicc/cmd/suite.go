package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greek-cheese/casio-logic-calculator/internal/report"
	"github.com/greek-cheese/casio-logic-calculator/internal/suite"
)

var suiteJSON bool

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Work with expression worksheets",
}

var suiteRunCmd = &cobra.Command{
	Use:   "run <worksheet.yaml>",
	Short: "Run every entry of a worksheet and report the results",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := suite.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		rep := suite.Run(ws)

		if suiteJSON {
			data, err := json.MarshalIndent(rep, "", "  ")
			if err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		} else {
			report.WriteSuiteReport(rep, cmd.OutOrStdout())
		}

		if !rep.Passed() {
			return fmt.Errorf("worksheet %q has failing entries", ws.Name)
		}
		return nil
	},
}

func init() {
	suiteRunCmd.Flags().BoolVar(&suiteJSON, "json", false, "print the report as JSON")
	suiteCmd.AddCommand(suiteRunCmd)
	rootCmd.AddCommand(suiteCmd)
}
