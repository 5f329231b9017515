package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/greek-cheese/casio-logic-calculator/internal/suite"
)

// WriteSuiteReport renders a worksheet run as a table, one line per
// entry, followed by a pass/fail summary.
func WriteSuiteReport(r *suite.Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Worksheet: %s (run %s) ===\n\n", r.Worksheet, r.RunID)

	header := []string{"ID", "Expression", "Vars", "Result", "Status", "Notes"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	passed := 0
	for _, res := range r.Results {
		status := "FAIL"
		if res.Passed {
			status = "OK"
			passed++
		}

		notes := strings.Join(res.Failures, "; ")
		result := bit(res.Result)
		if res.Err != "" {
			notes = res.Err
			result = "-"
		}

		row := []string{
			res.ID,
			res.Expression,
			strings.Join(res.Variables, ","),
			result,
			status,
			notes,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\n%d/%d entries passed\n", passed, len(r.Results))

	tw.Flush()
}
