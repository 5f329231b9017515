package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/greek-cheese/casio-logic-calculator/internal/truth"
)

// WriteTruthTable renders a truth table in the standard layout: one
// column per variable plus RESULT, values printed as 1/0.
func WriteTruthTable(t *truth.Table, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := make([]string, 0, len(t.Variables)+1)
	header = append(header, t.Variables...)
	header = append(header, "RESULT")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, row := range t.Rows {
		cells := make([]string, 0, len(row.Values)+1)
		for _, v := range row.Values {
			cells = append(cells, bit(v))
		}
		cells = append(cells, bit(row.Result))
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	tw.Flush()
}

// WriteResult renders the single result of a constant expression.
func WriteResult(result bool, w io.Writer) {
	fmt.Fprintf(w, "Result: %s\n", bit(result))
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
