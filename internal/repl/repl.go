package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/greek-cheese/casio-logic-calculator/internal/eval"
	"github.com/greek-cheese/casio-logic-calculator/internal/operator"
	"github.com/greek-cheese/casio-logic-calculator/internal/parser"
	"github.com/greek-cheese/casio-logic-calculator/internal/report"
	"github.com/greek-cheese/casio-logic-calculator/internal/truth"
)

const prompt = "Prop Exp? "

// REPL is the interactive read-eval loop. Expressions with variables get
// their full truth table; constant expressions a single result. Errors
// are printed and the loop continues.
type REPL struct {
	in           io.Reader
	out          io.Writer
	maxVariables int
}

// New builds a REPL over the given streams. maxVariables bounds truth
// tables; values outside 1..truth.MaxVariables fall back to the cap.
func New(in io.Reader, out io.Writer, maxVariables int) *REPL {
	if maxVariables <= 0 || maxVariables > truth.MaxVariables {
		maxVariables = truth.MaxVariables
	}
	return &REPL{
		in:           in,
		out:          out,
		maxVariables: maxVariables,
	}
}

// Run loops until a quit command or end of input. Q, X, QUIT and EXIT
// quit; H and HELP list the operator keywords.
func (r *REPL) Run() error {
	scanner := bufio.NewScanner(r.in)

	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}

		line := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		switch line {
		case "":
			continue
		case "Q", "X", "QUIT", "EXIT":
			return nil
		case "H", "HELP":
			fmt.Fprintln(r.out, strings.Join(operator.Symbols(), "; ")+";")
			continue
		}

		if err := r.handle(line); err != nil {
			fmt.Fprintf(r.out, "Err: %v\n", err)
		}
	}
}

func (r *REPL) handle(line string) error {
	node, err := parser.ParseString(line)
	if err != nil {
		return err
	}

	vars := eval.Variables(node)
	if len(vars) == 0 {
		result, err := eval.Evaluate(node, nil)
		if err != nil {
			return err
		}
		report.WriteResult(result, r.out)
		return nil
	}

	if len(vars) > r.maxVariables {
		return fmt.Errorf("expression has %d variables, limit is %d", len(vars), r.maxVariables)
	}

	table, err := truth.Enumerate(node, vars)
	if err != nil {
		return err
	}
	report.WriteTruthTable(table, r.out)
	return nil
}
