package main

import (
	"fmt"
	"os"

	"github.com/greek-cheese/casio-logic-calculator/cmd/logicc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
