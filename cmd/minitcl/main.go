// Command minitcl is the command-line front end for the minitcl
// interpreter: a tokenizer, a substitution engine, an evaluator, and a
// small set of built-in commands for variable binding, control flow,
// user procedures, and integer arithmetic.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/minitcl/cmd/minitcl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
