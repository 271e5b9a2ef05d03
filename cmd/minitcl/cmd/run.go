package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/minitcl/pkg/tcl"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a minitcl script",
	Long: `Execute a minitcl program from a file or inline expression.

Examples:
  # Run a script file
  minitcl run script.tcl

  # Evaluate inline code
  minitcl run -e "subst hello"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	interp := tcl.New()
	interp.SetSourceName(filename)

	f, result := interp.Eval(input)
	if f != tcl.Normal {
		if diagErr := interp.LastError(); diagErr != nil {
			fmt.Fprintln(os.Stderr, diagErr.Format(true))
		}
		return fmt.Errorf("evaluation failed: flow %s", f)
	}

	if result != "" {
		fmt.Println(result)
	}
	return nil
}

// readSource resolves an input script from either the -e flag or a
// single file argument; there is no REPL mode, so one of these two
// must be supplied.
func readSource(evalExpr string, args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
