package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/minitcl/internal/token"
	"github.com/spf13/cobra"
)

var (
	showPos    bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a minitcl script",
	Long: `Tokenize a minitcl program and print the resulting lexeme stream.

This command is useful for debugging the tokenizer and understanding
how source is split into CMD/WORD/PART/ERROR lexemes.

Examples:
  # Tokenize a script file
  minitcl lex script.tcl

  # Tokenize an inline expression
  minitcl lex -e "set x 1"

  # Show byte offsets
  minitcl lex --show-pos script.tcl

  # Show only lexical errors
  minitcl lex --only-errors script.tcl`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show byte offsets for each lexeme")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only ERROR lexemes")
}

func lexScript(cmd *cobra.Command, args []string) error {
	input, filename, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	buf := append([]byte(input), token.Sentinel)
	pos := 0
	quoted := false
	count := 0
	errCount := 0

	for {
		lex, q := token.Next(buf, pos, quoted)
		quoted = q

		if !onlyErrors || lex.Kind == token.ERROR {
			count++
			if lex.Kind == token.ERROR {
				errCount++
			}
			printLexeme(lex, buf)
		}

		pos = lex.End
		if lex.Kind == token.ERROR || pos >= len(buf) {
			break
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total lexemes: %d\n", count)
		if errCount > 0 {
			fmt.Printf("Errors: %d\n", errCount)
		}
	}

	if errCount > 0 {
		return fmt.Errorf("found %d lexical error(s)", errCount)
	}
	return nil
}

func printLexeme(lex token.Lexeme, buf []byte) {
	output := fmt.Sprintf("[%-5s]", lex.Kind)

	text := lex.Text(buf)
	switch lex.Kind {
	case token.ERROR:
		output += fmt.Sprintf(" error near %q", text)
	default:
		output += fmt.Sprintf(" %q", text)
	}

	if showPos {
		output += fmt.Sprintf(" @%d:%d", lex.Start, lex.End)
	}

	fmt.Fprintln(os.Stdout, output)
}
