package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Language source file and print the resulting tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from a file")
}

func runLex(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args, evalExpr)
	if err != nil {
		return newExitCodeError(64)
	}
	if filename == "" {
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	lx := lexer.New(source)
	tokens, hadLexErr := lx.ScanTokens()
	for _, tok := range tokens {
		fmt.Printf("%-14s %-12q @%d\n", tok.Type, tok.Lexeme, tok.Pos.Line)
	}

	if hadLexErr {
		errs := lx.Errors()
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", e.Pos.Line, e.Message)
		}
		return newExitCodeError(65)
	}
	return nil
}
