package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Language source file and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from a file")
}

func runParse(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args, evalExpr)
	if err != nil {
		return newExitCodeError(64)
	}
	if filename == "" {
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	lx := lexer.New(source)
	tokens, hadLexErr := lx.ScanTokens()
	if hadLexErr {
		for _, e := range lx.Errors() {
			fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", e.Pos.Line, e.Message)
		}
		return newExitCodeError(65)
	}

	p := parser.New(tokens)
	statements, hadErr := p.Parse()
	if hadErr {
		for _, e := range p.Errors() {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return newExitCodeError(65)
	}

	for _, stmt := range statements {
		fmt.Println(stmt.String())
	}
	return nil
}
