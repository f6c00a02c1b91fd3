package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Language source file or expression",
	Long: `Execute a program from a file or inline expression.

With no file and no -e flag, starts an interactive REPL that preserves
its global environment across lines. Each line runs as a program; the
value of an expression statement is not printed.

Examples:
  golox run script.lox
  golox run -e "print 1 + 2;"
  golox run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline code instead of reading from a file")
}

func runRun(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args, evalExpr)
	if err != nil {
		return newExitCodeError(64)
	}
	if filename == "" {
		runREPL()
		return nil
	}

	in := interp.New(os.Stdout)
	if code := interpretSource(in, source); code != 0 {
		return newExitCodeError(code)
	}
	return nil
}

// interpretSource runs source through the full lex/parse/resolve/interpret
// pipeline against an existing Interpreter, printing diagnostics to stderr
// and returning spec.md §6's exit code for whichever stage failed (0 if
// none did).
func interpretSource(in *interp.Interpreter, source string) int {
	lx := lexer.New(source)
	tokens, hadLexErr := lx.ScanTokens()
	if hadLexErr {
		for _, e := range lx.Errors() {
			fmt.Fprintf(os.Stderr, "[line %d] Error: %s\n", e.Pos.Line, e.Message)
		}
		return 65
	}

	p := parser.New(tokens)
	statements, hadParseErr := p.Parse()
	if hadParseErr {
		for _, e := range p.Errors() {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return 65
	}

	r := resolver.New(in)
	if r.Resolve(statements) {
		for _, e := range r.Errors() {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return 65
	}

	if err := in.Interpret(statements); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 70
	}
	return 0
}

// runREPL reads lines from stdin, interpreting each against the same
// Interpreter (and therefore the same global environment) until EOF or a
// read error, per spec.md §6's REPL contract.
func runREPL() {
	in := interp.New(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Fprint(os.Stdout, "> ")
	for scanner.Scan() {
		line := scanner.Text()
		interpretSource(in, line)
		fmt.Fprint(os.Stdout, "> ")
	}
	fmt.Fprintln(os.Stdout)
}
