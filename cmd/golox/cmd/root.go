// Package cmd implements golox's command-line interface with Cobra,
// mirroring the teacher's cmd/dwscript/cmd layout: one root command, one
// file per subcommand, each registering itself via init().
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is the build version, overridable via -ldflags as the
	// teacher's cmd/dwscript/cmd does for its own Version variable.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "An interpreter for the Language",
	Long: `golox is a tree-walking interpreter for a small, dynamically-typed,
class-based scripting language: C-like expression syntax, first-class
functions and closures, and single-inheritance classes.`,
	Version: Version,
}

// exitCodeError carries the process exit code spec.md §6 assigns to a
// failure category (65 static, 70 runtime, 64 usage) past cobra's error
// handling, which otherwise always exits 1.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string { return "" }

func newExitCodeError(code int) error { return &exitCodeError{code: code} }

// Execute runs the root command and terminates the process with the exit
// code spec.md §6 mandates.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *exitCodeError
	if e, ok := err.(*exitCodeError); ok {
		exitErr = e
	}
	if exitErr != nil {
		os.Exit(exitErr.code)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(64)
}
