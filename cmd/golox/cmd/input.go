package cmd

import (
	"fmt"
	"os"
)

// readSource resolves the source text a run/lex/parse command operates on:
// the -e/--eval flag's inline text, or the named file, but never both
// (mirrors the teacher's cmd/dwscript/cmd run/lex dispatch).
func readSource(args []string, eval string) (source, filename string, err error) {
	if eval != "" {
		return eval, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", nil
}
