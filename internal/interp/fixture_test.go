package interp_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures runs every .lox program under testdata/fixtures through the
// full lex/parse/resolve/interpret pipeline and snapshots its observable
// output: the diagnostics of the first stage that reports errors, or else
// whatever `print` wrote, followed by the runtime error if one occurred. Grounded in the teacher's
// TestDWScriptFixtures (internal/interp/fixture_test.go), scaled down to
// this language's much smaller surface: one flat fixture directory instead
// of per-feature categories, since there is no pass/fail split to encode.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("../../testdata/fixtures/*.lox")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found")
	}

	for _, path := range files {
		name := strings.TrimSuffix(filepath.Base(path), ".lox")
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}

			output := runFixture(string(source))
			snaps.MatchSnapshot(t, output)
		})
	}
}

// runFixture mirrors the diagnostic rendering `cmd/golox run` performs: it
// stops at the first stage that reports a problem and renders every error
// of that stage in the same form the command prints, otherwise returns
// everything printed.
func runFixture(source string) string {
	lx := lexer.New(source)
	tokens, hadLexErr := lx.ScanTokens()
	if hadLexErr {
		var b strings.Builder
		for _, e := range lx.Errors() {
			fmt.Fprintf(&b, "[line %d] Error: %s\n", e.Pos.Line, e.Message)
		}
		return b.String()
	}

	p := parser.New(tokens)
	statements, hadErr := p.Parse()
	if hadErr {
		var b strings.Builder
		for _, e := range p.Errors() {
			fmt.Fprintln(&b, e.Error())
		}
		return b.String()
	}

	var out bytes.Buffer
	in := interp.New(&out)

	r := resolver.New(in)
	if r.Resolve(statements) {
		var b strings.Builder
		for _, e := range r.Errors() {
			fmt.Fprintln(&b, e.Error())
		}
		return b.String()
	}

	if err := in.Interpret(statements); err != nil {
		out.WriteString(err.Error())
		out.WriteString("\n")
	}

	return out.String()
}
