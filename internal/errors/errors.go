// Package errors formats parse, static (resolve), and runtime diagnostics
// in the exact shapes spec.md §6 mandates. The parser, resolver, and
// interp report through it, mirroring the teacher's internal/errors being
// the one formatter cmd/dwscript consumes. The lexer does not: it records
// its own lexer.LexError values, which cmd/golox renders directly.
package errors

import (
	"fmt"

	"github.com/cwbudde/go-lox/internal/lexer"
)

// CompilerError is a lexical, parse, or static diagnostic: a message tied
// to a source line, plus enough context (end-of-file vs. a specific
// lexeme) to render spec.md's "<context>" clause.
type CompilerError struct {
	Line    int
	AtEnd   bool
	Lexeme  string
	Message string
}

// NewAtToken builds a CompilerError whose context is derived from the
// offending token: " at end" for EOF, " at '<lexeme>'" otherwise.
func NewAtToken(tok lexer.Token, message string) *CompilerError {
	return &CompilerError{
		Line:    tok.Pos.Line,
		AtEnd:   tok.Type == lexer.EOF,
		Lexeme:  tok.Lexeme,
		Message: message,
	}
}

// NewAtLine builds a CompilerError with no token context, carrying only a
// line.
func NewAtLine(line int, message string) *CompilerError {
	return &CompilerError{Line: line, Message: message}
}

// Error implements the error interface and is also the exact line printed
// to standard error: `[line N] Error<context>: <message>`.
func (e *CompilerError) Error() string {
	context := ""
	if e.AtEnd {
		context = " at end"
	} else if e.Lexeme != "" {
		context = fmt.Sprintf(" at '%s'", e.Lexeme)
	}
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, context, e.Message)
}

// RuntimeError is a runtime diagnostic: the message on one line followed
// by `[line N]` on the next (spec.md §6).
type RuntimeError struct {
	Line    int
	Message string
}

// NewRuntimeError builds a RuntimeError reported at the given token's line.
func NewRuntimeError(tok lexer.Token, message string) *RuntimeError {
	return &RuntimeError{Line: tok.Pos.Line, Message: message}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}
