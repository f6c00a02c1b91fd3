package parser

import (
	"fmt"
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
)

func parse(t *testing.T, src string) ([]ast.Stmt, bool) {
	t.Helper()
	l := lexer.New(src)
	tokens, lexErr := l.ScanTokens()
	if lexErr {
		t.Fatalf("unexpected lex errors for %q: %v", src, l.Errors())
	}
	p := New(tokens)
	return p.Parse()
}

func TestParse_SimpleArithmetic(t *testing.T) {
	stmts, hadError := parse(t, "print 1 + 2 * 3;")
	if hadError {
		t.Fatalf("unexpected parse errors")
	}
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	if _, ok := stmts[0].(*ast.PrintStmt); !ok {
		t.Fatalf("expected PrintStmt, got %T", stmts[0])
	}
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts, hadError := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if hadError {
		t.Fatalf("unexpected parse errors")
	}
	block, ok := stmts[0].(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected desugared BlockStmt, got %T", stmts[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("expected [init, while], got %d statements", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.VarStmt); !ok {
		t.Errorf("expected first statement to be the initializer VarStmt, got %T", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected second statement to be WhileStmt, got %T", block.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.BlockStmt)
	if !ok || len(body.Statements) != 2 {
		t.Fatalf("expected while body to be [print, increment], got %#v", whileStmt.Body)
	}
}

func TestParse_ClassWithSuperclass(t *testing.T) {
	stmts, hadError := parse(t, "class B < A { init(x) { this.x = x; } }")
	if hadError {
		t.Fatalf("unexpected parse errors")
	}
	class, ok := stmts[0].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("expected ClassStmt, got %T", stmts[0])
	}
	if class.Superclass == nil || class.Superclass.Name.Lexeme != "A" {
		t.Errorf("expected superclass A, got %#v", class.Superclass)
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Lexeme != "init" {
		t.Errorf("expected one method named init, got %#v", class.Methods)
	}
}

func TestParse_InvalidAssignmentTargetIsRecordedNotThrown(t *testing.T) {
	stmts, hadError := parse(t, "1 + 2 = 3;")
	if !hadError {
		t.Fatal("expected a static error for an invalid assignment target")
	}
	// parsing continues and still yields a statement for the (unmodified) LHS
	if len(stmts) != 1 {
		t.Fatalf("expected parsing to continue and return 1 statement, got %d", len(stmts))
	}
}

func TestParse_255ParametersAccepted(t *testing.T) {
	params := ""
	for i := 0; i < 255; i++ {
		if i > 0 {
			params += ", "
		}
		params += fmt.Sprintf("p%d", i)
	}
	src := "fun f(" + params + ") { return 0; }"
	_, hadError := parse(t, src)
	if hadError {
		t.Fatal("255 parameters should be accepted without error")
	}
}

func TestParse_256ParametersReportsError(t *testing.T) {
	params := ""
	for i := 0; i < 256; i++ {
		if i > 0 {
			params += ", "
		}
		params += fmt.Sprintf("p%d", i)
	}
	src := "fun f(" + params + ") { return 0; }"
	stmts, hadError := parse(t, src)
	if !hadError {
		t.Fatal("256 parameters should report a static error")
	}
	// parsing still recovers and returns a usable AST
	if len(stmts) != 1 {
		t.Fatalf("expected recovery to still produce 1 statement, got %d", len(stmts))
	}
}

func TestParse_SynchronizesAfterError(t *testing.T) {
	stmts, hadError := parse(t, "var = 1; var b = 2;")
	if !hadError {
		t.Fatal("expected a parse error on the malformed first declaration")
	}
	found := false
	for _, s := range stmts {
		if v, ok := s.(*ast.VarStmt); ok && v.Name.Lexeme == "b" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected synchronization to recover and parse 'var b', got %#v", stmts)
	}
}

func TestParse_EmptyProgram(t *testing.T) {
	stmts, hadError := parse(t, "")
	if hadError {
		t.Fatal("empty program should not error")
	}
	if len(stmts) != 0 {
		t.Errorf("expected no statements, got %d", len(stmts))
	}
}
