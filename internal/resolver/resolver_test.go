package resolver

import (
	"testing"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
)

// fakeSideTable records Resolve calls for assertions without depending on
// the interp package (keeping resolver tests decoupled from it, per the
// SideTable interface).
type fakeSideTable struct {
	depths map[ast.Expr]int
}

func newFakeSideTable() *fakeSideTable {
	return &fakeSideTable{depths: make(map[ast.Expr]int)}
}

func (f *fakeSideTable) Resolve(expr ast.Expr, depth int) {
	f.depths[expr] = depth
}

func parseStatements(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	l := lexer.New(src)
	tokens, _ := l.ScanTokens()
	p := parser.New(tokens)
	stmts, hadError := p.Parse()
	if hadError {
		t.Fatalf("unexpected parse errors for %q: %v", src, p.Errors())
	}
	return stmts
}

func TestResolver_BlockLocalDepth(t *testing.T) {
	src := `var a = "global"; { var a = "local"; print a; } print a;`
	stmts := parseStatements(t, src)
	table := newFakeSideTable()
	r := New(table)
	if r.Resolve(stmts) {
		t.Fatalf("unexpected resolver errors: %v", r.Errors())
	}

	block := stmts[1].(*ast.BlockStmt)
	printInner := block.Statements[1].(*ast.PrintStmt)
	innerVar := printInner.Expression.(*ast.Variable)
	if d, ok := table.depths[innerVar]; !ok || d != 0 {
		t.Errorf("expected inner 'a' to resolve at depth 0, got %d (ok=%v)", d, ok)
	}

	printOuter := stmts[2].(*ast.PrintStmt)
	outerVar := printOuter.Expression.(*ast.Variable)
	if _, ok := table.depths[outerVar]; ok {
		t.Errorf("expected outer 'a' (global) to have no recorded depth")
	}
}

func TestResolver_ReturnOutsideFunctionIsStaticError(t *testing.T) {
	stmts := parseStatements(t, "return 1;")
	r := New(newFakeSideTable())
	if !r.Resolve(stmts) {
		t.Fatal("expected a static error")
	}
	if len(r.Errors()) != 1 {
		t.Fatalf("expected exactly one error, got %v", r.Errors())
	}
	want := "Can't return from top-level code."
	if got := r.Errors()[0].Message; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolver_SelfInitializerReadIsStaticError(t *testing.T) {
	stmts := parseStatements(t, "var a = 1; { var a = a; }")
	r := New(newFakeSideTable())
	if !r.Resolve(stmts) {
		t.Fatal("expected a static error")
	}
	want := "Can't read local variable in its own initializer."
	found := false
	for _, e := range r.Errors() {
		if e.Message == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected error %q, got %v", want, r.Errors())
	}
}

func TestResolver_DuplicateLocalNameIsStaticError(t *testing.T) {
	stmts := parseStatements(t, "{ var a = 1; var a = 2; }")
	r := New(newFakeSideTable())
	if !r.Resolve(stmts) {
		t.Fatal("expected a static error")
	}
}

func TestResolver_DuplicateGlobalNameIsAllowed(t *testing.T) {
	stmts := parseStatements(t, "var a = 1; var a = 2;")
	r := New(newFakeSideTable())
	if r.Resolve(stmts) {
		t.Fatalf("redeclaring a global should be allowed, got errors: %v", r.Errors())
	}
}

func TestResolver_ClassInheritingFromItselfIsStaticError(t *testing.T) {
	stmts := parseStatements(t, "class A < A {}")
	r := New(newFakeSideTable())
	if !r.Resolve(stmts) {
		t.Fatal("expected a static error")
	}
	want := "A class can't inherit from itself."
	if got := r.Errors()[0].Message; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolver_ThisOutsideClassIsStaticError(t *testing.T) {
	stmts := parseStatements(t, "print this;")
	r := New(newFakeSideTable())
	if !r.Resolve(stmts) {
		t.Fatal("expected a static error")
	}
}

func TestResolver_SuperWithoutSuperclassIsStaticError(t *testing.T) {
	stmts := parseStatements(t, "class A { method() { super.method(); } }")
	r := New(newFakeSideTable())
	if !r.Resolve(stmts) {
		t.Fatal("expected a static error")
	}
}

func TestResolver_ReturnValueFromInitializerIsStaticError(t *testing.T) {
	stmts := parseStatements(t, "class A { init() { return 1; } }")
	r := New(newFakeSideTable())
	if !r.Resolve(stmts) {
		t.Fatal("expected a static error")
	}
}
