package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
)

// run lexes, parses, resolves, and interprets source, returning everything
// written via `print` and the first runtime error encountered, if any. Tests
// assume source has no lexical/parse/static errors unless noted otherwise.
func run(t *testing.T, source string) (string, error) {
	t.Helper()

	lx := lexer.New(source)
	tokens, hadLexErr := lx.ScanTokens()
	if hadLexErr {
		t.Fatalf("unexpected lex errors: %v", lx.Errors())
	}

	p := parser.New(tokens)
	statements, hadErr := p.Parse()
	if hadErr {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}

	var out bytes.Buffer
	in := interp.New(&out)

	r := resolver.New(in)
	if r.Resolve(statements) {
		t.Fatalf("unexpected static errors: %v", r.Errors())
	}

	err := in.Interpret(statements)
	return out.String(), err
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "7" {
		t.Fatalf("got %q, want 7", out)
	}
}

func TestBlockShadowing(t *testing.T) {
	out, err := run(t, `
		var a = "outer";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "inner\nouter\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestClosureCounter(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "1\n2\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestClassMethodCall(t *testing.T) {
	out, err := run(t, `
		class Greeter {
			greet(name) {
				print "Hello, " + name + "!";
			}
		}
		var g = Greeter();
		g.greet("world");
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "Hello, world!" {
		t.Fatalf("got %q", out)
	}
}

func TestInheritanceSuperInit(t *testing.T) {
	out, err := run(t, `
		class Animal {
			init(name) {
				this.name = name;
			}
			speak() {
				print this.name + " makes a sound.";
			}
		}
		class Dog < Animal {
			init(name) {
				super.init(name);
			}
			speak() {
				super.speak();
				print this.name + " barks.";
			}
		}
		var d = Dog("Rex");
		d.speak();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Rex makes a sound.\nRex barks.\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestForLoop(t *testing.T) {
	out, err := run(t, `
		var sum = 0;
		for (var i = 0; i < 5; i = i + 1) {
			sum = sum + i;
		}
		print sum;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "10" {
		t.Fatalf("got %q, want 10", out)
	}
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print nope;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Undefined variable 'nope'") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestStringPlusNumberIsRuntimeError(t *testing.T) {
	_, err := run(t, `print "x" + 1;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Operands must be two numbers or two strings.") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestNumberStringificationStripsTrailingZero(t *testing.T) {
	out, err := run(t, `print 10 / 2; print 1 / 3;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "5" {
		t.Fatalf("got %q, want 5", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0.333") {
		t.Fatalf("got %q, want a 0.333... prefix", lines[1])
	}
}

func TestClockNativeReturnsNumber(t *testing.T) {
	out, err := run(t, `print str(clock() >= 0.0);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "true" {
		t.Fatalf("got %q, want true", out)
	}
}

func TestFieldAssignmentOnUndeclaredField(t *testing.T) {
	out, err := run(t, `
		class Box {}
		var b = Box();
		b.value = 42;
		print b.value;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "42" {
		t.Fatalf("got %q, want 42", out)
	}
}
