package interp

import (
	"fmt"
	"io"
	"time"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// Interpreter is a tree-walking executor for a resolved AST (spec.md §4.4).
// It owns the global environment, the currently active environment, the
// resolution side-table populated by the resolver package, and the
// destination for `print` output.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[ast.Expr]int
	stdout      io.Writer
}

// New creates an Interpreter writing `print` output to stdout, with the
// mandatory `clock` native (spec.md §6) and the small additional native
// set SPEC_FULL.md §6 adds already bound in the global environment.
func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	in := &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		stdout:      stdout,
	}
	in.defineNatives()
	return in
}

func (in *Interpreter) defineNatives() {
	in.globals.Define("clock", NewNativeFunction("clock", 0, func(*Interpreter, []any) (any, error) {
		return float64(time.Now().UnixNano()) / 1e9, nil
	}))
	in.globals.Define("str", NewNativeFunction("str", 1, func(_ *Interpreter, args []any) (any, error) {
		return stringify(args[0]), nil
	}))
}

// Resolve implements resolver.SideTable: it records the lexical depth a
// resolved expression reference was found at.
func (in *Interpreter) Resolve(expr ast.Expr, depth int) {
	in.locals[expr] = depth
}

// Interpret executes statements in order, stopping and returning the
// error at the first runtime failure (spec.md §4.4).
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- statement execution ---------------------------------------------------

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return err

	case *ast.PrintStmt:
		value, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.stdout, stringify(value))
		return nil

	case *ast.VarStmt:
		var value any
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, NewEnvironment(in.environment))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(s.ThenBranch)
		} else if s.ElseBranch != nil {
			return in.execute(s.ElseBranch)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := NewFunction(s, in.environment, false)
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value any
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		panic(returnSignal{value: value})

	case *ast.ClassStmt:
		return in.executeClass(s)

	default:
		return fmt.Errorf("interp: unhandled statement type %T", stmt)
	}
}

// executeBlock runs statements in env, restoring the previously active
// environment on every exit path — normal, error, or the `return` panic
// unwinding through it (spec.md §4.4's Block semantics).
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) (err error) {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		if err = in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) executeClass(s *ast.ClassStmt) error {
	var superclass *Class
	if s.Superclass != nil {
		value, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := value.(*Class)
		if !ok {
			return errors.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, nil)

	env := in.environment
	if s.Superclass != nil {
		env = NewEnvironment(in.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, env, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)

	if err := in.environment.Assign(s.Name, class); err != nil {
		return err
	}
	return nil
}

// --- expression evaluation -------------------------------------------------

func (in *Interpreter) evaluate(expr ast.Expr) (any, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return in.evaluate(e.Expression)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)

	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			in.environment.AssignAt(distance, e.Name.Lexeme, value)
		} else if err := in.globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		return in.evalGet(e)

	case *ast.Set:
		return in.evalSet(e)

	case *ast.This:
		return in.lookUpVariable(e.Keyword, e)

	case *ast.Super:
		return in.evalSuper(e)

	default:
		return nil, fmt.Errorf("interp: unhandled expression type %T", expr)
	}
}

// lookUpVariable consults the resolution side-table: a recorded depth
// means a local lookup via getAt, absence means a global lookup by name
// (spec.md §4.4's Variable lookup rule).
func (in *Interpreter) lookUpVariable(name lexer.Token, expr ast.Expr) (any, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) evalUnary(e *ast.Unary) (any, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.BANG:
		return !isTruthy(right), nil
	case lexer.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	}
	return nil, errors.NewRuntimeError(e.Operator, "Unknown unary operator.")
}

func (in *Interpreter) evalLogical(e *ast.Logical) (any, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == lexer.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else { // AND
		if !isTruthy(left) {
			return left, nil
		}
	}

	return in.evaluate(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (any, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l - r, nil

	case lexer.SLASH:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l / r, nil

	case lexer.STAR:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l * r, nil

	case lexer.PLUS:
		if l, ok := left.(float64); ok {
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(string); ok {
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, errors.NewRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	case lexer.GREATER:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l > r, nil

	case lexer.GREATER_EQUAL:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l >= r, nil

	case lexer.LESS:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l < r, nil

	case lexer.LESS_EQUAL:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l <= r, nil

	case lexer.BANG_EQUAL:
		return !isEqual(left, right), nil

	case lexer.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}

	return nil, errors.NewRuntimeError(e.Operator, "Unknown binary operator.")
}

func bothNumbers(left, right any) (float64, float64, bool) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	return l, r, lok && rok
}

func (in *Interpreter) evalCall(e *ast.Call) (any, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]any, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		v, err := in.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, errors.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}

	if len(args) != callable.Arity() {
		return nil, errors.NewRuntimeError(e.Paren, fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}

	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.Get) (any, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*Instance)
	if !ok {
		return nil, errors.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	return instance.Get(e.Name)
}

func (in *Interpreter) evalSet(e *ast.Set) (any, error) {
	object, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*Instance)
	if !ok {
		return nil, errors.NewRuntimeError(e.Name, "Only instances have fields.")
	}

	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}

	instance.Set(e.Name, value)
	return value, nil
}

// evalSuper resolves `super.method`: the superclass is looked up at the
// resolved depth for the `super` keyword, `this` one scope closer
// (spec.md §4.5).
func (in *Interpreter) evalSuper(e *ast.Super) (any, error) {
	distance := in.locals[e]
	superclass := in.environment.GetAt(distance, "super").(*Class)
	instance := in.environment.GetAt(distance-1, "this").(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, errors.NewRuntimeError(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}
	return method.Bind(instance), nil
}
