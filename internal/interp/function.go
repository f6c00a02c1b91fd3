package interp

import "github.com/cwbudde/go-lox/internal/ast"

// Function is a user-defined callable: its declaration (parameter names
// and body), the environment it closed over at definition time, and
// whether it is a class initializer (`init`), which always returns `this`
// regardless of any explicit return value (spec.md §3, §4.4).
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

// NewFunction builds a Function value capturing closure as its defining
// environment.
func NewFunction(declaration *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Bind produces a bound method: a new Function sharing this one's
// declaration, whose closure is a fresh one-entry environment binding
// `this` to instance, parented by the original closure (spec.md §4.5).
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

// returnSignal is panicked by a `return` statement and recovered here, in
// the one place non-local exits are allowed to terminate: the function
// call that owns the body being unwound (spec.md §4.4's Return contract).
type returnSignal struct {
	value any
}

// Call executes the function body in a fresh environment parented by the
// closure, with parameters bound to the argument values in order.
func (f *Function) Call(in *Interpreter, args []any) (result any, err error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			signal, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.isInitializer {
				result = f.closure.GetAt(0, "this")
			} else {
				result = signal.value
			}
		}
	}()

	if execErr := in.executeBlock(f.declaration.Body, env); execErr != nil {
		return nil, execErr
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}
