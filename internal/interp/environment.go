package interp

import (
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// Environment is one scope in the lexical chain: a name->value mapping
// plus a pointer to the enclosing scope (nil for the global scope). The
// chain's head is the current innermost scope; closures capture a
// reference to the environment active at their creation (spec.md §3).
type Environment struct {
	values    map[string]any
	enclosing *Environment
}

// NewEnvironment creates a scope. Pass nil for the global environment.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]any), enclosing: enclosing}
}

// Define adds or overwrites a binding in this scope.
func (e *Environment) Define(name string, value any) {
	e.values[name] = value
}

// Get returns the value bound to name, searching this scope and then each
// enclosing scope in turn. Undefined names are a runtime error.
func (e *Environment) Get(name lexer.Token) (any, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, errors.NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// Assign mutates the binding for name in the first scope (this one or an
// enclosing one) that already contains it. Assigning to an undefined name
// is a runtime error (spec.md §9 open question (a), resolved as an error).
func (e *Environment) Assign(name lexer.Token, value any) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return errors.NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// ancestor walks exactly distance enclosing links outward. The Resolver
// guarantees that every resolved depth lands on a scope that binds the
// name being looked up (spec.md §3's Environment invariant).
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads a binding exactly distance scopes outward, used for
// resolved (local) variable references.
func (e *Environment) GetAt(distance int, name string) any {
	return e.ancestor(distance).values[name]
}

// AssignAt writes a binding exactly distance scopes outward, used for
// resolved (local) assignments.
func (e *Environment) AssignAt(distance int, name string, value any) {
	e.ancestor(distance).values[name] = value
}
