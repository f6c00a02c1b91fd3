package interp

import (
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
)

// Instance is a mutable object produced by calling a Class: a reference to
// its class plus a mapping from field name to Value. Instances are shared
// by reference — two variables holding the same Instance observe each
// other's field mutations (spec.md §3).
type Instance struct {
	Class  *Class
	Fields map[string]any
}

// NewInstance allocates a new, field-less Instance of class c.
func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, Fields: make(map[string]any)}
}

// Get reads a property: a field if one is set, else a method bound to
// this instance, else a runtime error (spec.md §4.4, Get expression).
func (i *Instance) Get(name lexer.Token) (any, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}

	if method, ok := i.Class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}

	return nil, errors.NewRuntimeError(name, "Undefined property '"+name.Lexeme+"'.")
}

// Set stores a field value, creating the field if absent.
func (i *Instance) Set(name lexer.Token, value any) {
	i.Fields[name.Lexeme] = value
}

func (i *Instance) String() string {
	return i.Class.Name + " instance"
}
