package interp

// Class is the runtime value produced by a `class` declaration. It is
// immutable after construction: name, optional superclass, and a method
// table mapping method name to the declared *Function (spec.md §3).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass builds a Class value.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod returns the method declared directly on this class, or
// delegates to the superclass chain, or reports absence via ok=false
// (spec.md §3, Class.findMethod).
func (c *Class) FindMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of the class's `init` method, or 0 if it declares
// none (spec.md §4.4, Call/Class dispatch).
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call allocates a fresh Instance and, if the class chain declares an
// `init`, binds and runs it with the constructor arguments.
func (c *Class) Call(in *Interpreter, args []any) (any, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		bound := init.Bind(instance)
		if _, err := bound.Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return c.Name
}
