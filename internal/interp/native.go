package interp

// NativeFunction is a host-implemented Callable with fixed arity
// (spec.md §3's "Native" callable shape). A conforming implementation may
// bind extra natives into the global environment before interpretation
// begins; SPEC_FULL.md §6 lists the ones this implementation adds
// alongside the mandatory `clock`.
type NativeFunction struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []any) (any, error)
}

// NewNativeFunction builds a native callable bound under name.
func NewNativeFunction(name string, arity int, fn func(in *Interpreter, args []any) (any, error)) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(in *Interpreter, args []any) (any, error) {
	return n.fn(in, args)
}

func (n *NativeFunction) String() string {
	return "<native fn>"
}
