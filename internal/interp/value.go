// Package interp is the tree-walking interpreter and runtime value model
// for the Language (spec.md §4.4, §4.5). Values are represented with Go's
// `any`, tagged by dynamic type: nil for Nil, bool for Bool, float64 for
// Number, string for String, Callable for any callable shape, and
// *Instance for objects — the same untyped-union idiom the Lox-family
// examples in the retrieved corpus use, since Go has no built-in sum type
// cheaper than an interface holding one of a closed set of concrete types.
package interp

import (
	"math"
	"strconv"
)

// Callable is any Value that can appear on the left of a call expression:
// a user-defined Function, a Native host function, a Class (construction),
// or a bound method (itself a *Function whose closure captures `this`).
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []any) (any, error)
	String() string
}

// isTruthy implements spec.md §3: Nil and Bool(false) are falsey, every
// other value is truthy.
func isTruthy(value any) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements spec.md §3's value-equality, with the one deliberate
// exception that two NaN numbers compare equal (matching host-level
// structural equality rather than IEEE-754 semantics).
func isEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	an, aIsNum := a.(float64)
	bn, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		if math.IsNaN(an) && math.IsNaN(bn) {
			return true
		}
		return an == bn
	}

	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return as == bs
	}

	ab, aIsBool := a.(bool)
	bb, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		return ab == bb
	}

	// Callables and Instances compare by reference identity; different
	// dynamic types are never equal.
	return a == b
}

// stringify renders a Value the way `print` does (spec.md §4.4's
// statement-execution table). Numeric output strips a trailing ".0" on
// integral doubles (spec.md §9 open question (b), resolved in DESIGN.md).
func stringify(value any) string {
	if value == nil {
		return "nil"
	}

	switch v := value.(type) {
	case float64:
		return formatNumber(v)
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case Callable:
		return v.String()
	case *Instance:
		return v.String()
	default:
		return "nil"
	}
}

func formatNumber(n float64) string {
	if math.IsNaN(n) {
		return "nan"
	}
	if math.IsInf(n, 1) {
		return "inf"
	}
	if math.IsInf(n, -1) {
		return "-inf"
	}
	text := strconv.FormatFloat(n, 'f', -1, 64)
	return text
}
