package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-lox/internal/lexer"
)

// Literal is a literal value baked directly into the tree by the parser
// (number, string, boolean, or nil).
type Literal struct {
	exprBase
	Token lexer.Token
	Value any
}

func NewLiteral(tok lexer.Token, value any) *Literal {
	return &Literal{exprBase: newExprBase(), Token: tok, Value: value}
}

func (e *Literal) exprNode()            {}
func (e *Literal) TokenLiteral() string { return e.Token.Lexeme }
func (e *Literal) String() string {
	if e.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", e.Value)
}

// Grouping is a parenthesized sub-expression.
type Grouping struct {
	exprBase
	Expression Expr
}

func NewGrouping(inner Expr) *Grouping {
	return &Grouping{exprBase: newExprBase(), Expression: inner}
}

func (e *Grouping) exprNode()            {}
func (e *Grouping) TokenLiteral() string { return "(" }
func (e *Grouping) String() string       { return "(" + e.Expression.String() + ")" }

// Unary is a prefix `!` or `-` application.
type Unary struct {
	exprBase
	Operator lexer.Token
	Right    Expr
}

func NewUnary(op lexer.Token, right Expr) *Unary {
	return &Unary{exprBase: newExprBase(), Operator: op, Right: right}
}

func (e *Unary) exprNode()            {}
func (e *Unary) TokenLiteral() string { return e.Operator.Lexeme }
func (e *Unary) String() string       { return "(" + e.Operator.Lexeme + e.Right.String() + ")" }

// Binary is a left/right expression joined by an arithmetic, equality, or
// relational operator. Kept distinct from Logical because `and`/`or`
// short-circuit and the rest never do.
type Binary struct {
	exprBase
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func NewBinary(left Expr, op lexer.Token, right Expr) *Binary {
	return &Binary{exprBase: newExprBase(), Left: left, Operator: op, Right: right}
}

func (e *Binary) exprNode()            {}
func (e *Binary) TokenLiteral() string { return e.Operator.Lexeme }
func (e *Binary) String() string {
	return "(" + e.Left.String() + " " + e.Operator.Lexeme + " " + e.Right.String() + ")"
}

// Logical is `and`/`or`, which short-circuit and therefore cannot share
// Binary's eager evaluate-both-sides semantics.
type Logical struct {
	exprBase
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func NewLogical(left Expr, op lexer.Token, right Expr) *Logical {
	return &Logical{exprBase: newExprBase(), Left: left, Operator: op, Right: right}
}

func (e *Logical) exprNode()            {}
func (e *Logical) TokenLiteral() string { return e.Operator.Lexeme }
func (e *Logical) String() string {
	return "(" + e.Left.String() + " " + e.Operator.Lexeme + " " + e.Right.String() + ")"
}

// Variable is a bare name reference; the Resolver records the lexical
// depth it resolves to (absent means global).
type Variable struct {
	exprBase
	Name lexer.Token
}

func NewVariable(name lexer.Token) *Variable {
	return &Variable{exprBase: newExprBase(), Name: name}
}

func (e *Variable) exprNode()            {}
func (e *Variable) TokenLiteral() string { return e.Name.Lexeme }
func (e *Variable) String() string       { return e.Name.Lexeme }

// Assign is `name = value`, produced by the parser only when the left-hand
// side of an `=` was a bare Variable.
type Assign struct {
	exprBase
	Name  lexer.Token
	Value Expr
}

func NewAssign(name lexer.Token, value Expr) *Assign {
	return &Assign{exprBase: newExprBase(), Name: name, Value: value}
}

func (e *Assign) exprNode()            {}
func (e *Assign) TokenLiteral() string { return e.Name.Lexeme }
func (e *Assign) String() string       { return e.Name.Lexeme + " = " + e.Value.String() }

// Call is `callee(args...)`. Paren is the closing `)` token, kept because
// runtime errors on a bad call are reported at that position.
type Call struct {
	exprBase
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func NewCall(callee Expr, paren lexer.Token, args []Expr) *Call {
	return &Call{exprBase: newExprBase(), Callee: callee, Paren: paren, Arguments: args}
}

func (e *Call) exprNode()            {}
func (e *Call) TokenLiteral() string { return e.Paren.Lexeme }
func (e *Call) String() string {
	args := make([]string, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = a.String()
	}
	return e.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// Get is property/method access: `object.name`.
type Get struct {
	exprBase
	Object Expr
	Name   lexer.Token
}

func NewGet(object Expr, name lexer.Token) *Get {
	return &Get{exprBase: newExprBase(), Object: object, Name: name}
}

func (e *Get) exprNode()            {}
func (e *Get) TokenLiteral() string { return e.Name.Lexeme }
func (e *Get) String() string       { return e.Object.String() + "." + e.Name.Lexeme }

// Set is field assignment: `object.name = value`.
type Set struct {
	exprBase
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func NewSet(object Expr, name lexer.Token, value Expr) *Set {
	return &Set{exprBase: newExprBase(), Object: object, Name: name, Value: value}
}

func (e *Set) exprNode()            {}
func (e *Set) TokenLiteral() string { return e.Name.Lexeme }
func (e *Set) String() string {
	return e.Object.String() + "." + e.Name.Lexeme + " = " + e.Value.String()
}

// This is the `this` keyword used inside a method body.
type This struct {
	exprBase
	Keyword lexer.Token
}

func NewThis(keyword lexer.Token) *This {
	return &This{exprBase: newExprBase(), Keyword: keyword}
}

func (e *This) exprNode()            {}
func (e *This) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *This) String() string       { return "this" }

// Super is `super.method`, usable only inside a subclass method body.
type Super struct {
	exprBase
	Keyword lexer.Token
	Method  lexer.Token
}

func NewSuper(keyword, method lexer.Token) *Super {
	return &Super{exprBase: newExprBase(), Keyword: keyword, Method: method}
}

func (e *Super) exprNode()            {}
func (e *Super) TokenLiteral() string { return e.Keyword.Lexeme }
func (e *Super) String() string       { return "super." + e.Method.Lexeme }
