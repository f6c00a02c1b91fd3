// Package ast defines the Abstract Syntax Tree node types the Parser builds
// and the Resolver/Interpreter walk (spec.md §3).
package ast

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	String() string
}

// Expr is any node that produces a Value when evaluated.
type Expr interface {
	Node
	// ID is a stable identity for this expression node, unique within the
	// tree it belongs to. The depth side-table itself is keyed by the node
	// pointer (the ast.Expr value), not by ID; either identity, unlike
	// structural equality, keeps two textually identical variable
	// references at different positions apart (spec.md §3, "Identity of
	// expression nodes").
	ID() int
	exprNode()
}

// Stmt is any node that performs an action without producing a value.
type Stmt interface {
	Node
	stmtNode()
}

// nextID hands out the stable per-node identity described on Expr. A
// package-level counter is the simplest of the approaches spec.md §9
// sanctions ("an integer counter assigned at parse time"); it only needs
// to be unique within one parse, and the Parser is single-threaded.
var idCounter int

func nextID() int {
	idCounter++
	return idCounter
}

// exprBase is embedded by every Expr implementation to supply ID().
type exprBase struct {
	id int
}

func newExprBase() exprBase {
	return exprBase{id: nextID()}
}

func (e exprBase) ID() int { return e.id }

// Program is the root of a parsed source file: a flat list of top-level
// declarations and statements.
type Program struct {
	Statements []Stmt
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	out := ""
	for _, s := range p.Statements {
		out += s.String() + "\n"
	}
	return out
}
