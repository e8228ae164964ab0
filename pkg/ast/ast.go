// Package ast defines the expression and statement node types produced by
// pkg/parser and consumed by pkg/interpreter.
package ast

import "lox/pkg/token"

// Expr is any expression node. Every concrete expression embeds
// exprMarker so the interpreter can type-switch over a closed set.
type Expr interface {
	exprNode()
}

type exprMarker struct{}

func (exprMarker) exprNode() {}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}

type stmtMarker struct{}

func (stmtMarker) stmtNode() {}

// Literal holds a constant value: a float64, a string, a bool, or nil.
type Literal struct {
	exprMarker
	Value any
}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so error messages and future tooling can refer to "(...)".
type Grouping struct {
	exprMarker
	Inner Expr
}

// Unary is a prefix operator application; Op.Kind is MINUS or BANG.
type Unary struct {
	exprMarker
	Op      token.Token
	Operand Expr
}

// Binary is an infix operator application evaluated strictly left-to-right.
type Binary struct {
	exprMarker
	Left  Expr
	Op    token.Token
	Right Expr
}

// Logical is syntactically a binary expression but evaluates with
// short-circuiting; kept as its own node so the interpreter never has to
// branch on operator kind to decide whether to short-circuit.
type Logical struct {
	exprMarker
	Left  Expr
	Op    token.Token
	Right Expr
}

// Ternary is the right-associative `cond ? then : else` expression.
type Ternary struct {
	exprMarker
	Op     token.Token
	First  Expr
	Second Expr
	Third  Expr
}

// Variable is a read of a named binding; Name.Kind is always IDENTIFIER.
type Variable struct {
	exprMarker
	Name token.Token
}

// Assign stores Value into the binding named Name, returning Value.
type Assign struct {
	exprMarker
	Name  token.Token
	Value Expr
}

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	stmtMarker
	Expr Expr
}

// PrintStmt evaluates Expr, stringifies it, and writes a line to stdout.
type PrintStmt struct {
	stmtMarker
	Expr Expr
}

// VarStmt declares a single variable, optionally with an initializer.
type VarStmt struct {
	stmtMarker
	Name        token.Token
	Initializer Expr // nil if omitted
}

// VarsStmt groups the comma-separated declarations sharing one `var ... ;`.
type VarsStmt struct {
	stmtMarker
	Decls []*VarStmt
}

// BlockStmt is a `{ ... }` sequence executed in a fresh child scope.
type BlockStmt struct {
	stmtMarker
	Statements []Stmt
}

// IfStmt executes Then when Condition is truthy, else Else (which may be nil).
type IfStmt struct {
	stmtMarker
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if omitted
}

// WhileStmt repeats Body while Condition evaluates truthy.
type WhileStmt struct {
	stmtMarker
	Condition Expr
	Body      Stmt
}
