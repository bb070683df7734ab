// Package ast defines the closed set of Moon syntax tree nodes.
package ast

// Node is any syntax tree node.
type Node interface {
	Line() uint32
}

// Statement is a node that may appear in a block. Every expression is
// also a statement.
type Statement interface {
	Node
	stmtNode()
}

// Expr is a node that produces a value.
type Expr interface {
	Statement
	exprNode()
}

// Block is an ordered sequence of statements: a program or a suite.
type Block []Statement

type Pos struct {
	LineNo uint32
}

func (p Pos) Line() uint32 { return p.LineNo }

type expr struct{}

func (expr) stmtNode() {}
func (expr) exprNode() {}

type stmt struct{}

func (stmt) stmtNode() {}

type IntegerLiteral struct {
	Pos
	expr
	Value int64
}

type FloatLiteral struct {
	Pos
	expr
	Value float64
}

type StringLiteral struct {
	Pos
	expr
	Value string
}

type BooleanLiteral struct {
	Pos
	expr
	Value bool
}

type NullLiteral struct {
	Pos
	expr
}

type Identifier struct {
	Pos
	expr
	Name string
}

// ArithmeticExpr applies one of + - * / % **.
type ArithmeticExpr struct {
	Pos
	expr
	Op    string
	Left  Expr
	Right Expr
}

// ComparisonExpr applies one of < <= > >= == !=. The source words is
// and isnt are stored as == and !=.
type ComparisonExpr struct {
	Pos
	expr
	Op    string
	Left  Expr
	Right Expr
}

// LogicalExpr is "and", "or", or the unary "not" (Right is nil).
type LogicalExpr struct {
	Pos
	expr
	Op    string
	Left  Expr
	Right Expr
}

// Call invokes a user action. Usable as statement and expression.
type Call struct {
	Pos
	expr
	Name string
	Args []Expr
}

// Ask prompts for one line of input.
type Ask struct {
	Pos
	expr
	Prompts []Expr
}

// ListComposite and DictComposite are parsed but not evaluated.
type ListComposite struct {
	Pos
	expr
	Elements Block
}

type DictComposite struct {
	Pos
	expr
	Entries Block
}

type VariableDeclaration struct {
	Pos
	stmt
	Name  string
	Value Expr
}

// IfElse has a nil Else when the else branch is absent.
type IfElse struct {
	Pos
	stmt
	Cond Expr
	Then Block
	Else *Block
}

type While struct {
	Pos
	stmt
	Cond Expr
	Body Block
}

type Stop struct {
	Pos
	stmt
}

type Skip struct {
	Pos
	stmt
}

type Action struct {
	Pos
	stmt
	Name   string
	Params []string
	Body   Block
}

type Result struct {
	Pos
	stmt
	Values []Expr
}

type Print struct {
	Pos
	stmt
	Values []Expr
}
