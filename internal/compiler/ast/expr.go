// Package ast defines the tree the parser produces. Every variant set is a
// sealed interface: the marker methods are unexported, so the set of node
// kinds is closed to this package and switches over them can be audited for
// exhaustiveness. Nodes exclusively own their children and are never mutated
// after construction.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

type BinaryOperator string

const (
	OpLogicAnd     BinaryOperator = "AND"
	OpLogicOr      BinaryOperator = "OR"
	OpPlus         BinaryOperator = "+"
	OpMinus        BinaryOperator = "-"
	OpStar         BinaryOperator = "*"
	OpSlash        BinaryOperator = "/"
	OpEqual        BinaryOperator = "="
	OpNotEqual     BinaryOperator = "<>"
	OpLessEqual    BinaryOperator = "<="
	OpGreaterEqual BinaryOperator = ">="
	OpLess         BinaryOperator = "<"
	OpGreater      BinaryOperator = ">"
)

type UnaryOperator string

const OpLogicNot UnaryOperator = "NOT"

type Expr interface {
	exprNode()
	String() string
}

type BinaryExpr struct {
	Left     Expr
	Operator BinaryOperator
	Right    Expr
}

func (e *BinaryExpr) exprNode() {}
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Operator, e.Right)
}

type UnaryExpr struct {
	Operator UnaryOperator
	Right    Expr
}

func (e *UnaryExpr) exprNode() {}
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("(%s %s)", e.Operator, e.Right)
}

type FunctionCallExpr struct {
	Function Expr
	Args     []Expr
}

func (e *FunctionCallExpr) exprNode() {}
func (e *FunctionCallExpr) String() string {
	return e.Function.String() + "(" + joinExprs(e.Args) + ")"
}

type ArrayIndexExpr struct {
	Array   Expr
	Indexes []Expr
}

func (e *ArrayIndexExpr) exprNode() {}
func (e *ArrayIndexExpr) String() string {
	return e.Array.String() + "[" + joinExprs(e.Indexes) + "]"
}

// IdentifierExpr holds the dense handle its spelling was interned to. The
// handle is only meaningful against the interner of the parse session that
// produced the tree.
type IdentifierExpr struct {
	Handle int
}

func (e *IdentifierExpr) exprNode() {}
func (e *IdentifierExpr) String() string {
	return "#" + strconv.Itoa(e.Handle)
}

type LiteralExpr struct {
	Value Literal
}

func (e *LiteralExpr) exprNode() {}
func (e *LiteralExpr) String() string {
	return e.Value.String()
}

// Literal is the value union shared by LiteralExpr and constant
// declarations, which require a bare literal rather than an expression.
type Literal interface {
	literalNode()
	String() string
}

type CharLiteral struct {
	Value rune
}

func (l *CharLiteral) literalNode() {}
func (l *CharLiteral) String() string {
	return "'" + string(l.Value) + "'"
}

type StringLiteral struct {
	Value string
}

func (l *StringLiteral) literalNode() {}
func (l *StringLiteral) String() string {
	return "\"" + l.Value + "\""
}

type IntegerLiteral struct {
	Value int64
}

func (l *IntegerLiteral) literalNode() {}
func (l *IntegerLiteral) String() string {
	return strconv.FormatInt(l.Value, 10)
}

type RealLiteral struct {
	Value float64
}

func (l *RealLiteral) literalNode() {}
func (l *RealLiteral) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64)
}

type BooleanLiteral struct {
	Value bool
}

func (l *BooleanLiteral) literalNode() {}
func (l *BooleanLiteral) String() string {
	if l.Value {
		return "TRUE"
	}
	return "FALSE"
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
