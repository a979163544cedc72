package ast

import (
	"fmt"
	"strings"
)

type Stmt interface {
	stmtNode()
	String() string
}

// Block is an ordered sequence of statements; order is execution order. A
// block is not itself a statement.
type Block struct {
	Contents []Stmt
}

func (b Block) String() string {
	parts := make([]string, len(b.Contents))
	for i, s := range b.Contents {
		parts[i] = s.String()
	}
	return strings.Join(parts, "\n")
}

// Type is the declared-type union. Only primitive types are handled; ARRAY
// is reserved but has no grammar yet.
type Type interface {
	typeNode()
	String() string
}

type PrimitiveType string

const (
	TypeInteger PrimitiveType = "INTEGER"
	TypeReal    PrimitiveType = "REAL"
	TypeString  PrimitiveType = "STRING"
	TypeChar    PrimitiveType = "CHAR"
	TypeBoolean PrimitiveType = "BOOLEAN"
)

func (t PrimitiveType) typeNode()      {}
func (t PrimitiveType) String() string { return string(t) }

// Parameter is one name : type entry in a procedure or function signature.
type Parameter struct {
	Name int // identifier handle
	Type Type
}

func (p Parameter) String() string {
	return fmt.Sprintf("#%d : %s", p.Name, p.Type)
}

type ProcedureDeclStmt struct {
	Name   int // identifier handle
	Params []Parameter
	Body   Block
}

func (s *ProcedureDeclStmt) stmtNode() {}
func (s *ProcedureDeclStmt) String() string {
	return fmt.Sprintf("PROCEDURE #%d(%s)\n%s\nENDPROCEDURE", s.Name, joinParams(s.Params), indent(s.Body.String()))
}

type FunctionDeclStmt struct {
	Name    int // identifier handle
	Params  []Parameter
	Returns Type
	Body    Block
}

func (s *FunctionDeclStmt) stmtNode() {}
func (s *FunctionDeclStmt) String() string {
	return fmt.Sprintf("FUNCTION #%d(%s) RETURNS %s\n%s\nENDFUNCTION", s.Name, joinParams(s.Params), s.Returns, indent(s.Body.String()))
}

// VariableDeclStmt is a DECLARE name : type statement.
type VariableDeclStmt struct {
	Name int // identifier handle
	Type Type
}

func (s *VariableDeclStmt) stmtNode() {}
func (s *VariableDeclStmt) String() string {
	return fmt.Sprintf("DECLARE #%d : %s", s.Name, s.Type)
}

// ConstantDeclStmt is a CONSTANT name <- literal statement. The initializer
// is a bare literal by construction, never an expression.
type ConstantDeclStmt struct {
	Name  int // identifier handle
	Value Literal
}

func (s *ConstantDeclStmt) stmtNode() {}
func (s *ConstantDeclStmt) String() string {
	return fmt.Sprintf("CONSTANT #%d <- %s", s.Name, s.Value)
}

// IfStmt's Else is nil when the ELSE clause is absent.
type IfStmt struct {
	Condition Expr
	Then      Block
	Else      *Block
}

func (s *IfStmt) stmtNode() {}
func (s *IfStmt) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "IF %s THEN\n%s", s.Condition, indent(s.Then.String()))
	if s.Else != nil {
		fmt.Fprintf(&out, "\nELSE\n%s", indent(s.Else.String()))
	}
	out.WriteString("\nENDIF")
	return out.String()
}

// ForLoopStmt's Step is nil when the STEP clause is absent.
type ForLoopStmt struct {
	Target Expr
	Start  Expr
	End    Expr
	Step   Expr
	Body   Block
}

func (s *ForLoopStmt) stmtNode() {}
func (s *ForLoopStmt) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "FOR %s <- %s TO %s", s.Target, s.Start, s.End)
	if s.Step != nil {
		fmt.Fprintf(&out, " STEP %s", s.Step)
	}
	fmt.Fprintf(&out, "\n%s\nNEXT", indent(s.Body.String()))
	return out.String()
}

// RepeatUntilStmt runs its body before its test.
type RepeatUntilStmt struct {
	Body      Block
	Condition Expr
}

func (s *RepeatUntilStmt) stmtNode() {}
func (s *RepeatUntilStmt) String() string {
	return fmt.Sprintf("REPEAT\n%s\nUNTIL %s", indent(s.Body.String()), s.Condition)
}

type WhileStmt struct {
	Condition Expr
	Body      Block
}

func (s *WhileStmt) stmtNode() {}
func (s *WhileStmt) String() string {
	return fmt.Sprintf("WHILE %s DO\n%s\nENDWHILE", s.Condition, indent(s.Body.String()))
}

type ReturnStmt struct {
	Value Expr
}

func (s *ReturnStmt) stmtNode() {}
func (s *ReturnStmt) String() string {
	return "RETURN " + s.Value.String()
}

type InputStmt struct {
	Targets []Expr
}

func (s *InputStmt) stmtNode() {}
func (s *InputStmt) String() string {
	return "INPUT " + joinExprs(s.Targets)
}

type OutputStmt struct {
	Values []Expr
}

func (s *OutputStmt) stmtNode() {}
func (s *OutputStmt) String() string {
	return "OUTPUT " + joinExprs(s.Values)
}

// AssignmentStmt's Target is an identifier with optional call and index
// suffixes.
type AssignmentStmt struct {
	Target Expr
	Value  Expr
}

func (s *AssignmentStmt) stmtNode() {}
func (s *AssignmentStmt) String() string {
	return fmt.Sprintf("%s <- %s", s.Target, s.Value)
}

func joinParams(params []Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

func indent(s string) string {
	if s == "" {
		return s
	}
	return "\t" + strings.ReplaceAll(s, "\n", "\n\t")
}
