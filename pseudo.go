// Package pseudo is the front end of a structured pseudocode language: it
// tokenizes raw source text and parses it into an abstract syntax tree for
// later semantic analysis or interpretation.
package pseudo

import (
	"strings"

	"github.com/pseudo-lang/pseudo/internal/compiler/ast"
	"github.com/pseudo-lang/pseudo/internal/compiler/parser"
	"github.com/pseudo-lang/pseudo/internal/compiler/scanner"
	"github.com/pseudo-lang/pseudo/internal/compiler/token"
)

// Scan tokenizes the entire source, returning every token and every lexical
// error found. Scanning never stops at the first error.
func Scan(source string) ([]token.Token, []*scanner.Error) {
	return scanner.Scan(source)
}

// LexicalErrors aggregates the lexical errors hit while tokenizing input for
// one of the parse entry points.
type LexicalErrors []*scanner.Error

func (e LexicalErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// ParseExpression parses source as a single expression. The returned
// spellings map identifier handles in the tree back to source text.
func ParseExpression(source string) (ast.Expr, []string, error) {
	p, err := newSession(source)
	if err != nil {
		return nil, nil, err
	}
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, nil, err
	}
	return expr, p.Identifiers(), nil
}

// ParseStatement parses source as a single statement.
func ParseStatement(source string) (ast.Stmt, []string, error) {
	p, err := newSession(source)
	if err != nil {
		return nil, nil, err
	}
	stmt, err := p.ParseStatement()
	if err != nil {
		return nil, nil, err
	}
	return stmt, p.Identifiers(), nil
}

// ParseBlock parses source as a sequence of statements, typically a whole
// file.
func ParseBlock(source string) (ast.Block, []string, error) {
	p, err := newSession(source)
	if err != nil {
		return ast.Block{}, nil, err
	}
	block, err := p.ParseBlock()
	if err != nil {
		return ast.Block{}, nil, err
	}
	return block, p.Identifiers(), nil
}

func newSession(source string) (*parser.Parser, error) {
	tokens, lexErrs := scanner.Scan(source)
	if len(lexErrs) > 0 {
		return nil, LexicalErrors(lexErrs)
	}
	return parser.New(tokens), nil
}
