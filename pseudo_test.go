package pseudo

import (
	"errors"
	"testing"

	"github.com/pseudo-lang/pseudo/internal/compiler/ast"
	"github.com/pseudo-lang/pseudo/internal/compiler/parser"
)

func TestParseBlockEndToEnd(t *testing.T) {
	source := `
CONSTANT limit <- 10
DECLARE total : INTEGER
total <- 0
FOR i <- 1 TO limit
    total <- total + i
NEXT
OUTPUT "total =", total
`
	block, idents, err := ParseBlock(source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(block.Contents) != 5 {
		t.Fatalf("statement count expected=5, got=%d", len(block.Contents))
	}
	// limit, total, i — in first-seen order.
	want := []string{"limit", "total", "i"}
	if len(idents) != len(want) {
		t.Fatalf("identifier count expected=%d, got=%d (%v)", len(want), len(idents), idents)
	}
	for i, spelling := range want {
		if idents[i] != spelling {
			t.Errorf("identifier %d expected=%q, got=%q", i, spelling, idents[i])
		}
	}
}

func TestParseExpressionEndToEnd(t *testing.T) {
	expr, _, err := ParseExpression("1 + 2 * 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := expr.String(); got != "(1 + (2 * 3))" {
		t.Errorf("tree expected=%s, got=%s", "(1 + (2 * 3))", got)
	}
}

func TestParseStatementEndToEnd(t *testing.T) {
	stmt, _, err := ParseStatement("IF x THEN y <- 1 ENDIF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := stmt.(*ast.IfStmt); !ok {
		t.Errorf("statement is not *ast.IfStmt. got=%T", stmt)
	}
}

func TestParseSurfacesSyntaxError(t *testing.T) {
	_, _, err := ParseStatement("CONSTANT x <- foo()")
	var ute *parser.UnexpectedTokenError
	if !errors.As(err, &ute) {
		t.Fatalf("error expected=*parser.UnexpectedTokenError, got=%T (%v)", err, err)
	}
}

func TestParseSurfacesLexicalErrors(t *testing.T) {
	_, _, err := ParseBlock("x <- @")
	var lex LexicalErrors
	if !errors.As(err, &lex) {
		t.Fatalf("error expected=LexicalErrors, got=%T (%v)", err, err)
	}
	if len(lex) != 1 {
		t.Errorf("lexical error count expected=1, got=%d", len(lex))
	}
}

func TestScanEndToEnd(t *testing.T) {
	tokens, errs := Scan(`OUTPUT "hi" // greet`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != 2 {
		t.Fatalf("token count expected=2, got=%d", len(tokens))
	}
}
