package parser

import (
	"testing"

	"github.com/pseudo-lang/pseudo/internal/compiler/token"
)

func testTokens(types ...token.TokenType) []token.Token {
	out := make([]token.Token, len(types))
	for i, tt := range types {
		out[i] = token.Token{Type: tt}
	}
	return out
}

func TestBufferCursor(t *testing.T) {
	b := NewTokenBuffer(testTokens(token.TokenIf, token.TokenIdentifier, token.TokenThen))

	if tt, ok := b.Peek(); !ok || tt != token.TokenIf {
		t.Fatalf("peek expected=IF, got=%v %v", tt, ok)
	}
	if b.Pos() != 0 {
		t.Errorf("peek moved the cursor to %d", b.Pos())
	}

	tok, ok := b.Next()
	if !ok || tok.Type != token.TokenIf {
		t.Fatalf("next expected=IF, got=%v %v", tok, ok)
	}

	b.Unread()
	if b.Pos() != 0 {
		t.Errorf("unread: cursor expected=0, got=%d", b.Pos())
	}

	b.Next()
	b.Next()
	b.Next()
	if _, ok := b.Next(); ok {
		t.Error("next past the end expected=false, got=true")
	}
	if b.Pos() != 3 {
		t.Errorf("cursor expected=3 at end, got=%d", b.Pos())
	}
}

func TestBufferNextIf(t *testing.T) {
	b := NewTokenBuffer(testTokens(token.TokenElse, token.TokenEndIf))

	if b.NextIf(token.TokenStep) {
		t.Error("non-matching soft consume expected=false, got=true")
	}
	if b.Pos() != 0 {
		t.Errorf("non-matching soft consume moved the cursor to %d", b.Pos())
	}
	if !b.NextIf(token.TokenElse) {
		t.Error("matching soft consume expected=true, got=false")
	}
	if b.Pos() != 1 {
		t.Errorf("cursor expected=1, got=%d", b.Pos())
	}
}

func TestBufferRewind(t *testing.T) {
	b := NewTokenBuffer(testTokens(token.TokenIdentifier, token.TokenLArrow, token.TokenEndIf))
	mark := b.Pos()
	b.Next()
	b.Next()
	b.Rewind(mark)
	if tt, _ := b.Peek(); tt != token.TokenIdentifier {
		t.Errorf("after rewind peek expected=IDENT, got=%s", tt)
	}
}

func TestInternerDenseHandles(t *testing.T) {
	in := NewInterner()
	if h := in.Intern("x"); h != 0 {
		t.Errorf("first handle expected=0, got=%d", h)
	}
	if h := in.Intern("y"); h != 1 {
		t.Errorf("second handle expected=1, got=%d", h)
	}
	if h := in.Intern("x"); h != 0 {
		t.Errorf("repeated spelling expected=0, got=%d", h)
	}
	if in.Len() != 2 {
		t.Errorf("len expected=2, got=%d", in.Len())
	}
	if in.Spelling(1) != "y" {
		t.Errorf("spelling(1) expected=y, got=%q", in.Spelling(1))
	}
	if got := in.Spellings(); len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Errorf("spellings expected=[x y], got=%v", got)
	}
}
