package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		spelling string
		want     TokenType
	}{
		{"DECLARE", TokenDeclare},
		{"ENDPROCEDURE", TokenEndProcedure},
		{"TRUE", TokenBooleanLiteral},
		{"FALSE", TokenBooleanLiteral},
		{"foo", TokenIdentifier},
		{"declare", TokenIdentifier}, // case-sensitive
		{"True", TokenIdentifier},
	}
	for _, tt := range tests {
		if got := LookupIdent(tt.spelling); got != tt.want {
			t.Errorf("LookupIdent(%q): expected=%s, got=%s", tt.spelling, tt.want, got)
		}
	}
}

func TestLocationAdvance(t *testing.T) {
	loc := NewLocation()
	if loc.Line != 1 || loc.Column != 1 {
		t.Fatalf("new location expected=1:1, got=%s", loc)
	}
	loc.Advance('a')
	if loc.Line != 1 || loc.Column != 2 {
		t.Errorf("after 'a' expected=1:2, got=%s", loc)
	}
	loc.Advance('\n')
	if loc.Line != 2 || loc.Column != 1 {
		t.Errorf("after newline expected=2:1, got=%s", loc)
	}
}
