package parser

import "github.com/pseudo-lang/pseudo/internal/compiler/token"

// TokenBuffer is a materialized, random-access token sequence with a movable
// cursor. Parsing needs backtracking, which a lazy pull-stream cannot
// support, so the whole token run is collected up front. The cursor is
// always within [0, len].
type TokenBuffer struct {
	items   []token.Token
	current int
}

func NewTokenBuffer(items []token.Token) *TokenBuffer {
	return &TokenBuffer{items: items}
}

// CurrentToken returns the token at the cursor without consuming it.
func (b *TokenBuffer) CurrentToken() (token.Token, bool) {
	if b.current < len(b.items) {
		return b.items[b.current], true
	}
	return token.Token{}, false
}

// Peek returns the type of the token at the cursor without consuming it.
func (b *TokenBuffer) Peek() (token.TokenType, bool) {
	tok, ok := b.CurrentToken()
	return tok.Type, ok
}

// Next consumes and returns the token at the cursor.
func (b *TokenBuffer) Next() (token.Token, bool) {
	tok, ok := b.CurrentToken()
	if ok {
		b.current++
	}
	return tok, ok
}

// NextIf consumes the token at the cursor only if it has the given type: the
// soft consume used for optional-clause probing. The cursor is untouched on
// a mismatch.
func (b *TokenBuffer) NextIf(tt token.TokenType) bool {
	if cur, ok := b.Peek(); ok && cur == tt {
		b.current++
		return true
	}
	return false
}

// Unread moves the cursor back exactly one token after a non-matching
// over-read.
func (b *TokenBuffer) Unread() {
	if b.current > 0 {
		b.current--
	}
}

// Pos returns the cursor for a later Rewind.
func (b *TokenBuffer) Pos() int {
	return b.current
}

// Rewind restores a cursor previously obtained from Pos.
func (b *TokenBuffer) Rewind(pos int) {
	b.current = pos
}
