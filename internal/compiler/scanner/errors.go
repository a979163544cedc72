package scanner

import (
	"fmt"

	"github.com/pseudo-lang/pseudo/internal/compiler/token"
)

// ErrorKind discriminates the lexical error taxonomy. Lexical errors are
// non-fatal: the scanner keeps classifying tokens past them.
type ErrorKind int

const (
	InvalidCharLiteral ErrorKind = iota
	UnterminatedString
	InvalidRealLiteral
	UnexpectedCharacter
)

// Error is a lexical error at a source location. Char is only meaningful for
// UnexpectedCharacter.
type Error struct {
	Kind ErrorKind
	Char rune
	Loc  token.Location
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidCharLiteral:
		return fmt.Sprintf("%s: invalid character literal", e.Loc)
	case UnterminatedString:
		return fmt.Sprintf("%s: unterminated string literal", e.Loc)
	case InvalidRealLiteral:
		return fmt.Sprintf("%s: invalid real literal", e.Loc)
	case UnexpectedCharacter:
		return fmt.Sprintf("%s: unexpected character %q", e.Loc, e.Char)
	default:
		return fmt.Sprintf("%s: unknown lexical error", e.Loc)
	}
}
