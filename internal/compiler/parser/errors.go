package parser

import (
	"errors"
	"fmt"

	"github.com/pseudo-lang/pseudo/internal/compiler/token"
)

// ErrUnexpectedEOF reports that the token run ended mid-construct. Syntax
// errors are fatal to the current parse call; no partial tree is returned.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// UnexpectedTokenError carries the actual offending token of a failed parse.
type UnexpectedTokenError struct {
	Token token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s: unexpected token %s (%q)", e.Token.Loc, e.Token.Type, e.Token.Lexeme)
}
