package scanner

import "github.com/pseudo-lang/pseudo/internal/compiler/token"

// TokenStream is a lazy sequence of token-or-error results over one source
// text. With skipTrivia set it silently drops whitespace and comment marker
// tokens; errors are never filtered.
type TokenStream struct {
	scanner    *Scanner
	skipTrivia bool
}

// NewStream returns a stream over source. Pass skipTrivia=false to see the
// whitespace and comment markers, e.g. for exact source reconstruction.
func NewStream(source string, skipTrivia bool) *TokenStream {
	return &TokenStream{scanner: New(source), skipTrivia: skipTrivia}
}

// Tokens returns the filtering stream parsers consume.
func Tokens(source string) *TokenStream {
	return NewStream(source, true)
}

// Next returns the next token or lexical error. The stream ends with a
// TokenEOF token.
func (ts *TokenStream) Next() (token.Token, error) {
	tok, err := ts.scanner.Next()
	if ts.skipTrivia {
		for err == nil && (tok.Type == token.TokenWhitespace || tok.Type == token.TokenComment) {
			tok, err = ts.scanner.Next()
		}
	}
	return tok, err
}

// Scan tokenizes the entire input, returning every token and every lexical
// error found. It does not stop at the first error: each token is classified
// independently of prior failures. Whitespace and comments are filtered; the
// trailing EOF sentinel is not included.
func Scan(source string) ([]token.Token, []*Error) {
	var tokens []token.Token
	var errs []*Error
	ts := Tokens(source)
	for {
		tok, err := ts.Next()
		if err != nil {
			errs = append(errs, err.(*Error))
			continue
		}
		if tok.Type == token.TokenEOF {
			return tokens, errs
		}
		tokens = append(tokens, tok)
	}
}
