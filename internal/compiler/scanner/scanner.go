package scanner

import (
	"strconv"
	"unicode/utf8"

	"github.com/pseudo-lang/pseudo/internal/compiler/token"
)

// Scanner classifies a raw character stream into tokens. Each call to Next
// consumes at least one character. Lexical errors do not stop the scanner;
// the caller may keep pulling tokens past them.
type Scanner struct {
	source string
	pos    int // byte offset of the next unread rune
	start  int // byte offset of the current lexeme's first rune

	loc      token.Location // location of the next unread rune
	startLoc token.Location // location of the current lexeme's first rune
}

func New(source string) *Scanner {
	return &Scanner{source: source, loc: token.NewLocation()}
}

func (s *Scanner) atEnd() bool {
	return s.pos >= len(s.source)
}

// checkNext reports whether the next rune exists and satisfies cond, without
// consuming it.
func (s *Scanner) checkNext(cond func(rune) bool) bool {
	if s.atEnd() {
		return false
	}
	c, _ := utf8.DecodeRuneInString(s.source[s.pos:])
	return cond(c)
}

func (s *Scanner) advance() (rune, bool) {
	if s.atEnd() {
		return 0, false
	}
	c, size := utf8.DecodeRuneInString(s.source[s.pos:])
	s.pos += size
	s.loc.Advance(c)
	return c, true
}

func (s *Scanner) advanceIfMatch(target rune) bool {
	if s.checkNext(func(c rune) bool { return c == target }) {
		s.advance()
		return true
	}
	return false
}

func (s *Scanner) advanceWhile(cond func(rune) bool) {
	for s.checkNext(cond) {
		s.advance()
	}
}

// lexeme is the exact source slice consumed since the last Next call began.
func (s *Scanner) lexeme() string {
	return s.source[s.start:s.pos]
}

func (s *Scanner) makeToken(tt token.TokenType, literal any) token.Token {
	return token.Token{Type: tt, Lexeme: s.lexeme(), Literal: literal, Loc: s.startLoc}
}

// Next scans one token. At end of input it returns a TokenEOF token with an
// empty lexeme. A non-nil error is always of type *Error; the token returned
// alongside it is the zero Token.
func (s *Scanner) Next() (token.Token, error) {
	s.start = s.pos
	s.startLoc = s.loc

	c, ok := s.advance()
	if !ok {
		return token.Token{Type: token.TokenEOF, Loc: s.loc}, nil
	}

	switch {
	case c == '(':
		return s.makeToken(token.TokenLParen, nil), nil
	case c == ')':
		return s.makeToken(token.TokenRParen, nil), nil
	case c == '[':
		return s.makeToken(token.TokenLBracket, nil), nil
	case c == ']':
		return s.makeToken(token.TokenRBracket, nil), nil
	case c == '+':
		return s.makeToken(token.TokenPlus, nil), nil
	case c == '-':
		// A minus directly followed by a digit merges into the numeric
		// literal: "-5" is one token, "3-5" is three.
		if s.checkNext(isDigit) {
			return s.number()
		}
		return s.makeToken(token.TokenMinus, nil), nil
	case c == '*':
		return s.makeToken(token.TokenStar, nil), nil
	case c == '/':
		if s.advanceIfMatch('/') {
			return s.comment(), nil
		}
		return s.makeToken(token.TokenSlash, nil), nil
	case c == '^':
		return s.makeToken(token.TokenCaret, nil), nil
	case c == '=':
		return s.makeToken(token.TokenEqual, nil), nil
	case c == '>':
		if s.advanceIfMatch('=') {
			return s.makeToken(token.TokenGreaterEqual, nil), nil
		}
		return s.makeToken(token.TokenGreater, nil), nil
	case c == '<':
		if s.advanceIfMatch('=') {
			return s.makeToken(token.TokenLessEqual, nil), nil
		} else if s.advanceIfMatch('>') {
			return s.makeToken(token.TokenNotEqual, nil), nil
		} else if s.advanceIfMatch('-') {
			return s.makeToken(token.TokenLArrow, nil), nil
		}
		return s.makeToken(token.TokenLess, nil), nil
	case c == ',':
		return s.makeToken(token.TokenComma, nil), nil
	case c == ':':
		return s.makeToken(token.TokenColon, nil), nil
	case c == '\'':
		return s.charLiteral()
	case c == '"':
		return s.stringLiteral()
	case isAlpha(c):
		return s.identifier(), nil
	case isDigit(c):
		return s.number()
	case isSpace(c):
		return s.whitespace(), nil
	default:
		return token.Token{}, &Error{Kind: UnexpectedCharacter, Char: c, Loc: s.loc}
	}
}

// comment consumes to, not including, the next newline.
func (s *Scanner) comment() token.Token {
	s.advanceWhile(func(c rune) bool { return c != '\n' })
	return s.makeToken(token.TokenComment, nil)
}

// charLiteral scans the remainder of 'c'. Exactly one character must sit
// between the quotes; that character may itself be a quote-mate like '"' or
// a backslash, since no escape sequences exist.
func (s *Scanner) charLiteral() (token.Token, error) {
	c, ok := s.advance()
	if !ok {
		return token.Token{}, &Error{Kind: InvalidCharLiteral, Loc: s.loc}
	}
	if !s.advanceIfMatch('\'') {
		return token.Token{}, &Error{Kind: InvalidCharLiteral, Loc: s.loc}
	}
	return s.makeToken(token.TokenCharLiteral, c), nil
}

// stringLiteral scans the remainder of "...". The literal is bounded by the
// closing quote or, failing that, the end of the line; backslash sequences
// pass through without interpretation.
func (s *Scanner) stringLiteral() (token.Token, error) {
	s.advanceWhile(func(c rune) bool { return c != '"' && c != '\n' })
	if !s.advanceIfMatch('"') {
		return token.Token{}, &Error{Kind: UnterminatedString, Loc: s.loc}
	}
	lex := s.lexeme()
	return s.makeToken(token.TokenStringLiteral, lex[1:len(lex)-1]), nil
}

// identifier scans a maximal run of ASCII letters and classifies it against
// the reserved-word table.
func (s *Scanner) identifier() token.Token {
	s.advanceWhile(isAlpha)
	lex := s.lexeme()
	tt := token.LookupIdent(lex)
	if tt == token.TokenBooleanLiteral {
		return s.makeToken(tt, lex == "TRUE")
	}
	return s.makeToken(tt, nil)
}

// number scans the remainder of an integer or real literal, including the
// merged-minus case where the leading '-' has already been consumed.
func (s *Scanner) number() (token.Token, error) {
	s.advanceWhile(isDigit)
	if s.advanceIfMatch('.') {
		if !s.checkNext(isDigit) {
			return token.Token{}, &Error{Kind: InvalidRealLiteral, Loc: s.loc}
		}
		s.advanceWhile(isDigit)
		// Accepted digit runs are always valid decimal.
		v, _ := strconv.ParseFloat(s.lexeme(), 64)
		return s.makeToken(token.TokenRealLiteral, v), nil
	}
	v, _ := strconv.ParseInt(s.lexeme(), 10, 64)
	return s.makeToken(token.TokenIntegerLiteral, v), nil
}

func (s *Scanner) whitespace() token.Token {
	s.advanceWhile(isSpace)
	return s.makeToken(token.TokenWhitespace, nil)
}

func isAlpha(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
