package token

import "fmt"

// Location is a 1-based line/column position in source text. It is copied by
// value; only the scanner advances one.
type Location struct {
	Line   int
	Column int
}

func NewLocation() Location {
	return Location{Line: 1, Column: 1}
}

// Advance moves the location past c. A newline starts the next line at
// column 1.
func (l *Location) Advance(c rune) {
	if c == '\n' {
		l.Line++
		l.Column = 1
	} else {
		l.Column++
	}
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

type TokenType string

const (
	// Reserved words
	TokenProcedure    TokenType = "PROCEDURE"
	TokenEndProcedure TokenType = "ENDPROCEDURE"
	TokenFunction     TokenType = "FUNCTION"
	TokenReturns      TokenType = "RETURNS"
	TokenEndFunction  TokenType = "ENDFUNCTION"
	TokenReturn       TokenType = "RETURN"

	TokenIf        TokenType = "IF"
	TokenThen      TokenType = "THEN"
	TokenElse      TokenType = "ELSE"
	TokenEndIf     TokenType = "ENDIF"
	TokenCase      TokenType = "CASE"
	TokenOtherwise TokenType = "OTHERWISE"
	TokenEndCase   TokenType = "ENDCASE"
	TokenFor       TokenType = "FOR"
	TokenTo        TokenType = "TO"
	TokenStep      TokenType = "STEP"
	TokenNext      TokenType = "NEXT"
	TokenRepeat    TokenType = "REPEAT"
	TokenUntil     TokenType = "UNTIL"
	TokenWhile     TokenType = "WHILE"
	TokenDo        TokenType = "DO"
	TokenEndWhile  TokenType = "ENDWHILE"

	TokenDeclare  TokenType = "DECLARE"
	TokenConstant TokenType = "CONSTANT"
	TokenInput    TokenType = "INPUT"
	TokenOutput   TokenType = "OUTPUT"
	TokenCall     TokenType = "CALL"

	TokenOpenFile  TokenType = "OPENFILE"
	TokenReadFile  TokenType = "READFILE"
	TokenWriteFile TokenType = "WRITEFILE"
	TokenCloseFile TokenType = "CLOSEFILE"
	TokenRead      TokenType = "READ"
	TokenWrite     TokenType = "WRITE"

	TokenInteger TokenType = "INTEGER"
	TokenReal    TokenType = "REAL"
	TokenChar    TokenType = "CHAR"
	TokenString  TokenType = "STRING"
	TokenBoolean TokenType = "BOOLEAN"
	TokenArray   TokenType = "ARRAY"
	TokenOf      TokenType = "OF"

	TokenAnd TokenType = "AND"
	TokenOr  TokenType = "OR"
	TokenNot TokenType = "NOT"

	// Symbols
	TokenLParen       TokenType = "LPAREN"    // (
	TokenRParen       TokenType = "RPAREN"    // )
	TokenLBracket     TokenType = "LBRACKET"  // [
	TokenRBracket     TokenType = "RBRACKET"  // ]
	TokenPlus         TokenType = "PLUS"      // +
	TokenMinus        TokenType = "MINUS"     // -
	TokenStar         TokenType = "STAR"      // *
	TokenSlash        TokenType = "SLASH"     // /
	TokenCaret        TokenType = "CARET"     // ^
	TokenEqual        TokenType = "EQUAL"     // =
	TokenNotEqual     TokenType = "NOTEQUAL"  // <>
	TokenLessEqual    TokenType = "LESSEQ"    // <=
	TokenGreaterEqual TokenType = "GREATEREQ" // >=
	TokenLess         TokenType = "LESS"      // <
	TokenGreater      TokenType = "GREATER"   // >
	TokenComma        TokenType = "COMMA"     // ,
	TokenColon        TokenType = "COLON"     // :
	TokenLArrow       TokenType = "LARROW"    // <-

	// Literals & identifiers
	TokenIdentifier     TokenType = "IDENT"
	TokenCharLiteral    TokenType = "CHAR_LIT"
	TokenStringLiteral  TokenType = "STRING_LIT"
	TokenIntegerLiteral TokenType = "INTEGER_LIT"
	TokenRealLiteral    TokenType = "REAL_LIT"
	TokenBooleanLiteral TokenType = "BOOLEAN_LIT"

	// Internal markers, dropped by the filtering token stream
	TokenWhitespace TokenType = "WHITESPACE"
	TokenComment    TokenType = "COMMENT"

	// End of input sentinel; never part of a materialized token run
	TokenEOF TokenType = "EOF"
)

// Token is the smallest lexical unit: a type, the exact source slice it was
// derived from, and the position of its first character. Literal carries the
// decoded value for literal-carrying types (rune, string, int64, float64,
// bool); it is nil for every other type. Tokens are immutable once created.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Loc     Location
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Loc, t.Type, t.Lexeme)
}

// keywords maps reserved spellings to their token types. Lookup is
// case-sensitive: "declare" is an ordinary identifier, "DECLARE" is not.
var keywords = map[string]TokenType{
	"PROCEDURE":    TokenProcedure,
	"ENDPROCEDURE": TokenEndProcedure,
	"FUNCTION":     TokenFunction,
	"RETURNS":      TokenReturns,
	"ENDFUNCTION":  TokenEndFunction,
	"RETURN":       TokenReturn,
	"IF":           TokenIf,
	"THEN":         TokenThen,
	"ELSE":         TokenElse,
	"ENDIF":        TokenEndIf,
	"CASE":         TokenCase,
	"OTHERWISE":    TokenOtherwise,
	"ENDCASE":      TokenEndCase,
	"FOR":          TokenFor,
	"TO":           TokenTo,
	"STEP":         TokenStep,
	"NEXT":         TokenNext,
	"REPEAT":       TokenRepeat,
	"UNTIL":        TokenUntil,
	"WHILE":        TokenWhile,
	"DO":           TokenDo,
	"ENDWHILE":     TokenEndWhile,
	"DECLARE":      TokenDeclare,
	"CONSTANT":     TokenConstant,
	"INPUT":        TokenInput,
	"OUTPUT":       TokenOutput,
	"CALL":         TokenCall,
	"OPENFILE":     TokenOpenFile,
	"READFILE":     TokenReadFile,
	"WRITEFILE":    TokenWriteFile,
	"CLOSEFILE":    TokenCloseFile,
	"READ":         TokenRead,
	"WRITE":        TokenWrite,
	"INTEGER":      TokenInteger,
	"REAL":         TokenReal,
	"CHAR":         TokenChar,
	"STRING":       TokenString,
	"BOOLEAN":      TokenBoolean,
	"ARRAY":        TokenArray,
	"OF":           TokenOf,
	"AND":          TokenAnd,
	"OR":           TokenOr,
	"NOT":          TokenNot,
	"TRUE":         TokenBooleanLiteral,
	"FALSE":        TokenBooleanLiteral,
}

// LookupIdent returns the reserved token type for a spelling, or
// TokenIdentifier if the spelling is not reserved.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return TokenIdentifier
}
