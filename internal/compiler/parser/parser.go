// Package parser turns a materialized token sequence into an abstract syntax
// tree via operator-precedence recursive descent. Probing for optional
// clauses is single-token lookahead-with-undo over the buffer cursor, not a
// general backtracking search: no tree node is built before a probe commits.
package parser

import (
	"github.com/pseudo-lang/pseudo/internal/compiler/ast"
	"github.com/pseudo-lang/pseudo/internal/compiler/token"
)

// Parser owns one parse session: a backtrackable token buffer and the
// identifier interner scoped to it. It never mutates tokens, only the cursor
// and the interner. A single Parser must not be driven concurrently, but
// independent Parsers are fully isolated.
type Parser struct {
	tokens *TokenBuffer
	idents *Interner
}

func New(tokens []token.Token) *Parser {
	return &Parser{
		tokens: NewTokenBuffer(tokens),
		idents: NewInterner(),
	}
}

// Identifiers returns the interned spellings in handle order. Handle h in
// the produced tree names Identifiers()[h].
func (p *Parser) Identifiers() []string {
	return p.idents.Spellings()
}

// ParseExpression parses one expression from the token sequence. After a
// returned error the buffer cursor is unspecified; the session must not be
// resumed.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	return p.parseExpression()
}

// ParseStatement parses one statement, consuming through its terminator.
func (p *Parser) ParseStatement() (ast.Stmt, error) {
	return p.parseStatement()
}

// ParseBlock parses statements until the whole token run is consumed,
// typically a whole file. If statement parsing stops before the end of the
// run, the stopping error is returned and no partial tree.
func (p *Parser) ParseBlock() (ast.Block, error) {
	block, stop := p.parseBlock()
	if _, ok := p.tokens.CurrentToken(); ok {
		return ast.Block{}, stop
	}
	return block, nil
}

// consume advances past one token of the required type.
func (p *Parser) consume(tt token.TokenType) error {
	tok, ok := p.tokens.Next()
	if !ok {
		return ErrUnexpectedEOF
	}
	if tok.Type != tt {
		return &UnexpectedTokenError{Token: tok}
	}
	return nil
}

// --- Expression grammar, ascending precedence ---

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseLogicOr()
}

// parseBinaryLevel parses one left-associative binary precedence level:
// operand ( op operand )* for the operators in ops.
func (p *Parser) parseBinaryLevel(operand func() (ast.Expr, error), ops map[token.TokenType]ast.BinaryOperator) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		tt, ok := p.tokens.Peek()
		if !ok {
			break
		}
		op, ok := ops[tt]
		if !ok {
			break
		}
		p.tokens.Next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

var (
	logicOrOps  = map[token.TokenType]ast.BinaryOperator{token.TokenOr: ast.OpLogicOr}
	logicAndOps = map[token.TokenType]ast.BinaryOperator{token.TokenAnd: ast.OpLogicAnd}

	comparisonOps = map[token.TokenType]ast.BinaryOperator{
		token.TokenEqual:        ast.OpEqual,
		token.TokenNotEqual:     ast.OpNotEqual,
		token.TokenLess:         ast.OpLess,
		token.TokenLessEqual:    ast.OpLessEqual,
		token.TokenGreater:      ast.OpGreater,
		token.TokenGreaterEqual: ast.OpGreaterEqual,
	}

	termOps = map[token.TokenType]ast.BinaryOperator{
		token.TokenPlus:  ast.OpPlus,
		token.TokenMinus: ast.OpMinus,
	}

	factorOps = map[token.TokenType]ast.BinaryOperator{
		token.TokenStar:  ast.OpStar,
		token.TokenSlash: ast.OpSlash,
	}
)

func (p *Parser) parseLogicOr() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseLogicAnd, logicOrOps)
}

func (p *Parser) parseLogicAnd() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseComparison, logicAndOps)
}

func (p *Parser) parseComparison() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseLogicNot, comparisonOps)
}

// parseLogicNot is right-associative: NOT NOT a nests inward. NOT sits
// between the comparison and additive levels, so NOT a = b negates a alone
// while NOT a AND b still negates a whole comparison operand.
func (p *Parser) parseLogicNot() (ast.Expr, error) {
	if p.tokens.NextIf(token.TokenNot) {
		right, err := p.parseLogicNot()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Operator: ast.OpLogicNot, Right: right}, nil
	}
	return p.parseTerm()
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseFactor, termOps)
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	return p.parseBinaryLevel(p.parseCall, factorOps)
}

// parseCall parses a primary followed by a left-to-right postfix chain of
// call and index suffixes, e.g. grid[i, j](k)[0].
func (p *Parser) parseCall() (ast.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(left)
}

func (p *Parser) parsePostfix(left ast.Expr) (ast.Expr, error) {
	for {
		if p.tokens.NextIf(token.TokenLParen) {
			args, err := p.parseExprList(token.TokenRParen)
			if err != nil {
				return nil, err
			}
			left = &ast.FunctionCallExpr{Function: left, Args: args}
		} else if p.tokens.NextIf(token.TokenLBracket) {
			indexes, err := p.parseExprList(token.TokenRBracket)
			if err != nil {
				return nil, err
			}
			left = &ast.ArrayIndexExpr{Array: left, Indexes: indexes}
		} else {
			return left, nil
		}
	}
}

// parseExprList parses a comma-separated expression list up to and including
// the closing delimiter. An immediately-closed list is valid and empty; a
// trailing comma is a syntax error because the element parse after it fails.
func (p *Parser) parseExprList(closing token.TokenType) ([]ast.Expr, error) {
	if p.tokens.NextIf(closing) {
		return nil, nil
	}
	var exprs []ast.Expr
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.tokens.NextIf(token.TokenComma) {
			break
		}
	}
	if err := p.consume(closing); err != nil {
		return nil, err
	}
	return exprs, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok, ok := p.tokens.Next()
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	switch tok.Type {
	case token.TokenIdentifier:
		return &ast.IdentifierExpr{Handle: p.idents.Intern(tok.Lexeme)}, nil
	case token.TokenCharLiteral, token.TokenStringLiteral, token.TokenIntegerLiteral,
		token.TokenRealLiteral, token.TokenBooleanLiteral:
		return &ast.LiteralExpr{Value: literalFromToken(tok)}, nil
	case token.TokenLParen:
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.consume(token.TokenRParen); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, &UnexpectedTokenError{Token: tok}
	}
}

// literalFromToken lifts a literal-carrying token into the AST value union.
// The token must be one of the five literal types.
func literalFromToken(tok token.Token) ast.Literal {
	switch tok.Type {
	case token.TokenCharLiteral:
		return &ast.CharLiteral{Value: tok.Literal.(rune)}
	case token.TokenStringLiteral:
		return &ast.StringLiteral{Value: tok.Literal.(string)}
	case token.TokenIntegerLiteral:
		return &ast.IntegerLiteral{Value: tok.Literal.(int64)}
	case token.TokenRealLiteral:
		return &ast.RealLiteral{Value: tok.Literal.(float64)}
	case token.TokenBooleanLiteral:
		return &ast.BooleanLiteral{Value: tok.Literal.(bool)}
	default:
		panic("not a literal token: " + string(tok.Type))
	}
}
