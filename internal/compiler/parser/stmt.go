package parser

import (
	"github.com/pseudo-lang/pseudo/internal/compiler/ast"
	"github.com/pseudo-lang/pseudo/internal/compiler/token"
)

// parseStatement dispatches on one token of keyword lookahead. A keyword
// with no branch here (CASE, CALL, the file-I/O statements) falls through to
// the assignment fallback and surfaces as an UnexpectedToken; new statement
// forms slot in as additional cases.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	tt, ok := p.tokens.Peek()
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	switch tt {
	case token.TokenProcedure:
		return p.parseProcedureDecl()
	case token.TokenFunction:
		return p.parseFunctionDecl()
	case token.TokenIf:
		return p.parseIf()
	case token.TokenReturn:
		return p.parseReturn()
	case token.TokenFor:
		return p.parseForLoop()
	case token.TokenRepeat:
		return p.parseRepeatUntil()
	case token.TokenWhile:
		return p.parseWhile()
	case token.TokenDeclare:
		return p.parseVariableDecl()
	case token.TokenConstant:
		return p.parseConstantDecl()
	case token.TokenInput:
		return p.parseInput()
	case token.TokenOutput:
		return p.parseOutput()
	default:
		return p.parseAssignment()
	}
}

// parseBlock repeatedly attempts a statement and stops at the first failure,
// restoring the cursor to before the failed attempt so the enclosing
// construct's terminator is the next token. Termination is structural,
// decided by the caller; the block never fails itself. The stopping error is
// returned for callers that need to report why the run ended.
func (p *Parser) parseBlock() (ast.Block, error) {
	var contents []ast.Stmt
	for {
		mark := p.tokens.Pos()
		stmt, err := p.parseStatement()
		if err != nil {
			p.tokens.Rewind(mark)
			return ast.Block{Contents: contents}, err
		}
		contents = append(contents, stmt)
	}
}

// parseName consumes an identifier token and interns its spelling.
func (p *Parser) parseName() (int, error) {
	tok, ok := p.tokens.Next()
	if !ok {
		return 0, ErrUnexpectedEOF
	}
	if tok.Type != token.TokenIdentifier {
		return 0, &UnexpectedTokenError{Token: tok}
	}
	return p.idents.Intern(tok.Lexeme), nil
}

func (p *Parser) parseProcedureDecl() (ast.Stmt, error) {
	p.tokens.Next() // PROCEDURE
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	body, _ := p.parseBlock()
	if err := p.consume(token.TokenEndProcedure); err != nil {
		return nil, err
	}
	return &ast.ProcedureDeclStmt{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseFunctionDecl() (ast.Stmt, error) {
	p.tokens.Next() // FUNCTION
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.TokenReturns); err != nil {
		return nil, err
	}
	returns, err := p.parseType()
	if err != nil {
		return nil, err
	}
	body, _ := p.parseBlock()
	if err := p.consume(token.TokenEndFunction); err != nil {
		return nil, err
	}
	return &ast.FunctionDeclStmt{Name: name, Params: params, Returns: returns, Body: body}, nil
}

// parseParameterList parses '(' (name ':' type (',' name ':' type)*)? ')'.
func (p *Parser) parseParameterList() ([]ast.Parameter, error) {
	if err := p.consume(token.TokenLParen); err != nil {
		return nil, err
	}
	if p.tokens.NextIf(token.TokenRParen) {
		return nil, nil
	}
	var params []ast.Parameter
	for {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if err := p.consume(token.TokenColon); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Parameter{Name: name, Type: typ})
		if !p.tokens.NextIf(token.TokenComma) {
			break
		}
	}
	if err := p.consume(token.TokenRParen); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	p.tokens.Next() // IF
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.TokenThen); err != nil {
		return nil, err
	}
	then, _ := p.parseBlock()
	var elseBlock *ast.Block
	if p.tokens.NextIf(token.TokenElse) {
		b, _ := p.parseBlock()
		elseBlock = &b
	}
	if err := p.consume(token.TokenEndIf); err != nil {
		return nil, err
	}
	return &ast.IfStmt{Condition: condition, Then: then, Else: elseBlock}, nil
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	p.tokens.Next() // RETURN
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: value}, nil
}

func (p *Parser) parseForLoop() (ast.Stmt, error) {
	p.tokens.Next() // FOR
	target, err := p.parseAssignable()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.TokenLArrow); err != nil {
		return nil, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.TokenTo); err != nil {
		return nil, err
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var step ast.Expr
	if p.tokens.NextIf(token.TokenStep) {
		step, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	body, _ := p.parseBlock()
	if err := p.consume(token.TokenNext); err != nil {
		return nil, err
	}
	return &ast.ForLoopStmt{Target: target, Start: start, End: end, Step: step, Body: body}, nil
}

// parseRepeatUntil parses the body before its test.
func (p *Parser) parseRepeatUntil() (ast.Stmt, error) {
	p.tokens.Next() // REPEAT
	body, _ := p.parseBlock()
	if err := p.consume(token.TokenUntil); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.RepeatUntilStmt{Body: body, Condition: condition}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	p.tokens.Next() // WHILE
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.TokenDo); err != nil {
		return nil, err
	}
	body, _ := p.parseBlock()
	if err := p.consume(token.TokenEndWhile); err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: condition, Body: body}, nil
}

func (p *Parser) parseVariableDecl() (ast.Stmt, error) {
	p.tokens.Next() // DECLARE
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.TokenColon); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclStmt{Name: name, Type: typ}, nil
}

// parseConstantDecl requires a bare literal initializer, not an expression.
func (p *Parser) parseConstantDecl() (ast.Stmt, error) {
	p.tokens.Next() // CONSTANT
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.TokenLArrow); err != nil {
		return nil, err
	}
	value, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return &ast.ConstantDeclStmt{Name: name, Value: value}, nil
}

func (p *Parser) parseInput() (ast.Stmt, error) {
	p.tokens.Next() // INPUT
	targets, err := p.parseCommaExprs()
	if err != nil {
		return nil, err
	}
	return &ast.InputStmt{Targets: targets}, nil
}

func (p *Parser) parseOutput() (ast.Stmt, error) {
	p.tokens.Next() // OUTPUT
	values, err := p.parseCommaExprs()
	if err != nil {
		return nil, err
	}
	return &ast.OutputStmt{Values: values}, nil
}

// parseCommaExprs parses expr (',' expr)* with no closing delimiter.
func (p *Parser) parseCommaExprs() ([]ast.Expr, error) {
	var exprs []ast.Expr
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.tokens.NextIf(token.TokenComma) {
			return exprs, nil
		}
	}
}

// parseAssignment is the fallback for statements led by no recognized
// keyword: assignable '<-' expr.
func (p *Parser) parseAssignment() (ast.Stmt, error) {
	target, err := p.parseAssignable()
	if err != nil {
		return nil, err
	}
	if err := p.consume(token.TokenLArrow); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentStmt{Target: target, Value: value}, nil
}

// parseAssignable parses an identifier with optional call and index
// suffixes, e.g. grid[i, j].
func (p *Parser) parseAssignable() (ast.Expr, error) {
	tok, ok := p.tokens.Next()
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	if tok.Type != token.TokenIdentifier {
		return nil, &UnexpectedTokenError{Token: tok}
	}
	return p.parsePostfix(&ast.IdentifierExpr{Handle: p.idents.Intern(tok.Lexeme)})
}

// parseType handles the primitive types. ARRAY is reserved but has no
// grammar yet, so it lands in the failure case like any other token.
func (p *Parser) parseType() (ast.Type, error) {
	tok, ok := p.tokens.Next()
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	switch tok.Type {
	case token.TokenInteger:
		return ast.TypeInteger, nil
	case token.TokenReal:
		return ast.TypeReal, nil
	case token.TokenString:
		return ast.TypeString, nil
	case token.TokenChar:
		return ast.TypeChar, nil
	case token.TokenBoolean:
		return ast.TypeBoolean, nil
	default:
		return nil, &UnexpectedTokenError{Token: tok}
	}
}

func (p *Parser) parseLiteral() (ast.Literal, error) {
	tok, ok := p.tokens.Next()
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	switch tok.Type {
	case token.TokenCharLiteral, token.TokenStringLiteral, token.TokenIntegerLiteral,
		token.TokenRealLiteral, token.TokenBooleanLiteral:
		return literalFromToken(tok), nil
	default:
		return nil, &UnexpectedTokenError{Token: tok}
	}
}
