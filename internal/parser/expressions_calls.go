package parser

import (
	"github.com/funvibe/parfun/internal/ast"
	"github.com/funvibe/parfun/internal/diagnostics"
	"github.com/funvibe/parfun/internal/token"
)

// parseAtomOrQualifiedCall handles a lowercase identifier, which is either a
// bare atom or the module part of a qualified call m:f(...).
func (p *Parser) parseAtomOrQualifiedCall() ast.Expression {
	if p.peekTokenIs(token.COLON) {
		return p.parseQualifiedCall()
	}
	return &ast.AtomLiteral{Token: p.curToken, Value: p.curToken.Literal.(string)}
}

func (p *Parser) parseQualifiedCall() ast.Expression {
	call := &ast.QualifiedCall{
		Token:  p.curToken,
		Module: p.curToken.Literal.(string),
	}

	p.nextToken() // move to :
	if !p.expectPeek(token.IDENT_LOWER) {
		return nil
	}
	call.Function = p.curToken.Literal.(string)

	if !p.peekTokenIs(token.LPAREN) {
		p.addError(diagnostics.ErrP004, p.peekToken,
			"qualified reference %s:%s must be called or wrapped in fun", call.Module, call.Function)
		return nil
	}
	p.nextToken() // consume (

	call.Arguments = p.parseCallArguments()
	if call.Arguments == nil {
		return nil
	}
	return call
}

// parseCallExpression handles invocation of a callable value: F(1, 2).
func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: function}
	exp.Arguments = p.parseCallArguments()
	if exp.Arguments == nil {
		return nil
	}
	return exp
}

// parseCallArguments parses a comma-separated argument list. The caller has
// already consumed the opening parenthesis as curToken. Returns nil on
// parse error, and a non-nil empty slice for an empty argument list.
func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	// Skip newlines after (
	for p.peekTokenIs(token.NEWLINE) {
		p.nextToken()
	}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}

	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	args = append(args, expr)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken() // consume comma
		// Skip newlines after comma
		for p.peekTokenIs(token.NEWLINE) {
			p.nextToken()
		}
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		args = append(args, expr)
	}

	// Skip trailing newlines before )
	for p.peekTokenIs(token.NEWLINE) {
		p.nextToken()
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return args
}

func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	list := []ast.Expression{}

	for p.peekTokenIs(token.NEWLINE) {
		p.nextToken()
	}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	list = append(list, expr)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		for p.peekTokenIs(token.NEWLINE) {
			p.nextToken()
		}
		p.nextToken()
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		list = append(list, expr)
	}

	for p.peekTokenIs(token.NEWLINE) {
		p.nextToken()
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}
