package parser

import (
	"github.com/funvibe/parfun/internal/ast"
	"github.com/funvibe/parfun/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	// Var = expr is a binding; everything else is an expression statement.
	// Failed parses must return an untyped nil, not a nil concrete pointer,
	// so the caller's nil check triggers statement-boundary recovery.
	if p.curTokenIs(token.IDENT_UPPER) && p.peekTokenIs(token.ASSIGN) {
		if stmt := p.parseBindStatement(); stmt != nil {
			return stmt
		}
		return nil
	}
	if stmt := p.parseExpressionStatement(); stmt != nil {
		return stmt
	}
	return nil
}

func (p *Parser) parseBindStatement() *ast.BindStatement {
	stmt := &ast.BindStatement{Token: p.curToken}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}

	p.nextToken() // move to =
	p.nextToken() // move past =

	// Allow the value on the next line
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	return stmt
}
