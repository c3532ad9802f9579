package parser

import (
	"github.com/funvibe/parfun/internal/ast"
	"github.com/funvibe/parfun/internal/diagnostics"
	"github.com/funvibe/parfun/internal/token"
)

// parseFunExpression handles both fun forms:
//
//	fun m:f(1, _, X)  partial application with placeholders
//	fun m:f/2         reference shorthand, all parameters missing
func (p *Parser) parseFunExpression() ast.Expression {
	funToken := p.curToken

	if !p.expectPeek(token.IDENT_LOWER) {
		return nil
	}
	module := p.curToken.Literal.(string)

	if !p.expectPeek(token.COLON) {
		return nil
	}
	if !p.expectPeek(token.IDENT_LOWER) {
		return nil
	}
	function := p.curToken.Literal.(string)

	switch {
	case p.peekTokenIs(token.SLASH):
		p.nextToken() // consume /
		if !p.expectPeek(token.INT) {
			return nil
		}
		arity := p.curToken.Literal.(int64)
		if arity < 0 {
			p.addError(diagnostics.ErrP003, p.curToken, "negative arity in fun %s:%s/%d", module, function, arity)
			return nil
		}
		return &ast.FunArityExpression{
			Token:    funToken,
			Module:   module,
			Function: function,
			Arity:    int(arity),
		}

	case p.peekTokenIs(token.LPAREN):
		p.nextToken() // consume (
		call := &ast.QualifiedCall{
			Token:    funToken,
			Module:   module,
			Function: function,
		}
		call.Arguments = p.parseCallArguments()
		if call.Arguments == nil {
			return nil
		}
		return &ast.FunExpression{Token: funToken, Call: call}

	default:
		p.addError(diagnostics.ErrP003, p.peekToken,
			"expected argument list or /arity after fun %s:%s", module, function)
		return nil
	}
}
