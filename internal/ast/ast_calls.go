package ast

import (
	"fmt"
	"strings"

	"github.com/funvibe/parfun/internal/token"
)

// QualifiedCall is a module-qualified call: math:add(1, 2).
type QualifiedCall struct {
	Token     token.Token // The module name token
	Module    string
	Function  string
	Arguments []Expression
}

func (qc *QualifiedCall) expressionNode()      {}
func (qc *QualifiedCall) TokenLiteral() string { return qc.Token.Lexeme }
func (qc *QualifiedCall) GetToken() token.Token {
	if qc == nil {
		return token.Token{}
	}
	return qc.Token
}
func (qc *QualifiedCall) String() string {
	args := make([]string, len(qc.Arguments))
	for i, a := range qc.Arguments {
		args[i] = a.String()
	}
	return qc.Module + ":" + qc.Function + "(" + strings.Join(args, ", ") + ")"
}

// CallExpression invokes a callable value: F(1, 2).
type CallExpression struct {
	Token     token.Token // The ( token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}
func (ce *CallExpression) String() string {
	args := make([]string, len(ce.Arguments))
	for i, a := range ce.Arguments {
		args[i] = a.String()
	}
	return ce.Function.String() + "(" + strings.Join(args, ", ") + ")"
}

// FunExpression is the partial-application form: fun m:f(1, _, X).
// Placeholder arguments become parameters of the resulting closure.
type FunExpression struct {
	Token token.Token // The 'fun' token
	Call  *QualifiedCall
}

func (fe *FunExpression) expressionNode()      {}
func (fe *FunExpression) TokenLiteral() string { return fe.Token.Lexeme }
func (fe *FunExpression) GetToken() token.Token {
	if fe == nil {
		return token.Token{}
	}
	return fe.Token
}
func (fe *FunExpression) String() string { return "fun " + fe.Call.String() }

// FunArityExpression is the reference shorthand: fun m:f/2.
// Equivalent to fun m:f(_, _) with two placeholders.
type FunArityExpression struct {
	Token    token.Token // The 'fun' token
	Module   string
	Function string
	Arity    int
}

func (fa *FunArityExpression) expressionNode()      {}
func (fa *FunArityExpression) TokenLiteral() string { return fa.Token.Lexeme }
func (fa *FunArityExpression) GetToken() token.Token {
	if fa == nil {
		return token.Token{}
	}
	return fa.Token
}
func (fa *FunArityExpression) String() string {
	return fmt.Sprintf("fun %s:%s/%d", fa.Module, fa.Function, fa.Arity)
}
