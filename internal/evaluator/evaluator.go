package evaluator

import (
	"github.com/funvibe/parfun/internal/ast"
)

type Evaluator struct {
	// Resolver is the injected module/function resolution capability.
	Resolver Resolver

	// CurrentFile being evaluated; stamped onto runtime errors.
	CurrentFile string
}

func New(resolver Resolver) *Evaluator {
	return &Evaluator{Resolver: resolver}
}

// Eval evaluates an AST node in an environment. Errors are returned as
// *Error objects, never panics.
func (e *Evaluator) Eval(node ast.Node, env *Environment) Object {
	switch node := node.(type) {
	case *ast.Program:
		return e.evalProgram(node, env)
	case *ast.BindStatement:
		return e.evalBindStatement(node, env)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expression, env)

	case *ast.IntegerLiteral:
		return &Integer{Value: node.Value}
	case *ast.FloatLiteral:
		return &Float{Value: node.Value}
	case *ast.StringLiteral:
		return &String{Value: node.Value}
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(node.Value)
	case *ast.AtomLiteral:
		return &Atom{Value: node.Value}
	case *ast.NilLiteral:
		return NIL
	case *ast.ListLiteral:
		return e.evalListLiteral(node, env)
	case *ast.Identifier:
		return e.evalIdentifier(node, env)

	case *ast.PrefixExpression:
		return e.evalPrefixExpression(node, env)
	case *ast.InfixExpression:
		return e.evalInfixExpression(node, env)

	case *ast.QualifiedCall:
		return e.evalQualifiedCall(node, env)
	case *ast.CallExpression:
		return e.evalCallExpression(node, env)
	case *ast.FunExpression:
		return e.evalFunExpression(node, env)
	case *ast.FunArityExpression:
		return e.evalFunArityExpression(node)

	case *ast.Placeholder:
		// The scanner rejects stray placeholders before evaluation; reaching
		// one here means the scan stage was skipped.
		tok := node.GetToken()
		return newErrorWithLocation(tok.Line, tok.Column, "placeholder outside fun call")
	}

	return newError("unknown node type: %T", node)
}

func (e *Evaluator) evalProgram(program *ast.Program, env *Environment) Object {
	var result Object = NIL
	e.CurrentFile = program.File

	for _, statement := range program.Statements {
		result = e.Eval(statement, env)
		if isError(result) {
			if err, ok := result.(*Error); ok && err.File == "" {
				err.File = e.CurrentFile
			}
			return result
		}
	}

	return result
}

func (e *Evaluator) evalBindStatement(node *ast.BindStatement, env *Environment) Object {
	val := e.Eval(node.Value, env)
	if isError(val) {
		return val
	}
	env.Set(node.Name.Value, val)
	return val
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *Environment) Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	tok := node.GetToken()
	return newErrorWithLocation(tok.Line, tok.Column, "unbound variable: %s", node.Value)
}

func (e *Evaluator) evalListLiteral(node *ast.ListLiteral, env *Environment) Object {
	elements := e.evalExpressions(node.Elements, env)
	if len(elements) == 1 && isError(elements[0]) {
		return elements[0]
	}
	return &List{Elements: elements}
}

// evalExpressions evaluates in source order; on error returns a single-element
// slice holding the error.
func (e *Evaluator) evalExpressions(exprs []ast.Expression, env *Environment) []Object {
	result := make([]Object, 0, len(exprs))
	for _, expr := range exprs {
		evaluated := e.Eval(expr, env)
		if isError(evaluated) {
			return []Object{evaluated}
		}
		result = append(result, evaluated)
	}
	return result
}
