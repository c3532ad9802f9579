package evaluator

import (
	"github.com/funvibe/parfun/internal/ast"
	"github.com/funvibe/parfun/internal/partial"
)

func (e *Evaluator) evalQualifiedCall(node *ast.QualifiedCall, env *Environment) Object {
	target, ok := e.Resolver.Resolve(node.Module, node.Function, len(node.Arguments))
	if !ok {
		tok := node.GetToken()
		return newErrorWithLocation(tok.Line, tok.Column,
			"undefined function %s:%s/%d", node.Module, node.Function, len(node.Arguments))
	}

	args := e.evalExpressions(node.Arguments, env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}

	return e.located(node, target.Invoke(args))
}

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *Environment) Object {
	function := e.Eval(node.Function, env)
	if isError(function) {
		return function
	}

	callable, ok := function.(Callable)
	if !ok {
		tok := node.GetToken()
		return newErrorWithLocation(tok.Line, tok.Column, "not a function: %s", function.Type())
	}

	args := e.evalExpressions(node.Arguments, env)
	if len(args) == 1 && isError(args[0]) {
		return args[0]
	}

	return e.located(node, callable.Invoke(args))
}

// evalFunExpression synthesizes a closure from a fun call with placeholders.
// Bound arguments are evaluated left to right and captured by value here,
// exactly once; missing slots are filled only at invocation.
func (e *Evaluator) evalFunExpression(node *ast.FunExpression, env *Environment) Object {
	slots := partial.Classify(node.Call.Arguments)
	plan := partial.Reduce(slots)

	target, ok := e.Resolver.Resolve(node.Call.Module, node.Call.Function, len(slots))
	if !ok {
		tok := node.GetToken()
		return newErrorWithLocation(tok.Line, tok.Column,
			"undefined function %s:%s/%d", node.Call.Module, node.Call.Function, len(slots))
	}

	captured := make([]Object, len(slots))
	for i, slot := range slots {
		if slot.Kind != partial.Bound {
			continue
		}
		val := e.Eval(slot.Expr, env)
		if isError(val) {
			return val
		}
		captured[i] = val
	}

	return &Closure{Target: target, Captured: captured, ParamSlots: plan.ParamSlots}
}

// evalFunArityExpression handles the fun m:f/N shorthand, which behaves
// identically to fun m:f(_, ..., _) with N placeholders.
func (e *Evaluator) evalFunArityExpression(node *ast.FunArityExpression) Object {
	target, ok := e.Resolver.Resolve(node.Module, node.Function, node.Arity)
	if !ok {
		tok := node.GetToken()
		return newErrorWithLocation(tok.Line, tok.Column,
			"undefined function %s:%s/%d", node.Module, node.Function, node.Arity)
	}

	plan := partial.FullPlan(node.Arity)
	return &Closure{
		Target:     target,
		Captured:   make([]Object, node.Arity),
		ParamSlots: plan.ParamSlots,
	}
}

// located stamps the call site onto errors that carry no position yet.
func (e *Evaluator) located(node ast.Expression, result Object) Object {
	if err, ok := result.(*Error); ok && err.Line == 0 {
		tok := node.GetToken()
		err.Line = tok.Line
		err.Column = tok.Column
	}
	return result
}
