package evaluator

import (
	"github.com/funvibe/parfun/internal/ast"
)

func (e *Evaluator) evalPrefixExpression(node *ast.PrefixExpression, env *Environment) Object {
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch node.Operator {
	case "-":
		switch r := right.(type) {
		case *Integer:
			return &Integer{Value: -r.Value}
		case *Float:
			return &Float{Value: -r.Value}
		}
		return e.operatorError(node, "unknown operator: -%s", right.Type())
	case "!":
		switch right {
		case TRUE:
			return FALSE
		case FALSE:
			return TRUE
		}
		return e.operatorError(node, "unknown operator: !%s", right.Type())
	}
	return e.operatorError(node, "unknown operator: %s%s", node.Operator, right.Type())
}

func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *Environment) Object {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch node.Operator {
	case "==":
		return nativeBoolToBooleanObject(objectsEqual(left, right))
	case "!=":
		return nativeBoolToBooleanObject(!objectsEqual(left, right))
	}

	li, lIsInt := left.(*Integer)
	ri, rIsInt := right.(*Integer)
	if lIsInt && rIsInt {
		return e.evalIntegerInfix(node, li.Value, ri.Value)
	}

	lf, lOk := toFloat(left)
	rf, rOk := toFloat(right)
	if lOk && rOk {
		return e.evalFloatInfix(node, lf, rf)
	}

	return e.operatorError(node, "unknown operator: %s %s %s", left.Type(), node.Operator, right.Type())
}

func (e *Evaluator) evalIntegerInfix(node *ast.InfixExpression, l, r int64) Object {
	switch node.Operator {
	case "+":
		return &Integer{Value: l + r}
	case "-":
		return &Integer{Value: l - r}
	case "*":
		return &Integer{Value: l * r}
	case "/":
		if r == 0 {
			return e.operatorError(node, "division by zero")
		}
		return &Integer{Value: l / r}
	case "<":
		return nativeBoolToBooleanObject(l < r)
	case ">":
		return nativeBoolToBooleanObject(l > r)
	case "<=":
		return nativeBoolToBooleanObject(l <= r)
	case ">=":
		return nativeBoolToBooleanObject(l >= r)
	}
	return e.operatorError(node, "unknown operator: INTEGER %s INTEGER", node.Operator)
}

func (e *Evaluator) evalFloatInfix(node *ast.InfixExpression, l, r float64) Object {
	switch node.Operator {
	case "+":
		return &Float{Value: l + r}
	case "-":
		return &Float{Value: l - r}
	case "*":
		return &Float{Value: l * r}
	case "/":
		if r == 0 {
			return e.operatorError(node, "division by zero")
		}
		return &Float{Value: l / r}
	case "<":
		return nativeBoolToBooleanObject(l < r)
	case ">":
		return nativeBoolToBooleanObject(l > r)
	case "<=":
		return nativeBoolToBooleanObject(l <= r)
	case ">=":
		return nativeBoolToBooleanObject(l >= r)
	}
	return e.operatorError(node, "unknown operator: FLOAT %s FLOAT", node.Operator)
}

func toFloat(obj Object) (float64, bool) {
	switch o := obj.(type) {
	case *Integer:
		return float64(o.Value), true
	case *Float:
		return o.Value, true
	}
	return 0, false
}

func (e *Evaluator) operatorError(node ast.Expression, format string, args ...interface{}) *Error {
	tok := node.GetToken()
	return newErrorWithLocation(tok.Line, tok.Column, format, args...)
}
