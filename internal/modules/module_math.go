package modules

import (
	"github.com/funvibe/parfun/internal/config"
	"github.com/funvibe/parfun/internal/evaluator"
)

func registerMath(r *Registry) {
	mod := config.MathModuleName

	r.Register(&evaluator.Builtin{Module: mod, Name: "add", ParamCount: 2, Fn: numericBinop(mod, "add",
		func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b })})

	r.Register(&evaluator.Builtin{Module: mod, Name: "sub", ParamCount: 2, Fn: numericBinop(mod, "sub",
		func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b })})

	r.Register(&evaluator.Builtin{Module: mod, Name: "mul", ParamCount: 2, Fn: numericBinop(mod, "mul",
		func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b })})

	r.Register(&evaluator.Builtin{Module: mod, Name: "divide", ParamCount: 2, Fn: func(args []evaluator.Object) evaluator.Object {
		if ri, ok := args[1].(*evaluator.Integer); ok && ri.Value == 0 {
			return errorf("math:divide: division by zero")
		}
		if rf, ok := args[1].(*evaluator.Float); ok && rf.Value == 0 {
			return errorf("math:divide: division by zero")
		}
		return numericBinop(mod, "divide",
			func(a, b int64) int64 { return a / b },
			func(a, b float64) float64 { return a / b })(args)
	}})

	r.Register(&evaluator.Builtin{Module: mod, Name: "neg", ParamCount: 1, Fn: func(args []evaluator.Object) evaluator.Object {
		switch a := args[0].(type) {
		case *evaluator.Integer:
			return &evaluator.Integer{Value: -a.Value}
		case *evaluator.Float:
			return &evaluator.Float{Value: -a.Value}
		}
		return errorf("math:neg: expected number, got %s", args[0].Type())
	}})

	r.Register(&evaluator.Builtin{Module: mod, Name: "abs", ParamCount: 1, Fn: func(args []evaluator.Object) evaluator.Object {
		switch a := args[0].(type) {
		case *evaluator.Integer:
			if a.Value < 0 {
				return &evaluator.Integer{Value: -a.Value}
			}
			return a
		case *evaluator.Float:
			if a.Value < 0 {
				return &evaluator.Float{Value: -a.Value}
			}
			return a
		}
		return errorf("math:abs: expected number, got %s", args[0].Type())
	}})
}

// numericBinop builds a two-argument numeric builtin: integer arithmetic when
// both arguments are integers, float arithmetic otherwise.
func numericBinop(mod, name string, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) evaluator.BuiltinFunction {
	return func(args []evaluator.Object) evaluator.Object {
		li, lOk := args[0].(*evaluator.Integer)
		ri, rOk := args[1].(*evaluator.Integer)
		if lOk && rOk {
			return &evaluator.Integer{Value: intOp(li.Value, ri.Value)}
		}

		lf, lOk := toFloat(args[0])
		rf, rOk := toFloat(args[1])
		if lOk && rOk {
			return &evaluator.Float{Value: floatOp(lf, rf)}
		}

		return errorf("%s:%s: expected numbers, got %s and %s", mod, name, args[0].Type(), args[1].Type())
	}
}

func toFloat(obj evaluator.Object) (float64, bool) {
	switch o := obj.(type) {
	case *evaluator.Integer:
		return float64(o.Value), true
	case *evaluator.Float:
		return o.Value, true
	}
	return 0, false
}
