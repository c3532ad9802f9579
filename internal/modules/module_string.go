package modules

import (
	"strings"

	"github.com/funvibe/parfun/internal/config"
	"github.com/funvibe/parfun/internal/evaluator"
)

func registerString(r *Registry) {
	mod := config.StringModuleName

	r.Register(&evaluator.Builtin{Module: mod, Name: "concat", ParamCount: 2, Fn: func(args []evaluator.Object) evaluator.Object {
		left, lOk := args[0].(*evaluator.String)
		right, rOk := args[1].(*evaluator.String)
		if !lOk || !rOk {
			return errorf("string:concat: expected strings, got %s and %s", args[0].Type(), args[1].Type())
		}
		return &evaluator.String{Value: left.Value + right.Value}
	}})

	r.Register(&evaluator.Builtin{Module: mod, Name: "len", ParamCount: 1, Fn: func(args []evaluator.Object) evaluator.Object {
		s, ok := args[0].(*evaluator.String)
		if !ok {
			return errorf("string:len: expected string, got %s", args[0].Type())
		}
		return &evaluator.Integer{Value: int64(len([]rune(s.Value)))}
	}})

	r.Register(&evaluator.Builtin{Module: mod, Name: "upper", ParamCount: 1, Fn: stringUnary("upper", strings.ToUpper)})
	r.Register(&evaluator.Builtin{Module: mod, Name: "lower", ParamCount: 1, Fn: stringUnary("lower", strings.ToLower)})
}

func stringUnary(name string, fn func(string) string) evaluator.BuiltinFunction {
	return func(args []evaluator.Object) evaluator.Object {
		s, ok := args[0].(*evaluator.String)
		if !ok {
			return errorf("string:%s: expected string, got %s", name, args[0].Type())
		}
		return &evaluator.String{Value: fn(s.Value)}
	}
}
