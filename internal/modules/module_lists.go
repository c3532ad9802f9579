package modules

import (
	"github.com/funvibe/parfun/internal/config"
	"github.com/funvibe/parfun/internal/evaluator"
)

func registerLists(r *Registry) {
	mod := config.ListsModuleName

	r.Register(&evaluator.Builtin{Module: mod, Name: "append", ParamCount: 2, Fn: func(args []evaluator.Object) evaluator.Object {
		left, lOk := args[0].(*evaluator.List)
		right, rOk := args[1].(*evaluator.List)
		if !lOk || !rOk {
			return errorf("lists:append: expected lists, got %s and %s", args[0].Type(), args[1].Type())
		}
		elements := make([]evaluator.Object, 0, len(left.Elements)+len(right.Elements))
		elements = append(elements, left.Elements...)
		elements = append(elements, right.Elements...)
		return &evaluator.List{Elements: elements}
	}})

	// nth is 1-based, as in Erlang's lists:nth/2
	r.Register(&evaluator.Builtin{Module: mod, Name: "nth", ParamCount: 2, Fn: func(args []evaluator.Object) evaluator.Object {
		idx, iOk := args[0].(*evaluator.Integer)
		list, lOk := args[1].(*evaluator.List)
		if !iOk || !lOk {
			return errorf("lists:nth: expected integer and list, got %s and %s", args[0].Type(), args[1].Type())
		}
		if idx.Value < 1 || idx.Value > int64(len(list.Elements)) {
			return errorf("lists:nth: index %d out of range for list of length %d", idx.Value, len(list.Elements))
		}
		return list.Elements[idx.Value-1]
	}})

	r.Register(&evaluator.Builtin{Module: mod, Name: "reverse", ParamCount: 1, Fn: func(args []evaluator.Object) evaluator.Object {
		list, ok := args[0].(*evaluator.List)
		if !ok {
			return errorf("lists:reverse: expected list, got %s", args[0].Type())
		}
		elements := make([]evaluator.Object, len(list.Elements))
		for i, el := range list.Elements {
			elements[len(list.Elements)-1-i] = el
		}
		return &evaluator.List{Elements: elements}
	}})

	r.Register(&evaluator.Builtin{Module: mod, Name: "member", ParamCount: 2, Fn: func(args []evaluator.Object) evaluator.Object {
		list, ok := args[1].(*evaluator.List)
		if !ok {
			return errorf("lists:member: expected list, got %s", args[1].Type())
		}
		for _, el := range list.Elements {
			if eq := compareObjects(args[0], el); eq {
				return evaluator.TRUE
			}
		}
		return evaluator.FALSE
	}})

	r.Register(&evaluator.Builtin{Module: mod, Name: "length", ParamCount: 1, Fn: func(args []evaluator.Object) evaluator.Object {
		list, ok := args[0].(*evaluator.List)
		if !ok {
			return errorf("lists:length: expected list, got %s", args[0].Type())
		}
		return &evaluator.Integer{Value: int64(len(list.Elements))}
	}})
}

func compareObjects(a, b evaluator.Object) bool {
	if a == b {
		return true
	}
	return a.Type() == b.Type() && a.Inspect() == b.Inspect()
}
