package modules

import (
	"github.com/google/uuid"

	"github.com/funvibe/parfun/internal/config"
	"github.com/funvibe/parfun/internal/evaluator"
)

// The counter module exposes mutable counter tables. It is the side-effectful
// collaborator in the test-suite: invoking the same zero-placeholder closure
// twice must hit the store twice.
func registerCounter(r *Registry, store *CounterStore) {
	mod := config.CounterModuleName

	r.Register(&evaluator.Builtin{Module: mod, Name: "new", ParamCount: 0, Fn: func(args []evaluator.Object) evaluator.Object {
		return &evaluator.Ref{Value: uuid.NewString()}
	}})

	r.Register(&evaluator.Builtin{Module: mod, Name: "incr", ParamCount: 3, Fn: func(args []evaluator.Object) evaluator.Object {
		table, ok := args[0].(*evaluator.Ref)
		if !ok {
			return errorf("counter:incr: expected table ref, got %s", args[0].Type())
		}
		key, ok := argString(args[1])
		if !ok {
			return errorf("counter:incr: expected string key, got %s", args[1].Type())
		}
		delta, ok := args[2].(*evaluator.Integer)
		if !ok {
			return errorf("counter:incr: expected integer amount, got %s", args[2].Type())
		}

		value, err := store.Incr(table.Value, key, delta.Value)
		if err != nil {
			return errorf("counter:incr: %v", err)
		}
		return &evaluator.Integer{Value: value}
	}})

	r.Register(&evaluator.Builtin{Module: mod, Name: "value", ParamCount: 2, Fn: func(args []evaluator.Object) evaluator.Object {
		table, ok := args[0].(*evaluator.Ref)
		if !ok {
			return errorf("counter:value: expected table ref, got %s", args[0].Type())
		}
		key, ok := argString(args[1])
		if !ok {
			return errorf("counter:value: expected string key, got %s", args[1].Type())
		}

		value, err := store.Value(table.Value, key)
		if err != nil {
			return errorf("counter:value: %v", err)
		}
		return &evaluator.Integer{Value: value}
	}})

	r.Register(&evaluator.Builtin{Module: mod, Name: "drop", ParamCount: 1, Fn: func(args []evaluator.Object) evaluator.Object {
		table, ok := args[0].(*evaluator.Ref)
		if !ok {
			return errorf("counter:drop: expected table ref, got %s", args[0].Type())
		}
		if err := store.Drop(table.Value); err != nil {
			return errorf("counter:drop: %v", err)
		}
		return &evaluator.Atom{Value: "ok"}
	}})
}
