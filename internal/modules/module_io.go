package modules

import (
	"fmt"
	"io"

	"github.com/funvibe/parfun/internal/config"
	"github.com/funvibe/parfun/internal/evaluator"
)

// registerIO wires io:print and io:println to the interpreter's output
// writer. Strings are written raw; every other value is written in its
// Inspect form.
func registerIO(r *Registry, out io.Writer) {
	mod := config.IOModuleName

	write := func(newline bool) evaluator.BuiltinFunction {
		return func(args []evaluator.Object) evaluator.Object {
			text := args[0].Inspect()
			if s, ok := args[0].(*evaluator.String); ok {
				text = s.Value
			}
			if newline {
				fmt.Fprintln(out, text)
			} else {
				fmt.Fprint(out, text)
			}
			return &evaluator.Atom{Value: "ok"}
		}
	}

	r.Register(&evaluator.Builtin{Module: mod, Name: "print", ParamCount: 1, Fn: write(false)})
	r.Register(&evaluator.Builtin{Module: mod, Name: "println", ParamCount: 1, Fn: write(true)})
}
