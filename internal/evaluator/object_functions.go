package evaluator

import "fmt"

// Callable is the single capability the transform needs from its target:
// invoke with a full argument list, get one result. Module-qualified
// builtins and synthesized closures both implement it.
type Callable interface {
	Object
	Invoke(args []Object) Object
	Arity() int
	FullName() string
}

// Resolver is the injected module/function resolution capability.
// Functions are keyed by module, name and arity.
type Resolver interface {
	Resolve(module, function string, arity int) (Callable, bool)
}

type BuiltinFunction func(args []Object) Object

// Builtin is a module-qualified host function.
type Builtin struct {
	Module     string
	Name       string
	ParamCount int
	Fn         BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return fmt.Sprintf("#fun<%s/%d>", b.FullName(), b.ParamCount) }
func (b *Builtin) Arity() int       { return b.ParamCount }
func (b *Builtin) FullName() string { return b.Module + ":" + b.Name }

func (b *Builtin) Invoke(args []Object) Object {
	if len(args) != b.ParamCount {
		return newError("arity mismatch: %s expects %d arguments, got %d", b.FullName(), b.ParamCount, len(args))
	}
	return b.Fn(args)
}

// Closure is a partially applied function synthesized from a fun expression.
// Captured holds the full original argument list with bound values snapshot
// at construction time; missing positions are nil and are filled from the
// invocation arguments via ParamSlots. A Closure is immutable once built and
// safe to share across goroutines.
type Closure struct {
	Target     Callable
	Captured   []Object // length = target arity; nil at missing positions
	ParamSlots []int    // ParamSlots[k] = captured index filled by argument k
}

func (c *Closure) Type() ObjectType { return CLOSURE_OBJ }
func (c *Closure) Inspect() string {
	return fmt.Sprintf("#fun<%s/%d>", c.Target.FullName(), c.Arity())
}
func (c *Closure) Arity() int       { return len(c.ParamSlots) }
func (c *Closure) FullName() string { return c.Target.FullName() }

// Invoke splices the invocation arguments into their original slots and
// performs one ordinary call of the target. The target's result or error is
// returned untouched; there is no memoization across invocations.
func (c *Closure) Invoke(args []Object) Object {
	if len(args) != len(c.ParamSlots) {
		return newError("arity mismatch: %s expects %d arguments, got %d",
			c.Inspect(), len(c.ParamSlots), len(args))
	}

	full := make([]Object, len(c.Captured))
	copy(full, c.Captured)
	for k, idx := range c.ParamSlots {
		full[idx] = args[k]
	}

	return c.Target.Invoke(full)
}
