// Package modules provides the built-in module registry: the injected
// resolution capability mapping module:function/arity to callables.
package modules

import (
	"fmt"
	"io"

	"github.com/funvibe/parfun/internal/evaluator"
)

// Registry resolves module-qualified function references. Functions are
// keyed by module, name and arity, so m:f/2 and m:f/3 are distinct.
type Registry struct {
	funcs map[string]*evaluator.Builtin
}

func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]*evaluator.Builtin)}
}

// Default builds a registry with all built-in modules registered.
// The counter module is backed by the given store; the io module writes
// to out.
func Default(store *CounterStore, out io.Writer) *Registry {
	r := NewRegistry()
	registerMath(r)
	registerLists(r)
	registerString(r)
	registerCounter(r, store)
	registerIO(r, out)
	return r
}

func (r *Registry) Register(b *evaluator.Builtin) {
	r.funcs[funcKey(b.Module, b.Name, b.ParamCount)] = b
}

// Resolve implements evaluator.Resolver.
func (r *Registry) Resolve(module, function string, arity int) (evaluator.Callable, bool) {
	b, ok := r.funcs[funcKey(module, function, arity)]
	if !ok {
		return nil, false
	}
	return b, true
}

func funcKey(module, function string, arity int) string {
	return fmt.Sprintf("%s:%s/%d", module, function, arity)
}
