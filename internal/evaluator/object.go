package evaluator

import (
	"fmt"
	"strings"
)

type ObjectType string

const (
	INTEGER_OBJ = "INTEGER"
	FLOAT_OBJ   = "FLOAT"
	BOOLEAN_OBJ = "BOOLEAN"
	ATOM_OBJ    = "ATOM"
	STRING_OBJ  = "STRING"
	LIST_OBJ    = "LIST"
	NIL_OBJ     = "NIL"
	ERROR_OBJ   = "ERROR"
	BUILTIN_OBJ = "BUILTIN"
	CLOSURE_OBJ = "CLOSURE"
	REF_OBJ     = "REF"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

type Float struct {
	Value float64
}

func (f *Float) Type() ObjectType { return FLOAT_OBJ }
func (f *Float) Inspect() string  { return fmt.Sprintf("%g", f.Value) }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

// Atom is a bare lowercase symbol: ok, error, table.
type Atom struct {
	Value string
}

func (a *Atom) Type() ObjectType { return ATOM_OBJ }
func (a *Atom) Inspect() string  { return a.Value }

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return fmt.Sprintf("%q", s.Value) }

type List struct {
	Elements []Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	elems := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		elems[i] = e.Inspect()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

type Nil struct{}

func (n *Nil) Type() ObjectType { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "nil" }

// Ref is an opaque handle to external state, e.g. a counter table.
type Ref struct {
	Value string
}

func (r *Ref) Type() ObjectType { return REF_OBJ }
func (r *Ref) Inspect() string  { return "#ref<" + r.Value + ">" }

var (
	NIL   = &Nil{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

func nativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

// objectsEqual implements structural equality for == and !=.
// Closures and builtins compare by identity.
func objectsEqual(a, b Object) bool {
	switch av := a.(type) {
	case *Integer:
		if bv, ok := b.(*Integer); ok {
			return av.Value == bv.Value
		}
		if bv, ok := b.(*Float); ok {
			return float64(av.Value) == bv.Value
		}
	case *Float:
		if bv, ok := b.(*Float); ok {
			return av.Value == bv.Value
		}
		if bv, ok := b.(*Integer); ok {
			return av.Value == float64(bv.Value)
		}
	case *Boolean:
		if bv, ok := b.(*Boolean); ok {
			return av.Value == bv.Value
		}
	case *Atom:
		if bv, ok := b.(*Atom); ok {
			return av.Value == bv.Value
		}
	case *String:
		if bv, ok := b.(*String); ok {
			return av.Value == bv.Value
		}
	case *Ref:
		if bv, ok := b.(*Ref); ok {
			return av.Value == bv.Value
		}
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !objectsEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	}
	return a == b
}
