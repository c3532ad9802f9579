package modules

import (
	"bytes"
	"io"
	"testing"

	"github.com/funvibe/parfun/internal/evaluator"
)

func TestResolveIsArityKeyed(t *testing.T) {
	r := Default(openTestStore(t), io.Discard)

	if _, ok := r.Resolve("math", "sub", 2); !ok {
		t.Error("math:sub/2 should resolve")
	}
	if _, ok := r.Resolve("math", "sub", 3); ok {
		t.Error("math:sub/3 should not resolve")
	}
	if _, ok := r.Resolve("nope", "sub", 2); ok {
		t.Error("unknown module should not resolve")
	}
}

func TestMathBuiltins(t *testing.T) {
	r := Default(openTestStore(t), io.Discard)

	testCases := []struct {
		name string
		args []evaluator.Object
		want string
	}{
		{"add", []evaluator.Object{&evaluator.Integer{Value: 2}, &evaluator.Integer{Value: 3}}, "5"},
		{"sub", []evaluator.Object{&evaluator.Integer{Value: 10}, &evaluator.Integer{Value: 4}}, "6"},
		{"mul", []evaluator.Object{&evaluator.Integer{Value: 3}, &evaluator.Float{Value: 1.5}}, "4.5"},
		{"divide", []evaluator.Object{&evaluator.Integer{Value: 9}, &evaluator.Integer{Value: 3}}, "3"},
	}

	for _, tc := range testCases {
		fn, ok := r.Resolve("math", tc.name, 2)
		if !ok {
			t.Fatalf("math:%s/2 not registered", tc.name)
		}
		result := fn.Invoke(tc.args)
		if result.Inspect() != tc.want {
			t.Errorf("math:%s => %s, want %s", tc.name, result.Inspect(), tc.want)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	r := Default(openTestStore(t), io.Discard)
	fn, _ := r.Resolve("math", "divide", 2)
	result := fn.Invoke([]evaluator.Object{&evaluator.Integer{Value: 1}, &evaluator.Integer{Value: 0}})
	if result.Type() != evaluator.ERROR_OBJ {
		t.Fatalf("expected error, got %s", result.Inspect())
	}
}

func TestListsBuiltins(t *testing.T) {
	r := Default(openTestStore(t), io.Discard)

	list := &evaluator.List{Elements: []evaluator.Object{
		&evaluator.Integer{Value: 1},
		&evaluator.Integer{Value: 2},
		&evaluator.Integer{Value: 3},
	}}

	nth, _ := r.Resolve("lists", "nth", 2)
	result := nth.Invoke([]evaluator.Object{&evaluator.Integer{Value: 2}, list})
	if result.Inspect() != "2" {
		t.Errorf("lists:nth(2, [1,2,3]) = %s, want 2", result.Inspect())
	}

	result = nth.Invoke([]evaluator.Object{&evaluator.Integer{Value: 4}, list})
	if result.Type() != evaluator.ERROR_OBJ {
		t.Errorf("out-of-range nth should error, got %s", result.Inspect())
	}

	reverse, _ := r.Resolve("lists", "reverse", 1)
	result = reverse.Invoke([]evaluator.Object{list})
	if result.Inspect() != "[3, 2, 1]" {
		t.Errorf("reverse = %s", result.Inspect())
	}

	length, _ := r.Resolve("lists", "length", 1)
	result = length.Invoke([]evaluator.Object{list})
	if result.Inspect() != "3" {
		t.Errorf("length = %s", result.Inspect())
	}
}

func TestStringBuiltins(t *testing.T) {
	r := Default(openTestStore(t), io.Discard)

	concat, _ := r.Resolve("string", "concat", 2)
	result := concat.Invoke([]evaluator.Object{
		&evaluator.String{Value: "foo"},
		&evaluator.String{Value: "bar"},
	})
	if result.Inspect() != `"foobar"` {
		t.Errorf("concat = %s", result.Inspect())
	}

	upper, _ := r.Resolve("string", "upper", 1)
	result = upper.Invoke([]evaluator.Object{&evaluator.String{Value: "ok"}})
	if result.Inspect() != `"OK"` {
		t.Errorf("upper = %s", result.Inspect())
	}
}

func TestIOBuiltins(t *testing.T) {
	var out bytes.Buffer
	r := Default(openTestStore(t), &out)

	println1, ok := r.Resolve("io", "println", 1)
	if !ok {
		t.Fatal("io:println/1 not registered")
	}
	result := println1.Invoke([]evaluator.Object{&evaluator.String{Value: "hi"}})
	if result.Inspect() != "ok" {
		t.Errorf("println result = %s, want ok", result.Inspect())
	}

	print1, _ := r.Resolve("io", "print", 1)
	print1.Invoke([]evaluator.Object{&evaluator.Integer{Value: 42}})

	// Strings write raw, other values write their display form.
	if out.String() != "hi\n42" {
		t.Errorf("output = %q, want %q", out.String(), "hi\n42")
	}
}

func TestBuiltinArityMismatch(t *testing.T) {
	r := Default(openTestStore(t), io.Discard)
	fn, _ := r.Resolve("math", "add", 2)
	result := fn.Invoke([]evaluator.Object{&evaluator.Integer{Value: 1}})
	err, ok := result.(*evaluator.Error)
	if !ok {
		t.Fatalf("expected error, got %s", result.Inspect())
	}
	if !contains(err.Message, "arity mismatch") {
		t.Errorf("message = %q", err.Message)
	}
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
