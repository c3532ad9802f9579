package evaluator_test

import (
	"testing"

	"github.com/funvibe/parfun/internal/evaluator"
)

// spy records every invocation of a builtin so tests can assert on call
// counts and synthesized argument lists.
type spy struct {
	calls [][]evaluator.Object
}

func (s *spy) builtin(module, name string, arity int) *evaluator.Builtin {
	return &evaluator.Builtin{Module: module, Name: name, ParamCount: arity, Fn: func(args []evaluator.Object) evaluator.Object {
		recorded := make([]evaluator.Object, len(args))
		copy(recorded, args)
		s.calls = append(s.calls, recorded)
		return &evaluator.Integer{Value: int64(len(s.calls))}
	}}
}

func spyResolver(arity int) (*testResolver, *spy) {
	r := newTestResolver()
	s := &spy{}
	r.register(s.builtin("spy", "call", arity))
	return r, s
}

func expectClosure(t *testing.T, obj evaluator.Object, arity int) *evaluator.Closure {
	t.Helper()
	c, ok := obj.(*evaluator.Closure)
	if !ok {
		t.Fatalf("object is %T (%s), want Closure", obj, obj.Inspect())
	}
	if c.Arity() != arity {
		t.Fatalf("closure arity = %d, want %d", c.Arity(), arity)
	}
	return c
}

func TestClosureArityEqualsMissingCount(t *testing.T) {
	testCases := []struct {
		input string
		arity int
	}{
		{"fun spy:call(_, 2, _)", 2},
		{"fun spy:call(1, 2, 3)", 0},
		{"fun spy:call(_, _, _)", 3},
		{"fun math:sub(10, _)", 1},
		{"fun math:sub(_, _)", 2},
	}

	for _, tc := range testCases {
		r, _ := spyResolver(3)
		result := evalSource(t, tc.input, r, nil)
		expectClosure(t, result, tc.arity)
	}
}

func TestPositionalOrderInvariant(t *testing.T) {
	// f(_, "x", _) invoked with (1, 2) calls f(1, "x", 2)
	r, s := spyResolver(3)
	result := evalSource(t, `F = fun spy:call(_, "x", _)
F(1, 2)`, r, nil)
	if isErr, ok := result.(*evaluator.Error); ok {
		t.Fatalf("unexpected error: %s", isErr.Inspect())
	}

	if len(s.calls) != 1 {
		t.Fatalf("call count = %d, want 1", len(s.calls))
	}
	args := s.calls[0]
	expectInteger(t, args[0], 1)
	if str, ok := args[1].(*evaluator.String); !ok || str.Value != "x" {
		t.Fatalf("args[1] = %s, want \"x\"", args[1].Inspect())
	}
	expectInteger(t, args[2], 2)
}

func TestEagerCaptureAtConstruction(t *testing.T) {
	// The bound argument is X's value when fun is evaluated, not at invocation.
	r, s := spyResolver(2)
	env := evaluator.NewEnvironment()
	evalSource(t, "X = 10\nF = fun spy:call(X, _)\nX = 99\nF(1)", r, env)

	if len(s.calls) != 1 {
		t.Fatalf("call count = %d, want 1", len(s.calls))
	}
	expectInteger(t, s.calls[0][0], 10)
}

func TestIndependentCapture(t *testing.T) {
	// Two closures from the same source expression never share state.
	r, s := spyResolver(2)
	env := evaluator.NewEnvironment()
	evalSource(t, "X = 1\nF = fun spy:call(X, _)\nX = 2\nG = fun spy:call(X, _)\nF(0)\nG(0)", r, env)

	if len(s.calls) != 2 {
		t.Fatalf("call count = %d, want 2", len(s.calls))
	}
	expectInteger(t, s.calls[0][0], 1)
	expectInteger(t, s.calls[1][0], 2)
}

func TestZeroPlaceholderClosureReinvokes(t *testing.T) {
	// No memoization: each invocation re-runs the underlying call.
	r, s := spyResolver(2)
	result := evalSource(t, "F = fun spy:call(1, 2)\nF()\nF()", r, nil)

	if len(s.calls) != 2 {
		t.Fatalf("call count = %d, want 2", len(s.calls))
	}
	// The spy returns its running call count: two invocations, two results.
	expectInteger(t, result, 2)
}

func TestEmptyArgumentListClosure(t *testing.T) {
	r, s := spyResolver(0)
	result := evalSource(t, "F = fun spy:call()\nF()\nF()", r, nil)
	if len(s.calls) != 2 {
		t.Fatalf("call count = %d, want 2", len(s.calls))
	}
	expectInteger(t, result, 2)
}

func TestAllPlaceholdersEqualsArityShorthand(t *testing.T) {
	r1, s1 := spyResolver(2)
	evalSource(t, "F = fun spy:call(_, _)\nF(7, 8)", r1, nil)

	r2, s2 := spyResolver(2)
	evalSource(t, "F = fun spy:call/2\nF(7, 8)", r2, nil)

	if len(s1.calls) != 1 || len(s2.calls) != 1 {
		t.Fatalf("call counts = %d, %d, want 1, 1", len(s1.calls), len(s2.calls))
	}
	for i := range s1.calls[0] {
		if s1.calls[0][i].Inspect() != s2.calls[0][i].Inspect() {
			t.Errorf("arg %d differs: %s vs %s", i, s1.calls[0][i].Inspect(), s2.calls[0][i].Inspect())
		}
	}
}

func TestArityMismatch(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"too_few", "F = fun math:sub(10, _)\nF()"},
		{"too_many", "F = fun math:sub(10, _)\nF(1, 2)"},
		{"zero_arity_given_args", "F = fun math:sub(10, 4)\nF(1)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := evalSource(t, tc.input, newTestResolver(), nil)
			expectError(t, result, "arity mismatch")
		})
	}
}

func TestArityMismatchDoesNotCallTarget(t *testing.T) {
	r, s := spyResolver(2)
	evalSource(t, "F = fun spy:call(1, _)\nF(1, 2)", r, nil)
	if len(s.calls) != 0 {
		t.Fatalf("target called %d times on arity mismatch, want 0", len(s.calls))
	}
}

func TestUnderlyingFailurePropagatesUnchanged(t *testing.T) {
	result := evalSource(t, "F = fun math:fail(_)\nF(1)", newTestResolver(), nil)
	err := expectError(t, result, "boom")
	if err.Message != "boom" {
		t.Errorf("message = %q, want untranslated %q", err.Message, "boom")
	}
}

func TestFunUndefinedTarget(t *testing.T) {
	result := evalSource(t, "fun math:nope(_, _)", newTestResolver(), nil)
	expectError(t, result, "undefined function math:nope/2")
}

func TestFunSlotCountMustMatchTargetArity(t *testing.T) {
	// math:sub/2 exists; a three-slot fun references math:sub/3, which doesn't.
	result := evalSource(t, "fun math:sub(1, _, _)", newTestResolver(), nil)
	expectError(t, result, "undefined function math:sub/3")
}

func TestBoundErrorAbortsConstruction(t *testing.T) {
	r, s := spyResolver(2)
	result := evalSource(t, "F = fun spy:call(math:fail(1), _)", r, nil)
	expectError(t, result, "boom")
	if len(s.calls) != 0 {
		t.Fatalf("target called %d times during failed construction, want 0", len(s.calls))
	}
}

func TestClosureIsFirstClassValue(t *testing.T) {
	// A closure can be passed through bindings and invoked later.
	result := evalSource(t, "F = fun math:sub(_, 1)\nG = F\nG(10)", newTestResolver(), nil)
	expectInteger(t, result, 9)
}

func TestClosureInspect(t *testing.T) {
	result := evalSource(t, "fun math:sub(10, _)", newTestResolver(), nil)
	c := expectClosure(t, result, 1)
	if c.Inspect() != "#fun<math:sub/1>" {
		t.Errorf("Inspect() = %q", c.Inspect())
	}
}
