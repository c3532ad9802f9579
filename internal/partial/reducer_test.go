package partial

import (
	"testing"

	"github.com/funvibe/parfun/internal/ast"
)

func slotsFromPattern(pattern string) []Slot {
	// 'b' = bound, 'm' = missing
	args := make([]ast.Expression, 0, len(pattern))
	for _, c := range pattern {
		if c == 'm' {
			args = append(args, &ast.Placeholder{})
		} else {
			args = append(args, &ast.IntegerLiteral{Value: 1})
		}
	}
	return Classify(args)
}

func TestReduceArity(t *testing.T) {
	testCases := []struct {
		pattern string
		arity   int
	}{
		{"", 0},
		{"b", 0},
		{"m", 1},
		{"mbm", 2},
		{"bbb", 0},
		{"mmm", 3},
		{"bmbmb", 2},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			plan := Reduce(slotsFromPattern(tc.pattern))
			if plan.Arity != tc.arity {
				t.Errorf("pattern %q: arity=%d, want %d", tc.pattern, plan.Arity, tc.arity)
			}
			if len(plan.ParamSlots) != tc.arity {
				t.Errorf("pattern %q: len(ParamSlots)=%d, want %d", tc.pattern, len(plan.ParamSlots), tc.arity)
			}
		})
	}
}

func TestReduceMappingOrder(t *testing.T) {
	// f(_, 2, _) — parameters map to slots 0 and 2, in source order
	plan := Reduce(slotsFromPattern("mbm"))

	want := []int{0, 2}
	if len(plan.ParamSlots) != len(want) {
		t.Fatalf("ParamSlots=%v, want %v", plan.ParamSlots, want)
	}
	for i, idx := range want {
		if plan.ParamSlots[i] != idx {
			t.Errorf("ParamSlots[%d]=%d, want %d", i, plan.ParamSlots[i], idx)
		}
	}
}

func TestReduceMappingBijective(t *testing.T) {
	plan := Reduce(slotsFromPattern("mbmbmm"))

	seen := make(map[int]bool)
	for _, idx := range plan.ParamSlots {
		if seen[idx] {
			t.Fatalf("slot %d mapped twice: %v", idx, plan.ParamSlots)
		}
		seen[idx] = true
	}
}

func TestFullPlanMatchesAllMissing(t *testing.T) {
	for n := 0; n < 5; n++ {
		pattern := ""
		for i := 0; i < n; i++ {
			pattern += "m"
		}
		fromSlots := Reduce(slotsFromPattern(pattern))
		full := FullPlan(n)

		if full.Arity != fromSlots.Arity {
			t.Errorf("n=%d: FullPlan arity %d != Reduce arity %d", n, full.Arity, fromSlots.Arity)
		}
		for i := range full.ParamSlots {
			if full.ParamSlots[i] != fromSlots.ParamSlots[i] {
				t.Errorf("n=%d: mapping differs at %d: %d vs %d", n, i, full.ParamSlots[i], fromSlots.ParamSlots[i])
			}
		}
	}
}

func TestClassifyPreservesOrder(t *testing.T) {
	first := &ast.IntegerLiteral{Value: 1}
	second := &ast.Placeholder{}
	third := &ast.StringLiteral{Value: "x"}

	slots := Classify([]ast.Expression{first, second, third})

	if len(slots) != 3 {
		t.Fatalf("len(slots)=%d, want 3", len(slots))
	}
	if slots[0].Kind != Bound || slots[0].Expr != first {
		t.Errorf("slot 0 = %+v, want bound first arg", slots[0])
	}
	if slots[1].Kind != Missing {
		t.Errorf("slot 1 = %+v, want missing", slots[1])
	}
	if slots[2].Kind != Bound || slots[2].Expr != third {
		t.Errorf("slot 2 = %+v, want bound third arg", slots[2])
	}
}

func TestClassifyEmpty(t *testing.T) {
	slots := Classify(nil)
	if len(slots) != 0 {
		t.Fatalf("len(slots)=%d, want 0", len(slots))
	}
	plan := Reduce(slots)
	if plan.Arity != 0 {
		t.Fatalf("arity=%d, want 0", plan.Arity)
	}
}
