package partial

// Plan is the arity reduction of a slot sequence: the resulting closure
// arity and the mapping from new parameter index to original slot index.
// The mapping follows left-to-right placeholder order and is bijective by
// construction (each Missing slot contributes exactly one parameter).
type Plan struct {
	Arity      int
	ParamSlots []int // ParamSlots[k] = original slot index of parameter k
}

// Reduce computes the closure plan for a classified slot sequence.
func Reduce(slots []Slot) Plan {
	plan := Plan{ParamSlots: []int{}}
	for i, slot := range slots {
		if slot.Kind == Missing {
			plan.ParamSlots = append(plan.ParamSlots, i)
		}
	}
	plan.Arity = len(plan.ParamSlots)
	return plan
}

// FullPlan is the reduction of an all-missing sequence of length n, as
// produced by the fun m:f/N shorthand.
func FullPlan(n int) Plan {
	plan := Plan{Arity: n, ParamSlots: make([]int, n)}
	for i := 0; i < n; i++ {
		plan.ParamSlots[i] = i
	}
	return plan
}
