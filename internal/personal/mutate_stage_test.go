package personal

import "testing"

func TestMutateOneIncludesReverseOfLowercase(t *testing.T) {
	forms := mutateOne(atom{value: "John", category: "first_names", id: 0})

	var gotReverse, gotReverseLower bool
	for _, f := range forms {
		if f.value == "nhoJ" && f.mutation == "reverse" {
			gotReverse = true
		}
		if f.value == "nhoj" && f.mutation == "reverse-lower" {
			gotReverseLower = true
		}
	}
	if !gotReverse {
		t.Fatalf("expected reverse-of-original form %q", "nhoJ")
	}
	if !gotReverseLower {
		t.Fatalf("expected reverse-of-lowercase form %q, spec.md §8 S5 requires it reachable", "nhoj")
	}
}
