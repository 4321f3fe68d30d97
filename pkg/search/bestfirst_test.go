package search

import (
	"errors"
	"fmt"
	"testing"
)

// countUp is a toy problem: states are integers, actions add 1 or 2,
// the goal is an exact target. The evaluation prefers states closer to
// the target, so search walks straight there.
type countState int

func (s countState) Key() string { return fmt.Sprintf("%d", int(s)) }

type countUp struct {
	target int
}

func (p *countUp) InitialState() State { return countState(0) }

func (p *countUp) Actions(state State) []any {
	if int(state.(countState)) >= p.target {
		return nil
	}
	return []any{1, 2}
}

func (p *countUp) Result(state State, action any) State {
	return countState(int(state.(countState)) + action.(int))
}

func (p *countUp) GoalTest(state State) bool {
	return int(state.(countState)) == p.target
}

func TestBestFirstReachesGoal(t *testing.T) {
	p := &countUp{target: 7}
	eval := func(s State) float64 { return float64(p.target - int(s.(countState))) }

	node, err := BestFirst(p, eval)
	if err != nil {
		t.Fatalf("BestFirst error: %v", err)
	}
	if !p.GoalTest(node.State) {
		t.Fatalf("returned state %v is not a goal", node.State)
	}
	// Greedy evaluation takes the +2 action until +1 finishes the climb.
	if node.Depth != 4 {
		t.Errorf("depth = %d, want 4", node.Depth)
	}
}

func TestBestFirstPath(t *testing.T) {
	p := &countUp{target: 4}
	eval := func(s State) float64 { return float64(p.target - int(s.(countState))) }

	node, err := BestFirst(p, eval)
	if err != nil {
		t.Fatalf("BestFirst error: %v", err)
	}

	path := node.Path()
	if int(path[0].(countState)) != 0 {
		t.Errorf("path starts at %v, want 0", path[0])
	}
	if int(path[len(path)-1].(countState)) != 4 {
		t.Errorf("path ends at %v, want 4", path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		step := int(path[i].(countState)) - int(path[i-1].(countState))
		if step != 1 && step != 2 {
			t.Errorf("illegal step %d at position %d", step, i)
		}
	}
}

// An overshootable target is unreachable; the engine must report
// exhaustion instead of looping.
func TestBestFirstExhausted(t *testing.T) {
	p := &overshoot{}
	eval := func(s State) float64 { return 0 }

	_, err := BestFirst(p, eval)
	var exhausted *ErrExhausted
	if !errors.As(err, &exhausted) {
		t.Fatalf("got %v, want ErrExhausted", err)
	}
}

type overshoot struct{}

func (p *overshoot) InitialState() State { return countState(0) }

func (p *overshoot) Actions(state State) []any {
	if int(state.(countState)) >= 3 {
		return nil
	}
	return []any{2}
}

func (p *overshoot) Result(state State, action any) State {
	return countState(int(state.(countState)) + action.(int))
}

func (p *overshoot) GoalTest(state State) bool {
	return int(state.(countState)) == 3
}

// Equal evaluations must expand in insertion order.
func TestBestFirstTieInsertionOrder(t *testing.T) {
	p := &branchOnce{}
	flat := func(s State) float64 { return 0 }

	node, err := BestFirst(p, flat)
	if err != nil {
		t.Fatalf("BestFirst error: %v", err)
	}
	// Both children are goals under a flat evaluation; the one pushed
	// first must be returned.
	if got := node.State.Key(); got != "first" {
		t.Errorf("popped %q, want %q", got, "first")
	}
}

type labelState string

func (s labelState) Key() string { return string(s) }

type branchOnce struct{}

func (p *branchOnce) InitialState() State { return labelState("root") }

func (p *branchOnce) Actions(state State) []any {
	if state.Key() != "root" {
		return nil
	}
	return []any{"first", "second"}
}

func (p *branchOnce) Result(state State, action any) State {
	return labelState(action.(string))
}

func (p *branchOnce) GoalTest(state State) bool {
	return state.Key() == "first" || state.Key() == "second"
}
