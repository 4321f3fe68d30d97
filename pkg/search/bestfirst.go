/*
Package search provides a generic best-first graph search engine.

A Problem exposes an initial state, the actions available in a state,
the state an action leads to, and a goal test. The engine repeatedly
expands the frontier node with the best (lowest) evaluation value until
it pops a goal state, remembering visited states so shared ancestors are
never re-expanded. States are immutable value objects: Result must
derive a fresh state and leave its parent untouched, since several
frontier nodes may reference the same ancestor.
*/
package search

import "container/heap"

// State is a node payload. Key must uniquely identify the state so the
// engine can maintain its explored set.
type State interface {
	Key() string
}

// Problem is the formal search problem contract.
type Problem interface {
	InitialState() State
	Actions(state State) []any
	Result(state State, action any) State
	GoalTest(state State) bool
}

// Evaluation scores a state; lower is better.
type Evaluation func(state State) float64

// Node is one entry in the search tree. Parent and Action record how
// the state was reached.
type Node struct {
	State  State
	Parent *Node
	Action any
	Depth  int
}

// ErrExhausted is returned by BestFirst when the frontier empties
// before any goal state is found.
type ErrExhausted struct {
	Expanded int
}

func (e *ErrExhausted) Error() string {
	return "search space exhausted without reaching a goal"
}

type frontierItem struct {
	node *Node
	eval float64
	seq  int // insertion order, breaks evaluation ties
}

type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].eval != f[j].eval {
		return f[i].eval < f[j].eval
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}

// BestFirst runs best-first graph search and returns the first goal
// node popped from the frontier.
func BestFirst(problem Problem, eval Evaluation) (*Node, error) {
	root := &Node{State: problem.InitialState()}

	var fr frontier
	heap.Init(&fr)

	seq := 0
	push := func(n *Node) {
		heap.Push(&fr, &frontierItem{node: n, eval: eval(n.State), seq: seq})
		seq++
	}
	push(root)

	explored := make(map[string]bool)
	expanded := 0

	for fr.Len() > 0 {
		item := heap.Pop(&fr).(*frontierItem)
		node := item.node

		if problem.GoalTest(node.State) {
			return node, nil
		}

		key := node.State.Key()
		if explored[key] {
			continue
		}
		explored[key] = true
		expanded++

		for _, action := range problem.Actions(node.State) {
			child := problem.Result(node.State, action)
			if explored[child.Key()] {
				continue
			}
			push(&Node{State: child, Parent: node, Action: action, Depth: node.Depth + 1})
		}
	}

	return nil, &ErrExhausted{Expanded: expanded}
}

// Path returns the states from the root to n, in order.
func (n *Node) Path() []State {
	var states []State
	for cur := n; cur != nil; cur = cur.Parent {
		states = append(states, cur.State)
	}
	for l, r := 0, len(states)-1; l < r; l, r = l+1, r-1 {
		states[l], states[r] = states[r], states[l]
	}
	return states
}
