package search

import "fmt"

// State is the capability contract a domain state must satisfy.
//
// Key must be deterministic and consistent with the domain's notion of
// equality: two semantically equal states must return equal keys, however
// they were constructed. The engine identifies states only by key.
//
// Successors returns every (action, next-state) pair reachable in one step.
// The slice is finite and may be empty.
type State[K comparable] interface {
	Key() K
	Successors() []Successor[K]
}

// Successor is an (action, resulting-state) pair.
type Successor[K comparable] struct {
	Action Action
	State  State[K]
}

func (s Successor[K]) String() string {
	return fmt.Sprintf("%v -> %v", s.Action, s.State)
}

// SameState reports whether a and b are the same state, i.e. have equal keys.
func SameState[K comparable](a, b State[K]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Key() == b.Key()
}

// Problem is a search problem: where to start and when to stop.
type Problem[K comparable] interface {
	Start() State[K]
	IsGoal(state State[K]) bool
}

// GoalFunc is a goal predicate over states.
type GoalFunc[K comparable] func(state State[K]) bool

type problem[K comparable] struct {
	start  State[K]
	isGoal GoalFunc[K]
}

func (p problem[K]) Start() State[K]            { return p.start }
func (p problem[K]) IsGoal(state State[K]) bool { return p.isGoal(state) }

// NewProblem builds a Problem from a start state and a goal predicate.
func NewProblem[K comparable](start State[K], isGoal GoalFunc[K]) Problem[K] {
	return problem[K]{start: start, isGoal: isGoal}
}

// Reach builds a Problem whose only goal is the given state.
func Reach[K comparable](start, goal State[K]) Problem[K] {
	return NewProblem(start, func(state State[K]) bool {
		return SameState(state, goal)
	})
}
