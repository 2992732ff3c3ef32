package search

import (
	"fmt"
	"strings"
)

// Path is a solution: the root state followed by the (action, state) pairs
// leading to the goal, in order.
type Path[K comparable] struct {
	// Head is the state the path starts from.
	Head State[K]

	// Cost is the total path cost.
	Cost float64

	// Steps are the transitions from Head to the goal.
	Steps []Successor[K]
}

// BuildPath reconstructs the path from the root of goal's parent chain to
// goal. A nil goal means no solution and yields nil.
func BuildPath[K comparable](goal *Node[K]) *Path[K] {
	if goal == nil {
		return nil
	}

	steps := make([]Successor[K], goal.Depth())
	i := len(steps)
	node := goal
	for node.Parent != nil {
		i--
		steps[i] = Successor[K]{Action: node.Action, State: node.State}
		node = node.Parent
	}

	return &Path[K]{
		Head:  node.State,
		Cost:  goal.Cost(),
		Steps: steps,
	}
}

// Len returns the number of actions on the path.
func (p *Path[K]) Len() int {
	return len(p.Steps)
}

// Goal returns the final state of the path.
func (p *Path[K]) Goal() State[K] {
	if len(p.Steps) == 0 {
		return p.Head
	}
	return p.Steps[len(p.Steps)-1].State
}

// Actions returns the path's actions in order.
func (p *Path[K]) Actions() []Action {
	actions := make([]Action, len(p.Steps))
	for i, step := range p.Steps {
		actions[i] = step.Action
	}
	return actions
}

// States returns every state on the path, head first.
func (p *Path[K]) States() []State[K] {
	states := make([]State[K], 0, len(p.Steps)+1)
	states = append(states, p.Head)
	for _, step := range p.Steps {
		states = append(states, step.State)
	}
	return states
}

// String renders the head state, then each action and resulting state.
func (p *Path[K]) String() string {
	if p == nil || p.Head == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%v\n", p.Head)
	for _, step := range p.Steps {
		fmt.Fprintf(&b, "%v\n%v\n\n", step.Action, step.State)
	}
	return b.String()
}
