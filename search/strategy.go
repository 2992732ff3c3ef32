package search

import (
	"fmt"
	"strings"
)

// Heuristic estimates the remaining cost from a state to a goal. Values
// must be non-negative; admissibility is the domain's responsibility.
type Heuristic[K comparable] func(state State[K]) float64

// Evaluator computes the value that orders the informed fringe, f(n).
type Evaluator[K comparable] func(node *Node[K]) float64

// Greedy returns the greedy best-first evaluator f(n) = h(n).
func Greedy[K comparable](h Heuristic[K]) Evaluator[K] {
	return func(node *Node[K]) float64 {
		return h(node.State)
	}
}

// AStar returns the A* evaluator f(n) = g(n) + h(n).
func AStar[K comparable](h Heuristic[K]) Evaluator[K] {
	return func(node *Node[K]) float64 {
		return node.Cost() + h(node.State)
	}
}

// UniformCost returns the evaluator f(n) = g(n).
func UniformCost[K comparable]() Evaluator[K] {
	return func(node *Node[K]) float64 {
		return node.Cost()
	}
}

// Strategy names a search strategy.
type Strategy string

const (
	StrategyBFS       Strategy = "bfs"
	StrategyDFS       Strategy = "dfs"
	StrategyGreedy    Strategy = "greedy"
	StrategyAStar     Strategy = "astar"
	StrategyBestFirst Strategy = "best-first"
)

// Informed reports whether s orders its fringe by an evaluation function.
func (s Strategy) Informed() bool {
	switch s {
	case StrategyGreedy, StrategyAStar, StrategyBestFirst:
		return true
	default:
		return false
	}
}

// ParseStrategy maps a user-supplied name to a Strategy. Matching is
// case-insensitive and accepts a few common aliases.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first", "breadth":
		return StrategyBFS, nil
	case "dfs", "depth-first", "depth":
		return StrategyDFS, nil
	case "greedy", "gbf", "gbfs":
		return StrategyGreedy, nil
	case "astar", "a*", "a-star":
		return StrategyAStar, nil
	}
	return "", &EngineError{
		Message: fmt.Sprintf("unknown strategy %q", name),
		Code:    "UNKNOWN_STRATEGY",
	}
}
