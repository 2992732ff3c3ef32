package search

import "context"

// SearchInformed runs best-first search ordered by eval, lowest first.
// Pass Greedy(h) for greedy best-first, AStar(h) for A*, or UniformCost()
// for uniform-cost search.
//
// Every state generated is registered with the node that reached it. A
// successor whose state is new becomes a child node inserted in sorted
// order. A successor whose state is already registered is discarded, but
// if it reaches that state more cheaply the registered node is relinked
// to the new parent. A relinked node keeps its fringe position; its
// evaluation is not recomputed.
//
// Popped nodes are always expanded. There is no closed-set check on
// removal; the registry alone suppresses duplicates.
func (e *Engine[K]) SearchInformed(ctx context.Context, runID string, problem Problem[K], eval Evaluator[K]) (*Result[K], error) {
	return e.searchInformed(ctx, runID, StrategyBestFirst, problem, eval)
}

func (e *Engine[K]) searchInformed(ctx context.Context, runID string, strategy Strategy, problem Problem[K], eval Evaluator[K]) (*Result[K], error) {
	root, err := start(problem)
	if err != nil {
		return nil, err
	}
	if eval == nil {
		return nil, &EngineError{Message: "evaluator cannot be nil", Code: "MISSING_EVALUATOR"}
	}

	fringe := e.sortedFringe(eval)
	registry := NewRegistry[K]()
	r := e.begin(ctx, runID, strategy, fringe, root)

	rootNode := NewRoot(root)
	fringe.Insert(rootNode)
	registry.Register(rootNode)
	if err := r.visit(); err != nil {
		return nil, r.abort(err)
	}

	for fringe.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, r.abort(err)
		}

		node := fringe.Pop()
		if problem.IsGoal(node.State) {
			return r.finish(node)
		}

		for _, succ := range node.State.Successors() {
			if err := r.visit(); err != nil {
				return nil, r.abort(err)
			}
			known, ok := registry.Lookup(succ.State)
			if !ok {
				child := NewChild(node, succ.Action, succ.State)
				fringe.Insert(child)
				registry.Register(child)
				continue
			}
			if registry.Improve(known, node, succ.Action) {
				r.relinked(known)
			}
		}
		r.expandedOne()
	}

	return r.finish(nil)
}
