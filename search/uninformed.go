package search

import "context"

// SearchUninformed runs breadth-first or depth-first search.
//
// The fringe starts with the root. Each iteration removes the front node
// and returns its path if it satisfies the goal. Otherwise, unless its
// state was already expanded, every successor becomes a child node that is
// added at the back (BreadthFirst) or the front (DepthFirst), and the
// state is marked expanded. Successors are not filtered against the closed
// set when generated; duplicates are discarded when popped.
//
// The goal test happens when a node is removed, not when it is generated.
// An empty fringe returns a Result with a nil Path and no error.
func (e *Engine[K]) SearchUninformed(ctx context.Context, runID string, problem Problem[K], order Order) (*Result[K], error) {
	root, err := start(problem)
	if err != nil {
		return nil, err
	}

	strategy := StrategyBFS
	if order == DepthFirst {
		strategy = StrategyDFS
	}

	fringe := NewFringe[K](order)
	closed := NewClosedSet[K]()
	r := e.begin(ctx, runID, strategy, fringe, root)

	fringe.Insert(NewRoot(root))
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
		if closed.Contains(node.State) {
			continue
		}

		for _, succ := range node.State.Successors() {
			fringe.Insert(NewChild(node, succ.Action, succ.State))
			if err := r.visit(); err != nil {
				return nil, r.abort(err)
			}
		}
		closed.Add(node.State)
		r.expandedOne()
	}

	return r.finish(nil)
}
