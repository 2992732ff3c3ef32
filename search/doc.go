// Package search provides a domain-independent state-space search engine.
//
// A problem is described only through its states: every State exposes a
// stable lookup key and the (action, next-state) pairs reachable from it,
// and every Action carries a cost. The engine explores states with either
//
//   - uninformed strategies, where the fringe is a FIFO (breadth-first) or
//     LIFO (depth-first) queue and a closed set guarantees each state is
//     expanded at most once, or
//   - informed strategies, where the fringe is kept sorted by an evaluation
//     function (greedy best-first or A*) and a registry maps each state to
//     the best node known to reach it, relinking that node in place when a
//     strictly cheaper path is found.
//
// The result is the path to the first goal state removed from the fringe,
// or an explicit no-solution value (a Result whose Path is nil). Running
// out of states is never an error.
//
// Path cost, depth and path reconstruction walk parent links iteratively,
// so arbitrarily deep solutions do not grow the call stack.
//
// Example:
//
//	engine, err := search.New[int](
//	    search.WithEmitter(emit.NewLogEmitter(os.Stderr, false)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := engine.SearchUninformed(ctx, "run-001", problem, search.BreadthFirst)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Solved() {
//	    fmt.Println("no solution")
//	}
package search
