package search

import (
	"fmt"
	"time"

	"github.com/dshills/statesearch/search/store"
)

// Result is the outcome of a search that ran to completion.
type Result[K comparable] struct {
	RunID    string
	Strategy Strategy

	// Path is the solution, or nil when the fringe emptied without
	// reaching a goal.
	Path *Path[K]

	// NodesVisited counts the root plus every generated successor,
	// including successors that were discarded as already seen.
	NodesVisited int

	// Expanded counts nodes whose successors were generated.
	Expanded int

	// Relinks counts cheaper paths adopted by informed search.
	Relinks int

	// MaxFringe is the largest fringe size observed after an expansion.
	MaxFringe int

	Duration time.Duration
}

// Solved reports whether a goal was reached.
func (r *Result[K]) Solved() bool {
	return r.Path != nil
}

// Record converts the result into an archive record, rendering states and
// actions with fmt.
func (r *Result[K]) Record() store.Record {
	rec := store.Record{
		RunID:        r.RunID,
		Strategy:     string(r.Strategy),
		Solved:       r.Solved(),
		NodesVisited: r.NodesVisited,
		Expanded:     r.Expanded,
		Relinks:      r.Relinks,
		Duration:     r.Duration,
	}
	if r.Path == nil {
		return rec
	}

	rec.Cost = r.Path.Cost
	rec.Depth = r.Path.Len()
	rec.Head = fmt.Sprint(r.Path.Head)
	rec.Steps = make([]store.Step, len(r.Path.Steps))
	for i, step := range r.Path.Steps {
		rec.Steps[i] = store.Step{
			Action: fmt.Sprint(step.Action),
			State:  fmt.Sprint(step.State),
			Cost:   step.Action.Cost(),
		}
	}
	return rec
}
