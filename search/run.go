package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dshills/statesearch/search/emit"
)

// run tracks the counters and observers of a single search.
type run[K comparable] struct {
	ctx      context.Context
	engine   *Engine[K]
	id       string
	strategy Strategy
	fringe   Fringe[K]
	started  time.Time

	visited   int
	expanded  int
	relinks   int
	maxFringe int
}

func (e *Engine[K]) begin(ctx context.Context, runID string, strategy Strategy, fringe Fringe[K], root State[K]) *run[K] {
	e.logger.Debug("search started",
		"run_id", runID,
		"strategy", string(strategy),
		"start", fmt.Sprint(root))
	e.emitter.Emit(emit.Event{
		RunID: runID,
		State: fmt.Sprint(root),
		Msg:   emit.MsgSearchStart,
		Meta:  map[string]interface{}{"strategy": string(strategy)},
	})
	return &run[K]{
		ctx:      ctx,
		engine:   e,
		id:       runID,
		strategy: strategy,
		fringe:   fringe,
		started:  time.Now(),
	}
}

// visit counts one generated node and reports progress on every
// ProgressInterval-th. It fails with ErrNodeLimit past MaxNodes.
func (r *run[K]) visit() error {
	r.visited++
	if r.visited%ProgressInterval == 0 {
		r.report()
	}
	if limit := r.engine.opts.MaxNodes; limit > 0 && r.visited > limit {
		return ErrNodeLimit
	}
	return nil
}

func (r *run[K]) report() {
	size := r.fringe.Len()
	r.engine.emitter.Emit(emit.Event{
		RunID: r.id,
		Step:  r.visited,
		Msg:   emit.MsgProgress,
		Meta: map[string]interface{}{
			"strategy":      string(r.strategy),
			"nodes_visited": r.visited,
			"expanded":      r.expanded,
			"fringe_size":   size,
		},
	})
	if r.engine.metrics != nil {
		r.engine.metrics.UpdateFringeSize(string(r.strategy), size)
	}
	if r.engine.progress != nil {
		r.engine.progress(ProgressReport{
			RunID:        r.id,
			Strategy:     r.strategy,
			NodesVisited: r.visited,
			Expanded:     r.expanded,
			FringeSize:   size,
		})
	}
}

// expandedOne records an expansion and the fringe size after it.
func (r *run[K]) expandedOne() {
	r.expanded++
	if n := r.fringe.Len(); n > r.maxFringe {
		r.maxFringe = n
	}
}

func (r *run[K]) relinked(node *Node[K]) {
	r.relinks++
	r.engine.emitter.Emit(emit.Event{
		RunID: r.id,
		Step:  r.visited,
		State: fmt.Sprint(node.State),
		Msg:   emit.MsgRelink,
		Meta: map[string]interface{}{
			"cost":  node.Cost(),
			"depth": node.Depth(),
		},
	})
}

// finish builds the result for a search that reached goal, or exhausted
// the fringe when goal is nil, and archives it.
func (r *run[K]) finish(goal *Node[K]) (*Result[K], error) {
	e := r.engine
	result := &Result[K]{
		RunID:        r.id,
		Strategy:     r.strategy,
		Path:         BuildPath(goal),
		NodesVisited: r.visited,
		Expanded:     r.expanded,
		Relinks:      r.relinks,
		MaxFringe:    r.maxFringe,
		Duration:     time.Since(r.started),
	}

	event := emit.Event{
		RunID: r.id,
		Step:  r.visited,
		Msg:   emit.MsgExhausted,
		Meta: map[string]interface{}{
			"strategy":    string(r.strategy),
			"expanded":    r.expanded,
			"fringe_size": r.fringe.Len(),
			"duration":    result.Duration,
		},
	}
	outcome := OutcomeExhausted
	if result.Solved() {
		outcome = OutcomeSolved
		event.Msg = emit.MsgGoalFound
		event.State = fmt.Sprint(goal.State)
		event.Meta["cost"] = result.Path.Cost
		event.Meta["depth"] = result.Path.Len()
	}
	e.emitter.Emit(event)

	var archiveErr error
	if e.store != nil {
		if err := e.store.SaveResult(r.ctx, result.Record()); err != nil {
			outcome = OutcomeStoreError
			archiveErr = &EngineError{
				Message: fmt.Sprintf("failed to archive run %s", r.id),
				Code:    "STORE_ERROR",
				Cause:   err,
			}
		}
	}

	if e.metrics != nil {
		e.metrics.RecordSearch(string(r.strategy), outcome, r.visited, r.expanded, r.relinks, result.Duration)
		e.metrics.UpdateFringeSize(string(r.strategy), r.fringe.Len())
		if result.Solved() {
			e.metrics.ObserveSolution(string(r.strategy), result.Path.Cost)
		}
	}

	attrs := []any{
		"run_id", r.id,
		"strategy", string(r.strategy),
		"solved", result.Solved(),
		"visited", r.visited,
		"expanded", r.expanded,
		"duration", result.Duration,
	}
	if result.Solved() {
		attrs = append(attrs, "cost", result.Path.Cost, "depth", result.Path.Len())
	}
	e.logger.Info("search finished", attrs...)
	if archiveErr != nil {
		e.logger.Error("archive failed", "run_id", r.id, "error", archiveErr)
	}

	return result, archiveErr
}

// abort reports a search stopped by cancellation or the node limit and
// returns the error the caller should see.
func (r *run[K]) abort(err error) error {
	e := r.engine
	elapsed := time.Since(r.started)

	outcome := OutcomeCancelled
	if errors.Is(err, ErrNodeLimit) {
		outcome = OutcomeNodeLimit
		err = &EngineError{
			Message: fmt.Sprintf("generated more than %d nodes", e.opts.MaxNodes),
			Code:    "NODE_LIMIT",
			Cause:   ErrNodeLimit,
		}
	}

	e.emitter.Emit(emit.Event{
		RunID: r.id,
		Step:  r.visited,
		Msg:   emit.MsgAborted,
		Meta: map[string]interface{}{
			"strategy":    string(r.strategy),
			"expanded":    r.expanded,
			"fringe_size": r.fringe.Len(),
			"error":       err.Error(),
		},
	})
	if e.metrics != nil {
		e.metrics.RecordSearch(string(r.strategy), outcome, r.visited, r.expanded, r.relinks, elapsed)
	}
	e.logger.Warn("search aborted",
		"run_id", r.id,
		"strategy", string(r.strategy),
		"visited", r.visited,
		"error", err)
	return err
}
