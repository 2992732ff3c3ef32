package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dshills/statesearch/search/emit"
	"github.com/dshills/statesearch/search/store"
)

// Engine runs searches over problems whose states are keyed by K.
//
// An Engine holds only configuration and collaborators; every search
// builds its own fringe and visited structures, so one Engine may run
// several searches concurrently provided the configured emitter, store,
// and progress callback tolerate that.
//
// Example:
//
//	engine, err := search.New[string](
//	    search.WithEmitter(emit.NewLogEmitter(os.Stderr, false)),
//	    search.WithMaxNodes(500_000),
//	)
//	if err != nil {
//	    return err
//	}
//	result, err := engine.SearchUninformed(ctx, "run-001", problem, search.BreadthFirst)
type Engine[K comparable] struct {
	opts     Options
	emitter  emit.Emitter
	metrics  *PrometheusMetrics
	logger   *slog.Logger
	progress ProgressFunc
	store    store.Store
}

// New creates an Engine configured by options.
func New[K comparable](options ...Option) (*Engine[K], error) {
	cfg := &engineConfig{}
	for _, opt := range options {
		if err := opt(cfg); err != nil {
			return nil, &EngineError{Message: err.Error(), Code: "INVALID_OPTION", Cause: err}
		}
	}

	e := &Engine[K]{
		opts:     cfg.opts,
		emitter:  cfg.emitter,
		metrics:  cfg.metrics,
		logger:   cfg.logger,
		progress: cfg.progress,
		store:    cfg.store,
	}
	if e.emitter == nil {
		e.emitter = emit.NewNullEmitter()
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e, nil
}

// Options returns the engine's search options.
func (e *Engine[K]) Options() Options {
	return e.opts
}

// Search runs problem with the named strategy. Greedy and A* need a
// heuristic; BFS and DFS ignore h.
func (e *Engine[K]) Search(ctx context.Context, runID string, problem Problem[K], strategy Strategy, h Heuristic[K]) (*Result[K], error) {
	switch strategy {
	case StrategyBFS:
		return e.SearchUninformed(ctx, runID, problem, BreadthFirst)
	case StrategyDFS:
		return e.SearchUninformed(ctx, runID, problem, DepthFirst)
	case StrategyGreedy, StrategyAStar:
		if h == nil {
			return nil, &EngineError{
				Message: fmt.Sprintf("strategy %s requires a heuristic", strategy),
				Code:    "MISSING_HEURISTIC",
			}
		}
		eval := Greedy(h)
		if strategy == StrategyAStar {
			eval = AStar(h)
		}
		return e.searchInformed(ctx, runID, strategy, problem, eval)
	default:
		return nil, &EngineError{
			Message: fmt.Sprintf("unknown strategy %q", string(strategy)),
			Code:    "UNKNOWN_STRATEGY",
		}
	}
}

// start validates problem and returns its start state.
func start[K comparable](problem Problem[K]) (State[K], error) {
	if problem == nil {
		return nil, &EngineError{Message: "problem cannot be nil", Code: "MISSING_PROBLEM"}
	}
	root := problem.Start()
	if root == nil {
		return nil, &EngineError{Message: "problem has no start state", Code: "MISSING_START"}
	}
	return root, nil
}

func (e *Engine[K]) sortedFringe(eval Evaluator[K]) *SortedFringe[K] {
	if e.opts.LinearInsertion {
		return NewSortedLinear(eval)
	}
	return NewSorted(eval)
}
