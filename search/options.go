package search

import (
	"fmt"
	"log/slog"

	"github.com/dshills/statesearch/search/emit"
	"github.com/dshills/statesearch/search/store"
)

// Options configures search behavior. The zero value is valid and gives
// the plain unbounded search with binary sorted insertion.
type Options struct {
	// MaxNodes aborts a search with ErrNodeLimit once more than MaxNodes
	// nodes have been generated. 0 means no limit.
	MaxNodes int

	// LinearInsertion makes informed search place fringe nodes with a
	// front-to-back scan instead of binary search.
	LinearInsertion bool
}

// Option is a functional option for configuring an Engine.
//
// Example:
//
//	engine, err := search.New[int](
//	    search.WithEmitter(emit.NewLogEmitter(os.Stderr, false)),
//	    search.WithMetrics(search.NewPrometheusMetrics(registry)),
//	    search.WithMaxNodes(1_000_000),
//	)
type Option func(*engineConfig) error

// engineConfig collects options before they are applied to an Engine.
type engineConfig struct {
	opts     Options
	emitter  emit.Emitter
	metrics  *PrometheusMetrics
	logger   *slog.Logger
	progress ProgressFunc
	store    store.Store
}

// WithOptions replaces the engine's Options wholesale. Later options
// still override individual fields.
func WithOptions(opts Options) Option {
	return func(cfg *engineConfig) error {
		if opts.MaxNodes < 0 {
			return fmt.Errorf("MaxNodes must be >= 0, got %d", opts.MaxNodes)
		}
		cfg.opts = opts
		return nil
	}
}

// WithMaxNodes aborts searches that generate more than n nodes.
// Default: 0 (no limit).
func WithMaxNodes(n int) Option {
	return func(cfg *engineConfig) error {
		if n < 0 {
			return fmt.Errorf("max nodes must be >= 0, got %d", n)
		}
		cfg.opts.MaxNodes = n
		return nil
	}
}

// WithLinearInsertion selects linear-scan insertion for informed search.
func WithLinearInsertion() Option {
	return func(cfg *engineConfig) error {
		cfg.opts.LinearInsertion = true
		return nil
	}
}

// WithEmitter sends run events (start, progress, relinks, termination)
// to emitter. Default: emit.NullEmitter.
func WithEmitter(emitter emit.Emitter) Option {
	return func(cfg *engineConfig) error {
		cfg.emitter = emitter
		return nil
	}
}

// WithMetrics records Prometheus metrics for every search.
func WithMetrics(metrics *PrometheusMetrics) Option {
	return func(cfg *engineConfig) error {
		cfg.metrics = metrics
		return nil
	}
}

// WithLogger sets the structured logger. Default: discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *engineConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithProgress calls fn every ProgressInterval visited nodes.
func WithProgress(fn ProgressFunc) Option {
	return func(cfg *engineConfig) error {
		cfg.progress = fn
		return nil
	}
}

// WithStore archives a record of every finished (solved or exhausted)
// search. Aborted searches are not archived.
func WithStore(st store.Store) Option {
	return func(cfg *engineConfig) error {
		cfg.store = st
		return nil
	}
}
