// Package store archives the outcome of finished search runs.
//
// Only summaries of completed runs are kept (strategy, counters, and the
// rendered solution path). In-flight search state is never persisted and
// a run cannot be resumed from the archive.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested run ID does not exist.
var ErrNotFound = errors.New("not found")

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// Store persists search run records.
//
// Implementations:
//   - MemStore: in-process maps, for tests and short-lived tools
//   - SQLiteStore: single-file database, zero setup
//   - MySQLStore: shared relational database
//   - RedisStore: shared key-value server, optional expiry
type Store interface {
	// SaveResult persists rec, replacing any record with the same RunID.
	SaveResult(ctx context.Context, rec Record) error

	// LoadResult returns the record for runID, or ErrNotFound.
	LoadResult(ctx context.Context, runID string) (Record, error)

	// ListResults returns up to limit records, most recently saved first.
	// A limit <= 0 returns every record.
	ListResults(ctx context.Context, limit int) ([]Record, error)
}

// Step is one transition on an archived solution path.
type Step struct {
	Action string  `json:"action"`
	State  string  `json:"state"`
	Cost   float64 `json:"cost"`
}

// Record summarises one finished search run.
type Record struct {
	// RunID uniquely identifies the run.
	RunID string `json:"run_id"`

	// Strategy is the strategy name (bfs, dfs, greedy, astar, best-first).
	Strategy string `json:"strategy"`

	// Solved reports whether a goal was reached. When false, Head, Steps,
	// Cost and Depth are zero.
	Solved bool `json:"solved"`

	// Cost is the total path cost.
	Cost float64 `json:"cost"`

	// Depth is the number of actions on the path.
	Depth int `json:"depth"`

	// NodesVisited counts the root plus every generated successor.
	NodesVisited int `json:"nodes_visited"`

	// Expanded counts nodes whose successors were generated.
	Expanded int `json:"expanded"`

	// Relinks counts cheaper-path relinks (informed search only).
	Relinks int `json:"relinks"`

	// Duration is the wall-clock time of the search.
	Duration time.Duration `json:"duration_ns"`

	// Head is the rendered start state.
	Head string `json:"head"`

	// Steps is the rendered path from Head to the goal.
	Steps []Step `json:"steps"`

	// CreatedAt is when the record was saved. Stores set it when zero.
	CreatedAt time.Time `json:"created_at"`
}
