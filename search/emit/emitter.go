// Package emit provides event emission and observability for state-space search runs.
package emit

// Emitter receives observability events from a running search.
//
// Emitters enable pluggable observability backends:
//   - Logging: stdout, files
//   - Distributed tracing: OpenTelemetry
//   - In-memory capture for tests and post-run analysis
//
// The search engine is single-threaded, but an Emitter may be shared by
// several engines running in different goroutines, so implementations
// should be safe for concurrent use.
//
// Emit must not panic and must not influence the search: a search with
// a NullEmitter returns exactly the same result as one with any other
// emitter.
type Emitter interface {
	// Emit sends an observability event to the configured backend.
	Emit(event Event)
}
