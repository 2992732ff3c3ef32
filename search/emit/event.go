package emit

// Standard event messages emitted by the search engine.
const (
	// MsgSearchStart is emitted once, before the root node is queued.
	MsgSearchStart = "search_start"

	// MsgProgress is emitted every time the number of visited nodes
	// reaches a multiple of the progress interval.
	MsgProgress = "progress"

	// MsgRelink is emitted when a cheaper path to an already-registered
	// state is discovered during informed search.
	MsgRelink = "relink"

	// MsgGoalFound is emitted when a goal state is removed from the fringe.
	MsgGoalFound = "goal_found"

	// MsgExhausted is emitted when the fringe empties without reaching a goal.
	MsgExhausted = "search_exhausted"

	// MsgAborted is emitted when a search stops early (cancellation or node limit).
	MsgAborted = "search_aborted"
)

// Event represents an observability event emitted during a search run.
//
// Events provide insight into search behavior:
//   - Run start and termination (goal found, exhausted, aborted)
//   - Periodic progress (cumulative visited-node count)
//   - Cheaper-path discoveries (relinks) in informed search
type Event struct {
	// RunID identifies the search run that emitted this event.
	RunID string

	// Step is the cumulative number of visited nodes when the event
	// was emitted (the root counts as the first).
	Step int

	// State is a printable rendering of the state the event concerns.
	// Empty for run-level events such as progress.
	State string

	// Msg is the event kind, one of the Msg* constants.
	Msg string

	// Meta contains additional structured data specific to this event.
	// Common keys:
	//   - "strategy": bfs, dfs, greedy, astar or best-first
	//   - "fringe_size": number of unexpanded nodes
	//   - "expanded": number of expanded nodes
	//   - "cost": path cost (goal_found, relink)
	//   - "depth": path depth (goal_found)
	//   - "error": abort reason
	Meta map[string]interface{}
}
