package search

// ProgressInterval is the number of visited nodes between progress
// notifications.
const ProgressInterval = 1000

// ProgressReport is passed to a ProgressFunc.
type ProgressReport struct {
	RunID        string
	Strategy     Strategy
	NodesVisited int
	Expanded     int
	FringeSize   int
}

// ProgressFunc observes a running search. It is called synchronously from
// the search loop and must not modify the search.
type ProgressFunc func(report ProgressReport)
