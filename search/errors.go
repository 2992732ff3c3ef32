package search

import "errors"

// ErrNodeLimit indicates a search generated more nodes than allowed by
// WithMaxNodes before reaching a goal or exhausting the fringe.
var ErrNodeLimit = errors.New("search exceeded node limit")

// EngineError reports misuse of the engine: missing inputs, unknown
// strategies, or failures of collaborators such as the result store.
//
// Running out of states is not an error; see Result.Solved.
type EngineError struct {
	Message string
	Code    string
	Cause   error
}

func (e *EngineError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *EngineError) Unwrap() error {
	return e.Cause
}
