package search

import "strconv"

// point is a bare state for tests that never expand.
type point int

func (p point) Key() int                    { return int(p) }
func (p point) Successors() []Successor[int] { return nil }
func (p point) String() string              { return "p" + strconv.Itoa(int(p)) }

// chain builds root -> ... with one node per cost, returning the last.
func chain(costs ...float64) *Node[int] {
	node := NewRoot[int](point(0))
	for i, c := range costs {
		node = NewChild[int](node, Move{Label: "m" + strconv.Itoa(i+1), Weight: c}, point(i+1))
	}
	return node
}
