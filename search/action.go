package search

import "fmt"

// DefaultActionCost is the cost of an action whose domain does not set one.
const DefaultActionCost = 1.0

// Action is a domain operation that turns one state into another.
//
// Costs are summed along a node's parent chain to give its path cost.
// Informed search assumes costs are non-negative; this is not checked.
type Action interface {
	Cost() float64
}

// Move is a general-purpose Action: a printable label with a cost.
//
// Use NewMove to get the default cost. A zero Move literal has cost 0.
type Move struct {
	Label  string
	Weight float64
}

// NewMove returns a Move with DefaultActionCost.
func NewMove(label string) Move {
	return Move{Label: label, Weight: DefaultActionCost}
}

// WithCost returns a copy of m with the given cost.
func (m Move) WithCost(cost float64) Move {
	m.Weight = cost
	return m
}

// Cost implements Action.
func (m Move) Cost() float64 {
	return m.Weight
}

func (m Move) String() string {
	if m.Weight == DefaultActionCost {
		return m.Label
	}
	return fmt.Sprintf("%s (cost %g)", m.Label, m.Weight)
}
