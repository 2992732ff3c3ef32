package search

import "slices"

// SortedFringe is the informed fringe: nodes ordered by non-decreasing
// evaluation value from front to back.
//
// Evaluations are computed when probed rather than stored, so a node whose
// cost changed through relinking is compared by its current value. Its
// position is not revisited.
type SortedFringe[K comparable] struct {
	nodes  []*Node[K]
	eval   Evaluator[K]
	linear bool
}

// NewSorted returns a fringe that places nodes by binary search over
// evaluation values.
//
// When the probed entry has the same evaluation as the candidate, the
// candidate goes after it if the entry's path cost is strictly greater
// than the candidate's, and before it otherwise. A cheaper candidate at an
// equal evaluation therefore queues behind a costlier one.
func NewSorted[K comparable](eval Evaluator[K]) *SortedFringe[K] {
	return &SortedFringe[K]{eval: eval}
}

// NewSortedLinear returns a fringe that scans from the front and places
// each node before the first entry with a strictly greater evaluation.
// Equal evaluations keep insertion order.
func NewSortedLinear[K comparable](eval Evaluator[K]) *SortedFringe[K] {
	return &SortedFringe[K]{eval: eval, linear: true}
}

// Insert places node according to its evaluation.
func (f *SortedFringe[K]) Insert(node *Node[K]) {
	var at int
	if f.linear {
		at = f.linearPosition(node)
	} else {
		at = f.binaryPosition(node)
	}
	f.nodes = slices.Insert(f.nodes, at, node)
}

// Pop removes and returns the front node.
func (f *SortedFringe[K]) Pop() *Node[K] {
	if len(f.nodes) == 0 {
		return nil
	}
	node := f.nodes[0]
	f.nodes[0] = nil
	f.nodes = f.nodes[1:]
	return node
}

// Len returns the number of queued nodes.
func (f *SortedFringe[K]) Len() int {
	return len(f.nodes)
}

// Nodes returns a front-to-back snapshot.
func (f *SortedFringe[K]) Nodes() []*Node[K] {
	return slices.Clone(f.nodes)
}

func (f *SortedFringe[K]) binaryPosition(node *Node[K]) int {
	value := f.eval(node)
	left, right := 0, len(f.nodes)-1

	for left <= right {
		if left == right {
			existing := f.nodes[left]
			switch v := f.eval(existing); {
			case v > value:
				return left
			case v == value:
				return tieBreak(existing, node, left)
			default:
				return left + 1
			}
		}

		mid := (left + right) / 2
		existing := f.nodes[mid]
		v := f.eval(existing)
		if v == value {
			return tieBreak(existing, node, mid)
		}
		if v > value {
			right = mid - 1
		} else {
			left = mid + 1
		}
	}
	return left
}

// tieBreak resolves an equal evaluation at index at.
func tieBreak[K comparable](existing, candidate *Node[K], at int) int {
	if existing.Cost() > candidate.Cost() {
		return at + 1
	}
	return at
}

func (f *SortedFringe[K]) linearPosition(node *Node[K]) int {
	value := f.eval(node)
	for i, existing := range f.nodes {
		if value < f.eval(existing) {
			return i
		}
	}
	return len(f.nodes)
}
