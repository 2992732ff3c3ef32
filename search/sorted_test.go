package search

import (
	"testing"
	"testing/quick"
)

// byKey evaluates a node as its state key.
func byKey(n *Node[int]) float64 {
	return float64(n.State.Key())
}

func TestSortedFringe_Ordering(t *testing.T) {
	for _, linear := range []bool{false, true} {
		name := "binary"
		if linear {
			name = "linear"
		}
		t.Run(name, func(t *testing.T) {
			f := NewSorted[int](byKey)
			if linear {
				f = NewSortedLinear[int](byKey)
			}

			for _, k := range []int{5, 1, 9, 3, 7, 2, 8} {
				f.Insert(NewRoot[int](point(k)))
			}

			want := []int{1, 2, 3, 5, 7, 8, 9}
			if got := keys(f.Nodes()); !equalInts(got, want) {
				t.Fatalf("expected %v, got %v", want, got)
			}
			if got := f.Pop().State.Key(); got != 1 {
				t.Errorf("expected to pop 1, got %d", got)
			}
			if f.Len() != 6 {
				t.Errorf("expected 6 remaining, got %d", f.Len())
			}
		})
	}
}

func TestSortedFringe_PopEmpty(t *testing.T) {
	f := NewSorted[int](byKey)
	if f.Pop() != nil {
		t.Error("expected nil from empty fringe")
	}
}

func TestSortedFringe_TieBreak(t *testing.T) {
	flat := func(*Node[int]) float64 { return 5 }

	t.Run("cheaper candidate goes after costlier entry", func(t *testing.T) {
		f := NewSorted[int](flat)
		costly := chain(3)
		cheap := NewChild[int](NewRoot[int](point(10)), Move{Label: "c", Weight: 1}, point(11))

		f.Insert(costly)
		f.Insert(cheap)

		got := f.Nodes()
		if got[0] != costly || got[1] != cheap {
			t.Errorf("expected [costly, cheap], got %v", keys(got))
		}
	})

	t.Run("costlier candidate goes before cheaper entry", func(t *testing.T) {
		f := NewSorted[int](flat)
		cheap := chain(1)
		costly := NewChild[int](NewRoot[int](point(10)), Move{Label: "c", Weight: 4}, point(11))

		f.Insert(cheap)
		f.Insert(costly)

		got := f.Nodes()
		if got[0] != costly || got[1] != cheap {
			t.Errorf("expected [costly, cheap], got %v", keys(got))
		}
	})

	t.Run("equal cost goes before", func(t *testing.T) {
		f := NewSorted[int](flat)
		first := chain(2)
		second := NewChild[int](NewRoot[int](point(10)), Move{Label: "c", Weight: 2}, point(11))

		f.Insert(first)
		f.Insert(second)

		if f.Nodes()[0] != second {
			t.Errorf("expected later equal node first, got %v", keys(f.Nodes()))
		}
	})

	t.Run("linear keeps insertion order", func(t *testing.T) {
		f := NewSortedLinear[int](flat)
		a, b, c := chain(3), chain(1), chain(2)

		f.Insert(a)
		f.Insert(b)
		f.Insert(c)

		got := f.Nodes()
		if got[0] != a || got[1] != b || got[2] != c {
			t.Error("linear insertion should be stable for equal evaluations")
		}
	})
}

// weighted is a generated (evaluation, path cost) pair.
type weighted struct {
	Eval, Cost uint8
}

// weightedNodes builds nodes for entries whose evaluation is looked up per
// node. Values are folded into small ranges so ties are common.
func weightedNodes(entries []weighted) ([]*Node[int], Evaluator[int]) {
	evals := make(map[*Node[int]]float64, len(entries))
	nodes := make([]*Node[int], len(entries))
	for i, e := range entries {
		nodes[i] = chain(float64(e.Cost % 5))
		evals[nodes[i]] = float64(e.Eval % 4)
	}
	return nodes, func(n *Node[int]) float64 { return evals[n] }
}

// bisect is a recursive model of binary insertion: halve the range until a
// probe hits an equal evaluation or the range closes, and at an equal
// evaluation go after the entry only if it has the higher path cost.
func bisect(nodes []*Node[int], eval Evaluator[int], node *Node[int], left, right int) int {
	if left > right {
		return left
	}
	value := eval(node)
	tie := func(i int) int {
		if nodes[i].Cost() > node.Cost() {
			return i + 1
		}
		return i
	}

	if left == right {
		switch v := eval(nodes[left]); {
		case v > value:
			return left
		case v == value:
			return tie(left)
		default:
			return left + 1
		}
	}

	mid := (left + right) / 2
	switch v := eval(nodes[mid]); {
	case v == value:
		return tie(mid)
	case v > value:
		return bisect(nodes, eval, node, left, mid-1)
	default:
		return bisect(nodes, eval, node, mid+1, right)
	}
}

func nonDecreasing(nodes []*Node[int], eval Evaluator[int]) bool {
	for j := 1; j < len(nodes); j++ {
		if eval(nodes[j-1]) > eval(nodes[j]) {
			return false
		}
	}
	return true
}

func TestSortedFringe_NonDecreasing(t *testing.T) {
	property := func(entries []weighted, linear bool) bool {
		nodes, eval := weightedNodes(entries)
		f := NewSorted[int](eval)
		if linear {
			f = NewSortedLinear[int](eval)
		}

		for _, node := range nodes {
			f.Insert(node)
			if !nonDecreasing(f.Nodes(), eval) {
				return false
			}
		}
		return f.Len() == len(entries)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestSortedFringe_BinaryPosition(t *testing.T) {
	property := func(entries []weighted) bool {
		nodes, eval := weightedNodes(entries)
		f := NewSorted[int](eval)

		for _, node := range nodes {
			before := f.Nodes()
			want := bisect(before, eval, node, 0, len(before)-1)
			f.Insert(node)

			after := f.Nodes()
			if after[want] != node {
				return false
			}
			// Everything else keeps its relative order.
			rest := append(after[:want:want], after[want+1:]...)
			for i := range before {
				if rest[i] != before[i] {
					return false
				}
			}
		}
		return true
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

func TestSortedFringe_TieAtMidpoint(t *testing.T) {
	// Three entries put the first probe on the middle one, whose
	// evaluation matches the candidate.
	tests := []struct {
		name string
		cost float64
		want int
	}{
		{"cheaper candidate goes after", 1, 2},
		{"equal cost goes before", 3, 1},
		{"costlier candidate goes before", 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low, mid, high := chain(0), chain(3), chain(0)
			candidate := chain(tt.cost)
			evals := map[*Node[int]]float64{low: 1, mid: 5, high: 9, candidate: 5}
			f := NewSorted[int](func(n *Node[int]) float64 { return evals[n] })

			f.Insert(low)
			f.Insert(mid)
			f.Insert(high)
			f.Insert(candidate)

			got := f.Nodes()
			if len(got) != 4 || got[tt.want] != candidate {
				t.Errorf("expected candidate at %d, got costs %v", tt.want, costs(got))
			}
		})
	}
}

func costs(nodes []*Node[int]) []float64 {
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = n.Cost()
	}
	return out
}

func TestSortedFringe_NodesIsSnapshot(t *testing.T) {
	f := NewSorted[int](byKey)
	f.Insert(NewRoot[int](point(1)))

	snap := f.Nodes()
	snap[0] = nil

	if f.Pop() == nil {
		t.Error("mutating the snapshot should not affect the fringe")
	}
}
