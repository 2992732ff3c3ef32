package search

// Node wraps a state with the node it was reached from and the action taken.
//
// Parent links form a tree rooted at a node whose Parent is nil. Cost and
// Depth are derived from that chain on every call and never cached, since
// informed search may relink a node to a cheaper parent after creation.
type Node[K comparable] struct {
	State  State[K]
	Parent *Node[K]
	Action Action
}

// NewRoot returns a node with no parent and no action.
func NewRoot[K comparable](state State[K]) *Node[K] {
	return &Node[K]{State: state}
}

// NewChild returns a node reached from parent by action.
func NewChild[K comparable](parent *Node[K], action Action, state State[K]) *Node[K] {
	return &Node[K]{State: state, Parent: parent, Action: action}
}

// IsRoot reports whether n has no parent.
func (n *Node[K]) IsRoot() bool {
	return n.Parent == nil
}

// Cost returns the sum of action costs from the root to n.
func (n *Node[K]) Cost() float64 {
	var total float64
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		total += cur.Action.Cost()
	}
	return total
}

// Depth returns the number of edges from the root to n.
func (n *Node[K]) Depth() int {
	depth := 0
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		depth++
	}
	return depth
}

// Root returns the root of n's parent chain.
func (n *Node[K]) Root() *Node[K] {
	cur := n
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

// Relink rebinds n to a new parent and action in place. Whatever holds n
// (fringe, registry) sees the new path immediately.
func (n *Node[K]) Relink(parent *Node[K], action Action) {
	n.Parent = parent
	n.Action = action
}
