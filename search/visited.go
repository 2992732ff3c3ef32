package search

// ClosedSet records the states an uninformed search has expanded.
type ClosedSet[K comparable] struct {
	keys map[K]struct{}
}

// NewClosedSet returns an empty closed set.
func NewClosedSet[K comparable]() *ClosedSet[K] {
	return &ClosedSet[K]{keys: make(map[K]struct{})}
}

// Contains reports whether state has been expanded.
func (c *ClosedSet[K]) Contains(state State[K]) bool {
	_, ok := c.keys[state.Key()]
	return ok
}

// Add marks state as expanded.
func (c *ClosedSet[K]) Add(state State[K]) {
	c.keys[state.Key()] = struct{}{}
}

// Len returns the number of expanded states.
func (c *ClosedSet[K]) Len() int {
	return len(c.keys)
}

// Registry maps each state an informed search has generated to the best
// node currently known to reach it. It holds at most one node per state.
type Registry[K comparable] struct {
	nodes map[K]*Node[K]
}

// NewRegistry returns an empty registry.
func NewRegistry[K comparable]() *Registry[K] {
	return &Registry[K]{nodes: make(map[K]*Node[K])}
}

// Lookup returns the node registered for state.
func (r *Registry[K]) Lookup(state State[K]) (*Node[K], bool) {
	node, ok := r.nodes[state.Key()]
	return node, ok
}

// Register records node as the best known node for its state, replacing
// any previous entry.
func (r *Registry[K]) Register(node *Node[K]) {
	r.nodes[node.State.Key()] = node
}

// Len returns the number of registered states.
func (r *Registry[K]) Len() int {
	return len(r.nodes)
}

// Improve relinks known to come from parent via action when that path is
// strictly cheaper than known's current one, and reports whether it did.
// The node keeps its place in the fringe.
func (r *Registry[K]) Improve(known, parent *Node[K], action Action) bool {
	if known.Cost() > action.Cost()+parent.Cost() {
		known.Relink(parent, action)
		return true
	}
	return false
}
