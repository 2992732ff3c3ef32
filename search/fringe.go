package search

// Fringe is the ordered collection of nodes waiting to be expanded.
//
// Pop always removes the front; the insertion position chosen by Insert is
// what distinguishes one strategy from another.
type Fringe[K comparable] interface {
	// Insert adds a node according to the fringe's policy.
	Insert(node *Node[K])

	// Pop removes and returns the front node, or nil when empty.
	Pop() *Node[K]

	// Len returns the number of queued nodes.
	Len() int

	// Nodes returns a front-to-back snapshot of the queued nodes.
	Nodes() []*Node[K]
}

// Order is the insertion policy of an uninformed search.
type Order int

const (
	// BreadthFirst appends children to the back of the fringe (FIFO).
	BreadthFirst Order = iota

	// DepthFirst prepends children to the front of the fringe (LIFO).
	DepthFirst
)

func (o Order) String() string {
	switch o {
	case BreadthFirst:
		return "breadth-first"
	case DepthFirst:
		return "depth-first"
	default:
		return "unknown"
	}
}

// NewFIFO returns a fringe that appends inserted nodes (breadth-first).
func NewFIFO[K comparable]() *QueueFringe[K] {
	return &QueueFringe[K]{}
}

// NewLIFO returns a fringe that prepends inserted nodes (depth-first).
func NewLIFO[K comparable]() *QueueFringe[K] {
	return &QueueFringe[K]{prepend: true}
}

// NewFringe returns the fringe implementing order.
func NewFringe[K comparable](order Order) *QueueFringe[K] {
	if order == DepthFirst {
		return NewLIFO[K]()
	}
	return NewFIFO[K]()
}

// QueueFringe is the uninformed fringe: a ring-buffer deque where both
// insertion ends and front removal are amortised O(1).
type QueueFringe[K comparable] struct {
	buf     []*Node[K]
	head    int
	size    int
	prepend bool
}

// Insert adds node at the back (FIFO) or the front (LIFO).
func (q *QueueFringe[K]) Insert(node *Node[K]) {
	q.grow()
	if q.prepend {
		q.head = (q.head - 1 + len(q.buf)) % len(q.buf)
		q.buf[q.head] = node
	} else {
		q.buf[(q.head+q.size)%len(q.buf)] = node
	}
	q.size++
}

// Pop removes and returns the front node.
func (q *QueueFringe[K]) Pop() *Node[K] {
	if q.size == 0 {
		return nil
	}
	node := q.buf[q.head]
	q.buf[q.head] = nil
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return node
}

// Len returns the number of queued nodes.
func (q *QueueFringe[K]) Len() int {
	return q.size
}

// Nodes returns a front-to-back snapshot.
func (q *QueueFringe[K]) Nodes() []*Node[K] {
	nodes := make([]*Node[K], q.size)
	for i := range nodes {
		nodes[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return nodes
}

// grow doubles the buffer when full, unwrapping it so head is 0.
func (q *QueueFringe[K]) grow() {
	if q.size < len(q.buf) {
		return
	}
	capacity := 2 * len(q.buf)
	if capacity == 0 {
		capacity = 16
	}
	buf := make([]*Node[K], capacity)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
