// Package explicit provides a search domain over an explicitly listed
// graph: integer vertices joined by labelled, weighted, directed edges.
//
// It is useful for tests and for problems small enough to enumerate.
package explicit

import (
	"fmt"
	"strconv"

	"github.com/dshills/statesearch/search"
)

// Edge is a directed edge with its move.
type Edge struct {
	To   int
	Move search.Move
}

// Graph is an adjacency list. Successors are reported in the order edges
// were added. A Graph must not be modified while a search uses it.
type Graph struct {
	edges map[int][]Edge
	names map[int]string
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		edges: make(map[int][]Edge),
		names: make(map[int]string),
	}
}

// Connect adds a directed edge from -> to and returns g for chaining.
func (g *Graph) Connect(from, to int, label string, cost float64) *Graph {
	g.edges[from] = append(g.edges[from], Edge{
		To:   to,
		Move: search.NewMove(label).WithCost(cost),
	})
	if _, ok := g.edges[to]; !ok {
		g.edges[to] = nil
	}
	return g
}

// Link adds edges in both directions with the same label and cost.
func (g *Graph) Link(a, b int, label string, cost float64) *Graph {
	return g.Connect(a, b, label, cost).Connect(b, a, label, cost)
}

// Name sets the display name of vertex v.
func (g *Graph) Name(v int, name string) *Graph {
	g.names[v] = name
	return g
}

// Edges returns the outgoing edges of v.
func (g *Graph) Edges(v int) []Edge {
	return g.edges[v]
}

// Len returns the number of vertices with at least one incident edge.
func (g *Graph) Len() int {
	return len(g.edges)
}

// State returns the search state for vertex v.
func (g *Graph) State(v int) State {
	return State{graph: g, vertex: v}
}

// Problem returns the problem of reaching goal from start.
func (g *Graph) Problem(start, goal int) search.Problem[int] {
	return search.Reach[int](g.State(start), g.State(goal))
}

// Table returns a heuristic that looks estimates up by vertex. Vertices
// missing from estimates get 0.
func Table(estimates map[int]float64) search.Heuristic[int] {
	return func(state search.State[int]) float64 {
		return estimates[state.Key()]
	}
}

// Apply replays actions from vertex from and returns the vertex reached.
// Each action must equal the Move of an outgoing edge of the current
// vertex; the first matching edge is taken.
func (g *Graph) Apply(from int, actions []search.Action) (int, error) {
	cur := from
	for i, action := range actions {
		next, ok := g.follow(cur, action)
		if !ok {
			return cur, fmt.Errorf("step %d: no edge %v from vertex %d", i, action, cur)
		}
		cur = next
	}
	return cur, nil
}

func (g *Graph) follow(v int, action search.Action) (int, bool) {
	for _, e := range g.edges[v] {
		if search.Action(e.Move) == action {
			return e.To, true
		}
	}
	return 0, false
}

// State is a vertex of a Graph.
type State struct {
	graph  *Graph
	vertex int
}

// Vertex returns the vertex id.
func (s State) Vertex() int {
	return s.vertex
}

// Key implements search.State.
func (s State) Key() int {
	return s.vertex
}

// Successors implements search.State.
func (s State) Successors() []search.Successor[int] {
	edges := s.graph.edges[s.vertex]
	out := make([]search.Successor[int], len(edges))
	for i, e := range edges {
		out[i] = search.Successor[int]{Action: e.Move, State: s.graph.State(e.To)}
	}
	return out
}

func (s State) String() string {
	if name, ok := s.graph.names[s.vertex]; ok {
		return name
	}
	return strconv.Itoa(s.vertex)
}
