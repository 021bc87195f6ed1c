package graph

import (
	"cmp"
	"errors"
	"maps"
	"slices"
)

var (
	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Node is a task in the Mikado graph.
//
// The ID is the task name and doubles as the display label. It may be empty
// when an outline line carried only a status marker.
type Node struct {
	ID    string
	Done  bool // Task is completed
	Goal  bool // Task is a refactoring goal (depth 0 somewhere in the outline)
	Depth int  // Shallowest outline depth the task appeared at
}

// Edge points from a task to one of its prerequisites.
type Edge struct {
	From string
	To   string
	Done bool // Both endpoints are completed
}

// Graph is a directed graph of tasks and prerequisites.
//
// Because tasks are identified by name, one task can have several parents and
// an outline can even describe a cycle. Graph accepts both; use
// [Graph.HasCycle] to detect the latter.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes    map[string]*Node
	edges    []Edge
	edgeIdx  map[[2]string]int   // (from, to) -> index into edges
	outgoing map[string][]string // nodeID -> prerequisite IDs
	incoming map[string][]string // nodeID -> dependent IDs
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		edgeIdx:  make(map[[2]string]int),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a node to the graph.
// Returns ErrDuplicateNodeID if a node with the same ID already exists.
func (g *Graph) AddNode(n Node) error {
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	node := n
	g.nodes[n.ID] = &node
	return nil
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint is
// missing. Adding an edge that already exists is a no-op, except that a
// Done flag of true is kept.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	key := [2]string{e.From, e.To}
	if i, ok := g.edgeIdx[key]; ok {
		g.edges[i].Done = g.edges[i].Done || e.Done
		return nil
	}
	g.edgeIdx[key] = len(g.edges)
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// Node returns the node with the given ID and true, or nil and false if not found.
// The returned node pointer refers to the actual node in the graph.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes sorted by ID.
// The returned slice contains pointers to the actual node structs.
func (g *Graph) Nodes() []*Node {
	nodes := slices.Collect(maps.Values(g.nodes))
	slices.SortFunc(nodes, func(a, b *Node) int { return cmp.Compare(a.ID, b.ID) })
	return nodes
}

// Edges returns a copy of all edges sorted by source then target.
func (g *Graph) Edges() []Edge {
	edges := slices.Clone(g.edges)
	slices.SortFunc(edges, func(a, b Edge) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})
	return edges
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Children returns the IDs of the node's prerequisites in insertion order.
// The returned slice should not be modified.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the IDs of the tasks that depend on the node.
// The returned slice should not be modified.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// Goals returns the goal nodes sorted by ID.
func (g *Graph) Goals() []*Node {
	var goals []*Node
	for _, n := range g.Nodes() {
		if n.Goal {
			goals = append(goals, n)
		}
	}
	return goals
}

// Leaves returns the nodes without prerequisites, sorted by ID. Open leaves
// are the tasks that can be worked on next.
func (g *Graph) Leaves() []*Node {
	var leaves []*Node
	for _, n := range g.Nodes() {
		if len(g.outgoing[n.ID]) == 0 {
			leaves = append(leaves, n)
		}
	}
	return leaves
}

// Ready returns the open tasks whose prerequisites are all done, sorted by ID.
func (g *Graph) Ready() []*Node {
	var ready []*Node
	for _, n := range g.Nodes() {
		if n.Done {
			continue
		}
		if !slices.ContainsFunc(g.outgoing[n.ID], func(id string) bool { return !g.nodes[id].Done }) {
			ready = append(ready, n)
		}
	}
	return ready
}

// HasCycle reports whether the graph contains a directed cycle.
// Cycle detection runs in O(N+E) time using depth-first search.
func (g *Graph) HasCycle() bool {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))
	var dfs func(id string) bool
	dfs = func(id string) bool {
		color[id] = gray
		for _, child := range g.outgoing[id] {
			switch color[child] {
			case white:
				if dfs(child) {
					return true
				}
			case gray:
				return true
			}
		}
		color[id] = black
		return false
	}

	for _, id := range slices.Sorted(maps.Keys(g.nodes)) {
		if color[id] == white && dfs(id) {
			return true
		}
	}
	return false
}

// Stats summarizes task completion.
type Stats struct {
	Tasks int
	Done  int
	Goals int
	Edges int
}

// Stats counts tasks, completed tasks, goals and edges.
func (g *Graph) Stats() Stats {
	s := Stats{Tasks: len(g.nodes), Edges: len(g.edges)}
	for _, n := range g.nodes {
		if n.Done {
			s.Done++
		}
		if n.Goal {
			s.Goals++
		}
	}
	return s
}
