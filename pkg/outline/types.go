package outline

import (
	"cmp"
	"maps"
	"slices"
)

// IndentWidth is the number of leading spaces per depth level.
const IndentWidth = 4

// DoneMarker is the status marker prefix of a completed task.
const DoneMarker = 'x'

// Task is one outline line with its indentation resolved.
type Task struct {
	Text  string // Line with leading whitespace removed
	Depth int    // Leading spaces / IndentWidth
	Line  int    // 1-based source line number
}

// Pair is a raw parent/child relation between two task texts.
type Pair struct {
	Parent Task
	Child  Task
}

// Node is a task in the Mikado graph.
type Node struct {
	Name string
	Done bool
	Goal bool // Task appears at depth 0
}

// Edge points from a task to one of its prerequisites.
type Edge struct {
	Src  string
	Dst  string
	Done bool // Both endpoints are done
}

// Warning flags a line that parsed but is probably not what the author meant.
type Warning struct {
	Line    int
	Text    string
	Message string
}

// Result is the output of [Parse].
type Result struct {
	Tasks    []Task
	Nodes    NodeSet
	Edges    EdgeSet
	Warnings []Warning
}

// NodeSet is a set of nodes keyed by their full value.
type NodeSet map[Node]struct{}

// Add inserts n and reports whether it was not already present.
func (s NodeSet) Add(n Node) bool {
	if _, ok := s[n]; ok {
		return false
	}
	s[n] = struct{}{}
	return true
}

// Contains reports whether n is in the set.
func (s NodeSet) Contains(n Node) bool {
	_, ok := s[n]
	return ok
}

// Len returns the number of nodes.
func (s NodeSet) Len() int { return len(s) }

// Equal reports whether both sets hold exactly the same nodes.
func (s NodeSet) Equal(o NodeSet) bool {
	return maps.Equal(s, o)
}

// Sorted returns the nodes ordered by name, then goal before non-goal, then
// done before not done. The order is only for stable output.
func (s NodeSet) Sorted() []Node {
	return slices.SortedFunc(maps.Keys(s), compareNodes)
}

// EdgeSet is a set of edges keyed by their full value.
type EdgeSet map[Edge]struct{}

// Add inserts e and reports whether it was not already present.
func (s EdgeSet) Add(e Edge) bool {
	if _, ok := s[e]; ok {
		return false
	}
	s[e] = struct{}{}
	return true
}

// Contains reports whether e is in the set.
func (s EdgeSet) Contains(e Edge) bool {
	_, ok := s[e]
	return ok
}

// Len returns the number of edges.
func (s EdgeSet) Len() int { return len(s) }

// Equal reports whether both sets hold exactly the same edges.
func (s EdgeSet) Equal(o EdgeSet) bool {
	return maps.Equal(s, o)
}

// Sorted returns the edges ordered by source, destination and done flag.
func (s EdgeSet) Sorted() []Edge {
	return slices.SortedFunc(maps.Keys(s), compareEdges)
}

func compareNodes(a, b Node) int {
	return cmp.Or(
		cmp.Compare(a.Name, b.Name),
		compareBool(b.Goal, a.Goal),
		compareBool(b.Done, a.Done),
	)
}

func compareEdges(a, b Edge) int {
	return cmp.Or(
		cmp.Compare(a.Src, b.Src),
		cmp.Compare(a.Dst, b.Dst),
		compareBool(b.Done, a.Done),
	)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
