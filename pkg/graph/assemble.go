package graph

import (
	"fmt"

	"github.com/matzehuels/mikado/pkg/errors"
	"github.com/matzehuels/mikado/pkg/outline"
)

// Assemble folds a parse result into a Graph.
//
// Nodes sharing a name merge into one graph node. The parser guarantees they
// agree on Done; a name that is a goal anywhere stays a goal. Depth is the
// shallowest depth the name was seen at.
func Assemble(res *outline.Result) (*Graph, error) {
	g := New()
	if res == nil {
		return g, nil
	}

	depth := make(map[string]int, len(res.Tasks))
	for _, t := range res.Tasks {
		name, _ := outline.Extract(t.Text)
		if d, ok := depth[name]; !ok || t.Depth < d {
			depth[name] = t.Depth
		}
	}

	for _, n := range res.Nodes.Sorted() {
		if existing, ok := g.Node(n.Name); ok {
			if existing.Done != n.Done {
				return nil, errors.New(errors.ErrCodeConflictingDuplicate,
					"task %q is both done and not done", n.Name)
			}
			existing.Goal = existing.Goal || n.Goal
			continue
		}
		if err := g.AddNode(Node{ID: n.Name, Done: n.Done, Goal: n.Goal, Depth: depth[n.Name]}); err != nil {
			return nil, fmt.Errorf("node %q: %w", n.Name, err)
		}
	}

	for _, e := range res.Edges.Sorted() {
		if err := g.AddEdge(Edge{From: e.Src, To: e.Dst, Done: e.Done}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "edge %q -> %q", e.Src, e.Dst)
		}
	}

	return g, nil
}
