package outline

import (
	"fmt"

	"github.com/matzehuels/mikado/pkg/errors"
)

// Parse converts an outline into its node and edge sets.
//
// Each task becomes a [Node]; a task at depth 0 is a goal. Each parent/child
// relation from [Pairs] becomes an [Edge] from the parent's name to the
// child's, done when both tasks are done. Repeated nodes and edges collapse.
//
// Empty or blank input yields empty sets. Parse fails when indentation skips a
// level (see [Pairs]) or when two lines share a name but disagree on whether
// the task is done.
func Parse(text string, opts ...Option) (*Result, error) {
	tasks, err := Tokenize(text, opts...)
	if err != nil {
		return nil, err
	}
	pairs, err := Pairs(tasks)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Tasks: tasks,
		Nodes: make(NodeSet, len(tasks)),
		Edges: make(EdgeSet, len(pairs)),
	}

	first := make(map[string]Task, len(tasks))
	for _, t := range tasks {
		name, done := Extract(t.Text)
		if prev, ok := first[name]; ok {
			if _, prevDone := Extract(prev.Text); prevDone != done {
				return nil, conflictingDuplicate(name, prev, t)
			}
		} else {
			first[name] = t
		}
		res.Nodes.Add(Node{Name: name, Done: done, Goal: t.Depth == 0})
		res.Warnings = append(res.Warnings, lint(t, name)...)
	}

	for _, p := range pairs {
		src, srcDone := Extract(p.Parent.Text)
		dst, dstDone := Extract(p.Child.Text)
		res.Edges.Add(Edge{Src: src, Dst: dst, Done: srcDone && dstDone})
	}

	return res, nil
}

func conflictingDuplicate(name string, prev, t Task) error {
	return errors.New(errors.ErrCodeConflictingDuplicate,
		"line %d: %q is %s but line %d marks it %s",
		t.Line, name, status(t), prev.Line, status(prev))
}

func status(t Task) string {
	if _, done := Extract(t.Text); done {
		return "done"
	}
	return "not done"
}

func lint(t Task, name string) []Warning {
	var ws []Warning
	if m := marker(t.Text); len(m) > 1 {
		ws = append(ws, Warning{
			Line:    t.Line,
			Text:    t.Text,
			Message: fmt.Sprintf("first word %q is read as the status marker", m),
		})
	}
	if name == "" {
		ws = append(ws, Warning{
			Line:    t.Line,
			Text:    t.Text,
			Message: "task has no name after its status marker",
		})
	}
	return ws
}
