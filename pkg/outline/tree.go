package outline

import "github.com/matzehuels/mikado/pkg/errors"

// Pairs rebuilds the parent/child relations encoded by indentation.
//
// It walks tasks once, keeping the ancestor chain from the current goal down
// to the most recent task; index i of the chain holds the open task at depth
// i. A task at depth d is the child of chain[d-1]. The chain is then cut to d
// entries and the task pushed, so a sibling or shallower task closes every
// deeper branch before it.
//
// Depth-0 tasks start a new chain and produce no pair. A task more than one
// level deeper than the chain allows has no parent and fails with
// MALFORMED_INDENTATION.
//
// Pairs are returned in discovery order and may contain duplicates.
func Pairs(tasks []Task) ([]Pair, error) {
	var (
		pairs     []Pair
		ancestors []Task
	)

	for _, t := range tasks {
		if t.Depth > len(ancestors) {
			return nil, malformedIndentation(t, len(ancestors))
		}
		if t.Depth > 0 {
			pairs = append(pairs, Pair{Parent: ancestors[t.Depth-1], Child: t})
		}
		ancestors = append(ancestors[:t.Depth], t)
	}

	return pairs, nil
}

func malformedIndentation(t Task, chain int) error {
	if chain == 0 {
		return errors.New(errors.ErrCodeMalformedIndentation,
			"line %d: %q is indented %d levels but has no parent task",
			t.Line, t.Text, t.Depth)
	}
	return errors.New(errors.ErrCodeMalformedIndentation,
		"line %d: %q is indented %d levels, at most %d allowed after the previous task",
		t.Line, t.Text, t.Depth, chain)
}
