// Package graph assembles parsed Mikado outlines into a directed task graph.
//
// # Overview
//
// A Mikado graph has one node per task name and one edge from every task to
// each of its prerequisites. [Assemble] builds it from an [outline.Result]:
//
//	res, _ := outline.Parse(text)
//	g, _ := graph.Assemble(res)
//	for _, n := range g.Goals() {
//	    fmt.Println(n.ID, n.Done)
//	}
//
// # Shape
//
// An outline is a tree, but because tasks are identified by name the graph
// generally is not: a prerequisite listed under two tasks has two parents, and
// a task listed beneath its own prerequisite closes a cycle. [Graph] accepts
// both. Renderers must cope with cycles; [Graph.HasCycle] lets callers warn
// about them.
//
// # Queries
//
// [Graph.Goals] returns the depth-0 tasks and [Graph.Leaves] the tasks with no
// prerequisites. [Graph.Ready] lists the open tasks that can be started now.
// [Graph.Stats] summarizes progress.
//
// # Ordering
//
// [Graph.Nodes] and [Graph.Edges] return sorted slices so renderers and
// serializers produce identical output for identical input.
//
// [outline.Result]: github.com/matzehuels/mikado/pkg/outline.Result
package graph
