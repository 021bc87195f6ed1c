// Package pkg holds the libraries behind the mikado command.
//
// # Overview
//
// Mikado turns a Mikado Method outline into a dependency graph. The data flows
// through these packages:
//
//	outline text
//	     ↓
//	[outline] (tokenize, rebuild the tree, collect node and edge sets)
//	     ↓
//	[graph] (fold duplicate names into one task graph)
//	     ↓
//	[render/nodelink] (DOT, then SVG/PNG/JPG via Graphviz)   [io] (JSON/YAML)
//
// [pipeline] wires the stages together behind a render cache ([cache]), and
// [watch] re-runs it when an outline is saved. [errors] carries the codes
// that let callers tell a broken outline from a failed read or render.
//
// # Quick Start
//
//	res, err := outline.Parse(text)
//	if err != nil {
//	    return err
//	}
//	g, err := graph.Assemble(res)
//	if err != nil {
//	    return err
//	}
//	svg, err := nodelink.Render(ctx, nodelink.ToDOT(g, nodelink.DefaultOptions()), nodelink.FormatSVG)
//
// The runner does the same with caching and logging:
//
//	r := pipeline.NewRunner(nil, logger)
//	result, err := r.ExecuteFile(ctx, "plan.mikado", pipeline.Options{Format: "svg"})
package pkg
