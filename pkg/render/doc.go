// Package render turns assembled Mikado graphs into images.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage writes a graph as Graphviz DOT and lays it out
// with an embedded Graphviz build, so no system installation is needed:
//
//	dot := nodelink.ToDOT(g, nodelink.DefaultOptions())
//	svg, err := nodelink.Render(ctx, dot, nodelink.FormatSVG)
//
// Completed tasks and edges between completed tasks are drawn in the done
// color, everything else in the todo color. Goals get a double border.
//
// [nodelink]: github.com/matzehuels/mikado/pkg/render/nodelink
package render
