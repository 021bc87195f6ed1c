// Package nodelink renders Mikado graphs as Graphviz node-link diagrams.
//
// [ToDOT] produces a strict digraph: parallel edges collapse and cycles are
// drawn as-is. [Render] lays the DOT out with go-graphviz and encodes it as
// SVG, PNG or JPEG.
//
// Output is deterministic: nodes and edges are emitted in sorted order, so
// identical graphs produce byte-identical DOT. Callers rely on this to cache
// rendered images by DOT hash.
package nodelink
