package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mikado/pkg/graph"
)

type document struct {
	Nodes []node `json:"nodes" yaml:"nodes"`
	Edges []edge `json:"edges" yaml:"edges"`
}

type node struct {
	Name string `json:"name" yaml:"name"`
	Done bool   `json:"done" yaml:"done"`
	Goal bool   `json:"goal" yaml:"goal"`
}

type edge struct {
	Src  string `json:"src" yaml:"src"`
	Dst  string `json:"dst" yaml:"dst"`
	Done bool   `json:"done" yaml:"done"`
}

func toDocument(g *graph.Graph) document {
	out := document{
		Nodes: make([]node, 0, g.NodeCount()),
		Edges: make([]edge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, node{Name: n.ID, Done: n.Done, Goal: n.Goal})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edge{Src: e.From, Dst: e.To, Done: e.Done})
	}
	return out
}

// WriteJSON encodes a graph as indented JSON and writes it to w.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes a graph as YAML and writes it to w.
func WriteYAML(g *graph.Graph, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes a graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *graph.Graph, path string) error {
	return export(path, func(w io.Writer) error { return WriteJSON(g, w) })
}

// ExportYAML writes a graph to a YAML file at path.
func ExportYAML(g *graph.Graph, path string) error {
	return export(path, func(w io.Writer) error { return WriteYAML(g, w) })
}

func export(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
