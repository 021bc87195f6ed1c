package io

import (
	"bytes"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/matzehuels/mikado/pkg/errors"
	"github.com/matzehuels/mikado/pkg/graph"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "mikado-graph.schema.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
})

// Schema returns the JSON Schema every exported document satisfies.
func Schema() string { return schemaJSON }

// Validate checks a JSON document against [Schema].
// Failures carry INVALID_INPUT and name the first offending location.
func Validate(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "compile graph schema")
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode graph JSON")
	}
	if err := schema.Validate(v); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "graph JSON: %s", schemaMessage(err))
	}
	return nil
}

// schemaMessage reduces a validation error to its first leaf cause.
func schemaMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !stderrors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return fmt.Sprintf("%s: %s", loc, ve.Message)
}

// ReadJSON decodes a graph previously written by [WriteJSON].
// Node names must be unique and edges must join existing nodes.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read graph JSON")
	}
	if err := Validate(data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode graph JSON")
	}
	return fromDocument(doc)
}

// ImportJSON reads a graph from a JSON file at path.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph %s not found", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

func fromDocument(doc document) (*graph.Graph, error) {
	g := graph.New()
	for _, n := range doc.Nodes {
		if err := g.AddNode(graph.Node{ID: n.Name, Done: n.Done, Goal: n.Goal}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "node %q", n.Name)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(graph.Edge{From: e.Src, To: e.Dst, Done: e.Done}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "edge %q -> %q", e.Src, e.Dst)
		}
	}
	return g, nil
}
