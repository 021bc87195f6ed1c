package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mikado/pkg/graph"
	"github.com/matzehuels/mikado/pkg/outline"
)

func sampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	res, err := outline.Parse("o Goal\n    x Step\n")
	require.NoError(t, err)
	g, err := graph.Assemble(res)
	require.NoError(t, err)
	return g
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(sampleGraph(t), &buf))

	var doc document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []node{
		{Name: "Goal", Goal: true},
		{Name: "Step", Done: true},
	}, doc.Nodes)
	assert.Equal(t, []edge{{Src: "Goal", Dst: "Step"}}, doc.Edges)
}

func TestWriteJSON_EmptyGraphHasArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(graph.New(), &buf))
	assert.Contains(t, buf.String(), `"nodes": []`)
	assert.Contains(t, buf.String(), `"edges": []`)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(sampleGraph(t), &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "nodes:\n"), out)
	assert.Contains(t, out, "- name: Goal\n")
	assert.Contains(t, out, "goal: true\n")
	assert.Contains(t, out, "- src: Goal\n")
	assert.Contains(t, out, "dst: Step\n")
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	g := sampleGraph(t)

	jsonPath := filepath.Join(dir, "plan.json")
	require.NoError(t, ExportJSON(g, jsonPath))
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Step"`)

	yamlPath := filepath.Join(dir, "plan.yaml")
	require.NoError(t, ExportYAML(g, yamlPath))
	data, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Step")

	assert.Error(t, ExportJSON(g, filepath.Join(dir, "missing", "plan.json")))
}
