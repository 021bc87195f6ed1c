package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mikado/pkg/errors"
)

func TestReadJSON_RoundTripsExport(t *testing.T) {
	g := sampleGraph(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(g, &buf))
	require.NoError(t, Validate(buf.Bytes()))

	got, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Stats(), got.Stats())

	goal, ok := got.Node("Goal")
	require.True(t, ok)
	assert.True(t, goal.Goal)
	assert.False(t, goal.Done)
	assert.Equal(t, []string{"Step"}, got.Children("Goal"))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"not json", `{`, "decode"},
		{"missing edges", `{"nodes": []}`, "edges"},
		{"wrong type", `{"nodes": [{"name": "a", "done": "yes", "goal": false}], "edges": []}`, "/nodes/0/done"},
		{"extra field", `{"nodes": [], "edges": [], "layout": {}}`, "layout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadJSON_GraphErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"duplicate node", `{"nodes": [{"name": "a", "done": false, "goal": true}, {"name": "a", "done": true, "goal": false}], "edges": []}`},
		{"dangling edge", `{"nodes": [{"name": "a", "done": false, "goal": true}], "edges": [{"src": "a", "dst": "b", "done": false}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
		})
	}
}

func TestImportJSON(t *testing.T) {
	dir := t.TempDir()

	_, err := ImportJSON(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	path := filepath.Join(dir, "plan.json")
	require.NoError(t, ExportJSON(sampleGraph(t), path))
	g, err := ImportJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())

	require.NoError(t, os.WriteFile(path, []byte(`{"nodes": 1, "edges": []}`), 0o644))
	_, err = ImportJSON(path)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestSchema(t *testing.T) {
	assert.Contains(t, Schema(), `"required": ["nodes", "edges"]`)
}
