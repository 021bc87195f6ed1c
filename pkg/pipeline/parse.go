package pipeline

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"time"

	"github.com/matzehuels/mikado/pkg/errors"
	"github.com/matzehuels/mikado/pkg/graph"
	"github.com/matzehuels/mikado/pkg/outline"
)

// ReadOutline reads an outline file.
// A missing file fails with FILE_NOT_FOUND, any other read failure with
// IO_ERROR, so callers never mistake them for outline errors.
func ReadOutline(path string) (string, error) {
	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "outline %s not found", path)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "read outline %s", path)
	}
	return string(data), nil
}

// Parse parses an outline and assembles its graph without rendering.
// Parser warnings are logged at warn level.
func (r *Runner) Parse(ctx context.Context, text string, opts Options) (*outline.Result, *graph.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	logger := r.logger(opts)

	start := time.Now()
	res, err := outline.Parse(text, opts.parseOptions()...)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range res.Warnings {
		logger.Warn("suspicious outline line", "line", w.Line, "text", w.Text, "reason", w.Message)
	}

	g, err := graph.Assemble(res)
	if err != nil {
		return nil, nil, err
	}
	if g.HasCycle() {
		logger.Warn("outline describes a cycle; the graph will contain a loop")
	}

	logger.Debug("parsed outline",
		"tasks", len(res.Tasks),
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", time.Since(start))

	return res, g, nil
}
