package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/mikado/pkg/cache"
	"github.com/matzehuels/mikado/pkg/errors"
	"github.com/matzehuels/mikado/pkg/graph"
	"github.com/matzehuels/mikado/pkg/io"
	"github.com/matzehuels/mikado/pkg/render/nodelink"
)

// Render encodes g in opts.Format and reports whether the artifact came from
// the cache. Only Graphviz formats are cached.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, opts Options) (data []byte, dot string, cacheHit bool, err error) {
	logger := r.logger(opts)
	dot = nodelink.ToDOT(g, opts.dotOptions())

	switch opts.Format {
	case FormatDOT:
		return []byte(dot), dot, false, nil

	case FormatJSON:
		var buf bytes.Buffer
		if err := io.WriteJSON(g, &buf); err != nil {
			return nil, dot, false, errors.Wrap(errors.ErrCodeInternal, err, "encode JSON")
		}
		return buf.Bytes(), dot, false, nil

	case FormatYAML:
		var buf bytes.Buffer
		if err := io.WriteYAML(g, &buf); err != nil {
			return nil, dot, false, errors.Wrap(errors.ErrCodeInternal, err, "encode YAML")
		}
		return buf.Bytes(), dot, false, nil
	}

	if !IsImage(opts.Format) {
		return nil, dot, false, ValidateFormat(opts.Format)
	}

	key := cache.ArtifactKey(dot, opts.Format)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			logger.Debug("render cache hit", "format", opts.Format)
			return data, dot, true, nil
		} else if err != nil {
			logger.Warn("render cache read failed", "err", err)
		}
	}

	start := time.Now()
	data, err = nodelink.Render(ctx, dot, nodelink.Format(opts.Format))
	if err != nil {
		return nil, dot, false, err
	}
	logger.Debug("rendered graph", "format", opts.Format, "bytes", len(data), "duration", time.Since(start))

	if err := r.Cache.Set(ctx, key, data, cache.ArtifactTTL); err != nil {
		logger.Warn("render cache write failed", "err", err)
	}
	return data, dot, false, nil
}
