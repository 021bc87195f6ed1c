package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mikado/pkg/cache"
	"github.com/matzehuels/mikado/pkg/io"
)

// Runner executes the pipeline with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results, so every run on unchanged input yields an equal
// result. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, log.Default() is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Close releases the cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// ExecuteFile reads the file at path and runs the full pipeline on it.
// A ".json" file is read as a previously exported graph instead of an
// outline.
func (r *Runner) ExecuteFile(ctx context.Context, path string, opts Options) (*Result, error) {
	if IsGraphFile(path) {
		if err := opts.ValidateAndSetDefaults(); err != nil {
			return nil, fmt.Errorf("invalid options: %w", err)
		}
		g, err := io.ImportJSON(path)
		if err != nil {
			return nil, fmt.Errorf("import: %w", err)
		}
		return r.execute(ctx, &Result{Graph: g, Format: opts.Format}, opts)
	}

	text, err := ReadOutline(path)
	if err != nil {
		return nil, err
	}
	return r.Execute(ctx, text, opts)
}

// Execute runs parse → assemble → render on outline text.
func (r *Runner) Execute(ctx context.Context, text string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	parseStart := time.Now()
	res, g, err := r.Parse(ctx, text, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result := &Result{
		Outline: res,
		Graph:   g,
		Format:  opts.Format,
	}
	result.Stats.ParseTime = time.Since(parseStart)
	return r.execute(ctx, result, opts)
}

// execute renders result.Graph and fills in the rest of result.
func (r *Runner) execute(ctx context.Context, result *Result, opts Options) (*Result, error) {
	g := result.Graph
	result.Stats.Stats = g.Stats()
	result.Stats.Cyclic = g.HasCycle()

	renderStart := time.Now()
	data, dot, hit, err := r.Render(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifact = data
	result.DOT = dot
	result.CacheHit = hit
	result.Stats.RenderTime = time.Since(renderStart)

	r.logger(opts).Info("rendered mikado graph",
		"tasks", result.Stats.Tasks,
		"done", result.Stats.Done,
		"edges", result.Stats.Edges,
		"format", opts.Format,
		"cached", hit)

	return result, nil
}

// IsGraphFile reports whether path names an exported JSON graph rather than
// an outline.
func IsGraphFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
