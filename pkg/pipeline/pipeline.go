// Package pipeline runs the outline → graph → image pipeline for mikado.
//
// The CLI's render, parse and watch commands all go through a [Runner] so a
// single code path decides how outlines are read, parsed, assembled and
// rendered.
//
// # Stages
//
//  1. Parse: tokenize the outline and collect its node and edge sets
//  2. Assemble: fold the sets into a task graph
//  3. Render: encode the graph as DOT, SVG, PNG, JPEG, JSON or YAML
//
// Image rendering is the only expensive stage; its output is cached by DOT
// hash and format.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{Format: pipeline.FormatSVG}
//	result, err := runner.ExecuteFile(ctx, "plan.mikado", opts)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("plan.svg", result.Artifact, 0644)
package pipeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mikado/pkg/errors"
	"github.com/matzehuels/mikado/pkg/graph"
	"github.com/matzehuels/mikado/pkg/outline"
	"github.com/matzehuels/mikado/pkg/render/nodelink"
)

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJPG  = "jpg"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultFormat is the output format when none is configured.
const DefaultFormat = FormatSVG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJPG:  true,
	FormatJSON: true,
	FormatYAML: true,
}

// IsImage reports whether format is produced by Graphviz.
func IsImage(format string) bool {
	switch format {
	case FormatSVG, FormatPNG, FormatJPG:
		return true
	}
	return false
}

// Options configures a pipeline run.
type Options struct {
	// Parse options
	StrictIndent bool `json:"strict_indent,omitempty"`

	// Render options
	Format    string `json:"format,omitempty"`
	DoneColor string `json:"done_color,omitempty"`
	TodoColor string `json:"todo_color,omitempty"`
	RankDir   string `json:"rankdir,omitempty"`

	// Refresh skips cache reads; fresh renders are still stored.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// SetDefaults fills empty render options.
func (o *Options) SetDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.DoneColor == "" {
		o.DoneColor = nodelink.DefaultDoneColor
	}
	if o.TodoColor == "" {
		o.TodoColor = nodelink.DefaultTodoColor
	}
	if o.RankDir == "" {
		o.RankDir = nodelink.DefaultRankDir
	}
}

// Validate checks the options after defaults are applied.
func (o *Options) Validate() error {
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := errors.ValidateColor(o.DoneColor); err != nil {
		return err
	}
	if err := errors.ValidateColor(o.TodoColor); err != nil {
		return err
	}
	return errors.ValidateRankDir(o.RankDir)
}

// ValidateAndSetDefaults applies defaults and validates the result.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

func (o Options) parseOptions() []outline.Option {
	if o.StrictIndent {
		return []outline.Option{outline.WithStrictIndent()}
	}
	return nil
}

func (o Options) dotOptions() nodelink.Options {
	return nodelink.Options{
		DoneColor: o.DoneColor,
		TodoColor: o.TodoColor,
		RankDir:   o.RankDir,
	}
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Outline is the parser output, including warnings.
	Outline *outline.Result

	// Graph is the assembled task graph.
	Graph *graph.Graph

	// DOT is the Graphviz source the image was rendered from.
	DOT string

	// Format and Artifact are the rendered output.
	Format   string
	Artifact []byte

	// CacheHit reports whether Artifact came from the cache.
	CacheHit bool

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	graph.Stats
	Cyclic     bool
	ParseTime  time.Duration
	RenderTime time.Duration
}

// String formats the stats for log lines.
func (s Stats) String() string {
	return fmt.Sprintf("%d tasks (%d done), %d edges", s.Tasks, s.Done, s.Edges)
}
