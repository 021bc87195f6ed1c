package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mikado/internal/config"
	"github.com/matzehuels/mikado/pkg/errors"
	"github.com/matzehuels/mikado/pkg/pipeline"
)

// stdoutPath is the output path that writes the artifact to stdout.
const stdoutPath = "-"

// renderOpts holds the command-line flags for rendering.
// Format, colors, rankdir and strict-indent live in the config layer.
type renderOpts struct {
	output  string // output file path, "-" for stdout
	view    bool   // open the result in the system viewer
	noCache bool   // bypass the render cache
}

// renderCommand creates the command that renders one outline.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeOutlineFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	addRenderFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&opts.view, "view", "V", false, "open the rendered file in the system viewer")

	return cmd
}

// addRenderFlags registers the flags shared by render and watch.
func addRenderFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with the format's extension, - for stdout)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	config.AddFlags(cmd.Flags())
}

// runRender parses and renders input, writes the artifact, and optionally
// opens it.
func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()

	cfg, err := c.loadConfig(input, cmd.Flags())
	if err != nil {
		return err
	}
	output, err := outputPath(opts.output, input, cfg.Format)
	if err != nil {
		return err
	}
	if opts.view && output == stdoutPath {
		return errors.New(errors.ErrCodeInvalidInput, "--view needs an output file, not stdout")
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := c.renderTo(ctx, runner, input, output, cfg.PipelineOptions(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	prog.done("rendered", "file", input, "format", cfg.Format, "cached", result.CacheHit)

	if output != stdoutPath {
		printSuccess("Rendered %s", filepath.Base(input))
		printFile(output)
		printStats(result.Stats, result.CacheHit)
	}

	if opts.view {
		c.Logger.Debug("opening viewer", "file", output)
		if err := startViewer(output); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "open %s", output)
		}
	}
	return nil
}

// renderTo runs the pipeline on input and writes the artifact to output.
func (c *CLI) renderTo(ctx context.Context, runner *pipeline.Runner, input, output string, popts pipeline.Options, stdout io.Writer) (*pipeline.Result, error) {
	result, err := runner.ExecuteFile(ctx, input, popts)
	if err != nil {
		return nil, err
	}
	if err := writeOutput(output, result.Artifact, stdout); err != nil {
		return nil, err
	}
	return result, nil
}

// outputPath resolves the -o flag. An empty flag derives the path from the
// input by replacing its extension with the format.
func outputPath(output, input, format string) (string, error) {
	if output != "" {
		if err := errors.ValidateOutputPath(output); err != nil {
			return "", err
		}
		return output, nil
	}

	derived := strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	if filepath.Clean(derived) == filepath.Clean(input) {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"output would overwrite %s; pass -o to choose a file", input)
	}
	return derived, nil
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == stdoutPath {
		if _, err := stdout.Write(data); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write stdout")
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

// describeError formats an error for status output, keeping the code for
// outline mistakes so users can tell them from I/O failures.
func describeError(err error) string {
	if errors.IsOutlineError(err) {
		return fmt.Sprintf("%s: %s", errors.GetCode(err), errors.UserMessage(err))
	}
	return errors.UserMessage(err)
}
