package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mikado/pkg/errors"
	mikadoio "github.com/matzehuels/mikado/pkg/io"
	"github.com/matzehuels/mikado/pkg/pipeline"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output string // output file path; stdout when empty
	format string // json or yaml
}

// parseCommand creates the parse command, which prints the task and edge sets
// of an outline without rendering them.
func (c *CLI) parseCommand() *cobra.Command {
	opts := parseOpts{format: pipeline.FormatJSON}

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the task and edge sets of an outline",
		Long: `Parse an outline and print its tasks and edges as JSON or YAML.

Duplicate task names collapse into one task, so the output is the graph that
render would draw.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeOutlineFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json, yaml")
	cmd.Flags().Bool("strict-indent", false, "fail on indentation that is not a multiple of 4 spaces")

	return cmd
}

func (c *CLI) runParse(cmd *cobra.Command, input string, opts *parseOpts) error {
	if opts.format != pipeline.FormatJSON && opts.format != pipeline.FormatYAML {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be json or yaml)", opts.format)
	}

	cfg, err := c.loadConfig(input, cmd.Flags())
	if err != nil {
		return err
	}

	text, err := pipeline.ReadOutline(input)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, c.Logger)
	_, g, err := runner.Parse(cmd.Context(), text, cfg.PipelineOptions())
	if err != nil {
		return err
	}

	out, err := openOutput(opts.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer out.Close()

	if opts.format == pipeline.FormatYAML {
		return mikadoio.WriteYAML(g, out)
	}
	return mikadoio.WriteJSON(g, out)
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty or "-", it returns stdout wrapped in nopCloser.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == stdoutPath {
		return nopCloser{stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	return f, nil
}
