package cli

import (
	"context"
	"errors"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mikado/pkg/pipeline"
	"github.com/matzehuels/mikado/pkg/watch"
)

// watchOpts holds the command-line flags for the watch command.
type watchOpts struct {
	renderOpts
	tui bool // show the interactive status view instead of log lines
}

// watchCommand creates the watch command, which re-renders an outline every
// time it is saved.
func (c *CLI) watchCommand() *cobra.Command {
	var opts watchOpts

	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-render an outline whenever it changes",
		Long: `Render an outline, then keep watching it and render again after every save.

Each change is parsed from scratch. A broken outline is reported and the
last good output is left in place until the next save fixes it.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeOutlineFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd, args[0], &opts)
		},
	}

	addRenderFlags(cmd, &opts.renderOpts)
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "show an interactive status view")

	return cmd
}

// renderMsg reports the outcome of one render.
type renderMsg struct {
	result *pipeline.Result
	output string
	err    error
	at     time.Time
}

func (c *CLI) runWatch(cmd *cobra.Command, input string, opts *watchOpts) error {
	cfg, err := c.loadConfig(input, cmd.Flags())
	if err != nil {
		return err
	}
	output, err := outputPath(opts.output, input, cfg.Format)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	logger := c.Logger
	if opts.tui {
		// The status view owns the terminal.
		logger = log.New(io.Discard)
	}

	w, err := watch.New(input, watch.Options{Logger: logger})
	if err != nil {
		return err
	}
	defer w.Close()

	popts := cfg.PipelineOptions()
	popts.Logger = logger
	stdout := cmd.OutOrStdout()

	render := func(ctx context.Context) renderMsg {
		result, err := c.renderTo(ctx, runner, input, output, popts, stdout)
		return renderMsg{result: result, output: output, err: err, at: time.Now()}
	}

	if opts.tui {
		return runWatchTUI(cmd.Context(), input, w, render)
	}

	report := func(m renderMsg) {
		if m.err != nil {
			c.Logger.Error("render failed", "file", input, "err", describeError(m.err))
			return
		}
		if m.output != stdoutPath {
			printSuccess("Rendered %s", input)
			printFile(m.output)
			printStats(m.result.Stats, m.result.CacheHit)
		}
	}

	c.Logger.Info("watching for changes", "file", w.Path())
	report(render(cmd.Context()))
	return w.Run(cmd.Context(), func(ctx context.Context) {
		c.Logger.Debug("outline changed", "file", input)
		report(render(ctx))
	})
}

// runWatchTUI drives the watcher from a bubbletea program until the user
// quits or ctx is cancelled.
func runWatchTUI(ctx context.Context, input string, w *watch.Watcher, render func(context.Context) renderMsg) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newWatchModel(input), tea.WithContext(ctx))

	go func() {
		p.Send(render(ctx))
		_ = w.Run(ctx, func(ctx context.Context) {
			p.Send(changedMsg{})
			p.Send(render(ctx))
		})
	}()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return context.Cause(ctx)
	}
	return err
}
