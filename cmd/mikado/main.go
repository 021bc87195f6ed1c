// Command mikado renders Mikado Method outlines as dependency graphs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mikado/internal/cli"
	mikadoerrors "github.com/matzehuels/mikado/pkg/errors"
)

// Exit codes.
const (
	exitFailure     = 1
	exitBadOutline  = 2
	exitInterrupted = 130 // Standard shell convention for SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The level is only known once flags are parsed.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return nil
	}

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		if mikadoerrors.IsOutlineError(err) {
			fmt.Fprintf(os.Stderr, "mikado: %s: %s\n", mikadoerrors.GetCode(err), mikadoerrors.UserMessage(err))
		} else {
			fmt.Fprintln(os.Stderr, "mikado:", err)
		}
	}
	return err
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case mikadoerrors.IsOutlineError(err):
		return exitBadOutline
	default:
		return exitFailure
	}
}
