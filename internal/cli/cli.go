package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/mikado/internal/config"
	"github.com/matzehuels/mikado/pkg/buildinfo"
	"github.com/matzehuels/mikado/pkg/cache"
	"github.com/matzehuels/mikado/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "mikado"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself renders an outline.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.renderCommand()
	root.Use = "mikado [file]"
	root.Short = "Mikado turns an indented task outline into a dependency graph"
	root.Long = `Mikado reads a Mikado Method outline, where every line is a task, four
spaces of indentation make a prerequisite, and a leading "x" marks a task
as done, and renders it as a Graphviz dependency graph.

  o Extract billing service
      x Move invoice model
      o Split payment gateway

Goals are drawn with a double border, done tasks and edges in green.`
	root.Version = buildinfo.Version
	root.SilenceUsage = true

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.watchCommand())
	root.AddCommand(c.parseCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// loadConfig resolves config files for the outline at input and applies the
// flags the user set on fs.
func (c *CLI) loadConfig(input string, fs *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(input)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyFlags(cfg, fs); err != nil {
		return nil, err
	}
	for _, f := range cfg.Files {
		c.Logger.Debug("loaded config", "file", f)
	}
	return cfg, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/mikado/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
