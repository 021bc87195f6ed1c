package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mikado/pkg/cache"
	"github.com/matzehuels/mikado/pkg/errors"
)

func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the render cache",
		Long: `Rendered images are cached by the hash of their DOT source and format, so
re-rendering an unchanged outline skips Graphviz. The cache lives in
$XDG_CACHE_HOME/mikado (or ~/.cache/mikado).`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all cached renders",
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, _ []string) error { return c.clearCache() },
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				dir, err := resolveCacheDir()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), dir)
				return err
			},
		},
	)
	return cmd
}

func (c *CLI) clearCache() error {
	dir, err := resolveCacheDir()
	if err != nil {
		return err
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		printInfo("Cache is empty")
		return nil
	}

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "open cache %s", dir)
	}
	defer fc.Close()

	n, err := fc.Clear()
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "clear cache %s", dir)
	}
	c.Logger.Debug("cache cleared", "dir", dir, "entries", n)
	printSuccess("Cleared %d cached renders", n)
	printDetail("Directory: %s", dir)
	return nil
}

// resolveCacheDir is cacheDir with the error given an IO_ERROR code.
func resolveCacheDir() (string, error) {
	dir, err := cacheDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "locate cache directory")
	}
	return dir, nil
}
