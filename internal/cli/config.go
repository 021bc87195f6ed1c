package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mikado/internal/config"
)

// configCommand creates the config command, which shows the settings a render
// of the given outline would use and where they came from.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [file]",
		Short: "Show the resolved configuration",
		Long: fmt.Sprintf(`Show the configuration after defaults, the user config file, the project
config file (%s next to the outline) and flags are applied.`, config.ProjectFileName),
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeOutlineFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			cfg, err := c.loadConfig(input, cmd.Flags())
			if err != nil {
				return err
			}

			printKeyValue("format", cfg.Format)
			printKeyValue("done_color", cfg.DoneColor)
			printKeyValue("todo_color", cfg.TodoColor)
			printKeyValue("rankdir", strings.ToUpper(cfg.RankDir))
			printKeyValue("strict_indent", fmt.Sprint(cfg.StrictIndent))
			if len(cfg.Files) == 0 {
				printDetail("no config files found")
			}
			for _, f := range cfg.Files {
				printFile(f)
			}
			return nil
		},
	}

	config.AddFlags(cmd.Flags())
	return cmd
}
