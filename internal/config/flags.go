package config

import "github.com/spf13/pflag"

// Flag names shared by the commands that render.
const (
	FlagFormat       = "format"
	FlagDoneColor    = "done-color"
	FlagTodoColor    = "todo-color"
	FlagRankDir      = "rankdir"
	FlagStrictIndent = "strict-indent"
)

// AddFlags registers the config flags on fs. Defaults are shown for help
// output only; [ApplyFlags] copies a value only when the user set it.
func AddFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.StringP(FlagFormat, "f", d.Format, "output format: dot, svg, png, jpg, json, yaml")
	fs.String(FlagDoneColor, d.DoneColor, "color of done tasks and edges")
	fs.String(FlagTodoColor, d.TodoColor, "color of open tasks and edges")
	fs.String(FlagRankDir, d.RankDir, "graph direction: TB, BT, LR, RL")
	fs.Bool(FlagStrictIndent, d.StrictIndent, "fail on indentation that is not a multiple of 4 spaces")
}

// ApplyFlags overrides cfg with every flag explicitly set on fs, then
// validates the result.
func ApplyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	str := func(name string, dst *string) {
		if err == nil && fs.Changed(name) {
			*dst, err = fs.GetString(name)
		}
	}
	str(FlagFormat, &cfg.Format)
	str(FlagDoneColor, &cfg.DoneColor)
	str(FlagTodoColor, &cfg.TodoColor)
	str(FlagRankDir, &cfg.RankDir)
	if err == nil && fs.Changed(FlagStrictIndent) {
		cfg.StrictIndent, err = fs.GetBool(FlagStrictIndent)
	}
	if err != nil {
		return err
	}
	return cfg.Validate()
}
