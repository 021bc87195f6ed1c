// Package config loads mikado settings from layered TOML files.
//
// Values are resolved in priority order:
//  1. Defaults
//  2. User config file ($XDG_CONFIG_HOME/mikado/config.toml)
//  3. Project config file (.mikado.toml next to the outline)
//  4. CLI flags
//
// A later layer only overrides the keys it sets.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mikado/pkg/errors"
	"github.com/matzehuels/mikado/pkg/pipeline"
	"github.com/matzehuels/mikado/pkg/render/nodelink"
)

const (
	appName         = "mikado"
	userConfigName  = "config.toml"
	ProjectFileName = ".mikado.toml"
)

// Config holds render settings shared by every command.
type Config struct {
	Format       string `toml:"format"`
	DoneColor    string `toml:"done_color"`
	TodoColor    string `toml:"todo_color"`
	RankDir      string `toml:"rankdir"`
	StrictIndent bool   `toml:"strict_indent"`

	// Files lists the config files that were applied, lowest priority first.
	Files []string `toml:"-"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Format:    pipeline.DefaultFormat,
		DoneColor: nodelink.DefaultDoneColor,
		TodoColor: nodelink.DefaultTodoColor,
		RankDir:   nodelink.DefaultRankDir,
	}
}

// Load resolves defaults, the user file and the project file for the outline
// at outlinePath. Flags are applied separately with [ApplyFlags].
func Load(outlinePath string) (*Config, error) {
	cfg := Defaults()

	if path := UserConfigFile(); path != "" {
		if err := LoadFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if path := ProjectConfigFile(outlinePath); path != "" {
		if err := LoadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes path over cfg. Keys absent from the file keep their
// current value; unknown keys are an error.
func LoadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Files = append(cfg.Files, path)
	return nil
}

// UserConfigFile returns the user config path if the file exists.
func UserConfigFile() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return existing(filepath.Join(dir, appName, userConfigName))
}

// ProjectConfigFile returns the project config next to outlinePath if it
// exists.
func ProjectConfigFile(outlinePath string) string {
	if outlinePath == "" {
		return ""
	}
	return existing(filepath.Join(filepath.Dir(outlinePath), ProjectFileName))
}

// Validate checks every value a config file or flag may have set.
func (c *Config) Validate() error {
	if err := pipeline.ValidateFormat(c.Format); err != nil {
		return err
	}
	if err := errors.ValidateColor(c.DoneColor); err != nil {
		return err
	}
	if err := errors.ValidateColor(c.TodoColor); err != nil {
		return err
	}
	return errors.ValidateRankDir(c.RankDir)
}

// PipelineOptions converts the config into render options.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Format:       c.Format,
		DoneColor:    c.DoneColor,
		TodoColor:    c.TodoColor,
		RankDir:      strings.ToUpper(c.RankDir),
		StrictIndent: c.StrictIndent,
	}
}

func existing(path string) string {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path
	}
	return ""
}
