// Package config loads comparison settings from an explicit TOML
// file.  Configuration is a plain value threaded into calls; there
// are no environment toggles and no global state.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	canon "github.com/lutaml/canon"
	"github.com/lutaml/canon/report"
)

// Config is the on-disk shape of a canon configuration file.
type Config struct {
	// Profile, Preprocess and Dimensions form the global option
	// layer.
	Profile    string            `toml:"profile"`
	Preprocess string            `toml:"preprocess"`
	Dimensions map[string]string `toml:"dimensions"`

	// Profiles defines named dimension tables selectable per call.
	Profiles map[string]map[string]string `toml:"profiles"`

	RespectXMLSpace bool     `toml:"respect_xml_space"`
	Sensitive       []string `toml:"whitespace_sensitive_elements"`
	Insensitive     []string `toml:"whitespace_insensitive_elements"`

	ContextLines  int    `toml:"context_lines"`
	GroupingLines *int   `toml:"grouping_lines"`
	Show          string `toml:"show_diffs"`
}

func Default() *Config {
	return &Config{
		ContextLines: 3,
		Show:         "all",
	}
}

// Load parses a TOML configuration.  Unknown option values are caught
// later, at resolution time, so a config naming a profile defined in
// the same file always loads.
func Load(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads path, returning defaults when it does not exist.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Load(data)
}

// Options returns the global option layer of the file.
func (c *Config) Options() *canon.Options {
	return &canon.Options{
		Profile:    c.Profile,
		Preprocess: c.Preprocess,
		Dimensions: c.Dimensions,
	}
}

// CompareOptions expands the whole file into comparison options.
func (c *Config) CompareOptions() []canon.Option {
	opts := []canon.Option{
		canon.Global(c.Options()),
		canon.WithProfiles(canon.Profiles(c.Profiles)),
		canon.RespectXMLSpace(c.RespectXMLSpace),
		canon.Sensitive(c.Sensitive...),
		canon.Insensitive(c.Insensitive...),
		canon.ContextLines(c.ContextLines),
	}
	if c.GroupingLines != nil {
		opts = append(opts, canon.GroupingLines(*c.GroupingLines))
	}
	return opts
}

// ShowMode parses the show_diffs setting.
func (c *Config) ShowMode() (report.Show, error) {
	if c.Show == "" {
		return report.ShowAll, nil
	}
	return report.ParseShow(c.Show)
}
