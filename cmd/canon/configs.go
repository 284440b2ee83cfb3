package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	canon "github.com/lutaml/canon"
	"github.com/lutaml/canon/config"
	"github.com/lutaml/canon/format"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='force color output'"`
	ConfigPath string `cli:"name=config desc='path to a canon.toml'"`

	InFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, err
		}
		*fp = &f
		return f, nil
	})
}

// loadConfig reads the -config file, or defaults when unset.
func (cfg *MainConfig) loadConfig() (*config.Config, error) {
	if cfg.ConfigPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfg.ConfigPath)
}

// formatFor picks -F when given, else guesses from the file suffix.
func (cfg *MainConfig) formatFor(path string) (format.Format, error) {
	if cfg.InFormat != nil {
		return *cfg.InFormat, nil
	}
	return format.FromSuffix(path)
}

func (cfg *MainConfig) useColor(f *os.File) bool {
	if cfg.Color {
		return true
	}
	return isatty.IsTerminal(f.Fd())
}

type CompareConfig struct {
	*MainConfig

	Profile    string `cli:"name=profile desc='option profile to apply'"`
	Preprocess string `cli:"name=preprocess desc='preprocessing: none, strip, normalize'"`
	Context    int    `cli:"name=context desc='unchanged lines around each block'"`
	Group      int    `cli:"name=group desc='merge blocks this many lines apart'"`
	ShowMode   string `cli:"name=show desc='blocks to show: all, normative, informative'"`
	Filter     string `cli:"name=filter desc='expression selecting differences'"`
	Quiet      bool   `cli:"name=q desc='no output, exit status only'"`
	Summary    bool   `cli:"name=s desc='print a summary line'"`

	Dimensions map[string]string

	Compare *cli.Command
}

func (cfg *CompareConfig) options(fileCfg *config.Config, f1, f2 string) []canon.Option {
	opts := fileCfg.CompareOptions()
	call := &canon.Options{
		Profile:    cfg.Profile,
		Preprocess: cfg.Preprocess,
		Dimensions: cfg.Dimensions,
	}
	opts = append(opts, canon.Call(call), canon.FileNames(f1, f2))
	if cfg.Context != 0 {
		opts = append(opts, canon.ContextLines(cfg.Context))
	}
	if cfg.Group != 0 {
		opts = append(opts, canon.GroupingLines(cfg.Group))
	}
	return opts
}

type DumpConfig struct {
	*MainConfig

	Indent string `cli:"name=indent desc='indentation unit'"`

	Dump *cli.Command
}
