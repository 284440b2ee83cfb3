package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/lutaml/canon/encode"
	"github.com/lutaml/canon/parse"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		if cfg.InFormat == nil {
			return fmt.Errorf("%w: dump from stdin requires -F", cli.ErrUsage)
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		return dumpOne(cfg, cc, data, "")
	}
	for _, arg := range args {
		data, err := os.ReadFile(arg)
		if err != nil {
			return err
		}
		if err := dumpOne(cfg, cc, data, arg); err != nil {
			return err
		}
	}
	return nil
}

func dumpOne(cfg *DumpConfig, cc *cli.Context, data []byte, path string) error {
	f, err := cfg.formatFor(path)
	if err != nil {
		return err
	}
	t, err := parse.Parse(data, f)
	if err != nil {
		if path != "" {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		return err
	}
	return encode.Encode(t, cc.Out,
		encode.As(f),
		encode.Indent(cfg.Indent),
		encode.Colors(cfg.useColor(os.Stdout)))
}
