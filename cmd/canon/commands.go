package main

import (
	"strings"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "F",
		Aliases:     []string{"format"},
		Description: "input format: xml/x, html/h, json/j, yaml/y",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "canon").
		WithSynopsis("canon [opts] command [opts]").
		WithDescription("canon compares structured documents semantically.").
		WithOpts(opts...).
		WithSubs(
			CompareCommand(cfg),
			DumpCommand(cfg))
}

func CompareCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompareConfig{MainConfig: mainCfg, Dimensions: map[string]string{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "d",
		Description: "override one dimension, as name=behavior",
		Type:        cli.NamedFuncOpt(dimOptFunc(cfg.Dimensions), "(dim=behavior)"),
	})

	return cli.NewCommandAt(&cfg.Compare, "compare").
		WithAliases("c", "cmp", "diff").
		WithSynopsis("compare [opts] <file1> <file2>").
		WithDescription("Compare two documents and report the semantic differences.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compare(cfg, cc, args)
		})
}

func dimOptFunc(dims map[string]string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, a string) (any, error) {
		name, bh, ok := strings.Cut(a, "=")
		if !ok {
			return nil, cli.ErrUsage
		}
		dims[name] = bh
		return a, nil
	})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg, Indent: "  "}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("du").
		WithSynopsis("dump [opts] [files]").
		WithDescription("Parse documents and print their canonical form.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}
