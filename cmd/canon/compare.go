package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	canon "github.com/lutaml/canon"
	"github.com/lutaml/canon/config"
	"github.com/lutaml/canon/parse"
	"github.com/lutaml/canon/report"
)

func compare(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		cfg.Compare.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: compare requires 2 files, got %d", cli.ErrUsage, len(args))
	}

	fileCfg, err := cfg.loadConfig()
	if err != nil {
		return err
	}
	f, err := cfg.formatFor(args[0])
	if err != nil {
		return err
	}
	d1, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	d2, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	t1, err := parse.Parse(d1, f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}
	t2, err := parse.Parse(d2, f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[1], err)
	}

	opts := cfg.options(fileCfg, args[0], args[1])
	show, err := showMode(cfg, fileCfg)
	if err != nil {
		return err
	}
	opts = append(opts, canon.Show(show))

	r, err := canon.Compare(t1, t2, f, opts...)
	if err != nil {
		return err
	}

	diffs := r.Diffs
	if cfg.Filter != "" {
		flt, err := report.CompileFilter(cfg.Filter)
		if err != nil {
			return err
		}
		diffs, err = flt.Apply(diffs)
		if err != nil {
			return err
		}
	}

	if !cfg.Quiet {
		rr := &renderer{out: cc.Out, color: cfg.useColor(os.Stdout)}
		if cfg.Filter != "" {
			rr.printDiffs(diffs)
		} else {
			rr.printReport(r.Report)
		}
		if cfg.Summary {
			s := r.Report.Summary()
			fmt.Fprintf(cc.Out, "%d contexts, %d blocks, %d changed lines\n",
				s.Contexts, s.Blocks, s.Changes)
		}
	}
	if !r.Equivalent {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func showMode(cfg *CompareConfig, fileCfg *config.Config) (report.Show, error) {
	if cfg.ShowMode != "" {
		return report.ParseShow(cfg.ShowMode)
	}
	return fileCfg.ShowMode()
}
