package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lutaml/canon/libdiff"
	"github.com/lutaml/canon/report"
)

type renderer struct {
	out   io.Writer
	color bool
}

func (r *renderer) paint(t report.LineType) func(format string, a ...interface{}) string {
	if !r.color {
		return fmt.Sprintf
	}
	switch t {
	case report.Added:
		return color.New(color.FgGreen).Sprintf
	case report.Removed:
		return color.New(color.FgRed).Sprintf
	case report.Changed:
		return color.New(color.FgYellow).Sprintf
	default:
		return fmt.Sprintf
	}
}

func (r *renderer) printReport(rep *report.DiffReport) {
	if !rep.HasDifferences() {
		return
	}
	if rep.Element != "" {
		fmt.Fprintf(r.out, "element: %s\n", rep.Element)
	}
	if rep.File1 != "" {
		fmt.Fprintf(r.out, "--- %s\n+++ %s\n", rep.File1, rep.File2)
	}
	for _, c := range rep.Contexts {
		fmt.Fprintf(r.out, "@@ lines %d-%d @@\n", c.Start+1, c.End+1)
		for _, l := range rep.ContextLines(c) {
			p := r.paint(l.Type)
			if l.Type == report.Changed {
				fmt.Fprintln(r.out, p("-%s", l.Before))
				fmt.Fprintln(r.out, p("+%s", l.Content))
				continue
			}
			fmt.Fprintln(r.out, p("%s%s", l.Type.Marker(), l.Content))
		}
	}
}

func (r *renderer) printDiffs(diffs []*libdiff.DiffNode) {
	for _, d := range diffs {
		kind := "informative"
		if d.Normative {
			kind = "normative"
		} else if d.Formatting {
			kind = "formatting"
		}
		fmt.Fprintf(r.out, "%-11s %-22s %s\n", kind, d.Dimension, d.Reason)
	}
}
