package report

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/lutaml/canon/libdiff"
)

type filterEnv struct {
	Dimension   string `expr:"dimension"`
	Reason      string `expr:"reason"`
	Normative   bool   `expr:"normative"`
	Informative bool   `expr:"informative"`
	Formatting  bool   `expr:"formatting"`
}

// Filter selects DiffNodes with a boolean expression over the fields
// dimension, reason, normative, informative and formatting, such as
//
//	normative && dimension != "comments"
type Filter struct {
	prog *vm.Program
}

func CompileFilter(src string) (*Filter, error) {
	prog, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling filter %q: %w", src, err)
	}
	return &Filter{prog: prog}, nil
}

func (f *Filter) Match(d *libdiff.DiffNode) (bool, error) {
	out, err := expr.Run(f.prog, filterEnv{
		Dimension:   d.Dimension.String(),
		Reason:      d.Reason,
		Normative:   d.Normative,
		Informative: d.Informative,
		Formatting:  d.Formatting,
	})
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}

// Apply returns the DiffNodes the filter keeps.
func (f *Filter) Apply(diffs []*libdiff.DiffNode) ([]*libdiff.DiffNode, error) {
	var out []*libdiff.DiffNode
	for _, d := range diffs {
		ok, err := f.Match(d)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}
