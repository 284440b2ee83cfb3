// Package canon compares structured documents semantically.  Two XML,
// HTML, JSON or YAML documents are parsed into one shared tree shape,
// their nodes are matched, and every difference is enumerated along a
// fixed set of dimensions, classified as normative, informative or
// formatting under the resolved per-dimension behaviors.
package canon

import (
	"github.com/lutaml/canon/encode"
	"github.com/lutaml/canon/format"
	"github.com/lutaml/canon/ir"
	"github.com/lutaml/canon/libdiff"
	"github.com/lutaml/canon/libmatch"
	"github.com/lutaml/canon/parse"
	"github.com/lutaml/canon/report"
)

// MatchText re-exports the text comparison primitive used by the
// classifier, so callers can apply behavior semantics to raw strings.
func MatchText(a, b string, bh libdiff.Behavior) bool {
	return libdiff.MatchText(a, b, bh)
}

// Config collects everything a comparison run needs beyond the two
// trees.
type Config struct {
	Global   *Options
	Call     *Options
	Profiles Profiles

	RespectXMLSpace bool
	// Sensitive and Insensitive override whitespace sensitivity per
	// element name; Sensitive wins on conflict.
	Sensitive   []string
	Insensitive []string

	// MinScore is the similarity threshold for fuzzy matching; zero
	// keeps the default.
	MinScore float64

	ContextLines  int
	GroupingLines *int
	Show          report.Show
	File1, File2  string
}

type Option func(*Config)

func Global(o *Options) Option {
	return func(c *Config) {
		c.Global = o
	}
}

func Call(o *Options) Option {
	return func(c *Config) {
		c.Call = o
	}
}

// Profile sets the per-call profile name.
func Profile(name string) Option {
	return func(c *Config) {
		c.callLayer().Profile = name
	}
}

// Preprocess sets the per-call preprocessing mode.
func Preprocess(name string) Option {
	return func(c *Config) {
		c.callLayer().Preprocess = name
	}
}

// Dimension overrides one dimension's behavior for this call.
func Dimension(dim, behavior string) Option {
	return func(c *Config) {
		l := c.callLayer()
		if l.Dimensions == nil {
			l.Dimensions = map[string]string{}
		}
		l.Dimensions[dim] = behavior
	}
}

func WithProfiles(p Profiles) Option {
	return func(c *Config) {
		c.Profiles = p
	}
}

func RespectXMLSpace(on bool) Option {
	return func(c *Config) {
		c.RespectXMLSpace = on
	}
}

func Sensitive(elements ...string) Option {
	return func(c *Config) {
		c.Sensitive = append(c.Sensitive, elements...)
	}
}

func Insensitive(elements ...string) Option {
	return func(c *Config) {
		c.Insensitive = append(c.Insensitive, elements...)
	}
}

func MinScore(v float64) Option {
	return func(c *Config) {
		c.MinScore = v
	}
}

func ContextLines(n int) Option {
	return func(c *Config) {
		c.ContextLines = n
	}
}

// GroupingLines merges nearby blocks into one context; without it
// blocks never merge.
func GroupingLines(n int) Option {
	return func(c *Config) {
		c.GroupingLines = &n
	}
}

func Show(s report.Show) Option {
	return func(c *Config) {
		c.Show = s
	}
}

func FileNames(f1, f2 string) Option {
	return func(c *Config) {
		c.File1 = f1
		c.File2 = f2
	}
}

func (c *Config) callLayer() *Options {
	if c.Call == nil {
		c.Call = &Options{}
	}
	return c.Call
}

// Result is the outcome of one comparison.
type Result struct {
	// Equivalent is true when no difference is normative.
	Equivalent bool
	Diffs      []*libdiff.DiffNode
	Report     *report.DiffReport
	Resolved   *libdiff.Resolved
}

// Compare runs the full pipeline on two parsed trees: resolve options,
// match nodes, construct and classify differences, then assemble the
// line-oriented report.
func Compare(t1, t2 *ir.Node, f format.Format, opts ...Option) (*Result, error) {
	cfg := &Config{ContextLines: report.DefaultContextLines}
	for _, opt := range opts {
		opt(cfg)
	}

	res, err := Resolve(f, cfg.Profiles, cfg.Global, cfg.Call)
	if err != nil {
		return nil, err
	}
	ws := &libdiff.WhitespaceConfig{
		RespectXMLSpace:  cfg.RespectXMLSpace,
		Sensitive:        cfg.Sensitive,
		Insensitive:      cfg.Insensitive,
		DefaultSensitive: f.SensitiveElements(),
	}

	var matchOpts []libmatch.Option
	if cfg.MinScore != 0 {
		matchOpts = append(matchOpts, libmatch.MinScore(cfg.MinScore))
	}
	m := libmatch.Match(t1, t2, matchOpts...)
	diffs := libdiff.Construct(t1, t2, m, res, ws)
	libdiff.Classify(diffs, res)

	rep := report.Build(
		encode.String(t1, encode.As(f)),
		encode.String(t2, encode.As(f)),
		diffs,
		report.Config{
			ContextLines:  cfg.ContextLines,
			GroupingLines: cfg.GroupingLines,
			Show:          cfg.Show,
			Element:       rootElementName(t1),
			File1:         cfg.File1,
			File2:         cfg.File2,
		},
	)
	return &Result{
		Equivalent: !libdiff.AnyNormative(diffs),
		Diffs:      diffs,
		Report:     rep,
		Resolved:   res,
	}, nil
}

// rootElementName names the document's root element for the report
// header.
func rootElementName(t *ir.Node) string {
	if t.Kind == ir.ElementKind {
		return t.Label
	}
	for _, c := range t.Children {
		if c.Kind == ir.ElementKind {
			return c.Label
		}
	}
	return ""
}

// CompareBytes parses both inputs as f and compares them.
func CompareBytes(b1, b2 []byte, f format.Format, opts ...Option) (*Result, error) {
	t1, err := parse.Parse(b1, f)
	if err != nil {
		return nil, err
	}
	t2, err := parse.Parse(b2, f)
	if err != nil {
		return nil, err
	}
	return Compare(t1, t2, f, opts...)
}

// Equivalent reports whether the two inputs differ only
// non-normatively under the given options.
func Equivalent(b1, b2 []byte, f format.Format, opts ...Option) (bool, error) {
	r, err := CompareBytes(b1, b2, f, opts...)
	if err != nil {
		return false, err
	}
	return r.Equivalent, nil
}
