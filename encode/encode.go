package encode

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lutaml/canon/format"
	"github.com/lutaml/canon/ir"
)

// Config collects the options for Encode.
type Config struct {
	Format format.Format
	Indent string
	Colors bool
}

type Option func(*Config)

// As selects the output format.
func As(f format.Format) Option {
	return func(c *Config) {
		c.Format = f
	}
}

// Indent sets the indentation unit, two spaces by default.
func Indent(s string) Option {
	return func(c *Config) {
		c.Indent = s
	}
}

// Colors turns on ANSI coloring of labels and values.
func Colors(on bool) Option {
	return func(c *Config) {
		c.Colors = on
	}
}

// Encode writes a deterministic, line-oriented rendering of the tree.
// Equal trees always serialize identically, so a line diff of two
// encodings reflects tree content rather than incidental layout.
func Encode(n *ir.Node, w io.Writer, opts ...Option) error {
	cfg := &Config{Format: format.XMLFormat, Indent: "  "}
	for _, opt := range opts {
		opt(cfg)
	}
	bw := bufio.NewWriter(w)
	e := &encoder{w: bw, cfg: cfg}
	if cfg.Colors {
		e.label = color.New(color.FgCyan).SprintFunc()
		e.value = color.New(color.FgGreen).SprintFunc()
	} else {
		e.label = plain
		e.value = plain
	}
	if cfg.Format.IsMarkup() {
		e.markup(n, 0)
	} else {
		e.data(n, 0)
	}
	if e.err != nil {
		return e.err
	}
	return bw.Flush()
}

// String renders the tree to a string, ignoring write errors, which a
// strings.Builder cannot produce.
func String(n *ir.Node, opts ...Option) string {
	var b strings.Builder
	Encode(n, &b, opts...) //nolint:errcheck
	return b.String()
}

func plain(a ...interface{}) string { return fmt.Sprint(a...) }

type encoder struct {
	w     *bufio.Writer
	cfg   *Config
	err   error
	label func(...interface{}) string
	value func(...interface{}) string
}

func (e *encoder) printf(depth int, s string) {
	if e.err != nil {
		return
	}
	for i := 0; i < depth; i++ {
		if _, e.err = e.w.WriteString(e.cfg.Indent); e.err != nil {
			return
		}
	}
	if _, e.err = e.w.WriteString(s); e.err != nil {
		return
	}
	e.err = e.w.WriteByte('\n')
}
