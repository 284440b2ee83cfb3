package report

import (
	"github.com/lutaml/canon/libdiff"
)

// Config controls line mapping and context assembly.
type Config struct {
	// ContextLines is the number of unchanged lines shown around each
	// block.
	ContextLines int
	// GroupingLines merges blocks whose gap is at most this many
	// unchanged lines into one context; nil disables merging.
	GroupingLines *int
	Show          Show
	// Element names the compared document root, File1 and File2 the
	// compared inputs; all three pass through to the report header.
	Element      string
	File1, File2 string
}

// DefaultContextLines matches the usual unified-diff window.
const DefaultContextLines = 3

// Summary counts what a report contains.
type Summary struct {
	Contexts int
	Blocks   int
	// Changes is the total number of changed lines over all blocks.
	Changes int
}

// DiffReport is the line-oriented presentation of a comparison.
type DiffReport struct {
	Lines    []DiffLine
	Contexts []*DiffContext
	Show     Show
	Element  string
	File1    string
	File2    string
}

// Build maps the semantic diffs onto the serialized texts and
// assembles the filtered, grouped contexts.
func Build(text1, text2 string, diffs []*libdiff.DiffNode, cfg Config) *DiffReport {
	lines := MapLines(text1, text2, diffs)
	blocks := FilterBlocks(BuildBlocks(lines), cfg.Show)
	ctxs := BuildContexts(blocks, len(lines), cfg.ContextLines, cfg.GroupingLines)
	return &DiffReport{
		Lines:    lines,
		Contexts: ctxs,
		Show:     cfg.Show,
		Element:  cfg.Element,
		File1:    cfg.File1,
		File2:    cfg.File2,
	}
}

// HasDifferences reports whether any block survived filtering.
func (r *DiffReport) HasDifferences() bool {
	return len(r.Contexts) != 0
}

func (r *DiffReport) Summary() Summary {
	s := Summary{Contexts: len(r.Contexts)}
	for _, c := range r.Contexts {
		s.Blocks += len(c.Blocks)
		for _, b := range c.Blocks {
			s.Changes += b.Len()
		}
	}
	return s
}

// ContextLines returns the lines of one context, including the
// unchanged surroundings.
func (r *DiffReport) ContextLines(c *DiffContext) []DiffLine {
	return r.Lines[c.Start : c.End+1]
}
