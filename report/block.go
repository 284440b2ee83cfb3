package report

import (
	"errors"
	"fmt"
)

// DiffBlock is a maximal run of consecutive non-unchanged lines.
type DiffBlock struct {
	// Start and End index into the merged line sequence, inclusive.
	Start, End int
	Lines      []DiffLine
	// Normative is the OR over the block's linked DiffNodes; lines
	// without a linked node contribute nothing.
	Normative bool
}

// Len returns the number of lines in the block.
func (b *DiffBlock) Len() int { return b.End - b.Start + 1 }

// BuildBlocks groups the changed lines of the merged sequence into
// maximal contiguous blocks.
func BuildBlocks(lines []DiffLine) []*DiffBlock {
	var blocks []*DiffBlock
	var cur *DiffBlock
	for i, l := range lines {
		if l.Type == Unchanged {
			cur = nil
			continue
		}
		if cur == nil {
			cur = &DiffBlock{Start: i, End: i}
			blocks = append(blocks, cur)
		}
		cur.End = i
		cur.Lines = append(cur.Lines, l)
		if lineNormative(l) {
			cur.Normative = true
		}
	}
	return blocks
}

func lineNormative(l DiffLine) bool {
	return l.Node != nil && l.Node.Normative
}

// Show selects which blocks a report includes.
type Show int

const (
	ShowAll Show = iota
	ShowNormative
	ShowInformative
)

var ErrBadShow = errors.New("bad show mode")

func ParseShow(v string) (Show, error) {
	s, ok := map[string]Show{
		"all":         ShowAll,
		"normative":   ShowNormative,
		"informative": ShowInformative,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadShow, v)
}

func (s Show) String() string {
	switch s {
	case ShowNormative:
		return "normative"
	case ShowInformative:
		return "informative"
	default:
		return "all"
	}
}

// FilterBlocks drops the blocks the show mode excludes.  Filtering
// happens before context assembly so suppressed blocks neither appear
// nor extend grouping ranges.
func FilterBlocks(blocks []*DiffBlock, show Show) []*DiffBlock {
	if show == ShowAll {
		return blocks
	}
	var out []*DiffBlock
	for _, b := range blocks {
		if (show == ShowNormative) == b.Normative {
			out = append(out, b)
		}
	}
	return out
}
