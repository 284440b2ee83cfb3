package report

// DiffContext is a group of nearby blocks with surrounding unchanged
// lines, the unit a rendered report prints.
type DiffContext struct {
	// Start and End index into the merged line sequence, inclusive,
	// after expansion by the context line count.
	Start, End int
	Blocks     []*DiffBlock
	// Normative is the OR over the contained blocks.
	Normative bool
}

// BuildContexts expands each block by contextLines unchanged lines on
// both sides, clamped to the document, and merges blocks whose
// unexpanded gap is at most the grouping distance.  A nil grouping
// disables merging entirely; expanded ranges that merely touch stay
// separate contexts.
func BuildContexts(blocks []*DiffBlock, total, contextLines int, grouping *int) []*DiffContext {
	if len(blocks) == 0 {
		return nil
	}
	var ctxs []*DiffContext
	cur := &DiffContext{Blocks: []*DiffBlock{blocks[0]}}
	for _, b := range blocks[1:] {
		last := cur.Blocks[len(cur.Blocks)-1]
		gap := b.Start - last.End - 1
		if grouping != nil && gap <= *grouping {
			cur.Blocks = append(cur.Blocks, b)
			continue
		}
		ctxs = append(ctxs, cur)
		cur = &DiffContext{Blocks: []*DiffBlock{b}}
	}
	ctxs = append(ctxs, cur)

	for _, c := range ctxs {
		c.Start = max(0, c.Blocks[0].Start-contextLines)
		c.End = min(total-1, c.Blocks[len(c.Blocks)-1].End+contextLines)
		for _, b := range c.Blocks {
			if b.Normative {
				c.Normative = true
			}
		}
	}
	return ctxs
}
