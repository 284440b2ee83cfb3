package libdiff

// Classify derives the normative/informative/formatting flags of
// every DiffNode from its dimension and the resolved behavior table.
// It is a pure function of (dimension, values, behavior): classifying
// the same DiffNode twice under the same Resolved yields identical
// flags.
func Classify(diffs []*DiffNode, res *Resolved) {
	for _, d := range diffs {
		classifyOne(d, res)
	}
}

func classifyOne(d *DiffNode, res *Resolved) {
	// an added or removed element can never be ignored away
	if d.Dimension == ElementStructure {
		d.Normative = true
		d.Informative = false
		d.Formatting = false
		return
	}
	// blank-vs-blank text is an artifact of self-closing vs
	// explicitly closed empty elements, always formatting
	if d.Dimension == TextContent && d.Node1 != nil && d.Node2 != nil &&
		IsBlank(d.Value1) && IsBlank(d.Value2) {
		d.Normative = false
		d.Informative = true
		d.Formatting = true
		return
	}

	bh := res.Behavior(d.Dimension)
	if d.Sensitive && bh != Ignore {
		// significant whitespace tolerates no loosening short of an
		// explicit ignore
		bh = Strict
	}
	switch bh {
	case Strict:
		d.Normative = true
	case Normalize:
		d.Normative = !MatchText(d.Value1, d.Value2, Normalize)
	default: // Strip, Compact, Ignore
		d.Normative = false
	}
	d.Informative = !d.Normative
	d.Formatting = d.Informative &&
		formattingDetectable(d.Dimension) &&
		StripAllSpace(d.Value1) == StripAllSpace(d.Value2)
}

func formattingDetectable(d Dimension) bool {
	return d == TextContent || d == StructuralWhitespace
}

// AnyNormative reports whether at least one difference is normative.
func AnyNormative(diffs []*DiffNode) bool {
	for _, d := range diffs {
		if d.Normative {
			return true
		}
	}
	return false
}
