package report

import (
	"regexp"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/lutaml/canon/libdiff"
)

type LineType int

const (
	Unchanged LineType = iota
	Added
	Removed
	Changed
)

func (t LineType) String() string {
	switch t {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return "unchanged"
	}
}

// Marker returns the one-character block marker for the line type.
func (t LineType) Marker() string {
	switch t {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Changed:
		return "!"
	default:
		return " "
	}
}

// DiffLine is one line of the merged line-diff between the two
// serialized documents.
type DiffLine struct {
	// Number is the 1-based position in the merged sequence.
	Number  int
	Content string
	// Before holds the tree₁ text of a changed line; Content holds
	// the tree₂ text.
	Before string
	Type   LineType
	// Node links the line to the semantic difference it renders,
	// when one could be found.
	Node *libdiff.DiffNode
	// Formatting is a raw-text whitespace-only check computed
	// independently of Node linkage.
	Formatting bool
}

// MapLines bridges semantic DiffNodes to line numbers: it computes an
// LCS line diff of the two serialized texts and links each changed
// line to a DiffNode by element-name token.
func MapLines(text1, text2 string, diffs []*libdiff.DiffNode) []DiffLine {
	dmp := diffpatch.New()
	c1, c2, arr := dmp.DiffLinesToChars(text1, text2)
	ds := dmp.DiffMain(c1, c2, false)
	ds = dmp.DiffCharsToLines(ds, arr)

	var lines []DiffLine
	emit := func(t LineType, content, before string) {
		lines = append(lines, DiffLine{
			Number:  len(lines) + 1,
			Content: content,
			Before:  before,
			Type:    t,
		})
	}
	var pendingDel []string
	flushDel := func() {
		for _, l := range pendingDel {
			emit(Removed, l, "")
		}
		pendingDel = nil
	}
	for _, d := range ds {
		ls := splitLines(d.Text)
		switch d.Type {
		case diffpatch.DiffEqual:
			flushDel()
			for _, l := range ls {
				emit(Unchanged, l, "")
			}
		case diffpatch.DiffDelete:
			pendingDel = append(pendingDel, ls...)
		case diffpatch.DiffInsert:
			// pair a delete run with the following insert run as
			// changed lines
			n := min(len(pendingDel), len(ls))
			for i := 0; i < n; i++ {
				emit(Changed, ls[i], pendingDel[i])
			}
			for _, l := range pendingDel[n:] {
				emit(Removed, l, "")
			}
			pendingDel = nil
			for _, l := range ls[n:] {
				emit(Added, l, "")
			}
		}
	}
	flushDel()

	linkNodes(lines, diffs)
	for i := range lines {
		l := &lines[i]
		switch l.Type {
		case Changed:
			l.Formatting = libdiff.StripAllSpace(l.Before) == libdiff.StripAllSpace(l.Content)
		case Added, Removed:
			l.Formatting = libdiff.IsBlank(l.Content)
		}
	}
	return lines
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

var (
	tagRe = regexp.MustCompile(`</?([A-Za-z_][A-Za-z0-9_.:-]*)`)
	keyRe = regexp.MustCompile(`^\s*(?:- )?"?([A-Za-z0-9_.-]+)"?\s*:`)
)

// elementToken extracts the element-name token of a serialized line:
// a tag name for markup, a key for JSON/YAML.
func elementToken(line string) string {
	if m := tagRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := keyRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

func linkNodes(lines []DiffLine, diffs []*libdiff.DiffNode) {
	if len(diffs) == 0 {
		return
	}
	// when every difference is informative a single shared DiffNode
	// serves all changed lines
	shared := diffs[0]
	for _, d := range diffs {
		if d.Normative {
			shared = nil
			break
		}
	}
	for i := range lines {
		l := &lines[i]
		if l.Type == Unchanged {
			continue
		}
		if shared != nil {
			l.Node = shared
			continue
		}
		token := elementToken(l.Content)
		if token == "" && l.Before != "" {
			token = elementToken(l.Before)
		}
		if token == "" {
			continue
		}
		l.Node = findByLabel(diffs, token)
	}
}

// findByLabel returns the first DiffNode whose node1 or node2 (or its
// containing element, for text reported against an element) carries
// the label.
func findByLabel(diffs []*libdiff.DiffNode, label string) *libdiff.DiffNode {
	for _, d := range diffs {
		if nodeHasLabel(d, label) {
			return d
		}
	}
	return nil
}

func nodeHasLabel(d *libdiff.DiffNode, label string) bool {
	if d.Node1 != nil && (d.Node1.Label == label || d.Node1.Elem().Label == label) {
		return true
	}
	if d.Node2 != nil && (d.Node2.Label == label || d.Node2.Elem().Label == label) {
		return true
	}
	return false
}
