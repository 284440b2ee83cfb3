package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lutaml/canon/ir"
)

func flags(d *DiffNode) [3]bool {
	return [3]bool{d.Normative, d.Informative, d.Formatting}
}

func TestClassifyElementStructureAlwaysNormative(t *testing.T) {
	res := xmlResolved()
	res.Behaviors[ElementStructure] = Ignore
	d := &DiffNode{
		Node1:     ir.Element("a"),
		Dimension: ElementStructure,
	}
	Classify([]*DiffNode{d}, res)
	if !d.Normative || d.Informative || d.Formatting {
		t.Errorf("element_structure under ignore: flags %v", flags(d))
	}
}

func TestClassifyBehaviors(t *testing.T) {
	mk := func(v1, v2 string) *DiffNode {
		return &DiffNode{
			Node1:     ir.Text(v1),
			Node2:     ir.Text(v2),
			Dimension: TextContent,
			Value1:    v1,
			Value2:    v2,
		}
	}
	cases := []struct {
		v1, v2    string
		bh        Behavior
		normative bool
	}{
		{"a", "b", Strict, true},
		{"a ", "a", Strict, true},
		{"hello  world", "hello world", Normalize, false},
		{"hello", "goodbye", Normalize, true},
		{"a", "b", Ignore, false},
		{"a", "b", Strip, false},
		{"a", "b", Compact, false},
	}
	for i, tc := range cases {
		res := xmlResolved()
		res.Behaviors[TextContent] = tc.bh
		d := mk(tc.v1, tc.v2)
		Classify([]*DiffNode{d}, res)
		if d.Normative != tc.normative {
			t.Errorf("case %d (%s): normative %t want %t", i, tc.bh, d.Normative, tc.normative)
		}
		if d.Informative == d.Normative {
			t.Errorf("case %d: informative must be the negation of normative", i)
		}
	}
}

func TestClassifyFormattingRefinement(t *testing.T) {
	res := xmlResolved()
	res.Behaviors[TextContent] = Ignore
	d := &DiffNode{
		Node1:     ir.Text("a b"),
		Node2:     ir.Text("ab"),
		Dimension: TextContent,
		Value1:    "a b",
		Value2:    "ab",
	}
	Classify([]*DiffNode{d}, res)
	if !d.Informative || !d.Formatting {
		t.Errorf("stripped-equal informative diff should be formatting, flags %v", flags(d))
	}

	d = &DiffNode{
		Node1:     ir.Text("ax"),
		Node2:     ir.Text("ay"),
		Dimension: TextContent,
		Value1:    "ax",
		Value2:    "ay",
	}
	Classify([]*DiffNode{d}, res)
	if d.Formatting {
		t.Error("content change is not a formatting difference")
	}
}

func TestClassifySensitiveText(t *testing.T) {
	mk := func() *DiffNode {
		return &DiffNode{
			Node1:     ir.Text("a  b"),
			Node2:     ir.Text("a b"),
			Dimension: TextContent,
			Value1:    "a  b",
			Value2:    "a b",
			Sensitive: true,
		}
	}
	res := xmlResolved()
	res.Behaviors[TextContent] = Normalize
	d := mk()
	Classify([]*DiffNode{d}, res)
	if !d.Normative {
		t.Error("sensitive whitespace must not be normalized away")
	}
	res.Behaviors[TextContent] = Ignore
	d = mk()
	Classify([]*DiffNode{d}, res)
	if d.Normative {
		t.Error("explicit ignore still wins for sensitive text")
	}
}

func TestClassifyBlankBlankAlwaysFormatting(t *testing.T) {
	// self-closing vs explicitly closed empty element artifact
	for _, bh := range []Behavior{Strict, Normalize, Ignore} {
		res := xmlResolved()
		res.Behaviors[TextContent] = bh
		d := &DiffNode{
			Node1:     ir.Text(""),
			Node2:     ir.Text("\n  "),
			Dimension: TextContent,
			Value1:    "",
			Value2:    "\n  ",
		}
		Classify([]*DiffNode{d}, res)
		if !d.Formatting || d.Normative {
			t.Errorf("blank-vs-blank under %s: flags %v", bh, flags(d))
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	res := xmlResolved()
	d := &DiffNode{
		Node1:     ir.Text("a"),
		Node2:     ir.Text("b"),
		Dimension: TextContent,
		Value1:    "a",
		Value2:    "b",
	}
	Classify([]*DiffNode{d}, res)
	first := *d
	Classify([]*DiffNode{d}, res)
	if diff := cmp.Diff(flags(&first), flags(d)); diff != "" {
		t.Errorf("reclassification changed flags:\n%s", diff)
	}
}

func TestAnyNormative(t *testing.T) {
	a := &DiffNode{Normative: true}
	b := &DiffNode{Informative: true}
	if !AnyNormative([]*DiffNode{b, a}) {
		t.Error("want true")
	}
	if AnyNormative([]*DiffNode{b}) {
		t.Error("want false")
	}
}
