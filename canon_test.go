package canon

import (
	"testing"

	"github.com/lutaml/canon/format"
	"github.com/lutaml/canon/libdiff"
)

func compareXML(t *testing.T, a, b string, opts ...Option) *Result {
	t.Helper()
	r, err := CompareBytes([]byte(a), []byte(b), format.XMLFormat, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestCompareIdentical(t *testing.T) {
	r := compareXML(t, `<a x="1"><b>hi</b></a>`, `<a x="1"><b>hi</b></a>`)
	if !r.Equivalent || len(r.Diffs) != 0 {
		t.Errorf("equivalent %t, %d diffs", r.Equivalent, len(r.Diffs))
	}
	if r.Report.HasDifferences() {
		t.Error("report shows differences for identical input")
	}
}

func TestCompareReportHeader(t *testing.T) {
	r := compareXML(t, `<doc><b>x</b></doc>`, `<doc><b>y</b></doc>`,
		FileNames("a.xml", "b.xml"))
	if r.Report.Element != "doc" {
		t.Errorf("report element %q, want %q", r.Report.Element, "doc")
	}
	if r.Report.File1 != "a.xml" || r.Report.File2 != "b.xml" {
		t.Errorf("report files %q / %q", r.Report.File1, r.Report.File2)
	}
}

func TestCompareWhitespaceOnlyIsEquivalent(t *testing.T) {
	r := compareXML(t, "<a><b>hi</b></a>", "<a>\n  <b>hi</b>\n</a>")
	if !r.Equivalent {
		for _, d := range r.Diffs {
			t.Logf("%s normative=%t: %s", d.Dimension, d.Normative, d.Reason)
		}
		t.Error("indentation must not break equivalence")
	}
	if len(r.Diffs) == 0 {
		t.Error("whitespace differences still get reported")
	}
}

func TestCompareValueChangeNormative(t *testing.T) {
	r := compareXML(t, `<a x="1"/>`, `<a x="2"/>`)
	if r.Equivalent {
		t.Error("attribute value change must be normative")
	}
	if len(r.Diffs) != 1 || r.Diffs[0].Dimension != libdiff.AttributeValues {
		t.Errorf("diffs %v", r.Diffs)
	}
}

func TestCompareTextBehaviorOverride(t *testing.T) {
	a, b := "<a>hello  world</a>", "<a>hello world</a>"
	if r := compareXML(t, a, b); r.Equivalent {
		t.Error("strict text default must flag collapsed spaces")
	}
	r := compareXML(t, a, b, Dimension("text_content", "normalize"))
	if !r.Equivalent {
		t.Error("normalize override must accept collapsed spaces")
	}
}

func TestCompareJSONKeyOrder(t *testing.T) {
	a := `{"x": 1, "y": 2}`
	b := `{"y": 2, "x": 1}`
	r, err := CompareBytes([]byte(a), []byte(b), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equivalent {
		t.Error("key order is ignored for json by default")
	}
	r, err = CompareBytes([]byte(a), []byte(b), format.JSONFormat,
		Dimension("key_order", "strict"))
	if err != nil {
		t.Fatal(err)
	}
	if r.Equivalent {
		t.Error("strict key_order must flag the reorder")
	}
	var sawKeyOrder bool
	for _, d := range r.Diffs {
		if d.Dimension == libdiff.KeyOrder {
			sawKeyOrder = true
		}
	}
	if !sawKeyOrder {
		t.Error("no key_order diff constructed")
	}
}

func TestCompareHTMLDefaults(t *testing.T) {
	a := "<p>hello   world</p><!-- note -->"
	b := "<p>hello world</p><!-- other -->"
	r, err := CompareBytes([]byte(a), []byte(b), format.HTMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equivalent {
		t.Error("html defaults normalize text and ignore comments")
	}
}

func TestCompareSensitiveElement(t *testing.T) {
	a := "<doc><pre>a  b</pre></doc>"
	b := "<doc><pre>a b</pre></doc>"
	r, err := CompareBytes([]byte(a), []byte(b), format.HTMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	if r.Equivalent {
		t.Error("whitespace inside <pre> is content")
	}
}

func TestCompareConfigurationError(t *testing.T) {
	_, err := CompareBytes([]byte("<a/>"), []byte("<a/>"), format.XMLFormat,
		Dimension("text_content", "bogus"))
	if err == nil {
		t.Fatal("want configuration error")
	}
}

func TestEquivalent(t *testing.T) {
	ok, err := Equivalent([]byte("<a>x</a>"), []byte("<a>x</a>"), format.XMLFormat)
	if err != nil || !ok {
		t.Errorf("ok %t err %v", ok, err)
	}
	ok, err = Equivalent([]byte("<a>x</a>"), []byte("<a>y</a>"), format.XMLFormat)
	if err != nil || ok {
		t.Errorf("ok %t err %v", ok, err)
	}
}

func TestMatchTextExported(t *testing.T) {
	if !MatchText(" a  b ", "a b", libdiff.Normalize) {
		t.Error("normalize")
	}
	if MatchText("a", "b", libdiff.Strict) {
		t.Error("strict")
	}
}
