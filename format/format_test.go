package format

import (
	"errors"
	"testing"

	"github.com/lutaml/canon/libdiff"
)

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Format
	}{
		{"xml", XMLFormat}, {"x", XMLFormat},
		{"html", HTMLFormat}, {"json", JSONFormat}, {"yaml", YAMLFormat},
	} {
		got, err := ParseFormat(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tc.in, got, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Error("unknown format must fail")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil || g != f {
			t.Errorf("%s round trip: %v %v", f, g, err)
		}
	}
}

func TestFromSuffix(t *testing.T) {
	cases := map[string]Format{
		"a.xml":  XMLFormat,
		"a.html": HTMLFormat,
		"a.htm":  HTMLFormat,
		"a.json": JSONFormat,
		"a.yaml": YAMLFormat,
		"a.yml":  YAMLFormat,
	}
	for name, want := range cases {
		got, err := FromSuffix(name)
		if err != nil || got != want {
			t.Errorf("FromSuffix(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := FromSuffix("a.txt"); err == nil {
		t.Error("unknown suffix must fail")
	}
}

func TestDimensions(t *testing.T) {
	for _, f := range []Format{XMLFormat, HTMLFormat} {
		dims := f.Dimensions()
		if !hasDim(dims, libdiff.AttributePresence) || hasDim(dims, libdiff.KeyOrder) {
			t.Errorf("%s dimension set %v", f, dims)
		}
	}
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		dims := f.Dimensions()
		if hasDim(dims, libdiff.AttributePresence) || !hasDim(dims, libdiff.KeyOrder) {
			t.Errorf("%s dimension set %v", f, dims)
		}
	}
}

func hasDim(dims []libdiff.Dimension, d libdiff.Dimension) bool {
	for _, x := range dims {
		if x == d {
			return true
		}
	}
	return false
}

func TestSensitiveElements(t *testing.T) {
	if len(XMLFormat.SensitiveElements()) != 0 {
		t.Error("xml has no default sensitive elements")
	}
	html := HTMLFormat.SensitiveElements()
	if !contains(html, "pre") || !contains(html, "script") {
		t.Errorf("html sensitive elements %v", html)
	}
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
