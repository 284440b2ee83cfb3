package libdiff

import (
	"testing"

	"github.com/lutaml/canon/ir"
)

var htmlSensitive = []string{"pre", "code", "textarea", "script", "style"}

func TestWhitespaceFormatDefaults(t *testing.T) {
	cfg := &WhitespaceConfig{DefaultSensitive: htmlSensitive}
	pre := ir.Element("pre").Append(ir.Text(" x "))
	div := ir.Element("div").Append(ir.Text(" x "))
	if !cfg.SensitiveAt(pre.Children[0]) {
		t.Error("pre should be sensitive by default in HTML")
	}
	if cfg.SensitiveAt(div.Children[0]) {
		t.Error("div should not be sensitive")
	}
}

func TestWhitespaceBlacklistOverridesDefaults(t *testing.T) {
	cfg := &WhitespaceConfig{
		DefaultSensitive: htmlSensitive,
		Insensitive:      []string{"pre"},
	}
	pre := ir.Element("pre").Append(ir.Text(" x "))
	if cfg.SensitiveAt(pre.Children[0]) {
		t.Error("blacklisted pre must report non-sensitive despite the built-in default")
	}
}

func TestWhitespaceWhitelistBeatsBlacklist(t *testing.T) {
	cfg := &WhitespaceConfig{
		Sensitive:   []string{"verse"},
		Insensitive: []string{"verse"},
	}
	verse := ir.Element("verse").Append(ir.Text(" x "))
	if !cfg.SensitiveAt(verse.Children[0]) {
		t.Error("whitelist has priority over blacklist")
	}
}

func TestWhitespaceXMLSpace(t *testing.T) {
	outer := ir.Element("outer").WithAttrs(ir.Attr{Name: "xml:space", Value: "preserve"})
	inner := ir.Element("inner")
	txt := ir.Text(" x ")
	outer.Append(inner)
	inner.Append(txt)

	cfg := &WhitespaceConfig{RespectXMLSpace: true}
	if !cfg.SensitiveAt(txt) {
		t.Error("xml:space=preserve on an ancestor should win")
	}

	// option disabled: attribute is invisible
	cfg = &WhitespaceConfig{}
	if cfg.SensitiveAt(txt) {
		t.Error("xml:space must be honored only when the option is enabled")
	}

	// nearest xml:space wins over whitelist
	inner.Attrs = []ir.Attr{{Name: "xml:space", Value: "default"}}
	cfg = &WhitespaceConfig{RespectXMLSpace: true, Sensitive: []string{"inner"}}
	if cfg.SensitiveAt(txt) {
		t.Error("explicit xml:space=default has top priority")
	}
}
