package libdiff

import (
	"strings"
	"unicode"
)

// MatchText reports whether a and b compare equal under the given
// behavior.
func MatchText(a, b string, bh Behavior) bool {
	switch bh {
	case Strict:
		return a == b
	case Strip:
		return strings.TrimSpace(a) == strings.TrimSpace(b)
	case Compact:
		return CompactText(a) == CompactText(b)
	case Normalize:
		return NormalizeText(a) == NormalizeText(b)
	case Ignore:
		return true
	}
	return a == b
}

// NormalizeText trims surrounding whitespace and collapses internal
// whitespace runs to a single space.
func NormalizeText(s string) string {
	return CompactText(strings.TrimSpace(s))
}

// CompactText collapses each whitespace run to a single space.
func CompactText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inRun = true
			continue
		}
		if inRun {
			b.WriteByte(' ')
			inRun = false
		}
		b.WriteRune(r)
	}
	if inRun {
		b.WriteByte(' ')
	}
	return b.String()
}

// StripAllSpace removes every whitespace rune.
func StripAllSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
