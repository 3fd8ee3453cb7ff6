package pattern

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/cheerioskun/grepninja/internal/models"
)

// literalMatcher matches pattern text as a plain substring.
type literalMatcher struct {
	spec   models.PatternSpec
	needle []byte
}

func newLiteralMatcher(spec models.PatternSpec) *literalMatcher {
	return &literalMatcher{spec: spec, needle: []byte(spec.Text)}
}

func (m *literalMatcher) Find(line []byte) (int, int, bool) {
	if !m.spec.IgnoreCase {
		i := bytes.Index(line, m.needle)
		if i < 0 {
			return 0, 0, false
		}
		return i, i + len(m.needle), true
	}
	return indexFold(line, m.needle)
}

func (m *literalMatcher) Spec() models.PatternSpec {
	return m.spec
}

// indexFold finds the first rune-aligned offset of sub in s under simple
// Unicode case folding. The span end is measured in s, whose encoded
// length may differ from sub's.
func indexFold(s, sub []byte) (int, int, bool) {
	if len(sub) == 0 {
		return 0, 0, true
	}
	for i := 0; i < len(s); {
		if n, ok := hasPrefixFold(s[i:], sub); ok {
			return i, i + n, true
		}
		_, size := utf8.DecodeRune(s[i:])
		i += size
	}
	return 0, 0, false
}

func hasPrefixFold(s, prefix []byte) (int, bool) {
	n := 0
	for len(prefix) > 0 {
		if n >= len(s) {
			return 0, false
		}
		pr, psize := utf8.DecodeRune(prefix)
		sr, ssize := utf8.DecodeRune(s[n:])
		if !equalFoldRune(pr, sr) {
			return 0, false
		}
		prefix = prefix[psize:]
		n += ssize
	}
	return n, true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
