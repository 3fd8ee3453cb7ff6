// Package search applies a compiled pattern set to input targets and
// reports selected lines, counts or file names.
package search

import (
	"github.com/cheerioskun/grepninja/internal/models"
	"github.com/cheerioskun/grepninja/internal/pattern"
)

// Verdict is the Selector's decision for one line
type Verdict struct {
	Selected bool // Line is reported
	Matched  bool // Some pattern matched, after whole-line adjustment
	Start    int  // Span of that match, valid when Matched
	End      int
}

// Selector decides whether a line is selected. It holds no per-line state.
type Selector struct {
	set   *pattern.Set
	flags models.MatchFlags
}

// NewSelector creates a new Selector over a compiled set
func NewSelector(set *pattern.Set, flags models.MatchFlags) Selector {
	return Selector{set: set, flags: flags}
}

// Select matches rec against every pattern. Patterns are alternatives: the
// first one that matches decides. With WholeLine a match must span the whole
// line. Invert flips the final result.
func (s Selector) Select(rec models.LineRecord) Verdict {
	var v Verdict
	for _, m := range s.set.Matchers() {
		start, end, ok := m.Find(rec.Content)
		if !ok {
			continue
		}
		if s.flags.WholeLine && (start != 0 || end != len(rec.Content)) {
			continue
		}
		v.Matched, v.Start, v.End = true, start, end
		break
	}
	v.Selected = v.Matched != s.flags.Invert
	return v
}
