package pattern

import (
	"regexp"
	"regexp/syntax"

	"github.com/cheerioskun/grepninja/internal/models"
)

type regexMatcher struct {
	spec models.PatternSpec
	re   *regexp.Regexp
}

// newRegexMatcher compiles a POSIX extended expression. The expression is
// parsed with POSIX rules so Perl-only syntax is rejected, then compiled
// with leftmost-longest semantics so spans agree with POSIX regexec.
func newRegexMatcher(spec models.PatternSpec, expr string) (*regexMatcher, error) {
	flags := syntax.POSIX
	if spec.IgnoreCase {
		flags |= syntax.FoldCase
	}

	tree, err := syntax.Parse(expr, flags)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(tree.String())
	if err != nil {
		return nil, err
	}
	re.Longest()

	return &regexMatcher{spec: spec, re: re}, nil
}

func (m *regexMatcher) Find(line []byte) (int, int, bool) {
	loc := m.re.FindIndex(line)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

func (m *regexMatcher) Spec() models.PatternSpec {
	return m.spec
}
