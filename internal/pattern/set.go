// Package pattern compiles raw pattern text into matchers.
//
// A Set is compiled once, before any input is read, and is then shared
// read-only by every file scanned during a run.
package pattern

import (
	"github.com/cheerioskun/grepninja/internal/errs"
	"github.com/cheerioskun/grepninja/internal/models"
)

// Matcher reports where a compiled pattern first matches a line.
type Matcher interface {
	// Find returns the span of the leftmost match in line. Among matches that
	// start at the same offset the longest one is returned.
	Find(line []byte) (start, end int, ok bool)
	// Spec returns the pattern the matcher was compiled from.
	Spec() models.PatternSpec
}

// Set is an ordered, immutable collection of compiled matchers.
type Set struct {
	matchers []Matcher
}

// compileSpec is swapped out in tests to observe compilation.
var compileSpec = compileOne

// Compile builds a Set with one matcher per spec, in order. Every spec is
// compiled eagerly; the first failure is returned as *errs.BadPatternError.
func Compile(specs []models.PatternSpec) (*Set, error) {
	if len(specs) == 0 {
		return nil, errs.ErrEmptyPatternSet
	}

	matchers := make([]Matcher, 0, len(specs))
	for _, spec := range specs {
		m, err := compileSpec(spec)
		if err != nil {
			return nil, &errs.BadPatternError{Pattern: spec.Text, Err: err}
		}
		matchers = append(matchers, m)
	}

	return &Set{matchers: matchers}, nil
}

func compileOne(spec models.PatternSpec) (Matcher, error) {
	switch spec.Syntax {
	case models.SyntaxFixed:
		return newLiteralMatcher(spec), nil
	case models.SyntaxExtended:
		return newRegexMatcher(spec, spec.Text)
	default:
		expr, err := translateBasic(spec.Text)
		if err != nil {
			return nil, err
		}
		return newRegexMatcher(spec, expr)
	}
}

// Len returns the number of matchers in the set
func (s *Set) Len() int {
	return len(s.matchers)
}

// Matchers returns the compiled matchers in declaration order.
// Callers must not modify the returned slice.
func (s *Set) Matchers() []Matcher {
	return s.matchers
}

// Specs returns the patterns the set was compiled from
func (s *Set) Specs() []models.PatternSpec {
	specs := make([]models.PatternSpec, 0, len(s.matchers))
	for _, m := range s.matchers {
		specs = append(specs, m.Spec())
	}
	return specs
}
