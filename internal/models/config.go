package models

import "fmt"

const (
	// StdinSentinel is the target identifier that selects standard input
	StdinSentinel = "-"
	// StdinLabel is how standard input is named in output
	StdinLabel = "(standard input)"
)

// SyntaxMode selects how pattern text is interpreted
type SyntaxMode int

const (
	SyntaxBasic SyntaxMode = iota
	SyntaxExtended
	SyntaxFixed
)

// String returns a human-readable representation of the syntax mode
func (s SyntaxMode) String() string {
	switch s {
	case SyntaxBasic:
		return "basic"
	case SyntaxExtended:
		return "extended"
	case SyntaxFixed:
		return "fixed"
	default:
		return fmt.Sprintf("SyntaxMode(%d)", int(s))
	}
}

// DisplayMode selects what a run reports
type DisplayMode int

const (
	DisplayNormal DisplayMode = iota // print selected lines
	DisplayCount                     // print per-file selected line counts
	DisplayList                      // print names of files with a selected line
	DisplayQuiet                     // print nothing, exit status only
)

// String returns a human-readable representation of the display mode
func (d DisplayMode) String() string {
	switch d {
	case DisplayNormal:
		return "normal"
	case DisplayCount:
		return "count"
	case DisplayList:
		return "list"
	case DisplayQuiet:
		return "quiet"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(d))
	}
}

// PatternSpec is one raw pattern and the rules it is compiled under
type PatternSpec struct {
	Text       string     `json:"text"`        // Raw pattern text
	Syntax     SyntaxMode `json:"syntax"`      // Syntax the text was declared under
	IgnoreCase bool       `json:"ignore_case"` // Fold case when matching
}

// MatchFlags are the independent matching and output switches of a run
type MatchFlags struct {
	IgnoreCase     bool `json:"ignore_case"`     // -i
	LineNumbers    bool `json:"line_numbers"`    // -n, output only
	SuppressErrors bool `json:"suppress_errors"` // -s, output only
	Invert         bool `json:"invert"`          // -v
	WholeLine      bool `json:"whole_line"`      // -x
	ShowFilenames  bool `json:"show_filenames"`  // forced on for multi-target runs
}

// Config is the fully resolved configuration of one run.
// It is built once by the command layer and passed by value.
type Config struct {
	Patterns []PatternSpec `json:"patterns"` // Patterns in declaration order
	Syntax   SyntaxMode    `json:"syntax"`   // Default syntax for all patterns
	Flags    MatchFlags    `json:"flags"`    // Matching and output switches
	Display  DisplayMode   `json:"display"`  // Report mode
	Targets  []string      `json:"targets"`  // Input targets in the order given
	Color    bool          `json:"color"`    // Highlight names, numbers and matches
}

// NewPatternSpecs builds one PatternSpec per text using the config's syntax and case rules
func NewPatternSpecs(texts []string, syntax SyntaxMode, ignoreCase bool) []PatternSpec {
	specs := make([]PatternSpec, 0, len(texts))
	for _, text := range texts {
		specs = append(specs, PatternSpec{Text: text, Syntax: syntax, IgnoreCase: ignoreCase})
	}
	return specs
}

// EffectiveTargets returns the targets to scan, defaulting to standard input
func (c Config) EffectiveTargets() []string {
	if len(c.Targets) == 0 {
		return []string{StdinSentinel}
	}
	targets := make([]string, len(c.Targets))
	copy(targets, c.Targets)
	return targets
}

// DisplayName returns the name used for a target in output
func DisplayName(target string) string {
	if target == StdinSentinel {
		return StdinLabel
	}
	return target
}
