package models

import "github.com/cheerioskun/grepninja/internal/errs"

// LineRecord is one line read from a source
type LineRecord struct {
	Content      []byte // Line content without the terminator
	Number       int    // 1-based line number within the source
	Unterminated bool   // Last line of the source had no terminator
}

// FileResult is the outcome of scanning one target
type FileResult struct {
	Source  string `json:"source"`  // Target identifier as given
	Count   int    `json:"count"`   // Selected lines
	Err     error  `json:"-"`       // Open or read failure, if any
	Skipped bool   `json:"skipped"` // Target was a directory
}

// Failed returns true if the target could not be read
func (r FileResult) Failed() bool {
	return r.Err != nil
}

// RunResult accumulates FileResults across a run
type RunResult struct {
	Total   int          `json:"total"`   // Selected lines across all targets
	Matched int          `json:"matched"` // Targets with at least one selected line
	Errors  int          `json:"errors"`  // Targets that failed to open or read
	Files   []FileResult `json:"files"`   // Per-target results in scan order
}

// Add folds a FileResult into the run totals
func (r *RunResult) Add(fr FileResult) {
	r.Files = append(r.Files, fr)
	r.Total += fr.Count
	if fr.Count > 0 {
		r.Matched++
	}
	if fr.Failed() {
		r.Errors++
	}
}

// Found returns true if any line was selected
func (r RunResult) Found() bool {
	return r.Total > 0
}

// ExitStatus maps the run outcome to the process exit status
func (r RunResult) ExitStatus() int {
	if r.Found() {
		return errs.ExitSelected
	}
	return errs.ExitNoneFound
}
