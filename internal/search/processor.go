package search

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/cheerioskun/grepninja/internal/errs"
	"github.com/cheerioskun/grepninja/internal/models"
	"github.com/cheerioskun/grepninja/internal/scanner"
	"github.com/cheerioskun/grepninja/internal/utils"
)

// Processor scans single targets and emits per-line and per-file output
type Processor struct {
	opener   *scanner.Opener
	selector Selector
	flags    models.MatchFlags
	display  models.DisplayMode
	printer  *Printer
	errOut   io.Writer
	logger   *utils.Logger
}

// NewProcessor creates a new Processor. All targets it scans share selector.
func NewProcessor(opener *scanner.Opener, selector Selector, flags models.MatchFlags, display models.DisplayMode, printer *Printer, errOut io.Writer) *Processor {
	return &Processor{
		opener:   opener,
		selector: selector,
		flags:    flags,
		display:  display,
		printer:  printer,
		errOut:   errOut,
		logger:   utils.GetLogger(),
	}
}

// Process scans one target to the end and returns its result. Open and read
// failures are reported unless suppressed and never stop the caller's run.
// Directories are skipped without a diagnostic.
func (p *Processor) Process(id string) models.FileResult {
	result := models.FileResult{Source: id}

	src, err := p.opener.Open(id)
	if err != nil {
		if errors.Is(err, errs.ErrIsDirectory) {
			p.logger.Debug("skipping directory %s", id)
			result.Skipped = true
			return result
		}
		result.Err = err
		p.diagnose(err)
		return result
	}
	defer func() {
		if err := src.Close(); err != nil {
			p.logger.Warning("%v", err)
		}
	}()

	name := src.Label()
	for {
		rec, ok := src.Next()
		if !ok {
			break
		}
		v := p.selector.Select(rec)
		if !v.Selected {
			continue
		}
		result.Count++
		if p.display == models.DisplayNormal {
			p.printer.Line(name, rec.Number, rec.Content, v, p.flags.ShowFilenames, p.flags.LineNumbers)
		}
	}

	if err := src.Err(); err != nil {
		result.Err = err
		p.diagnose(err)
	}

	switch p.display {
	case models.DisplayList:
		if result.Count > 0 {
			p.printer.Name(name)
		}
	case models.DisplayCount:
		p.printer.Count(name, result.Count, p.flags.ShowFilenames)
	}

	p.logger.Debug("scanned %s: %d lines, %d selected", name, src.Lines(), result.Count)
	return result
}

func (p *Processor) diagnose(err error) {
	if p.flags.SuppressErrors {
		return
	}
	// Keep diagnostics ordered after the output that preceded them.
	if flushErr := p.printer.Flush(); flushErr != nil {
		p.logger.Warning("failed to flush output: %v", flushErr)
	}
	fmt.Fprintf(p.errOut, "grepninja: %v\n", err)
}
